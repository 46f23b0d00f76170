package ingest_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drillbank/backend/internal/ingest"
)

func TestParseCSV_StandardHeaders(t *testing.T) {
	input := "question,answer,category\n" +
		"What is the supreme law of the land?,The Constitution,Principles\n" +
		"Name one branch of the government.,Congress,Government\n"

	questions, err := ingest.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	q := questions[0]
	if q.ID == "" {
		t.Error("expected a generated id")
	}
	if q.Text != "What is the supreme law of the land?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Answer != "The Constitution" {
		t.Errorf("unexpected answer: %q", q.Answer)
	}
	if q.Category != "Principles" {
		t.Errorf("unexpected category: %q", q.Category)
	}
}

func TestParseCSV_HeaderAliases(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short aliases", "q,a\nWhat?,That\n"},
		{"snake case", "Question_Text,Answer_Text\nWhat?,That\n"},
		{"mixed case with spaces", " Question , Answer \nWhat?,That\n"},
		{"substring fallback", "Question (English),Expected Answer\nWhat?,That\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := ingest.ParseCSV(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseCSV failed: %v", err)
			}
			if len(questions) != 1 {
				t.Fatalf("expected 1 question, got %d", len(questions))
			}
			if questions[0].Text != "What?" || questions[0].Answer != "That" {
				t.Errorf("unexpected question: %+v", questions[0])
			}
		})
	}
}

func TestParseCSV_SkipsIncompleteRows(t *testing.T) {
	input := "question,answer\n" +
		"What?,That\n" +
		"Missing answer,\n" +
		",Missing question\n" +
		"Second?,Also that\n"

	questions, err := ingest.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestParseCSV_UndetectableColumns(t *testing.T) {
	input := "foo,bar\nx,y\n"

	_, err := ingest.ParseCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for undetectable columns")
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	_, err := ingest.ParseCSV(strings.NewReader("question,answer\n"))
	if !errors.Is(err, ingest.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	input := `
- question: What is the capital of the United States?
  answer: Washington, D.C.
  category: Geography
- question: Who vetoes bills?
  answer: The President
`

	questions, err := ingest.ParseYAML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Category != "Geography" {
		t.Errorf("unexpected category: %q", questions[0].Category)
	}
	if questions[1].Category != "" {
		t.Errorf("expected empty category, got %q", questions[1].Category)
	}
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ingest.ParseYAML(strings.NewReader("not: [valid"))
	if err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestLoadFile_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "bank.csv")
	if err := os.WriteFile(csvPath, []byte("question,answer\nWhat?,That\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "bank.yaml")
	if err := os.WriteFile(yamlPath, []byte("- question: What?\n  answer: That\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{csvPath, yamlPath} {
		questions, err := ingest.LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) failed: %v", path, err)
		}
		if len(questions) != 1 {
			t.Errorf("LoadFile(%s): expected 1 question, got %d", path, len(questions))
		}
	}
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.xlsx")
	if err := os.WriteFile(path, []byte("binary"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ingest.LoadFile(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := ingest.LoadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

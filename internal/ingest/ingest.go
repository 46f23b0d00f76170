// Package ingest turns question files into the normalized bank the
// practice engine consumes. The engine itself never touches file formats.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/drillbank/backend/internal/domain/question"
	"github.com/drillbank/backend/internal/id"
)

// ErrNoQuestions is returned when a file parses but yields nothing usable.
var ErrNoQuestions = errors.New("ingest: no questions found in file")

// LoadFile reads a question file, dispatching on the extension.
// Supported: .csv, .yaml, .yml.
func LoadFile(path string) ([]question.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(f)
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return nil, fmt.Errorf("ingest: unsupported file type %q", filepath.Ext(path))
	}
}

// Common header spellings seen in exported spreadsheets.
var (
	questionAliases = []string{"question", "question_text", "q", "prompt"}
	answerAliases   = []string{"answer", "answer_text", "a"}
	categoryAliases = []string{"category", "cat", "type"}
)

func findColumn(header []string, aliases []string, contains string) int {
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		for _, alias := range aliases {
			if name == alias {
				return i
			}
		}
	}
	// Fall back to a substring match, e.g. "Question Text (English)".
	for i, col := range header {
		if strings.Contains(strings.ToLower(col), contains) {
			return i
		}
	}
	return -1
}

// ParseCSV reads a CSV with a header row, detecting the question, answer
// and optional category columns by name. Rows missing either the question
// or the answer text are skipped rather than rejected.
func ParseCSV(r io.Reader) ([]question.Question, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrNoQuestions
	}

	header := rows[0]
	qCol := findColumn(header, questionAliases, "question")
	aCol := findColumn(header, answerAliases, "answer")
	cCol := findColumn(header, categoryAliases, "category")
	if qCol < 0 || aCol < 0 {
		return nil, errors.New("ingest: could not detect question and answer columns")
	}

	var questions []question.Question
	for _, row := range rows[1:] {
		q := question.Question{ID: id.New()}
		if qCol < len(row) {
			q.Text = strings.TrimSpace(row[qCol])
		}
		if aCol < len(row) {
			q.Answer = strings.TrimSpace(row[aCol])
		}
		if cCol >= 0 && cCol < len(row) {
			q.Category = strings.TrimSpace(row[cCol])
		}
		if q.Text == "" || q.Answer == "" {
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

type yamlQuestion struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Category string `yaml:"category"`
}

// ParseYAML reads a YAML list of {question, answer, category} entries.
func ParseYAML(r io.Reader) ([]question.Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var entries []yamlQuestion
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ingest: parsing yaml: %w", err)
	}

	var questions []question.Question
	for _, e := range entries {
		q := question.Question{
			ID:       id.New(),
			Text:     strings.TrimSpace(e.Question),
			Answer:   strings.TrimSpace(e.Answer),
			Category: strings.TrimSpace(e.Category),
		}
		if q.Text == "" || q.Answer == "" {
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

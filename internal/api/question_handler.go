package api

import (
	"errors"
	"net/http"

	"github.com/drillbank/backend/internal/ingest"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionResponse struct {
	ID       string `json:"id" example:"x9y8z7w6v5u4t3s2"`
	Text     string `json:"text" example:"What is the supreme law of the land?"`
	Answer   string `json:"answer" example:"The Constitution"`
	Category string `json:"category,omitempty" example:"Principles of American Democracy"`
}

type ImportQuestionsRequest struct {
	Path string `json:"path" example:"questions.csv"`
}

func (r *ImportQuestionsRequest) Validate() error {
	if r.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

type ImportQuestionsResponse struct {
	Imported int `json:"imported" example:"128"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// @Summary      List the question bank
// @Description  Returns every question in the bank, in import order.
// @Tags         Questions
// @Produce      json
// @Success      200  {array}   QuestionResponse
// @Failure      503  {object}  map[string]string
// @Router       /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.ListQuestions(r.Context())
	if h.handleStoreError(w, err, "questions") {
		return
	}

	response := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		response[i] = QuestionResponse{
			ID:       q.ID,
			Text:     q.Text,
			Answer:   q.Answer,
			Category: q.Category,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// @Summary      Replace the bank from a question file
// @Description  Loads a CSV or YAML question file from the server and replaces the bank with it. Stats are cleared with the old bank.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      ImportQuestionsRequest  true  "File to import"
// @Success      200   {object}  ImportQuestionsResponse
// @Failure      400   {object}  map[string]string
// @Router       /questions/import [post]
func (h *Handler) importQuestions(w http.ResponseWriter, r *http.Request) {
	var req ImportQuestionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	questions, err := ingest.LoadFile(req.Path)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.store.ReplaceQuestions(r.Context(), questions), "questions") {
		return
	}

	h.logger.Info("question bank replaced", "file", req.Path, "count", len(questions))
	respondJSON(w, http.StatusOK, ImportQuestionsResponse{Imported: len(questions)})
}

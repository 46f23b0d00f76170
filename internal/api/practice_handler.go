package api

import (
	"errors"
	"net/http"

	"github.com/drillbank/backend/internal/selector"
	"github.com/drillbank/backend/internal/session"
	"github.com/drillbank/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionResponse struct {
	ID string `json:"id" example:"8f14e45f-ceea-467f-a0d6-0f1b2c3d4e5f"`
}

type DrawResponse struct {
	QuestionID string  `json:"question_id" example:"x9y8z7w6v5u4t3s2"`
	Text       string  `json:"text" example:"How many amendments does the Constitution have?"`
	Answer     string  `json:"answer" example:"Twenty-seven (27)"`
	Category   string  `json:"category,omitempty" example:"System of Government"`
	Attempts   int     `json:"attempts" example:"3"`
	FailRate   float64 `json:"fail_rate" example:"0.667"`
}

type JudgmentRequest struct {
	Passed *bool `json:"passed"`
}

func (r *JudgmentRequest) Validate() error {
	if r.Passed == nil {
		return errors.New("passed is required")
	}
	return nil
}

type JudgmentResponse struct {
	Status string `json:"status" example:"recorded"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// @Summary      Start a practice session
// @Description  Creates a practice session and returns its ID for the draw/judgment endpoints.
// @Tags         Sessions
// @Produce      json
// @Success      201  {object}  CreateSessionResponse
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	id := h.sessions.Create()
	respondJSON(w, http.StatusCreated, CreateSessionResponse{ID: id})
}

// @Summary      End a practice session
// @Description  Drops the session. Abandoning a drawn-but-unjudged question has no stats side effect.
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Delete(r.PathValue("sessionID")) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Draw the next question
// @Description  Picks the next question, weighted toward the ones missed most often.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  DrawResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "judgment pending or empty bank"
// @Router       /sessions/{sessionID}/draw [post]
func (h *Handler) drawQuestion(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.sessions.Get(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	q, rec, err := ctrl.Draw(r.Context())
	if h.handlePracticeError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, DrawResponse{
		QuestionID: q.ID,
		Text:       q.Text,
		Answer:     q.Answer,
		Category:   q.Category,
		Attempts:   rec.Attempts,
		FailRate:   rec.FailRate(),
	})
}

// @Summary      Judge the drawn question
// @Description  Records pass or fail for the question the session drew last.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string           true  "Session ID"
// @Param        body       body      JudgmentRequest  true  "Pass or fail"
// @Success      200        {object}  JudgmentResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "no question drawn"
// @Router       /sessions/{sessionID}/judgment [post]
func (h *Handler) judgeQuestion(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.sessions.Get(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	var req JudgmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if h.handlePracticeError(w, ctrl.Judge(r.Context(), *req.Passed)) {
		return
	}

	respondJSON(w, http.StatusOK, JudgmentResponse{Status: "recorded"})
}

// @Summary      Reset all statistics
// @Description  Clears every question's pass/fail history. The bank itself is untouched.
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /sessions/{sessionID}/reset [post]
func (h *Handler) resetStats(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.sessions.Get(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	if h.handlePracticeError(w, ctrl.Reset(r.Context())) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handlePracticeError maps practice-turn errors onto HTTP statuses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handlePracticeError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, selector.ErrEmptyBank):
		respondError(w, http.StatusConflict, "question bank is empty, import questions first")
	case errors.Is(err, session.ErrJudgmentPending):
		respondError(w, http.StatusConflict, "judge the current question before drawing another")
	case errors.Is(err, session.ErrNoPendingQuestion):
		respondError(w, http.StatusConflict, "no question has been drawn")
	case errors.Is(err, store.ErrUnavailable):
		h.logger.Error("store unavailable", "error", err)
		respondError(w, http.StatusServiceUnavailable, "storage unavailable, retry")
	default:
		h.logger.Error("practice turn failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

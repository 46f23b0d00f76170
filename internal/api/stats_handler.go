package api

import (
	"net/http"
	"strconv"

	"github.com/drillbank/backend/internal/domain/stats"
)

// ── Request / Response types ────────────────────────────────────────────────

type MostMissedRow struct {
	QuestionID string  `json:"question_id" example:"x9y8z7w6v5u4t3s2"`
	Text       string  `json:"text" example:"Name one branch or part of the government."`
	Category   string  `json:"category,omitempty" example:"System of Government"`
	Attempts   int     `json:"attempts" example:"5"`
	Fails      int     `json:"fails" example:"4"`
	FailRate   float64 `json:"fail_rate" example:"0.8"`
}

type OverviewResponse struct {
	Questions int     `json:"questions" example:"128"`
	Attempts  int     `json:"attempts" example:"342"`
	Fails     int     `json:"fails" example:"57"`
	PassRate  float64 `json:"pass_rate" example:"0.833"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// @Summary      Most missed questions
// @Description  Returns questions ranked by fail rate, highest first.
// @Tags         Stats
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows to return"
// @Success      200    {array}   MostMissedRow
// @Failure      400    {object}  map[string]string
// @Router       /stats/most-missed [get]
func (h *Handler) mostMissed(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	questions, err := h.store.ListQuestions(r.Context())
	if h.handleStoreError(w, err, "questions") {
		return
	}
	records, err := h.store.GetAllStats(r.Context())
	if h.handleStoreError(w, err, "stats") {
		return
	}

	rows := stats.BuildReport(questions, records)
	if limit < len(rows) {
		rows = rows[:limit]
	}

	response := make([]MostMissedRow, len(rows))
	for i, row := range rows {
		response[i] = MostMissedRow{
			QuestionID: row.QuestionID,
			Text:       row.QuestionText,
			Category:   row.Category,
			Attempts:   row.Attempts,
			Fails:      row.Fails,
			FailRate:   row.FailRate,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// @Summary      Bank-wide practice totals
// @Description  Returns attempt and fail totals plus the overall pass rate.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  OverviewResponse
// @Router       /stats/overview [get]
func (h *Handler) statsOverview(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.ListQuestions(r.Context())
	if h.handleStoreError(w, err, "questions") {
		return
	}
	records, err := h.store.GetAllStats(r.Context())
	if h.handleStoreError(w, err, "stats") {
		return
	}

	t := stats.Aggregate(questions, records)
	respondJSON(w, http.StatusOK, OverviewResponse{
		Questions: t.Questions,
		Attempts:  t.Attempts,
		Fails:     t.Fails,
		PassRate:  t.PassRate,
	})
}

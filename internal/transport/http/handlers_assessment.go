package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"disha/internal/assessment"
	"disha/internal/transport/http/shared"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/requestcontext"
)

// AssessmentService serves the career quiz.
type AssessmentService interface {
	Questions(ctx context.Context, userID string) ([]assessment.Question, error)
	QuestionByID(ctx context.Context, userID string, id int) (*assessment.Question, error)
	CareerPaths(ctx context.Context) ([]assessment.PathDetails, error)
	Stats(ctx context.Context) (*assessment.Stats, error)
	Assess(ctx context.Context, userID string, responses []assessment.Response) (*assessment.AssessResult, error)
	LatestResult(ctx context.Context, userID string) (*assessment.Result, error)
}

// AssessmentHandler serves the authenticated quiz routes.
type AssessmentHandler struct {
	logger      *slog.Logger
	assessments AssessmentService
}

func NewAssessmentHandler(assessments AssessmentService, logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, assessments: assessments}
}

func (h *AssessmentHandler) Register(r chi.Router) {
	r.Get("/questions", h.handleList)
	r.Get("/questions/career-paths", h.handleCareerPaths)
	r.Get("/questions/stats", h.handleStats)
	r.Get("/questions/result", h.handleLatestResult)
	r.Post("/questions/assess", h.handleAssess)
	r.Get("/questions/{id}", h.handleGet)
}

func (h *AssessmentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	qs, err := h.assessments.Questions(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"questions": qs,
		"total":     len(qs),
	})
}

func (h *AssessmentHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Question id must be a number"))
		return
	}
	q, err := h.assessments.QuestionByID(ctx, requestcontext.UserID(ctx), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "question": q})
}

func (h *AssessmentHandler) handleCareerPaths(w http.ResponseWriter, r *http.Request) {
	paths, err := h.assessments.CareerPaths(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "careerPaths": paths})
}

func (h *AssessmentHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.assessments.Stats(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}

type assessRequest struct {
	Responses []assessment.Response `json:"responses"`
}

func (h *AssessmentHandler) handleAssess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid assess request body",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid request body"))
		return
	}

	res, err := h.assessments.Assess(ctx, requestcontext.UserID(ctx), req.Responses)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "result": res})
}

func (h *AssessmentHandler) handleLatestResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.assessments.LatestResult(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "result": res})
}

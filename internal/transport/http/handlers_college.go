package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"disha/internal/college"
	"disha/internal/transport/http/shared"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/requestcontext"
)

// CollegeService serves the institution catalog.
type CollegeService interface {
	List(ctx context.Context, userID string, f college.Filter) (*college.ListResult, error)
	GetByID(ctx context.Context, id int) (*college.College, error)
}

// CollegeHandler serves the authenticated catalog routes.
type CollegeHandler struct {
	logger   *slog.Logger
	colleges CollegeService
}

func NewCollegeHandler(colleges CollegeService, logger *slog.Logger) *CollegeHandler {
	return &CollegeHandler{logger: logger, colleges: colleges}
}

func (h *CollegeHandler) Register(r chi.Router) {
	r.Get("/colleges", h.handleList)
	r.Get("/colleges/{id}", h.handleGet)
}

func (h *CollegeHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	res, err := h.colleges.List(ctx, requestcontext.UserID(ctx), college.Filter{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		Type:     q.Get("type"),
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"colleges": res.Colleges,
		"total":    res.Total,
		"filters":  res.Filters,
	})
}

func (h *CollegeHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "College id must be a number"))
		return
	}
	c, err := h.colleges.GetByID(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "college": c})
}

package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"disha/internal/profile"
	"disha/internal/transport/http/shared"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/requestcontext"
)

// ProfileService manages student demographics.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*profile.Profile, profile.Completion, error)
	Create(ctx context.Context, userID string, req profile.UpsertRequest) (*profile.Profile, profile.Completion, error)
	Update(ctx context.Context, userID string, req profile.UpsertRequest) (*profile.Profile, profile.Completion, error)
	RecalculateCompletion(ctx context.Context, userID string) (profile.Completion, error)
}

// ProfileHandler serves the authenticated profile routes.
type ProfileHandler struct {
	logger   *slog.Logger
	profiles ProfileService
}

func NewProfileHandler(profiles ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{logger: logger, profiles: profiles}
}

func (h *ProfileHandler) Register(r chi.Router) {
	r.Get("/profile", h.handleGet)
	r.Post("/profile", h.handleCreate)
	r.Put("/profile", h.handleUpdate)
	r.Get("/profile/completion", h.handleCompletion)
}

type profileResponse struct {
	Success    bool               `json:"success"`
	Profile    *profile.Profile   `json:"profile"`
	Completion profile.Completion `json:"completion"`
}

func (h *ProfileHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, comp, err := h.profiles.Get(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, profileResponse{Success: true, Profile: p, Completion: comp})
}

func (h *ProfileHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, h.profiles.Create, http.StatusCreated)
}

func (h *ProfileHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, h.profiles.Update, http.StatusOK)
}

type upsertFunc func(ctx context.Context, userID string, req profile.UpsertRequest) (*profile.Profile, profile.Completion, error)

func (h *ProfileHandler) upsert(w http.ResponseWriter, r *http.Request, fn upsertFunc, okStatus int) {
	ctx := r.Context()

	var req profile.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid profile request body",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid request body"))
		return
	}

	p, comp, err := fn(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, okStatus, profileResponse{Success: true, Profile: p, Completion: comp})
}

func (h *ProfileHandler) handleCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	comp, err := h.profiles.RecalculateCompletion(ctx, requestcontext.UserID(ctx))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, comp)
}

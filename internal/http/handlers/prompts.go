package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"restage/internal/middleware"
	"restage/internal/promptengine"

	"github.com/google/uuid"
)

// PromptBuild composes one instruction/contract bundle for the generation
// and segmentation backends.
func (a *App) PromptBuild(w http.ResponseWriter, r *http.Request) {
	var req promptengine.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Language == "" {
		req.Language = middleware.LocaleFromContext(r.Context())
	}

	result, err := a.Builder.BuildPrompt(req)
	if err != nil {
		a.engineError(w, err)
		return
	}
	a.logWarnings(r, result.Warnings)
	a.json(w, http.StatusOK, result)
}

type planResponse struct {
	PlanID string                       `json:"plan_id"`
	Passes []*promptengine.PromptResult `json:"passes"`
	Count  int                          `json:"count"`
}

// PromptPlan composes a full multi-pass redecoration plan. The job runner
// executes the passes in order, feeding each output image into the next.
func (a *App) PromptPlan(w http.ResponseWriter, r *http.Request) {
	var req promptengine.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Language == "" {
		req.Language = middleware.LocaleFromContext(r.Context())
	}

	passes, err := a.Builder.BuildPlan(req)
	if err != nil {
		a.engineError(w, err)
		return
	}
	for _, pass := range passes {
		a.logWarnings(r, pass.Warnings)
	}
	a.json(w, http.StatusOK, planResponse{PlanID: uuid.NewString(), Passes: passes, Count: len(passes)})
}

// engineError maps strict-mode engine failures onto API error responses.
func (a *App) engineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, promptengine.ErrInvalidEnum):
		a.error(w, http.StatusBadRequest, "invalid_enum", err.Error())
	case errors.Is(err, promptengine.ErrAmbiguousClass):
		a.error(w, http.StatusUnprocessableEntity, "ambiguous_class", err.Error())
	default:
		a.error(w, http.StatusInternalServerError, "internal", "prompt composition failed")
	}
}

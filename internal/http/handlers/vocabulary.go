package handlers

import (
	"encoding/json"
	"net/http"

	"restage/internal/promptengine"
)

// VocabularyList returns every registered mask class plus the registry
// version the segmentation backend should pin against.
func (a *App) VocabularyList(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"version": promptengine.VocabVersion,
		"classes": a.Builder.Vocab().Entries(),
	})
}

type resolveRequest struct {
	Name   string `json:"name"`
	Strict bool   `json:"strict"`
}

type resolveResponse struct {
	Canonical string `json:"canonical"`
	Resolved  bool   `json:"resolved"`
	Warning   string `json:"warning,omitempty"`
}

// VocabularyResolve resolves one caller-supplied class name. Ambiguous terms
// return a warning (or a 422 in strict mode) instead of a silent guess.
func (a *App) VocabularyResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	canonical, warning, err := a.Builder.ResolveMaskClass(req.Name, req.Strict)
	if err != nil {
		a.engineError(w, err)
		return
	}
	if warning != "" {
		a.logWarnings(r, []string{warning})
	}
	a.json(w, http.StatusOK, resolveResponse{Canonical: canonical, Resolved: canonical != "", Warning: warning})
}

type validateResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

// ContractValidate resolves every class named by a submitted contract and
// reports the full violation list; the caller decides whether to dispatch.
func (a *App) ContractValidate(w http.ResponseWriter, r *http.Request) {
	var contract promptengine.MaskContract
	if err := json.NewDecoder(r.Body).Decode(&contract); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	violations := a.Builder.ValidateContract(contract)
	a.json(w, http.StatusOK, validateResponse{Valid: len(violations) == 0, Violations: violations})
}

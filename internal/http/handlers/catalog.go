package handlers

import (
	"net/http"

	"restage/internal/middleware"
	"restage/internal/promptengine"
)

// CatalogStyles lists the style presets, localized for the request.
func (a *App) CatalogStyles(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	a.json(w, http.StatusOK, map[string]any{
		"items":  a.Builder.StyleList(locale),
		"locale": locale,
	})
}

// CatalogRooms lists the room types, localized for the request.
func (a *App) CatalogRooms(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	a.json(w, http.StatusOK, map[string]any{
		"items":  a.Builder.RoomList(locale),
		"locale": locale,
	})
}

// CatalogMaterials returns the material presets and the surface keys a
// caller may override.
func (a *App) CatalogMaterials(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"presets":  a.Builder.MaterialPresets(),
		"order":    a.Builder.MaterialPresetIDs(),
		"surfaces": promptengine.SurfaceKeys(),
	})
}

// CatalogOptions returns the closed control-enum sets and their documented
// defaults so clients can populate selectors without hardcoding.
func (a *App) CatalogOptions(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"task_modes":     promptengine.TaskModes(),
		"engines":        promptengine.Engines(),
		"quality_levels": promptengine.QualityLevels(),
		"defaults": map[string]string{
			"task_mode":     string(promptengine.DefaultTaskMode),
			"engine":        string(promptengine.DefaultEngine),
			"quality_level": string(promptengine.DefaultQuality),
			"style":         promptengine.DefaultStyleID,
			"room_type":     promptengine.DefaultRoomID,
		},
	})
}

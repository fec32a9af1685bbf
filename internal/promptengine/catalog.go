package promptengine

// StyleInfo is one catalog entry for the display layer.
type StyleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RoomInfo is one room catalog entry.
type RoomInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StyleList returns the style catalog in stable order, localized.
func (b *Builder) StyleList(lang string) []StyleInfo {
	lang = normalizeLanguage(lang)
	out := make([]StyleInfo, 0, len(styleOrder))
	for _, id := range styleOrder {
		style := stylePresets[id]
		out = append(out, StyleInfo{ID: id, Name: style.DisplayName(lang), Description: style.Description})
	}
	return out
}

// RoomList returns the room catalog in stable order, localized.
func (b *Builder) RoomList(lang string) []RoomInfo {
	lang = normalizeLanguage(lang)
	out := make([]RoomInfo, 0, len(roomOrder))
	for _, id := range roomOrder {
		room := roomTypes[id]
		out = append(out, RoomInfo{ID: id, Name: room.DisplayName(lang)})
	}
	return out
}

// MaterialPresetIDs returns the material preset ids in stable order.
func (b *Builder) MaterialPresetIDs() []string {
	return append([]string(nil), materialOrder...)
}

// MaterialPreset returns the surface→material mapping of one preset.
func (b *Builder) MaterialPreset(id string) (MaterialMap, bool) {
	preset, ok := materialPresets[id]
	if !ok {
		return nil, false
	}
	return preset.clone(), true
}

// MaterialPresets returns every material preset keyed by id.
func (b *Builder) MaterialPresets() map[string]MaterialMap {
	out := make(map[string]MaterialMap, len(materialPresets))
	for id, preset := range materialPresets {
		out[id] = preset.clone()
	}
	return out
}

// SurfaceKeys returns the canonical surface-key order used by material maps.
func SurfaceKeys() []string {
	return append([]string(nil), materialKeys...)
}

package promptengine

import (
	"strings"
)

// BlendSpec pins down the blend-ring geometry so the prompt text and the
// segmentation mask can never drift apart.
type BlendSpec struct {
	Ratio       float64 `json:"ratio"`        // ring width as a ratio of the short edge
	MinPx       int     `json:"min_px"`
	MaxPx       int     `json:"max_px"`
	RingOnly    bool    `json:"ring_only"`    // edits restricted to the boundary ring
	OutwardOnly bool    `json:"outward_only"` // feather away from the mask interior
}

func defaultBlendSpec() BlendSpec {
	return BlendSpec{Ratio: 0.005, MinPx: 3, MaxPx: 20, RingOnly: true, OutwardOnly: true}
}

// MaskContract tells the segmentation side which regions a pass may edit and
// which it must protect. Edit and protect sets are disjoint by construction.
type MaskContract struct {
	EditTargets    []string  `json:"edit_targets"`
	ProtectTargets []string  `json:"protect_targets"`
	NeedsHardMask  bool      `json:"needs_hard_mask"`
	NeedsBlendMask bool      `json:"needs_blend_mask"`
	Blend          BlendSpec `json:"blend"`
	PassID         string    `json:"pass_id"`
}

func (c MaskContract) clone() MaskContract {
	out := c
	out.EditTargets = append([]string(nil), c.EditTargets...)
	out.ProtectTargets = append([]string(nil), c.ProtectTargets...)
	return out
}

var baseContracts = map[TaskMode]MaskContract{
	TaskFullRender: {
		EditTargets:    []string{"wall", "floor", "ceiling", "empty_space"},
		ProtectTargets: []string{"window_glass", "view_outside"},
		NeedsHardMask:  false,
		NeedsBlendMask: false,
		Blend:          BlendSpec{Ratio: 0.005, MinPx: 3, MaxPx: 20, RingOnly: true, OutwardOnly: true},
		PassID:         "FR",
	},
	TaskMaterialReplace: {
		EditTargets:    []string{"wall", "floor", "ceiling"},
		ProtectTargets: []string{"window_frame", "window_glass", "skirting", "door_frame", "beam", "column", "furniture"},
		NeedsHardMask:  true,
		NeedsBlendMask: true,
		Blend:          BlendSpec{Ratio: 0.008, MinPx: 5, MaxPx: 30, RingOnly: true, OutwardOnly: true},
		PassID:         "MR",
	},
	TaskEdgeBlend: {
		EditTargets:    []string{"boundary_region"},
		ProtectTargets: []string{"material_center"},
		NeedsHardMask:  false,
		NeedsBlendMask: true,
		Blend:          BlendSpec{Ratio: 0.015, MinPx: 10, MaxPx: 50, RingOnly: true, OutwardOnly: true},
		PassID:         "BL",
	},
	TaskFurnitureAdd: {
		EditTargets:    []string{"empty_space"},
		ProtectTargets: []string{"wall", "floor", "ceiling", "furniture", "window_frame", "window_glass", "door_frame"},
		NeedsHardMask:  true,
		NeedsBlendMask: true,
		Blend:          BlendSpec{Ratio: 0.003, MinPx: 3, MaxPx: 15, RingOnly: true, OutwardOnly: true},
		PassID:         "FA",
	},
}

// replaceSurfaces is the closed surface set valid for replace scoping, in
// canonical order.
var replaceSurfaces = []string{"wall", "floor", "ceiling"}

// edgeBlendProtectBySurface lists the classes most likely to take collateral
// damage when blending along that surface's seams; the planner adds them to
// the per-pass protect set.
var edgeBlendProtectBySurface = map[string][]string{
	"wall":      {"window_frame", "door_frame", "beam", "column", "skirting"},
	"floor":     {"skirting", "door_frame", "furniture"},
	"ceiling":   {"beam", "column"},
	"furniture": {"wall", "floor", "skirting"},
}

// normalizeReplaceScope resolves each entry through the vocabulary, drops
// everything outside the surface whitelist with a warning, and never returns
// an empty list: a fully invalid or empty scope falls back to all three
// surfaces.
func (b *Builder) normalizeReplaceScope(scope []string, warns *warningList) []string {
	if len(scope) == 0 {
		return append([]string(nil), replaceSurfaces...)
	}
	var valid []string
	for _, s := range scope {
		canonical, warning, _ := b.vocab.Resolve(s, false)
		if warning != "" {
			warns.addf("%s", warning)
		}
		if canonical == "" {
			canonical = strings.ToLower(strings.TrimSpace(s))
		}
		if isReplaceSurface(canonical) {
			if !containsString(valid, canonical) {
				valid = append(valid, canonical)
			}
			continue
		}
		warns.addf("invalid replace scope %q, skipping (valid: %s)", s, strings.Join(replaceSurfaces, ", "))
	}
	if len(valid) == 0 {
		warns.addf("no valid replace scope in %v, falling back to full surface set", scope)
		return append([]string(nil), replaceSurfaces...)
	}
	// canonical wall/floor/ceiling order keeps prompt text and pass ids stable
	ordered := make([]string, 0, len(valid))
	for _, s := range replaceSurfaces {
		if containsString(valid, s) {
			ordered = append(ordered, s)
		}
	}
	return ordered
}

// NormalizeReplaceScope is the exported form; it returns the canonical scope
// plus any warnings raised while normalizing.
func (b *Builder) NormalizeReplaceScope(scope []string) ([]string, []string) {
	var warns warningList
	normalized := b.normalizeReplaceScope(scope, &warns)
	return normalized, warns
}

// contractFor returns the per-task contract. When scoped is set for a
// material_replace task, the already-normalized scope becomes the edit set,
// surfaces excluded from it move into the protect set, and the pass id
// records the scope for replay. A scope that fell back to the full surface
// set yields zero excluded surfaces, so its protect set converges on the
// unscoped default.
func contractFor(task TaskMode, scope []string, scoped bool) MaskContract {
	base, ok := baseContracts[task]
	if !ok {
		base = baseContracts[TaskFullRender]
	}
	contract := base.clone()
	if task != TaskMaterialReplace || !scoped {
		return contract
	}

	var extraProtect []string
	for _, s := range replaceSurfaces {
		if !containsString(scope, s) {
			extraProtect = append(extraProtect, s)
		}
	}
	contract.EditTargets = append([]string(nil), scope...)
	contract.ProtectTargets = dedupeStrings(append(contract.ProtectTargets, extraProtect...))
	contract.PassID = base.PassID + "_" + strings.Join(scope, "_")
	return contract
}

// BuildContract derives the edit contract for a task. Strict mode rejects an
// unknown task value instead of falling back.
func (b *Builder) BuildContract(task string, scope []string, strict bool) (MaskContract, []string, error) {
	var warns warningList
	mode, err := normalizeTask(task, strict, &warns)
	if err != nil {
		return MaskContract{}, nil, err
	}
	normalized := b.normalizeReplaceScope(scope, &warns)
	contract := contractFor(mode, normalized, len(scope) > 0)
	return contract, warns, nil
}

func isReplaceSurface(s string) bool {
	return containsString(replaceSurfaces, s)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func dedupeStrings(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

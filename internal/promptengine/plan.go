package promptengine

import "fmt"

// PlanRequest configures a full multi-pass redecoration plan.
type PlanRequest struct {
	RoomType         string            `json:"room_type"`
	Style            string            `json:"style"`
	Engine           string            `json:"engine"`
	QualityLevel     string            `json:"quality_level"`
	Materials        map[string]string `json:"materials,omitempty"`
	Language         string            `json:"language,omitempty"`
	IncludeFurniture bool              `json:"include_furniture"`
	IncludeHarmonize bool              `json:"include_harmonize"`
	Strict           bool              `json:"strict,omitempty"`
}

// BuildPlan composes an ordered list of single-purpose passes. For each of
// wall, floor and ceiling (in that order) it emits a material_replace pass
// scoped to that surface followed by an edge_blend pass; the blend pass is
// forced onto the edit engine at ultra quality with a lowered strength and a
// per-surface protect override. Optionally a furniture pass plus a lighter
// blend, and a final harmonization blend, are appended. A job runner
// executes the passes sequentially, feeding each output image into the next
// pass.
func (b *Builder) BuildPlan(req PlanRequest) ([]*PromptResult, error) {
	var warns warningList
	if _, err := normalizeEngine(req.Engine, req.Strict, &warns); err != nil {
		return nil, err
	}
	if _, err := normalizeQuality(req.QualityLevel, req.Strict, &warns); err != nil {
		return nil, err
	}

	style := resolveStyle(req.Style)
	baseMaterials := resolveMaterials(style, req.Materials)

	var plan []*PromptResult
	for _, surface := range replaceSurfaces {
		material := baseMaterials[surface]
		if material == "" {
			continue
		}
		replace, err := b.BuildPrompt(Request{
			RoomType:     req.RoomType,
			Style:        req.Style,
			TaskMode:     string(TaskMaterialReplace),
			Engine:       req.Engine,
			QualityLevel: req.QualityLevel,
			Materials:    map[string]string{surface: material},
			Language:     req.Language,
			ReplaceScope: []string{surface},
			Strict:       req.Strict,
		})
		if err != nil {
			return nil, err
		}
		replace.Constraints = append(replace.Constraints, fmt.Sprintf("Current pass: %s", surface))
		plan = append(plan, replace)

		blend, err := b.edgeBlendPass(req, surface, editStrengthEdgeBlend)
		if err != nil {
			return nil, err
		}
		blend.Constraints = append(blend.Constraints, fmt.Sprintf("Blend %s boundaries", surface))
		plan = append(plan, blend)
	}

	if req.IncludeFurniture {
		furniture, err := b.BuildPrompt(Request{
			RoomType:     req.RoomType,
			Style:        req.Style,
			TaskMode:     string(TaskFurnitureAdd),
			Engine:       req.Engine,
			QualityLevel: req.QualityLevel,
			Materials:    baseMaterials,
			Language:     req.Language,
			Strict:       req.Strict,
		})
		if err != nil {
			return nil, err
		}
		plan = append(plan, furniture)

		blend, err := b.edgeBlendPass(req, "furniture", editStrengthFurnitureBlend)
		if err != nil {
			return nil, err
		}
		blend.Constraints = append(blend.Constraints, "Blend furniture contact shadows")
		plan = append(plan, blend)
	}

	if req.IncludeHarmonize {
		harmonize, err := b.edgeBlendPass(req, "", editStrengthHarmonize)
		if err != nil {
			return nil, err
		}
		harmonize.Constraints = []string{"Final harmonization: unify color temperature, noise pattern, and overall lighting"}
		harmonize.MaskContract.PassID = "BL_harmonize"
		plan = append(plan, harmonize)
	}

	return plan, nil
}

// edgeBlendPass builds one blend pass on the edit engine at ultra quality.
// When a surface is given, its collateral-damage protect list is applied and
// the pass id tagged for replay.
func (b *Builder) edgeBlendPass(req PlanRequest, surface string, strength float64) (*PromptResult, error) {
	result, err := b.BuildPrompt(Request{
		RoomType:     req.RoomType,
		Style:        req.Style,
		TaskMode:     string(TaskEdgeBlend),
		Engine:       string(EngineEdit),
		QualityLevel: string(QualityUltra),
		Language:     req.Language,
		Strict:       req.Strict,
	})
	if err != nil {
		return nil, err
	}
	result.EngineParams["strength"] = strength
	if surface != "" {
		extra := edgeBlendProtectBySurface[surface]
		result.MaskContract.ProtectTargets = dedupeStrings(append(result.MaskContract.ProtectTargets, extra...))
		result.MaskContract.PassID = "BL_" + surface
	}
	return result, nil
}

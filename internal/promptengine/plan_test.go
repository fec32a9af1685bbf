package promptengine

import (
	"testing"
)

func passModes(plan []*PromptResult) []TaskMode {
	modes := make([]TaskMode, len(plan))
	for i, p := range plan {
		modes[i] = p.TaskMode
	}
	return modes
}

func TestBuildPlanSurfacePasses(t *testing.T) {
	b := New()

	plan, err := b.BuildPlan(PlanRequest{
		RoomType:     "living_room",
		Style:        "modern_luxury",
		Engine:       "multimodal",
		QualityLevel: "high",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan) != 6 {
		t.Fatalf("plan has %d passes, want 6: %v", len(plan), passModes(plan))
	}

	wantOrder := []struct {
		task    TaskMode
		passID  string
		surface string
	}{
		{TaskMaterialReplace, "MR_wall", "wall"},
		{TaskEdgeBlend, "BL_wall", "wall"},
		{TaskMaterialReplace, "MR_floor", "floor"},
		{TaskEdgeBlend, "BL_floor", "floor"},
		{TaskMaterialReplace, "MR_ceiling", "ceiling"},
		{TaskEdgeBlend, "BL_ceiling", "ceiling"},
	}
	for i, want := range wantOrder {
		pass := plan[i]
		if pass.TaskMode != want.task {
			t.Errorf("pass %d task = %q, want %q", i, pass.TaskMode, want.task)
		}
		if pass.MaskContract.PassID != want.passID {
			t.Errorf("pass %d id = %q, want %q", i, pass.MaskContract.PassID, want.passID)
		}
	}

	// replace passes stay on the requested engine, blend passes are forced
	// onto the edit engine at ultra quality with the lowered strength
	for i, pass := range plan {
		if pass.TaskMode == TaskMaterialReplace {
			if pass.Engine != EngineMultimodal {
				t.Errorf("pass %d engine = %q, want multimodal", i, pass.Engine)
			}
			continue
		}
		if pass.Engine != EngineEdit || pass.QualityLevel != QualityUltra {
			t.Errorf("blend pass %d on %q/%q, want edit/ultra", i, pass.Engine, pass.QualityLevel)
		}
		if got := pass.EngineParams["strength"]; got != editStrengthEdgeBlend {
			t.Errorf("blend pass %d strength = %v, want %v", i, got, editStrengthEdgeBlend)
		}
	}
}

func TestBuildPlanPerSurfaceProtectOverrides(t *testing.T) {
	b := New()

	plan, err := b.BuildPlan(PlanRequest{Style: "wabi_sabi", Engine: "sdxl"})
	if err != nil {
		t.Fatal(err)
	}
	wallBlend := plan[1]
	for _, protect := range []string{"material_center", "window_frame", "door_frame", "beam", "column", "skirting"} {
		if !containsString(wallBlend.MaskContract.ProtectTargets, protect) {
			t.Errorf("wall blend protect %v missing %q", wallBlend.MaskContract.ProtectTargets, protect)
		}
	}
	ceilingBlend := plan[5]
	if containsString(ceilingBlend.MaskContract.ProtectTargets, "skirting") {
		t.Errorf("ceiling blend should not protect skirting: %v", ceilingBlend.MaskContract.ProtectTargets)
	}
	for _, protect := range []string{"beam", "column"} {
		if !containsString(ceilingBlend.MaskContract.ProtectTargets, protect) {
			t.Errorf("ceiling blend protect %v missing %q", ceilingBlend.MaskContract.ProtectTargets, protect)
		}
	}
}

func TestBuildPlanFurnitureAndHarmonize(t *testing.T) {
	b := New()

	plan, err := b.BuildPlan(PlanRequest{
		Style:            "japandi_cream",
		Engine:           "multimodal",
		QualityLevel:     "high",
		IncludeFurniture: true,
		IncludeHarmonize: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan) != 9 {
		t.Fatalf("plan has %d passes, want 9: %v", len(plan), passModes(plan))
	}

	furniture := plan[6]
	if furniture.TaskMode != TaskFurnitureAdd {
		t.Errorf("pass 7 = %q, want furniture_add", furniture.TaskMode)
	}

	furnitureBlend := plan[7]
	if furnitureBlend.TaskMode != TaskEdgeBlend {
		t.Errorf("pass 8 = %q, want edge_blend", furnitureBlend.TaskMode)
	}
	if got := furnitureBlend.EngineParams["strength"]; got != editStrengthFurnitureBlend {
		t.Errorf("furniture blend strength = %v, want %v", got, editStrengthFurnitureBlend)
	}
	if !containsString(furnitureBlend.MaskContract.ProtectTargets, "skirting") {
		t.Errorf("furniture blend protect %v missing skirting", furnitureBlend.MaskContract.ProtectTargets)
	}

	harmonize := plan[8]
	if harmonize.TaskMode != TaskEdgeBlend {
		t.Errorf("pass 9 = %q, want edge_blend", harmonize.TaskMode)
	}
	if got := harmonize.EngineParams["strength"]; got != editStrengthHarmonize {
		t.Errorf("harmonize strength = %v, want %v", got, editStrengthHarmonize)
	}
	if len(harmonize.Constraints) != 1 || harmonize.Constraints[0] != "Final harmonization: unify color temperature, noise pattern, and overall lighting" {
		t.Errorf("harmonize constraints = %v, want the single global directive", harmonize.Constraints)
	}
	if harmonize.MaskContract.PassID != "BL_harmonize" {
		t.Errorf("harmonize pass id = %q", harmonize.MaskContract.PassID)
	}
}

func TestBuildPlanSkipsUndefinedSurfaces(t *testing.T) {
	b := New()

	// overriding a surface to empty cannot remove it from a preset, so use a
	// caller material map on a style whose preset defines all three and make
	// sure the per-pass replace materials stay scoped
	plan, err := b.BuildPlan(PlanRequest{
		Style:     "industrial",
		Engine:    "flux",
		Materials: map[string]string{"wall": "micro-textured clay plaster"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan) != 6 {
		t.Fatalf("plan has %d passes, want 6", len(plan))
	}
	wallReplace := plan[0]
	if got := wallReplace.Materials["wall"]; got != "micro-textured clay plaster" {
		t.Errorf("wall pass material = %q, want caller override", got)
	}
	if !containsString(wallReplace.MaskContract.EditTargets, "wall") || len(wallReplace.MaskContract.EditTargets) != 1 {
		t.Errorf("wall pass edit targets = %v, want [wall]", wallReplace.MaskContract.EditTargets)
	}
}

func TestBuildPlanStrictPropagates(t *testing.T) {
	b := New()

	if _, err := b.BuildPlan(PlanRequest{Engine: "dall-e", Strict: true}); err == nil {
		t.Fatal("strict plan with unknown engine should fail")
	}
	plan, err := b.BuildPlan(PlanRequest{Engine: "dall-e"})
	if err != nil {
		t.Fatal(err)
	}
	if plan[0].Engine != DefaultEngine {
		t.Errorf("lenient plan engine = %q, want %q", plan[0].Engine, DefaultEngine)
	}
}

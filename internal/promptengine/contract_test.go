package promptengine

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeReplaceScope(t *testing.T) {
	b := New()
	full := []string{"wall", "floor", "ceiling"}

	tests := []struct {
		name      string
		scope     []string
		want      []string
		wantWarns int
	}{
		{name: "empty falls back to full set", scope: nil, want: full},
		{name: "fully invalid falls back with warnings", scope: []string{"not-a-surface"}, want: full, wantWarns: 2},
		{name: "single surface", scope: []string{"floor"}, want: []string{"floor"}},
		{name: "synonyms resolve", scope: []string{"flooring", "walls"}, want: []string{"wall", "floor"}},
		{name: "invalid entries dropped with warning", scope: []string{"wall", "sofa"}, want: []string{"wall"}, wantWarns: 1},
		{name: "duplicates collapse", scope: []string{"wall", "wall"}, want: []string{"wall"}},
		{name: "canonical ordering restored", scope: []string{"ceiling", "wall"}, want: []string{"wall", "ceiling"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warns := b.NormalizeReplaceScope(tt.scope)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeReplaceScope(%v) = %v, want %v", tt.scope, got, tt.want)
			}
			if len(warns) != tt.wantWarns {
				t.Errorf("NormalizeReplaceScope(%v) warnings = %v, want %d", tt.scope, warns, tt.wantWarns)
			}
		})
	}
}

func TestBuildContractScoped(t *testing.T) {
	b := New()

	contract, _, err := b.BuildContract("material_replace", []string{"floor"}, false)
	if err != nil {
		t.Fatalf("BuildContract: %v", err)
	}
	if !reflect.DeepEqual(contract.EditTargets, []string{"floor"}) {
		t.Errorf("edit targets = %v, want [floor]", contract.EditTargets)
	}
	for _, surface := range []string{"wall", "ceiling"} {
		if !containsString(contract.ProtectTargets, surface) {
			t.Errorf("protect targets %v should contain excluded surface %q", contract.ProtectTargets, surface)
		}
	}
	if contract.PassID != "MR_floor" {
		t.Errorf("pass id = %q, want MR_floor", contract.PassID)
	}
	if !contract.NeedsHardMask || !contract.NeedsBlendMask {
		t.Error("scoped replace contract should keep hard+blend mask requirements")
	}
}

func TestBuildContractScopeFallbackConvergesOnDefault(t *testing.T) {
	b := New()

	// a scope that normalizes away entirely falls back to the full surface
	// set, which leaves nothing to move into the protect set
	scoped, warns, err := b.BuildContract("material_replace", []string{"bogus"}, false)
	if err != nil {
		t.Fatalf("BuildContract: %v", err)
	}
	if len(warns) == 0 {
		t.Error("expected fallback warnings")
	}
	unscoped, _, err := b.BuildContract("material_replace", nil, false)
	if err != nil {
		t.Fatalf("BuildContract: %v", err)
	}
	if !reflect.DeepEqual(scoped.EditTargets, unscoped.EditTargets) {
		t.Errorf("fallback edit targets %v != unscoped %v", scoped.EditTargets, unscoped.EditTargets)
	}
	if !reflect.DeepEqual(scoped.ProtectTargets, unscoped.ProtectTargets) {
		t.Errorf("fallback protect targets %v != unscoped %v", scoped.ProtectTargets, unscoped.ProtectTargets)
	}
	if scoped.PassID != "MR_wall_floor_ceiling" {
		t.Errorf("fallback pass id = %q, want MR_wall_floor_ceiling", scoped.PassID)
	}
}

func TestContractEditProtectDisjoint(t *testing.T) {
	b := New()

	scopes := [][]string{nil, {"wall"}, {"floor"}, {"ceiling"}, {"wall", "ceiling"}, {"bogus"}}
	for _, task := range TaskModes() {
		for _, scope := range scopes {
			contract, _, err := b.BuildContract(string(task), scope, false)
			if err != nil {
				t.Fatalf("BuildContract(%s, %v): %v", task, scope, err)
			}
			edit := make(map[string]struct{})
			for _, target := range contract.EditTargets {
				edit[target] = struct{}{}
			}
			for _, target := range contract.ProtectTargets {
				if _, clash := edit[target]; clash {
					t.Errorf("task %s scope %v: %q is both edit and protect target", task, scope, target)
				}
			}
		}
	}
}

func TestBuildContractStrictRejectsUnknownTask(t *testing.T) {
	b := New()

	if _, _, err := b.BuildContract("repaint_everything", nil, true); !errors.Is(err, ErrInvalidEnum) {
		t.Fatalf("strict BuildContract error = %v, want ErrInvalidEnum", err)
	}

	contract, warns, err := b.BuildContract("repaint_everything", nil, false)
	if err != nil {
		t.Fatalf("lenient BuildContract: %v", err)
	}
	if len(warns) == 0 {
		t.Error("lenient fallback should warn")
	}
	if contract.PassID != baseContracts[DefaultTaskMode].PassID {
		t.Errorf("lenient fallback pass id = %q, want default task contract", contract.PassID)
	}
}

func TestBlendSpecDefaults(t *testing.T) {
	def := defaultBlendSpec()
	if def.Ratio != 0.005 || def.MinPx != 3 || def.MaxPx != 20 || !def.RingOnly || !def.OutwardOnly {
		t.Errorf("default blend spec = %+v", def)
	}
	blend := baseContracts[TaskEdgeBlend].Blend
	if blend.Ratio != 0.015 || blend.MinPx != 10 || blend.MaxPx != 50 {
		t.Errorf("edge blend ring spec = %+v, want wider 0.015/10-50 ring", blend)
	}
}

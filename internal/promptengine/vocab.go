package promptengine

import (
	"fmt"
	"regexp"
	"strings"
)

// VocabVersion tags every emitted contract so the segmentation side can
// detect class-name drift between deployments.
const VocabVersion = "1.1.0"

// Category groups mask classes by the role a region plays in the image.
type Category string

const (
	CategorySurface   Category = "surface"
	CategoryFrame     Category = "frame"
	CategoryGlass     Category = "glass"
	CategoryTrim      Category = "trim"
	CategoryStructure Category = "structure"
	CategoryObject    Category = "object"
	CategoryZone      Category = "zone"
	CategoryView      Category = "view"
)

// ClassEntry describes one canonical maskable region class.
type ClassEntry struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// Vocabulary is the read-only registry of mask classes. Generic "window",
// "door" and "trim" are deliberately unresolvable: a caller has to pick the
// frame/glass variant explicitly instead of getting a silent guess.
type Vocabulary struct {
	entries   []ClassEntry
	canonical map[string]ClassEntry
	synonyms  map[string]string
	ambiguous map[string][]string
}

var vocabEntries = []ClassEntry{
	{Name: "wall", Category: CategorySurface, Synonyms: []string{"walls", "wall_surface"}},
	{Name: "floor", Category: CategorySurface, Synonyms: []string{"flooring", "floor_surface"}},
	{Name: "ceiling", Category: CategorySurface, Synonyms: []string{"ceiling_surface"}},
	{Name: "window_frame", Category: CategoryFrame, Synonyms: []string{"window_trim"}},
	{Name: "window_glass", Category: CategoryGlass, Synonyms: []string{"glass", "window_pane"}},
	{Name: "door_frame", Category: CategoryFrame, Synonyms: []string{"door_trim"}},
	{Name: "skirting", Category: CategoryTrim, Synonyms: []string{"baseboard", "skirting_board"}},
	{Name: "beam", Category: CategoryStructure, Synonyms: []string{"ceiling_beam"}},
	{Name: "column", Category: CategoryStructure, Synonyms: []string{"pillar"}},
	{Name: "furniture", Category: CategoryObject, Synonyms: []string{"existing_furniture"}},
	{Name: "empty_space", Category: CategoryZone, Synonyms: []string{"floor_empty_area", "placement_zone"}},
	{Name: "boundary_region", Category: CategoryZone, Synonyms: []string{"transition_zone", "edge_zone"}},
	{Name: "material_center", Category: CategoryZone, Synonyms: []string{"unchanged_area", "interior_area"}},
	{Name: "view_outside", Category: CategoryView, Synonyms: []string{"exterior_view", "outside"}},
}

var ambiguousClasses = map[string][]string{
	"window": {"window_frame", "window_glass"},
	"door":   {"door_frame"},
	"trim":   {"skirting"},
}

func newVocabulary() *Vocabulary {
	v := &Vocabulary{
		entries:   vocabEntries,
		canonical: make(map[string]ClassEntry, len(vocabEntries)),
		synonyms:  make(map[string]string),
		ambiguous: ambiguousClasses,
	}
	for _, e := range vocabEntries {
		v.canonical[e.Name] = e
		for _, s := range e.Synonyms {
			v.synonyms[normalizeClassToken(s)] = e.Name
		}
	}
	return v
}

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	nonAlnum      = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)

// normalizeClassToken folds spaces, hyphens and camel case into the
// snake_case token form the registry is keyed by.
func normalizeClassToken(name string) string {
	name = camelBoundary.ReplaceAllString(name, "${1}_${2}")
	name = nonAlnum.ReplaceAllString(name, "_")
	return strings.Trim(strings.ToLower(name), "_")
}

// Resolve maps a caller-supplied class name to its canonical form. Ambiguous
// terms never resolve: strict mode returns ErrAmbiguousClass naming the valid
// explicit variants, lenient mode returns an empty canonical name plus a
// warning. A name with no match at all resolves to "" without a warning.
func (v *Vocabulary) Resolve(name string, strict bool) (canonical string, warning string, err error) {
	normalized := normalizeClassToken(name)

	if options, ok := v.ambiguous[normalized]; ok {
		msg := fmt.Sprintf("ambiguous class %q, use one of: %s", name, strings.Join(options, ", "))
		if strict {
			return "", "", fmt.Errorf("%w: %s", ErrAmbiguousClass, msg)
		}
		return "", msg, nil
	}

	if _, ok := v.canonical[normalized]; ok {
		return normalized, "", nil
	}
	if canonical, ok := v.synonyms[normalized]; ok {
		return canonical, "", nil
	}
	return "", "", nil
}

// Entry returns the registry entry for a canonical name.
func (v *Vocabulary) Entry(name string) (ClassEntry, bool) {
	e, ok := v.canonical[name]
	return e, ok
}

// Entries returns every registered class in registry order.
func (v *Vocabulary) Entries() []ClassEntry {
	out := make([]ClassEntry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Validate resolves every edit and protect target of a contract and returns
// one violation per name that does not resolve. It never fails: the caller
// decides whether violations are fatal.
func (v *Vocabulary) Validate(contract MaskContract) []string {
	var violations []string
	for _, target := range contract.EditTargets {
		if canonical, _, _ := v.Resolve(target, false); canonical == "" {
			violations = append(violations, fmt.Sprintf("edit_target %q not in mask vocabulary", target))
		}
	}
	for _, target := range contract.ProtectTargets {
		if canonical, _, _ := v.Resolve(target, false); canonical == "" {
			violations = append(violations, fmt.Sprintf("protect_target %q not in mask vocabulary", target))
		}
	}
	return violations
}

package promptengine

import (
	"fmt"
)

// TaskMode selects which kind of edit a prompt drives. It is a control enum:
// an unknown value is never routed silently to a branch.
type TaskMode string

const (
	TaskFullRender      TaskMode = "full_render"
	TaskMaterialReplace TaskMode = "material_replace"
	TaskEdgeBlend       TaskMode = "edge_blend"
	TaskFurnitureAdd    TaskMode = "furniture_add"
)

// EngineID identifies the downstream generation engine family.
type EngineID string

const (
	EngineSDXL       EngineID = "sdxl"
	EngineFlux       EngineID = "flux"
	EngineMidjourney EngineID = "midjourney"
	EngineMultimodal EngineID = "multimodal"
	EngineEdit       EngineID = "edit"
)

// Quality selects a quality tier phrase bundle.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHigh     Quality = "high"
	QualityUltra    Quality = "ultra"
)

// Documented fallback values for lenient enum normalization.
const (
	DefaultTaskMode = TaskFullRender
	DefaultEngine   = EngineEdit
	DefaultQuality  = QualityHigh
)

// TaskModes returns the closed set of task modes in declaration order.
func TaskModes() []TaskMode {
	return []TaskMode{TaskFullRender, TaskMaterialReplace, TaskEdgeBlend, TaskFurnitureAdd}
}

// Engines returns the closed set of engine identifiers in declaration order.
func Engines() []EngineID {
	return []EngineID{EngineSDXL, EngineFlux, EngineMidjourney, EngineMultimodal, EngineEdit}
}

// QualityLevels returns the closed set of quality tiers in declaration order.
func QualityLevels() []Quality {
	return []Quality{QualityStandard, QualityHigh, QualityUltra}
}

// normalizeTask validates a task value against the closed set. Strict mode
// returns an error naming the valid values; lenient mode falls back to
// DefaultTaskMode and records a warning.
func normalizeTask(value string, strict bool, warns *warningList) (TaskMode, error) {
	for _, t := range TaskModes() {
		if value == string(t) {
			return t, nil
		}
	}
	if value == "" {
		return DefaultTaskMode, nil
	}
	if strict {
		return "", fmt.Errorf("%w: task mode %q (valid: %v)", ErrInvalidEnum, value, TaskModes())
	}
	warns.addf("invalid task mode %q, falling back to %q", value, DefaultTaskMode)
	return DefaultTaskMode, nil
}

func normalizeEngine(value string, strict bool, warns *warningList) (EngineID, error) {
	for _, e := range Engines() {
		if value == string(e) {
			return e, nil
		}
	}
	if value == "" {
		return DefaultEngine, nil
	}
	if strict {
		return "", fmt.Errorf("%w: engine %q (valid: %v)", ErrInvalidEnum, value, Engines())
	}
	warns.addf("invalid engine %q, falling back to %q", value, DefaultEngine)
	return DefaultEngine, nil
}

func normalizeQuality(value string, strict bool, warns *warningList) (Quality, error) {
	for _, q := range QualityLevels() {
		if value == string(q) {
			return q, nil
		}
	}
	if value == "" {
		return DefaultQuality, nil
	}
	if strict {
		return "", fmt.Errorf("%w: quality level %q (valid: %v)", ErrInvalidEnum, value, QualityLevels())
	}
	warns.addf("invalid quality level %q, falling back to %q", value, DefaultQuality)
	return DefaultQuality, nil
}

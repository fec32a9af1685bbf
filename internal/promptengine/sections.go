package promptengine

import (
	"fmt"
	"strings"
)

// Section names one fragment slot of the assembled instruction.
type Section string

const (
	SectionStructLock Section = "struct_lock"
	SectionTask       Section = "task"
	SectionPreserve   Section = "preserve"
	SectionTarget     Section = "target"
	SectionStyle      Section = "style"
	SectionCamera     Section = "camera"
	SectionStructHint Section = "struct_hint"
	SectionLight      Section = "light"
	SectionColor      Section = "color"
	SectionReal       Section = "real"
	SectionTime       Section = "time"
	SectionMarketing  Section = "marketing"
	SectionCustom     Section = "custom"
)

// SectionMap holds the rendered fragments for one request. A missing key
// means the fragment does not apply to the task/engine combination; ordering
// is owned by the assembly profiles.
type SectionMap map[Section]string

// phrase is a two-language fragment pair.
type phrase struct {
	EN string
	ZH string
}

func (p phrase) in(lang string) string {
	if lang == "zh" {
		return p.ZH
	}
	return p.EN
}

// Structure lock. The hard imperative form drives every engine except the
// short-form Midjourney family, which responds better to descriptive text.
var structLockHard = phrase{
	EN: "Do not change geometry. Do not move or add windows/doors. Keep all edges straight and aligned. Preserve the original perspective and camera position. Maintain exact room layout and proportions.",
	ZH: "禁止改动几何结构与透视：不新增/移动门窗，不改变墙体边界，垂直线保持笔直，镜头位置不变，保持原有房间格局和比例。",
}

var structLockSoft = phrase{
	EN: "same room layout, same windows and doors positions, same perspective, straight vertical lines",
	ZH: "相同房间布局，相同门窗位置，相同透视角度，垂直线笔直",
}

// ControlNet-style structure hint for the diffusion engines.
const structHintControlNet = "architectural line fidelity, straight edges, no warping, precise geometry"

var preserveFurnitureAdd = phrase{
	EN: "Do not change existing finishes (walls, floor, ceiling). Only add furniture and soft furnishings.",
	ZH: "不改变现有饰面（墙面、地面、天花板）。只添加家具和软装。",
}

var consistencyEdgeBlend = phrase{
	EN: "Only adjust the narrow boundary ring region; do not repaint large areas. Match existing photo noise, grain and exposure exactly. Seamless integration with no visible boundaries. Continuous contact shadows across transitions.",
	ZH: "只调整边界环形过渡区，不要重绘大面积区域。完全匹配现有照片的噪点、颗粒和曝光。无缝融合，无可见边界。过渡区域接触阴影连续。",
}

// Allows edge touch-ups but never shape or position changes.
var objectIntegrityLock = phrase{
	EN: "Do not add new objects. Keep existing objects' shapes and positions unchanged.",
	ZH: "不新增物体。保持现有物体的形状和位置不变。",
}

// Phrases in a free-text hint that imply geometry, opening or furniture
// changes; in material_replace mode the hint gets a containment suffix.
var replaceForbiddenHints = []string{"add furniture", "new furniture", "change layout", "new windows", "add door"}

const replaceHintSuffix = ". Only if it does not change geometry or add objects."

// composeInput carries everything the composer needs, fully resolved.
type composeInput struct {
	Task      TaskMode
	Engine    EngineID
	Quality   QualityPreset
	Style     StylePreset
	Room      RoomType
	Materials MaterialMap
	Scope     []string
	Custom    string
	Lang      string
	Marketing bool
	TimeOfDay string
}

// composeSections builds the fragment map in fixed priority order:
// struct_lock, task, preserve, target, style, camera/struct_hint, light,
// color, realism, time, marketing, custom.
func composeSections(in composeInput) SectionMap {
	sections := make(SectionMap)
	lang := in.Lang

	// structure lock always present; the short-form engine and the
	// furniture-only task respond better to the descriptive form
	if in.Engine == EngineMidjourney || in.Task == TaskFurnitureAdd {
		sections[SectionStructLock] = structLockSoft.in(lang)
	} else {
		sections[SectionStructLock] = structLockHard.in(lang)
	}

	scopeDesc := strings.Join(in.Scope, ", ")

	switch in.Task {
	case TaskFullRender:
		sections[SectionTask] = fmt.Sprintf("Transform this unfinished apartment into a high-end fully finished %s interior design in %s style",
			in.Room.DisplayName(lang), in.Style.DisplayName(lang))
	case TaskMaterialReplace:
		if lang == "zh" {
			sections[SectionTask] = fmt.Sprintf("仅替换指定表面（%s）。不改变家具、布局、门窗或照明。", scopeDesc)
		} else {
			sections[SectionTask] = fmt.Sprintf("Replace ONLY the specified surfaces (%s). Do not change furniture, layout, openings, or lighting.", scopeDesc)
		}
	case TaskEdgeBlend:
		sections[SectionTask] = "Seamlessly blend the edges where new materials meet existing surfaces"
	case TaskFurnitureAdd:
		sections[SectionTask] = fmt.Sprintf("Add furniture and soft furnishings in %s style", in.Style.DisplayName(lang))
	}

	switch in.Task {
	case TaskMaterialReplace:
		var preserveBase string
		if lang == "zh" {
			preserveBase = fmt.Sprintf("只替换范围内表面：%s。保持窗框、踢脚线、门框、梁柱不变。", scopeDesc)
		} else {
			preserveBase = fmt.Sprintf("Only replace surfaces in scope: %s. Keep window frames, skirting boards, door frames, beams and columns unchanged.", scopeDesc)
		}
		sections[SectionPreserve] = preserveBase + " " + objectIntegrityLock.in(lang)
	case TaskFurnitureAdd:
		sections[SectionPreserve] = preserveFurnitureAdd.in(lang)
	case TaskEdgeBlend:
		blend := baseContracts[TaskEdgeBlend].Blend
		var blendHint string
		if lang == "zh" {
			blendHint = fmt.Sprintf("只修改掩膜边界周围的细环形区域（%d-%d像素）。不要编辑内部区域。只向外羽化。", blend.MinPx, blend.MaxPx)
		} else {
			blendHint = fmt.Sprintf("Only modify a thin ring band around the mask boundary (%d-%dpx). Do not edit the interior region. Feather outward only.", blend.MinPx, blend.MaxPx)
		}
		sections[SectionPreserve] = consistencyEdgeBlend.in(lang) + " " + blendHint + " " + objectIntegrityLock.in(lang)
	}

	switch in.Task {
	case TaskFullRender:
		// material list form, short enough for every engine
		var parts []string
		for _, key := range []string{"wall", "floor", "ceiling", "feature", "trim", "cabinet"} {
			if m := in.Materials[key]; m != "" {
				parts = append(parts, m)
			}
		}
		if len(parts) > 0 {
			sections[SectionTarget] = strings.Join(parts, ", ")
		}
	case TaskMaterialReplace:
		if target := replaceTargetFragment(in.Scope, in.Materials, lang); target != "" {
			sections[SectionTarget] = target
		}
	}

	if in.Task == TaskEdgeBlend {
		sections[SectionLight] = edgeBlendQuality.Light
		sections[SectionColor] = edgeBlendQuality.Color
		sections[SectionReal] = edgeBlendQuality.RealMatch
	} else {
		sections[SectionLight] = in.Quality.Light
		sections[SectionColor] = in.Quality.Color
		if in.Task == TaskMaterialReplace || in.Task == TaskFurnitureAdd {
			sections[SectionReal] = in.Quality.RealMatch
		} else {
			sections[SectionReal] = in.Quality.RealPhoto
		}
	}

	if in.Task == TaskFullRender || in.Task == TaskFurnitureAdd {
		sections[SectionStyle] = in.Style.Prompt
	}

	// camera text induces geometry drift when blending, so edge_blend skips it
	if in.Task != TaskEdgeBlend {
		sections[SectionCamera] = in.Quality.Camera
		if in.Engine == EngineSDXL || in.Engine == EngineFlux {
			sections[SectionStructHint] = structHintControlNet
		}
	}

	if in.TimeOfDay == "golden_hour" && in.Task != TaskEdgeBlend {
		sections[SectionTime] = "golden hour warmth"
	}

	if in.Marketing && in.Task == TaskFullRender {
		sections[SectionMarketing] = "aspirational lifestyle, design magazine quality"
	}

	if custom := strings.TrimSpace(in.Custom); custom != "" {
		if in.Task == TaskMaterialReplace && hintImpliesGeometryChange(custom) {
			custom += replaceHintSuffix
		}
		sections[SectionCustom] = custom
	}

	return sections
}

// replaceTargetFragment renders the surface→material mapping limited to the
// replace scope.
func replaceTargetFragment(scope []string, materials MaterialMap, lang string) string {
	type mapping struct {
		key     string
		labelEN string
		labelZH string
	}
	order := []mapping{
		{"wall", "Walls", "墙面"},
		{"floor", "Floor", "地面"},
		{"ceiling", "Ceiling", "顶面"},
		{"feature", "Feature wall", "背景墙"},
		{"trim", "Trim", "收口"},
	}
	inScope := make(map[string]struct{}, len(scope))
	for _, s := range scope {
		inScope[s] = struct{}{}
	}
	var parts []string
	for _, m := range order {
		if _, ok := inScope[m.key]; !ok {
			continue
		}
		material := materials[m.key]
		if material == "" {
			continue
		}
		if lang == "zh" {
			parts = append(parts, fmt.Sprintf("%s→%s", m.labelZH, material))
		} else {
			parts = append(parts, fmt.Sprintf("%s → %s", m.labelEN, material))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	if lang == "zh" {
		return strings.Join(parts, "；") + "。"
	}
	return strings.Join(parts, ". ") + "."
}

func hintImpliesGeometryChange(hint string) bool {
	lower := strings.ToLower(hint)
	for _, kw := range replaceForbiddenHints {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

package promptengine

// StylePreset is a design style loaded once at startup. NameZH/NameEN feed
// the display layer; Prompt is the descriptive phrase injected into the
// style fragment; Materials names the default material preset.
type StylePreset struct {
	ID          string `json:"id"`
	NameZH      string `json:"name_zh"`
	NameEN      string `json:"name_en"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Materials   string `json:"materials"`
}

// DisplayName returns the localized style name.
func (s StylePreset) DisplayName(lang string) string {
	if lang == "zh" {
		return s.NameZH
	}
	return s.NameEN
}

// RoomType is a room preset with localized display names.
type RoomType struct {
	ID     string `json:"id"`
	NameZH string `json:"name_zh"`
	NameEN string `json:"name_en"`
}

// DisplayName returns the localized room name.
func (r RoomType) DisplayName(lang string) string {
	if lang == "zh" {
		return r.NameZH
	}
	return r.NameEN
}

// MaterialMap maps a surface key (wall, floor, ceiling, feature, trim,
// ceiling_finish, cabinet) to a material phrase.
type MaterialMap map[string]string

func (m MaterialMap) clone() MaterialMap {
	out := make(MaterialMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// materialKeys is the canonical surface-key order used when rendering
// material lists.
var materialKeys = []string{"wall", "floor", "ceiling", "feature", "trim", "ceiling_finish", "cabinet"}

// QualityPreset bundles the camera/light/color/realism phrases of one tier.
// RealPhoto is the fresh-photo realism phrase, RealMatch the match-existing
// variant used by localized edit tasks.
type QualityPreset struct {
	Camera    string
	Light     string
	Color     string
	RealPhoto string
	RealMatch string
}

// edgeBlendQuality replaces the tier bundle for edge_blend passes: no camera
// phrase, and every remaining phrase tuned for matching rather than
// generating.
type blendQuality struct {
	Light     string
	Color     string
	RealMatch string
}

// Documented cosmetic fallbacks for display-layer preset ids.
const (
	DefaultStyleID    = "wabi_sabi"
	DefaultRoomID     = "living_room"
	DefaultMaterialID = "luxury_minimal"
)

var stylePresets = map[string]StylePreset{
	"wabi_sabi": {
		ID: "wabi_sabi", NameZH: "侘寂极简", NameEN: "Wabi-Sabi Minimal", Description: "高级、克制、耐看",
		Prompt:    "wabi-sabi minimalism, understated luxury, muted earth tones, gray-white-beige palette, low saturation, natural imperfections embraced, handmade ceramics, linen textiles, generous white space, warm natural light, zen tranquility",
		Materials: "wabi_sabi",
	},
	"modern_luxury": {
		ID: "modern_luxury", NameZH: "现代极简豪宅", NameEN: "Modern Minimal Mansion", Description: "豪宅感、干净利落",
		Prompt:    "modern minimal luxury, large format stone slab, ultra-narrow metal trims, floor-to-ceiling integrated storage, floating consoles, hidden LED strips, low modular seating, glass and metal accents, black-white-gray with warm wood, extreme precision and cleanliness",
		Materials: "modern_luxury",
	},
	"japandi_cream": {
		ID: "japandi_cream", NameZH: "日式原木奶油风", NameEN: "Japandi Cream", Description: "温馨高级、好住",
		Prompt:    "Japandi style, creamy white walls, light honey oak, rounded furniture shapes, oatmeal linen upholstery, curved forms, rattan and cane accents, soft diffused lighting, indoor plants in ceramic planters, warm inviting atmosphere",
		Materials: "japandi",
	},
	"modern": {
		ID: "modern", NameZH: "现代简约", NameEN: "Modern Minimalist", Description: "干净整洁、功能主义",
		Prompt:    "modern minimalist, clean geometric lines, neutral palette, white and light gray, light oak flooring, functional furniture, hidden storage, recessed lighting, uncluttered space",
		Materials: "luxury_minimal",
	},
	"scandinavian": {
		ID: "scandinavian", NameZH: "北欧风格", NameEN: "Scandinavian", Description: "温馨舒适、自然明亮",
		Prompt:    "Scandinavian Nordic, white painted walls, light birch wood, natural wood furniture, soft gray-white tones, wool textiles, ceramic vases, indoor plants, pendant lights with warm glow, cozy and bright",
		Materials: "japandi",
	},
	"new_chinese": {
		ID: "new_chinese", NameZH: "新中式", NameEN: "Modern Chinese", Description: "东方意境、现代演绎",
		Prompt:    "modern new Chinese, ink wash palette (black white gray), dark walnut furniture, Ming dynasty silhouettes, Chinese landscape elements, porcelain vases, bamboo accents, bronze hardware, symmetrical balance, oriental elegance",
		Materials: "luxury_minimal",
	},
	"luxury": {
		ID: "luxury", NameZH: "轻奢风格", NameEN: "Light Luxury", Description: "精致高端、低调奢华",
		Prompt:    "light luxury, understated opulence, Italian marble, brushed brass details, velvet upholstery, herringbone oak, Venetian plaster, designer furniture, modern chandelier, champagne and charcoal palette",
		Materials: "modern_luxury",
	},
	"industrial": {
		ID: "industrial", NameZH: "工业风格", NameEN: "Industrial Loft", Description: "粗犷原始、都市感",
		Prompt:    "industrial loft, exposed brick, raw concrete, steel beams, factory windows, Edison bulb pendants, distressed leather, reclaimed wood, metal pipe details, urban warehouse aesthetic",
		Materials: "industrial",
	},
}

// styleOrder keeps catalog listings stable.
var styleOrder = []string{"wabi_sabi", "modern_luxury", "japandi_cream", "modern", "scandinavian", "new_chinese", "luxury", "industrial"}

var materialPresets = map[string]MaterialMap{
	"luxury_minimal": {
		"wall":    "light microcement",
		"floor":   "wide-plank light oak hardwood",
		"feature": "stone slab",
		"trim":    "3mm brushed black metal",
		"ceiling": "matte white plaster",
		"cabinet": "handleless floor-to-ceiling integrated cabinetry",
	},
	"wabi_sabi": {
		"wall":    "textured plaster with natural imperfections",
		"floor":   "wide-plank white oak",
		"feature": "lime wash texture wall",
		"trim":    "concealed skirting",
		"ceiling": "raw plaster with subtle texture",
		"cabinet": "solid wood with rounded edges",
	},
	"modern_luxury": {
		"wall":    "large format porcelain slab",
		"floor":   "herringbone oak parquet",
		"feature": "bookmatched marble slab",
		"trim":    "ultra-narrow 3mm gold metal",
		"ceiling": "recessed cove with hidden LED",
		"cabinet": "high-gloss lacquer floor-to-ceiling",
	},
	"japandi": {
		"wall":    "creamy white matte paint",
		"floor":   "light honey oak wide-plank",
		"feature": "wood slat partition",
		"trim":    "natural wood edge",
		"ceiling": "white with exposed wood beams",
		"cabinet": "light wood with rattan inserts",
	},
	"industrial": {
		"wall":    "exposed brick",
		"floor":   "polished concrete",
		"feature": "raw steel beam",
		"trim":    "black iron pipe",
		"ceiling": "exposed ductwork and beams",
		"cabinet": "reclaimed wood and metal",
	},
}

var materialOrder = []string{"luxury_minimal", "wabi_sabi", "modern_luxury", "japandi", "industrial"}

var roomTypes = map[string]RoomType{
	"living_room":    {ID: "living_room", NameZH: "客厅", NameEN: "living room"},
	"bedroom":        {ID: "bedroom", NameZH: "卧室", NameEN: "bedroom"},
	"master_bedroom": {ID: "master_bedroom", NameZH: "主卧", NameEN: "master bedroom"},
	"kitchen":        {ID: "kitchen", NameZH: "厨房", NameEN: "kitchen"},
	"bathroom":       {ID: "bathroom", NameZH: "卫生间", NameEN: "bathroom"},
	"dining_room":    {ID: "dining_room", NameZH: "餐厅", NameEN: "dining room"},
	"study":          {ID: "study", NameZH: "书房", NameEN: "study room"},
	"balcony":        {ID: "balcony", NameZH: "阳台", NameEN: "balcony"},
	"entrance":       {ID: "entrance", NameZH: "玄关", NameEN: "entrance hall"},
	"children_room":  {ID: "children_room", NameZH: "儿童房", NameEN: "children's room"},
}

var roomOrder = []string{"living_room", "bedroom", "master_bedroom", "kitchen", "bathroom", "dining_room", "study", "balcony", "entrance", "children_room"}

var qualityPresets = map[Quality]QualityPreset{
	QualityStandard: {
		Camera:    "interior photography, level camera",
		Light:     "natural daylight, soft shadows",
		Color:     "natural white balance",
		RealPhoto: "realistic interior photo",
		RealMatch: "match existing photo style",
	},
	QualityHigh: {
		Camera:    "24mm wide-angle interior photography, level camera, straight vertical lines",
		Light:     "soft natural daylight from windows, realistic contact shadows, layered ambient lighting",
		Color:     "natural white balance, subtle contrast, professional color grading",
		RealPhoto: "photorealistic interior photography, no CGI look, no render artifacts",
		RealMatch: "match existing photo noise and grain and exposure, seamless integration",
	},
	QualityUltra: {
		Camera:    "24mm wide-angle professional interior photography, perfect level camera, razor-sharp vertical lines, architectural precision",
		Light:     "soft diffused natural daylight streaming from windows, physically accurate contact shadows, layered lighting system (ambient + accent + task)",
		Color:     "cinematic color grading, natural white balance, rich midtones, subtle film grain",
		RealPhoto: "photorealistic interior photography indistinguishable from real photo, absolutely no CGI artifacts, no render look, no synthetic feel",
		RealMatch: "match existing photo noise and grain and exposure and color temperature exactly, seamless integration, no visible boundaries, continuous shadows",
	},
}

var edgeBlendQuality = blendQuality{
	Light:     "continuous contact shadows, match existing lighting direction and intensity",
	Color:     "match white balance and exposure exactly, no color shift",
	RealMatch: "match grain, noise, texture, color temperature exactly, seamless integration, no visible seams or boundaries",
}

// Negative phrase building blocks. Noise terms are kept separate from the
// base so they never conflict with positive "match noise/grain" phrases.
const (
	negativeQualityBase = "low quality, blurry, overexposed, oversaturated, underexposed, artifacts, jpeg compression"
	negativeNoise       = "excessive noise, blotchy noise, chroma noise, banding"
	negativeQuality     = negativeQualityBase + ", " + negativeNoise
	negativeStructure   = "wrong layout, changed geometry, moved windows, extra openings, warped straight lines, distorted perspective, tilted verticals, bent edges, extra doors, missing walls, wrong room shape"
	negativeCGI         = "cartoon, anime, unreal engine, 3d render, cgi, game screenshot, digital art, illustration, painting, drawing, synthetic, fake, artificial"
	negativeDesign      = "duplicate furniture, cluttered, messy, cheap materials, plastic texture, mismatched styles, wrong scale, floating objects"
	negativeWatermark   = "text, watermark, logo, signature, copyright, banner, frame, border"
	negativeSeams       = "visible seams, color mismatch, texture discontinuity, boundary artifacts, unnatural transition"
)

var negativeByEngine = map[EngineID]string{
	EngineSDXL:       negativeQuality + ", " + negativeStructure + ", " + negativeCGI + ", " + negativeDesign + ", " + negativeWatermark,
	EngineFlux:       negativeQuality + ", " + negativeStructure + ", " + negativeCGI + ", " + negativeDesign,
	EngineMidjourney: negativeCGI + ", blurry, low quality",
	EngineMultimodal: negativeQuality + ", " + negativeStructure + ", " + negativeCGI + ", " + negativeDesign + ", " + negativeWatermark,
	EngineEdit:       negativeStructure + ", " + negativeSeams,
}

// Per-task negative addenda. edge_blend is intentionally empty: its spatial
// constraints live in the positive preserve fragment, which the edit engines
// follow far more reliably than a negative phrase.
var negativeByTask = map[TaskMode]string{
	TaskFullRender:      "",
	TaskMaterialReplace: "changed furniture, redesigned space, different layout",
	TaskEdgeBlend:       "",
	TaskFurnitureAdd:    "changed finishes, altered walls, different flooring",
}

// Params carries provider-specific generation parameters.
type Params map[string]any

func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

var engineParamsDefault = map[EngineID]Params{
	EngineMidjourney: {
		"ar":      "--ar 16:9",
		"stylize": "--stylize 100",
		"quality": "--quality 1",
		"version": "--v 6",
	},
	EngineSDXL: {
		"cfg_scale": 7,
		"steps":     30,
		"sampler":   "DPM++ 2M Karras",
	},
	EngineFlux: {
		"guidance": 3.5,
		"steps":    28,
	},
	EngineMultimodal: {
		"model":        "nano-banana-pro",
		"aspect_ratio": "auto",
	},
	EngineEdit: {
		"strength":  0.75,
		"mask_blur": 8,
	},
}

// Recommended strength values for edit-engine passes emitted by the planner.
const (
	editStrengthMin            = 0.45
	editStrengthMax            = 0.85
	editStrengthEdgeBlend      = 0.55
	editStrengthReplace        = 0.70
	editStrengthFurnitureBlend = 0.45
	editStrengthHarmonize      = 0.35
)

var engineParamsRange = map[EngineID]map[string]any{
	EngineEdit: {
		"strength":  map[string]any{"min": editStrengthMin, "max": editStrengthMax, "edge_blend": editStrengthEdgeBlend, "material_replace": editStrengthReplace},
		"mask_blur": map[string]any{"min": 4, "max": 12, "rule": "scale by resolution"},
	},
	EngineSDXL: {
		"cfg_scale": map[string]any{"min": 5, "max": 12},
		"steps":     map[string]any{"min": 20, "max": 50},
	},
	EngineFlux: {
		"guidance": map[string]any{"min": 2.0, "max": 5.0},
		"steps":    map[string]any{"min": 20, "max": 40},
	},
}

// resolveStyle applies the cosmetic fallback for unknown style ids.
func resolveStyle(id string) StylePreset {
	if s, ok := stylePresets[id]; ok {
		return s
	}
	return stylePresets[DefaultStyleID]
}

// resolveRoom applies the cosmetic fallback for unknown room ids.
func resolveRoom(id string) RoomType {
	if r, ok := roomTypes[id]; ok {
		return r
	}
	return roomTypes[DefaultRoomID]
}

// resolveMaterials layers material phrases: built-in default preset, then the
// style's declared preset, then caller overrides. The result is fully
// resolved before any text rendering happens.
func resolveMaterials(style StylePreset, overrides MaterialMap) MaterialMap {
	merged := materialPresets[DefaultMaterialID].clone()
	if preset, ok := materialPresets[style.Materials]; ok {
		for k, v := range preset {
			merged[k] = v
		}
	}
	for k, v := range overrides {
		if v != "" {
			merged[k] = v
		}
	}
	return merged
}

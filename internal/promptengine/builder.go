package promptengine

import (
	"strings"
)

// Builder is the prompt composition engine. All registries are immutable
// after New returns, so a single Builder is safe for concurrent use from any
// number of request handlers.
type Builder struct {
	vocab *Vocabulary
}

// New constructs a Builder over the built-in preset tables and vocabulary.
func New() *Builder {
	return &Builder{vocab: newVocabulary()}
}

// Vocab exposes the mask-class registry for resolution and validation.
func (b *Builder) Vocab() *Vocabulary {
	return b.vocab
}

// Request is one prompt composition request. Display ids (room, style)
// degrade to documented defaults when unknown; task/engine/quality are
// control enums and are validated, hard in strict mode.
type Request struct {
	RoomType     string            `json:"room_type"`
	Style        string            `json:"style"`
	TaskMode     string            `json:"task_mode"`
	Engine       string            `json:"engine"`
	QualityLevel string            `json:"quality_level"`
	Materials    map[string]string `json:"materials,omitempty"`
	Description  string            `json:"description,omitempty"`
	Language     string            `json:"language,omitempty"`
	Marketing    bool              `json:"marketing,omitempty"`
	TimeOfDay    string            `json:"time_of_day,omitempty"` // "" | "golden_hour" | "blue_hour"
	ReplaceScope []string          `json:"replace_scope,omitempty"`
	Strict       bool              `json:"strict,omitempty"`

	// SkipContractCheck disables the automatic vocabulary validation of the
	// derived contract. Validation only ever produces warnings.
	SkipContractCheck bool `json:"skip_contract_check,omitempty"`
}

// PromptResult is the full output record for one pass: final instruction
// pair, the fragment map, resolved display data, the edit contract and the
// provider parameter bundle. It is owned by the caller; the engine keeps no
// reference to it.
type PromptResult struct {
	Prompt         string     `json:"prompt"`
	NegativePrompt string     `json:"negative_prompt"`
	Sections       SectionMap `json:"sections"`

	StyleName   string `json:"style_name"`
	StyleNameEN string `json:"style_name_en"`
	RoomName    string `json:"room_name"`
	RoomNameEN  string `json:"room_name_en"`

	TaskMode     TaskMode `json:"task_mode"`
	Engine       EngineID `json:"engine"`
	QualityLevel Quality  `json:"quality_level"`

	Materials   MaterialMap `json:"materials"`
	Constraints []string    `json:"constraints"`

	MaskContract      MaskContract   `json:"mask_contract"`
	EngineParams      Params         `json:"engine_params"`
	EngineParamsRange map[string]any `json:"engine_params_range,omitempty"`
	EngineCLI         string         `json:"engine_cli,omitempty"`
	MaskVocabVersion  string         `json:"mask_vocab_version"`

	Warnings []string `json:"warnings,omitempty"`
}

// BuildPrompt runs the full pipeline: preset resolution, material layering,
// section composition, assembly, contract derivation and validation. It is
// deterministic: identical inputs produce identical results.
func (b *Builder) BuildPrompt(req Request) (*PromptResult, error) {
	var warns warningList

	task, err := normalizeTask(req.TaskMode, req.Strict, &warns)
	if err != nil {
		return nil, err
	}
	engine, err := normalizeEngine(req.Engine, req.Strict, &warns)
	if err != nil {
		return nil, err
	}
	quality, err := normalizeQuality(req.QualityLevel, req.Strict, &warns)
	if err != nil {
		return nil, err
	}

	style := resolveStyle(req.Style)
	room := resolveRoom(req.RoomType)
	qualityData := qualityPresets[quality]
	materials := resolveMaterials(style, req.Materials)
	lang := normalizeLanguage(req.Language)
	scope := b.normalizeReplaceScope(req.ReplaceScope, &warns)

	sections := composeSections(composeInput{
		Task:      task,
		Engine:    engine,
		Quality:   qualityData,
		Style:     style,
		Room:      room,
		Materials: materials,
		Scope:     scope,
		Custom:    req.Description,
		Lang:      lang,
		Marketing: req.Marketing,
		TimeOfDay: req.TimeOfDay,
	})

	prompt, negative := assemble(sections, engine, task)

	contract := contractFor(task, scope, len(req.ReplaceScope) > 0)
	if !req.SkipContractCheck {
		if violations := b.vocab.Validate(contract); len(violations) > 0 {
			warns.addf("mask contract validation: %s", strings.Join(violations, "; "))
		}
	}

	result := &PromptResult{
		Prompt:            prompt,
		NegativePrompt:    negative,
		Sections:          sections,
		StyleName:         style.NameZH,
		StyleNameEN:       style.NameEN,
		RoomName:          room.NameZH,
		RoomNameEN:        room.NameEN,
		TaskMode:          task,
		Engine:            engine,
		QualityLevel:      quality,
		Materials:         materials,
		Constraints:       constraintsFor(task),
		MaskContract:      contract,
		EngineParams:      engineParamsDefault[engine].clone(),
		EngineParamsRange: engineParamsRange[engine],
		MaskVocabVersion:  VocabVersion,
		Warnings:          warns,
	}

	if engine == EngineMidjourney {
		result.EngineCLI = midjourneyCLI(prompt, result.EngineParams)
	}
	return result, nil
}

// BuildInstruction is a convenience wrapper returning just the instruction
// pair for a plain render request.
func (b *Builder) BuildInstruction(room, style, task, engine, quality string, materials map[string]string, description, language string) (string, string, error) {
	result, err := b.BuildPrompt(Request{
		RoomType:     room,
		Style:        style,
		TaskMode:     task,
		Engine:       engine,
		QualityLevel: quality,
		Materials:    materials,
		Description:  description,
		Language:     language,
	})
	if err != nil {
		return "", "", err
	}
	return result.Prompt, result.NegativePrompt, nil
}

// constraintsFor returns the human-readable constraint statements surfaced
// alongside the machine contract.
func constraintsFor(task TaskMode) []string {
	constraints := []string{
		"Preserve original room geometry",
		"Keep windows and doors in exact positions",
		"Maintain vertical lines straight",
		"No perspective distortion",
	}
	switch task {
	case TaskMaterialReplace:
		constraints = append(constraints,
			"Keep window frames unchanged",
			"Keep skirting boards unchanged",
			"Keep door frames unchanged",
		)
	case TaskEdgeBlend:
		constraints = append(constraints,
			"Seamless material transitions",
			"Match color temperature exactly",
			"Match noise/grain pattern exactly",
			"No visible boundaries",
		)
	case TaskFurnitureAdd:
		constraints = append(constraints,
			"Do not change wall materials",
			"Do not change floor materials",
			"Correct furniture scale and shadows",
		)
	}
	return constraints
}

// midjourneyCLI renders the copy-paste command-line form the short-form
// engine expects.
func midjourneyCLI(prompt string, params Params) string {
	fields := []string{prompt}
	for _, key := range []string{"ar", "stylize", "version"} {
		if v, ok := params[key].(string); ok && v != "" {
			fields = append(fields, v)
		}
	}
	return strings.TrimSpace(strings.Join(fields, " "))
}

// normalizeLanguage folds any language tag to the two supported instruction
// languages; everything except Chinese renders English.
func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "zh" || strings.HasPrefix(lang, "zh-") || strings.HasPrefix(lang, "zh_") {
		return "zh"
	}
	return "en"
}

// ResolveMaskClass resolves a caller-supplied mask class name. See
// Vocabulary.Resolve for the ambiguity rules.
func (b *Builder) ResolveMaskClass(name string, strict bool) (string, string, error) {
	return b.vocab.Resolve(name, strict)
}

// ValidateContract reports every unresolved class name in the contract.
func (b *Builder) ValidateContract(contract MaskContract) []string {
	return b.vocab.Validate(contract)
}

// NegativeFor returns the negative instruction for an engine/task pair
// without building a full prompt.
func (b *Builder) NegativeFor(engine EngineID, task TaskMode) string {
	base, ok := negativeByEngine[engine]
	if !ok {
		base = negativeByEngine[EngineMultimodal]
	}
	if addendum := negativeByTask[task]; addendum != "" {
		return base + ", " + addendum
	}
	return base
}

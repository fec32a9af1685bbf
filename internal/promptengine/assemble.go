package promptengine

import "strings"

// assemblyProfile declares which fragments an engine consumes, in which
// order, and how they are joined. Missing or empty fragments are skipped.
type assemblyProfile struct {
	Keys      []Section
	Separator string
}

// Short-form engines take a 4-key subset; instruction-following edit engines
// take sentence-joined subsets; everything else gets the full ordering.
// struct_lock leads every profile.
var (
	profileMidjourney = assemblyProfile{
		Keys:      []Section{SectionStructLock, SectionTask, SectionStyle, SectionReal},
		Separator: ", ",
	}
	profileEdit = assemblyProfile{
		Keys:      []Section{SectionStructLock, SectionTask, SectionPreserve, SectionCustom, SectionLight, SectionColor, SectionReal},
		Separator: ". ",
	}
	profileEdgeBlend = assemblyProfile{
		Keys:      []Section{SectionStructLock, SectionTask, SectionPreserve, SectionLight, SectionColor, SectionReal},
		Separator: ". ",
	}
	profileFull = assemblyProfile{
		Keys:      []Section{SectionStructLock, SectionTask, SectionPreserve, SectionCustom, SectionTarget, SectionStyle, SectionCamera, SectionStructHint, SectionLight, SectionColor, SectionReal, SectionTime, SectionMarketing},
		Separator: ", ",
	}
)

func profileFor(engine EngineID, task TaskMode) assemblyProfile {
	switch {
	case engine == EngineMidjourney:
		return profileMidjourney
	case engine == EngineEdit:
		return profileEdit
	case task == TaskEdgeBlend:
		return profileEdgeBlend
	default:
		return profileFull
	}
}

// assemble renders the final instruction and negative-instruction strings
// for the given engine and task.
func assemble(sections SectionMap, engine EngineID, task TaskMode) (string, string) {
	profile := profileFor(engine, task)
	parts := make([]string, 0, len(profile.Keys))
	for _, key := range profile.Keys {
		if text := sections[key]; text != "" {
			parts = append(parts, text)
		}
	}
	instruction := strings.Join(parts, profile.Separator)

	negative := negativeByEngine[engine]
	if negative == "" {
		negative = negativeByEngine[EngineMultimodal]
	}
	if addendum := negativeByTask[task]; addendum != "" {
		negative = negative + ", " + addendum
	}
	return instruction, negative
}

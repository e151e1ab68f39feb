package translate

import "fmt"

// The six fixed translation styles. A style changes translation content
// materially, so cached variants are keyed by (language, style).
const (
	StyleStandard      = "standard"
	StyleEducational   = "educational"
	StyleEntertainment = "entertainment"
	StyleNews          = "news"
	StyleBusiness      = "business"
	StyleCinematic     = "cinematic"
)

func ValidStyle(style string) bool {
	switch style {
	case StyleStandard, StyleEducational, StyleEntertainment, StyleNews, StyleBusiness, StyleCinematic:
		return true
	}
	return false
}

// SystemPrompt returns the style-specific system instruction for a
// whole-video translation.
func SystemPrompt(style, sourceLang, targetLang string) string {
	base := fmt.Sprintf(
		"You are a professional subtitle translator. Translate subtitles from %s to %s. "+
			"Keep translations concise and natural for on-screen display. "+
			"Translate ONLY the text of each cue; never alter indices or timecodes.",
		langName(sourceLang), langName(targetLang),
	)

	switch style {
	case StyleEducational:
		return base + "\n\n" +
			"Style: educational.\n" +
			"- Use precise, formal language suitable for lectures and tutorials\n" +
			"- Preserve technical terminology with accurate, consistent translations\n" +
			"- Keep numbers, units, dates and proper nouns exact\n" +
			"- Prefer clarity over brevity when the two conflict"

	case StyleEntertainment:
		return base + "\n\n" +
			"Style: entertainment.\n" +
			"- Use casual, lively conversational language\n" +
			"- Adapt jokes, slang and wordplay to natural equivalents\n" +
			"- Match the energy and humor of the original delivery\n" +
			"- Keep character and host names consistent"

	case StyleNews:
		return base + "\n\n" +
			"Style: news.\n" +
			"- Use neutral, objective journalistic register\n" +
			"- Keep names of people, places and organizations exact\n" +
			"- Preserve quotes and attributions faithfully\n" +
			"- Avoid editorializing or softening statements"

	case StyleBusiness:
		return base + "\n\n" +
			"Style: business.\n" +
			"- Use professional, polished corporate language\n" +
			"- Preserve financial figures, product names and titles exactly\n" +
			"- Keep industry terminology consistent throughout\n" +
			"- Maintain the formal register of the original"

	case StyleCinematic:
		return base + "\n\n" +
			"Style: cinematic.\n" +
			"- Non-literal, emotionally tuned rewrites are allowed and encouraged\n" +
			"- Match the dramatic tone, rhythm and subtext of each line\n" +
			"- Adapt idioms and cultural references to equivalents that land\n" +
			"- Keep the formal/informal register of each speaker"

	default:
		// standard: neutral fidelity
		return base + "\n\n" +
			"Style: standard.\n" +
			"- Translate faithfully and neutrally\n" +
			"- Preserve the original meaning without embellishment\n" +
			"- Keep idioms close to the source when a direct equivalent exists"
	}
}

func langName(code string) string {
	names := map[string]string{
		"ko":   "Korean",
		"en":   "English",
		"ja":   "Japanese",
		"zh":   "Chinese",
		"es":   "Spanish",
		"fr":   "French",
		"de":   "German",
		"pt":   "Portuguese",
		"it":   "Italian",
		"ru":   "Russian",
		"ar":   "Arabic",
		"hi":   "Hindi",
		"th":   "Thai",
		"vi":   "Vietnamese",
		"id":   "Indonesian",
		"auto": "the auto-detected language",
	}
	if name, ok := names[code]; ok {
		return name
	}
	return code
}

package lang

import (
	"strings"

	"github.com/janasetu/janasetu/internal/model"
)

// hindiToEnglish maps frequent Hindi tokens (Devanagari and Romanized) to
// English equivalents for stored descriptions.
var hindiToEnglish = map[string]string{
	"खून":     "blood",
	"रक्त":    "blood",
	"मदद":     "help",
	"सहायता":  "help",
	"चाहिए":   "needed",
	"ज़रूरत":  "needed",
	"जरूरत":   "needed",
	"तुरंत":   "urgently",
	"पानी":    "water",
	"बिजली":   "electricity",
	"सड़क":    "road",
	"दवाई":    "medicine",
	"दवा":     "medicine",
	"बुजुर्ग": "elderly",
	"शिकायत":  "complaint",
	"समस्या":  "problem",
	"khoon":   "blood",
	"rakt":    "blood",
	"madad":   "help",
	"chahiye": "needed",
	"turant":  "urgently",
	"paani":   "water",
	"bijli":   "electricity",
	"sadak":   "road",
	"dawai":   "medicine",
}

// teluguToEnglish maps frequent Telugu tokens to English equivalents.
var teluguToEnglish = map[string]string{
	"రక్తం":       "blood",
	"సహాయం":       "help",
	"కావాలి":      "needed",
	"అత్యవసరం":    "urgent",
	"వెంటనే":      "urgently",
	"నీళ్లు":      "water",
	"నీరు":        "water",
	"కరెంటు":      "electricity",
	"రోడ్డు":      "road",
	"మందులు":      "medicine",
	"పెద్దలు":     "elderly",
	"ఫిర్యాదు":    "complaint",
	"సమస్య":       "problem",
	"raktam":      "blood",
	"sahayam":     "help",
	"kavali":      "needed",
	"atyavasaram": "urgent",
	"ventane":     "urgently",
	"neellu":      "water",
	"roddu":       "road",
	"mandulu":     "medicine",
}

// NormalizeEnglish applies a fixed word-substitution dictionary so stored
// descriptions carry English keywords. It is lossy and is not a translator.
// English text passes through untouched.
func NormalizeEnglish(text string, language model.Language) string {
	var dict map[string]string
	switch language {
	case model.LanguageHindi:
		dict = hindiToEnglish
	case model.LanguageTelugu:
		dict = teluguToEnglish
	default:
		return text
	}

	words := strings.Fields(text)
	for i, word := range words {
		trimmed := strings.Trim(word, ".,!?;:\"'")
		if repl, ok := dict[trimmed]; ok {
			words[i] = repl
			continue
		}
		if repl, ok := dict[strings.ToLower(trimmed)]; ok {
			words[i] = repl
		}
	}

	return strings.Join(words, " ")
}

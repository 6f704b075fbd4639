// Package lang provides script-based language detection and best-effort
// normalization of citizen messages written in English, Hindi, or Telugu.
package lang

import (
	"strings"
	"unicode"

	"github.com/janasetu/janasetu/internal/model"
)

// romanizedHindi lists common Hindi words written in Latin script.
var romanizedHindi = []string{
	"hai", "nahi", "nahin", "chahiye", "karo", "kijiye", "krupya", "kripya",
	"madad", "sahayata", "zaroorat", "jarurat", "turant", "khoon", "khun",
	"rakt", "bijli", "paani", "pani", "sadak", "dawai", "dava", "bujurg",
	"buzurg", "shikayat", "samasya", "gaon", "mohalla",
}

// romanizedTelugu lists common Telugu words written in Latin script.
var romanizedTelugu = []string{
	"kavali", "undi", "ledu", "cheyandi", "sahayam", "avasaram", "raktam",
	"raktham", "atyavasaram", "ventane", "neellu", "karentu", "current",
	"roddu", "mandulu", "peddalu", "samasya", "phiryadu", "ooru", "veedhi",
}

// Detect guesses the language of text from script and lexical cues.
// Script detection wins: any Devanagari rune means Hindi, any Telugu-block
// rune means Telugu. Otherwise a small Romanized lexicon is consulted, and
// English is the default. Deterministic, O(len(text)), never panics.
func Detect(text string) model.Language {
	for _, r := range text {
		if unicode.Is(unicode.Devanagari, r) {
			return model.LanguageHindi
		}
		if unicode.Is(unicode.Telugu, r) {
			return model.LanguageTelugu
		}
	}

	hindiHits, teluguHits := 0, 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'")
		for _, h := range romanizedHindi {
			if word == h {
				hindiHits++
				break
			}
		}
		for _, t := range romanizedTelugu {
			if word == t {
				teluguHits++
				break
			}
		}
	}

	switch {
	case teluguHits > hindiHits:
		return model.LanguageTelugu
	case hindiHits > 0:
		return model.LanguageHindi
	default:
		return model.LanguageEnglish
	}
}

// Resolve normalizes an 'auto' input language to a concrete detection.
// An explicit language from the caller is trusted as-is.
func Resolve(requested model.Language, text string) model.Language {
	if requested == "" || requested == model.LanguageAuto {
		return Detect(text)
	}
	if !requested.Valid() {
		return Detect(text)
	}
	return requested
}

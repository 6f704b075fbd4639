package heuristic

import (
	"regexp"
	"strings"

	"github.com/janasetu/janasetu/internal/model"
)

// BloodTypeUnspecified is stored when no blood-group pattern matches.
// The extractor never guesses a default.
const BloodTypeUnspecified = "unspecified"

var (
	// Latin: "O+", "AB-", "b positive", "a -ve".
	latinBloodRe = regexp.MustCompile(`(?i)\b(AB|A|B|O)\s*(\+|-|positive|negative|pos\b|neg\b|\+?ve\b|-ve\b)`)

	// Hindi script blood group tokens, e.g. "ए पॉजिटिव", "ओ नेगेटिव".
	hindiBloodRe = regexp.MustCompile(`(एबी|ए|बी|ओ)\s*(पॉजिटिव|पॉज़िटिव|पाजिटिव|नेगेटिव|निगेटिव)`)

	// Telugu script blood group tokens, e.g. "ఎ పాజిటివ్", "ఓ నెగటివ్".
	teluguBloodRe = regexp.MustCompile(`(ఎబి|ఏబీ|ఎ|ఏ|బి|బీ|ఒ|ఓ)\s*(పాజిటివ్|పాజిటివ్‌|నెగటివ్|నెగెటివ్)`)
)

var hindiBloodLetters = map[string]string{
	"एबी": "AB",
	"ए":   "A",
	"बी":  "B",
	"ओ":   "O",
}

var teluguBloodLetters = map[string]string{
	"ఎబి": "AB",
	"ఏబీ": "AB",
	"ఎ":   "A",
	"ఏ":   "A",
	"బి":  "B",
	"బీ":  "B",
	"ఒ":   "O",
	"ఓ":   "O",
}

// ExtractBloodType finds a blood group mention and normalizes it to the
// canonical LETTER+SIGN form ("O+", "AB-"). Returns BloodTypeUnspecified
// when nothing matches.
func ExtractBloodType(text string) string {
	if m := latinBloodRe.FindStringSubmatch(text); m != nil {
		letter := strings.ToUpper(m[1])
		return letter + normalizeSign(m[2])
	}

	if m := hindiBloodRe.FindStringSubmatch(text); m != nil {
		letter := hindiBloodLetters[m[1]]
		sign := "+"
		if strings.HasPrefix(m[2], "ने") || strings.HasPrefix(m[2], "नि") {
			sign = "-"
		}
		return letter + sign
	}

	if m := teluguBloodRe.FindStringSubmatch(text); m != nil {
		letter := teluguBloodLetters[m[1]]
		sign := "+"
		if strings.HasPrefix(m[2], "నె") {
			sign = "-"
		}
		return letter + sign
	}

	return BloodTypeUnspecified
}

func normalizeSign(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "+", strings.HasPrefix(s, "pos"), s == "+ve", s == "ve":
		return "+"
	default:
		return "-"
	}
}

// locationRe captures the phrase following a locative preposition, in
// English or the local-language equivalents, up to 40 characters.
var locationRe = regexp.MustCompile(`(?i)\b(?:in|at|near|from|के पास|में|లో|దగ్గర|వద్ద)\s+([^.,!?\n]{2,40})`)

// stopWords are captures that look locative but carry no place information.
var locationStopWords = map[string]bool{
	"need":   true,
	"the":    true,
	"my":     true,
	"urgent": true,
	"a":      true,
	"an":     true,
}

// ExtractLocationHint captures a rough location phrase for enriching a
// generated title. Not authoritative geocoding; empty when nothing matches.
func ExtractLocationHint(text string) string {
	m := locationRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	hint := strings.TrimSpace(m[1])
	first := strings.ToLower(strings.SplitN(hint, " ", 2)[0])
	if locationStopWords[first] {
		return ""
	}
	return hint
}

// complaintBuckets maps complaint keywords to their routing category,
// checked in order.
var complaintBuckets = []struct {
	regex  *regexp.Regexp
	bucket model.ComplaintCategory
}{
	{regexp.MustCompile(`(?i)road|pothole|street\s*light|footpath|bridge|सड़क|गड्ढ|రోడ్డు|గుంత`), model.ComplaintRoad},
	{regexp.MustCompile(`(?i)water|pipe|tap|leak|supply|पानी|नल|నీళ్లు|నీరు|కుళాయి`), model.ComplaintWater},
	{regexp.MustCompile(`(?i)electric|power|current|transformer|voltage|बिजली|కరెంటు|విద్యుత్`), model.ComplaintElectric},
	{regexp.MustCompile(`(?i)garbage|drain|sewage|sanitation|trash|waste|कचरा|नाली|చెత్త|మురుగు`), model.ComplaintSanitation},
	{regexp.MustCompile(`(?i)theft|crime|unsafe|harass|police|चोरी|असुरक्षित|దొంగతనం|పోలీసు`), model.ComplaintSafety},
	{regexp.MustCompile(`(?i)hospital|clinic|doctor|health|अस्पताल|डॉक्टर|ఆసుపత్రి|వైద్యుడు`), model.ComplaintHealthcare},
	{regexp.MustCompile(`(?i)school|teacher|education|स्कूल|शिक्षा|బడి|పాఠశాల`), model.ComplaintEducation},
	{regexp.MustCompile(`(?i)bus|auto|transport|train|traffic|बस|యాతాయాత|బస్సు`), model.ComplaintTransport},
}

// ClassifyComplaint buckets a complaint by keyword, defaulting to Other.
func ClassifyComplaint(text string) model.ComplaintCategory {
	for _, cb := range complaintBuckets {
		if cb.regex.MatchString(text) {
			return cb.bucket
		}
	}
	return model.ComplaintOther
}

// ExtractEntities runs every extractor relevant to the category.
func ExtractEntities(text string, category model.Category) model.ExtractedEntities {
	entities := model.ExtractedEntities{
		LocationHint: ExtractLocationHint(text),
	}

	switch category {
	case model.CategoryBloodRequest:
		entities.BloodType = ExtractBloodType(text)
	case model.CategoryComplaint:
		entities.ComplaintCategory = ClassifyComplaint(text)
	case model.CategoryElderSupport:
		entities.ServiceType = elderServiceType(text)
	case model.CategoryEmergency, model.CategoryGeneralInquiry:
	}

	return entities
}

var elderServiceRe = regexp.MustCompile(`(?i)medicine|pharmacy|dawai|दवाई|दवा|మందులు`)

func elderServiceType(text string) string {
	if elderServiceRe.MatchString(text) {
		return "medicine delivery"
	}
	return "general assistance"
}

package reply

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/janasetu/janasetu/internal/heuristic"
	"github.com/janasetu/janasetu/internal/model"
)

// Localize produces the templated reply for a category in the requested
// language, falling back to the English template for missing pairs.
func Localize(category model.Category, language model.Language, entities model.ExtractedEntities) string {
	byLanguage, ok := templates[category]
	if !ok {
		byLanguage = templates[model.CategoryGeneralInquiry]
	}

	text, ok := byLanguage[language]
	if !ok {
		text = byLanguage[model.LanguageEnglish]
	}

	bloodType := entities.BloodType
	if bloodType == "" || bloodType == heuristic.BloodTypeUnspecified {
		bloodType = "the required"
	}

	return strings.ReplaceAll(text, "{bloodType}", bloodType)
}

// cannedComplaintTitles overrides the generic complaint title when a
// stronger keyword pattern matches the original message.
var cannedComplaintTitles = []struct {
	regex *regexp.Regexp
	title string
}{
	{regexp.MustCompile(`(?i)street\s*light|स्ट्रीट\s*लाइट|వీధి\s*దీపం`), "Street lights not working"},
	{regexp.MustCompile(`(?i)pothole|road.*(broken|damaged)|(broken|damaged).*road`), "Road damaged and needs repair"},
	{regexp.MustCompile(`(?i)water.*(leak|supply|shortage)|no water|पानी नहीं`), "Water supply problem"},
	{regexp.MustCompile(`(?i)power\s*cut|no (power|electricity)|बिजली नहीं|కరెంటు లేదు`), "Power outage in the area"},
	{regexp.MustCompile(`(?i)garbage|trash|waste.*(pile|collect)`), "Garbage not being collected"},
	{regexp.MustCompile(`(?i)drain|sewage|overflow`), "Drainage overflow"},
}

// Title builds a short human-readable title for a request-bearing
// category, applying category-specific phrasing rules.
func Title(category model.Category, text string, priority model.Priority, entities model.ExtractedEntities) string {
	switch category {
	case model.CategoryBloodRequest:
		title := "Need blood donor"
		if entities.BloodType != "" && entities.BloodType != heuristic.BloodTypeUnspecified {
			title = fmt.Sprintf("Need %s blood", entities.BloodType)
		}
		if entities.LocationHint != "" {
			title += " in " + entities.LocationHint
		}
		if priority == model.PriorityUrgent {
			title += " (URGENT)"
		}
		return title

	case model.CategoryComplaint:
		for _, canned := range cannedComplaintTitles {
			if canned.regex.MatchString(text) {
				return canned.title
			}
		}
		if entities.ComplaintCategory != "" && entities.ComplaintCategory != model.ComplaintOther {
			return string(entities.ComplaintCategory) + " issue"
		}
		return "Civic complaint"

	case model.CategoryElderSupport:
		if entities.ServiceType != "" {
			return "Elder support: " + entities.ServiceType
		}
		return "Elder support needed"

	case model.CategoryEmergency, model.CategoryGeneralInquiry:
	}

	return "Citizen request"
}

// Description builds the stored description: the English-normalized
// message trimmed to a reasonable length.
func Description(normalizedText string) string {
	const maxLen = 500
	text := strings.TrimSpace(normalizedText)
	if len(text) > maxLen {
		text = text[:maxLen]
	}
	return text
}

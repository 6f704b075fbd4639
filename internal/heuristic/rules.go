// Package heuristic provides the deterministic keyword/regex classifier and
// entity extractors used when the AI adapter is unavailable or inconclusive.
package heuristic

import "github.com/janasetu/janasetu/internal/model"

// Rule associates a set of case-insensitive patterns with a category.
// Rules are evaluated strictly in priority order (highest first) so that
// overlapping keyword sets resolve deterministically.
type Rule struct {
	Name     string
	Regex    string
	Category model.Category
	Priority int
}

// DefaultRules returns the canonical category rule set. Patterns cover
// English, Hindi and Telugu script, plus common Romanizations.
//
// Precedence: blood > emergency > elder support > complaint. Blood always
// wins over generic urgency wording.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "Blood Request",
			Regex:    `blood|donat|transfusion|plasma|platelet|खून|रक्त|रक्तदान|రక్తం|రక్తదానం|khoon|khun|rakt\b|raktam|raktham|[abo]\s*[+-]ve\b`,
			Category: model.CategoryBloodRequest,
			Priority: 100,
		},
		{
			Name:     "Emergency",
			Regex:    `emergency|urgent|critical|ambulance|accident|\b(108|112|102)\b|आपातकाल|एम्बुलेंस|तुरंत|अत्यावश्यक|అత్యవసరం|ఆంబులెన్స్|ప్రమాదం|turant|atyavasaram|ventane`,
			Category: model.CategoryEmergency,
			Priority: 90,
		},
		{
			Name:     "Elder Support",
			Regex:    `elder|old age|senior citizen|medicine|grocery|caretaker|grandmother|grandfather|बुजुर्ग|बुज़ुर्ग|दवाई|दवा|राशन|दादा|दादी|నానమ్మ|తాతయ్య|పెద్దలు|మందులు|సరుకులు|bujurg|buzurg|dawai|mandulu|peddalu`,
			Category: model.CategoryElderSupport,
			Priority: 80,
		},
		{
			Name:     "Complaint",
			Regex:    `complaint|broken|not working|damaged|leaking|overflow|road|water|electricity|power cut|garbage|street\s*light|drainage|pothole|शिकायत|समस्या|सड़क|पानी|बिजली|कचरा|नाली|రోడ్డు|నీళ్లు|నీరు|కరెంటు|చెత్త|మురుగు|ఫిర్యాదు|సమస్య|shikayat|samasya|sadak|paani|bijli|roddu|neellu|karentu|phiryadu`,
			Category: model.CategoryComplaint,
			Priority: 70,
		},
	}
}

// priorityRule associates urgency patterns with a priority tier, checked in
// order independent of category.
type priorityRule struct {
	Regex    string
	Priority model.Priority
}

// defaultPriorityRules returns the urgency rule set. First match wins;
// medium is the fallback when nothing matches.
func defaultPriorityRules() []priorityRule {
	return []priorityRule{
		{
			Regex:    `urgent|immediately|emergency|critical|asap|right now|dying|serious|तुरंत|अभी|आपातकाल|गंभीर|వెంటనే|అత్యవసరం|ఇప్పుడే|turant|abhi|ventane|atyavasaram`,
			Priority: model.PriorityUrgent,
		},
		{
			Regex:    `important|soon|today|quickly|needed|please help|जल्दी|आज|महत्वपूर्ण|జల్దీ|త్వరగా|ఈరోజు|jaldi|tvaraga|aaj`,
			Priority: model.PriorityHigh,
		},
		{
			Regex:    `whenever|no hurry|sometime|later|when possible|जब भी|कभी भी|బాద|తీరిక|jab bhi|kabhi bhi`,
			Priority: model.PriorityLow,
		},
	}
}

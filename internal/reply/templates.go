// Package reply builds the localized user-facing reply and the short
// title/description pair for request-bearing categories.
package reply

import "github.com/janasetu/janasetu/internal/model"

// templates holds the reply text per (category, language) pair. The
// {bloodType} placeholder is substituted for blood requests; missing
// language entries fall back to English.
var templates = map[model.Category]map[model.Language]string{
	model.CategoryBloodRequest: {
		model.LanguageEnglish: "I understand you need {bloodType} blood. I have created a blood request and nearby donors with a matching blood group will be notified. Please keep your phone reachable.",
		model.LanguageHindi:    "मैं समझता हूं कि आपको {bloodType} रक्त की आवश्यकता है। मैंने रक्त अनुरोध बना दिया है और आस-पास के मिलते रक्त समूह वाले दाताओं को सूचित किया जाएगा। कृपया अपना फोन चालू रखें।",
		model.LanguageTelugu:   "మీకు {bloodType} రక్తం అవసరమని అర్థమైంది. నేను రక్త అభ్యర్థనను సృష్టించాను, సరిపోలే రక్త వర్గం ఉన్న సమీప దాతలకు తెలియజేయబడుతుంది. దయచేసి మీ ఫోన్ అందుబాటులో ఉంచండి.",
	},
	model.CategoryElderSupport: {
		model.LanguageEnglish: "I have registered your elder-support request. A volunteer will be assigned to help with medicines, groceries, or daily care. You will be contacted shortly.",
		model.LanguageHindi:    "मैंने आपका बुजुर्ग सहायता अनुरोध दर्ज कर लिया है। दवाई, राशन या देखभाल में मदद के लिए एक स्वयंसेवक नियुक्त किया जाएगा। आपसे जल्द संपर्क किया जाएगा।",
		model.LanguageTelugu:   "మీ పెద్దల సహాయ అభ్యర్థనను నమోదు చేశాను. మందులు, సరుకులు లేదా రోజువారీ సంరక్షణలో సహాయానికి ఒక వాలంటీర్ కేటాయించబడతారు. త్వరలో మిమ్మల్ని సంప్రదిస్తారు.",
	},
	model.CategoryComplaint: {
		model.LanguageEnglish: "Your complaint has been registered with the concerned department. You can track its status from your requests page. Thank you for reporting the issue.",
		model.LanguageHindi:    "आपकी शिकायत संबंधित विभाग में दर्ज कर दी गई है। आप अपने अनुरोध पृष्ठ से इसकी स्थिति देख सकते हैं। समस्या की जानकारी देने के लिए धन्यवाद।",
		model.LanguageTelugu:   "మీ ఫిర్యాదు సంబంధిత విభాగంలో నమోదు చేయబడింది. మీ అభ్యర్థనల పేజీ నుండి దాని స్థితిని చూడవచ్చు. సమస్యను తెలియజేసినందుకు ధన్యవాదాలు.",
	},
	model.CategoryEmergency: {
		model.LanguageEnglish: "This looks like an emergency. Please call 108 for an ambulance or 112 for police immediately. Your message has been flagged as urgent for our volunteers.",
		model.LanguageHindi:    "यह आपातकालीन स्थिति लगती है। कृपया एम्बुलेंस के लिए तुरंत 108 या पुलिस के लिए 112 पर कॉल करें। आपका संदेश हमारे स्वयंसेवकों के लिए अत्यावश्यक चिह्नित कर दिया गया है।",
		model.LanguageTelugu:   "ఇది అత్యవసర పరిస్థితిగా కనిపిస్తోంది. దయచేసి అంబులెన్స్ కోసం వెంటనే 108 లేదా పోలీసుల కోసం 112 కు కాల్ చేయండి. మీ సందేశం మా వాలంటీర్లకు అత్యవసరంగా గుర్తించబడింది.",
	},
	model.CategoryGeneralInquiry: {
		model.LanguageEnglish: "Hello! I can help you with blood donation requests, elder support, and civic complaints. Tell me what you need, for example: \"I need O+ blood\" or \"street light not working in my area\".",
		model.LanguageHindi:    "नमस्ते! मैं रक्तदान अनुरोध, बुजुर्ग सहायता और नागरिक शिकायतों में आपकी मदद कर सकता हूं। बताइए आपको क्या चाहिए, जैसे: \"मुझे O+ रक्त चाहिए\" या \"हमारे इलाके में स्ट्रीट लाइट खराब है\"।",
		model.LanguageTelugu:   "నమస్తే! రక్తదాన అభ్యర్థనలు, పెద్దల సహాయం మరియు పౌర ఫిర్యాదులలో నేను మీకు సహాయం చేయగలను. మీకు ఏమి కావాలో చెప్పండి, ఉదాహరణకు: \"నాకు O+ రక్తం కావాలి\" లేదా \"మా వీధిలో వీధి దీపం పనిచేయడం లేదు\".",
	},
}

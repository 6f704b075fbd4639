package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janasetu/janasetu/internal/model"
)

func TestExtractBloodType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "latin symbol", text: "need O+ blood", want: "O+"},
		{name: "latin negative symbol", text: "AB- required", want: "AB-"},
		{name: "spelled out positive", text: "o positive blood needed", want: "O+"},
		{name: "spelled out negative", text: "b negative donor wanted", want: "B-"},
		{name: "suffix ve form", text: "a -ve blood chahiye", want: "A-"},
		{name: "hindi positive", text: "ओ पॉजिटिव खून चाहिए", want: "O+"},
		{name: "hindi negative", text: "बी नेगेटिव रक्त", want: "B-"},
		{name: "hindi ab group", text: "एबी पॉजिटिव", want: "AB+"},
		{name: "telugu positive", text: "ఎ పాజిటివ్ రక్తం కావాలి", want: "A+"},
		{name: "telugu negative", text: "ఓ నెగటివ్", want: "O-"},
		{name: "no blood type", text: "need blood for surgery", want: BloodTypeUnspecified},
		{name: "empty text", text: "", want: BloodTypeUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBloodType(tt.text))
		})
	}
}

// Different spellings of the same group must normalize identically.
func TestExtractBloodTypeCanonical(t *testing.T) {
	variants := []string{"O+", "o positive", "ओ पॉजिटिव"}
	for _, v := range variants {
		assert.Equal(t, "O+", ExtractBloodType(v), "variant %q", v)
	}
}

func TestExtractLocationHint(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "in phrase", text: "need blood in Gandhi Nagar", want: "Gandhi Nagar"},
		{name: "near phrase", text: "street light broken near bus stand", want: "bus stand"},
		{name: "stops at punctuation", text: "water leaking at Main Road, please fix", want: "Main Road"},
		{name: "no location", text: "need blood urgently", want: ""},
		{name: "stop word capture dropped", text: "I am in need of help", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLocationHint(tt.text))
		})
	}
}

func TestClassifyComplaint(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.ComplaintCategory
	}{
		{name: "street light", text: "street light not working", want: model.ComplaintRoad},
		{name: "pothole", text: "huge pothole on the main junction", want: model.ComplaintRoad},
		{name: "water", text: "tap water leaking all day", want: model.ComplaintWater},
		{name: "electricity", text: "transformer sparking, power gone", want: model.ComplaintElectric},
		{name: "sanitation", text: "garbage piling up for a week", want: model.ComplaintSanitation},
		{name: "safety", text: "theft reported in colony", want: model.ComplaintSafety},
		{name: "healthcare", text: "clinic has no doctor", want: model.ComplaintHealthcare},
		{name: "education", text: "school has no teacher", want: model.ComplaintEducation},
		{name: "transport", text: "bus never comes on time", want: model.ComplaintTransport},
		{name: "hindi water", text: "पानी नहीं आ रहा", want: model.ComplaintWater},
		{name: "default other", text: "something is wrong here", want: model.ComplaintOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyComplaint(tt.text))
		})
	}
}

func TestExtractEntities(t *testing.T) {
	t.Run("blood request gets blood type", func(t *testing.T) {
		entities := ExtractEntities("I need O+ blood in Kukatpally", model.CategoryBloodRequest)
		assert.Equal(t, "O+", entities.BloodType)
		assert.Equal(t, "Kukatpally", entities.LocationHint)
		assert.Empty(t, entities.ComplaintCategory)
	})

	t.Run("complaint gets bucket", func(t *testing.T) {
		entities := ExtractEntities("street light not working near my house", model.CategoryComplaint)
		assert.Equal(t, model.ComplaintRoad, entities.ComplaintCategory)
		assert.Empty(t, entities.BloodType)
	})

	t.Run("elder support gets service type", func(t *testing.T) {
		entities := ExtractEntities("grandmother needs medicine", model.CategoryElderSupport)
		assert.Equal(t, "medicine delivery", entities.ServiceType)
	})

	t.Run("general inquiry extracts nothing type specific", func(t *testing.T) {
		entities := ExtractEntities("hello", model.CategoryGeneralInquiry)
		assert.Empty(t, entities.BloodType)
		assert.Empty(t, entities.ComplaintCategory)
		assert.Empty(t, entities.ServiceType)
	})
}

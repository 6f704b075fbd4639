// Package model defines the core domain models used throughout the application.
package model

import "time"

// Language identifies the language of a citizen message.
type Language string

// Supported languages.
const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageTelugu  Language = "te"
	LanguageAuto    Language = "auto"
)

// Valid reports whether the language is one of the supported values.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageTelugu, LanguageAuto:
		return true
	}
	return false
}

// InputMethod indicates how the citizen entered the message.
type InputMethod string

// Input method constants.
const (
	InputText  InputMethod = "text"
	InputVoice InputMethod = "voice"
)

// Category is the coarse intent bucket assigned to a message.
type Category string

// Message categories.
const (
	CategoryBloodRequest   Category = "blood_request"
	CategoryElderSupport   Category = "elder_support"
	CategoryComplaint      Category = "complaint"
	CategoryEmergency      Category = "emergency"
	CategoryGeneralInquiry Category = "general_inquiry"
)

// Valid reports whether the category is one of the closed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryBloodRequest, CategoryElderSupport, CategoryComplaint,
		CategoryEmergency, CategoryGeneralInquiry:
		return true
	}
	return false
}

// ParseCategory normalizes a free-form category string from an upstream
// model into a Category, reporting whether it was recognized.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if c.Valid() {
		return c, true
	}
	return "", false
}

// Priority is the urgency tier attached to a classified message.
type Priority string

// Message priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether the priority is one of the closed set.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParsePriority normalizes a free-form priority string into a Priority,
// reporting whether it was recognized.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(s)
	if p.Valid() {
		return p, true
	}
	return "", false
}

// InboundMessage is a single citizen message entering the pipeline.
// Immutable once received.
type InboundMessage struct {
	ReceivedAt  time.Time
	ID          string
	UserID      string
	Text        string
	Language    Language
	InputMethod InputMethod
}

// ClassificationResult is the outcome of classifying a message.
// Category and Priority are always populated; there are no partial results.
type ClassificationResult struct {
	Category      Category
	Priority      Priority
	Reply         string
	Confidence    float64
	UsingFallback bool
}

// ExtractedEntities holds structured fields pulled out of the message text.
// Fields are populated only for the categories they apply to.
type ExtractedEntities struct {
	BloodType         string
	LocationHint      string
	ComplaintCategory ComplaintCategory
	ServiceType       string
}

// ChatRecord is a persisted chat exchange: the citizen message plus the
// generated reply and its classification.
type ChatRecord struct {
	CreatedAt     time.Time `json:"createdAt"`
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Message       string    `json:"message"`
	Reply         string    `json:"reply"`
	Language      Language  `json:"language"`
	Category      Category  `json:"category"`
	Priority      Priority  `json:"priority"`
	UsingFallback bool      `json:"usingFallback"`
}

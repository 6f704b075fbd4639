package model

import "time"

// ComplaintCategory buckets an infrastructure complaint for routing.
type ComplaintCategory string

// Complaint categories.
const (
	ComplaintRoad       ComplaintCategory = "Road Maintenance"
	ComplaintWater      ComplaintCategory = "Water Supply"
	ComplaintElectric   ComplaintCategory = "Electricity"
	ComplaintSanitation ComplaintCategory = "Sanitation"
	ComplaintSafety     ComplaintCategory = "Public Safety"
	ComplaintHealthcare ComplaintCategory = "Healthcare"
	ComplaintEducation  ComplaintCategory = "Education"
	ComplaintTransport  ComplaintCategory = "Transportation"
	ComplaintOther      ComplaintCategory = "Other"
)

// RequestStatus tracks the lifecycle of a synthesized service request.
type RequestStatus string

// Request status constants.
const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in_progress"
	StatusResolved   RequestStatus = "resolved"
)

// SynthesizedRequest is a structured service-request record auto-generated
// from a classified chat message. One request per originating message;
// duplicate submissions across messages are accepted.
type SynthesizedRequest struct {
	CreatedAt       time.Time         `json:"createdAt"`
	DueDate         *time.Time        `json:"dueDate,omitempty"`
	ID              string            `json:"id"`
	SourceMessageID string            `json:"sourceMessageId"`
	UserID          string            `json:"userId"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	Type            Category          `json:"type"`
	Priority        Priority          `json:"priority"`
	Status          RequestStatus     `json:"status"`
	BloodType       string            `json:"bloodType,omitempty"`
	Location        string            `json:"location,omitempty"`
	ComplaintBucket ComplaintCategory `json:"complaintBucket,omitempty"`
	ServiceType     string            `json:"serviceType,omitempty"`
}

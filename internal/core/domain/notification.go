package domain

import "time"

// Notification types and priorities as surfaced to dashboard clients.
const (
	NotificationTypeAppointment = "appointment"
	NotificationTypeCase        = "case"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Notification is a dashboard message produced asynchronously when a case or
// appointment is created or updated.
type Notification struct {
	ID        int64     `json:"id" bson:"_id"`
	Type      string    `json:"type" bson:"type"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Priority  string    `json:"priority" bson:"priority"`
	ClientID  *int64    `json:"client_id" bson:"client_id,omitempty"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

package domain

import "time"

// Appointment is a scheduled meeting between a lawyer and a client. Status is
// free text and defaults to empty; both references are nullable.
type Appointment struct {
	ID          int64     `json:"id" bson:"_id"`
	DateTime    time.Time `json:"date_time" bson:"date_time"`
	Description string    `json:"description" bson:"description"`
	Status      string    `json:"status" bson:"status"`
	LawyerID    *int64    `json:"lawyer_id" bson:"lawyer_id,omitempty"`
	ClientID    *int64    `json:"client_id" bson:"client_id,omitempty"`
}

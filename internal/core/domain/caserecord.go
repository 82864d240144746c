package domain

// CaseRecord is a legal matter handled by the firm. LawyerID and ClientID are
// nullable references: a case may exist before it is assigned to anyone.
// HearingDate is free text (court calendars rarely fit a single format).
type CaseRecord struct {
	ID          int64  `json:"id" bson:"_id"`
	CaseTitle   string `json:"case_title" bson:"case_title"`
	CaseType    string `json:"case_type" bson:"case_type"`
	CaseStatus  string `json:"case_status" bson:"case_status"`
	HearingDate string `json:"hearing_date" bson:"hearing_date"`
	Description string `json:"description" bson:"description"`
	LawyerID    *int64 `json:"lawyer_id" bson:"lawyer_id,omitempty"`
	ClientID    *int64 `json:"client_id" bson:"client_id,omitempty"`
}

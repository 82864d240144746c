package domain

// Lawyer is a member of the firm. The API surface is read-only: lawyers are
// seeded or managed out of band and only listed here.
type Lawyer struct {
	ID             int64  `json:"id" bson:"_id"`
	Name           string `json:"name" bson:"name"`
	Specialization string `json:"specialization" bson:"specialization"`
	Email          string `json:"email" bson:"email"`
	PhoneNumber    string `json:"phone_number" bson:"phone_number"`
}

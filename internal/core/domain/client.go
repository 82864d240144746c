package domain

// Client is a person or company the firm represents. Email is unique among
// clients; the storage layer enforces it with a unique index and the service
// layer checks it as a fast path.
type Client struct {
	ID          int64  `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Address     string `json:"address" bson:"address"`
	PhoneNumber string `json:"phone_number" bson:"phone_number"`
	Email       string `json:"email" bson:"email"`
}

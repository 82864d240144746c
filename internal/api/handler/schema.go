package handler

import (
	"time"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin lawyer client"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Clients ---

type createClientRequest struct {
	Name        string `json:"name"         validate:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"        validate:"required,email"`
}

// updateClientRequest deliberately has no email field: email is immutable.
type updateClientRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

// --- Cases ---

// caseRequest is used for both create and update; an update overwrites every
// field it carries.
type caseRequest struct {
	CaseTitle   string `json:"case_title" validate:"required"`
	CaseType    string `json:"case_type"`
	CaseStatus  string `json:"case_status"`
	HearingDate string `json:"hearing_date"`
	Description string `json:"description"`
	LawyerID    *int64 `json:"lawyer_id"`
	ClientID    *int64 `json:"client_id"`
}

// --- Appointments ---

type appointmentRequest struct {
	DateTime    time.Time `json:"date_time" validate:"required"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	LawyerID    *int64    `json:"lawyer_id"`
	ClientID    *int64    `json:"client_id"`
}

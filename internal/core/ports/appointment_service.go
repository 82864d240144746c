package ports

import (
	"context"
	"time"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// AppointmentInput carries the writable fields of an appointment. Status
// defaults to empty when not provided. References may be nil.
type AppointmentInput struct {
	DateTime    time.Time
	Description string
	Status      string
	LawyerID    *int64
	ClientID    *int64
}

// AppointmentService defines use-case operations for appointments.
type AppointmentService interface {
	Create(ctx context.Context, input AppointmentInput) (*domain.Appointment, error)
	GetAll(ctx context.Context) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, input AppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

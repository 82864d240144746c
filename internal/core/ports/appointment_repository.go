package ports

import (
	"context"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *domain.Appointment) error
	FindAll(ctx context.Context) ([]*domain.Appointment, error)
	FindByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) error
	Delete(ctx context.Context, id int64) error
}

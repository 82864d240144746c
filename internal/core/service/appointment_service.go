package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lawconnect/case-management/internal/core/domain"
	"github.com/lawconnect/case-management/internal/core/ports"
)

// AppointmentService implements appointment CRUD.
type AppointmentService struct {
	repo     ports.AppointmentRepository
	notifier Notifier
	logger   zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, notifier Notifier, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, notifier: notifier, logger: logger}
}

func (s *AppointmentService) Create(ctx context.Context, input ports.AppointmentInput) (*domain.Appointment, error) {
	appointment := &domain.Appointment{
		DateTime:    input.DateTime,
		Description: input.Description,
		Status:      input.Status,
		LawyerID:    input.LawyerID,
		ClientID:    input.ClientID,
	}
	if err := s.repo.Insert(ctx, appointment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("appointment_id", appointment.ID).Time("date_time", appointment.DateTime).Msg("appointment created")
	s.notify(appointment, "Appointment scheduled",
		fmt.Sprintf("An appointment has been scheduled for %s.", appointment.DateTime.Format(time.RFC1123)))
	return appointment, nil
}

func (s *AppointmentService) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	return s.repo.FindAll(ctx)
}

func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites date/time, description, status, and both references.
func (s *AppointmentService) Update(ctx context.Context, id int64, input ports.AppointmentInput) (*domain.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment.DateTime = input.DateTime
	appointment.Description = input.Description
	appointment.Status = input.Status
	appointment.LawyerID = input.LawyerID
	appointment.ClientID = input.ClientID

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.notify(appointment, "Appointment updated",
		fmt.Sprintf("Your appointment was moved to %s.", appointment.DateTime.Format(time.RFC1123)))
	return appointment, nil
}

// Delete removes the appointment by id; a nonexistent id is a silent no-op.
func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *AppointmentService) notify(a *domain.Appointment, title, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Enqueue(ports.NotificationInput{
		Type:      domain.NotificationTypeAppointment,
		Title:     title,
		Message:   message,
		Priority:  domain.PriorityHigh,
		ClientID:  a.ClientID,
		CreatedAt: time.Now().UTC(),
	})
}

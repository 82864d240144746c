package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lawconnect/case-management/internal/core/domain"
	"github.com/lawconnect/case-management/internal/core/ports"
)

// ClientService implements client CRUD on top of the persistence gateway.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// Create persists a new client. The email check here is a fast path only;
// the unique index on email is the source of truth, so a concurrent insert
// with the same email still fails with domain.ErrDuplicateEmail.
func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	client := &domain.Client{
		Name:        input.Name,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
	}
	if err := s.repo.Insert(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("client_id", client.ID).Str("email", client.Email).Msg("client created")
	return client, nil
}

func (s *ClientService) GetAll(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.FindAll(ctx)
}

func (s *ClientService) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites exactly name, address, and phone number. Email and ID are
// never touched by an update.
func (s *ClientService) Update(ctx context.Context, id int64, input ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = input.Name
	client.Address = input.Address
	client.PhoneNumber = input.PhoneNumber

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes the client by id. Deleting a nonexistent id is a silent
// no-op. Dangling case/appointment references are left in place (known gap,
// last write wins).
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("client_id", id).Msg("client deleted")
	return nil
}

package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/swiftcargo/logistics_app/internal/apperrors"
	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portsrepo "github.com/swiftcargo/logistics_app/internal/core/ports/repositories"
	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/dto"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	userRepo   portsrepo.UserReader
}

// NewClientService creates a new client service with the provided dependencies
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, userRepo portsrepo.UserReader) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo, userRepo: userRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// GetClientByID is readable by any authenticated actor; clients may look up
// other clients to pick a shipment recipient.
func (s *clientService) GetClientByID(ctx context.Context, actor authz.Actor, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		}
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionRead, authz.Client(*client)) {
		return nil, apperrors.ErrForbidden
	}
	return client, nil
}

func (s *clientService) GetClientByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return client, nil
}

// ListClients returns every client profile except the actor's own.
func (s *clientService) ListClients(ctx context.Context, actor authz.Actor) ([]domain.Client, error) {
	clients, err := s.clientRepo.FindClients(ctx, actor.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	return clients, nil
}

// CreateClient attaches a client profile to an existing user. Employee-only;
// registration is the normal path for clients creating their own profile.
func (s *clientService) CreateClient(ctx context.Context, actor authz.Actor, req dto.CreateClientRequest) (*domain.Client, error) {
	if !authz.Allows(actor, authz.ActionCreate, authz.Client(domain.Client{})) {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	now := time.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		UserID:      req.UserID,
		CompanyName: req.CompanyName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// UpdateClient lets employees update any profile and clients only their own.
func (s *clientService) UpdateClient(ctx context.Context, actor authz.Actor, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionUpdate, authz.Client(*client)) {
		return nil, apperrors.ErrForbidden
	}

	if req.CompanyName != nil {
		client.CompanyName = *req.CompanyName
	}
	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.Country != nil {
		client.Country = *req.Country
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = actor.UserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		}
		return nil, err
	}

	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, actor authz.Actor, clientID string) error {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return err
	}
	if !authz.Allows(actor, authz.ActionDelete, authz.Client(*client)) {
		return apperrors.ErrForbidden
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		}
		return err
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}

package services

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	"github.com/swiftcargo/logistics_app/internal/dto"
)

// ClientReaderSvc defines read operations for client profiles
type ClientReaderSvc interface {
	// GetClientByID retrieves a client by ID.
	GetClientByID(ctx context.Context, actor authz.Actor, clientID string) (*domain.Client, error)

	// GetClientByUserID retrieves the client profile owned by a user.
	GetClientByUserID(ctx context.Context, userID string) (*domain.Client, error)

	// ListClients retrieves all clients except the actor's own profile.
	ListClients(ctx context.Context, actor authz.Actor) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client profiles
type ClientWriterSvc interface {
	// CreateClient creates a client profile for an existing user.
	CreateClient(ctx context.Context, actor authz.Actor, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient updates a client profile. Clients may only update their own.
	UpdateClient(ctx context.Context, actor authz.Actor, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client profile.
	DeleteClient(ctx context.Context, actor authz.Actor, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}

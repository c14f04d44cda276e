package repositories

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// ClientReader defines read operations for client profiles.
type ClientReader interface {
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByUserID resolves the client profile owned by a user.
	FindClientByUserID(ctx context.Context, userID string) (*domain.Client, error)

	// FindClients lists client profiles; when excludeUserID is non-empty the
	// profile owned by that user is left out of the result.
	FindClients(ctx context.Context, excludeUserID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client profiles.
type ClientWriter interface {
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}

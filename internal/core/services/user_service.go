package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/swiftcargo/logistics_app/internal/apperrors"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portsrepo "github.com/swiftcargo/logistics_app/internal/core/ports/repositories"
	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/dto"
	"github.com/swiftcargo/logistics_app/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

// RegisterUser creates a user account together with its role profile. The
// whole registration is one repository transaction, so a duplicate email or
// profile constraint leaves no partial state behind.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrValidation
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalError(err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Email:        req.Email,
		PasswordHash: &hash,
		Role:         role,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	var client *domain.Client
	var employee *domain.Employee
	switch role {
	case domain.RoleClient:
		if req.Client == nil {
			return nil, apperrors.ErrValidation
		}
		client = &domain.Client{
			ClientID:    uuid.NewString(),
			UserID:      userID,
			CompanyName: req.Client.CompanyName,
			FirstName:   req.Client.FirstName,
			LastName:    req.Client.LastName,
			Phone:       req.Client.Phone,
			Address:     req.Client.Address,
			City:        req.Client.City,
			Country:     req.Client.Country,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	case domain.RoleEmployee:
		if req.Employee == nil {
			return nil, apperrors.ErrValidation
		}
		hireDate := now
		if req.Employee.HireDate != "" {
			hireDate, err = time.Parse(dto.DateOnly, req.Employee.HireDate)
			if err != nil {
				return nil, apperrors.ErrValidation
			}
		}
		employee = &domain.Employee{
			EmployeeID: uuid.NewString(),
			UserID:     userID,
			CompanyID:  req.Employee.CompanyID,
			OfficeID:   req.Employee.OfficeID,
			FirstName:  req.Employee.FirstName,
			LastName:   req.Employee.LastName,
			Phone:      req.Employee.Phone,
			HireDate:   hireDate,
			IsActive:   true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	if err := s.userRepo.RegisterUser(ctx, user, client, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to register user")
		}
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", userID), slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		s.LogError(ctx, err, "Failed to update refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

// AuthenticateUser verifies a password login. A missing user and a wrong
// password both surface as ErrUnauthorized so callers cannot probe for
// registered emails.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for authentication")
		return nil, err
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// FindOrCreateUserFromGoogle resolves a verified Google identity to a local
// user, provisioning a CLIENT account on first sign-in.
func (s *userService) FindOrCreateUserFromGoogle(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by provider details")
		return nil, err
	}

	now := time.Now()
	userID := uuid.NewString()
	providerUserID := info.ID
	newUser := domain.User{
		UserID:         userID,
		Email:          info.Email,
		Role:           domain.RoleClient,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	client := &domain.Client{
		ClientID:  uuid.NewString(),
		UserID:    userID,
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.RegisterUser(ctx, newUser, client, nil); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// The email already has a password account; do not silently link.
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to provision user from Google sign-in")
		return nil, err
	}

	s.LogInfo(ctx, "User provisioned from Google sign-in", slog.String("user_id", userID))
	return &newUser, nil
}

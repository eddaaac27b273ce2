package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerlogic/ledgerlogic/internal/apperrors"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portsrepo "github.com/ledgerlogic/ledgerlogic/internal/core/ports/repositories"
	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
	"github.com/ledgerlogic/ledgerlogic/internal/dto"
	"github.com/ledgerlogic/ledgerlogic/internal/utils"
)

// userServiceImpl implements the UserSvcFacade interface
type userServiceImpl struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service backed by the given repository.
func NewUserService(repo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userServiceImpl{userRepo: repo}
}

// Ensure userServiceImpl implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest, requestingUserID string) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Role:         domain.UserRole(req.Role),
		PasswordHash: hash,
		Active:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		s.LogError(ctx, err, "Failed to find user by username", slog.String("username", username))
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find user for update", slog.String("user_id", userID))
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = domain.UserRole(*req.Role)
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userServiceImpl) SetUserActive(ctx context.Context, userID string, active bool, requestingUserID string) error {
	if err := s.userRepo.SetUserActive(ctx, userID, active, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to change user active state", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User active state changed",
		slog.String("user_id", userID),
		slog.Bool("active", active))
	return nil
}

func (s *userServiceImpl) SuspendUser(ctx context.Context, userID string, start, end time.Time, requestingUserID string) error {
	if !end.After(start) {
		return fmt.Errorf("%w: suspension end must be after start", apperrors.ErrValidation)
	}
	if err := s.userRepo.SuspendUser(ctx, userID, start, end, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to suspend user", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User suspended",
		slog.String("user_id", userID),
		slog.Time("start", start),
		slog.Time("end", end))
	return nil
}

func (s *userServiceImpl) LiftExpiredSuspensions(ctx context.Context, now time.Time) (int64, error) {
	lifted, err := s.userRepo.ClearExpiredSuspensions(ctx, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to lift expired suspensions")
		return 0, fmt.Errorf("failed to lift expired suspensions: %w", err)
	}
	if lifted > 0 {
		s.LogInfo(ctx, "Expired suspensions lifted", slog.Int64("count", lifted))
	}
	return lifted, nil
}

// AuthenticateUser verifies credentials and rejects inactive or currently
// suspended users. All credential failures map to ErrUnauthorized so the
// response does not reveal which part failed.
func (s *userServiceImpl) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		s.LogDebug(ctx, "Authentication failed: unknown username", slog.String("username", username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Authentication failed: bad password", slog.String("username", username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	if !user.Active {
		s.LogInfo(ctx, "Authentication rejected: user inactive", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: account is deactivated", apperrors.ErrForbidden)
	}

	if user.IsSuspended(time.Now()) {
		s.LogInfo(ctx, "Authentication rejected: user suspended", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: account is suspended", apperrors.ErrForbidden)
	}

	return user, nil
}

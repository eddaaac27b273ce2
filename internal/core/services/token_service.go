package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
	"github.com/ledgerlogic/ledgerlogic/internal/utils"
)

// tokenServiceImpl implements the TokenSvcFacade interface
type tokenServiceImpl struct {
	BaseService
	secret      string
	issuer      string
	tokenExpiry time.Duration
}

// NewTokenService creates a new token service with the given signing
// parameters.
func NewTokenService(secret, issuer string, tokenExpiry time.Duration) portssvc.TokenSvcFacade {
	return &tokenServiceImpl{
		secret:      secret,
		issuer:      issuer,
		tokenExpiry: tokenExpiry,
	}
}

// Ensure tokenServiceImpl implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenServiceImpl)(nil)

func (s *tokenServiceImpl) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, string(user.Role), s.secret, s.tokenExpiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

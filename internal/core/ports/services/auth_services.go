package services

import (
	"context"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
)

// TokenSvcFacade defines the interface for access token management.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

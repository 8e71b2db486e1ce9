package services

import (
	"context"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
)

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleUserInfo is the subset of the Google identity used to provision a
// local user.
type GoogleUserInfo struct {
	SubjectID string
	Email     string
	Name      string
}

// GoogleOAuthSvcFacade wraps the Google OAuth code exchange.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL builds the consent-screen redirect URL for the given
	// anti-forgery state.
	AuthCodeURL(state string) string
	// ExchangeCode trades an authorization code for the verified Google
	// identity behind it.
	ExchangeCode(ctx context.Context, code string) (*GoogleUserInfo, error)
}

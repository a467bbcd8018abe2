package api

import (
	"context"
	"net/http"

	"github.com/vilaca/profile-detective/internal/domain"
)

// ProfileClient looks up a single account on a code hosting platform.
// Implementations wrap domain.ErrNotFound when the account does not exist and
// domain.ErrTransport for every other failure.
type ProfileClient interface {
	GetUser(ctx context.Context, username string) (*domain.ProfileRecord, error)
}

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds common configuration for API clients.
type ClientConfig struct {
	BaseURL   string
	UserAgent string
}

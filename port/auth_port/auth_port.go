package auth_port

import (
	"context"
	"time"

	"folio/domain"
)

// AuthPort answers "is this caller an authenticated admin" and mints the
// opaque session tokens the rest of the system only consults.
type AuthPort interface {
	// ValidateSession checks a session token and returns the admin session
	// it encodes, or an error when the token is missing, malformed,
	// expired or signed with the wrong key.
	ValidateSession(ctx context.Context, token string) (*domain.AdminSession, error)
	// IssueSession checks the presented password and returns a signed
	// session token plus its expiry.
	IssueSession(ctx context.Context, password string) (string, time.Time, error)
}

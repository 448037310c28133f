package domain

import (
	"context"
	"fmt"
	"time"
)

// AdminSession represents the authenticated admin context for a request.
type AdminSession struct {
	SessionID string    `json:"session_id"`
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks that the session carries an id and has not expired.
func (s *AdminSession) IsValid() bool {
	return s.SessionID != "" && s.ExpiresAt.After(time.Now())
}

type contextKey string

const AdminSessionKey contextKey = "admin_session"

// GetAdminSessionFromContext extracts the admin session stored by the auth
// middleware. Handlers behind the auth gate can rely on it being present.
func GetAdminSessionFromContext(ctx context.Context) (*AdminSession, error) {
	session, ok := ctx.Value(AdminSessionKey).(*AdminSession)
	if !ok || session == nil {
		return nil, fmt.Errorf("admin session not found")
	}

	if !session.IsValid() {
		return nil, fmt.Errorf("invalid admin session")
	}

	return session, nil
}

// SetAdminSession stores the admin session in the request context.
func SetAdminSession(ctx context.Context, session *AdminSession) context.Context {
	return context.WithValue(ctx, AdminSessionKey, session)
}

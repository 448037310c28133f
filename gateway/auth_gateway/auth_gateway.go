package auth_gateway

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"folio/config"
	"folio/domain"
	apperrors "folio/utils/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthGateway implements the session oracle with HS256 JWTs. A deployment
// without a session secret or admin password keeps every admin surface
// closed while the public site stays up.
type AuthGateway struct {
	secret     []byte
	password   string
	sessionTTL time.Duration
}

func NewAuthGateway(cfg *config.Config) *AuthGateway {
	return &AuthGateway{
		secret:     []byte(cfg.Auth.SessionSecret),
		password:   cfg.Auth.AdminPassword,
		sessionTTL: cfg.Auth.SessionTTL,
	}
}

// IssueSession checks the presented password and returns a signed session
// token plus its expiry.
func (g *AuthGateway) IssueSession(ctx context.Context, password string) (string, time.Time, error) {
	if len(g.secret) == 0 || g.password == "" {
		return "", time.Time{}, fmt.Errorf("admin credentials not configured: %w", apperrors.ErrUnauthorized)
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return "", time.Time{}, fmt.Errorf("password mismatch: %w", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	expiresAt := now.Add(g.sessionTTL)

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, expiresAt, nil
}

// ValidateSession checks a session token and returns the admin session it
// encodes.
func (g *AuthGateway) ValidateSession(ctx context.Context, token string) (*domain.AdminSession, error) {
	if len(g.secret) == 0 {
		return nil, fmt.Errorf("session secret not configured: %w", apperrors.ErrUnauthorized)
	}
	if token == "" {
		return nil, fmt.Errorf("missing session token: %w", apperrors.ErrUnauthorized)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid session token: %w", apperrors.ErrUnauthorized)
	}

	session := &domain.AdminSession{
		SessionID: claims.ID,
		Subject:   claims.Subject,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	if !session.IsValid() {
		return nil, fmt.Errorf("expired session token: %w", apperrors.ErrUnauthorized)
	}

	return session, nil
}

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/yanqian/comunidad/pkg/errors"
)

const (
	defaultTokenTTL = 12 * time.Hour
	defaultIssuer   = "comunidad"
)

// Service issues and validates admin bearer tokens.
type Service interface {
	Enabled() bool
	IssueToken(ctx context.Context, subject string, ttl time.Duration) (IssuedToken, error)
	ValidateToken(ctx context.Context, token string) (Claims, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a Service instance.
func NewService(cfg Config, logger *slog.Logger) Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = defaultIssuer
	}
	return &service{
		cfg:    cfg,
		logger: logger.With("component", "auth.service"),
		now:    time.Now,
	}
}

func (s *service) Enabled() bool {
	return strings.TrimSpace(s.cfg.Secret) != ""
}

func (s *service) IssueToken(ctx context.Context, subject string, ttl time.Duration) (IssuedToken, error) {
	if !s.Enabled() {
		return IssuedToken{}, apperrors.Wrap("auth_disabled", "admin secret not configured", ErrDisabled)
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return IssuedToken{}, apperrors.Wrap("invalid_input", "subject cannot be empty", nil)
	}
	if ttl <= 0 {
		ttl = s.cfg.TokenTTL
	}
	now := s.now()
	expires := now.Add(ttl)
	claims := tokenClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return IssuedToken{}, apperrors.Wrap("auth_error", "failed to sign token", err)
	}
	s.logger.Info("admin token issued", "subject", subject, "expiresAt", expires)
	return IssuedToken{Token: signed, ExpiresAt: expires.Truncate(time.Second)}, nil
}

func (s *service) ValidateToken(ctx context.Context, token string) (Claims, error) {
	if !s.Enabled() {
		return Claims{}, apperrors.Wrap("auth_disabled", "admin secret not configured", ErrDisabled)
	}
	if strings.TrimSpace(token) == "" {
		return Claims{}, apperrors.Wrap("invalid_token", "token missing", nil)
	}
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Claims{}, apperrors.Wrap("invalid_token", "token validation failed", err)
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, apperrors.Wrap("invalid_token", "token invalid", nil)
	}
	if claims.Role != RoleAdmin {
		return Claims{}, apperrors.Wrap("forbidden", "admin role required", nil)
	}
	return Claims{
		Subject:   claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}


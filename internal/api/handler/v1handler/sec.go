package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"guidiqo/internal/config"
	"guidiqo/pkg/domain"
	"guidiqo/pkg/logger"
	"guidiqo/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const (
	// UserIDKey is the context key of the authenticated domain.UserID.
	UserIDKey ctxKey = "userID"
	// UserKey is the context key of the authenticated domain.User built from the token claims.
	UserKey ctxKey = "user"
)

// SecHandlerOptions configure bearer-token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.Auth.PublicKey}
}

// Claims are the JWT claims issued by the auth provider.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// SecHandler verifies bearer tokens.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the caller identity.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "Jeton d'authentification invalide.")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "Jeton d'authentification invalide.")
	}

	user := domain.User{
		ID:    domain.UserID(id),
		Email: strings.ToLower(strings.TrimSpace(claims.Email)),
		Name:  strings.TrimSpace(claims.Name),
		Role:  domain.RoleUser,
	}
	if domain.Role(claims.Role) == domain.RoleSuperAdmin {
		user.Role = domain.RoleSuperAdmin
	}

	ctx = context.WithValue(ctx, UserIDKey, user.ID)
	ctx = context.WithValue(ctx, UserKey, user)

	return logger.WithFields(ctx, zap.String("userID", user.ID.String())), nil
}

// GetUserIDFromContext returns the authenticated user ID, or the zero ID.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}

// GetUserFromContext returns the authenticated user.
func GetUserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(UserKey).(domain.User)

	return u, ok
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// authed rejects requests without a valid bearer token.
func (h *Handler) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" || h.sec == nil {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "Authentification requise."))

			return
		}

		ctx, err := h.sec.HandleBearerAuth(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		next(w, r.WithContext(ctx))
	}
}

// superAdmin restricts next to super admins while the database is reachable.
func (h *Handler) superAdmin(next http.HandlerFunc) http.HandlerFunc {
	return h.authed(func(w http.ResponseWriter, r *http.Request) {
		user, _ := GetUserFromContext(r.Context())
		if err := h.deps.Admin.Authorize(r.Context(), user); err != nil {
			h.writeError(w, r, err)

			return
		}

		next(w, r)
	})
}

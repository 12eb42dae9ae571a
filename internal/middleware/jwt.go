package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ATHLETEHUB_BACK-END/internal/config"
	"ATHLETEHUB_BACK-END/internal/metrics"
	"ATHLETEHUB_BACK-END/internal/models"
	"ATHLETEHUB_BACK-END/internal/store"
	"ATHLETEHUB_BACK-END/internal/utils"
)

// DefaultTokenTTL is how long an issued token stays valid
const DefaultTokenTTL = 30 * 24 * time.Hour

var (
	// ErrInvalidToken is the only failure Verify reports, whatever the cause.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnauthenticated is returned by the gate for any rejected request.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// JWTClaims represents the claims in the JWT token
type JWTClaims struct {
	AthleteID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies stateless HS256 tokens
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer from the JWT configuration
func NewTokenIssuer(cfg *config.JWTConfig) *TokenIssuer {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(cfg.Secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source used for issuing and verifying.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	i.now = now
	return i
}

// Issue generates a JWT token for the given athlete
func (i *TokenIssuer) Issue(athleteID uuid.UUID) (string, error) {
	now := i.now()
	claims := JWTClaims{
		AthleteID: athleteID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns the athlete id it carries
func (i *TokenIssuer) Verify(tokenString string) (uuid.UUID, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.AthleteID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// IdentityResolver looks up the live record behind a verified token
type IdentityResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.Athlete, error)
}

// Gate authenticates bearer tokens against the athlete store
type Gate struct {
	tokens     *TokenIssuer
	identities IdentityResolver
}

// NewGate creates an auth gate
func NewGate(tokens *TokenIssuer, identities IdentityResolver) *Gate {
	return &Gate{tokens: tokens, identities: identities}
}

// Authenticate resolves an Authorization header value to a sanitized
// athlete and the raw token. Every rejection is ErrUnauthenticated except a
// store fault, which comes back wrapped in store.ErrUnavailable.
func (g *Gate) Authenticate(ctx context.Context, authHeader string) (models.Athlete, string, error) {
	tokenString, ok := BearerToken(authHeader)
	if !ok {
		metrics.RecordAuthFailure("malformed_header")
		return models.Athlete{}, "", ErrUnauthenticated
	}

	id, err := g.tokens.Verify(tokenString)
	if err != nil {
		metrics.RecordAuthFailure("invalid_token")
		return models.Athlete{}, "", ErrUnauthenticated
	}

	athlete, err := g.identities.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.RecordAuthFailure("unknown_identity")
			return models.Athlete{}, "", ErrUnauthenticated
		}
		return models.Athlete{}, "", err
	}
	return athlete.Sanitized(), tokenString, nil
}

// BearerToken extracts the token from "Bearer <token>"
func BearerToken(authHeader string) (string, bool) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// AuthMiddleware validates JWT tokens in the Authorization header
func AuthMiddleware(next http.HandlerFunc, gate *Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		athlete, token, err := gate.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Not authorized, token failed")
				return
			}
			utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Service Unavailable", "Store unavailable")
			return
		}

		// Add athlete info to request context
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), athlete, token)))
	}
}

type ctxKey int

const (
	identityKey ctxKey = iota
	tokenKey
)

// WithIdentity attaches an authenticated athlete and its token to ctx
func WithIdentity(ctx context.Context, athlete models.Athlete, token string) context.Context {
	ctx = context.WithValue(ctx, identityKey, athlete)
	return context.WithValue(ctx, tokenKey, token)
}

// IdentityFromContext returns the athlete set by AuthMiddleware
func IdentityFromContext(ctx context.Context) (models.Athlete, bool) {
	a, ok := ctx.Value(identityKey).(models.Athlete)
	return a, ok
}

// TokenFromContext returns the bearer token the request authenticated with
func TokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok
}

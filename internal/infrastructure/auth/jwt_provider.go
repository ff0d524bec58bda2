package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"billing_insurance/internal/domain/identity"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingUser  = errors.New("token carries no user id")
)

// Claims accepts both the "user_id" claim of the platform tokens and a plain subject.
type Claims struct {
	jwt.RegisteredClaims
	UserID any    `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// JWTProvider resolves HMAC-signed bearer tokens into identities.
type JWTProvider struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
			jwt.WithJSONNumber(),
			jwt.WithExpirationRequired(),
		),
	}
}

func (p *JWTProvider) Resolve(_ context.Context, token string) (identity.Identity, error) {
	claims := &Claims{}
	parsed, err := p.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	})
	if err != nil {
		return identity.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return identity.Identity{}, ErrInvalidToken
	}

	userID := ""
	if claims.UserID != nil {
		userID = strings.TrimSpace(fmt.Sprint(claims.UserID))
	}
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return identity.Identity{}, ErrMissingUser
	}

	return identity.Identity{UserID: userID, Role: claims.Role, Token: token}, nil
}

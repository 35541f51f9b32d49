package service

import (
	"fmt"

	"loan-enforcement-agent/internal/core/ports"
	"loan-enforcement-agent/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService implements ports.TokenService for HS256 session tokens
// issued by the identity provider. The agent only validates; it never issues.
type JWTTokenService struct {
	secret []byte
	issuer string
}

// NewJWTTokenService creates a validating token service.
func NewJWTTokenService(secret, issuer string) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret), issuer: issuer}
}

// Validate parses and validates a session token, returning the bound wallet address.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, apperror.ErrInvalidToken()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidToken()
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, apperror.ErrInvalidToken()
	}

	return &ports.TokenClaims{Address: sub}, nil
}

// Issue signs a session token for address. Only used by tooling and tests;
// production tokens come from the identity provider.
func (s *JWTTokenService) Issue(address string, expSeconds int64) (string, error) {
	claims := jwt.MapClaims{"sub": address}
	if s.issuer != "" {
		claims["iss"] = s.issuer
	}
	if expSeconds > 0 {
		claims["exp"] = expSeconds
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

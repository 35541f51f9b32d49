package service

import (
	"testing"
	"time"

	"loan-enforcement-agent/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_IssueAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret", "loan-enforcement-agent")

	token, err := svc.Issue(testAddress, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, testAddress, claims.Address)
}

func TestJWTTokenService_WrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-a", "")
	validator := NewJWTTokenService("secret-b", "")

	token, err := issuer.Issue(testAddress, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)

	_, err = validator.Validate(token)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidToken, apperror.CodeOf(err))
}

func TestJWTTokenService_ExpiredToken(t *testing.T) {
	svc := NewJWTTokenService("test-secret", "")

	token, err := svc.Issue(testAddress, time.Now().Add(-time.Hour).Unix())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidToken, apperror.CodeOf(err))
}

func TestJWTTokenService_WrongIssuer(t *testing.T) {
	issuer := NewJWTTokenService("test-secret", "someone-else")
	validator := NewJWTTokenService("test-secret", "loan-enforcement-agent")

	token, err := issuer.Issue(testAddress, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)

	_, err = validator.Validate(token)
	require.Error(t, err)
}

func TestJWTTokenService_Garbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret", "")

	_, err := svc.Validate("not.a.token")
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidToken, apperror.CodeOf(err))
}

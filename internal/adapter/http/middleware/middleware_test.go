package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"loan-enforcement-agent/internal/core/ports"
	"loan-enforcement-agent/internal/core/ports/mocks"
	"loan-enforcement-agent/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runJWTAuth(t *testing.T, tokenSvc ports.TokenService, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/enforcement/status", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	JWTAuth(tokenSvc, zerolog.Nop())(c)
	return w, c
}

func TestJWTAuth_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("good-token").
		Return(&ports.TokenClaims{Address: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"}, nil)

	w, c := runJWTAuth(t, tokenSvc, "Bearer good-token")

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
	addr, _ := c.Get(CtxWalletAddress)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", addr)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, c := runJWTAuth(t, mocks.NewMockTokenService(ctrl), "")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("bad-token").Return(nil, apperror.ErrInvalidToken())

	w, c := runJWTAuth(t, tokenSvc, "Bearer bad-token")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_NotBearer(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, c := runJWTAuth(t, mocks.NewMockTokenService(ctrl), "Basic dXNlcjpwdw==")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	RequestID()(c)

	id, ok := c.Get(CtxRequestID)
	assert.True(t, ok)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	c.Request.Header.Set("X-Request-ID", "req-123")

	RequestID()(c)

	id, _ := c.Get(CtxRequestID)
	assert.Equal(t, "req-123", id)
}

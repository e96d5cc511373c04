package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/class-coins-api/internal/models"
	"github.com/noah-isme/class-coins-api/internal/service"
	"github.com/noah-isme/class-coins-api/pkg/config"
	"github.com/noah-isme/class-coins-api/pkg/token"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)

	codec := token.NewCodec("guard-secret")
	auth := service.NewAuthService(codec, zap.NewNop(), config.AdminConfig{User: "admin", Password: "pw"})

	res, err := auth.Login(models.LoginRequest{User: "admin", Password: "pw"})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/guarded", Admin(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reached": true})
	})
	return r, res.Token
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminGateAdmitsValidToken(t *testing.T) {
	r, tok := newGuardedRouter(t)

	w := request(r, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGateRejectsMissingHeader(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := request(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAdminGatePrefixIsCaseSensitive(t *testing.T) {
	r, tok := newGuardedRouter(t)

	assert.Equal(t, http.StatusUnauthorized, request(r, "bearer "+tok).Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, "BEARER "+tok).Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, tok).Code)
}

func TestAdminGateRejectsTamperedToken(t *testing.T) {
	r, tok := newGuardedRouter(t)

	tampered := []byte(tok)
	if tampered[0] == 'A' {
		tampered[0] = 'B'
	} else {
		tampered[0] = 'A'
	}
	assert.Equal(t, http.StatusUnauthorized, request(r, "Bearer "+string(tampered)).Code)
}

func TestAdminGateRejectsForeignSecret(t *testing.T) {
	r, _ := newGuardedRouter(t)

	foreign, err := token.NewCodec("other-secret").Issue(time.Now())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request(r, "Bearer "+foreign).Code)
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/class-coins-api/internal/service"
	"github.com/noah-isme/class-coins-api/internal/store"
	"github.com/noah-isme/class-coins-api/pkg/config"
	"github.com/noah-isme/class-coins-api/pkg/token"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "letmein"
)

func newTestAPI(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	codec := token.NewCodec("handler-test-secret")
	auth := service.NewAuthService(codec, zap.NewNop(), config.AdminConfig{
		User:     testAdminUser,
		Password: testAdminPassword,
	})
	classes := service.NewClassService(st, nil, nil, zap.NewNop())
	students := service.NewStudentService(st, nil, nil, zap.NewNop())

	r := gin.New()
	RegisterRoutes(r, Deps{
		Auth:     auth,
		Classes:  classes,
		Students: students,
		Store:    st,
	})
	return r, st
}

func doRequest(r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder, dest any) error {
	return json.Unmarshal(w.Body.Bytes(), dest)
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/admin/login",
		`{"user":"`+testAdminUser+`","password":"`+testAdminPassword+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK    bool   `json:"ok"`
		Token string `json:"token"`
	}
	require.NoError(t, decodeBody(w, &resp))
	require.True(t, resp.OK)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

package service

import (
	"crypto/subtle"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/class-coins-api/internal/models"
	"github.com/noah-isme/class-coins-api/pkg/config"
	appErrors "github.com/noah-isme/class-coins-api/pkg/errors"
	"github.com/noah-isme/class-coins-api/pkg/token"
)

// AuthService authenticates the single administrator and issues bearer
// tokens. There is exactly one privilege level and no account storage:
// the credentials are immutable process-wide configuration.
type AuthService struct {
	codec    *token.Codec
	logger   *zap.Logger
	user     string
	password string
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(codec *token.Codec, logger *zap.Logger, cfg config.AdminConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{codec: codec, logger: logger, user: cfg.User, password: cfg.Password}
}

// Login compares the submitted credentials against the configured pair
// and returns a signed token on match. The failure message never
// reveals which field was wrong.
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.User), []byte(s.user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return nil, appErrors.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(time.Now())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue token")
	}
	return &models.LoginResponse{OK: true, Token: tok}, nil
}

// Authorize reports whether the presented bearer token grants admin
// access. Tokens are stateless; expiry is a hard cutoff against this
// server's clock.
func (s *AuthService) Authorize(tok string) bool {
	return s.codec.Verify(tok, time.Now())
}

package services

import (
	"time"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/utils"
	"github.com/vastram/retail_pos_backend/pkg/config"
)

// tokenService issues signed JWTs for authenticated counter users.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

// GenerateToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateToken(user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}

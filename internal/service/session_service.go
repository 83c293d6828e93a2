package service

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/tdlam/formdesk/internal/apperr"
	"github.com/tdlam/formdesk/internal/auth"
	"github.com/tdlam/formdesk/internal/dto"
	"github.com/tdlam/formdesk/internal/repository"
	"gorm.io/gorm"
)

// SessionService implements the login/logout operations.
type SessionService interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, *apperr.Error)
	Logout(req dto.LogoutRequest) (*dto.MessageResponse, *apperr.Error)
}

type sessionService struct {
	userRepo repository.UserRepository
	tokens   auth.TokenService
}

func NewSessionService(userRepo repository.UserRepository, tokens auth.TokenService) SessionService {
	return &sessionService{userRepo: userRepo, tokens: tokens}
}

func (s *sessionService) Login(req dto.LoginRequest) (*dto.LoginResponse, *apperr.Error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.MissingFields("Email and password are required")
	}

	// Same failure for an unknown email and a wrong password, so a caller
	// cannot probe which emails are registered.
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("Login credential lookup failed")
			return nil, apperr.Internal(err)
		}
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid email or password")
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Token issue failed")
		return nil, apperr.Internal(err)
	}

	resp := &dto.LoginResponse{
		Envelope: dto.OK(),
		Token:    token,
		UserID:   strconv.FormatUint(uint64(user.ID), 10),
	}
	return resp, nil
}

// Logout is a symbolic acknowledgment: tokens are stateless and stay valid
// until natural expiry.
func (s *sessionService) Logout(req dto.LogoutRequest) (*dto.MessageResponse, *apperr.Error) {
	if req.Token == "" {
		return nil, apperr.MissingFields("Token is required")
	}
	if _, err := s.tokens.Verify(req.Token); err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}
	return &dto.MessageResponse{Envelope: dto.OKMessage("Logout successful")}, nil
}

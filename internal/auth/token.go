package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tdlam/formdesk/config"
	"github.com/tdlam/formdesk/internal/repository"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the authenticated caller attached to every guarded operation.
type Identity struct {
	UserID uint
	Email  string
	Name   string
	Role   string
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies the stateless bearer tokens. There is no
// revocation list: a token stays valid until its natural expiry.
type TokenService interface {
	Issue(userID uint, role string) (string, error)
	Verify(token string) (*Identity, error)
}

type tokenService struct {
	secret    []byte
	expiresIn time.Duration
	userRepo  repository.UserRepository
}

func NewTokenService(cfg *config.Config, userRepo repository.UserRepository) TokenService {
	expiresIn := cfg.JWT.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}
	return &tokenService{
		secret:    []byte(cfg.JWT.Secret),
		expiresIn: expiresIn,
		userRepo:  userRepo,
	}
}

func (s *tokenService) Issue(userID uint, role string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry, then re-resolves the user record.
// A signed token for a user that no longer exists fails verification.
func (s *tokenService) Verify(tokenString string) (*Identity, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(uint(userID))
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}

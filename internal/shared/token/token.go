package token

import (
	"errors"
	"net/http"
	"time"

	"go-hrm/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeTokenExpired,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrTokenGeneration = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)

const (
	PurposeAccess = "access"
	PurposeInvite = "invite"
)

// Claims identify an employee, the role the token grants and what the token may be used for.
type Claims struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Require rejects a token minted for any other purpose.
func (c *Claims) Require(purpose string) error {
	if c == nil || c.Purpose != purpose {
		return ErrInvalidToken
	}
	return nil
}

//go:generate mockgen -source=token.go -destination=mock/token_mock.go -package=mock
type Service interface {
	CreateToken(claims Claims, ttl time.Duration) (string, error)
	VerifyToken(raw string) (*Claims, error)
}

type service struct {
	secret []byte
	now    func() time.Time
}

func NewService(secret string) Service {
	return &service{secret: []byte(secret), now: time.Now}
}

func (s *service) CreateToken(claims Claims, ttl time.Duration) (string, error) {
	if claims.ID == "" || claims.Purpose == "" {
		return "", ErrTokenGeneration
	}

	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperror.Wrap(err, ErrTokenGeneration.Code, ErrTokenGeneration.Message, ErrTokenGeneration.HTTPStatus)
	}
	return signed, nil
}

func (s *service) VerifyToken(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

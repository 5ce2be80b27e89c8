package auth

import (
	"context"
	"errors"
	"time"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/shared/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	AcceptInvite(ctx context.Context, req AcceptInviteRequest) (AuthResponse, error)
	Me(ctx context.Context, employeeID string) (UserResponse, error)
}

type service struct {
	employees  employee.Repository
	tokens     token.Service
	accessTTL  time.Duration
	bcryptCost int
	logger     *zap.Logger
}

func NewService(employees employee.Repository, tokens token.Service, accessTTL time.Duration, bcryptCost int, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{employees: employees, tokens: tokens, accessTTL: accessTTL, bcryptCost: bcryptCost, logger: l}
}

// Login accepts either the work or the personal email. Unknown emails and wrong passwords
// produce the same error.
func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	e, err := s.employees.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}

	if e.Password == "" || bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(req.Password)) != nil {
		s.logger.Info("login rejected", zap.String("employee_id", e.ID))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if e.Status != employee.StatusActive {
		return AuthResponse{}, autherrors.ErrAccountNotActive
	}

	return s.issue(e)
}

// AcceptInvite sets the first password of a pending employee and activates the account.
func (s *service) AcceptInvite(ctx context.Context, req AcceptInviteRequest) (AuthResponse, error) {
	claims, err := s.tokens.VerifyToken(req.Token)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return AuthResponse{}, token.ErrTokenExpired
		}
		return AuthResponse{}, token.ErrInvalidToken
	}
	if err := claims.Require(token.PurposeInvite); err != nil {
		return AuthResponse{}, err
	}

	e, err := s.employees.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, token.ErrInvalidToken
		}
		return AuthResponse{}, err
	}
	if e.Status != employee.StatusPending {
		return AuthResponse{}, autherrors.ErrInvitationUsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return AuthResponse{}, err
	}
	if _, err := s.employees.UpdateFields(ctx, e.ID, map[string]any{
		"password": string(hashed),
		"status":   employee.StatusActive,
	}); err != nil {
		return AuthResponse{}, err
	}
	e.Status = employee.StatusActive

	s.logger.Info("invitation accepted", zap.String("employee_id", e.ID))
	return s.issue(e)
}

func (s *service) Me(ctx context.Context, employeeID string) (UserResponse, error) {
	e, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return UserResponse{}, err
	}
	return toUser(e), nil
}

func (s *service) issue(e *employee.Employee) (AuthResponse, error) {
	accessToken, err := s.tokens.CreateToken(token.Claims{ID: e.ID, Role: e.Role, Purpose: token.PurposeAccess}, s.accessTTL)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{AccessToken: accessToken, User: toUser(e)}, nil
}

func toUser(e *employee.Employee) UserResponse {
	return UserResponse{
		ID:        e.ID,
		Name:      e.Name,
		WorkEmail: e.WorkEmail,
		Role:      e.Role,
		Status:    e.Status,
	}
}

package employee

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/employeejob"
	"go-hrm/internal/leave"
	"go-hrm/internal/notification"
	"go-hrm/internal/onboarding"
	"go-hrm/internal/payroll"
	"go-hrm/internal/setting"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/token"
	"go-hrm/internal/shared/transaction"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const (
	BasicsVersionKey = "employees:basics:version"
	BasicsCacheTTL   = time.Hour

	dateLayout = "2006-01-02"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, spec query.Spec) ([]EmployeeResponse, int64, error)
	GetBasics(ctx context.Context) ([]EmployeeBasic, error)
	GetAdminAndMods(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByInviteToken(ctx context.Context, inviteToken string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmail(ctx context.Context, id string, req UpdateEmailRequest) (EmployeeResponse, error)
	UpdatePassword(ctx context.Context, id string, req UpdatePasswordRequest) error
	UpdateDiscord(ctx context.Context, id string, req UpdateDiscordRequest) (EmployeeResponse, error)
	UpdatePersonality(ctx context.Context, id string, req UpdatePersonalityRequest) (EmployeeResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

// Dependencies are the collaborators of the employee service. Redis is optional.
type Dependencies struct {
	Repo        Repository
	Jobs        employeejob.Repository
	Payrolls    payroll.Repository
	Leaves      leave.Repository
	Onboardings onboarding.Repository
	Counter     counter.Repository
	Settings    setting.Provider
	Sender      notification.Sender
	Tokens      token.Service
	Tx          transaction.Manager
	Redis       *redis.Client

	InviteTTL  time.Duration
	BcryptCost int
}

type service struct {
	repo        Repository
	jobs        employeejob.Repository
	payrolls    payroll.Repository
	leaves      leave.Repository
	onboardings onboarding.Repository
	counter     counter.Repository
	settings    setting.Provider
	sender      notification.Sender
	tokens      token.Service
	tx          transaction.Manager
	rdb         *redis.Client
	sf          *singleflight.Group
	inviteTTL   time.Duration
	bcryptCost  int
	logger      *zap.Logger
}

func NewService(deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	cost := deps.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &service{
		repo:        deps.Repo,
		jobs:        deps.Jobs,
		payrolls:    deps.Payrolls,
		leaves:      deps.Leaves,
		onboardings: deps.Onboardings,
		counter:     deps.Counter,
		settings:    deps.Settings,
		sender:      deps.Sender,
		tokens:      deps.Tokens,
		tx:          deps.Tx,
		rdb:         deps.Redis,
		sf:          &singleflight.Group{},
		inviteTTL:   deps.InviteTTL,
		bcryptCost:  cost,
		logger:      l,
	}
}

func (s *service) GetAll(ctx context.Context, spec query.Spec) ([]EmployeeResponse, int64, error) {
	employees, total, err := s.repo.FindAll(ctx, spec)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(employees), total, nil
}

// BasicsCacheKey is the directory snapshot for one cache generation. Writers bump the
// generation, so a snapshot stored from a read that raced a write is never served.
func BasicsCacheKey(version int64) string {
	return "employees:basics:v" + strconv.FormatInt(version, 10)
}

// GetBasics serves the directory from Redis and collapses concurrent misses into one query.
func (s *service) GetBasics(ctx context.Context) ([]EmployeeBasic, error) {
	key, cacheable := s.basicsKey(ctx)
	if cacheable {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var basics []EmployeeBasic
			if json.Unmarshal([]byte(cached), &basics) == nil {
				return basics, nil
			}
		}
	}

	// Shared by every waiter, so one caller's cancellation must not fail the rest.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		basics, err := s.repo.FindBasics(loadCtx)
		if err != nil {
			return nil, err
		}
		if basics == nil {
			basics = []EmployeeBasic{}
		}

		if cacheable {
			if raw, err := json.Marshal(basics); err == nil {
				if err := s.rdb.Set(loadCtx, key, string(raw), BasicsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee basics failed", zap.Error(err))
				}
			}
		}
		return basics, nil
	})
	if err != nil {
		s.logger.Error("get employee basics failed", zap.Error(err))
		return nil, err
	}
	return v.([]EmployeeBasic), nil
}

func (s *service) GetAdminAndMods(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindByRoles(ctx, []string{RoleAdmin, RoleModerator})
	if err != nil {
		return nil, err
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

// GetByInviteToken resolves the employee an invitation was minted for. Token failures are
// returned as is so expiry stays distinguishable.
func (s *service) GetByInviteToken(ctx context.Context, inviteToken string) (EmployeeResponse, error) {
	claims, err := s.tokens.VerifyToken(inviteToken)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return EmployeeResponse{}, token.ErrTokenExpired
		}
		return EmployeeResponse{}, token.ErrInvalidToken
	}
	if err := claims.Require(token.PurposeInvite); err != nil {
		return EmployeeResponse{}, err
	}
	return s.GetByID(ctx, claims.ID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if req.ID != nil || req.Role != nil || req.Password != nil || req.WorkEmail != nil {
		return EmployeeResponse{}, employeeerrors.ErrImmutableField
	}

	fields := map[string]any{}
	setString := func(column string, v *string) {
		if v != nil {
			fields[column] = strings.TrimSpace(*v)
		}
	}
	setString("name", req.Name)
	setString("image", req.Image)
	setString("nid", req.NID)
	setString("tin", req.TIN)
	setString("phone", req.Phone)
	setString("gender", req.Gender)
	setString("blood_group", req.BloodGroup)
	setString("marital_status", req.MaritalStatus)
	setString("present_address", req.PresentAddress)
	setString("permanent_address", req.PermanentAddress)
	setString("facebook", req.Facebook)
	setString("twitter", req.Twitter)
	setString("linkedin", req.Linkedin)
	setString("note", req.Note)
	if req.PersonalEmail != nil {
		fields["personal_email"] = strings.ToLower(strings.TrimSpace(*req.PersonalEmail))
	}
	if req.DOB != nil {
		dob, err := time.Parse(dateLayout, strings.TrimSpace(*req.DOB))
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfBirth
		}
		fields["dob"] = dob
	}

	if len(fields) == 0 {
		return EmployeeResponse{}, employeeerrors.ErrEmptyUpdate
	}

	_, nameChanged := fields["name"]
	return s.patch(ctx, id, fields, nameChanged)
}

func (s *service) UpdateEmail(ctx context.Context, id string, req UpdateEmailRequest) (EmployeeResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.WorkEmail))
	return s.patch(ctx, id, map[string]any{"work_email": email}, true)
}

func (s *service) UpdatePassword(ctx context.Context, id string, req UpdatePasswordRequest) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return err
	}
	_, err = s.patch(ctx, id, map[string]any{"password": string(hashed)}, false)
	return err
}

func (s *service) UpdateDiscord(ctx context.Context, id string, req UpdateDiscordRequest) (EmployeeResponse, error) {
	return s.patch(ctx, id, map[string]any{"discord": strings.TrimSpace(req.Discord)}, false)
}

func (s *service) UpdatePersonality(ctx context.Context, id string, req UpdatePersonalityRequest) (EmployeeResponse, error) {
	return s.patch(ctx, id, map[string]any{"personality": strings.ToUpper(req.Personality)}, false)
}

func (s *service) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (EmployeeResponse, error) {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !IsValidRole(role) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}
	resp, err := s.patch(ctx, id, map[string]any{"role": role}, false)
	if err == nil {
		s.logger.Info("employee role changed", zap.String("employee_id", id), zap.String("role", role))
	}
	return resp, err
}

// Delete removes the employee and every record keyed by its id. A missing employee aborts
// the transaction with ErrEmployeeNotDeleted.
func (s *service) Delete(ctx context.Context, id string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		n, err := s.repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return employeeerrors.ErrEmployeeNotDeleted
		}

		if err := s.jobs.DeleteByEmployeeID(ctx, id); err != nil {
			return err
		}
		if err := s.payrolls.DeleteByEmployeeID(ctx, id); err != nil {
			return err
		}
		if err := s.leaves.DeleteRequestsByEmployeeID(ctx, id); err != nil {
			return err
		}
		if err := s.leaves.DeleteByEmployeeID(ctx, id); err != nil {
			return err
		}
		return s.onboardings.DeleteByEmployeeID(ctx, id)
	})
	if err != nil {
		s.logger.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	s.invalidateBasics(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) patch(ctx context.Context, id string, fields map[string]any, invalidate bool) (EmployeeResponse, error) {
	n, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if n == 0 {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	if invalidate {
		s.invalidateBasics(ctx)
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

// basicsKey resolves the current generation. Without one the read goes straight to the database.
func (s *service) basicsKey(ctx context.Context) (string, bool) {
	if s.rdb == nil {
		return BasicsCacheKey(0), false
	}
	version, err := s.rdb.Get(ctx, BasicsVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return BasicsCacheKey(0), true
	}
	if err != nil {
		s.logger.Warn("read employee basics cache version failed", zap.Error(err))
		return BasicsCacheKey(0), false
	}
	return BasicsCacheKey(version), true
}

func (s *service) invalidateBasics(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, BasicsVersionKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee basics cache",
			zap.String("key", BasicsVersionKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Image:            e.Image,
		WorkEmail:        e.WorkEmail,
		PersonalEmail:    e.PersonalEmail,
		Role:             e.Role,
		Status:           e.Status,
		NID:              e.NID,
		TIN:              e.TIN,
		Phone:            e.Phone,
		Gender:           e.Gender,
		BloodGroup:       e.BloodGroup,
		MaritalStatus:    e.MaritalStatus,
		PresentAddress:   e.PresentAddress,
		PermanentAddress: e.PermanentAddress,
		Facebook:         e.Facebook,
		Twitter:          e.Twitter,
		Linkedin:         e.Linkedin,
		Discord:          e.Discord,
		Personality:      e.Personality,
		Note:             e.Note,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
	if e.DOB != nil {
		resp.DOB = e.DOB.Format(dateLayout)
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, mapToResponse(e))
	}
	return resp
}

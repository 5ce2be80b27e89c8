package app

import (
	"context"
	"net/http"

	"go-hrm/internal/auth"
	"go-hrm/internal/config"
	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/employeebank"
	"go-hrm/internal/employeejob"
	"go-hrm/internal/leave"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/middleware"
	"go-hrm/internal/notification"
	"go-hrm/internal/offboarding"
	"go-hrm/internal/onboarding"
	"go-hrm/internal/payroll"
	"go-hrm/internal/rbac"
	"go-hrm/internal/rbac/infra"
	"go-hrm/internal/setting"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/shared/token"
	"go-hrm/internal/shared/transaction"
	"go-hrm/internal/tool"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) error {
	tx := transaction.NewManager(db)
	tokens := token.NewService(cfg.JWTSecret)

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	departmentRepo := department.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	jobRepo := employeejob.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)
	leaveRepo := leave.NewRepository(db)
	onboardingRepo := onboarding.NewRepository(db)
	offboardingRepo := offboarding.NewRepository(db)
	bankRepo := employeebank.NewRepository(db)
	toolRepo := tool.NewRepository(db)
	settingRepo := setting.NewRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	sender := notification.NewOutboxSender(outboxRepo, logger)
	settingService := setting.NewService(settingRepo, rdb, logger)

	employeeService := employee.NewService(employee.Dependencies{
		Repo:        employeeRepo,
		Jobs:        jobRepo,
		Payrolls:    payrollRepo,
		Leaves:      leaveRepo,
		Onboardings: onboardingRepo,
		Counter:     counterRepo,
		Settings:    settingService,
		Sender:      sender,
		Tokens:      tokens,
		Tx:          tx,
		Redis:       rdb,
		InviteTTL:   cfg.JWTExpire,
		BcryptCost:  cfg.BcryptCost,
	}, logger)
	authService := auth.NewService(employeeRepo, tokens, cfg.AccessTokenTTL, cfg.BcryptCost, logger)
	departmentService := department.NewService(departmentRepo, logger)
	jobService := employeejob.NewService(jobRepo, logger)
	payrollService := payroll.NewService(payrollRepo, cfg.OrgName, logger)
	leaveService := leave.NewService(leaveRepo, settingService, sender, tx, logger)
	onboardingService := onboarding.NewService(onboardingRepo, tx, logger)
	offboardingService := offboarding.NewService(offboardingRepo, sender, tx, logger)
	bankService := employeebank.NewService(bankRepo, tx, logger)
	toolService := tool.NewService(toolRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), cfg.AccessTokenTTL)
	employeeHandler := employee.NewHandler(employeeService, rdb, logger)
	departmentHandler := department.NewHandler(departmentService)
	jobHandler := employeejob.NewHandler(jobService, logger)
	payrollHandler := payroll.NewHandler(payrollService)
	leaveHandler := leave.NewHandler(leaveService, logger)
	onboardingHandler := onboarding.NewHandler(onboardingService)
	offboardingHandler := offboarding.NewHandler(offboardingService)
	bankHandler := employeebank.NewHandler(bankService)
	toolHandler := tool.NewHandler(toolService)
	settingHandler := setting.NewHandler(settingService)
	rbacHandler := rbac.NewHandler(rbacService)

	authMiddleware := middleware.AuthMiddleware(tokens)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware)
		employee.RegisterRoutes(api, employeeHandler, authMiddleware, rbacService, rdb)
		department.RegisterRoutes(api, departmentHandler, authMiddleware, rbacService)
		employeejob.RegisterRoutes(api, jobHandler, authMiddleware, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, authMiddleware, rbacService)
		leave.RegisterRoutes(api, leaveHandler, authMiddleware, rbacService)
		onboarding.RegisterRoutes(api, onboardingHandler, authMiddleware, rbacService)
		offboarding.RegisterRoutes(api, offboardingHandler, authMiddleware, rbacService)
		employeebank.RegisterRoutes(api, bankHandler, authMiddleware, rbacService)
		tool.RegisterRoutes(api, toolHandler, authMiddleware, rbacService)
		setting.RegisterRoutes(api, settingHandler, authMiddleware, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware)
	}

	return nil
}

package app

import (
	"go-hrm/internal/config"
	"go-hrm/internal/employee"
	"go-hrm/internal/employeebank"
	"go-hrm/internal/employeejob"
	"go-hrm/internal/leave"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/offboarding"
	"go-hrm/internal/onboarding"
	"go-hrm/internal/payroll"
	"go-hrm/internal/rbac"
	"go-hrm/internal/setting"
	"go-hrm/internal/shared/connection"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/tool"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// models lists every table the services touch, in dependency order.
var models = []any{
	&employee.Employee{},
	&employeejob.EmployeeJob{},
	&payroll.Payroll{},
	&leave.Leave{},
	&leave.LeaveRequest{},
	&onboarding.EmployeeOnboarding{},
	&offboarding.EmployeeOffboarding{},
	&employeebank.EmployeeBank{},
	&tool.Tool{},
	&setting.Setting{},
	&counter.Counter{},
	&kafka.OutboxEvent{},
	&rbac.RolePermission{},
}

func openDatabase(cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.DB.Postgres(), connectRetries)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, err
		}
		logger.Info("database schema migrated", zap.Int("models", len(models)))
	}
	return db, nil
}

func closeDatabase(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("close database failed", zap.Error(err))
	}
}

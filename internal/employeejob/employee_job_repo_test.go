package employeejob_test

import (
	"context"
	"testing"

	"go-hrm/internal/employeejob"
	"go-hrm/internal/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CountByDepartment(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := transaction.OpenGORM(db)
	assert.NoError(t, err)
	repo := employeejob.NewRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employee_jobs" WHERE department = \$1`).
		WithArgs("development").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	total, err := repo.CountByDepartment(context.Background(), "development")
	assert.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByEmployeeID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := transaction.OpenGORM(db)
	assert.NoError(t, err)
	repo := employeejob.NewRepository(gdb)

	mock.ExpectExec(`DELETE FROM "employee_jobs" WHERE employee_id = \$1`).
		WithArgs("DEV-20240115-001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteByEmployeeID(context.Background(), "DEV-20240115-001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package department_test

import (
	"context"
	"testing"

	"go-hrm/internal/department"
	"go-hrm/internal/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CountEmployees(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := transaction.OpenGORM(db)
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT department, COUNT\(\*\) AS total FROM "employee_jobs" GROUP BY "department"`).
		WillReturnRows(sqlmock.NewRows([]string{"department", "total"}).
			AddRow("development", 3).
			AddRow("design", 1))

	counts, err := department.NewRepository(gdb).CountEmployees(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), counts[department.Development])
	assert.Equal(t, int64(1), counts[department.Design])
	assert.NoError(t, mock.ExpectationsWereMet())
}

package employeebank_test

import (
	"context"
	"testing"
	"time"

	"go-hrm/internal/employeebank"
	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newRepo(t *testing.T) (employeebank.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := transaction.OpenGORM(db)
	assert.NoError(t, err)
	return employeebank.NewRepository(gdb), mock
}

func TestRepository_FindAllSearchesEmployeeID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employee_banks" WHERE .*employee_id ILIKE \$1\) OR \(employee_id ILIKE \$2`).
		WithArgs("%DEV%", "%OPS%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "employee_banks" WHERE .* ORDER BY created_at DESC,id ASC LIMIT \$3`).
		WithArgs("%DEV%", "%OPS%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "banks", "created_at", "updated_at"}).
			AddRow(uuid.New().String(), "DEV-20240115-001", []byte(`[{"bank_name":"City","account_name":"Alice","account_number":"001","is_default":true}]`), now, now))

	spec := query.Params{Search: "DEV|OPS"}.ToSpec(employeebank.ListOptions)
	rows, total, err := repo.FindAll(context.Background(), spec)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, rows, 1)
	assert.Equal(t, "City", rows[0].Banks[0].BankName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`INSERT INTO "employee_banks" .* ON CONFLICT \("employee_id"\) DO UPDATE SET "banks"="excluded"."banks","updated_at"="excluded"."updated_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &employeebank.EmployeeBank{
		ID:         uuid.New(),
		EmployeeID: "DEV-20240115-001",
		Banks:      []employeebank.Bank{{BankName: "City", AccountName: "Alice", AccountNumber: "001"}},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EmployeeExists(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT "id" FROM "employees" WHERE id = \$1 LIMIT \$2 FOR SHARE`).
		WithArgs("DEV-20240115-001", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("DEV-20240115-001"))
	mock.ExpectQuery(`SELECT "id" FROM "employees" WHERE id = \$1 LIMIT \$2 FOR SHARE`).
		WithArgs("DEV-20240115-404", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ok, err := repo.EmployeeExists(context.Background(), "DEV-20240115-001")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.EmployeeExists(context.Background(), "DEV-20240115-404")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByEmployeeID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM "employee_banks" WHERE employee_id = \$1`).
		WithArgs("DEV-20240115-001").
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.DeleteByEmployeeID(context.Background(), "DEV-20240115-001")
	assert.NoError(t, err)
	assert.Zero(t, n)
}

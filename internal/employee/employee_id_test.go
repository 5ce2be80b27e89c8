package employee_test

import (
	"testing"
	"time"

	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEmployeeID(t *testing.T) {
	joining := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "DEV-20240115-007", employee.GenerateEmployeeID(department.Development, joining, 7))
	assert.Equal(t, "HRM-20240115-1234", employee.GenerateEmployeeID(department.HR, joining, 1234))
	assert.Equal(t,
		employee.GenerateEmployeeID(department.Design, joining, 3),
		employee.GenerateEmployeeID(department.Design, joining, 3),
	)
}

func TestGenerateEmployeeID_Injective(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	seen := map[string]bool{}
	for _, d := range department.All() {
		for _, date := range dates {
			for serial := int64(1); serial <= 120; serial++ {
				id := employee.GenerateEmployeeID(d, date, serial)
				assert.False(t, seen[id], "duplicate id %s", id)
				seen[id] = true
			}
		}
	}
}

func TestParseEmployeeID_RoundTrip(t *testing.T) {
	joining := time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC)

	for _, d := range department.All() {
		id := employee.GenerateEmployeeID(d, joining, 42)
		parsed, err := employee.ParseEmployeeID(id)

		assert.NoError(t, err)
		assert.Equal(t, d, parsed.Department)
		assert.Equal(t, 2023, parsed.Year())
		assert.True(t, joining.Equal(parsed.JoiningDate))
		assert.Equal(t, int64(42), parsed.Serial)
	}
}

func TestParseEmployeeID_Invalid(t *testing.T) {
	for _, id := range []string{"", "DEV-20240115", "XXX-20240115-001", "DEV-2024011-001", "DEV-20240115-01", "DEV-20240115-abc", "DEV-20240115-000"} {
		_, err := employee.ParseEmployeeID(id)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID, id)
	}
}

package query_test

import (
	"regexp"
	"testing"

	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var employeeOptions = query.Options{
	SearchFields: []string{"name", "work_email"},
	SortableFields: map[string]string{
		"name":       "name",
		"created_at": "created_at",
	},
	DefaultSort:  "created_at",
	DefaultDesc:  true,
	TieBreaker:   "id",
	StatusColumn: "status",
	Columns:      []string{"id", "name", "work_email"},
}

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"alice", "bob"}, query.ParseKeywords("alice|bob"))
	assert.Equal(t, []string{"john doe"}, query.ParseKeywords("john+doe"))
	assert.Equal(t, []string{"a", "b"}, query.ParseKeywords("a||b|"))
	assert.Nil(t, query.ParseKeywords("  "))
}

func TestParams_ToSpec(t *testing.T) {
	t.Run("explicit skip and limit", func(t *testing.T) {
		spec := query.Params{Limit: 10, Skip: 20}.ToSpec(employeeOptions)
		assert.Equal(t, 10, spec.Limit)
		assert.Equal(t, 20, spec.Skip)
		assert.Equal(t, 3, spec.Page())
	})

	t.Run("page is converted to skip", func(t *testing.T) {
		spec := query.Params{Page: 4, Limit: 5}.ToSpec(employeeOptions)
		assert.Equal(t, 15, spec.Skip)
	})

	t.Run("defaults and caps", func(t *testing.T) {
		spec := query.Params{}.ToSpec(employeeOptions)
		assert.Equal(t, query.DefaultLimit, spec.Limit)
		assert.Equal(t, query.Sort{Column: "created_at", Desc: true}, spec.Sort)

		spec = query.Params{Limit: 5000}.ToSpec(employeeOptions)
		assert.Equal(t, query.MaxLimit, spec.Limit)
	})

	t.Run("unknown sort key falls back to default column", func(t *testing.T) {
		spec := query.Params{SortBy: "password; DROP TABLE", SortOrder: "asc"}.ToSpec(employeeOptions)
		assert.Equal(t, query.Sort{Column: "created_at", Desc: false}, spec.Sort)
	})

	t.Run("status becomes a filter", func(t *testing.T) {
		spec := query.Params{Status: "active"}.ToSpec(employeeOptions)
		assert.Equal(t, []query.Filter{{Column: "status", Value: "active"}}, spec.Filters)
	})
}

type employeeRow struct {
	ID        string
	Name      string
	WorkEmail string
}

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := transaction.OpenGORM(db)
	assert.NoError(t, err)
	return gdb.Session(&gorm.Session{DryRun: true})
}

func TestSpec_Apply(t *testing.T) {
	gdb := dryRun(t)
	spec := query.Params{Search: "alice|bob", Status: "active", SortBy: "name", Limit: 10, Skip: 20}.
		ToSpec(employeeOptions)

	var rows []employeeRow
	stmt := gdb.Table("employees").Scopes(spec.Apply()).Find(&rows).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "status = $1")
	assert.Contains(t, sql, "((name ILIKE $2 OR work_email ILIKE $3) OR (name ILIKE $4 OR work_email ILIKE $5))")
	assert.Contains(t, sql, "ORDER BY name ASC,id ASC")
	assert.Regexp(t, regexp.MustCompile(`LIMIT (\$\d+|10) OFFSET (\$\d+|20)`), sql)
	assert.Equal(t, []any{"active", "%alice%", "%alice%", "%bob%", "%bob%"}, stmt.Vars[:5])
}

func TestSpec_WhereEscapesWildcards(t *testing.T) {
	gdb := dryRun(t)
	spec := query.Params{Search: "100%_done"}.ToSpec(employeeOptions)

	var rows []employeeRow
	stmt := gdb.Table("employees").Scopes(spec.Where()).Find(&rows).Statement

	assert.Equal(t, `%100\%\_done%`, stmt.Vars[0])
}

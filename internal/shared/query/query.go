// Package query models list requests (filters, keyword search, sort, page window and
// projection) as a value and translates it to gorm scopes at the repository boundary.
package query

import (
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is what list endpoints accept from the query string.
type Params struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	Skip      int    `form:"skip" binding:"omitempty,min=0"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Search    string `form:"search"`
	Status    string `form:"status"`
}

// Options describe what a resource allows: which columns are searched, which sort keys map to
// which columns, and which columns are projected.
type Options struct {
	SearchFields   []string
	SortableFields map[string]string
	DefaultSort    string
	DefaultDesc    bool
	TieBreaker     string
	StatusColumn   string
	Columns        []string
}

type Filter struct {
	Column string
	Value  any
}

type Sort struct {
	Column string
	Desc   bool
}

// Spec is a store agnostic list request. Keywords are OR-ed groups; each group matches any of
// SearchFields case-insensitively as a substring.
type Spec struct {
	Keywords     []string
	SearchFields []string
	Filters      []Filter
	Sort         Sort
	TieBreaker   string
	Limit        int
	Skip         int
	Columns      []string
}

// ToSpec validates p against opts. Unknown sort keys fall back to the default sort.
func (p Params) ToSpec(opts Options) Spec {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	skip := p.Skip
	if skip <= 0 && p.Page > 1 {
		skip = (p.Page - 1) * limit
	}
	if skip < 0 {
		skip = 0
	}

	sort := Sort{Column: opts.DefaultSort, Desc: opts.DefaultDesc}
	if column, ok := opts.SortableFields[strings.ToLower(strings.TrimSpace(p.SortBy))]; ok {
		sort = Sort{Column: column, Desc: strings.EqualFold(p.SortOrder, "desc")}
	} else if p.SortOrder != "" {
		sort.Desc = strings.EqualFold(p.SortOrder, "desc")
	}

	spec := Spec{
		Keywords:     ParseKeywords(p.Search),
		SearchFields: opts.SearchFields,
		Sort:         sort,
		TieBreaker:   opts.TieBreaker,
		Limit:        limit,
		Skip:         skip,
		Columns:      opts.Columns,
	}

	if status := strings.TrimSpace(p.Status); status != "" && opts.StatusColumn != "" {
		spec.Filters = append(spec.Filters, Filter{Column: opts.StatusColumn, Value: status})
	}

	return spec
}

// Page is the 1-based page the window starts on.
func (s Spec) Page() int {
	if s.Limit <= 0 {
		return 1
	}
	return s.Skip/s.Limit + 1
}

// ParseKeywords splits a search string into keyword groups on "|". A "+" stands for a space,
// as in form encoded query strings. Empty groups are dropped.
func ParseKeywords(search string) []string {
	search = strings.ReplaceAll(search, "+", " ")
	if strings.TrimSpace(search) == "" {
		return nil
	}

	var keywords []string
	for _, kw := range strings.Split(search, "|") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// Where applies only the filter and search predicates, for counting.
func (s Spec) Where() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, f := range s.Filters {
			db = db.Where(f.Column+" = ?", f.Value)
		}

		if len(s.Keywords) == 0 || len(s.SearchFields) == 0 {
			return db
		}

		groups := make([]string, 0, len(s.Keywords))
		args := make([]any, 0, len(s.Keywords)*len(s.SearchFields))
		for _, kw := range s.Keywords {
			pattern := "%" + escapeLike(kw) + "%"
			conds := make([]string, 0, len(s.SearchFields))
			for _, field := range s.SearchFields {
				conds = append(conds, field+" ILIKE ?")
				args = append(args, pattern)
			}
			groups = append(groups, "("+strings.Join(conds, " OR ")+")")
		}

		return db.Where("("+strings.Join(groups, " OR ")+")", args...)
	}
}

// Apply applies predicates, ordering, the page window and the projection.
func (s Spec) Apply() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(s.Where())

		if len(s.Columns) > 0 {
			db = db.Select(s.Columns)
		}

		if s.Sort.Column != "" {
			dir := " ASC"
			if s.Sort.Desc {
				dir = " DESC"
			}
			db = db.Order(s.Sort.Column + dir)
		}
		if s.TieBreaker != "" && s.TieBreaker != s.Sort.Column {
			db = db.Order(s.TieBreaker + " ASC")
		}

		if s.Skip > 0 {
			db = db.Offset(s.Skip)
		}
		if s.Limit > 0 {
			db = db.Limit(s.Limit)
		}
		return db
	}
}

func escapeLike(v string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(v)
}

package department

import (
	"strings"

	departmenterrors "go-hrm/internal/department/errors"
)

// Department is one of the fixed organisational units an employee is hired into.
type Department string

const (
	Development Department = "development"
	Design      Department = "design"
	Marketing   Department = "marketing"
	HR          Department = "hr"
	Finance     Department = "finance"
	Operations  Department = "operations"
	Management  Department = "management"
)

// codes are distinct and three letters long; employee identifiers embed them.
var codes = map[Department]string{
	Development: "DEV",
	Design:      "DSG",
	Marketing:   "MKT",
	HR:          "HRM",
	Finance:     "FIN",
	Operations:  "OPS",
	Management:  "MGT",
}

var ordered = []Department{Development, Design, Marketing, HR, Finance, Operations, Management}

func All() []Department {
	out := make([]Department, len(ordered))
	copy(out, ordered)
	return out
}

func Parse(s string) (Department, error) {
	d := Department(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := codes[d]; !ok {
		return "", departmenterrors.ErrUnknownDepartment
	}
	return d, nil
}

func FromCode(code string) (Department, error) {
	code = strings.ToUpper(code)
	for d, c := range codes {
		if c == code {
			return d, nil
		}
	}
	return "", departmenterrors.ErrUnknownDepartment
}

func (d Department) Code() string {
	return codes[d]
}

func (d Department) String() string {
	return string(d)
}

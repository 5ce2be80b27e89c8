package employee

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-hrm/internal/department"
	employeeerrors "go-hrm/internal/employee/errors"
)

const idDateLayout = "20060102"

// GenerateEmployeeID formats <CODE>-<YYYYMMDD>-<serial>, e.g. DEV-20240115-007.
// Serials below 1000 are zero padded to three digits.
func GenerateEmployeeID(dept department.Department, joiningDate time.Time, serial int64) string {
	return fmt.Sprintf("%s-%s-%03d", dept.Code(), joiningDate.Format(idDateLayout), serial)
}

type ParsedEmployeeID struct {
	Department  department.Department
	JoiningDate time.Time
	Serial      int64
}

func (p ParsedEmployeeID) Year() int {
	return p.JoiningDate.Year()
}

func ParseEmployeeID(id string) (ParsedEmployeeID, error) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return ParsedEmployeeID{}, employeeerrors.ErrInvalidEmployeeID
	}

	dept, err := department.FromCode(parts[0])
	if err != nil {
		return ParsedEmployeeID{}, employeeerrors.ErrInvalidEmployeeID
	}
	joining, err := time.Parse(idDateLayout, parts[1])
	if err != nil {
		return ParsedEmployeeID{}, employeeerrors.ErrInvalidEmployeeID
	}
	if len(parts[2]) < 3 {
		return ParsedEmployeeID{}, employeeerrors.ErrInvalidEmployeeID
	}
	serial, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || serial < 1 {
		return ParsedEmployeeID{}, employeeerrors.ErrInvalidEmployeeID
	}

	return ParsedEmployeeID{Department: dept, JoiningDate: joining, Serial: serial}, nil
}

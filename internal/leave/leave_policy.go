package leave

import (
	"math"
	"time"

	"go-hrm/internal/setting"
)

// CalculateRemainingLeave prorates an annual allotment to the part of the year left, counting
// ref itself through December 31.
func CalculateRemainingLeave(ref time.Time, annual int) int {
	if annual <= 0 {
		return 0
	}

	year := ref.Year()
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(year, ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	daysInYear := int(next.Sub(start).Hours() / 24)
	daysRemaining := int(next.Sub(day).Hours() / 24)

	return int(math.Round(float64(annual) * float64(daysRemaining) / float64(daysInYear)))
}

// ProratedYear is the first ledger entry for someone joining on joiningDate. Earned leave
// starts at zero.
func ProratedYear(joiningDate time.Time, allotted setting.LeaveAllottedDays) LeaveYear {
	return LeaveYear{
		Year:       joiningDate.Year(),
		Casual:     Balance{Allotted: CalculateRemainingLeave(joiningDate, allotted.Casual)},
		Sick:       Balance{Allotted: CalculateRemainingLeave(joiningDate, allotted.Sick)},
		WithoutPay: Balance{Allotted: CalculateRemainingLeave(joiningDate, allotted.WithoutPay)},
	}
}

// FullYear is the ledger entry for a year the employee starts already employed.
func FullYear(year int, allotted setting.LeaveAllottedDays) LeaveYear {
	return LeaveYear{
		Year:       year,
		Casual:     Balance{Allotted: max(allotted.Casual, 0)},
		Sick:       Balance{Allotted: max(allotted.Sick, 0)},
		WithoutPay: Balance{Allotted: max(allotted.WithoutPay, 0)},
	}
}

// DayCount counts calendar days from start through end.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

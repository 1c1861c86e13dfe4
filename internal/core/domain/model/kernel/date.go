package kernel

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a zone. Reports compare an order's local
// purchase date with a Date by equality.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate rejects impossible days such as 2024-02-30.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar day", year, month, day))
	}
	return Date{year: year, month: month, day: day}, nil
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t, time.UTC), nil
}

// DateOf is the calendar day of t in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Validate() error {
	if d.year == 0 {
		return errs.NewValueIsRequiredError("date")
	}
	return nil
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() time.Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// Start is the first instant of the day in loc.
func (d Date) Start(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Date) MonthStart() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// NextMonthStart is the first day of the following month.
func (d Date) NextMonthStart() Date {
	return DateOf(time.Date(d.year, d.month+1, 1, 0, 0, 0, 0, time.UTC), time.UTC)
}

func (d Date) SameMonth(other Date) bool {
	return d.year == other.year && d.month == other.month
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"habit-tracker-go/internal/domain/apperror"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	MinWeekday = 0
	MaxWeekday = 6
)

var (
	ErrInvalidDate    = apperror.New(apperror.ErrValidation, "invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth   = apperror.New(apperror.ErrValidation, "invalid month, expected YYYY-MM")
	ErrInvalidWeekday = apperror.New(apperror.ErrValidation, "invalid weekday, must be between 0 and 6")
	ErrInvalidRange   = apperror.New(apperror.ErrValidation, "from must be <= to")
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (ym YearMonth) LastDay() time.Time {
	return time.Date(ym.Year, ym.Month, DaysInMonth(ym.Year, ym.Month), 0, 0, 0, 0, time.UTC)
}

// Range returns the inclusive [first day, last day] of the month.
func (ym YearMonth) Range() (time.Time, time.Time) {
	return ym.FirstDay(), ym.LastDay()
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns 28..31 for a valid month and 0 otherwise.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// WeekdayOf uses the proleptic Gregorian calendar with Sunday=0.
func WeekdayOf(date time.Time) int {
	return int(date.Weekday())
}

func ValidateWeekday(weekday int) error {
	if weekday < MinWeekday || weekday > MaxWeekday {
		return ErrInvalidWeekday
	}
	return nil
}

func ParseWeekday(value string) (int, error) {
	weekday, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, ErrInvalidWeekday
	}
	if err := ValidateWeekday(weekday); err != nil {
		return 0, err
	}
	return weekday, nil
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

func ParseYearMonth(value string) (YearMonth, error) {
	parsed, err := time.Parse(MonthLayout, strings.TrimSpace(value))
	if err != nil {
		return YearMonth{}, ErrInvalidMonth
	}
	return YearMonth{Year: parsed.Year(), Month: parsed.Month()}, nil
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

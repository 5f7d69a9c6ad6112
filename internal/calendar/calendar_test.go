package calendar

import (
	"errors"
	"testing"
	"time"

	"habit-tracker-go/internal/domain/apperror"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2023, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.June, 30},
		{2024, time.September, 30},
		{2024, time.November, 30},
		{2024, time.December, 31},
		{2024, time.Month(13), 0},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Fatalf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDaysInMonthMatchesTimePackage(t *testing.T) {
	for year := 1896; year <= 2104; year++ {
		for month := time.January; month <= time.December; month++ {
			// Day 0 of the next month normalizes to the last day of this one.
			want := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got := DaysInMonth(year, month); got != want {
				t.Fatalf("DaysInMonth(%d, %s) = %d, want %d", year, month, got, want)
			}
		}
	}
}

func TestYearMonthRange(t *testing.T) {
	tests := []struct {
		month string
		last  string
	}{
		{"2023-02", "2023-02-28"},
		{"2024-02", "2024-02-29"},
		{"2024-04", "2024-04-30"},
		{"2024-12", "2024-12-31"},
	}

	for _, tt := range tests {
		ym, err := ParseYearMonth(tt.month)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.month, err)
		}
		from, to := ym.Range()
		if FormatDate(from) != tt.month+"-01" {
			t.Fatalf("expected first day %s-01, got %s", tt.month, FormatDate(from))
		}
		if FormatDate(to) != tt.last {
			t.Fatalf("expected last day %s, got %s", tt.last, FormatDate(to))
		}
		if ym.String() != tt.month {
			t.Fatalf("expected %s, got %s", tt.month, ym.String())
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-06-09", 0},
		{"2024-06-10", 1},
		{"2024-06-15", 6},
		{"2000-02-29", 2},
		{"1970-01-01", 4},
	}

	for _, tt := range tests {
		date, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.date, err)
		}
		if got := WeekdayOf(date); got != tt.want {
			t.Fatalf("WeekdayOf(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, value := range []string{"", "2024-6-10", "2024-02-30", "10/06/2024", "2024-06"} {
		_, err := ParseDate(value)
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q): expected ErrInvalidDate, got %v", value, err)
		}
		if !errors.Is(err, apperror.ErrValidation) {
			t.Fatalf("ParseDate(%q): expected validation kind", value)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	for value, want := range map[string]int{"0": 0, "3": 3, " 6 ": 6} {
		got, err := ParseWeekday(value)
		if err != nil {
			t.Fatalf("ParseWeekday(%q): %v", value, err)
		}
		if got != want {
			t.Fatalf("ParseWeekday(%q) = %d, want %d", value, got, want)
		}
	}

	for _, value := range []string{"", "-1", "7", "monday", "1.5"} {
		if _, err := ParseWeekday(value); !errors.Is(err, ErrInvalidWeekday) {
			t.Fatalf("ParseWeekday(%q): expected ErrInvalidWeekday, got %v", value, err)
		}
	}
}

func TestParseYearMonthRejectsMalformedInput(t *testing.T) {
	for _, value := range []string{"", "2024", "2024-13", "2024-1", "2024-06-01"} {
		if _, err := ParseYearMonth(value); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("ParseYearMonth(%q): expected ErrInvalidMonth, got %v", value, err)
		}
	}
}

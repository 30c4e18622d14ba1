package helpers

import (
	"testing"
	"time"
)

func TestValidateWeekStart(t *testing.T) {
	// 2024-03-03 is a Sunday
	sunday := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	if err := ValidateWeekStart(sunday); err != nil {
		t.Fatalf("expected Sunday to be valid: %v", err)
	}

	for offset := 1; offset <= 6; offset++ {
		day := sunday.AddDate(0, 0, offset)
		if err := ValidateWeekStart(day); err == nil {
			t.Fatalf("expected %s to be rejected", day.Weekday())
		}
	}
}

func TestWeekEnd(t *testing.T) {
	sunday := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	end := WeekEnd(sunday)
	if end.Weekday() != time.Thursday {
		t.Fatalf("expected Thursday, got %s", end.Weekday())
	}
	if end.Format(DateLayout) != "2024-03-07" {
		t.Fatalf("unexpected week end: %s", end.Format(DateLayout))
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 1 {
		t.Fatalf("unexpected date: %v", d)
	}

	for _, bad := range []string{"", "03/01/2024", "2024-13-01", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected %q to fail", bad)
		}
	}
}

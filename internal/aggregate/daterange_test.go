package aggregate

import (
	"testing"
	"time"

	"github.com/contatoscormecial-rgb/zap/internal/models"
)

func TestParseRange(t *testing.T) {
	cases := []struct {
		in   string
		want Range
	}{
		{"today", RangeToday},
		{"7d", RangeLast7Days},
		{"month", RangeCurrentMonth},
		{"prev-month", RangePreviousMonth},
		{"", RangeNone},
		{"yesterday", RangeNone},
	}
	for _, c := range cases {
		if got := ParseRange(c.in); got != c.want {
			t.Errorf("ParseRange(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBounds(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		r          Range
		start, end string
	}{
		{RangeToday, "2026-03-15", "2026-03-15"},
		{RangeLast7Days, "2026-03-09", "2026-03-15"},
		{RangeCurrentMonth, "2026-03-01", "2026-03-31"},
		{RangePreviousMonth, "2026-02-01", "2026-02-28"},
	}
	for _, c := range cases {
		start, end, ok := Bounds(c.r, now)
		if !ok {
			t.Fatalf("Bounds(%q) not ok", c.r)
		}
		if start.String() != c.start || end.String() != c.end {
			t.Errorf("Bounds(%q) = %s..%s, want %s..%s", c.r, start, end, c.start, c.end)
		}
	}

	if _, _, ok := Bounds(RangeNone, now); ok {
		t.Fatal("RangeNone should not produce bounds")
	}
}

func TestBoundsPreviousMonthAcrossYear(t *testing.T) {
	now := time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)
	start, end, ok := Bounds(RangePreviousMonth, now)
	if !ok {
		t.Fatal("expected bounds")
	}
	if start.String() != "2025-12-01" || end.String() != "2025-12-31" {
		t.Fatalf("got %s..%s, want 2025-12-01..2025-12-31", start, end)
	}
}

func TestFilterByRangeInclusiveBounds(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	list := []models.Transaction{
		tx("first of month", "x", 1, models.KindExpense, "2026-03-01"),
		tx("last of month", "x", 2, models.KindExpense, "2026-03-31"),
		tx("prior month", "x", 3, models.KindExpense, "2026-02-28"),
		tx("next month", "x", 4, models.KindExpense, "2026-04-01"),
	}

	got := FilterByRange(list, RangeCurrentMonth, now)
	if len(got) != 2 {
		t.Fatalf("want 2 rows inside the month, got %d", len(got))
	}
	if got[0].Description != "first of month" || got[1].Description != "last of month" {
		t.Fatalf("wrong rows kept: %v", got)
	}

	if got := FilterByRange(list, RangeNone, now); len(got) != len(list) {
		t.Fatalf("RangeNone should not filter, got %d rows", len(got))
	}
}

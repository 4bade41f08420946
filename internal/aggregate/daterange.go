package aggregate

import (
	"time"

	"github.com/contatoscormecial-rgb/zap/internal/models"
)

// Range is a named date-range token. Today and 7d are evaluated against
// wall-clock time, so their results shift across calendar days.
type Range string

const (
	RangeNone          Range = ""
	RangeToday         Range = "today"
	RangeLast7Days     Range = "7d"
	RangeCurrentMonth  Range = "month"
	RangePreviousMonth Range = "prev-month"
)

// ParseRange maps a query token to a Range. Unknown tokens mean no filter.
func ParseRange(s string) Range {
	switch Range(s) {
	case RangeToday, RangeLast7Days, RangeCurrentMonth, RangePreviousMonth:
		return Range(s)
	}
	return RangeNone
}

// Bounds computes the inclusive first and last calendar day of the range,
// relative to now. ok is false for RangeNone.
func Bounds(r Range, now time.Time) (start, end models.Date, ok bool) {
	today := models.NewDate(now.Year(), now.Month(), now.Day())
	switch r {
	case RangeToday:
		return today, today, true
	case RangeLast7Days:
		return models.Date{Time: today.AddDate(0, 0, -6)}, today, true
	case RangeCurrentMonth:
		first := models.NewDate(now.Year(), now.Month(), 1)
		last := models.Date{Time: first.AddDate(0, 1, -1)}
		return first, last, true
	case RangePreviousMonth:
		first := models.Date{Time: models.NewDate(now.Year(), now.Month(), 1).AddDate(0, -1, 0)}
		last := models.Date{Time: first.AddDate(0, 1, -1)}
		return first, last, true
	}
	return models.Date{}, models.Date{}, false
}

// FilterByRange keeps transactions whose date falls within the range,
// both bounds inclusive. RangeNone returns the input unchanged.
func FilterByRange(list []models.Transaction, r Range, now time.Time) []models.Transaction {
	start, end, ok := Bounds(r, now)
	if !ok {
		return list
	}
	filtered := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		if !t.Date.Before(start.Time) && !t.Date.After(end.Time) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

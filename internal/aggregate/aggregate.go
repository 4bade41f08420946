// Package aggregate holds the pure in-memory transformations behind the
// dashboard and budget views: date and substring filters, group-by-category
// sums, top-N selection, cumulative series and percentage arithmetic.
// Nothing here touches storage.
package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/shopspring/decimal"
)

// FilterByText keeps transactions whose description or category contains
// the query, case-insensitive. An empty query returns the input unchanged.
func FilterByText(list []models.Transaction, query string) []models.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	filtered := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		if strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterByKind keeps transactions of the given kind (income or expense).
func FilterByKind(list []models.Transaction, kind string) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		if t.Kind == kind {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterRecurring keeps transactions matching the recurring mode:
// "single", "recurring", or anything else for no filter.
func FilterRecurring(list []models.Transaction, mode string) []models.Transaction {
	switch mode {
	case "single", "recurring":
	default:
		return list
	}
	want := mode == "recurring"
	filtered := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		if t.Recurring == want {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// SumAmounts totals the amounts of all transactions in the list.
func SumAmounts(list []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range list {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// GroupByCategory buckets transactions by category and sums their amounts.
// Bucket order follows first-seen insertion order.
func GroupByCategory(list []models.Transaction) []models.CategoryTotal {
	index := make(map[string]int)
	totals := make([]models.CategoryTotal, 0)
	for _, t := range list {
		i, seen := index[t.Category]
		if !seen {
			index[t.Category] = len(totals)
			totals = append(totals, models.CategoryTotal{Category: t.Category, Total: t.Amount})
			continue
		}
		totals[i].Total = totals[i].Total.Add(t.Amount)
	}
	return totals
}

// TopN returns the n largest transactions by amount, descending.
// The sort is stable, so ties keep their original list order.
func TopN(list []models.Transaction, n int) []models.Transaction {
	sorted := make([]models.Transaction, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// MonthlyEvolution groups transactions into MM/YY buckets with income,
// expense and balance per month, ordered chronologically.
func MonthlyEvolution(list []models.Transaction) []models.MonthlyBalance {
	type bucket struct {
		models.MonthlyBalance
		ord int // year*12+month for chronological sorting
	}
	index := make(map[string]int)
	buckets := make([]bucket, 0)
	for _, t := range list {
		label := fmt.Sprintf("%02d/%02d", int(t.Date.Month()), t.Date.Year()%100)
		i, seen := index[label]
		if !seen {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, bucket{
				MonthlyBalance: models.MonthlyBalance{
					Month:   label,
					Income:  decimal.Zero,
					Expense: decimal.Zero,
				},
				ord: t.Date.Year()*12 + int(t.Date.Month()),
			})
		}
		if t.Kind == models.KindIncome {
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		} else {
			buckets[i].Expense = buckets[i].Expense.Add(t.Amount)
		}
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].ord < buckets[j].ord })

	out := make([]models.MonthlyBalance, len(buckets))
	for i, b := range buckets {
		b.Balance = b.Income.Sub(b.Expense)
		out[i] = b.MonthlyBalance
	}
	return out
}

// CumulativeByDate sorts investments ascending by date and emits a running
// total with one point per distinct date. When several records share a
// date, the later one's cumulative value wins.
func CumulativeByDate(list []models.Investment) []models.InvestmentPoint {
	sorted := make([]models.Investment, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date.Time)
	})

	points := make([]models.InvestmentPoint, 0, len(sorted))
	cumulative := decimal.Zero
	for _, inv := range sorted {
		cumulative = cumulative.Add(inv.Amount)
		if n := len(points); n > 0 && points[n-1].Date.Equal(inv.Date.Time) {
			points[n-1].Total = cumulative
			continue
		}
		points = append(points, models.InvestmentPoint{Date: inv.Date, Total: cumulative})
	}
	return points
}

// PercentOfLimit computes spent/limit*100, or zero when the limit is not
// positive. The value is left unclamped; display clamping is a client
// concern, the tier thresholds need the raw percentage.
func PercentOfLimit(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(limit).Mul(decimal.NewFromInt(100))
}

// Tier maps a percentage to its color tier: red above 90, yellow above 70,
// green otherwise. Exactly 90 is yellow.
func Tier(percentage decimal.Decimal) string {
	switch {
	case percentage.GreaterThan(decimal.NewFromInt(90)):
		return models.TierRed
	case percentage.GreaterThan(decimal.NewFromInt(70)):
		return models.TierYellow
	default:
		return models.TierGreen
	}
}

// NextGoalAmount applies a relative goal update: current plus or minus
// delta, clamped at a zero minimum.
func NextGoalAmount(current, delta decimal.Decimal, direction string) decimal.Decimal {
	next := current.Add(delta)
	if direction == models.GoalSubtract {
		next = current.Sub(delta)
	}
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

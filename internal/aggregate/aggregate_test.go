package aggregate

import (
	"testing"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/shopspring/decimal"
)

func tx(description, category string, amount float64, kind string, date string) models.Transaction {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Description: description,
		Category:    category,
		Amount:      decimal.NewFromFloat(amount),
		Kind:        kind,
		Date:        d,
	}
}

func TestFilterByText(t *testing.T) {
	list := []models.Transaction{
		tx("Mercado do bairro", "Alimentação", 120, models.KindExpense, "2026-01-05"),
		tx("Uber", "Transporte", 30, models.KindExpense, "2026-01-06"),
		tx("Salário", "Renda", 5000, models.KindIncome, "2026-01-01"),
	}

	got := FilterByText(list, "MERCADO")
	if len(got) != 1 || got[0].Description != "Mercado do bairro" {
		t.Fatalf("description match failed, got %v", got)
	}

	// Category matches too
	got = FilterByText(list, "transporte")
	if len(got) != 1 || got[0].Category != "Transporte" {
		t.Fatalf("category match failed, got %v", got)
	}

	if got := FilterByText(list, "  "); len(got) != len(list) {
		t.Fatalf("blank query should not filter, got %d rows", len(got))
	}
}

func TestFilterByKind(t *testing.T) {
	list := []models.Transaction{
		tx("a", "x", 1, models.KindIncome, "2026-01-01"),
		tx("b", "x", 2, models.KindExpense, "2026-01-02"),
		tx("c", "x", 3, models.KindExpense, "2026-01-03"),
	}
	if got := FilterByKind(list, models.KindExpense); len(got) != 2 {
		t.Fatalf("want 2 expenses, got %d", len(got))
	}
	if got := FilterByKind(list, models.KindIncome); len(got) != 1 {
		t.Fatalf("want 1 income, got %d", len(got))
	}
}

func TestFilterRecurring(t *testing.T) {
	single := tx("once", "x", 1, models.KindExpense, "2026-01-01")
	recurring := tx("monthly", "x", 2, models.KindExpense, "2026-01-02")
	recurring.Recurring = true
	list := []models.Transaction{single, recurring}

	if got := FilterRecurring(list, "single"); len(got) != 1 || got[0].Recurring {
		t.Fatalf("single filter failed, got %v", got)
	}
	if got := FilterRecurring(list, "recurring"); len(got) != 1 || !got[0].Recurring {
		t.Fatalf("recurring filter failed, got %v", got)
	}
	if got := FilterRecurring(list, "all"); len(got) != 2 {
		t.Fatalf("unknown mode should not filter, got %d rows", len(got))
	}
}

func TestBalanceIdentity(t *testing.T) {
	list := []models.Transaction{
		tx("salário", "Renda", 5000, models.KindIncome, "2026-01-01"),
		tx("freela", "Renda", 1200.50, models.KindIncome, "2026-01-10"),
		tx("mercado", "Alimentação", 430.25, models.KindExpense, "2026-01-05"),
		tx("aluguel", "Moradia", 1800, models.KindExpense, "2026-01-02"),
	}
	income := SumAmounts(FilterByKind(list, models.KindIncome))
	expense := SumAmounts(FilterByKind(list, models.KindExpense))
	balance := income.Sub(expense)

	want := decimal.NewFromFloat(3970.25)
	if !balance.Equal(want) {
		t.Fatalf("balance = %s, want %s", balance, want)
	}
}

func TestGroupByCategory(t *testing.T) {
	list := []models.Transaction{
		tx("a", "Alimentação", 100, models.KindExpense, "2026-01-01"),
		tx("b", "Transporte", 50, models.KindExpense, "2026-01-02"),
		tx("c", "Alimentação", 25.50, models.KindExpense, "2026-01-03"),
	}
	got := GroupByCategory(list)
	if len(got) != 2 {
		t.Fatalf("want 2 buckets, got %d", len(got))
	}
	// First-seen order
	if got[0].Category != "Alimentação" || got[1].Category != "Transporte" {
		t.Fatalf("bucket order wrong: %v", got)
	}
	if !got[0].Total.Equal(decimal.NewFromFloat(125.50)) {
		t.Fatalf("Alimentação total = %s, want 125.5", got[0].Total)
	}

	// Bucket totals add up to the plain sum
	sum := decimal.Zero
	for _, ct := range got {
		sum = sum.Add(ct.Total)
	}
	if !sum.Equal(SumAmounts(list)) {
		t.Fatalf("bucket sum %s != total %s", sum, SumAmounts(list))
	}
}

func TestTopN(t *testing.T) {
	list := []models.Transaction{
		tx("small", "x", 10, models.KindExpense, "2026-01-01"),
		tx("tie-first", "x", 50, models.KindExpense, "2026-01-02"),
		tx("big", "x", 200, models.KindExpense, "2026-01-03"),
		tx("tie-second", "x", 50, models.KindExpense, "2026-01-04"),
	}
	got := TopN(list, 3)
	if len(got) != 3 {
		t.Fatalf("want 3, got %d", len(got))
	}
	if got[0].Description != "big" {
		t.Fatalf("largest first, got %s", got[0].Description)
	}
	// Stable sort keeps tie order
	if got[1].Description != "tie-first" || got[2].Description != "tie-second" {
		t.Fatalf("tie order not preserved: %s, %s", got[1].Description, got[2].Description)
	}

	if got := TopN(list, 10); len(got) != len(list) {
		t.Fatalf("n beyond length should return all, got %d", len(got))
	}
}

func TestMonthlyEvolution(t *testing.T) {
	list := []models.Transaction{
		tx("jan income", "Renda", 1000, models.KindIncome, "2026-01-15"),
		tx("dec expense", "Moradia", 300, models.KindExpense, "2025-12-20"),
		tx("jan expense", "Moradia", 400, models.KindExpense, "2026-01-05"),
	}
	got := MonthlyEvolution(list)
	if len(got) != 2 {
		t.Fatalf("want 2 months, got %d", len(got))
	}
	// Chronological across the year boundary
	if got[0].Month != "12/25" || got[1].Month != "01/26" {
		t.Fatalf("month order wrong: %s, %s", got[0].Month, got[1].Month)
	}
	if !got[1].Income.Equal(decimal.NewFromInt(1000)) || !got[1].Expense.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("january totals wrong: income %s expense %s", got[1].Income, got[1].Expense)
	}
	if !got[1].Balance.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("january balance = %s, want 600", got[1].Balance)
	}
	if !got[0].Balance.Equal(decimal.NewFromInt(-300)) {
		t.Fatalf("december balance = %s, want -300", got[0].Balance)
	}
}

func inv(amount float64, date string) models.Investment {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return models.Investment{Amount: decimal.NewFromFloat(amount), Date: d}
}

func TestCumulativeByDate(t *testing.T) {
	list := []models.Investment{
		inv(300, "2026-02-01"),
		inv(100, "2026-01-01"),
		inv(200, "2026-01-01"),
	}
	got := CumulativeByDate(list)
	if len(got) != 2 {
		t.Fatalf("want one point per distinct date, got %d", len(got))
	}
	if got[0].Date.String() != "2026-01-01" || !got[0].Total.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("first point wrong: %s %s", got[0].Date, got[0].Total)
	}
	if got[1].Date.String() != "2026-02-01" || !got[1].Total.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("second point wrong: %s %s", got[1].Date, got[1].Total)
	}
}

func TestPercentOfLimit(t *testing.T) {
	got := PercentOfLimit(decimal.NewFromInt(450), decimal.NewFromInt(500))
	if !got.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("450/500 = %s, want 90", got)
	}

	// Overspending goes past 100, unclamped
	got = PercentOfLimit(decimal.NewFromInt(600), decimal.NewFromInt(500))
	if !got.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("600/500 = %s, want 120", got)
	}

	if got := PercentOfLimit(decimal.NewFromInt(100), decimal.Zero); !got.IsZero() {
		t.Fatalf("zero limit should yield zero, got %s", got)
	}
}

func TestTier(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{0, models.TierGreen},
		{70, models.TierGreen},
		{70.01, models.TierYellow},
		{90, models.TierYellow},
		{90.01, models.TierRed},
		{150, models.TierRed},
	}
	for _, c := range cases {
		if got := Tier(decimal.NewFromFloat(c.percentage)); got != c.want {
			t.Errorf("Tier(%v) = %s, want %s", c.percentage, got, c.want)
		}
	}
}

func TestNextGoalAmount(t *testing.T) {
	current := decimal.NewFromInt(500)

	got := NextGoalAmount(current, decimal.NewFromInt(200), models.GoalAdd)
	if !got.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("add: got %s, want 700", got)
	}

	got = NextGoalAmount(current, decimal.NewFromInt(200), models.GoalSubtract)
	if !got.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("subtract: got %s, want 300", got)
	}

	// Subtracting past zero clamps
	got = NextGoalAmount(current, decimal.NewFromInt(800), models.GoalSubtract)
	if !got.IsZero() {
		t.Fatalf("clamp: got %s, want 0", got)
	}
}

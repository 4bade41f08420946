package models

import "github.com/shopspring/decimal"

// CategoryTotal is one bucket of a group-by-category sum.
type CategoryTotal struct {
	Category string          `json:"name"`
	Total    decimal.Decimal `json:"value"`
}

// MonthlyBalance represents income, expense and balance for one MM/YY month
type MonthlyBalance struct {
	Month   string          `json:"name"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// DashboardSummary represents the aggregated dashboard view
type DashboardSummary struct {
	TotalIncome         decimal.Decimal  `json:"total_income"`
	TotalExpense        decimal.Decimal  `json:"total_expense"`
	Balance             decimal.Decimal  `json:"balance"`
	ExpenseDistribution []CategoryTotal  `json:"expense_distribution"`
	IncomeDistribution  []CategoryTotal  `json:"income_distribution"`
	BalanceEvolution    []MonthlyBalance `json:"balance_evolution"`
	TopExpenses         []Transaction    `json:"top_expenses"`
	TopIncomes          []Transaction    `json:"top_incomes"`
}

package service

import (
	"time"

	"github.com/contatoscormecial-rgb/zap/internal/aggregate"
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// topCount is how many entries the top expenses/incomes views show.
const topCount = 5

// Dashboard aggregates the user's transactions into the dashboard view:
// totals, category distributions, monthly balance evolution and top
// expenses/incomes, all computed after the date and text filters.
func (s *Service) Dashboard(userID uuid.UUID, dateRange aggregate.Range, query string) (*models.DashboardSummary, error) {
	list, err := s.repo.ListTransactions(userID)
	if err != nil {
		return nil, err
	}
	list = aggregate.FilterByRange(list, dateRange, time.Now())
	list = aggregate.FilterByText(list, query)

	incomes := aggregate.FilterByKind(list, models.KindIncome)
	expenses := aggregate.FilterByKind(list, models.KindExpense)

	totalIncome := aggregate.SumAmounts(incomes)
	totalExpense := aggregate.SumAmounts(expenses)

	return &models.DashboardSummary{
		TotalIncome:         totalIncome,
		TotalExpense:        totalExpense,
		Balance:             totalIncome.Sub(totalExpense),
		ExpenseDistribution: aggregate.GroupByCategory(expenses),
		IncomeDistribution:  aggregate.GroupByCategory(incomes),
		BalanceEvolution:    aggregate.MonthlyEvolution(list),
		TopExpenses:         aggregate.TopN(expenses, topCount),
		TopIncomes:          aggregate.TopN(incomes, topCount),
	}, nil
}

package service

import (
	"fmt"
	"strings"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ExportFilename is the fixed download name for the transactions CSV.
const ExportFilename = "zap_financeiro_transacoes.csv"

// ExportTransactionsCSV renders the user's full transaction list as CSV,
// newest date first, with no row limit.
func (s *Service) ExportTransactionsCSV(userID uuid.UUID) ([]byte, error) {
	list, err := s.repo.ListTransactions(userID)
	if err != nil {
		return nil, err
	}
	return TransactionsCSV(list), nil
}

// TransactionsCSV builds the export document. The description is always
// quoted with internal double quotes doubled, so it round-trips through
// any standard CSV parser. Other fields never contain commas or quotes.
func TransactionsCSV(list []models.Transaction) []byte {
	rows := make([]string, 0, len(list)+1)
	rows = append(rows, "id,description,category,amount,type,date,recurring")
	for _, t := range list {
		description := `"` + strings.ReplaceAll(t.Description, `"`, `""`) + `"`
		rows = append(rows, fmt.Sprintf("%d,%s,%s,%s,%s,%s,%t",
			t.ID, description, t.Category, t.Amount.String(), t.Kind, t.Date.String(), t.Recurring))
	}
	return []byte(strings.Join(rows, "\n"))
}

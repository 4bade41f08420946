package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/shopspring/decimal"
)

func exportTx(id int64, description, category string, amount string, kind, date string, recurring bool) models.Transaction {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		ID:          id,
		Description: description,
		Category:    category,
		Amount:      amt,
		Kind:        kind,
		Date:        d,
		Recurring:   recurring,
	}
}

func TestTransactionsCSVHeaderOnly(t *testing.T) {
	got := string(TransactionsCSV(nil))
	if got != "id,description,category,amount,type,date,recurring" {
		t.Fatalf("empty export = %q", got)
	}
}

func TestTransactionsCSVRows(t *testing.T) {
	list := []models.Transaction{
		exportTx(1, "Mercado", "Alimentação", "120.50", models.KindExpense, "2026-01-05", false),
		exportTx(2, "Salário", "Renda", "5000", models.KindIncome, "2026-01-01", true),
	}
	got := string(TransactionsCSV(list))
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %d lines", len(lines))
	}
	if lines[1] != `1,"Mercado",Alimentação,120.5,expense,2026-01-05,false` {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != `2,"Salário",Renda,5000,income,2026-01-01,true` {
		t.Fatalf("row 2 = %q", lines[2])
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatal("export should not end with a newline")
	}
}

func TestTransactionsCSVQuotesInDescription(t *testing.T) {
	list := []models.Transaction{
		exportTx(7, `presente "surpresa", caro`, "Lazer", "99.90", models.KindExpense, "2026-02-14", false),
	}
	got := TransactionsCSV(list)

	lines := strings.Split(string(got), "\n")
	if want := `7,"presente ""surpresa"", caro",Lazer,99.9,expense,2026-02-14,false`; lines[1] != want {
		t.Fatalf("row = %q, want %q", lines[1], want)
	}

	// Round-trips through a standard CSV reader
	records, err := csv.NewReader(bytes.NewReader(got)).ReadAll()
	if err != nil {
		t.Fatalf("csv parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("want header + 1 record, got %d", len(records))
	}
	if records[1][1] != `presente "surpresa", caro` {
		t.Fatalf("description did not round-trip: %q", records[1][1])
	}
}

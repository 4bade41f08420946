package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRestateInReference(t *testing.T) {
	total := decimal.NewFromInt(1000)

	got := restateInReference(total, 5.0)
	if !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("1000 at rate 5 = %s, want 200", got)
	}

	// Rounds to cents
	got = restateInReference(total, 3.0)
	if !got.Equal(decimal.NewFromFloat(333.33)) {
		t.Fatalf("1000 at rate 3 = %s, want 333.33", got)
	}

	if got := restateInReference(total, 0); !got.IsZero() {
		t.Fatalf("zero rate should yield zero, got %s", got)
	}
}

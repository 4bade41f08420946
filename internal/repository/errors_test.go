package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestClassifyUndefinedTable(t *testing.T) {
	pqErr := &pq.Error{Code: "42P01", Message: `relation "zap.goals" does not exist`}

	err := classify("list goals", pqErr)
	if !errors.Is(err, ErrTableMissing) {
		t.Fatalf("42P01 should classify as ErrTableMissing, got %v", err)
	}
}

func TestClassifyMessageFallback(t *testing.T) {
	plain := errors.New(`pq: relation "zap.investments" does not exist`)

	err := classify("list investments", plain)
	if !errors.Is(err, ErrTableMissing) {
		t.Fatalf("message fallback should classify as ErrTableMissing, got %v", err)
	}
}

func TestClassifyOtherErrors(t *testing.T) {
	cause := errors.New("connection refused")

	err := classify("list cards", cause)
	if errors.Is(err, ErrTableMissing) {
		t.Fatal("unrelated error classified as ErrTableMissing")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause should stay in the chain")
	}
	if want := fmt.Sprintf("failed to list cards: %v", cause); err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestClassifyNil(t *testing.T) {
	if err := classify("noop", nil); err != nil {
		t.Fatalf("nil should stay nil, got %v", err)
	}
}

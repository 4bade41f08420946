package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Sentinel errors surfaced to callers.
var (
	// ErrTableMissing marks failures caused by an unprovisioned feature
	// table. Handlers map it to a feature-unavailable response instead
	// of a generic failure.
	ErrTableMissing = errors.New("relation not provisioned")

	// ErrNotFound marks lookups and mutations that matched no row owned
	// by the caller.
	ErrNotFound = errors.New("record not found")
)

// undefinedTable is the Postgres error code for a missing relation.
const undefinedTable = "42P01"

// classify wraps a driver error, detecting missing relations via the
// structured pq error code first and falling back to message inspection
// for errors that did not come through the driver. The fallback is a
// best-effort heuristic.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return fmt.Errorf("failed to %s: %w", op, ErrTableMissing)
	}
	if strings.Contains(err.Error(), "does not exist") {
		return fmt.Errorf("failed to %s: %w", op, ErrTableMissing)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

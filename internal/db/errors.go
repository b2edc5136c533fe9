package db

import (
	"errors"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
)

// ErrStore is the sentinel for any persistence or query failure.
// Callers check it with errors.Is; store failures are surfaced, never
// retried internally.
var ErrStore = errors.New("sighting store error")

// wrapStoreError roots an error in ErrStore, preserving the database's
// own message when the failure is a SurrealDB query error.
func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var queryErr *surrealdb.QueryError
	if errors.As(err, &queryErr) {
		return fmt.Errorf("%w: %s", ErrStore, queryErr.Message)
	}

	return fmt.Errorf("%w: %v", ErrStore, err)
}

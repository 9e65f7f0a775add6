// Package pgerrors maps driver errors onto the core's error vocabulary.
package pgerrors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"penguinadmin/internal/core/ports"

	"github.com/lib/pq"
)

// SQLSTATE codes after which Postgres has already rolled the transaction back
// or given up waiting for a lock.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeQueryCanceled        = "57014"
)

// Classify wraps err with ports.ErrTransactionAborted when the transaction could
// not proceed. Other errors are returned unchanged, nil stays nil.
func Classify(err error) error {
	if err == nil || errors.Is(err, ports.ErrTransactionAborted) {
		return err
	}
	if IsAborted(err) {
		return fmt.Errorf("%w: %w", ports.ErrTransactionAborted, err)
	}
	return err
}

// IsAborted reports whether err is a serialization failure, deadlock, lock
// timeout, cancelled statement, finished transaction or an expired or
// cancelled context.
func IsAborted(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, sql.ErrTxDone) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable, codeQueryCanceled:
			return true
		}
	}
	return false
}

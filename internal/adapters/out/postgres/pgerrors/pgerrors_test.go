package pgerrors_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"penguinadmin/internal/adapters/out/postgres/pgerrors"
	"penguinadmin/internal/core/ports"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		aborted bool
	}{
		{"serialization failure", &pq.Error{Code: "40001"}, true},
		{"deadlock", fmt.Errorf("update products: %w", &pq.Error{Code: "40P01"}), true},
		{"lock timeout", &pq.Error{Code: "55P03"}, true},
		{"statement canceled", &pq.Error{Code: "57014"}, true},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), true},
		{"transaction done", fmt.Errorf("commit: %w", sql.ErrTxDone), true},
		{"check violation", &pq.Error{Code: "23514"}, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pgerrors.Classify(tc.err)

			require.ErrorIs(t, got, tc.err)
			assert.Equal(t, tc.aborted, errors.Is(got, ports.ErrTransactionAborted))
		})
	}
}

func TestClassify_NilAndIdempotent(t *testing.T) {
	require.NoError(t, pgerrors.Classify(nil))

	once := pgerrors.Classify(&pq.Error{Code: "40001"})
	assert.Equal(t, once, pgerrors.Classify(once))
}

package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetriable},
		{name: "plain error", err: errors.New("boom"), want: NonRetriable},
		{name: "no rows", err: sql.ErrNoRows, want: NonRetriable},
		{name: "connection failure", err: &pq.Error{Code: "08006"}, want: Retriable},
		{name: "pgx connection failure", err: &pgconn.PgError{Code: "08006"}, want: Retriable},
		{name: "pgx serialization failure", err: &pgconn.PgError{Code: "40001"}, want: Retriable},
		{name: "pgx unique violation", err: &pgconn.PgError{Code: ErrIsExistCode}, want: NonRetriable},
		{name: "wrapped pgx retriable", err: fmt.Errorf("query: %w", &pgconn.PgError{Code: "57P03"}), want: Retriable},
		{name: "serialization failure", err: &pq.Error{Code: "40001"}, want: Retriable},
		{name: "deadlock detected", err: &pq.Error{Code: "40P01"}, want: Retriable},
		{name: "cannot connect now", err: &pq.Error{Code: "57P03"}, want: Retriable},
		{name: "unique violation", err: &pq.Error{Code: ErrIsExistCode}, want: NonRetriable},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, want: NonRetriable},
		{name: "undefined table", err: &pq.Error{Code: "42P01"}, want: NonRetriable},
		{name: "wrapped retriable", err: fmt.Errorf("query: %w", &pq.Error{Code: "08000"}), want: Retriable},
		{name: "unknown code", err: &pq.Error{Code: "P0001"}, want: NonRetriable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

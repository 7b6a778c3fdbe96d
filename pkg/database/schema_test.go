package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execRecorder struct {
	PgxIface
	sql []string
	err error
}

func (e *execRecorder) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.sql = append(e.sql, sql)
	return pgconn.CommandTag{}, e.err
}

func TestEnsureSchemaAppliesEmbeddedSQL(t *testing.T) {
	db := &execRecorder{}

	require.NoError(t, EnsureSchema(context.Background(), db))
	require.Len(t, db.sql, 1)
	for _, table := range []string{"outlets", "seating_types", "seat_types", "outlet_tables"} {
		assert.True(t, strings.Contains(db.sql[0], "CREATE TABLE IF NOT EXISTS "+table), table)
	}
}

func TestEnsureSchemaWrapsError(t *testing.T) {
	boom := errors.New("permission denied")

	err := EnsureSchema(context.Background(), &execRecorder{err: boom})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "apply schema")
}

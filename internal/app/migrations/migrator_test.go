package migrations

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingExecer records every statement executed on it, standing in for
// the migration transaction.
type capturingExecer struct {
	sql  []string
	args [][]any
}

func (c *capturingExecer) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	c.sql = append(c.sql, sql)
	c.args = append(c.args, arguments)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestRecordMigrationWritesOnGivenTransaction(t *testing.T) {
	m := &Migrator{}
	tx := &capturingExecer{}

	err := m.recordMigration(context.Background(), tx, "001")

	require.NoError(t, err)
	require.Len(t, tx.sql, 1)
	assert.Contains(t, tx.sql[0], "INSERT INTO schema_migrations")
	require.NotEmpty(t, tx.args[0])
	assert.Equal(t, "001", tx.args[0][0])
}

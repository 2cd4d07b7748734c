package postgresql

import (
	"context"
	"testing"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
}

func TestGetQuerier_ReturnsTransactionFromContext(t *testing.T) {
	db := &database.DB{}
	tx := &fakeTx{}
	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))

	q := GetQuerier(ctx, db)

	got, ok := q.(*fakeTx)
	require.True(t, ok, "expected the context transaction, got %T", q)
	assert.Same(t, tx, got)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)

	_, ok := q.(*pgxpool.Pool)
	assert.True(t, ok, "expected the pool, got %T", q)
}

package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Driver mínimo que só sabe abrir transações, o suficiente para
// exercitar o ciclo commit/rollback sem um banco de verdade
type stubDriver struct {
	committed  *bool
	rolledBack *bool
}

func (d *stubDriver) Open(name string) (driver.Conn, error) {
	return &stubConn{committed: d.committed, rolledBack: d.rolledBack}, nil
}

type stubConn struct {
	committed  *bool
	rolledBack *bool
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("não suportado")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{committed: c.committed, rolledBack: c.rolledBack}, nil
}

type stubTx struct {
	committed  *bool
	rolledBack *bool
}

func (t *stubTx) Commit() error {
	*t.committed = true
	return nil
}

func (t *stubTx) Rollback() error {
	*t.rolledBack = true
	return nil
}

func newStubConnection(t *testing.T, name string) (*Connection, *bool, *bool) {
	t.Helper()

	committed := false
	rolledBack := false
	sql.Register(name, &stubDriver{committed: &committed, rolledBack: &rolledBack})

	db, err := sql.Open(name, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Connection{db: db}, &committed, &rolledBack
}

func TestRunInTransactionConfirmaNoSucesso(t *testing.T) {
	conn, committed, rolledBack := newStubConnection(t, "stub-commit")

	called := false
	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.True(t, *committed)
	assert.False(t, *rolledBack)
}

func TestRunInTransactionDesfazNoErro(t *testing.T) {
	conn, committed, rolledBack := newStubConnection(t, "stub-rollback")

	falha := errors.New("falha na gravação")
	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return falha
	})

	require.Error(t, err)
	assert.Equal(t, falha, err)
	assert.False(t, *committed)
	assert.True(t, *rolledBack)
}

func TestRunInTransactionDesfazNoPanico(t *testing.T) {
	conn, committed, rolledBack := newStubConnection(t, "stub-panic")

	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			panic("estado inesperado")
		})
	})

	assert.False(t, *committed)
	assert.True(t, *rolledBack)
}

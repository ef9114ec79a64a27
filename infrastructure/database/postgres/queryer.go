package postgres

import (
	"context"
	"database/sql"
)

// Queryer é a superfície mínima de consulta que os repositórios recebem.
// Tanto a Connection quanto uma *sql.Tx embrulhada satisfazem a interface,
// então o mesmo repositório funciona dentro e fora de transação.
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}

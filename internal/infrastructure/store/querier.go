package store

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// Dialect determina el formato de los placeholders.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// Querier lo implementan *sql.DB y *sql.Tx, así los repos sirven dentro y fuera de una transacción.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn Querier + dialecto. Las consultas se escriben con "?" y se reescriben a $n para PostgreSQL.
type Conn struct {
	q       Querier
	dialect Dialect
}

func (c Conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.dialect.rebind(query), args...)
}

func (c Conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.dialect.rebind(query), args...)
}

func (c Conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.dialect.rebind(query), args...)
}

// rebind reemplaza cada "?" por $1, $2... en PostgreSQL. Las consultas no usan "?" dentro de literales.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// placeholders devuelve "?, ?, ?" para cláusulas IN.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

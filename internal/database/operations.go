// Package database provides database access for the BizCards API: a
// driver-aware connection pool, transaction management and placeholder
// rebinding shared by PostgreSQL and MySQL statements.
package database

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
)

// Querier is the subset of *sql.DB and *sql.Tx used by repositories, so the
// same statement code runs inside or outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Rebind converts a query written with $n placeholders into the bind syntax
// of the pool's driver. PostgreSQL drivers receive the query unchanged.
func (p *Pool) Rebind(query string) string {
	return Rebind(p.Driver, query)
}

// Rebind converts $n placeholders to ? for MySQL.
// Placeholders must appear in ascending order without reuse, which holds for
// every statement in this module.
func Rebind(driver, query string) string {
	if driver != constants.DriverMySQL || !strings.Contains(query, "$") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))

	for i := 0; i < len(query); i++ {
		if query[i] != '$' || i+1 >= len(query) || !isDigit(query[i+1]) {
			b.WriteByte(query[i])
			continue
		}
		b.WriteByte('?')
		for i+1 < len(query) && isDigit(query[i+1]) {
			i++
		}
	}

	return b.String()
}

// Placeholders returns "$from, $from+1, ..." for count parameters.
func Placeholders(from, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = "$" + strconv.Itoa(from+i)
	}
	return strings.Join(parts, ", ")
}

// RowsAffected returns the affected row count of an exec result, treating a
// driver that cannot report it as zero rows.
func RowsAffected(result sql.Result) int64 {
	if result == nil {
		return 0
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

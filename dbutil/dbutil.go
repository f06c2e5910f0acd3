// Package dbutil builds and runs common SQL statements against a
// caller-supplied connection.
//
// The package never opens or closes connections: every function takes an
// Executor, which both *sql.DB and *sql.Tx satisfy. Failures are logged
// with context and returned to the caller.
//
// Table and column names are interpolated into statements as-is, so callers
// must not pass untrusted input.
package dbutil

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/tsawler/textkit/internal/logging"
)

// Executor is the subset of *sql.DB and *sql.Tx used by this package.
type Executor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// EncodeFieldPair renders one field of a CREATE TABLE descriptor. The field
// gains a PRIMARY KEY annotation when its name equals primaryKey, and an
// AUTO_INCREMENT annotation when its name equals autoInc.
func EncodeFieldPair(name, typeDesc, primaryKey, autoInc string) string {
	clause := name + " " + typeDesc
	if name == primaryKey {
		clause += " PRIMARY KEY"
	}
	if autoInc != "" && name == autoInc {
		clause += " AUTO_INCREMENT"
	}
	return clause
}

// BuildFieldDescriptor returns the parenthesized field list of a CREATE
// TABLE statement. Each field is a whitespace-separated "name type" string,
// e.g. "id INT" or "name VARCHAR(20) NOT NULL". Exactly one field must
// match primaryKey; autoInc may be empty or name at most one field.
func BuildFieldDescriptor(fields []string, primaryKey, autoInc string) (string, error) {
	clauses := make([]string, 0, len(fields))
	foundPK := false
	for _, field := range fields {
		parts := strings.Fields(field)
		if len(parts) < 2 {
			return "", fmt.Errorf("field %q: want \"name type\"", field)
		}
		name, typeDesc := parts[0], strings.Join(parts[1:], " ")
		if name == primaryKey {
			foundPK = true
		}
		clauses = append(clauses, EncodeFieldPair(name, typeDesc, primaryKey, autoInc))
	}
	if !foundPK {
		return "", fmt.Errorf("primary key %q matches no field", primaryKey)
	}
	return "(" + strings.Join(clauses, ", ") + ")", nil
}

// BuildCreateCommand returns the leading part of a CREATE TABLE statement.
func BuildCreateCommand(table string, ifNotExists bool) string {
	command := "CREATE TABLE "
	if ifNotExists {
		command += "IF NOT EXISTS "
	}
	return command + table
}

// RunQuery executes a row-returning SQL statement. The caller owns the
// returned rows and must close them.
func RunQuery(x Executor, query string, args ...any) (*sql.Rows, error) {
	rows, err := x.Query(query, args...)
	if err != nil {
		logging.WithComponent("dbutil").Error("query failed", "query", query, "error", err)
		return nil, fmt.Errorf("run query: %w", err)
	}
	return rows, nil
}

// Exec executes a statement that returns no rows.
func Exec(x Executor, query string, args ...any) error {
	if _, err := x.Exec(query, args...); err != nil {
		logging.WithComponent("dbutil").Error("exec failed", "query", query, "error", err)
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}

// CreateTable creates a table from the given field specification. See
// BuildFieldDescriptor for the field format.
func CreateTable(x Executor, name string, fields []string, primaryKey, autoInc string, ifNotExists bool) error {
	desc, err := BuildFieldDescriptor(fields, primaryKey, autoInc)
	if err != nil {
		return fmt.Errorf("create table %s: %w", name, err)
	}
	query := BuildCreateCommand(name, ifNotExists) + " " + desc
	if _, err := x.Exec(query); err != nil {
		logging.WithComponent("dbutil").Error("table creation failed",
			"table", name, "error", err)
		return fmt.Errorf("create table %s: %w", name, err)
	}
	return nil
}

// DropTable removes a table.
func DropTable(x Executor, name string) error {
	if _, err := x.Exec("DROP TABLE " + name); err != nil {
		logging.WithComponent("dbutil").Error("table drop failed",
			"table", name, "error", err)
		return fmt.Errorf("drop table %s: %w", name, err)
	}
	return nil
}

// Column reads a single column of a table in row order. A limit of zero or
// less reads every row. Driver []byte values are returned as strings.
func Column(x Executor, table, column string, limit int) ([]any, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", column, table)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := x.Query(query)
	if err != nil {
		logging.WithComponent("dbutil").Error("column read failed",
			"table", table, "column", column, "error", err)
		return nil, fmt.Errorf("read column %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var values []any
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("read column %s.%s: %w", table, column, err)
		}
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read column %s.%s: %w", table, column, err)
	}
	return values, nil
}

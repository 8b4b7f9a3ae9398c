package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// TableName is the SQLite table holding exported rows.
const TableName = "titles"

// sqliteSink inserts rows inside one transaction into a fresh database file.
// Every column is TEXT so placeholders such as "-1" and "" round-trip as
// written.
type sqliteSink struct {
	db   *sql.DB
	tx   *sql.Tx
	stmt *sql.Stmt
}

func openSQLiteSink(ctx context.Context, path string, header []string) (*sqliteSink, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove stale database: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=DELETE",
		"PRAGMA synchronous=OFF",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	columns := sqlColumns(header)
	defs := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col) + " TEXT"
		marks[i] = "?"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(TableName), strings.Join(defs, ", "))
	if _, err := db.ExecContext(ctx, create); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(TableName), strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		_ = tx.Rollback()
		_ = db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	return &sqliteSink{db: db, tx: tx, stmt: stmt}, nil
}

func (s *sqliteSink) writeRow(fields []string) error {
	args := make([]any, len(fields))
	for i, f := range fields {
		args[i] = f
	}
	if _, err := s.stmt.Exec(args...); err != nil {
		return fmt.Errorf("insert row: %w", err)
	}
	return nil
}

func (s *sqliteSink) commit() error {
	_ = s.stmt.Close()
	if err := s.tx.Commit(); err != nil {
		_ = s.db.Close()
		return fmt.Errorf("commit: %w", err)
	}
	return s.db.Close()
}

func (s *sqliteSink) abort() {
	_ = s.stmt.Close()
	_ = s.tx.Rollback()
	_ = s.db.Close()
}

// sqlColumns makes header names unique ignoring case, since a genre may
// share its name with a key column and SQLite identifiers fold case.
func sqlColumns(header []string) []string {
	used := make(map[string]struct{}, len(header))
	out := make([]string, len(header))
	for i, name := range header {
		candidate := name
		for n := 2; ; n++ {
			if _, taken := used[strings.ToLower(candidate)]; !taken {
				break
			}
			candidate = name + "_" + strconv.Itoa(n)
		}
		used[strings.ToLower(candidate)] = struct{}{}
		out[i] = candidate
	}
	return out
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

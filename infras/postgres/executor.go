package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"hotel/shared/constant"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Row is one result row with every value rendered as text; SQL NULL stays nil.
type Row []*string

// Get returns column idx as a string, "null" for SQL NULL.
func (r Row) Get(idx int) string {
	if idx < 0 || idx >= len(r) || r[idx] == nil {
		return constant.Null
	}

	return *r[idx]
}

// Execer is satisfied by both *sqlx.DB and *sqlx.Tx.
type Execer interface {
	sqlx.ExtContext
}

// Exec runs a statement that returns no rows and reports the affected row count.
//
// Exec, QueryRows, QueryCount and InsertReturning form the untyped half of the
// data access API, for statements no Repository[T] models. The menu operations
// go through the typed repositories and QueryPrint.
func (c *Connection) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute command: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

// QueryRows materializes every row of query, preserving engine order. Part of the
// untyped data access API, see Exec.
func (c *Connection) QueryRows(ctx context.Context, query string, args ...any) ([]Row, error) {
	_, rows, err := c.query(ctx, query, args...)

	return rows, err
}

// QueryPrint writes a tab-separated header followed by every row to w and
// returns the row count. The header is written only when there is at least one row.
func (c *Connection) QueryPrint(ctx context.Context, w io.Writer, query string, args ...any) (int, error) {
	columns, rows, err := c.query(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, nil
	}

	if _, err := fmt.Fprintln(w, strings.Join(columns, constant.Tab)); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		values := make([]string, len(row))
		for idx := range row {
			values[idx] = row.Get(idx)
		}

		if _, err := fmt.Fprintln(w, strings.Join(values, constant.Tab)); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}

	return len(rows), nil
}

// QueryCount drains query and returns the number of rows. Part of the untyped
// data access API, see Exec.
func (c *Connection) QueryCount(ctx context.Context, query string, args ...any) (int, error) {
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}

	return count, nil
}

// InsertReturning runs an INSERT ... RETURNING <key> on exec, a *sqlx.DB or the
// *sqlx.Tx handed to a WithTx callback, and scans the generated key.
func InsertReturning(ctx context.Context, exec Execer, query string, args ...any) (int64, error) {
	var id int64

	if err := exec.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert and return generated key: %w", err)
	}

	return id, nil
}

// InsertReturning runs on the connection outside any transaction. Part of the
// untyped data access API, see Exec.
func (c *Connection) InsertReturning(ctx context.Context, query string, args ...any) (int64, error) {
	return InsertReturning(ctx, c.DB, query, args...)
}

// WithTx runs fn inside a single transaction, committing when fn returns nil.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (c *Connection) query(ctx context.Context, query string, args ...any) ([]string, []Row, error) {
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := []Row{}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))

		for idx := range values {
			pointers[idx] = &values[idx]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for idx, value := range values {
			row[idx] = Text(value)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return columns, result, nil
}

// Text renders a driver value as text. Dates without a clock component are
// rendered as calendar dates.
func Text(value any) *string {
	var text string

	switch val := value.(type) {
	case nil:
		return nil
	case sql.RawBytes:
		text = string(val)
	case []byte:
		text = string(val)
	case string:
		text = val
	case int64:
		text = strconv.FormatInt(val, 10)
	case float64:
		text = strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		text = strconv.FormatBool(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			text = val.Format(constant.DateFormat)
		} else {
			text = val.Format(constant.TimestampFormat)
		}
	default:
		text = fmt.Sprint(val)
	}

	return &text
}

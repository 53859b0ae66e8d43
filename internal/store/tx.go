package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is what repositories need from a handle. *sql.DB and *sql.Tx both
// satisfy it, so one repository type serves pooled and transactional calls.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc is the unit of work run by WithTx.
type TxFunc func(ctx context.Context, tx DBTX) error

// WithTx runs fn inside one transaction on db. A nil return commits; an error
// or a panic rolls back, and the panic is re-raised afterwards. A failed
// rollback is joined onto fn's error.
//
//	err := store.WithTx(ctx, db, nil, func(ctx context.Context, tx store.DBTX) error {
//		if err := activity.NewSQLiteRepository(tx).DeleteByPart(ctx, id); err != nil {
//			return err
//		}
//		return parts.NewSQLiteRepository(tx).Delete(ctx, id)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		rbErr := tx.Rollback()
		if p := recover(); p != nil {
			panic(p)
		}
		if rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

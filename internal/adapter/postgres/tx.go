package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodshare/internal/core/domain"
)

// querier is the subset of pgxpool.Pool and pgx.Tx the repositories use.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type txKey struct{}

// db returns the transaction carried by ctx, or the pool.
func db(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// Transactor implements port.Transactor on a pgx pool.
type Transactor struct {
	pool *pgxpool.Pool
}

// NewTransactor returns a new transaction manager.
func NewTransactor(pool *pgxpool.Pool) *Transactor {
	return &Transactor{pool: pool}
}

const (
	// maxTxAttempts bounds how often a transaction that lost a
	// serialization conflict is replayed.
	maxTxAttempts = 3
	retryBackoff  = 20 * time.Millisecond

	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// WithinTx runs fn in a serializable transaction. It commits when fn
// returns nil and rolls back otherwise. A transaction aborted by a
// serialization failure or deadlock is replayed from the start, so fn must
// only have effects through ctx. Calls nested in fn join the outer
// transaction.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return retrySerializable(ctx, maxTxAttempts, retryBackoff, func() error {
		return t.attempt(ctx, fn)
	})
}

func (t *Transactor) attempt(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return storeErr("begin transaction", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = storeErr("commit transaction", cerr)
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, tx))
}

// retrySerializable calls attempt up to attempts times while it fails with
// a retryable conflict, waiting backoff times the attempt number between
// calls.
func retrySerializable(ctx context.Context, attempts int, backoff time.Duration, attempt func() error) error {
	var err error
	for i := 1; ; i++ {
		err = attempt()
		if err == nil || i >= attempts || !retryable(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(i) * backoff):
		}
	}
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
}

// storeErr maps driver errors onto the domain error kinds.
func storeErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, op)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreFailure, op, err)
}

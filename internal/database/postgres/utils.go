package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Armory_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}

// withTx runs fn inside a transaction and commits when it returns nil
func withTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// sendBatch queues one statement per row in chunks of UpsertBatchSize and
// checks every result. queue must call batch.Queue exactly once.
func sendBatch(ctx context.Context, tx pgx.Tx, n int, queue func(b *pgx.Batch, i int)) error {
	for start := 0; start < n; start += UpsertBatchSize {
		end := min(start+UpsertBatchSize, n)

		batch := &pgx.Batch{}
		for i := start; i < end; i++ {
			queue(batch, i)
		}

		results := tx.SendBatch(ctx, batch)
		for i := start; i < end; i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("%s %d: %w", ErrMsgBatchStatementFailed, i, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgBatchCloseFailed, err)
		}
	}
	return nil
}

// marshalJSONB encodes v for a JSONB column, substituting empty when v
// encodes to null
func marshalJSONB(v any, empty string) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalJSON, err)
	}
	if string(data) == "null" {
		return []byte(empty), nil
	}
	return data, nil
}

// unmarshalJSONB decodes a JSONB column, leaving dst untouched when the column is empty
func unmarshalJSONB(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalJSON, err)
	}
	return nil
}

// paginate appends LIMIT/OFFSET placeholders to a query being built
func paginate(args []any, limit, offset int) (string, []any) {
	clause := fmt.Sprintf(" LIMIT $%d", len(args)+1)
	args = append(args, limit)
	if offset > 0 {
		clause += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, offset)
	}
	return clause, args
}

package db

import (
	"context"
	"fmt"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	GetEmojiSettings(ctx context.Context, userID int64) ([]bbcode.EmojiSetting, error)
	ReplaceEmojiSettingsTx(ctx context.Context, arg ReplaceEmojiSettingsTxParams) ([]bbcode.EmojiSetting, error)
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Shutdown closes the connection pool.
func (store *SQLStore) Shutdown() {
	store.connPool.Close()
}

// execTx runs fn within a database transaction.
func (store *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.connPool.Begin(ctx)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

package mongodb

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/xls-import-go/internal/pkg/database"
)

type transactor struct {
	db      *database.MongoDB
	enabled bool
}

// NewTransactor returns a transactor that wraps work in a multi-document transaction
// when enabled. Transactions need a replica set or sharded cluster.
func NewTransactor(db *database.MongoDB, enabled bool) database.Transactor {
	return &transactor{db: db, enabled: enabled}
}

func (t *transactor) Transactional() bool {
	return t.enabled
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled {
		return fn(ctx)
	}

	session, err := t.db.Client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		return nil, fn(ctx)
	})
	return err
}

package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/carflow/internal/client/models"
	"github.com/dmitrijs2005/carflow/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carflow/internal/dbx"
)

// SQLiteRepository is the durable backend. Both entries of a snapshot are
// written in one transaction.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) LoadUsers(ctx context.Context) ([]models.UserRecord, error) {
	return NewKVRepository(metadata.NewSQLiteRepository(r.db)).LoadUsers(ctx)
}

func (r *SQLiteRepository) LoadSession(ctx context.Context) (*models.PublicUser, error) {
	return NewKVRepository(metadata.NewSQLiteRepository(r.db)).LoadSession(ctx)
}

func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, records []models.UserRecord, session *models.PublicUser) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return writeSnapshot(ctx, metadata.NewSQLiteRepository(tx), records, session)
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

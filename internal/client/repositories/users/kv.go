package users

import (
	"context"

	"github.com/dmitrijs2005/carflow/internal/client/models"
	"github.com/dmitrijs2005/carflow/internal/client/repositories/metadata"
)

// KVRepository stores the snapshot in any metadata.Repository. Paired with
// metadata.MemoryRepository it is the in-memory backend used by tests. The
// two entries are written one after the other, without a transaction.
type KVRepository struct {
	kv metadata.Repository
}

func NewKVRepository(kv metadata.Repository) *KVRepository {
	return &KVRepository{kv: kv}
}

func (r *KVRepository) LoadUsers(ctx context.Context) ([]models.UserRecord, error) {
	raw, err := r.kv.Get(ctx, UsersKey)
	if err != nil {
		return nil, err
	}
	return decodeUsers(raw)
}

func (r *KVRepository) LoadSession(ctx context.Context) (*models.PublicUser, error) {
	raw, err := r.kv.Get(ctx, SessionKey)
	if err != nil {
		return nil, err
	}
	return decodeSession(raw)
}

func (r *KVRepository) SaveSnapshot(ctx context.Context, records []models.UserRecord, session *models.PublicUser) error {
	return writeSnapshot(ctx, r.kv, records, session)
}

package users

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/carflow/internal/client/models"
	"github.com/dmitrijs2005/carflow/internal/client/repositories/metadata"
)

func decodeUsers(raw []byte) ([]models.UserRecord, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	if raw[0] != '[' {
		return nil, fmt.Errorf("%w: %s is not an array", ErrMalformedSnapshot, UsersKey)
	}

	records := make([]models.UserRecord, 0)
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return records, nil
}

func decodeSession(raw []byte) (*models.PublicUser, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	var user *models.PublicUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return user, nil
}

// writeSnapshot puts both entries into kv.
func writeSnapshot(ctx context.Context, kv metadata.Repository, records []models.UserRecord, session *models.PublicUser) error {
	if records == nil {
		records = []models.UserRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := kv.Set(ctx, UsersKey, data); err != nil {
		return err
	}

	if session == nil {
		return kv.Delete(ctx, SessionKey)
	}
	data, err = json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return kv.Set(ctx, SessionKey, data)
}

// Package users persists the account store: the user records and the current
// session, each as one JSON value in the local key/value store.
package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/carflow/internal/client/models"
)

// Keys of the two independent entries in local storage.
const (
	UsersKey   = "carflow_users"
	SessionKey = "carflow_current_user"
)

// ErrMalformedSnapshot is returned when a stored value does not decode into
// the expected shape.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Repository loads and saves the account store state.
//
// LoadUsers returns (nil, nil) when nothing was saved yet and a non-nil
// slice (possibly empty) otherwise. LoadSession returns (nil, nil) when no
// one is signed in. SaveSnapshot writes both entries; a nil session removes
// the session entry.
type Repository interface {
	LoadUsers(ctx context.Context) ([]models.UserRecord, error)
	LoadSession(ctx context.Context) (*models.PublicUser, error)
	SaveSnapshot(ctx context.Context, records []models.UserRecord, session *models.PublicUser) error
}

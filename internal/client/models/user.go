// Package models defines client-side data models of the CarFlow account store.
package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/carflow/internal/common"
)

// AccountKind tells clients and rental agencies apart. It is fixed at
// creation time.
type AccountKind string

const (
	KindClient AccountKind = "client"
	KindAgency AccountKind = "agency"
)

// ParseAccountKind accepts "client" or "agency" in any case.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindClient:
		return KindClient, nil
	case KindAgency:
		return KindAgency, nil
	}
	return "", common.ErrIncorrectAccountKind
}

// UserRecord is the persisted account, credential included.
type UserRecord struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Address   string      `json:"address,omitempty"`
	Password  string      `json:"password"`
	Type      AccountKind `json:"type"`
	CreatedAt time.Time   `json:"createdAt"`
}

// PublicUser is a UserRecord without its password. This is what the
// session holds and what lookups return.
type PublicUser struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Address   string      `json:"address,omitempty"`
	Type      AccountKind `json:"type"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Public strips the password.
func (u UserRecord) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Type:      u.Type,
		CreatedAt: u.CreatedAt,
	}
}

// Session is the signed-in user, if any. The zero value is anonymous.
type Session struct {
	User *PublicUser
	Kind AccountKind
}

// Authenticated reports whether someone is signed in.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// UserUpdate carries a partial profile change. Nil fields are left as is.
// Type is accepted for symmetry with the stored shape but is never applied.
type UserUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Type    *AccountKind
}

// ApplyToRecord merges the update into r. The account kind is kept.
func (u UserUpdate) ApplyToRecord(r *UserRecord) {
	kind := r.Type
	applyString(&r.Name, u.Name)
	applyString(&r.Email, u.Email)
	applyString(&r.Phone, u.Phone)
	applyString(&r.Address, u.Address)
	r.Type = kind
}

// ApplyToPublic merges the update into p. The account kind is kept.
func (u UserUpdate) ApplyToPublic(p *PublicUser) {
	kind := p.Type
	applyString(&p.Name, u.Name)
	applyString(&p.Email, u.Email)
	applyString(&p.Phone, u.Phone)
	applyString(&p.Address, u.Address)
	p.Type = kind
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// SignupData is the signup form bundle.
type SignupData struct {
	Name  string
	Email string
	Phone string
}

// ProfileUpdate is the profile form bundle. ID identifies the edited
// profile; the store always edits the signed-in user.
type ProfileUpdate struct {
	ID      string
	Name    string
	Email   string
	Phone   *string
	Address *string
}

// UserUpdate reshapes the form into a partial update.
func (p ProfileUpdate) UserUpdate() UserUpdate {
	name, email := p.Name, p.Email
	return UserUpdate{
		Name:    &name,
		Email:   &email,
		Phone:   p.Phone,
		Address: p.Address,
	}
}

// Package services contains application services for the CarFlow client.
// This file defines the account store: the user records, the signed-in
// session and every operation that reads or changes them.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/carflow/internal/client/agencies"
	"github.com/dmitrijs2005/carflow/internal/client/models"
	"github.com/dmitrijs2005/carflow/internal/client/notify"
	"github.com/dmitrijs2005/carflow/internal/client/repositories/users"
	"github.com/dmitrijs2005/carflow/internal/common"
	"github.com/dmitrijs2005/carflow/internal/logging"
	"github.com/google/uuid"
)

// DefaultLatency is the artificial delay of the remote-looking operations.
const DefaultLatency = 500 * time.Millisecond

// AccountService defines the account operations used by the client UI.
//
// Contract:
//   - Login / Register / Signup: start a session (Register signs the new
//     account in).
//   - Logout: end the session; records are never deleted.
//   - GetUserByID: look up any account without its password.
//   - ResetPassword: pretend to send a reset link; no password changes.
//   - UpdateUser / UpdateProfile / UpdatePassword: edit the signed-in account.
//
// Failures are reported both as a notification and as an error matching one
// of the sentinels in package common.
type AccountService interface {
	Login(ctx context.Context, email, password string, kind models.AccountKind) error
	Register(ctx context.Context, email, password, name string, kind models.AccountKind, phone, address string) error
	Signup(ctx context.Context, data models.SignupData, password string, kind models.AccountKind) error
	Logout(ctx context.Context)
	GetUserByID(ctx context.Context, id string) (*models.PublicUser, error)
	ResetPassword(ctx context.Context, email string) error
	UpdateUser(ctx context.Context, upd models.UserUpdate) error
	UpdateProfile(ctx context.Context, p models.ProfileUpdate) error
	UpdatePassword(ctx context.Context, currentPassword, newPassword string) error
	Session() models.Session
	CurrentUser() *models.PublicUser
}

// Option customises an account service.
type Option func(*accountService)

// WithNotifier sets where user-visible messages go. Nil keeps the default
// (messages are dropped).
func WithNotifier(n notify.Notifier) Option {
	return func(s *accountService) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) Option {
	return func(s *accountService) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLatency overrides DefaultLatency. Zero disables the delay.
func WithLatency(d time.Duration) Option {
	return func(s *accountService) { s.latency = d }
}

// WithClock replaces time.Now for ids and creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *accountService) {
		if now != nil {
			s.now = now
		}
	}
}

// accountService is the concrete AccountService. Operations run one at a
// time; each mutation is followed by a save of records and session.
type accountService struct {
	mu        sync.Mutex
	repo      users.Repository
	directory agencies.Directory
	notifier  notify.Notifier
	log       logging.Logger
	latency   time.Duration
	now       func() time.Time

	// records is nil only when the record set is unusable.
	records []models.UserRecord
	session models.Session
}

// NewAccountService loads the stored accounts, reconciles them with the agency
// directory and restores the last session. Load problems are logged and
// replaced by defaults; only missing dependencies make it fail.
func NewAccountService(ctx context.Context, repo users.Repository, directory agencies.Directory, opts ...Option) (AccountService, error) {
	if repo == nil {
		return nil, errors.New("account service: repository is required")
	}
	if directory == nil {
		return nil, errors.New("account service: agency directory is required")
	}

	s := &accountService{
		repo:      repo,
		directory: directory,
		notifier:  notify.Nop{},
		log:       logging.Discard(),
		latency:   DefaultLatency,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "accounts")

	s.load(ctx)
	return s, nil
}

func (s *accountService) load(ctx context.Context) {
	list := s.directory.Agencies()

	records, err := s.repo.LoadUsers(ctx)
	switch {
	case err != nil:
		s.log.Error(ctx, "stored users are unusable, falling back to seed", "error", err)
		records = seedRecords(list)
	case records == nil:
		records = seedRecords(list)
	default:
		var healed []string
		records, healed = healAgencies(records, list)
		if len(healed) > 0 {
			s.log.Info(ctx, "added missing agency accounts", "emails", healed)
		}
	}
	s.records = records
	s.log.Debug(ctx, "accounts loaded", "total", len(records), "agencies", countKind(records, models.KindAgency))

	user, err := s.repo.LoadSession(ctx)
	if err != nil {
		s.log.Error(ctx, "stored session is unusable, starting signed out", "error", err)
		user = nil
	}
	if user != nil {
		s.session = models.Session{User: user, Kind: user.Type}
	}

	s.persist(ctx)
}

// persist saves records and session. A failed save is logged only; the
// in-memory state stays authoritative.
func (s *accountService) persist(ctx context.Context) {
	if err := s.repo.SaveSnapshot(ctx, s.records, s.session.User); err != nil {
		s.log.Error(ctx, "failed to save accounts", "error", err)
	}
}

func (s *accountService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.latency)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *accountService) reject(ctx context.Context, err error, title, description string) error {
	s.log.Info(ctx, "operation rejected", "reason", err)
	s.notifier.Notify(ctx, notify.Failure(title, description))
	return err
}

func (s *accountService) corrupted(ctx context.Context, op string) error {
	s.log.Error(ctx, "user records are corrupted", "op", op)
	s.notifier.Notify(ctx, notify.Failure("Data error", "Something went wrong. Please try again."))
	return common.ErrCorruptedData
}

func (s *accountService) internalFailure(ctx context.Context, action string, cause error) error {
	s.log.Error(ctx, "unexpected failure", "action", action, "error", cause)
	s.notifier.Notify(ctx, notify.Failure("Error", "Something went wrong while "+action))
	return fmt.Errorf("%w: %s: %w", common.ErrorInternal, action, cause)
}

// recoverInternal turns a panic inside an operation into ErrorInternal.
func (s *accountService) recoverInternal(ctx context.Context, action string, err *error) {
	if p := recover(); p != nil {
		*err = s.internalFailure(ctx, action, fmt.Errorf("panic: %v", p))
	}
}

func passwordsMatch(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

func (s *accountService) emailExists(email string) bool {
	return slices.ContainsFunc(s.records, func(r models.UserRecord) bool { return r.Email == email })
}

func (s *accountService) newUserID(kind models.AccountKind) string {
	prefix := "u"
	if kind != "" {
		prefix = string(kind)[:1]
	}

	taken := make(map[string]bool, len(s.records))
	for _, r := range s.records {
		taken[r.ID] = true
	}
	return freeID(prefix, s.now().UnixMilli(), taken)
}

// Login signs in the first account whose email matches case-insensitively
// and whose password and kind match exactly.
func (s *accountService) Login(ctx context.Context, email, password string, kind models.AccountKind) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.recoverInternal(ctx, "signing in", &err)

	if err := s.simulateLatency(ctx); err != nil {
		return s.internalFailure(ctx, "signing in", err)
	}

	if s.records == nil {
		s.records = seedRecords(s.directory.Agencies())
		s.persist(ctx)
		return s.corrupted(ctx, "login")
	}

	for _, r := range s.records {
		if strings.EqualFold(r.Email, email) && passwordsMatch(r.Password, password) && r.Type == kind {
			u := r.Public()
			s.session = models.Session{User: &u, Kind: kind}
			s.persist(ctx)

			s.log.Info(ctx, "signed in", "user_id", u.ID, "kind", kind)
			s.notifier.Notify(ctx, notify.Info("Signed in", "Welcome, "+r.Name+"!"))
			return nil
		}
	}

	return s.reject(ctx, common.ErrInvalidCredentials, "Login failed", "Invalid email or password")
}

// Register creates an account and signs it in. The duplicate check compares
// emails exactly. Empty phone or address are stored as absent.
func (s *accountService) Register(ctx context.Context, email, password, name string, kind models.AccountKind, phone, address string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.recoverInternal(ctx, "registering", &err)

	if s.records == nil {
		return s.corrupted(ctx, "register")
	}
	if s.emailExists(email) {
		return s.reject(ctx, common.ErrEmailInUse, "Registration failed", "This email is already in use")
	}

	if err := s.simulateLatency(ctx); err != nil {
		return s.internalFailure(ctx, "registering", err)
	}

	record := models.UserRecord{
		ID:        s.newUserID(kind),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Password:  password,
		Type:      kind,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	s.records = append(s.records, record)

	u := record.Public()
	s.session = models.Session{User: &u, Kind: kind}
	s.persist(ctx)

	s.log.Info(ctx, "account registered", "user_id", record.ID, "kind", kind)
	s.notifier.Notify(ctx, notify.Info("Registration complete", "Welcome, "+name+"!"))
	return nil
}

// Signup is Register for the signup form.
func (s *accountService) Signup(ctx context.Context, data models.SignupData, password string, kind models.AccountKind) error {
	return s.Register(ctx, data.Email, password, data.Name, kind, data.Phone, "")
}

// Logout ends the session. A panic is logged and swallowed.
func (s *accountService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if p := recover(); p != nil {
			s.log.Error(ctx, "unexpected failure", "action", "signing out", "error", fmt.Errorf("panic: %v", p))
		}
	}()

	s.session = models.Session{}
	s.persist(ctx)

	s.notifier.Notify(ctx, notify.Info("Signed out", "You have been signed out"))
}

// GetUserByID returns the account with the given id, without its password.
func (s *accountService) GetUserByID(ctx context.Context, id string) (*models.PublicUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.records == nil {
		s.log.Error(ctx, "user records are corrupted", "op", "get user")
		return nil, common.ErrorNotFound
	}

	i := slices.IndexFunc(s.records, func(r models.UserRecord) bool { return r.ID == id })
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	u := s.records[i].Public()
	return &u, nil
}

// ResetPassword confirms that an account uses email and reports a reset link
// as sent. No credential is changed.
func (s *accountService) ResetPassword(ctx context.Context, email string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.recoverInternal(ctx, "sending the reset link", &err)

	if err := s.simulateLatency(ctx); err != nil {
		return s.internalFailure(ctx, "sending the reset link", err)
	}

	if s.records == nil {
		return s.corrupted(ctx, "reset password")
	}
	if !s.emailExists(email) {
		return s.reject(ctx, common.ErrorNotFound, "Email not found", "No account is associated with this email")
	}

	s.log.Info(ctx, "password reset link issued", "request_id", uuid.NewString(), "email", email)
	s.notifier.Notify(ctx, notify.Info("Link sent", "A reset link has been sent to your email address"))
	return nil
}

// UpdateUser merges upd into the signed-in account and the session. The
// account kind never changes.
func (s *accountService) UpdateUser(ctx context.Context, upd models.UserUpdate) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.recoverInternal(ctx, "updating the profile", &err)

	if s.session.User == nil {
		return s.reject(ctx, common.ErrorUnauthorized, "Error", "You must be signed in to update your profile")
	}

	if err := s.simulateLatency(ctx); err != nil {
		return s.internalFailure(ctx, "updating the profile", err)
	}

	if s.records == nil {
		return s.corrupted(ctx, "update user")
	}

	id := s.session.User.ID
	for i := range s.records {
		if s.records[i].ID == id {
			upd.ApplyToRecord(&s.records[i])
		}
	}

	u := *s.session.User
	upd.ApplyToPublic(&u)
	s.session.User = &u
	s.persist(ctx)

	s.notifier.Notify(ctx, notify.Info("Profile updated", "Your changes have been saved"))
	return nil
}

// UpdateProfile is UpdateUser for the profile form.
func (s *accountService) UpdateProfile(ctx context.Context, p models.ProfileUpdate) error {
	return s.UpdateUser(ctx, p.UserUpdate())
}

// UpdatePassword replaces the password of the signed-in account once the
// current one is confirmed.
func (s *accountService) UpdatePassword(ctx context.Context, currentPassword, newPassword string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.recoverInternal(ctx, "updating the password", &err)

	if s.session.User == nil {
		return s.reject(ctx, common.ErrorUnauthorized, "Error", "You must be signed in to change your password")
	}

	if err := s.simulateLatency(ctx); err != nil {
		return s.internalFailure(ctx, "updating the password", err)
	}

	if s.records == nil {
		return s.corrupted(ctx, "update password")
	}

	id := s.session.User.ID
	i := slices.IndexFunc(s.records, func(r models.UserRecord) bool { return r.ID == id })
	if i < 0 {
		return s.reject(ctx, common.ErrorNotFound, "Error", "User not found")
	}
	if !passwordsMatch(s.records[i].Password, currentPassword) {
		return s.reject(ctx, common.ErrIncorrectPassword, "Error", "The current password is incorrect")
	}

	s.records[i].Password = newPassword
	s.persist(ctx)

	s.notifier.Notify(ctx, notify.Info("Password updated", "Your password has been updated"))
	return nil
}

// Session returns a copy of the current session.
func (s *accountService) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session
	if sess.User != nil {
		u := *sess.User
		sess.User = &u
	}
	return sess
}

// CurrentUser returns the signed-in user or nil.
func (s *accountService) CurrentUser() *models.PublicUser {
	return s.Session().User
}

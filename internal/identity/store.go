// Package identity owns the account ledger and the current session. It is
// the leaf store: the record store asks it who is making a request, but it
// depends on nothing beyond its slot store.
package identity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hiresphere/hiresphere/internal/auth"
	"github.com/hiresphere/hiresphere/internal/common"
	"github.com/hiresphere/hiresphere/internal/cryptox"
	"github.com/hiresphere/hiresphere/internal/logging"
	"github.com/hiresphere/hiresphere/internal/models"
	"github.com/hiresphere/hiresphere/internal/storage"
)

const accountsSnapshotVersion = 1

// accountsSnapshot is the versioned envelope persisted in the accounts slot.
type accountsSnapshot struct {
	Version  int               `json:"version"`
	Accounts []*models.Account `json:"accounts"`
}

// Store holds registered accounts and the active session. All mutating
// operations rewrite the affected slots before returning success, so a
// crash right after a successful call never loses the written state.
type Store struct {
	slots  storage.SlotStore
	tokens *auth.TokenManager
	log    logging.Logger

	accounts []*models.Account
	session  *models.Account
}

// New constructs a Store. Call Open before using it.
func New(slots storage.SlotStore, tokens *auth.TokenManager, log logging.Logger) *Store {
	return &Store{
		slots:  slots,
		tokens: tokens,
		log:    log.With("store", "identity"),
	}
}

// Open hydrates the ledger and session from their slots. A session slot
// holding an invalid or expired token is discarded rather than failing the
// open; a ledger snapshot with an unknown version fails with ErrBadSnapshot.
func (s *Store) Open(ctx context.Context) error {
	raw, err := s.slots.Get(ctx, storage.SlotAccounts)
	if err != nil {
		return fmt.Errorf("loading account ledger: %w", err)
	}
	if raw != nil {
		var snap accountsSnapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return fmt.Errorf("decoding account ledger: %w", err)
		}
		if snap.Version != accountsSnapshotVersion {
			return fmt.Errorf("account ledger version %d: %w", snap.Version, common.ErrBadSnapshot)
		}
		s.accounts = snap.Accounts
	}

	token, err := s.slots.Get(ctx, storage.SlotSession)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if token != nil {
		accountID, err := s.tokens.AccountID(string(token))
		if err != nil {
			s.log.Warn(ctx, "discarding stale session token")
			_ = s.slots.Delete(ctx, storage.SlotSession)
			return nil
		}
		if acct := s.findByID(accountID); acct != nil {
			s.session = acct.Sanitized()
		} else {
			s.log.Warn(ctx, "session references unknown account", "account_id", accountID)
			_ = s.slots.Delete(ctx, storage.SlotSession)
		}
	}

	return nil
}

// Close releases nothing today; it exists so the lifecycle stays symmetric
// when a backend that needs teardown is plugged in.
func (s *Store) Close(ctx context.Context) error { return nil }

// Register creates an account and signs it in. Email uniqueness is
// case-sensitive, matching stored values exactly.
func (s *Store) Register(ctx context.Context, profile models.NewAccount, password []byte) (*models.Account, error) {
	if s.findByEmail(profile.Email) != nil {
		return nil, common.ErrDuplicateEmail
	}

	salt := cryptox.NewSalt()
	acct := &models.Account{
		ID:       uuid.NewString(),
		Name:     profile.Name,
		Email:    profile.Email,
		Role:     profile.Role,
		Company:  profile.Company,
		Title:    profile.Title,
		Skills:   append([]string(nil), profile.Skills...),
		About:    profile.About,
		Salt:     salt,
		Verifier: cryptox.MakeVerifier(cryptox.DeriveKey(password, salt)),
	}

	// Ledger and session land in one durable write: a failure must not
	// leave the new account registered, or the email would be burned for
	// the retry.
	s.accounts = append(s.accounts, acct)
	if err := s.persistWithSession(ctx, acct); err != nil {
		s.accounts = s.accounts[:len(s.accounts)-1]
		return nil, err
	}

	s.log.Info(ctx, "account registered", "account_id", acct.ID, "role", acct.Role)
	return acct.Sanitized(), nil
}

// Login verifies credentials and establishes the session. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *Store) Login(ctx context.Context, email string, password []byte) (*models.Account, error) {
	acct := s.findByEmail(email)
	if acct == nil {
		return nil, common.ErrInvalidCredentials
	}
	if !cryptox.VerifyPassword(password, acct.Salt, acct.Verifier) {
		return nil, common.ErrInvalidCredentials
	}

	if err := s.setSession(ctx, acct); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "logged in", "account_id", acct.ID)
	return acct.Sanitized(), nil
}

// Logout clears the session and its slot. Logging out while logged out is
// a no-op, not an error.
func (s *Store) Logout(ctx context.Context) error {
	s.session = nil
	if err := s.slots.Delete(ctx, storage.SlotSession); err != nil {
		return fmt.Errorf("clearing session slot: %w", err)
	}
	return nil
}

// UpdateProfile merges non-nil fields into the current account. Email and
// role cannot be changed here.
func (s *Store) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Account, error) {
	if s.session == nil {
		return nil, common.ErrNotAuthenticated
	}

	acct := s.findByID(s.session.ID)
	if acct == nil {
		// Ledger and session can only disagree if another process rewrote
		// the accounts slot out from under us.
		return nil, common.ErrNotFound
	}

	prev := *acct
	if update.Name != nil {
		acct.Name = *update.Name
	}
	if update.Company != nil {
		acct.Company = *update.Company
	}
	if update.Title != nil {
		acct.Title = *update.Title
	}
	if update.Skills != nil {
		acct.Skills = append([]string(nil), (*update.Skills)...)
	}
	if update.About != nil {
		acct.About = *update.About
	}

	if err := s.persistWithSession(ctx, acct); err != nil {
		*acct = prev
		return nil, err
	}

	return acct.Sanitized(), nil
}

// CurrentSession returns the active account snapshot, without credential
// material, or nil when nobody is signed in.
func (s *Store) CurrentSession() *models.Account {
	if s.session == nil {
		return nil
	}
	return s.session.Sanitized()
}

func (s *Store) findByEmail(email string) *models.Account {
	for _, a := range s.accounts {
		if a.Email == email {
			return a
		}
	}
	return nil
}

func (s *Store) findByID(id string) *models.Account {
	for _, a := range s.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Store) encodeLedger() ([]byte, error) {
	raw, err := json.Marshal(accountsSnapshot{
		Version:  accountsSnapshotVersion,
		Accounts: s.accounts,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding account ledger: %w", err)
	}
	return raw, nil
}

// persistWithSession writes the ledger and a fresh session token for acct in
// one durable write, then makes acct the active session.
func (s *Store) persistWithSession(ctx context.Context, acct *models.Account) error {
	raw, err := s.encodeLedger()
	if err != nil {
		return err
	}
	token, err := s.tokens.Mint(acct.ID)
	if err != nil {
		return fmt.Errorf("minting session token: %w", err)
	}
	if err := s.slots.SetMany(ctx, map[string][]byte{
		storage.SlotAccounts: raw,
		storage.SlotSession:  []byte(token),
	}); err != nil {
		return fmt.Errorf("persisting account ledger: %w", err)
	}
	s.session = acct.Sanitized()
	return nil
}

// setSession makes acct the active session and persists its signed token.
func (s *Store) setSession(ctx context.Context, acct *models.Account) error {
	token, err := s.tokens.Mint(acct.ID)
	if err != nil {
		return fmt.Errorf("minting session token: %w", err)
	}
	if err := s.slots.Set(ctx, storage.SlotSession, []byte(token)); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	s.session = acct.Sanitized()
	return nil
}

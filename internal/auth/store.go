// Package auth holds the staff accounts and refresh-token session state
// for the service.  Accounts are seeded from configuration at startup;
// there is no self-registration, since only venue staff operate the
// booking endpoints.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/roysiu-gh/restam/internal/utils"
)

// Roles carried in the JWT "role" claim.  MANAGER may do everything
// STAFF may; the distinction is reserved for venue-configuration
// endpoints.
const (
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

// ErrBadCredentials is returned on unknown usernames and wrong
// passwords alike, so responses do not leak which usernames exist.
var ErrBadCredentials = errors.New("bad credentials")

// ErrTokenInvalid is returned when a refresh token is unknown, expired
// or revoked.
var ErrTokenInvalid = errors.New("invalid refresh token")

// Account is one staff login.
type Account struct {
	ID           uint64
	Username     string
	PasswordHash string // bcrypt
	Role         string
}

// refreshRecord tracks one issued refresh token by its SHA-256 hash.
type refreshRecord struct {
	userID    uint64
	expiresAt time.Time
	revoked   bool
}

// Store keeps accounts and refresh tokens in memory.  Sessions not
// surviving a restart is acceptable here: staff simply log in again,
// and the reservation state they work on is rebuilt from configuration
// anyway.
type Store struct {
	mu       sync.Mutex
	accounts map[string]Account       // by username
	byID     map[uint64]Account       // by id
	refresh  map[string]refreshRecord // by token hash
}

// NewStore parses the staff-users specification from configuration and
// returns a ready store.  The value is a semicolon-separated list of
// username:password:role entries.  A password beginning with "$2" is
// taken as a pre-computed bcrypt hash; anything else is hashed at the
// given cost, which lets development environments use plain passwords
// in .env while production ships hashes.
func NewStore(spec string, bcryptCost int) (*Store, error) {
	s := &Store{
		accounts: make(map[string]Account),
		byID:     make(map[uint64]Account),
		refresh:  make(map[string]refreshRecord),
	}
	var nextID uint64 = 1
	for _, entry := range strings.Split(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("staff user entry %q: want username:password:role", entry)
		}
		username := strings.ToLower(strings.TrimSpace(parts[0]))
		if username == "" {
			return nil, fmt.Errorf("staff user entry %q: empty username", entry)
		}
		if _, dup := s.accounts[username]; dup {
			return nil, fmt.Errorf("duplicate staff username %q", username)
		}
		role := strings.ToUpper(strings.TrimSpace(parts[2]))
		if role != RoleManager && role != RoleStaff {
			return nil, fmt.Errorf("staff user %q: unknown role %q", username, parts[2])
		}
		hash := parts[1]
		if !strings.HasPrefix(hash, "$2") {
			h, err := utils.HashPassword(hash, bcryptCost)
			if err != nil {
				return nil, fmt.Errorf("staff user %q: hash password: %w", username, err)
			}
			hash = h
		}
		acc := Account{ID: nextID, Username: username, PasswordHash: hash, Role: role}
		nextID++
		s.accounts[username] = acc
		s.byID[acc.ID] = acc
	}
	if len(s.accounts) == 0 {
		return nil, errors.New("no staff users configured")
	}
	return s, nil
}

// Authenticate verifies a username/password pair and returns the
// account on success.
func (s *Store) Authenticate(username, password string) (Account, error) {
	s.mu.Lock()
	acc, ok := s.accounts[strings.ToLower(strings.TrimSpace(username))]
	s.mu.Unlock()
	if !ok || !utils.VerifyPassword(acc.PasswordHash, password) {
		return Account{}, ErrBadCredentials
	}
	return acc, nil
}

// GetByID returns the account with the given id.
func (s *Store) GetByID(id uint64) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.byID[id]
	if !ok {
		return Account{}, ErrBadCredentials
	}
	return acc, nil
}

// StoreRefresh records an issued refresh token by hash.
func (s *Store) StoreRefresh(userID uint64, tokenHash string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh[tokenHash] = refreshRecord{userID: userID, expiresAt: expiresAt}
}

// ValidateRefresh returns the owning user id when the token hash is
// known, unexpired and not revoked.
func (s *Store) ValidateRefresh(tokenHash string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.refresh[tokenHash]
	if !ok || rec.revoked || time.Now().UTC().After(rec.expiresAt) {
		return 0, ErrTokenInvalid
	}
	return rec.userID, nil
}

// RevokeByHash revokes one refresh token.  Revoking an unknown token is
// a no-op.
func (s *Store) RevokeByHash(tokenHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.refresh[tokenHash]; ok {
		rec.revoked = true
		s.refresh[tokenHash] = rec
	}
}

// RevokeAllForUser revokes every active refresh token of one user.
func (s *Store) RevokeAllForUser(userID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for hash, rec := range s.refresh {
		if rec.userID == userID {
			rec.revoked = true
			s.refresh[hash] = rec
		}
	}
}

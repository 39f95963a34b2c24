package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/roysiu-gh/restam/internal/utils"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore("rosa:secret:manager; jay:letmein:staff", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestNewStoreParsesSpec(t *testing.T) {
	s := newTestStore(t)
	acc, err := s.Authenticate("rosa", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if acc.Role != RoleManager {
		t.Errorf("role = %q, want %q", acc.Role, RoleManager)
	}
	if acc.ID == 0 {
		t.Error("account id not assigned")
	}
	if acc2, err := s.GetByID(acc.ID); err != nil || acc2.Username != "rosa" {
		t.Errorf("GetByID(%d) = %+v, %v", acc.ID, acc2, err)
	}
}

func TestNewStoreRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name string
		spec string
	}{
		{"empty", ""},
		{"missing role", "rosa:secret"},
		{"empty username", ":secret:staff"},
		{"unknown role", "rosa:secret:admin"},
		{"duplicate username", "rosa:a:staff;Rosa:b:staff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewStore(tc.spec, bcrypt.MinCost); err == nil {
				t.Errorf("NewStore(%q) accepted", tc.spec)
			}
		})
	}
}

func TestNewStoreAcceptsPreHashedPassword(t *testing.T) {
	hash, err := utils.HashPassword("hunter2", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewStore("rosa:"+hash+":staff", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := s.Authenticate("rosa", "hunter2"); err != nil {
		t.Errorf("Authenticate against pre-hashed password: %v", err)
	}
}

func TestAuthenticateFailsUniformly(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Authenticate("rosa", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password = %v, want ErrBadCredentials", err)
	}
	if _, err := s.Authenticate("nobody", "secret"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown user = %v, want ErrBadCredentials", err)
	}
}

func TestAuthenticateNormalizesUsername(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Authenticate("  ROSA ", "secret"); err != nil {
		t.Errorf("Authenticate with padded mixed-case username: %v", err)
	}
}

func TestRefreshTokenLifecycle(t *testing.T) {
	s := newTestStore(t)
	hash := utils.HashRefreshRaw("raw-token")
	s.StoreRefresh(1, hash, time.Now().UTC().Add(time.Hour))

	id, err := s.ValidateRefresh(hash)
	if err != nil || id != 1 {
		t.Fatalf("ValidateRefresh = %d, %v; want 1, nil", id, err)
	}
	s.RevokeByHash(hash)
	if _, err := s.ValidateRefresh(hash); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("revoked token = %v, want ErrTokenInvalid", err)
	}
	s.RevokeByHash("never-issued") // no-op
}

func TestValidateRefreshRejectsExpiredAndUnknown(t *testing.T) {
	s := newTestStore(t)
	expired := utils.HashRefreshRaw("old")
	s.StoreRefresh(1, expired, time.Now().UTC().Add(-time.Minute))
	if _, err := s.ValidateRefresh(expired); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expired token = %v, want ErrTokenInvalid", err)
	}
	if _, err := s.ValidateRefresh("unknown"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("unknown token = %v, want ErrTokenInvalid", err)
	}
}

func TestRevokeAllForUser(t *testing.T) {
	s := newTestStore(t)
	mine := utils.HashRefreshRaw("mine")
	alsoMine := utils.HashRefreshRaw("also-mine")
	theirs := utils.HashRefreshRaw("theirs")
	exp := time.Now().UTC().Add(time.Hour)
	s.StoreRefresh(1, mine, exp)
	s.StoreRefresh(1, alsoMine, exp)
	s.StoreRefresh(2, theirs, exp)

	s.RevokeAllForUser(1)
	for _, h := range []string{mine, alsoMine} {
		if _, err := s.ValidateRefresh(h); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("token %q survived RevokeAllForUser", h)
		}
	}
	if _, err := s.ValidateRefresh(theirs); err != nil {
		t.Errorf("other user's token revoked: %v", err)
	}
}

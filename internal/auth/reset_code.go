package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// ResetCodeTTL is how long an issued reset code stays valid.
const ResetCodeTTL = 15 * time.Minute

// ResetCodeStore issues and verifies single-use password reset codes
// keyed by email. At most one live code exists per email: Issue
// overwrites any prior unconsumed code, and Verify consumes the code on
// success so it cannot be replayed.
type ResetCodeStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
	Delete(ctx context.Context, email string) error
}

// GenerateResetCode returns a uniformly random 6-digit code as a
// zero-padded string, so codes like "004217" keep their leading zeros.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

type resetCodeEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryResetCodeStore keeps reset codes in a mutex-guarded map. The
// mutex serializes Issue/Verify for every email, so concurrent
// verification attempts cannot consume the same code twice.
type MemoryResetCodeStore struct {
	mu    sync.Mutex
	codes map[string]resetCodeEntry
	now   func() time.Time
}

var _ ResetCodeStore = (*MemoryResetCodeStore)(nil)

// NewMemoryResetCodeStore creates an empty in-memory store.
func NewMemoryResetCodeStore() *MemoryResetCodeStore {
	return &MemoryResetCodeStore{
		codes: make(map[string]resetCodeEntry),
		now:   time.Now,
	}
}

// Issue generates a fresh code for the email, replacing any live one.
func (s *MemoryResetCodeStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := GenerateResetCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.codes[email] = resetCodeEntry{
		code:      code,
		expiresAt: s.now().Add(ResetCodeTTL),
	}
	return code, nil
}

// Verify reports whether the submitted code matches the live code for
// the email. A match consumes the code; an expired entry is removed. A
// mismatch leaves the entry in place so a typo does not force the admin
// to request a new code.
func (s *MemoryResetCodeStore) Verify(ctx context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[email]
	if !ok {
		return false, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.codes, email)
		return false, nil
	}
	if entry.code != code {
		return false, nil
	}

	delete(s.codes, email)
	return true, nil
}

// Delete removes any live code for the email.
func (s *MemoryResetCodeStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
	return nil
}

// pruneLocked drops expired entries. Called opportunistically under the
// lock instead of from a background sweep.
func (s *MemoryResetCodeStore) pruneLocked() {
	now := s.now()
	for email, entry := range s.codes {
		if now.After(entry.expiresAt) {
			delete(s.codes, email)
		}
	}
}

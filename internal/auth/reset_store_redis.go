package auth

import (
	"context"
	"fmt"

	"portfolio/internal/cache"
)

const resetCodeKeyPrefix = "reset_code:"

// RedisResetCodeStore keeps reset codes in Redis so multiple instances
// share one registry. Expiry is delegated to the key TTL and consumption
// uses an atomic compare-and-delete, so no process-level lock is needed.
type RedisResetCodeStore struct {
	cache *cache.Client
}

var _ ResetCodeStore = (*RedisResetCodeStore)(nil)

// NewRedisResetCodeStore creates a Redis-backed reset code store.
func NewRedisResetCodeStore(cache *cache.Client) *RedisResetCodeStore {
	return &RedisResetCodeStore{cache: cache}
}

// Issue generates a fresh code for the email, replacing any live one.
func (s *RedisResetCodeStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := GenerateResetCode()
	if err != nil {
		return "", err
	}

	key := resetCodeKeyPrefix + email
	if err := s.cache.Set(ctx, key, []byte(code), ResetCodeTTL); err != nil {
		return "", fmt.Errorf("store reset code: %w", err)
	}
	return code, nil
}

// Verify reports whether the submitted code matches the live code for
// the email, consuming it atomically on a match. A mismatch leaves the
// key in place until its TTL runs out.
func (s *RedisResetCodeStore) Verify(ctx context.Context, email, code string) (bool, error) {
	key := resetCodeKeyPrefix + email
	matched, err := s.cache.CompareAndDelete(ctx, key, code)
	if err != nil {
		return false, fmt.Errorf("verify reset code: %w", err)
	}
	return matched, nil
}

// Delete removes any live code for the email.
func (s *RedisResetCodeStore) Delete(ctx context.Context, email string) error {
	return s.cache.Delete(ctx, resetCodeKeyPrefix+email)
}

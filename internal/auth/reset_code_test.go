package auth

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetCode_Format(t *testing.T) {
	format := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 50; i++ {
		code, err := GenerateResetCode()
		require.NoError(t, err)
		assert.Regexp(t, format, code)
	}
}

func TestMemoryResetCodeStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryResetCodeStore()

	code, err := store.Issue(ctx, "admin@x.com")
	require.NoError(t, err)
	require.Len(t, code, 6)

	ok, err := store.Verify(ctx, "admin@x.com", code)
	require.NoError(t, err)
	assert.True(t, ok)

	// Single use: the same code never verifies twice.
	ok, err = store.Verify(ctx, "admin@x.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryResetCodeStore_UnknownEmail(t *testing.T) {
	store := NewMemoryResetCodeStore()

	ok, err := store.Verify(context.Background(), "nobody@x.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryResetCodeStore_MismatchKeepsCode(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryResetCodeStore()

	code, err := store.Issue(ctx, "admin@x.com")
	require.NoError(t, err)

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	ok, err := store.Verify(ctx, "admin@x.com", wrong)
	require.NoError(t, err)
	assert.False(t, ok)

	// A typo does not burn the code.
	ok, err = store.Verify(ctx, "admin@x.com", code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryResetCodeStore_IssueOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryResetCodeStore()

	first, err := store.Issue(ctx, "admin@x.com")
	require.NoError(t, err)
	second, err := store.Issue(ctx, "admin@x.com")
	require.NoError(t, err)

	if first != second {
		ok, err := store.Verify(ctx, "admin@x.com", first)
		require.NoError(t, err)
		assert.False(t, ok, "a replaced code must not verify")
	}

	ok, err := store.Verify(ctx, "admin@x.com", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryResetCodeStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryResetCodeStore()

	current := time.Now()
	store.now = func() time.Time { return current }

	code, err := store.Issue(ctx, "admin@x.com")
	require.NoError(t, err)

	current = current.Add(ResetCodeTTL + time.Second)

	ok, err := store.Verify(ctx, "admin@x.com", code)
	require.NoError(t, err)
	assert.False(t, ok)

	// The expired entry was removed, not merely rejected.
	store.mu.Lock()
	_, exists := store.codes["admin@x.com"]
	store.mu.Unlock()
	assert.False(t, exists)
}

func TestMemoryResetCodeStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryResetCodeStore()

	code, err := store.Issue(ctx, "admin@x.com")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "admin@x.com"))

	ok, err := store.Verify(ctx, "admin@x.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryResetCodeStore_ConcurrentVerify(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryResetCodeStore()

	code, err := store.Issue(ctx, "admin@x.com")
	require.NoError(t, err)

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.Verify(ctx, "admin@x.com", code)
			assert.NoError(t, err)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for ok := range results {
		if ok {
			successes++
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent verification may consume the code")
}

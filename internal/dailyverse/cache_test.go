package dailyverse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got, err := store.Get(ctx, ScopeAnonymous, "2026-09-01")
	require.NoError(t, err)
	assert.Nil(t, got, "empty store must miss")

	v := DailyVerse{Verse: "text", Reference: "John 3:16", Reflection: "r"}
	require.NoError(t, store.Set(ctx, ScopeAnonymous, "2026-09-01", v))

	got, err = store.Get(ctx, ScopeAnonymous, "2026-09-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, v, *got)

	// Different day or scope is a miss.
	got, err = store.Get(ctx, ScopeAnonymous, "2026-09-02")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.Get(ctx, "user:1", "2026-09-01")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStorePrune(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	v := DailyVerse{Verse: "text", Reference: "ref", Reflection: "r"}
	require.NoError(t, store.Set(ctx, ScopeAnonymous, "2026-08-30", v))
	require.NoError(t, store.Set(ctx, "user:1", "2026-08-31", v))
	require.NoError(t, store.Set(ctx, "user:1", "2026-09-01", v))

	require.NoError(t, store.Prune(ctx, "2026-09-01"))

	got, _ := store.Get(ctx, ScopeAnonymous, "2026-08-30")
	assert.Nil(t, got)
	got, _ = store.Get(ctx, "user:1", "2026-08-31")
	assert.Nil(t, got)
	got, _ = store.Get(ctx, "user:1", "2026-09-01")
	assert.NotNil(t, got, "today's entry must survive the prune")
}

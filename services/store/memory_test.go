package store

import (
	"Gamehub/models"
	"Gamehub/utils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	loaded, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	snap := models.DefaultSnapshot(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))
	require.NoError(t, m.Save(ctx, snap))
	assert.Equal(t, int64(1), snap.Version)

	loaded, err = m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.Version)
	assert.Len(t, loaded.Games, 3)

	// copies are independent
	loaded.Games = nil
	again, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, again.Games, 3)
}

func TestMemoryStoreRejectsStaleVersion(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.Save(ctx, &models.Snapshot{}))

	first, _ := m.Load(ctx)
	second, _ := m.Load(ctx)

	require.NoError(t, m.Save(ctx, first))
	err := m.Save(ctx, second)
	assert.ErrorIs(t, err, utils.ErrConflict)
	assert.Equal(t, int64(1), second.Version)
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	var s Store = NullStore{}

	snap, err := s.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, snap)

	assert.ErrorIs(t, s.Save(ctx, &models.Snapshot{}), utils.ErrStoreUnavailable)
}

func TestDecodeFillsMissingCollections(t *testing.T) {
	snap, err := Decode([]byte(`{"users":[{"id":"u1","name":"alice"}]}`))
	require.NoError(t, err)
	assert.Len(t, snap.Users, 1)
	assert.NotNil(t, snap.GameGroups)
	assert.Equal(t, int64(0), snap.Version)

	_, err = Decode([]byte(`not json`))
	assert.ErrorIs(t, err, utils.ErrStoreUnavailable)
}

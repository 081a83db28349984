package session_test

import (
	"context"
	"testing"
	"time"

	"crm/internal/pipeline"
	"crm/internal/session"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*miniredis.Miniredis, *session.RedisStore) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, session.NewRedisStore(client, time.Hour)
}

func TestRedisStore_DefaultWhenMissing(t *testing.T) {
	_, store := newStore(t)

	state, err := store.Load(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultState(), state)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	mr, store := newStore(t)
	ctx := context.Background()
	userID := uuid.New()
	selected := uuid.New()

	want := pipeline.State{
		View:          pipeline.ViewList,
		Search:        "tech",
		SortField:     pipeline.SortValue,
		SortDirection: pipeline.Descending,
		Selected:      &selected,
	}
	require.NoError(t, store.Save(ctx, userID, want))

	got, err := store.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Hour, mr.TTL("board:"+userID.String()))
}

func TestRedisStore_CorruptEntryLoadsDefault(t *testing.T) {
	mr, store := newStore(t)
	userID := uuid.New()
	require.NoError(t, mr.Set("board:"+userID.String(), "]["))
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	state, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultState(), state)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, userID, entry.Data["user_id"])
	assert.Error(t, entry.Data[logrus.ErrorKey].(error))
}

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/VinukaThejana/feedback/errors"
	"github.com/VinukaThejana/feedback/models"
	"github.com/VinukaThejana/feedback/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contract(t *testing.T, s store.OTP) {
	t.Helper()
	ctx := context.Background()
	issuedAt := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	_, err := s.Get(ctx, "a@x.com")
	require.ErrorIs(t, err, errors.ErrRecordNotFound)

	require.NoError(t, s.Upsert(ctx, models.OTP{Email: "a@x.com", Code: "123456", IssuedAt: issuedAt}))

	otp, err := s.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", otp.Code)
	assert.True(t, issuedAt.Equal(otp.IssuedAt))

	later := issuedAt.Add(time.Minute)
	require.NoError(t, s.Upsert(ctx, models.OTP{Email: "a@x.com", Code: "654321", IssuedAt: later}))

	otp, err = s.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "654321", otp.Code)
	assert.True(t, later.Equal(otp.IssuedAt))

	require.NoError(t, s.Upsert(ctx, models.OTP{Email: "b@x.com", Code: "111111", IssuedAt: issuedAt}))

	require.NoError(t, s.Delete(ctx, "a@x.com"))
	_, err = s.Get(ctx, "a@x.com")
	require.ErrorIs(t, err, errors.ErrRecordNotFound)

	otp, err = s.Get(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, "111111", otp.Code)

	require.NoError(t, s.Delete(ctx, "missing@x.com"))
	require.NoError(t, s.Ping(ctx))
}

func TestMemory(t *testing.T) {
	m := store.NewMemory()
	contract(t, m)
	assert.Equal(t, 1, m.Len())
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	contract(t, &store.Redis{Client: client, TTL: 5 * time.Minute})
}

func TestRedisRecordsExpire(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := &store.Redis{Client: client, TTL: 5 * time.Minute}
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, models.OTP{Email: "a@x.com", Code: "123456", IssuedAt: time.Now().UTC()}))
	assert.Equal(t, 5*time.Minute, mr.TTL("otp:a@x.com"))

	mr.FastForward(5 * time.Minute)

	_, err := s.Get(ctx, "a@x.com")
	require.ErrorIs(t, err, errors.ErrRecordNotFound)
}

func TestRedisCorruptRecord(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, mr.Set("otp:a@x.com", "not-json"))

	s := &store.Redis{Client: client, TTL: time.Minute}
	_, err := s.Get(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errors.ErrRecordNotFound)
}

func TestMemoryDeleteExpired(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	require.NoError(t, m.Upsert(ctx, models.OTP{Email: "old@x.com", Code: "123456", IssuedAt: now.Add(-10 * time.Minute)}))
	require.NoError(t, m.Upsert(ctx, models.OTP{Email: "edge@x.com", Code: "123456", IssuedAt: now.Add(-5 * time.Minute)}))
	require.NoError(t, m.Upsert(ctx, models.OTP{Email: "new@x.com", Code: "123456", IssuedAt: now.Add(-time.Minute)}))

	n, err := m.DeleteExpired(ctx, now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 1, m.Len())

	_, err = m.Get(ctx, "new@x.com")
	require.NoError(t, err)
}

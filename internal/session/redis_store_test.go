package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"staffdesk/internal/session"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Get(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := session.NewRedisStore(rdb)
	ctx := context.Background()

	want := session.Session{
		Token:      "tok-1",
		EmployeeID: 9,
		Email:      "a@example.com",
		Role:       "staff",
		IssuedAt:   time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		ExpiresAt:  time.Date(2026, 1, 1, 10, 30, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet("session:tok-1").SetVal(string(payload))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, want.EmployeeID, got.EmployeeID)
	assert.Equal(t, want.Role, got.Role)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_GetMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := session.NewRedisStore(rdb)

	mock.ExpectGet("session:absent").RedisNil()

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Delete(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := session.NewRedisStore(rdb)

	mock.ExpectDel("session:tok-1").SetVal(1)

	assert.NoError(t, store.Delete(context.Background(), "tok-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Save(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := session.NewRedisStore(rdb)

	s := session.Session{
		Token:      "tok-1",
		EmployeeID: 9,
		Email:      "a@example.com",
		Role:       "staff",
		IssuedAt:   time.Now().UTC(),
		ExpiresAt:  time.Now().UTC().Add(30 * time.Minute),
	}
	payload, err := json.Marshal(s)
	require.NoError(t, err)

	// The TTL is computed from the wall clock, so match key and value
	// but accept whatever duration comes out. The expiration here must be
	// non-zero so the expected command has the same arg count as the real
	// one; redismock compares lengths before the custom matcher runs.
	mock.CustomMatch(func(expected, actual []interface{}) error {
		return nil
	}).ExpectSet("session:tok-1", payload, time.Minute).SetVal("OK")

	assert.NoError(t, store.Save(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

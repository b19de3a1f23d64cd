package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/leadflow/internal/apperr"
	"github.com/leadflow/leadflow/internal/model"
	"github.com/leadflow/leadflow/tests/testutil"
)

func TestSessionLifecycle(t *testing.T) {
	s := testutil.NewTestStore(t)
	userID := testutil.CreateUser(t, s, "a@example.com", nil, nil)
	ctx := context.Background()

	now := time.Now().UTC()
	err := s.CreateSession(ctx, model.Session{
		Token:     "tok-1",
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	session, err := s.GetSession(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	require.NoError(t, s.DeleteSession(ctx, "tok-1"))

	_, err = s.GetSession(ctx, "tok-1")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	// Deleting again is not an error.
	require.NoError(t, s.DeleteSession(ctx, "tok-1"))
}

func TestExpiredSessionDeletedOnLookup(t *testing.T) {
	s := testutil.NewTestStore(t)
	userID := testutil.CreateUser(t, s, "a@example.com", nil, nil)
	ctx := context.Background()

	now := time.Now().UTC()
	err := s.CreateSession(ctx, model.Session{
		Token:     "tok-expired",
		UserID:    userID,
		CreatedAt: now.Add(-25 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	_, err = s.GetSession(ctx, "tok-expired")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	// Still gone on the next lookup.
	_, err = s.GetSession(ctx, "tok-expired")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestUnknownSessionNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.GetSession(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/leadflow/internal/apperr"
	"github.com/leadflow/leadflow/tests/testutil"
)

func TestAddNoteRejectsEmptyContent(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedCatalog(t, s)
	userID := testutil.CreateUser(t, s, "a@example.com", nil, nil)
	ctx := context.Background()

	_, err := s.DailyLeads(ctx, userID, "2026-01-01", 7)
	require.NoError(t, err)

	_, err = s.AddNote(ctx, userID, 1, "   ")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestAddNoteRequiresAssignment(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedCatalog(t, s)
	userID := testutil.CreateUser(t, s, "a@example.com", nil, nil)

	_, err := s.AddNote(context.Background(), userID, 1, "hello")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestNotesAppendOnly(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedCatalog(t, s)
	userID := testutil.CreateUser(t, s, "a@example.com", nil, nil)
	ctx := context.Background()

	_, err := s.DailyLeads(ctx, userID, "2026-01-01", 7)
	require.NoError(t, err)

	for _, content := range []string{"first call", "second call", "third call"} {
		_, err := s.AddNote(ctx, userID, 1, content)
		require.NoError(t, err)
	}

	notes, err := s.NotesForLead(ctx, userID, 1)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "first call", notes[0].Content)
	assert.Equal(t, "second call", notes[1].Content)
	assert.Equal(t, "third call", notes[2].Content)
	for _, n := range notes {
		assert.False(t, n.CreatedAt.IsZero())
	}
}

func TestNotesScopedToUser(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedCatalog(t, s)
	alice := testutil.CreateUser(t, s, "alice@example.com", nil, nil)
	bob := testutil.CreateUser(t, s, "bob@example.com", nil, nil)
	ctx := context.Background()

	_, err := s.DailyLeads(ctx, alice, "2026-01-01", 7)
	require.NoError(t, err)
	_, err = s.DailyLeads(ctx, bob, "2026-01-01", 7)
	require.NoError(t, err)

	_, err = s.AddNote(ctx, alice, 1, "alice's note")
	require.NoError(t, err)

	bobNotes, err := s.NotesForLead(ctx, bob, 1)
	require.NoError(t, err)
	assert.Empty(t, bobNotes)
}

package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profilekit/pkg/idgen"
	"github.com/dmitrymomot/profilekit/pkg/profile"
)

func TestNewSession(t *testing.T) {
	t.Parallel()

	t.Run("generates missing id and timestamps", func(t *testing.T) {
		t.Parallel()

		s := profile.NewSession(profile.SessionConfig{CollectApp: "web", Section: "checkout"})
		assert.Len(t, s.ID(), idgen.SessionIDLength)
		assert.NotZero(t, s.CreatedAt())
		assert.True(t, s.IsValid())
	})

	t.Run("invalid without collectApp or section", func(t *testing.T) {
		t.Parallel()

		assert.False(t, profile.NewSession(profile.SessionConfig{Section: "checkout"}).IsValid())
		assert.False(t, profile.NewSession(profile.SessionConfig{CollectApp: "web"}).IsValid())
	})
}

func TestSession_SetData(t *testing.T) {
	t.Parallel()

	s := profile.NewSession(profile.SessionConfig{CollectApp: "web", Section: "checkout"})

	// Partial updates accumulate rather than replace each other.
	s.SetData(map[string]any{"campaign": "spring", "step": 1})
	s.SetData(map[string]any{"step": 2})

	assert.Equal(t, "spring", s.GetDataValue("campaign"))
	assert.Equal(t, 2, s.GetDataValue("step"))
}

func TestSession_AddEvent(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid event", func(t *testing.T) {
		t.Parallel()

		s := profile.NewSession(profile.SessionConfig{CollectApp: "web", Section: "checkout"})
		err := s.AddEvent(profile.NewEvent(profile.EventConfig{ID: "ev1"}))
		require.ErrorIs(t, err, profile.ErrInvalidEvent)
		assert.Empty(t, s.Events())
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		s := profile.NewSession(profile.SessionConfig{CollectApp: "web", Section: "checkout"})
		require.NoError(t, s.AddEvent(profile.NewEvent(profile.EventConfig{ID: "a", DefinitionID: "d"})))
		require.NoError(t, s.AddEvent(profile.NewEvent(profile.EventConfig{ID: "b", DefinitionID: "d"})))

		events := s.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "a", events[0].ID())
		assert.Equal(t, "b", events[1].ID())
	})

	t.Run("same id replaces in place", func(t *testing.T) {
		t.Parallel()

		s := profile.NewSession(profile.SessionConfig{CollectApp: "web", Section: "checkout"})
		require.NoError(t, s.AddEvent(profile.NewEvent(profile.EventConfig{ID: "a", DefinitionID: "d"})))
		require.NoError(t, s.AddEvent(profile.NewEvent(profile.EventConfig{ID: "b", DefinitionID: "d"})))

		replacement := profile.NewEvent(profile.EventConfig{ID: "a", DefinitionID: "d2"})
		require.NoError(t, s.AddEvent(replacement))

		events := s.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "d2", events[0].DefinitionID())
	})
}

func TestSession_GetEvents(t *testing.T) {
	t.Parallel()

	s := profile.NewSession(profile.SessionConfig{CollectApp: "web", Section: "checkout"})
	require.NoError(t, s.AddEvent(profile.NewEvent(profile.EventConfig{ID: "a", DefinitionID: "view"})))
	require.NoError(t, s.AddEvent(profile.NewEvent(profile.EventConfig{ID: "b", DefinitionID: "click"})))
	require.NoError(t, s.AddEvent(profile.NewEvent(profile.EventConfig{ID: "c", DefinitionID: "view"})))

	assert.Len(t, s.GetEvents(""), 3)
	views := s.GetEvents("view")
	require.Len(t, views, 2)
	assert.Equal(t, "a", views[0].ID())
	assert.Equal(t, "c", views[1].ID())
	assert.Nil(t, s.GetEvent("missing"))
}

func TestSession_Clone(t *testing.T) {
	t.Parallel()

	s := profile.NewSession(profile.SessionConfig{
		ID:         "s1",
		CollectApp: "web",
		Section:    "checkout",
		Data:       map[string]any{"step": 1},
	})
	require.NoError(t, s.AddEvent(profile.NewEvent(profile.EventConfig{ID: "a", DefinitionID: "d"})))

	clone := s.Clone()
	clone.SetDataValue("step", 2)
	clone.GetEvent("a").SetDataValue("x", 1)

	assert.Equal(t, 1, s.GetDataValue("step"))
	assert.Nil(t, s.GetEvent("a").GetDataValue("x"))
}

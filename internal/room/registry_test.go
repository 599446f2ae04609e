package room

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry()

	r, err := reg.Create(2, "Alice")
	require.NoError(t, err)
	assert.Len(t, r.Code, codeLength)
	assert.Equal(t, 2, r.TeamCount)
	assert.Equal(t, "Alice", r.HostName)
	assert.Equal(t, 0, r.PlayerCount())
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_CreateValidation(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name      string
		teamCount int
		hostName  string
	}{
		{"zero teams", 0, "Alice"},
		{"negative teams", -1, "Alice"},
		{"empty host name", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Create(tt.teamCount, tt.hostName)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
	assert.Equal(t, 0, reg.Count())
}

func TestRegistry_CodesAreUnique(t *testing.T) {
	reg := NewRegistry()
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		r, err := reg.Create(2, "Host")
		require.NoError(t, err)
		assert.False(t, seen[r.Code], "duplicate live room code")
		seen[r.Code] = true
	}
}

func TestRegistry_GetNormalizesCase(t *testing.T) {
	reg := NewRegistry()
	r, err := reg.Create(2, "Alice")
	require.NoError(t, err)

	assert.Same(t, r, reg.Get(r.Code))
	assert.Same(t, r, reg.Get(strings.ToLower(r.Code)))
	assert.Nil(t, reg.Get("NOPE99"))
}

func TestRegistry_DeleteIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	r, err := reg.Create(2, "Alice")
	require.NoError(t, err)

	reg.Delete(r.Code)
	assert.Nil(t, reg.Get(r.Code))
	assert.Equal(t, 0, reg.Count())

	reg.Delete(r.Code) // no-op
	assert.Equal(t, 0, reg.Count())
}

func TestRegistry_Reap(t *testing.T) {
	reg := NewRegistry()

	stale, err := reg.Create(2, "Alice")
	require.NoError(t, err)
	stale.CreatedAt = time.Now().Add(-3 * time.Hour)

	fresh, err := reg.Create(2, "Bob")
	require.NoError(t, err)

	occupied, err := reg.Create(2, "Carol")
	require.NoError(t, err)
	occupied.CreatedAt = time.Now().Add(-48 * time.Hour)
	_, err = occupied.Join("Carol", true, mockClient("c1"))
	require.NoError(t, err)

	evicted := reg.Reap(2 * time.Hour)
	assert.Equal(t, 1, evicted)
	assert.Nil(t, reg.Get(stale.Code), "stale empty room must be reaped")
	assert.NotNil(t, reg.Get(fresh.Code), "young empty room survives")
	assert.NotNil(t, reg.Get(occupied.Code), "occupied room survives any age")
}

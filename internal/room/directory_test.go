package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectory_BindResolveUnbind(t *testing.T) {
	d := NewDirectory()

	_, ok := d.Resolve("conn1")
	assert.False(t, ok)

	d.Bind("conn1", "ABC123", "player1")
	assoc, ok := d.Resolve("conn1")
	assert.True(t, ok)
	assert.Equal(t, Assoc{RoomCode: "ABC123", PlayerID: "player1"}, assoc)

	// Rebinding the same connection replaces the association.
	d.Bind("conn1", "XYZ789", "player2")
	assoc, _ = d.Resolve("conn1")
	assert.Equal(t, "player2", assoc.PlayerID)

	removed, ok := d.Unbind("conn1")
	assert.True(t, ok)
	assert.Equal(t, "XYZ789", removed.RoomCode)

	_, ok = d.Resolve("conn1")
	assert.False(t, ok)

	_, ok = d.Unbind("conn1")
	assert.False(t, ok)
}

func TestDirectory_DropRoom(t *testing.T) {
	d := NewDirectory()
	d.Bind("conn1", "ABC123", "player1")
	d.Bind("conn2", "ABC123", "player2")
	d.Bind("conn3", "XYZ789", "player3")

	d.DropRoom("ABC123")

	_, ok := d.Resolve("conn1")
	assert.False(t, ok)
	_, ok = d.Resolve("conn2")
	assert.False(t, ok)
	_, ok = d.Resolve("conn3")
	assert.True(t, ok, "other rooms' associations are untouched")
}

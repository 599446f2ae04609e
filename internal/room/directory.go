package room

import "sync"

// Assoc ties a live connection to the player it speaks for.
type Assoc struct {
	RoomCode string
	PlayerID string
}

// Directory tracks which connection currently represents which player.
// Presence is connection-scoped, identity is name-scoped: dropping an
// association never removes the player from its room.
type Directory struct {
	assocs map[string]Assoc // connection ID -> association
	mu     sync.RWMutex
}

// NewDirectory creates an empty connection directory.
func NewDirectory() *Directory {
	return &Directory{
		assocs: make(map[string]Assoc),
	}
}

// Bind associates a connection with a player in a room, replacing any
// previous association for that connection.
func (d *Directory) Bind(connectionID, roomCode, playerID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.assocs[connectionID] = Assoc{RoomCode: roomCode, PlayerID: playerID}
}

// Unbind drops a connection's association, returning it if it existed.
func (d *Directory) Unbind(connectionID string) (Assoc, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	assoc, ok := d.assocs[connectionID]
	if ok {
		delete(d.assocs, connectionID)
	}
	return assoc, ok
}

// Resolve returns the association for a connection, if any.
func (d *Directory) Resolve(connectionID string) (Assoc, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	assoc, ok := d.assocs[connectionID]
	return assoc, ok
}

// DropRoom removes every association pointing at the given room code,
// used when a room is deleted out from under its members.
func (d *Directory) DropRoom(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for connID, assoc := range d.assocs {
		if assoc.RoomCode == code {
			delete(d.assocs, connID)
		}
	}
}

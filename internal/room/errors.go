package room

import "errors"

var (
	// ErrInvalidConfig is returned when a room is created with a bad
	// team count or an empty host name.
	ErrInvalidConfig = errors.New("invalid room configuration")

	// ErrRoomNotFound is returned for lookups on unknown room codes.
	ErrRoomNotFound = errors.New("room not found")

	// ErrUnauthorized is returned when a non-host attempts a host-only
	// action (reset or delete).
	ErrUnauthorized = errors.New("only the host can do that")

	// ErrNameTaken is returned when a join uses a name that belongs to
	// a player with a live connection.
	ErrNameTaken = errors.New("name is in use by a connected player")
)

package game

import (
	"time"

	"github.com/google/uuid"
)

// Player is a logical participant in a room. Identity is name-scoped:
// the ID and team survive reconnects, only ConnectionID is rebound.
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Team         int       `json:"team"`
	IsHost       bool      `json:"is_host"`
	ConnectionID string    `json:"connection_id"`
	JoinedAt     time.Time `json:"joined_at"`
}

func NewPlayer(name string, team int, isHost bool, connectionID string) *Player {
	return &Player{
		ID:           uuid.New().String(),
		Name:         name,
		Team:         team,
		IsHost:       isHost,
		ConnectionID: connectionID,
		JoinedAt:     time.Now(),
	}
}

// Rebind attaches the player to a new live connection.
func (p *Player) Rebind(connectionID string) {
	p.ConnectionID = connectionID
}

// Connected reports whether the player currently has a live connection.
func (p *Player) Connected() bool {
	return p.ConnectionID != ""
}

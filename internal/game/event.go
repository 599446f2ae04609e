package game

import "time"

// BuzzerEvent records one accepted buzzer press. Immutable once created.
// Ledger position, not Timestamp, is the authoritative arrival order.
type BuzzerEvent struct {
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Team       int       `json:"team"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewBuzzerEvent(p *Player) BuzzerEvent {
	return BuzzerEvent{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Team:       p.Team,
		Timestamp:  time.Now(),
	}
}

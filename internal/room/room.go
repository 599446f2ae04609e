package room

import (
	"sync"
	"time"

	"github.com/bergtobias/quiz/internal/game"
	"github.com/bergtobias/quiz/internal/ws"
)

// Room represents one quiz session: players split across teams plus the
// buzzer state for the current round.
type Room struct {
	Code      string
	TeamCount int
	HostName  string
	CreatedAt time.Time

	// players in join order; byName is the rejoin index.
	players []*game.Player
	byName  map[string]*game.Player

	// Client mapping: player ID -> ws client
	clients map[string]*ws.Client

	buzzerLocked bool
	firstBuzz    *game.BuzzerEvent
	buzzLedger   []game.BuzzerEvent

	mu sync.RWMutex
}

// NewRoom creates a new room with the given code and team count.
func NewRoom(code string, teamCount int, hostName string) *Room {
	return &Room{
		Code:      code,
		TeamCount: teamCount,
		HostName:  hostName,
		CreatedAt: time.Now(),
		byName:    make(map[string]*game.Player),
		clients:   make(map[string]*ws.Client),
	}
}

// Join adds a player to the room, or rebinds an existing player joining
// again under the same name. On rejoin the player's ID, team, and host
// flag are untouched; only the connection changes. A name held by a
// player with a different live connection cannot be claimed.
//
// The host flag is granted to the first player entering an empty room,
// or to an explicit claim when no host exists yet; later claims lose.
func (r *Room) Join(name string, wantHost bool, client *ws.Client) (*game.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok {
		if existing.Connected() && existing.ConnectionID != client.ID {
			return nil, ErrNameTaken
		}
		existing.Rebind(client.ID)
		r.clients[existing.ID] = client
		return existing, nil
	}

	isHost := len(r.players) == 0 || (wantHost && !r.hasHost())
	team := game.LeastLoadedTeam(r.players, r.TeamCount)
	player := game.NewPlayer(name, team, isHost, client.ID)

	r.players = append(r.players, player)
	r.byName[name] = player
	r.clients[player.ID] = client
	return player, nil
}

// hasHost reports whether any player already holds the host flag.
// Caller must hold r.mu.
func (r *Room) hasHost() bool {
	for _, p := range r.players {
		if p.IsHost {
			return true
		}
	}
	return false
}

// Disconnect drops the player's live connection but keeps the player in
// the roster so they can rejoin by name. Returns the player, or nil if
// the ID is unknown.
func (r *Room) Disconnect(playerID string) *game.Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.players {
		if p.ID == playerID {
			p.Rebind("")
			delete(r.clients, playerID)
			return p
		}
	}
	return nil
}

// PressBuzzer arbitrates the buzzer race. The first press of an open
// round locks it and becomes the winning event; presses while locked
// or from unknown players are silently dropped.
func (r *Room) PressBuzzer(playerID string) (game.BuzzerEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.buzzerLocked {
		return game.BuzzerEvent{}, false
	}

	player := r.findPlayer(playerID)
	if player == nil {
		return game.BuzzerEvent{}, false
	}

	event := game.NewBuzzerEvent(player)
	r.buzzerLocked = true
	r.firstBuzz = &event
	r.buzzLedger = append(r.buzzLedger, event)
	return event, true
}

// ResetBuzzer reopens the round, clearing the winner and the ledger.
// Only the host may reset. Idempotent.
func (r *Room) ResetBuzzer(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.findPlayer(playerID)
	if player == nil || !player.IsHost {
		return ErrUnauthorized
	}

	r.buzzerLocked = false
	r.firstBuzz = nil
	r.buzzLedger = nil
	return nil
}

// findPlayer returns the player with the given ID. Caller must hold r.mu.
func (r *Room) findPlayer(playerID string) *game.Player {
	for _, p := range r.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// Player returns the player with the given ID, or nil.
func (r *Room) Player(playerID string) *game.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findPlayer(playerID)
}

// PlayerCount returns the number of players in the roster, connected or not.
func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// IsEmpty returns true if the room has no players.
func (r *Room) IsEmpty() bool {
	return r.PlayerCount() == 0
}

// BuzzerLocked reports whether the current round already has a winner.
func (r *Room) BuzzerLocked() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.buzzerLocked
}

// FirstBuzz returns a copy of the winning event for the current round,
// or false when the round is open.
func (r *Room) FirstBuzz() (game.BuzzerEvent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.firstBuzz == nil {
		return game.BuzzerEvent{}, false
	}
	return *r.firstBuzz, true
}

// LedgerLen returns the number of recorded buzz events this round.
func (r *Room) LedgerLen() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buzzLedger)
}

// Snapshot is an immutable copy of the room state, safe to marshal and
// hand to clients.
type Snapshot struct {
	Code         string             `json:"code"`
	TeamCount    int                `json:"team_count"`
	HostName     string             `json:"host_name"`
	Players      []game.Player      `json:"players"`
	BuzzerLocked bool               `json:"buzzer_locked"`
	FirstBuzz    *game.BuzzerEvent  `json:"first_buzz,omitempty"`
	BuzzLedger   []game.BuzzerEvent `json:"buzz_ledger"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Snapshot copies the room state under the read lock.
func (r *Room) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]game.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, *p)
	}

	var first *game.BuzzerEvent
	if r.firstBuzz != nil {
		ev := *r.firstBuzz
		first = &ev
	}

	ledger := make([]game.BuzzerEvent, len(r.buzzLedger))
	copy(ledger, r.buzzLedger)

	return Snapshot{
		Code:         r.Code,
		TeamCount:    r.TeamCount,
		HostName:     r.HostName,
		Players:      players,
		BuzzerLocked: r.buzzerLocked,
		FirstBuzz:    first,
		BuzzLedger:   ledger,
		CreatedAt:    r.CreatedAt,
	}
}

// BroadcastMessage sends a message to all connected players in the room.
func (r *Room) BroadcastMessage(msg ws.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, client := range r.clients {
		client.SendMessage(msg)
	}
}

// SendToPlayer sends a message to a specific player.
func (r *Room) SendToPlayer(playerID string, msg ws.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if client, ok := r.clients[playerID]; ok {
		client.SendMessage(msg)
	}
}

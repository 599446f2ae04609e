package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/bergtobias/quiz/internal/room"
	"github.com/bergtobias/quiz/internal/ws"
)

// LobbyHandler handles room lifecycle messages: create, join, get,
// delete, and transport disconnects.
type LobbyHandler struct {
	registry  *room.Registry
	directory *room.Directory
}

// NewLobbyHandler creates a new lobby handler.
func NewLobbyHandler(registry *room.Registry, directory *room.Directory) *LobbyHandler {
	return &LobbyHandler{
		registry:  registry,
		directory: directory,
	}
}

type createRoomRequest struct {
	TeamCount int    `json:"team_count"`
	HostName  string `json:"host_name"`
}

type createRoomResponse struct {
	Success  bool   `json:"success"`
	RoomCode string `json:"room_code,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HandleCreateRoom handles room creation. The creator receives the new
// code in the ack and enters the room through a regular join.
func (h *LobbyHandler) HandleCreateRoom(client *ws.Client, msg ws.Message) {
	var req createRoomRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid create-room payload"))
		return
	}

	r, err := h.registry.Create(req.TeamCount, req.HostName)
	if err != nil {
		resp, _ := ws.NewMessage(ws.TypeCreateRoom, createRoomResponse{
			Success: false,
			Error:   err.Error(),
		})
		client.SendMessage(resp)
		return
	}

	resp, _ := ws.NewMessage(ws.TypeCreateRoom, createRoomResponse{
		Success:  true,
		RoomCode: r.Code,
	})
	client.SendMessage(resp)
}

type joinRoomRequest struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
	IsHost     bool   `json:"is_host"`
}

// HandleJoinRoom handles joining a room, both first joins and rejoins
// under an existing name.
func (h *LobbyHandler) HandleJoinRoom(client *ws.Client, msg ws.Message) {
	var req joinRoomRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
		client.SendMessage(ws.NewErrorMessage("room code and player name are required"))
		return
	}

	r := h.registry.Get(req.RoomCode)
	if r == nil {
		client.SendMessage(ws.NewErrorMessage("room not found"))
		return
	}

	player, err := r.Join(req.PlayerName, req.IsHost, client)
	if err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	resp, _ := ws.NewMessage(ws.TypePlayerJoined, player)
	client.SendMessage(resp)

	// A connection speaks for one player at a time. If it was bound to
	// another player, detach that player now; otherwise its room would
	// keep broadcasting to a channel the hub may have closed.
	if assoc, ok := h.directory.Resolve(client.ID); ok && (assoc.RoomCode != r.Code || assoc.PlayerID != player.ID) {
		if old := h.registry.Get(assoc.RoomCode); old != nil {
			if left := old.Disconnect(assoc.PlayerID); left != nil {
				broadcastRoomState(old)
				slog.Info("player left room", "player", left.Name, "room", old.Code)
			}
		}
	}
	h.directory.Bind(client.ID, r.Code, player.ID)

	broadcastRoomState(r)

	slog.Info("player joined room", "player", player.Name, "room", r.Code, "team", player.Team, "host", player.IsHost)
}

type getRoomRequest struct {
	RoomCode string `json:"room_code"`
}

type getRoomResponse struct {
	Success bool           `json:"success"`
	Room    *room.Snapshot `json:"room,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// HandleGetRoom returns a room snapshot without side effects.
func (h *LobbyHandler) HandleGetRoom(client *ws.Client, msg ws.Message) {
	var req getRoomRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.RoomCode == "" {
		client.SendMessage(ws.NewErrorMessage("room code is required"))
		return
	}

	r := h.registry.Get(req.RoomCode)
	if r == nil {
		resp, _ := ws.NewMessage(ws.TypeGetRoom, getRoomResponse{
			Success: false,
			Error:   "room not found",
		})
		client.SendMessage(resp)
		return
	}

	snapshot := r.Snapshot()
	resp, _ := ws.NewMessage(ws.TypeGetRoom, getRoomResponse{
		Success: true,
		Room:    &snapshot,
	})
	client.SendMessage(resp)
}

type deleteRoomRequest struct {
	RoomCode string `json:"room_code"`
}

// HandleDeleteRoom tears a room down: members are notified first, then
// their connection associations and the room itself are removed. Only
// the host may delete; deleting an unknown code is a no-op.
func (h *LobbyHandler) HandleDeleteRoom(client *ws.Client, msg ws.Message) {
	var req deleteRoomRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.RoomCode == "" {
		client.SendMessage(ws.NewErrorMessage("room code is required"))
		return
	}

	r := h.registry.Get(req.RoomCode)
	if r == nil {
		return
	}

	assoc, ok := h.directory.Resolve(client.ID)
	if !ok || assoc.RoomCode != r.Code {
		client.SendMessage(ws.NewErrorMessage("only the host can do that"))
		return
	}
	if p := r.Player(assoc.PlayerID); p == nil || !p.IsHost {
		client.SendMessage(ws.NewErrorMessage("only the host can do that"))
		return
	}

	r.BroadcastMessage(ws.Message{Type: ws.TypeRoomDeleted})
	h.directory.DropRoom(r.Code)
	h.registry.Delete(r.Code)

	slog.Info("room deleted by host", "room", r.Code, "player", assoc.PlayerID)
}

// HandleDisconnect drops the connection's association. The player stays
// in the roster for a later rejoin by name; empty rooms are left to
// the reaper.
func (h *LobbyHandler) HandleDisconnect(client *ws.Client) {
	assoc, ok := h.directory.Unbind(client.ID)
	if !ok {
		return
	}

	r := h.registry.Get(assoc.RoomCode)
	if r == nil {
		return
	}

	if p := r.Disconnect(assoc.PlayerID); p != nil {
		broadcastRoomState(r)
		slog.Info("player disconnected", "player", p.Name, "room", r.Code)
	}
}

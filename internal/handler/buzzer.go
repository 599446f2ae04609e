package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/bergtobias/quiz/internal/room"
	"github.com/bergtobias/quiz/internal/ws"
)

// BuzzerHandler handles buzzer round messages: press and reset.
type BuzzerHandler struct {
	registry  *room.Registry
	directory *room.Directory
}

// NewBuzzerHandler creates a new buzzer handler.
func NewBuzzerHandler(registry *room.Registry, directory *room.Directory) *BuzzerHandler {
	return &BuzzerHandler{
		registry:  registry,
		directory: directory,
	}
}

type pressBuzzerRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
}

// HandlePressBuzzer runs the buzzer race. A losing press (round already
// locked, unknown player, unknown room) is dropped without a reply;
// clients learn the outcome from the broadcast.
func (h *BuzzerHandler) HandlePressBuzzer(client *ws.Client, msg ws.Message) {
	var req pressBuzzerRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid press-buzzer payload"))
		return
	}

	r := h.registry.Get(req.RoomCode)
	if r == nil {
		return
	}

	event, ok := r.PressBuzzer(req.PlayerID)
	if !ok {
		return
	}

	pressed, _ := ws.NewMessage(ws.TypeBuzzerPressed, event)
	r.BroadcastMessage(pressed)
	broadcastRoomState(r)

	slog.Info("buzzer won", "room", r.Code, "player", event.PlayerName, "team", event.Team)
}

type resetBuzzerRequest struct {
	RoomCode string `json:"room_code"`
}

// HandleResetBuzzer reopens the round. The caller is identified through
// the connection directory and must be the room's host.
func (h *BuzzerHandler) HandleResetBuzzer(client *ws.Client, msg ws.Message) {
	var req resetBuzzerRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.RoomCode == "" {
		client.SendMessage(ws.NewErrorMessage("room code is required"))
		return
	}

	r := h.registry.Get(req.RoomCode)
	if r == nil {
		client.SendMessage(ws.NewErrorMessage("room not found"))
		return
	}

	assoc, ok := h.directory.Resolve(client.ID)
	if !ok || assoc.RoomCode != r.Code {
		client.SendMessage(ws.NewErrorMessage("only the host can do that"))
		return
	}

	if err := r.ResetBuzzer(assoc.PlayerID); err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	broadcastRoomState(r)

	slog.Info("buzzer reset", "room", r.Code, "player", assoc.PlayerID)
}

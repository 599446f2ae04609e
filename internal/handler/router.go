package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/bergtobias/quiz/internal/room"
	"github.com/bergtobias/quiz/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler. It
// owns the two process-wide registries: the room registry and the
// connection directory.
type Router struct {
	registry  *room.Registry
	directory *room.Directory

	lobby  *LobbyHandler
	buzzer *BuzzerHandler
}

// NewRouter creates a new message router.
func NewRouter(registry *room.Registry, directory *room.Directory) *Router {
	r := &Router{
		registry:  registry,
		directory: directory,
	}
	r.lobby = NewLobbyHandler(registry, directory)
	r.buzzer = NewBuzzerHandler(registry, directory)
	return r
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Lobby messages
	case ws.TypeCreateRoom:
		r.lobby.HandleCreateRoom(cm.Client, msg)
	case ws.TypeJoinRoom:
		r.lobby.HandleJoinRoom(cm.Client, msg)
	case ws.TypeGetRoom:
		r.lobby.HandleGetRoom(cm.Client, msg)
	case ws.TypeDeleteRoom:
		r.lobby.HandleDeleteRoom(cm.Client, msg)

	// Buzzer messages
	case ws.TypePressBuzzer:
		r.buzzer.HandlePressBuzzer(cm.Client, msg)
	case ws.TypeResetBuzzer:
		r.buzzer.HandleResetBuzzer(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.lobby.HandleDisconnect(client)
}

// broadcastRoomState fans the current room snapshot out to every
// connected member. All mutations go through the hub's single loop, so
// members observe snapshots in mutation order.
func broadcastRoomState(r *room.Room) {
	msg, err := ws.NewMessage(ws.TypeRoomState, r.Snapshot())
	if err != nil {
		slog.Error("failed to build room state", "room", r.Code, "error", err)
		return
	}
	r.BroadcastMessage(msg)
}

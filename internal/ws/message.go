package ws

import "encoding/json"

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - inbound commands
const (
	TypeCreateRoom  = "create-room"
	TypeJoinRoom    = "join-room"
	TypePressBuzzer = "press-buzzer"
	TypeResetBuzzer = "reset-buzzer"
	TypeGetRoom     = "get-room"
	TypeDeleteRoom  = "delete-room"
)

// Message types - outbound events
const (
	TypeRoomState     = "room-state"
	TypePlayerJoined  = "player-joined"
	TypeBuzzerPressed = "buzzer-pressed"
	TypeRoomDeleted   = "room-deleted"
	TypeError         = "error"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}

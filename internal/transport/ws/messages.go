package ws

import (
	"encoding/json"
	"time"

	"jeopardy/internal/app"
	"jeopardy/internal/domain"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client -> Server message types
const (
	MsgAddPlayer    MessageType = "add_player"
	MsgRemovePlayer MessageType = "remove_player"
	MsgStartGame    MessageType = "start_game"
	MsgEndGame      MessageType = "end_game"
	MsgSelectClue   MessageType = "select_clue"
	MsgSetWager     MessageType = "set_wager"
	MsgRespond      MessageType = "respond"
	MsgMarkDone     MessageType = "mark_done"
	MsgRespondFinal MessageType = "respond_final"
	MsgSetScore     MessageType = "set_score"
	MsgPing         MessageType = "ping"
)

// Server -> Client message types
const (
	MsgConnected MessageType = "connected"
	MsgEvent     MessageType = "event"
	MsgError     MessageType = "error"
	MsgPong      MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   any         `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload any) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Client message payloads

// AddPlayerPayload is the payload for add_player
type AddPlayerPayload struct {
	Name string `json:"name"`
}

// PlayerPayload is the payload for remove_player
type PlayerPayload struct {
	PlayerID domain.PlayerID `json:"playerId"`
}

// SelectCluePayload is the payload for select_clue
type SelectCluePayload struct {
	ClueID domain.ClueID `json:"clueId"`
}

// SetWagerPayload is the payload for set_wager
type SetWagerPayload struct {
	Amount int `json:"amount"`
}

// RespondPayload is the payload for respond
type RespondPayload struct {
	PlayerID domain.PlayerID `json:"playerId"`
	Correct  bool            `json:"correct"`
}

// RespondFinalPayload is the payload for respond_final
type RespondFinalPayload struct {
	PlayerID domain.PlayerID `json:"playerId"`
	Wager    int             `json:"wager"`
	Correct  bool            `json:"correct"`
}

// SetScorePayload is the payload for set_score
type SetScorePayload struct {
	PlayerID domain.PlayerID `json:"playerId"`
	Score    int             `json:"score"`
}

// Server message payloads

// ConnectedPayload is the payload for connected message
type ConnectedPayload struct {
	ClientID string    `json:"clientId"`
	State    app.State `json:"state"`

	// Language is the locale chosen for this console's error messages
	Language  string   `json:"language"`
	Languages []string `json:"languages"`
}

// ErrorPayload is the payload for error message
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrCodeInvalidMessage is sent for undecodable or unknown messages. Command
// failures use app.ErrorCode.
const ErrCodeInvalidMessage = "INVALID_MESSAGE"

package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/text/language"

	"jeopardy/internal/app"
	"jeopardy/internal/domain"
	"jeopardy/internal/i18n"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client is one host console connected over WebSocket
type Client struct {
	conn       *websocket.Conn
	controller *app.Controller
	id         string
	lang       language.Tag
	send       chan []byte
	done       chan struct{}
	logger     *slog.Logger
	mu         sync.Mutex
	closed     bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, controller *app.Controller, id string, lang language.Tag, logger *slog.Logger) *Client {
	return &Client{
		conn:       conn,
		controller: controller,
		id:         id,
		lang:       lang,
		send:       make(chan []byte, sendBufferSize),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// ID implements app.ClientConnection
func (c *Client) ID() string {
	return c.id
}

// Send implements app.ClientConnection. Game events are wrapped in an event
// message; anything else is sent as is.
func (c *Client) Send(message any) error {
	if event, ok := message.(*domain.GameEvent); ok {
		message = NewServerMessage(MsgEvent, event)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.logger.Warn("send buffer full, message dropped", "clientID", c.id)
		return nil
	}
}

// Close implements app.ClientConnection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.controller.UnregisterClient(c.id)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches one console command to the controller
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return
	}

	var err error
	switch msg.Type {
	case MsgAddPlayer:
		var p AddPlayerPayload
		if err = decode(msg.Payload, &p); err == nil {
			_, err = c.controller.AddPlayer(p.Name)
		}
	case MsgRemovePlayer:
		var p PlayerPayload
		if err = decode(msg.Payload, &p); err == nil {
			err = c.controller.RemovePlayer(p.PlayerID)
		}
	case MsgStartGame:
		err = c.controller.StartGame()
	case MsgEndGame:
		err = c.controller.EndGame()
	case MsgSelectClue:
		var p SelectCluePayload
		if err = decode(msg.Payload, &p); err == nil {
			err = c.controller.SelectClue(p.ClueID)
		}
	case MsgSetWager:
		var p SetWagerPayload
		if err = decode(msg.Payload, &p); err == nil {
			err = c.controller.SetDailyDoubleWager(p.Amount)
		}
	case MsgRespond:
		var p RespondPayload
		if err = decode(msg.Payload, &p); err == nil {
			err = c.controller.Respond(p.PlayerID, p.Correct)
		}
	case MsgMarkDone:
		err = c.controller.MarkDone()
	case MsgRespondFinal:
		var p RespondFinalPayload
		if err = decode(msg.Payload, &p); err == nil {
			err = c.controller.RespondFinal(p.PlayerID, p.Wager, p.Correct)
		}
	case MsgSetScore:
		var p SetScorePayload
		if err = decode(msg.Payload, &p); err == nil {
			err = c.controller.SetScore(p.PlayerID, p.Score)
		}
	case MsgPing:
		c.sendPong()
		return
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
		return
	}

	if err == nil {
		return
	}
	var perr *payloadError
	if errors.As(err, &perr) {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return
	}

	c.logger.Debug("command rejected", "type", msg.Type, "error", err)
	c.sendError(app.ErrorCode(err), i18n.Message(err, c.lang))
}

var errMissingPayload = errors.New("missing payload")

type payloadError struct{ err error }

func (e *payloadError) Error() string { return "invalid payload: " + e.err.Error() }

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return &payloadError{err: errMissingPayload}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &payloadError{err: err}
	}
	return nil
}

// sendConnected sends the current state to a newly connected console
func (c *Client) sendConnected() {
	languages := make([]string, 0, len(i18n.Supported()))
	for _, tag := range i18n.Supported() {
		languages = append(languages, tag.String())
	}

	c.Send(NewServerMessage(MsgConnected, &ConnectedPayload{
		ClientID:  c.id,
		State:     c.controller.State(),
		Language:  c.lang.String(),
		Languages: languages,
	}))
}

// sendError sends an error message to the client
func (c *Client) sendError(code, message string) {
	c.Send(NewServerMessage(MsgError, &ErrorPayload{
		Code:    code,
		Message: message,
	}))
}

// sendPong sends a pong message in response to ping
func (c *Client) sendPong() {
	c.Send(NewServerMessage(MsgPong, nil))
}

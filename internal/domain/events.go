package domain

import "time"

// EventType represents the type of game event
type EventType string

const (
	EventClueSetLoaded      EventType = "CLUE_SET_LOADED"
	EventRosterChanged      EventType = "ROSTER_CHANGED"
	EventGameStarted        EventType = "GAME_STARTED"
	EventClueSelected       EventType = "CLUE_SELECTED"
	EventWagerSet           EventType = "WAGER_SET"
	EventResponseRuled      EventType = "RESPONSE_RULED"
	EventClueDone           EventType = "CLUE_DONE"
	EventFinalRoundStarted  EventType = "FINAL_ROUND_STARTED"
	EventFinalResponseRuled EventType = "FINAL_RESPONSE_RULED"
	EventScoreSet           EventType = "SCORE_SET"
	EventGameEnded          EventType = "GAME_ENDED"
)

// GameEvent represents something that changed the state shown to the host
type GameEvent struct {
	Type      EventType `json:"type"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent creates a new game event
func NewEvent(eventType EventType, payload any) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

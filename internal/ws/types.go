package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewErrorMessage wraps msg so the payload stays valid JSON.
func NewErrorMessage(msg string) Message {
	return Message{Type: MessageTypeError, Payload: mustMarshal(ErrorPayload{Error: msg})}
}

// mustMarshal is for payload types made only of strings, which always encode.
func mustMarshal(v interface{}) json.RawMessage {
	payload, err := json.Marshal(v)
	if err != nil {
		panic("ws: marshal " + err.Error())
	}
	return payload
}

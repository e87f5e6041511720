package messages

import (
	"encoding/json"
	"fmt"
)

// Message types
const (
	MessageTypeSnapshot = "snapshot"
	MessageTypeUI       = "ui"
)

// Message represents a generic message for serialization/deserialization
type Message struct {
	Type    string          `json:"type"`
	Frame   uint64          `json:"frame"`
	Payload json.RawMessage `json:"payload"`
}

// NewMessage builds a message with the JSON encoding of payload.
func NewMessage(messageType string, frame uint64, payload interface{}) (*Message, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %v", messageType, err)
	}
	return &Message{
		Type:    messageType,
		Frame:   frame,
		Payload: b,
	}, nil
}

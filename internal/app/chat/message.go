/*
Package chat contains the client-side logic for the community chat: the connection
lifecycle, message history synchronization, and live message delivery.

This file defines the ChatMessage model, the JSON event envelope spoken with the
chat service, and the converters from wire payloads to display messages.
*/
package chat

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// RoomGeneral is the single shared room every client joins.
	RoomGeneral = "general"

	// MaxMessageLength bounds a message at draft time. Incoming messages are
	// not re-validated against it.
	MaxMessageLength = 150
)

// Client-to-server and server-to-client event names.
const (
	EventJoinRoom       = "join-room"
	EventSendMessage    = "send-message"
	EventMessageHistory = "message-history"
	EventReceiveMessage = "receive-message"
	EventError          = "error"
)

// ChatMessage is one rendered chat entry. Immutable once constructed.
type ChatMessage struct {
	// ID is the server-assigned id, or a client-generated fallback used for
	// display keying only and never sent back to the server.
	ID string `json:"id"`

	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Message  string `json:"message"`

	// Timestamp is the server-assigned creation time (ISO datetime), or the
	// client capture time when the server omitted one.
	Timestamp string `json:"timestamp"`
}

// Envelope is the JSON frame exchanged with the chat service.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope builds an Envelope with the payload encoded in place.
func NewEnvelope(event string, payload any) (Envelope, error) {
	if payload == nil {
		return Envelope{Event: event}, nil
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode %s payload: %w", event, err)
	}

	return Envelope{Event: event, Data: encoded}, nil
}

// wireMessage is the shape of a message as the chat service delivers it.
type wireMessage struct {
	ID        string `json:"_id,omitempty"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// outboundMessage is the payload of a send-message event.
type outboundMessage struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Message  string `json:"message"`
	Room     string `json:"room"`
}

// fromHistory converts a replayed message. When the server omitted an id, the
// fallback is composed of the sender id and the replay index.
func (w wireMessage) fromHistory(index int, now time.Time) ChatMessage {
	id := w.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", w.UserID, index)
	}

	return ChatMessage{
		ID:        id,
		UserID:    w.UserID,
		UserName:  w.UserName,
		Message:   w.Message,
		Timestamp: w.timestampOr(now),
	}
}

// fromLive converts a live message. When the server omitted an id, the
// fallback is composed of the sender id and the client receive time.
func (w wireMessage) fromLive(now time.Time) ChatMessage {
	id := w.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", w.UserID, now.UnixMilli())
	}

	return ChatMessage{
		ID:        id,
		UserID:    w.UserID,
		UserName:  w.UserName,
		Message:   w.Message,
		Timestamp: w.timestampOr(now),
	}
}

// timestampOr returns the server creation time, or now formatted as ISO datetime.
func (w wireMessage) timestampOr(now time.Time) string {
	if w.CreatedAt != "" {
		return w.CreatedAt
	}
	return now.UTC().Format(time.RFC3339)
}

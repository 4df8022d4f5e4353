package realtime

import (
	"time"

	"github.com/google/uuid"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeEvent       MessageType = "event"
	MessageTypePing        MessageType = "ping"
	MessageTypePong        MessageType = "pong"
	MessageTypeError       MessageType = "error"
	MessageTypeSubscribe   MessageType = "subscribe"
	MessageTypeUnsubscribe MessageType = "unsubscribe"
	MessageTypeAck         MessageType = "ack"
)

// Push event names consumed by web and mobile clients
const (
	EventConnected     = "connected"
	EventNewOrder      = "newOrder"
	EventCartUpdated   = "cartUpdated"
	EventCourseUpdated = "courseUpdated"
	EventNewCourse     = "newCourse"
	EventNewLesson     = "newLesson"

	EventNewNotification = "newNotification"
)

// GroupAdmins is the group every admin connection joins on register
const GroupAdmins = "admins"

// Message represents a WebSocket message
type Message struct {
	ID        string      `json:"id,omitempty"`
	Type      MessageType `json:"type"`
	Event     string      `json:"event,omitempty"`
	Group     string      `json:"group,omitempty"`
	UserID    string      `json:"userId,omitempty"`
	Data      any         `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEventMessage creates a new event message
func NewEventMessage(event string, data any) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Type:      MessageTypeEvent,
		Event:     event,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// Broadcaster is the push surface exposed to services
type Broadcaster interface {
	// PushToUser delivers an event to every connection of one user
	PushToUser(userID string, event string, data any)

	// PushToAdmins delivers an event to every connected admin
	PushToAdmins(event string, data any)

	// PushBroadcast delivers an event to every connected client
	PushBroadcast(event string, data any)
}

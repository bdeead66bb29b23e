// Package chat delivers messages that the client addresses to the local
// user, such as the result of a slash command.
package chat

import (
	"fmt"
	"time"
)

// MessageType selects how a self message is presented.
type MessageType int

const (
	Default MessageType = iota
	Info
	Error
)

// String returns the string representation of a message type
func (t MessageType) String() string {
	switch t {
	case Default:
		return "default"
	case Info:
		return "info"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("MessageType(%d)", int(t))
	}
}

// Message is a private message from the server to ourselves. Text may
// contain HTML markup.
type Message struct {
	Room     string
	Text     string
	Type     MessageType
	Datetime time.Time
}

// Sender delivers self messages to a room.
type Sender interface {
	SendSelfPM(text, room string, typ MessageType)
}

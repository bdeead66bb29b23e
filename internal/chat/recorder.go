package chat

import (
	"sync"

	"github.com/coder/quartz"
)

// Recorder keeps every self message in memory.
type Recorder struct {
	clock quartz.Clock

	mu       sync.Mutex
	messages []Message
}

// NewRecorder creates a recorder. A nil clock uses the real clock.
func NewRecorder(clock quartz.Clock) *Recorder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Recorder{clock: clock}
}

// SendSelfPM implements Sender.
func (r *Recorder) SendSelfPM(text, room string, typ MessageType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{
		Room:     room,
		Text:     text,
		Type:     typ,
		Datetime: r.clock.Now(),
	})
}

// Messages returns a copy of the recorded messages in order.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Count returns how many messages of the given type were recorded.
func (r *Recorder) Count(typ MessageType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, msg := range r.messages {
		if msg.Type == typ {
			n++
		}
	}
	return n
}

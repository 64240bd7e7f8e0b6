// Package notify is the fire-and-forget message channel between the account
// store and whatever shows messages to the user. Notifiers never report
// failures back; a missing notifier only makes the client quieter.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/carflow/internal/logging"
	"github.com/google/uuid"
)

// Severity controls how a message is rendered.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Message is one user-visible notification.
type Message struct {
	ID          string
	Title       string
	Description string
	Severity    Severity
}

// Info builds a default-severity message with a fresh id.
func Info(title, description string) Message {
	return Message{ID: uuid.NewString(), Title: title, Description: description, Severity: SeverityDefault}
}

// Failure builds a destructive message with a fresh id.
func Failure(title, description string) Message {
	return Message{ID: uuid.NewString(), Title: title, Description: description, Severity: SeverityDestructive}
}

// Notifier shows messages to the user.
type Notifier interface {
	Notify(ctx context.Context, m Message)
}

// Nop drops every message.
type Nop struct{}

func (Nop) Notify(context.Context, Message) {}

// LogNotifier writes messages to a logger.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, m Message) {
	args := []any{"id", m.ID, "title", m.Title, "description", m.Description}
	if m.Severity == SeverityDestructive {
		n.log.Warn(ctx, "notification", args...)
		return
	}
	n.log.Info(ctx, "notification", args...)
}

// WriterNotifier prints messages as single lines, e.g. to the terminal:
//
//	[ok] Signed in: Welcome, John Doe!
//	[!!] Login failed: Invalid email or password
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(_ context.Context, m Message) {
	mark := "[ok]"
	if m.Severity == SeverityDestructive {
		mark = "[!!]"
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "%s %s: %s\n", mark, m.Title, m.Description)
}

// Multi fans a message out to several notifiers in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, msg Message) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, msg)
		}
	}
}

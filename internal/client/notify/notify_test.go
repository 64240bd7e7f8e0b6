package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/carflow/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	got []Message
}

func (r *recorder) Notify(_ context.Context, m Message) { r.got = append(r.got, m) }

func TestConstructors_SetSeverityAndID(t *testing.T) {
	i := Info("Signed in", "Welcome")
	f := Failure("Login failed", "Invalid email or password")

	assert.Equal(t, SeverityDefault, i.Severity)
	assert.Equal(t, SeverityDestructive, f.Severity)

	_, err := uuid.Parse(i.ID)
	require.NoError(t, err)
	assert.NotEqual(t, i.ID, f.ID)
}

func TestWriterNotifier_Format(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	n.Notify(context.Background(), Info("Signed in", "Welcome, John Doe!"))
	n.Notify(context.Background(), Failure("Login failed", "Invalid email or password"))

	assert.Equal(t,
		"[ok] Signed in: Welcome, John Doe!\n[!!] Login failed: Invalid email or password\n",
		buf.String())
}

func TestLogNotifier_LevelsBySeverity(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	n := NewLogNotifier(log)

	n.Notify(context.Background(), Info("Profile updated", "saved"))
	n.Notify(context.Background(), Failure("Error", "boom"))

	out := buf.String()
	assert.Contains(t, out, `level=INFO msg=notification`)
	assert.Contains(t, out, `title="Profile updated"`)
	assert.Contains(t, out, `level=WARN msg=notification`)
}

func TestMulti_FansOutAndSkipsNil(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi{a, nil, b, Nop{}}

	msg := Info("t", "d")
	m.Notify(context.Background(), msg)

	require.Len(t, a.got, 1)
	require.Len(t, b.got, 1)
	assert.Equal(t, msg, a.got[0])
}

package systems

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger writes through a charmbracelet logger and keeps a copy of every
// line in a MessageLog. Info output can be muted; warnings and errors are
// always recorded.
type Logger struct {
	out     *log.Logger
	history *MessageLog
	enabled bool
	now     func() time.Time
}

// NewLogger creates a logger. A nil out falls back to log.Default().
func NewLogger(out *log.Logger, history *MessageLog) *Logger {
	if out == nil {
		out = log.Default()
	}
	if history == nil {
		history = NewMessageLog(100)
	}
	return &Logger{
		out:     out,
		history: history,
		enabled: true,
		now:     time.Now,
	}
}

// SetEnabled switches info output on or off
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// History returns the message log backing this logger
func (l *Logger) History() *MessageLog {
	return l.history
}

// Debug logs to the output only; debug lines are not kept in history
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.enabled {
		return
	}
	l.out.Debug(msg, keyvals...)
}

// Info logs an informational message
func (l *Logger) Info(msg string, keyvals ...any) {
	if !l.enabled {
		return
	}
	l.out.Info(msg, keyvals...)
	l.store(MessageTypeInfo, msg, keyvals)
}

// Warn logs a warning
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.out.Warn(msg, keyvals...)
	l.store(MessageTypeWarn, msg, keyvals)
}

// Error logs an error
func (l *Logger) Error(msg string, keyvals ...any) {
	l.out.Error(msg, keyvals...)
	l.store(MessageTypeError, msg, keyvals)
}

func (l *Logger) store(t MessageType, msg string, keyvals []any) {
	l.history.Add(ColoredMessage{
		Time: l.now(),
		Text: formatKeyvals(msg, keyvals),
		Type: t,
	})
}

// formatKeyvals renders "msg | k=v k=v" for the history view
func formatKeyvals(msg string, keyvals []any) string {
	if len(keyvals) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	b.WriteString(" |")
	for i := 0; i < len(keyvals); i += 2 {
		b.WriteByte(' ')
		if i+1 < len(keyvals) {
			fmt.Fprintf(&b, "%v=%v", keyvals[i], keyvals[i+1])
		} else {
			fmt.Fprintf(&b, "%v", keyvals[i])
		}
	}
	return b.String()
}

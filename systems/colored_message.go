package systems

import (
	"image/color"
	"time"
)

// MessageType defines the severity of a logged message
type MessageType int

const (
	// MessageTypeInfo is for routine messages (light gray)
	MessageTypeInfo MessageType = iota
	// MessageTypeWarn is for recoverable problems (bright yellow)
	MessageTypeWarn
	// MessageTypeError is for failed operations (red)
	MessageTypeError
)

// String returns the lowercase severity name
func (t MessageType) String() string {
	switch t {
	case MessageTypeWarn:
		return "warn"
	case MessageTypeError:
		return "error"
	default:
		return "info"
	}
}

// ColoredMessage stores a message with its severity and time
type ColoredMessage struct {
	Time time.Time
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeWarn:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeError:
		return color.RGBA{255, 100, 100, 255} // Red
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}

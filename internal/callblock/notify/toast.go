package notify

import "context"

// SpanTelephone marks a text range to be read as a phone number by screen
// readers.
const SpanTelephone = "telephone"

// Span annotates a byte range of a message text.
type Span struct {
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// SpannedMessage is display text with accessibility annotations.
type SpannedMessage struct {
	Text  string `json:"text"`
	Spans []Span `json:"spans,omitempty"`
}

// Duration is how long a toast stays visible.
type Duration int

const (
	// DurationShort is the default short-lived toast.
	DurationShort Duration = iota
	// DurationLong keeps the toast visible longer.
	DurationLong
)

// Toaster displays a short-lived ephemeral message.
type Toaster interface {
	Show(ctx context.Context, msg SpannedMessage, d Duration) error
}

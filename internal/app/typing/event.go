package typing

// EventType represents an animator event type.
type EventType int

const (
	EventPhraseTyped   EventType = iota // Current phrase fully displayed
	EventPhraseCleared                  // Current phrase fully deleted, rotation advanced
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventPhraseTyped:
		return "phrase_typed"
	case EventPhraseCleared:
		return "phrase_cleared"
	default:
		return "unknown"
	}
}

// Event represents an animator event.
type Event struct {
	Type        EventType
	PhraseIndex int    // Index of the phrase the event refers to
	Phrase      string // The phrase itself
}

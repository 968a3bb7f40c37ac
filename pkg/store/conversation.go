package store

// Turn is a single message inside a conversation transcript.
type Turn struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// Conversation represents the active dialogue state for one session key.
// The first turn is always the system instruction turn.
type Conversation struct {
	ID    string `json:"id"` // caller-supplied session key
	Turns []Turn `json:"turns"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Clone returns a snapshot copy so callers can read the transcript without
// holding a reference into the store's own state.
func (c *Conversation) Clone() *Conversation {
	turns := make([]Turn, len(c.Turns))
	copy(turns, c.Turns)
	return &Conversation{ID: c.ID, Turns: turns}
}

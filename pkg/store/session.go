package store

// Role constants for history turns
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// RetrievedSection is a statutory section returned by vector search.
// Score is cosine similarity in [0,1]; higher means more relevant.
type RetrievedSection struct {
	Act           string  `json:"act"`
	SectionNumber string  `json:"section_number"`
	Text          string  `json:"text"`
	Score         float64 `json:"score"`
}

// Reference is a citable provision derived from a retrieved section plus a
// generated one-line summary. FullText is pre-truncated for display.
type Reference struct {
	Act           string `json:"act"`
	SectionNumber string `json:"section_number"`
	Summary       string `json:"summary"`
	FullText      string `json:"full_text"`
}

// Case is a related case-law citation from the external search site.
type Case struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Turn is one (role, text) entry in a session's history. Never mutated.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// TurnContext captures the most recent resolved turn of a session.
// Query, Answer, References and Cases always describe the same turn.
type TurnContext struct {
	Query      string      `json:"query"`
	Answer     string      `json:"answer"`
	References []Reference `json:"references"`
	Cases      []Case      `json:"cases"`
}

// Session is the per-session conversational state.
// Current is nil until the first fresh turn resolves.
type Session struct {
	ID         string       `json:"id"`
	Current    *TurnContext `json:"current_context"`
	References []Reference  `json:"references"`
	Cases      []Case       `json:"cases"`
	History    []Turn       `json:"history"`
}

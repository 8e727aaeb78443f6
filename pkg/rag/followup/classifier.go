package followup

import (
	"strings"

	"legal-advisor-be/pkg/store"
)

// Classifier decides whether a query continues the session's prior turn.
// Kept behind an interface so the lexicon heuristic can be swapped for a
// learned classifier without touching the orchestrator.
type Classifier interface {
	IsFollowUp(query string, session *store.Session) bool
}

// LexiconClassifier matches a fixed set of continuation markers. A true
// follow-up phrased without any marker is treated as a fresh query; that
// false negative is an accepted tradeoff of the heuristic.
type LexiconClassifier struct {
	markers []string
}

var defaultMarkers = []string{
	"follow up",
	"previous",
	"explain",
	"more info",
	"about that",
}

func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{markers: defaultMarkers}
}

func (c *LexiconClassifier) IsFollowUp(query string, session *store.Session) bool {
	if session == nil || session.Current == nil {
		return false
	}

	lowered := strings.ToLower(query)
	for _, marker := range c.markers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

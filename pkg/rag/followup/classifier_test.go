package followup

import (
	"testing"

	"legal-advisor-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestIsFollowUp(t *testing.T) {
	resolved := &store.Session{
		ID:      "s1",
		Current: &store.TurnContext{Query: "road accident", Answer: "file a claim"},
	}

	tests := []struct {
		name    string
		query   string
		session *store.Session
		want    bool
	}{
		{
			name:    "no prior turn always fresh",
			query:   "please explain the previous answer",
			session: &store.Session{ID: "s1"},
			want:    false,
		},
		{
			name:    "nil session",
			query:   "explain",
			session: nil,
			want:    false,
		},
		{
			name:    "marker explain",
			query:   "please EXPLAIN more",
			session: resolved,
			want:    true,
		},
		{
			name:    "marker about that",
			query:   "what about that section",
			session: resolved,
			want:    true,
		},
		{
			name:    "marker follow up",
			query:   "a quick follow up question",
			session: resolved,
			want:    true,
		},
		{
			name:    "no marker is fresh even with prior turn",
			query:   "what is the penalty for theft",
			session: resolved,
			want:    false,
		},
	}

	c := NewLexiconClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsFollowUp(tt.query, tt.session))
		})
	}
}

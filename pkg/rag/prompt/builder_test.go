package prompt

import (
	"strings"
	"testing"

	"legal-advisor-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestFollowUpContextRendersPriorTurn(t *testing.T) {
	out := FollowUpContext(&store.TurnContext{
		Query:  "What should I do about a road accident?",
		Answer: "File an FIR.",
	})

	assert.Equal(t, "Previous: What should I do about a road accident?\nAnswer: File an FIR.", out)
}

func TestFollowUpContextNilTurn(t *testing.T) {
	// A classifier implementation may report a follow-up on a session
	// without a prior turn; that must render as no context, not panic.
	assert.Equal(t, "", FollowUpContext(nil))
}

func TestDirectAnswerWithAndWithoutContext(t *testing.T) {
	assert.Equal(t, "Legal steps for: theft", DirectAnswer("theft", ""))
	assert.Equal(t, "Generate 3 legal steps for: theft. Context: IPC Section 378: ...", DirectAnswer("theft", "IPC Section 378: ..."))
}

func TestTruncateIsRuneSafe(t *testing.T) {
	s := strings.Repeat("§", 10)
	assert.Equal(t, strings.Repeat("§", 4), Truncate(s, 4))
	assert.Equal(t, s, Truncate(s, 10))
	assert.Equal(t, s, Truncate(s, 20))
}

package compose

import (
	"context"
	"fmt"
	"strings"

	"legal-advisor-be/pkg/rag/prompt"
	"legal-advisor-be/pkg/rag/response"
	"legal-advisor-be/pkg/store"
)

// Section headers, rendered in this fixed order.
const (
	HeaderSteps           = "🚨 Immediate Steps:"
	HeaderProvisions      = "⚖️ Relevant Provisions:"
	HeaderRecommendations = "📌 Key Recommendations:"
	HeaderCases           = "🔗 Related Cases:"
)

const (
	maxSteps           = 3
	maxProvisions      = 3
	maxRecommendations = 3
	maxCases           = 2
	caseTitleLimit     = 50
)

// Composer assembles the final user-facing answer. Assembly is
// deterministic except for the single recommendations generation pass.
type Composer struct {
	generator *response.Generator
}

func NewComposer(generator *response.Generator) *Composer {
	return &Composer{generator: generator}
}

// Format renders the answer sections separated by blank lines. Headers are
// emitted even when a section has no bullets, so the response shape stays
// stable for clients.
func (c *Composer) Format(ctx context.Context, baseAnswer string, references []store.Reference, cases []store.Case) string {
	var b strings.Builder

	b.WriteString(HeaderSteps)
	for _, step := range firstN(nonEmptyLines(baseAnswer), maxSteps) {
		b.WriteString("\n- " + step)
	}

	b.WriteString("\n\n" + HeaderProvisions)
	for i, ref := range references {
		if i >= maxProvisions {
			break
		}
		b.WriteString(fmt.Sprintf("\n- %s Sec %s: %s", ref.Act, ref.SectionNumber, ref.Summary))
	}

	recText := c.generator.Recommendations(ctx, baseAnswer)
	b.WriteString("\n\n" + HeaderRecommendations)
	for _, rec := range firstN(nonEmptyLines(recText), maxRecommendations) {
		b.WriteString("\n- " + rec)
	}

	if len(cases) > 0 {
		b.WriteString("\n\n" + HeaderCases)
		for i, cs := range cases {
			if i >= maxCases {
				break
			}
			b.WriteString(fmt.Sprintf("\n- %s (%s)", prompt.Truncate(cs.Title, caseTitleLimit), cs.URL))
		}
	}

	return b.String()
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func firstN(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

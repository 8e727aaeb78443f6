package prompt

import (
	"fmt"
	"strings"

	"legal-advisor-be/pkg/store"
)

// analysisInputLimit bounds how much section text goes into the one-line
// explanation prompt.
const analysisInputLimit = 1000

// DirectAnswer builds the steps-generation prompt, with or without prior
// or retrieved context.
func DirectAnswer(query, context string) string {
	if context != "" {
		return fmt.Sprintf("Generate 3 legal steps for: %s. Context: %s", query, context)
	}
	return fmt.Sprintf("Legal steps for: %s", query)
}

// LegalAnalysis builds the one-line explanation prompt for a section.
func LegalAnalysis(text, act, sectionNumber string) string {
	return fmt.Sprintf("Explain in one line: %s Section %s - %s", act, sectionNumber, Truncate(text, analysisInputLimit))
}

// Recommendations builds the follow-on recommendations prompt.
func Recommendations(baseAnswer string) string {
	return "Generate 3 legal recommendations: " + baseAnswer
}

// FollowUpContext renders the prior turn as context for a follow-up answer.
// A nil turn renders as no context, so the caller never has to guard on
// what its classifier reported.
func FollowUpContext(prev *store.TurnContext) string {
	if prev == nil {
		return ""
	}
	return strings.Join([]string{
		"Previous: " + prev.Query,
		"Answer: " + prev.Answer,
	}, "\n")
}

// SectionContext renders retrieved sections as generation context.
func SectionContext(sections []store.RetrievedSection) string {
	lines := make([]string, len(sections))
	for i, s := range sections {
		lines[i] = fmt.Sprintf("%s Section %s: %s", s.Act, s.SectionNumber, s.Text)
	}
	return strings.Join(lines, "\n")
}

// Truncate cuts s to at most limit runes.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

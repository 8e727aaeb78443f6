package response

import (
	"context"
	"log"
	"strings"

	"legal-advisor-be/pkg/llm"
	"legal-advisor-be/pkg/rag/prompt"
)

// DirectAnswerFallback is returned when the model yields nothing usable.
const DirectAnswerFallback = "Immediate legal steps:"

// Token budgets per generation pass
const (
	directAnswerTokens    = 200
	legalAnalysisTokens   = 100
	recommendationsTokens = 150
)

// Generator wraps the LLM behind a failure boundary: provider errors never
// propagate, they degrade to an empty string (or the direct-answer
// fallback) so a partial answer can still be assembled.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// DirectAnswer produces the short directive answer for a query, optionally
// grounded on prior or retrieved context.
func (g *Generator) DirectAnswer(ctx context.Context, query, context_ string) string {
	steps := g.generate(ctx, prompt.DirectAnswer(query, context_), directAnswerTokens)
	if steps == "" {
		return DirectAnswerFallback
	}
	return steps
}

// LegalAnalysis produces a one-line summary of a statutory section.
// Returns "" when generation fails.
func (g *Generator) LegalAnalysis(ctx context.Context, text, act, sectionNumber string) string {
	return g.generate(ctx, prompt.LegalAnalysis(text, act, sectionNumber), legalAnalysisTokens)
}

// Recommendations produces up to three recommendation lines derived from
// the base answer. Returns "" when generation fails.
func (g *Generator) Recommendations(ctx context.Context, baseAnswer string) string {
	return g.generate(ctx, prompt.Recommendations(baseAnswer), recommendationsTokens)
}

func (g *Generator) generate(ctx context.Context, promptText string, maxTokens int) string {
	out, err := g.llmProvider.Generate(ctx, promptText,
		llm.WithMaxTokens(maxTokens),
		llm.WithTemperature(0.3),
	)
	if err != nil {
		g.logger.Printf("[GENERATION] llm call failed: %v", err)
		return ""
	}
	return strings.TrimSpace(out)
}

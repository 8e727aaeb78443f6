package service

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"legal-advisor-be/internal/config"
	"legal-advisor-be/internal/dto"
	"legal-advisor-be/internal/mapper"
	"legal-advisor-be/internal/pkg/logger"
	"legal-advisor-be/internal/pkg/serverutils"
	"legal-advisor-be/pkg/caselaw"
	"legal-advisor-be/pkg/events"
	"legal-advisor-be/pkg/rag/compose"
	"legal-advisor-be/pkg/rag/followup"
	"legal-advisor-be/pkg/rag/prompt"
	"legal-advisor-be/pkg/rag/response"
	"legal-advisor-be/pkg/rag/search"
	"legal-advisor-be/pkg/rag/session"
	"legal-advisor-be/pkg/sanitize"
	"legal-advisor-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const minQueryLength = 3

// QueryResolvedTopic carries resolved-query events on the in-process bus.
const QueryResolvedTopic = "QUERY_RESOLVED"

// IQueryService resolves legal questions against the statute corpus while
// maintaining per-session conversational state.
type IQueryService interface {
	ProcessQuery(ctx context.Context, req *dto.ProcessQueryRequest) (*dto.ProcessQueryResponse, error)
}

type queryService struct {
	sessions    *session.Manager
	classifier  followup.Classifier
	searcher    search.SectionSearcher
	generator   *response.Generator
	composer    *compose.Composer
	caseFetcher caselaw.Fetcher
	publisher   message.Publisher
	logger      logger.ILogger
	retrieval   config.RetrievalConfig
	maxCases    int
}

func NewQueryService(
	sessions *session.Manager,
	classifier followup.Classifier,
	searcher search.SectionSearcher,
	generator *response.Generator,
	composer *compose.Composer,
	caseFetcher caselaw.Fetcher,
	publisher message.Publisher,
	sysLogger logger.ILogger,
	retrieval config.RetrievalConfig,
	maxCases int,
) IQueryService {
	return &queryService{
		sessions:    sessions,
		classifier:  classifier,
		searcher:    searcher,
		generator:   generator,
		composer:    composer,
		caseFetcher: caseFetcher,
		publisher:   publisher,
		logger:      sysLogger,
		retrieval:   retrieval,
		maxCases:    maxCases,
	}
}

// ProcessQuery runs the resolution pipeline:
// sanitize -> classify -> (follow-up | fresh retrieval) -> resolve.
// The whole read-decide-update sequence holds the per-session lock so
// concurrent requests for one session serialize.
func (s *queryService) ProcessQuery(ctx context.Context, req *dto.ProcessQueryRequest) (*dto.ProcessQueryResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = dto.DefaultSessionID
	}

	query := sanitize.Clean(req.Query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return nil, serverutils.NewBadRequest("Please ask a more detailed question.")
	}

	unlock := s.sessions.Lock(sessionID)
	defer unlock()

	sess := s.sessions.LoadOrCreate(sessionID)

	if s.classifier.IsFollowUp(query, sess) {
		return s.resolveFollowUp(ctx, sessionID, query, sess), nil
	}
	return s.resolveFresh(ctx, sessionID, query)
}

// resolveFollowUp answers from the prior turn's context and reuses its
// references and cases verbatim. Only the history gains a new turn pair.
func (s *queryService) resolveFollowUp(ctx context.Context, sessionID, query string, sess *store.Session) *dto.ProcessQueryResponse {
	answer := s.generator.DirectAnswer(ctx, query, prompt.FollowUpContext(sess.Current))
	s.sessions.AppendTurns(sessionID, query, answer)

	s.logger.Info("query", "follow-up resolved", map[string]interface{}{
		"session_id": sessionID,
	})
	s.publishResolved(sessionID, len(sess.References), len(sess.Cases), true)

	return &dto.ProcessQueryResponse{
		Answer:     answer,
		References: mapper.ToReferenceDTOs(sess.References),
		Cases:      mapper.ToCaseDTOs(sess.Cases),
		IsFollowUp: true,
		SessionID:  sessionID,
	}
}

func (s *queryService) resolveFresh(ctx context.Context, sessionID, query string) (*dto.ProcessQueryResponse, error) {
	sections, err := s.searcher.FindRelevantSections(ctx, query, s.retrieval.TopK)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, serverutils.NewNotFound("No relevant laws found")
	}

	top := sections
	if len(top) > s.retrieval.ContextSections {
		top = top[:s.retrieval.ContextSections]
	}

	baseAnswer := s.generator.DirectAnswer(ctx, query, prompt.SectionContext(top))
	references := s.buildReferences(ctx, sections)
	cases := s.caseFetcher.Search(ctx, query, s.maxCases)

	answer := s.composer.Format(ctx, baseAnswer, references, cases)
	s.sessions.Update(sessionID, query, answer, references, cases)

	s.logger.Info("query", "fresh query resolved", map[string]interface{}{
		"session_id": sessionID,
		"sections":   len(sections),
		"cases":      len(cases),
	})
	s.publishResolved(sessionID, len(sections), len(cases), false)

	return &dto.ProcessQueryResponse{
		Answer:     answer,
		References: mapper.ToReferenceDTOs(references),
		Cases:      mapper.ToCaseDTOs(cases),
		IsFollowUp: false,
		SessionID:  sessionID,
	}, nil
}

// buildReferences derives citable provisions from the top retrieved
// sections: a generated one-line summary plus display-truncated text.
func (s *queryService) buildReferences(ctx context.Context, sections []store.RetrievedSection) []store.Reference {
	count := s.retrieval.ReferenceCount
	if count > len(sections) {
		count = len(sections)
	}

	references := make([]store.Reference, 0, count)
	for _, sec := range sections[:count] {
		summary := s.generator.LegalAnalysis(ctx, sec.Text, sec.Act, sec.SectionNumber)
		references = append(references, store.Reference{
			Act:           sec.Act,
			SectionNumber: sec.SectionNumber,
			Summary:       summary,
			FullText:      prompt.Truncate(sec.Text, 300) + "...",
		})
	}
	return references
}

// publishResolved emits a QUERY_RESOLVED event on the in-process bus.
// Best-effort: a failed publish never affects the response.
func (s *queryService) publishResolved(sessionID string, sectionCount, caseCount int, followUp bool) {
	if s.publisher == nil {
		return
	}

	event := events.NewQueryResolved(sessionID, sectionCount, caseCount, followUp)
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		s.logger.Warn("query", "event encode failed", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(QueryResolvedTopic, msg); err != nil {
		s.logger.Warn("query", "event publish failed", map[string]interface{}{"error": err.Error()})
	}
}

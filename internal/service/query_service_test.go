package service

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"legal-advisor-be/internal/config"
	"legal-advisor-be/internal/dto"
	"legal-advisor-be/internal/pkg/serverutils"
	"legal-advisor-be/internal/repository/memory"
	"legal-advisor-be/pkg/llm"
	"legal-advisor-be/pkg/rag/compose"
	"legal-advisor-be/pkg/rag/followup"
	"legal-advisor-be/pkg/rag/response"
	"legal-advisor-be/pkg/rag/session"
	"legal-advisor-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.calls++
	return f.reply, f.err
}

type fakeSearcher struct {
	sections []store.RetrievedSection
	err      error
	calls    int
}

func (f *fakeSearcher) FindRelevantSections(ctx context.Context, query string, k int) ([]store.RetrievedSection, error) {
	f.calls++
	return f.sections, f.err
}

type fakeFetcher struct {
	cases []store.Case
	calls int
}

func (f *fakeFetcher) Search(ctx context.Context, query string, maxResults int) []store.Case {
	f.calls++
	return f.cases
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fixture struct {
	svc      IQueryService
	llm      *fakeLLM
	searcher *fakeSearcher
	fetcher  *fakeFetcher
}

func newFixture(searcher *fakeSearcher, fetcher *fakeFetcher, model *fakeLLM) *fixture {
	ragLogger := log.New(os.Stderr, "", 0)
	generator := response.NewGenerator(model, ragLogger)
	svc := NewQueryService(
		session.NewManager(memory.NewSessionRepository(time.Hour)),
		followup.NewLexiconClassifier(),
		searcher,
		generator,
		compose.NewComposer(generator),
		fetcher,
		nil,
		nopLogger{},
		config.RetrievalConfig{TopK: 5, ContextSections: 2, ReferenceCount: 2},
		3,
	)
	return &fixture{svc: svc, llm: model, searcher: searcher, fetcher: fetcher}
}

func defaultSections() []store.RetrievedSection {
	return []store.RetrievedSection{
		{Act: "Motor Vehicles Act", SectionNumber: "166", Text: strings.Repeat("compensation ", 40), Score: 0.91},
		{Act: "IPC", SectionNumber: "279", Text: "Rash driving on a public way.", Score: 0.84},
		{Act: "IPC", SectionNumber: "304A", Text: "Causing death by negligence.", Score: 0.71},
	}
}

// --- scenarios ---

func TestFreshQueryResolves(t *testing.T) {
	f := newFixture(
		&fakeSearcher{sections: defaultSections()},
		&fakeFetcher{cases: []store.Case{{Title: "State v Driver", URL: "https://example.org/doc/1"}}},
		&fakeLLM{reply: "Step one\nStep two\nStep three"},
	)

	res, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:     "What should I do about a road accident?",
		SessionID: "s1",
	})

	require.NoError(t, err)
	assert.False(t, res.IsFollowUp)
	assert.Equal(t, "s1", res.SessionID)
	assert.Len(t, res.References, 2)
	assert.Len(t, res.Cases, 1)
	assert.Contains(t, res.Answer, "Immediate Steps")
	assert.Contains(t, res.Answer, "Relevant Provisions")
	assert.Contains(t, res.Answer, "Key Recommendations")
	assert.Contains(t, res.Answer, "Related Cases")
}

func TestFollowUpReusesReferencesAndCases(t *testing.T) {
	f := newFixture(
		&fakeSearcher{sections: defaultSections()},
		&fakeFetcher{cases: []store.Case{{Title: "State v Driver", URL: "https://example.org/doc/1"}}},
		&fakeLLM{reply: "Step one\nStep two\nStep three"},
	)

	first, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:     "What should I do about a road accident?",
		SessionID: "s1",
	})
	require.NoError(t, err)

	searchesBefore := f.searcher.calls
	fetchesBefore := f.fetcher.calls

	second, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:     "please explain more",
		SessionID: "s1",
	})
	require.NoError(t, err)

	assert.True(t, second.IsFollowUp)
	assert.Equal(t, first.References, second.References)
	assert.Equal(t, first.Cases, second.Cases)
	assert.Equal(t, searchesBefore, f.searcher.calls, "follow-up must not retrieve")
	assert.Equal(t, fetchesBefore, f.fetcher.calls, "follow-up must not fetch cases")
}

func TestShortQueryRejectedBeforeCollaborators(t *testing.T) {
	f := newFixture(&fakeSearcher{}, &fakeFetcher{}, &fakeLLM{})

	_, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:     "  hi  ",
		SessionID: "s1",
	})

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
	assert.Zero(t, f.searcher.calls)
	assert.Zero(t, f.fetcher.calls)
	assert.Zero(t, f.llm.calls)
}

func TestEmptyRetrievalIsNotFound(t *testing.T) {
	f := newFixture(&fakeSearcher{sections: nil}, &fakeFetcher{}, &fakeLLM{reply: "x"})

	_, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:     "gibberish nonsense query",
		SessionID: "s1",
	})

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func TestRetrievalErrorPropagates(t *testing.T) {
	f := newFixture(&fakeSearcher{err: errors.New("index offline")}, &fakeFetcher{}, &fakeLLM{reply: "x"})

	_, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:     "road accident",
		SessionID: "s1",
	})

	require.Error(t, err)
	var apiErr *serverutils.ApiError
	assert.False(t, errors.As(err, &apiErr), "infrastructure failures are not user-visible structured errors")
}

func TestCaseFetchFailureStillResolves(t *testing.T) {
	f := newFixture(
		&fakeSearcher{sections: defaultSections()},
		&fakeFetcher{cases: nil}, // fetcher degraded to empty
		&fakeLLM{reply: "Step one\nStep two\nStep three"},
	)

	res, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:     "What should I do about a road accident?",
		SessionID: "s1",
	})

	require.NoError(t, err)
	assert.Empty(t, res.Cases)
	assert.Contains(t, res.Answer, "Immediate Steps")
	assert.Contains(t, res.Answer, "Relevant Provisions")
	assert.NotContains(t, res.Answer, "Related Cases")
}

func TestReferenceTextTruncated(t *testing.T) {
	long := strings.Repeat("a", 2000)
	f := newFixture(
		&fakeSearcher{sections: []store.RetrievedSection{
			{Act: "IPC", SectionNumber: "420", Text: long, Score: 0.9},
		}},
		&fakeFetcher{},
		&fakeLLM{reply: "Step"},
	)

	res, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:     "cheating case",
		SessionID: "s1",
	})

	require.NoError(t, err)
	require.Len(t, res.References, 1)
	assert.LessOrEqual(t, len(res.References[0].FullText), 303)
	assert.True(t, strings.HasSuffix(res.References[0].FullText, "..."))
}

func TestDefaultSessionKey(t *testing.T) {
	f := newFixture(
		&fakeSearcher{sections: defaultSections()},
		&fakeFetcher{},
		&fakeLLM{reply: "Step"},
	)

	res, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query: "What should I do about a road accident?",
	})

	require.NoError(t, err)
	assert.Equal(t, dto.DefaultSessionID, res.SessionID)
}

func TestGenerationFailureDegradesToFallback(t *testing.T) {
	f := newFixture(
		&fakeSearcher{sections: defaultSections()},
		&fakeFetcher{},
		&fakeLLM{err: errors.New("model down")},
	)

	res, err := f.svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:     "road accident claim",
		SessionID: "s1",
	})

	require.NoError(t, err)
	assert.Contains(t, res.Answer, response.DirectAnswerFallback)
}

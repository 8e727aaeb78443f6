package session

import (
	"sync"
	"testing"
	"time"

	"legal-advisor-be/internal/repository/memory"
	"legal-advisor-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *Manager {
	return NewManager(memory.NewSessionRepository(time.Hour))
}

func TestLoadOrCreateReturnsEmptySession(t *testing.T) {
	m := newManager()

	s := m.LoadOrCreate("s1")
	assert.Equal(t, "s1", s.ID)
	assert.Nil(t, s.Current)
	assert.Empty(t, s.History)
}

func TestUpdateRecordsConsistentTurn(t *testing.T) {
	m := newManager()
	refs := []store.Reference{{Act: "Motor Vehicles Act", SectionNumber: "166", Summary: "compensation claims"}}
	cases := []store.Case{{Title: "X v Y", URL: "https://example.org/doc/1"}}

	m.Update("s1", "road accident", "file a claim", refs, cases)

	s := m.LoadOrCreate("s1")
	require.NotNil(t, s.Current)
	assert.Equal(t, "road accident", s.Current.Query)
	assert.Equal(t, "file a claim", s.Current.Answer)
	assert.Equal(t, refs, s.Current.References)
	assert.Equal(t, refs, s.References)
	assert.Equal(t, cases, s.Cases)

	require.Len(t, s.History, 2)
	assert.Equal(t, store.RoleUser, s.History[0].Role)
	assert.Equal(t, store.RoleAssistant, s.History[1].Role)
}

func TestAppendTurnsKeepsContext(t *testing.T) {
	m := newManager()
	refs := []store.Reference{{Act: "IPC", SectionNumber: "279"}}
	m.Update("s1", "first", "answer one", refs, nil)

	m.AppendTurns("s1", "please explain", "answer two")

	s := m.LoadOrCreate("s1")
	require.NotNil(t, s.Current)
	assert.Equal(t, "first", s.Current.Query, "follow-up must not replace the resolved context")
	assert.Equal(t, refs, s.References)
	assert.Len(t, s.History, 4)
	assert.Equal(t, "please explain", s.History[2].Text)
}

func TestHistoryStaysPairedUnderConcurrency(t *testing.T) {
	m := newManager()
	m.Update("s1", "seed", "seed answer", nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("s1")
			defer unlock()
			m.AppendTurns("s1", "q", "a")
		}()
	}
	wg.Wait()

	s := m.LoadOrCreate("s1")
	assert.Len(t, s.History, 42)
	assert.Equal(t, 0, len(s.History)%2, "history length must stay even")
}

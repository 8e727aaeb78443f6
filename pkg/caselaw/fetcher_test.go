package caselaw

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<html><body>
<div class="result_title"><a href="/doc/101/">State of Kerala v Kumar</a></div>
<div class="result_title"><a href="/doc/102/">Sharma v Union of India</a></div>
<div class="result_title"><a href="https://indiankanoon.org/doc/103/">Rao v State</a></div>
<div class="result_title"><a href="/doc/104/">Fourth Result</a></div>
</body></html>`

func testLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func TestSearchExtractsResultLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/", r.URL.Path)
		assert.Equal(t, "road accident", r.URL.Query().Get("formInput"))
		w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	f := NewKanoonFetcher(srv.URL, 5*time.Second, testLogger())
	cases := f.Search(context.Background(), "road accident", 3)

	require.Len(t, cases, 3)
	assert.Equal(t, "State of Kerala v Kumar", cases[0].Title)
	assert.Equal(t, srv.URL+"/doc/101/", cases[0].URL)
	assert.Equal(t, "https://indiankanoon.org/doc/103/", cases[2].URL)
}

func TestSearchTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("a", 200)
	page := `<div class="result_title"><a href="/doc/1/">` + long + `</a></div>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	f := NewKanoonFetcher(srv.URL, 5*time.Second, testLogger())
	cases := f.Search(context.Background(), "q", 3)

	require.Len(t, cases, 1)
	assert.Len(t, cases[0].Title, 80)
}

func TestSearchReturnsEmptyOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewKanoonFetcher(srv.URL, 5*time.Second, testLogger())
	assert.Empty(t, f.Search(context.Background(), "q", 3))
}

func TestSearchReturnsEmptyOnUnreachableHost(t *testing.T) {
	f := NewKanoonFetcher("http://127.0.0.1:1", 500*time.Millisecond, testLogger())
	assert.Empty(t, f.Search(context.Background(), "q", 3))
}

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/booklogapp/booklog/pkg/config"
	"github.com/booklogapp/booklog/pkg/database"
	"github.com/booklogapp/booklog/pkg/migrations"
	"github.com/booklogapp/booklog/pkg/models"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *http.Server {
	t.Helper()

	cfg := config.NewForTest()

	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	srv, err := New(cfg, db)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *http.Server, method, path, payload string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestServerHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rr := doJSON(t, srv, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestServerBookLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	// Create a book with only a title; everything else defaults.
	rr := doJSON(t, srv, http.MethodPost, "/api/books", `{"title":"Dune"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	book := &models.Book{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), book))
	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "", book.Author)
	assert.NotNil(t, book.GenreTags)

	// Attach a note with only thoughts.
	rr = doJSON(t, srv, http.MethodPost, "/api/books/"+book.ID+"/notes", `{"thoughts":"Great opener"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	note := &models.Note{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), note))
	assert.Equal(t, book.ID, note.BookID)
	assert.Equal(t, 0, note.Rating)
	assert.Nil(t, note.Chapter)

	// The note shows up under the book.
	rr = doJSON(t, srv, http.MethodGet, "/api/books/"+book.ID+"/notes", "")
	require.Equal(t, http.StatusOK, rr.Code)

	list := []*models.Note{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Great opener", list[0].Thoughts)

	// Deleting the book takes the notes with it.
	rr = doJSON(t, srv, http.MethodDelete, "/api/books/"+book.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Book and notes deleted")

	rr = doJSON(t, srv, http.MethodGet, "/api/books/"+book.ID+"/notes", "")
	require.Equal(t, http.StatusOK, rr.Code)

	list = []*models.Note{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestServerErrorEnvelope(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rr := doJSON(t, srv, http.MethodGet, "/api/books/missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	payload := map[string]map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, "not_found", payload["error"]["code"])
	assert.Equal(t, "Book not found.", payload["error"]["message"])
	assert.Equal(t, float64(http.StatusNotFound), payload["error"]["status_code"])
}

func TestServerMetadataRateLimit(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	// Requests beyond the window's allowance are rejected before the upstream
	// lookup ever happens. The configured test upstream is unreachable, so
	// allowed requests fail with a 500 instead.
	codes := []int{}
	for i := 0; i < 6; i++ {
		rr := doJSON(t, srv, http.MethodGet, "/api/googlebooks?title=Dune", "")
		codes = append(codes, rr.Code)
	}

	for _, code := range codes[:5] {
		assert.NotEqual(t, http.StatusTooManyRequests, code)
	}
	assert.Equal(t, http.StatusTooManyRequests, codes[5])
}

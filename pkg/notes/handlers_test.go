package notes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/booklogapp/booklog/pkg/binder"
	"github.com/booklogapp/booklog/pkg/errcodes"
	"github.com/booklogapp/booklog/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotesTestContext(t *testing.T, method, path, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandlerUpdate_PartialLeavesOtherFieldsIntact(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{noteService: NewService(db)}
	ctx := context.Background()

	chapter := 4
	note := &models.Note{
		BookID:          "book-1",
		Chapter:         &chapter,
		Thoughts:        "original",
		FavouriteQuotes: models.StringList{"fear is the mind-killer"},
		Rating:          4,
	}
	require.NoError(t, h.noteService.CreateNote(ctx, note))

	c, rr := newNotesTestContext(t, http.MethodPut, "/api/notes/"+note.ID, `{"thoughts":"edited"}`)
	c.SetPath("/api/notes/:id")
	c.SetParamNames("id")
	c.SetParamValues(note.ID)

	err := h.update(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	updated := &models.Note{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), updated))
	assert.Equal(t, "edited", updated.Thoughts)
	assert.Equal(t, 4, updated.Rating)
	require.NotNil(t, updated.Chapter)
	assert.Equal(t, 4, *updated.Chapter)
	assert.Equal(t, models.StringList{"fear is the mind-killer"}, updated.FavouriteQuotes)
}

func TestHandlerUpdate_ParsesAndClearsDateLogged(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{noteService: NewService(db)}
	ctx := context.Background()

	note := &models.Note{BookID: "book-1", Thoughts: "dated"}
	require.NoError(t, h.noteService.CreateNote(ctx, note))

	c, rr := newNotesTestContext(t, http.MethodPut, "/api/notes/"+note.ID, `{"dateLogged":"2025-06-12"}`)
	c.SetPath("/api/notes/:id")
	c.SetParamNames("id")
	c.SetParamValues(note.ID)

	require.NoError(t, h.update(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	updated := &models.Note{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), updated))
	require.NotNil(t, updated.DateLogged)
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), updated.DateLogged.UTC())

	// An empty string clears the date.
	c, rr = newNotesTestContext(t, http.MethodPut, "/api/notes/"+note.ID, `{"dateLogged":""}`)
	c.SetPath("/api/notes/:id")
	c.SetParamNames("id")
	c.SetParamValues(note.ID)

	require.NoError(t, h.update(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	cleared := &models.Note{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), cleared))
	assert.Nil(t, cleared.DateLogged)
}

func TestHandlerUpdate_RejectsEmptyThoughts(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{noteService: NewService(db)}
	ctx := context.Background()

	note := &models.Note{BookID: "book-1", Thoughts: "keep me"}
	require.NoError(t, h.noteService.CreateNote(ctx, note))

	c, _ := newNotesTestContext(t, http.MethodPut, "/api/notes/"+note.ID, `{"thoughts":""}`)
	c.SetPath("/api/notes/:id")
	c.SetParamNames("id")
	c.SetParamValues(note.ID)

	err := h.update(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "missing_parameter", codeErr.Code)
}

func TestHandlerUpdate_RejectsOutOfRangeRating(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{noteService: NewService(db)}
	ctx := context.Background()

	note := &models.Note{BookID: "book-1", Thoughts: "rated"}
	require.NoError(t, h.noteService.CreateNote(ctx, note))

	c, _ := newNotesTestContext(t, http.MethodPut, "/api/notes/"+note.ID, `{"rating":6}`)
	c.SetPath("/api/notes/:id")
	c.SetParamNames("id")
	c.SetParamValues(note.ID)

	err := h.update(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnprocessableEntity, codeErr.HTTPCode)
}

func TestHandlerUpdate_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{noteService: NewService(db)}

	c, _ := newNotesTestContext(t, http.MethodPut, "/api/notes/missing", `{"thoughts":"hello"}`)
	c.SetPath("/api/notes/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.update(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
}

func TestHandlerDeleteNote(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{noteService: NewService(db)}
	ctx := context.Background()

	note := &models.Note{BookID: "book-1", Thoughts: "goodbye"}
	require.NoError(t, h.noteService.CreateNote(ctx, note))

	c, rr := newNotesTestContext(t, http.MethodDelete, "/api/notes/"+note.ID, "")
	c.SetPath("/api/notes/:id")
	c.SetParamNames("id")
	c.SetParamValues(note.ID)

	require.NoError(t, h.deleteNote(c))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Note deleted")

	_, err := h.noteService.RetrieveNote(ctx, RetrieveNoteOptions{ID: &note.ID})
	require.Error(t, err)
}

func TestHandlerDeleteNote_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{noteService: NewService(db)}

	c, _ := newNotesTestContext(t, http.MethodDelete, "/api/notes/missing", "")
	c.SetPath("/api/notes/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.deleteNote(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
}

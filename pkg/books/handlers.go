package books

import (
	"net/http"
	"time"

	"github.com/booklogapp/booklog/pkg/errcodes"
	"github.com/booklogapp/booklog/pkg/models"
	"github.com/booklogapp/booklog/pkg/notes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	bookService *Service
	noteService *notes.Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.ListBooks(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, books))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if params.Title == "" {
		return errcodes.MissingParameter("title")
	}

	book := &models.Book{
		Title:       params.Title,
		Author:      params.Author,
		CoverImage:  params.CoverImage,
		GenreTags:   models.StringList(params.GenreTags),
		Description: params.Description,
	}

	if err := h.bookService.CreateBook(ctx, book); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, book))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	// Fetch the book.
	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Keep track of what's been changed.
	opts := UpdateBookOptions{Columns: []string{}}

	if params.Title != nil {
		if *params.Title == "" {
			return errcodes.MissingParameter("title")
		}
		if *params.Title != book.Title {
			book.Title = *params.Title
			opts.Columns = append(opts.Columns, "title")
		}
	}
	if params.Author != nil && *params.Author != book.Author {
		book.Author = *params.Author
		opts.Columns = append(opts.Columns, "author")
	}
	if params.CoverImage != nil && *params.CoverImage != book.CoverImage {
		book.CoverImage = *params.CoverImage
		opts.Columns = append(opts.Columns, "cover_image")
	}
	if params.GenreTags != nil {
		book.GenreTags = models.StringList(params.GenreTags)
		opts.Columns = append(opts.Columns, "genre_tags")
	}
	if params.Description != nil && *params.Description != book.Description {
		book.Description = *params.Description
		opts.Columns = append(opts.Columns, "description")
	}

	err = h.bookService.UpdateBook(ctx, book, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	// Reload the model.
	book, err = h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) deleteBook(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	// Fetch the book so a missing id is a 404, not a silent no-op.
	_, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	err = h.bookService.DeleteBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]string{"message": "Book and notes deleted"}))
}

func (h *handler) listNotes(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	list, err := h.noteService.ListNotes(ctx, notes.ListNotesOptions{
		BookID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, list))
}

func (h *handler) createNote(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	params := CreateNotePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if params.Thoughts == "" {
		return errcodes.MissingParameter("thoughts")
	}

	note := &models.Note{
		BookID:          id,
		Title:           params.Title,
		Chapter:         params.Chapter,
		Pages:           params.Pages,
		Thoughts:        params.Thoughts,
		FavouriteQuotes: models.StringList(params.FavouriteQuotes),
	}
	if params.Rating != nil {
		note.Rating = *params.Rating
	}
	if params.DateLogged != "" {
		logged, err := time.Parse("2006-01-02", params.DateLogged)
		if err != nil {
			return errcodes.ValidationError(`"dateLogged" should be in the format of YYYY-MM-DD`)
		}
		note.DateLogged = &logged
	}

	if err := h.noteService.CreateNote(ctx, note); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, note))
}

package notes

import (
	"net/http"
	"time"

	"github.com/booklogapp/booklog/pkg/errcodes"
	"github.com/booklogapp/booklog/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	noteService *Service
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	params := UpdateNotePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	// Fetch the note.
	note, err := h.noteService.RetrieveNote(ctx, RetrieveNoteOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Keep track of what's been changed.
	opts := UpdateNoteOptions{Columns: []string{}}

	if params.Title != nil && *params.Title != note.Title {
		note.Title = *params.Title
		opts.Columns = append(opts.Columns, "title")
	}
	if params.Chapter != nil {
		note.Chapter = params.Chapter
		opts.Columns = append(opts.Columns, "chapter")
	}
	if params.Pages != nil && *params.Pages != note.Pages {
		note.Pages = *params.Pages
		opts.Columns = append(opts.Columns, "pages")
	}
	if params.DateLogged != nil {
		if *params.DateLogged == "" {
			note.DateLogged = nil
		} else {
			logged, err := time.Parse("2006-01-02", *params.DateLogged)
			if err != nil {
				return errcodes.ValidationError(`"dateLogged" should be in the format of YYYY-MM-DD`)
			}
			note.DateLogged = &logged
		}
		opts.Columns = append(opts.Columns, "date_logged")
	}
	if params.Thoughts != nil {
		if *params.Thoughts == "" {
			return errcodes.MissingParameter("thoughts")
		}
		if *params.Thoughts != note.Thoughts {
			note.Thoughts = *params.Thoughts
			opts.Columns = append(opts.Columns, "thoughts")
		}
	}
	if params.FavouriteQuotes != nil {
		note.FavouriteQuotes = models.StringList(params.FavouriteQuotes)
		opts.Columns = append(opts.Columns, "favourite_quotes")
	}
	if params.Rating != nil && *params.Rating != note.Rating {
		note.Rating = *params.Rating
		opts.Columns = append(opts.Columns, "rating")
	}

	err = h.noteService.UpdateNote(ctx, note, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	// Reload the model.
	note, err = h.noteService.RetrieveNote(ctx, RetrieveNoteOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, note))
}

func (h *handler) deleteNote(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	// Fetch the note so a missing id is a 404, not a silent no-op.
	_, err := h.noteService.RetrieveNote(ctx, RetrieveNoteOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	err = h.noteService.DeleteNote(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]string{"message": "Note deleted"}))
}

package books

import (
	"github.com/booklogapp/booklog/pkg/notes"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers book routes on a pre-configured group,
// including the nested note list/create endpoints.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	bookService := NewService(db)
	noteService := notes.NewService(db)

	h := &handler{
		bookService: bookService,
		noteService: noteService,
	}

	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.retrieve)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.deleteBook)
	g.GET("/:id/notes", h.listNotes)
	g.POST("/:id/notes", h.createNote)
}

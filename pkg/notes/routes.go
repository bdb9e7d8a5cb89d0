package notes

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers note routes on a pre-configured group.
// Note creation is registered by the books package since it is nested under a
// book.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	noteService := NewService(db)

	h := &handler{
		noteService: noteService,
	}

	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.deleteNote)
}

package googlebooks

import (
	"github.com/booklogapp/booklog/pkg/config"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers the metadata lookup route on a
// pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, cfg *config.Config) {
	h := &handler{
		client: NewClient(cfg.GoogleBooksBaseURL, cfg.GoogleBooksAPIKey),
	}

	g.GET("", h.search)
}

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/booklogapp/booklog/pkg/binder"
	"github.com/booklogapp/booklog/pkg/books"
	"github.com/booklogapp/booklog/pkg/config"
	"github.com/booklogapp/booklog/pkg/errcodes"
	"github.com/booklogapp/booklog/pkg/googlebooks"
	"github.com/booklogapp/booklog/pkg/notes"
	"github.com/booklogapp/booklog/pkg/ratelimit"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	api := e.Group("/api")

	api.GET("/health", health)

	booksGroup := api.Group("/books")
	books.RegisterRoutesWithGroup(booksGroup, db)

	notesGroup := api.Group("/notes")
	notes.RegisterRoutesWithGroup(notesGroup, db)

	googleBooksGroup := api.Group("/googlebooks")
	googleBooksGroup.Use(ratelimit.Middleware(ratelimit.Policy{
		Requests: cfg.MetadataRateLimit,
		Window:   cfg.MetadataRateWindow,
	}))
	googlebooks.RegisterRoutesWithGroup(googleBooksGroup, cfg)

	if cfg.FrontendDir != "" {
		e.Static("/", cfg.FrontendDir)
	}

	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func health(c echo.Context) error {
	return errors.WithStack(c.JSON(http.StatusOK, map[string]string{"status": "ok"}))
}

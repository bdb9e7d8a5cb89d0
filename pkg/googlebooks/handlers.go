package googlebooks

import (
	"net/http"

	"github.com/booklogapp/booklog/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	client *Client
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Request().Context()

	params := SearchPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if params.Title == "" {
		return errcodes.MissingParameter("title")
	}

	volume, err := h.client.SearchByTitle(ctx, params.Title)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, volume))
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"oneplace/translation/internal/service"
)

// The API speaks the state/message envelope dialect of the original
// admin suite; external clients pattern-match on these shapes.

type listResponse struct {
	State      string     `json:"state"`
	Results    []any      `json:"results"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	More bool `json:"more"`
}

type listErrorResponse struct {
	State   string `json:"state"`
	Message string `json:"message"`
	Results []any  `json:"results"`
}

type itemResponse struct {
	State   string `json:"state"`
	Message string `json:"message"`
	Item    any    `json:"oItem"`
}

type pageResponse struct {
	State      string `json:"state"`
	Items      []any  `json:"items"`
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
	TotalItems int    `json:"totalItems"`
	TotalPages int    `json:"totalPages"`
}

func listError(c echo.Context, status int, message string) error {
	return c.JSON(status, listErrorResponse{State: "error", Message: message, Results: []any{}})
}

func itemError(c echo.Context, status int, message string) error {
	return c.JSON(status, itemResponse{State: "error", Message: message, Item: []any{}})
}

func writeServiceError(c echo.Context, err error, notFoundMessage string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return itemError(c, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, service.ErrInvalid):
		return itemError(c, http.StatusBadRequest, "invalid request")
	default:
		c.Logger().Error(err)
		return itemError(c, http.StatusInternalServerError, "internal error")
	}
}

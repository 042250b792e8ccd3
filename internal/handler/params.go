package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parsePageParam reads the 1-based page number, clamped to minimum 1.
func parsePageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

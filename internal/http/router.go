package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "oneplace/translation/docs"
	"oneplace/translation/internal/handler"
)

func NewRouter(translationHandler *handler.TranslationHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(RateLimitMiddleware(20, 40))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	translationHandler.RegisterAPIRoutes(api)

	web := e.Group("")
	translationHandler.RegisterWebRoutes(web)

	return e
}

// Package router registers HTTP routes and cross-cutting middleware.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/smartprofile/backend/internal/config"
	"github.com/smartprofile/backend/internal/handler"
	"github.com/smartprofile/backend/internal/middleware"
)

// Register wires all routes onto the Echo instance. Request bodies are capped
// at 1MB before any handler runs; rateLimit applies to every route and is a
// pass-through when Redis is unavailable. The static client is served from
// web/ at the root.
func Register(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, r *handler.ResumeHandler, rateLimit echo.MiddlewareFunc) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit("1M"))
	e.Use(rateLimit)

	e.GET("/healthz", handler.Health)

	auth := e.Group("/auth")
	auth.POST("/signup", a.Signup)
	auth.POST("/login", a.Login)

	protected := e.Group("", middleware.Auth(cfg.JWTSecret))
	protected.POST("/generate", r.Generate)
	protected.GET("/resumes", r.List)

	e.Static("/", "web")
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartprofile/backend/internal/generator"
	"github.com/smartprofile/backend/internal/middleware"
)

// ResumeHandler exposes the generation endpoints. Both routes require the
// Auth middleware; the user id is read from the request context.
type ResumeHandler struct {
	Gen *generator.Service
}

func NewResumeHandler(gen *generator.Service) *ResumeHandler {
	return &ResumeHandler{Gen: gen}
}

// Generate runs the full pipeline and returns the produced summary. The
// handler blocks until the generation service replies or its timeout fires;
// there is no retry and no partial result.
func (h *ResumeHandler) Generate(c echo.Context) error {
	uid := middleware.UserID(c)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	var req generator.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	rec, err := h.Gen.Generate(c.Request().Context(), uid, req)
	if err != nil {
		if errors.Is(err, generator.ErrEmptySkills) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		var ue *generator.UpstreamError
		if errors.As(err, &ue) {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": ue.Error()})
		}
		c.Logger().Errorf("generate: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Generation failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"summary": rec.Summary})
}

// List returns the caller's stored summaries, newest first.
func (h *ResumeHandler) List(c echo.Context) error {
	uid := middleware.UserID(c)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	records, err := h.Gen.ListForUser(c.Request().Context(), uid)
	if err != nil {
		c.Logger().Errorf("list resumes: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch resumes"})
	}
	return c.JSON(http.StatusOK, records)
}

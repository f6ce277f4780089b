package handlers

import (
	"net/http"

	"github.com/anonto42/tweetbox/backend/internal/services"
	"github.com/anonto42/tweetbox/backend/pkg/session"
	"github.com/labstack/echo/v4"
)

// UserHandler serves user profiles
type UserHandler struct {
	profiles *services.ProfileService
	store    *session.Store
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(profiles *services.ProfileService, store *session.Store) *UserHandler {
	return &UserHandler{profiles: profiles, store: store}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/accounts/:username", h.GetProfile)
}

// GetProfile returns a user's tweets and follow counts as seen by the current user
func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.profiles.Get(c.Request().Context(), getUserIDFromContext(c), c.Param("username"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"messages": flashes(c, h.store),
		"data":     profile,
	})
}

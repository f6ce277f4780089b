package handlers

import (
	"fmt"
	"net/http"

	"github.com/anonto42/tweetbox/backend/internal/services"
	"github.com/anonto42/tweetbox/backend/pkg/session"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	follows *services.FollowService
	store   *session.Store
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(follows *services.FollowService, store *session.Store) *FollowHandler {
	return &FollowHandler{follows: follows, store: store}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/accounts/:username/follow", h.FollowUser)
	g.POST("/accounts/:username/unfollow", h.UnfollowUser)
	g.GET("/accounts/:username/following_list", h.FollowingList)
	g.GET("/accounts/:username/follower_list", h.FollowerList)
}

// FollowUser follows a user. Following someone already followed still
// redirects, with an informational message.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	result, err := h.follows.Follow(c.Request().Context(), getUserIDFromContext(c), c.Param("username"))
	if err != nil {
		return httpError(c, err)
	}

	if result.AlreadyFollowing {
		flash(c, h.store, fmt.Sprintf("You are already following %s.", result.Target.Username))
	} else {
		flash(c, h.store, fmt.Sprintf("You followed %s.", result.Target.Username))
	}
	return c.Redirect(http.StatusFound, homePath)
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	result, err := h.follows.Unfollow(c.Request().Context(), getUserIDFromContext(c), c.Param("username"))
	if err != nil {
		return httpError(c, err)
	}

	if result.Removed {
		flash(c, h.store, fmt.Sprintf("You unfollowed %s.", result.Target.Username))
	}
	return c.Redirect(http.StatusFound, homePath)
}

func (h *FollowHandler) FollowingList(c echo.Context) error {
	entries, err := h.follows.Following(c.Request().Context(), getUserIDFromContext(c), c.Param("username"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": entries}})
}

func (h *FollowHandler) FollowerList(c echo.Context) error {
	entries, err := h.follows.Followers(c.Request().Context(), getUserIDFromContext(c), c.Param("username"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"followers": entries}})
}

package handlers

import (
	"net/http"

	"github.com/anonto42/tweetbox/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likes *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/tweets/:id/like", h.LikeTweet)
	g.POST("/tweets/:id/unlike", h.UnlikeTweet)
}

// LikeTweet answers with the fresh like count so the page can update in place
func (h *LikeHandler) LikeTweet(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result, err := h.likes.Like(c.Request().Context(), getUserIDFromContext(c), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *LikeHandler) UnlikeTweet(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result, err := h.likes.Unlike(c.Request().Context(), getUserIDFromContext(c), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

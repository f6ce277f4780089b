package handlers

import (
	"net/http"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/services"
	"github.com/anonto42/tweetbox/backend/pkg/session"
	"github.com/labstack/echo/v4"
)

// TweetHandler handles HTTP requests related to tweets
type TweetHandler struct {
	tweets *services.TweetService
	store  *session.Store
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(tweets *services.TweetService, store *session.Store) *TweetHandler {
	return &TweetHandler{tweets: tweets, store: store}
}

// RegisterTweetRoutes registers tweet-related routes
func (h *TweetHandler) RegisterTweetRoutes(g *echo.Group) {
	g.GET("/", h.Home)
	g.POST("/tweets", h.CreateTweet)
	g.GET("/tweets/:id", h.GetTweet)
	g.POST("/tweets/:id/delete", h.DeleteTweet)
}

// Home returns every tweet, newest first, with the viewer's liked flags
func (h *TweetHandler) Home(c echo.Context) error {
	timeline, err := h.tweets.Timeline(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"messages": flashes(c, h.store),
		"data":     echo.Map{"tweets": timeline},
	})
}

// CreateTweet posts a tweet as the current user
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	var req models.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if _, err := h.tweets.Create(c.Request().Context(), getUserIDFromContext(c), req.Content); err != nil {
		return renderForm(c, "tweet", echo.Map{"content": req.Content}, err)
	}
	return c.Redirect(http.StatusFound, homePath)
}

// GetTweet returns one tweet with its like count
func (h *TweetHandler) GetTweet(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	tweet, err := h.tweets.Get(c.Request().Context(), getUserIDFromContext(c), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": tweet})
}

// DeleteTweet deletes a tweet owned by the current user
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.tweets.Delete(c.Request().Context(), getUserIDFromContext(c), id); err != nil {
		return httpError(c, err)
	}
	return c.Redirect(http.StatusFound, homePath)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/anonto42/tweetbox/backend/internal/middleware"
	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/services"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"github.com/anonto42/tweetbox/backend/pkg/session"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles signup, session login/logout and API token issuance
type AuthHandler struct {
	accounts  *services.AccountService
	store     *session.Store
	jwtSecret string
	jwtTTL    time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accounts *services.AccountService, store *session.Store, jwtSecret string, jwtTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		accounts:  accounts,
		store:     store,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

// RegisterAuthRoutes registers the session routes under /accounts
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
}

// RegisterTokenRoutes registers the bearer token route under /api/v1/auth
func (h *AuthHandler) RegisterTokenRoutes(g *echo.Group) {
	g.POST("/token", h.Token)
}

// Signup creates an account and signs the new user in
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	values := echo.Map{"username": req.Username, "email": req.Email}

	user, err := h.accounts.Signup(c.Request().Context(), req)
	if err != nil {
		return renderForm(c, "signup", values, err)
	}

	if err := h.store.Login(c.Response(), c.Request(), user.ID); err != nil {
		return httpError(c, errorx.Wrap(err, "failed to start session"))
	}
	return c.Redirect(http.StatusFound, homePath)
}

// Login checks credentials and starts a session
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	values := echo.Map{"username": req.Username}

	if err := c.Validate(&req); err != nil {
		return renderForm(c, "login", values, err)
	}
	user, err := h.accounts.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return renderForm(c, "login", values, err)
	}

	if err := h.store.Login(c.Response(), c.Request(), user.ID); err != nil {
		return httpError(c, errorx.Wrap(err, "failed to start session"))
	}
	return c.Redirect(http.StatusFound, safeNext(c.QueryParam("next")))
}

// Logout ends the session
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.store.Logout(c.Response(), c.Request()); err != nil {
		c.Logger().Warnf("failed to clear session: %v", err)
	}
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

// Token exchanges credentials for a JWT usable as a bearer token
func (h *AuthHandler) Token(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(c, err)
	}

	user, err := h.accounts.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(c, err)
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return httpError(c, errorx.Wrap(err, "failed to generate token"))
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(h.jwtTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

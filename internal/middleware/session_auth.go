package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"github.com/anonto42/tweetbox/backend/pkg/session"
	"github.com/labstack/echo/v4"
)

const (
	UserKey   = "user"
	UserIDKey = "user_id"

	LoginPath = "/accounts/login"
)

type UserLoader interface {
	User(ctx context.Context, id uint) (*models.User, error)
}

// Authenticate resolves the acting user from a bearer token or, failing that,
// from the session cookie. Browser requests without a session are redirected
// to the login page; a bad bearer token is rejected with 401.
func Authenticate(store *session.Store, users UserLoader, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			var userID uint
			authHeader := req.Header.Get(echo.HeaderAuthorization)
			if authHeader != "" {
				id, err := parseBearer(authHeader, jwtSecret)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
				}
				userID = id
			} else {
				userID = store.UserID(req)
			}

			if userID == 0 {
				return redirectToLogin(c)
			}

			user, err := users.User(req.Context(), userID)
			if errorx.Is(err, errorx.Unauthenticated) {
				if authHeader != "" {
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
				}
				_ = store.Logout(c.Response(), req)
				return redirectToLogin(c)
			}
			if err != nil {
				c.Logger().Errorf("failed to load user %d: %v", userID, err)
				return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
			}

			c.Set(UserKey, user)
			c.Set(UserIDKey, user.ID)
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request().URL.RequestURI()))
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/anonto42/tweetbox/backend/internal/middleware"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"github.com/anonto42/tweetbox/backend/pkg/session"
	"github.com/labstack/echo/v4"
)

const homePath = "/"

// getUserIDFromContext returns the id set by the authentication middleware.
func getUserIDFromContext(c echo.Context) uint {
	id, _ := c.Get(middleware.UserIDKey).(uint)
	return id
}

// parseID reads a numeric path parameter. Anything that is not an id cannot
// name an existing row, so it is reported as not found.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Not found")
	}
	return uint(id), nil
}

// httpError converts a service error into an echo.HTTPError. Internal errors
// are logged and answered with a generic message.
func httpError(c echo.Context, err error) error {
	var e *errorx.Error
	if !errors.As(err, &e) || e.Code == errorx.Internal {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if e.Code == errorx.Validation {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"message": e.Message, "errors": e.Fields})
	}
	return echo.NewHTTPError(e.Code.HTTPStatus(), e.Message)
}

// renderForm answers a rejected form submission with 200 and per-field
// errors so the client can show the form again.
func renderForm(c echo.Context, form string, values echo.Map, err error) error {
	var e *errorx.Error
	if !errors.As(err, &e) || (e.Code != errorx.Validation && e.Code != errorx.Unauthenticated) {
		return httpError(c, err)
	}
	fields := e.Fields
	if fields == nil {
		fields = map[string]string{"__all__": e.Message}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": false,
		"form":    form,
		"values":  values,
		"errors":  fields,
	})
}

func flash(c echo.Context, store *session.Store, msg string) {
	if err := store.AddFlash(c.Response(), c.Request(), msg); err != nil {
		c.Logger().Warnf("failed to store flash message: %v", err)
	}
}

func flashes(c echo.Context, store *session.Store) []string {
	msgs, err := store.Flashes(c.Response(), c.Request())
	if err != nil {
		c.Logger().Warnf("failed to read flash messages: %v", err)
	}
	if msgs == nil {
		msgs = []string{}
	}
	return msgs
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return homePath
	}
	return next
}

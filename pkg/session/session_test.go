package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// roundTrip replays the cookies set on w onto a fresh request.
func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestLoginLogout(t *testing.T) {
	store := NewCookieStore("tweetbox", false, []byte("0123456789abcdef0123456789abcdef"))

	require.Zero(t, store.UserID(httptest.NewRequest(http.MethodGet, "/", nil)))

	w := httptest.NewRecorder()
	require.NoError(t, store.Login(w, httptest.NewRequest(http.MethodPost, "/", nil), 42))
	r := roundTrip(w)
	require.EqualValues(t, 42, store.UserID(r))

	w = httptest.NewRecorder()
	require.NoError(t, store.Logout(w, r))
	require.Zero(t, store.UserID(roundTrip(w)))
}

func TestFlashes(t *testing.T) {
	store := NewCookieStore("tweetbox", false, []byte("0123456789abcdef0123456789abcdef"))

	w := httptest.NewRecorder()
	require.NoError(t, store.AddFlash(w, httptest.NewRequest(http.MethodPost, "/", nil), "You followed bob."))
	r := roundTrip(w)

	w = httptest.NewRecorder()
	msgs, err := store.Flashes(w, r)
	require.NoError(t, err)
	require.Equal(t, []string{"You followed bob."}, msgs)

	msgs, err = store.Flashes(httptest.NewRecorder(), roundTrip(w))
	require.NoError(t, err)
	require.Empty(t, msgs)
}

package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const userIDKey = "user_id"

// Store keeps the signed-in user id and one-shot flash messages in a signed
// cookie.
type Store struct {
	name  string
	store sessions.Store
}

func NewCookieStore(name string, secure bool, keypairs ...[]byte) *Store {
	store := sessions.NewCookieStore(keypairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 14,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{name: name, store: store}
}

func (s *Store) Get(r *http.Request) (*sessions.Session, error) {
	return s.store.Get(r, s.name)
}

// UserID returns the id stored by Login, or 0 for anonymous requests.
func (s *Store) UserID(r *http.Request) uint {
	sess, err := s.Get(r)
	if err != nil {
		return 0
	}
	id, _ := sess.Values[userIDKey].(uint)
	return id
}

func (s *Store) Login(w http.ResponseWriter, r *http.Request, userID uint) error {
	sess, _ := s.Get(r)
	sess.Values[userIDKey] = userID
	return sess.Save(r, w)
}

func (s *Store) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.Get(r)
	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// AddFlash queues an informational message for the next page.
func (s *Store) AddFlash(w http.ResponseWriter, r *http.Request, msg string) error {
	sess, _ := s.Get(r)
	sess.AddFlash(msg)
	return sess.Save(r, w)
}

// Flashes drains the queued messages.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) ([]string, error) {
	sess, _ := s.Get(r)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs, sess.Save(r, w)
}

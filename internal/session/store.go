// Package session persists console sessions in browser cookies: a durable
// cookie for the student session and a session-scoped cookie for the admin
// bearer context, including the active admin tab.
package session

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/noah-isme/interview-console/pkg/config"
)

const (
	studentCookie = "ic_student"
	adminCookie   = "ic_admin"

	tokenKey = "token"
	tabKey   = "active_tab"
)

// DefaultAdminTab is the tab the admin console opens on.
const DefaultAdminTab = "dashboard"

// AdminTabs lists every tab of the admin console. Tab switches outside this
// set are rejected.
var AdminTabs = []string{
	DefaultAdminTab,
	"analytics",
	"students",
	"sessions",
	"leaderboard",
	"questions",
	"imports",
	"mapping",
}

// Store wraps the cookie store with typed accessors for the two console
// audiences.
type Store struct {
	cookies       *sessions.CookieStore
	studentMaxAge int
	secure        bool
}

// NewStore builds a cookie-backed session store. An empty secret gets a
// random key, which invalidates sessions on restart; fine for development.
func NewStore(cfg config.SessionConfig) *Store {
	secret := []byte(cfg.CookieSecret)
	if len(secret) == 0 {
		secret = securecookie.GenerateRandomKey(32)
	}
	cookies := sessions.NewCookieStore(secret)
	cookies.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{
		cookies:       cookies,
		studentMaxAge: int(cfg.StudentMaxAge.Seconds()),
		secure:        cfg.SecureCookies,
	}
}

// SaveStudent writes the student console token into the durable cookie.
func (s *Store) SaveStudent(w http.ResponseWriter, r *http.Request, token string) error {
	sess, _ := s.cookies.Get(r, studentCookie)
	sess.Values[tokenKey] = token
	sess.Options.MaxAge = s.studentMaxAge
	return sess.Save(r, w)
}

// StudentToken reads the student console token, empty when absent.
func (s *Store) StudentToken(r *http.Request) string {
	sess, err := s.cookies.Get(r, studentCookie)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[tokenKey].(string)
	return token
}

// ClearStudent expires the student cookie.
func (s *Store) ClearStudent(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.cookies.Get(r, studentCookie)
	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
}

// SaveAdmin writes the admin console token into the session-scoped cookie
// and resets the active tab.
func (s *Store) SaveAdmin(w http.ResponseWriter, r *http.Request, token string) error {
	sess, _ := s.cookies.Get(r, adminCookie)
	sess.Values[tokenKey] = token
	sess.Values[tabKey] = DefaultAdminTab
	sess.Options.MaxAge = 0
	return sess.Save(r, w)
}

// AdminToken reads the admin console token, empty when absent.
func (s *Store) AdminToken(r *http.Request) string {
	sess, err := s.cookies.Get(r, adminCookie)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[tokenKey].(string)
	return token
}

// SetActiveTab persists the admin console tab so a reload restores it.
func (s *Store) SetActiveTab(w http.ResponseWriter, r *http.Request, tab string) error {
	sess, _ := s.cookies.Get(r, adminCookie)
	sess.Values[tabKey] = tab
	sess.Options.MaxAge = 0
	return sess.Save(r, w)
}

// ActiveTab returns the persisted admin tab, defaulting to the dashboard.
func (s *Store) ActiveTab(r *http.Request) string {
	sess, err := s.cookies.Get(r, adminCookie)
	if err != nil {
		return DefaultAdminTab
	}
	tab, _ := sess.Values[tabKey].(string)
	if tab == "" {
		return DefaultAdminTab
	}
	return tab
}

// ClearAdmin expires the admin cookie.
func (s *Store) ClearAdmin(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.cookies.Get(r, adminCookie)
	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
}

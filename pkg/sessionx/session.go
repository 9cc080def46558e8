// Package sessionx implements the signed session cookie that links requests
// to a previously authenticated user. The cookie carries an HS256-signed
// token whose subject is the user id; nothing else is trusted from it and
// credentials are never re-verified per request.
package sessionx

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultCookieName is the session cookie name unless overridden in config.
const DefaultCookieName = "potluck_session"

// ErrNoSession reports that the request carries no valid session: the cookie
// is absent, malformed, expired, or signed with the wrong key. Callers treat
// all of those identically as "anonymous".
var ErrNoSession = errors.New("sessionx: no active session")

// Manager issues, verifies and clears session cookies.
type Manager struct {
	key        []byte
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager returns a Manager signing cookies with key. The secure flag
// controls the cookie's Secure attribute and should be true outside dev.
func NewManager(key []byte, cookieName string, ttl time.Duration, secure bool) *Manager {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Manager{
		key:        key,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// Issue signs a session token for userID and sets it as a cookie on w.
// Called on successful signup and login.
func (m *Manager) Issue(w http.ResponseWriter, userID string) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})

	signed, err := token.SignedString(m.key)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// UserID resolves the session state of r. It returns the authenticated user
// id, or ErrNoSession when the request is anonymous.
func (m *Manager) UserID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims,
		func(t *jwt.Token) (any, error) { return m.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrNoSession
	}

	return claims.Subject, nil
}

// Clear expires the session cookie, transitioning the client to anonymous.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

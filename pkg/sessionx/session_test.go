package sessionx_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/potlucklabs/potluck/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T, ttl time.Duration) *sessionx.Manager {
	t.Helper()
	key, err := sessionx.LoadOrGenerateKey(filepath.Join(t.TempDir(), "session.key"))
	require.NoError(t, err)
	return sessionx.NewManager(key, "", ttl, false)
}

// requestWithCookies copies the Set-Cookie headers from a recorded response
// onto a fresh request, mimicking a browser.
func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestIssueAndResolve(t *testing.T) {
	m := testManager(t, time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, "user-123"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, sessionx.DefaultCookieName, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)

	userID, err := m.UserID(requestWithCookies(rec))
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)
}

func TestUserID_Anonymous(t *testing.T) {
	m := testManager(t, time.Hour)

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := m.UserID(req)
		require.ErrorIs(t, err, sessionx.ErrNoSession)
	})

	t.Run("garbage cookie value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionx.DefaultCookieName, Value: "garbage"})
		_, err := m.UserID(req)
		require.ErrorIs(t, err, sessionx.ErrNoSession)
	})

	t.Run("expired session", func(t *testing.T) {
		expired := testManager(t, -time.Minute)
		rec := httptest.NewRecorder()
		require.NoError(t, expired.Issue(rec, "user-123"))

		_, err := expired.UserID(requestWithCookies(rec))
		require.ErrorIs(t, err, sessionx.ErrNoSession)
	})
}

func TestUserID_WrongKey(t *testing.T) {
	// A cookie signed by one manager must not verify under another key.
	issuer := testManager(t, time.Hour)
	verifier := testManager(t, time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, issuer.Issue(rec, "user-123"))

	_, err := verifier.UserID(requestWithCookies(rec))
	require.ErrorIs(t, err, sessionx.ErrNoSession)
}

func TestClear(t *testing.T) {
	m := testManager(t, time.Hour)

	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}

func TestLoadOrGenerateKey_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.key")

	key1, err := sessionx.LoadOrGenerateKey(path)
	require.NoError(t, err)
	require.Len(t, key1, 32)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	key2, err := sessionx.LoadOrGenerateKey(path)
	require.NoError(t, err)
	require.Equal(t, key1, key2, "key must be stable across loads")
}

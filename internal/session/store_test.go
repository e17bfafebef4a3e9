package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/pkg/config"
)

func testStore() *Store {
	return NewStore(config.SessionConfig{
		CookieSecret:  "test-cookie-secret",
		StudentMaxAge: 30 * 24 * time.Hour,
	})
}

// replay copies the cookies set by a previous response onto a fresh request.
func replay(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestStudentTokenRoundTrip(t *testing.T) {
	store := testStore()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	require.NoError(t, store.SaveStudent(rec, req, "student-token"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "ic_student", cookies[0].Name)
	assert.Greater(t, cookies[0].MaxAge, 0)
	assert.True(t, cookies[0].HttpOnly)

	assert.Equal(t, "student-token", store.StudentToken(replay(t, rec)))
}

func TestAdminCookieIsSessionScoped(t *testing.T) {
	store := testStore()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	require.NoError(t, store.SaveAdmin(rec, req, "admin-token"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "ic_admin", cookies[0].Name)
	assert.Zero(t, cookies[0].MaxAge)

	next := replay(t, rec)
	assert.Equal(t, "admin-token", store.AdminToken(next))
	assert.Equal(t, DefaultAdminTab, store.ActiveTab(next))
}

func TestActiveTabPersistsAcrossRequests(t *testing.T) {
	store := testStore()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, store.SaveAdmin(rec, req, "admin-token"))

	rec2 := httptest.NewRecorder()
	require.NoError(t, store.SetActiveTab(rec2, replay(t, rec), "leaderboard"))

	assert.Equal(t, "leaderboard", store.ActiveTab(replay(t, rec2)))
}

func TestRelogInResetsActiveTab(t *testing.T) {
	store := testStore()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, store.SaveAdmin(rec, req, "admin-token"))

	rec2 := httptest.NewRecorder()
	require.NoError(t, store.SetActiveTab(rec2, replay(t, rec), "students"))

	rec3 := httptest.NewRecorder()
	require.NoError(t, store.SaveAdmin(rec3, replay(t, rec2), "fresh-token"))

	next := replay(t, rec3)
	assert.Equal(t, "fresh-token", store.AdminToken(next))
	assert.Equal(t, DefaultAdminTab, store.ActiveTab(next))
}

func TestClearExpiresCookies(t *testing.T) {
	store := testStore()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, store.SaveStudent(rec, req, "student-token"))

	rec2 := httptest.NewRecorder()
	store.ClearStudent(rec2, replay(t, rec))

	cookies := rec2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestTokensAbsentWithoutCookies(t *testing.T) {
	store := testStore()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, store.StudentToken(req))
	assert.Empty(t, store.AdminToken(req))
	assert.Equal(t, DefaultAdminTab, store.ActiveTab(req))
}

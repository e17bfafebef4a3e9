package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/service"
	"github.com/noah-isme/interview-console/internal/session"
	"github.com/noah-isme/interview-console/internal/upstream"
	"github.com/noah-isme/interview-console/pkg/config"
)

type fakeAuthUpstream struct{}

func (fakeAuthUpstream) StudentLogin(context.Context, upstream.StudentLoginRequest) (*models.StudentSession, error) {
	return &models.StudentSession{StudentID: "stu-1", Token: "upstream-student"}, nil
}

func (fakeAuthUpstream) AdminLogin(context.Context, upstream.AdminLoginRequest) (*upstream.AdminLoginResponse, error) {
	return &upstream.AdminLoginResponse{
		Token:   "upstream-admin",
		Profile: &models.AdminProfile{ID: "adm-1", Email: "admin@example.com"},
	}, nil
}

func (fakeAuthUpstream) AdminLogout(context.Context, string) error { return nil }

func (fakeAuthUpstream) AdminProfile(context.Context, string) (*models.AdminProfile, error) {
	return &models.AdminProfile{ID: "adm-1"}, nil
}

func sessionFixture(t *testing.T) (*session.Store, *service.AuthService, string, string) {
	t.Helper()
	store := session.NewStore(config.SessionConfig{
		CookieSecret:  "cookie-secret",
		StudentMaxAge: time.Hour,
	})
	auth := service.NewAuthService(fakeAuthUpstream{}, service.AuthConfig{JWTSecret: "jwt-secret"}, nil, nil)

	_, studentToken, err := auth.StudentLogin(context.Background(), service.LoginRequest{
		Email: "student@example.com", Password: "pw",
	})
	require.NoError(t, err)
	_, adminToken, err := auth.AdminLogin(context.Background(), service.LoginRequest{
		Email: "admin@example.com", Password: "pw",
	})
	require.NoError(t, err)

	return store, auth, studentToken, adminToken
}

func runProtected(t *testing.T, mw gin.HandlerFunc, cookies []*http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	reached := false

	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		reached = true
		_, hasClaims := c.Get(ContextUserKey)
		assert.True(t, hasClaims)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(rec, req)
	return rec, reached
}

func cookiesFor(t *testing.T, save func(http.ResponseWriter, *http.Request, string) error, token string) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, save(rec, req, token))
	return rec.Result().Cookies()
}

func TestStudentSessionAllowsValidCookie(t *testing.T) {
	store, auth, studentToken, _ := sessionFixture(t)

	rec, reached := runProtected(t, StudentSession(store, auth), cookiesFor(t, store.SaveStudent, studentToken))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestStudentSessionRejectsMissingCookie(t *testing.T) {
	store, auth, _, _ := sessionFixture(t)

	rec, reached := runProtected(t, StudentSession(store, auth), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAdminSessionRejectsStudentToken(t *testing.T) {
	store, auth, studentToken, _ := sessionFixture(t)

	rec, reached := runProtected(t, AdminSession(store, auth), cookiesFor(t, store.SaveAdmin, studentToken))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestAdminSessionAllowsValidCookie(t *testing.T) {
	store, auth, _, adminToken := sessionFixture(t)

	rec, reached := runProtected(t, AdminSession(store, auth), cookiesFor(t, store.SaveAdmin, adminToken))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestSessionRejectsTamperedToken(t *testing.T) {
	store, auth, studentToken, _ := sessionFixture(t)

	rec, reached := runProtected(t, StudentSession(store, auth), cookiesFor(t, store.SaveStudent, studentToken+"x"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

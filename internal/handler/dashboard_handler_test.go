package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/internal/dto"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

type fakeDashboardSrv struct {
	student    *dto.StudentDashboardResponse
	admin      *dto.AdminDashboardResponse
	adminErr   error
	analytics  *dto.AnalyticsResponse
	lastPeriod string
}

func (f *fakeDashboardSrv) Student(context.Context, string) (*dto.StudentDashboardResponse, error) {
	return f.student, nil
}

func (f *fakeDashboardSrv) Admin(context.Context, string) (*dto.AdminDashboardResponse, error) {
	return f.admin, f.adminErr
}

func (f *fakeDashboardSrv) Analytics(_ context.Context, _ string, period string) (*dto.AnalyticsResponse, error) {
	f.lastPeriod = period
	return f.analytics, nil
}

func TestAdminDashboardUnauthenticated(t *testing.T) {
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	c.Keys = nil // drop the session claims

	handler.Admin(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminDashboardUpstreamFailure(t *testing.T) {
	handler := NewDashboardHandler(&fakeDashboardSrv{
		adminErr: appErrors.Clone(appErrors.ErrUpstream, "stats unavailable"),
	})

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	handler.Admin(c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "stats unavailable", envelope.Error["message"])
}

func TestAdminDashboardSuccess(t *testing.T) {
	handler := NewDashboardHandler(&fakeDashboardSrv{
		admin: &dto.AdminDashboardResponse{Stats: &dto.DashboardStats{TotalStudents: 7}},
	})

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	handler.Admin(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	stats, ok := envelope.Data["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(7), stats["total_students"])
}

func TestAnalyticsDefaultsPeriod(t *testing.T) {
	srv := &fakeDashboardSrv{analytics: &dto.AnalyticsResponse{}}
	handler := NewDashboardHandler(srv)

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet, "/admin/analytics", nil))

	handler.Analytics(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "30d", srv.lastPeriod)
}

func TestAnalyticsHonoursPeriodQuery(t *testing.T) {
	srv := &fakeDashboardSrv{analytics: &dto.AnalyticsResponse{}}
	handler := NewDashboardHandler(srv)

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet, "/admin/analytics?period=90d", nil))

	handler.Analytics(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "90d", srv.lastPeriod)
}

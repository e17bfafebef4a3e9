package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/internal/dto"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

type fakeDashboardAPI struct {
	stats        *dto.DashboardStats
	statsErr     error
	insights     []dto.Insight
	insightsErr  error
	ubp          []dto.UBPPerformance
	ubpErr       error
	retention    *dto.RetentionSummary
	retentionErr error
	analytics    *dto.AnalyticsResponse
	analyticsErr error
	student      *dto.StudentDashboardResponse
	studentErr   error
}

func (f *fakeDashboardAPI) StudentDashboard(context.Context, string) (*dto.StudentDashboardResponse, error) {
	return f.student, f.studentErr
}

func (f *fakeDashboardAPI) DashboardStats(context.Context, string) (*dto.DashboardStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeDashboardAPI) Insights(context.Context, string) ([]dto.Insight, error) {
	return f.insights, f.insightsErr
}

func (f *fakeDashboardAPI) UBPPerformance(context.Context, string) ([]dto.UBPPerformance, error) {
	return f.ubp, f.ubpErr
}

func (f *fakeDashboardAPI) Retention(context.Context, string) (*dto.RetentionSummary, error) {
	return f.retention, f.retentionErr
}

func (f *fakeDashboardAPI) Analytics(context.Context, string, string) (*dto.AnalyticsResponse, error) {
	return f.analytics, f.analyticsErr
}

func TestAdminDashboardStatsFailureFailsPage(t *testing.T) {
	api := &fakeDashboardAPI{statsErr: appErrors.Clone(appErrors.ErrUpstream, "stats unavailable")}
	svc := NewDashboardService(api, nil)

	resp, err := svc.Admin(context.Background(), "token")

	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestAdminDashboardAuxiliarySectionsDegrade(t *testing.T) {
	api := &fakeDashboardAPI{
		stats:        &dto.DashboardStats{TotalStudents: 42},
		insightsErr:  appErrors.Clone(appErrors.ErrUpstream, "insights down"),
		ubp:          []dto.UBPPerformance{{University: "Alpha University"}},
		retentionErr: appErrors.Clone(appErrors.ErrUpstream, "retention down"),
	}
	svc := NewDashboardService(api, nil)

	resp, err := svc.Admin(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, 42, resp.Stats.TotalStudents)
	assert.Empty(t, resp.Insights)
	assert.Nil(t, resp.Retention)
	require.Len(t, resp.UBPPerformance, 1)
	assert.Equal(t, "Alpha University", resp.UBPPerformance[0].University)
}

func TestStudentDashboardPassthrough(t *testing.T) {
	api := &fakeDashboardAPI{student: &dto.StudentDashboardResponse{}}
	svc := NewDashboardService(api, nil)

	resp, err := svc.Student(context.Background(), "token")

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

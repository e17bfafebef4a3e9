package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/dto"
)

type dashboardAPI interface {
	StudentDashboard(ctx context.Context, token string) (*dto.StudentDashboardResponse, error)
	DashboardStats(ctx context.Context, token string) (*dto.DashboardStats, error)
	Insights(ctx context.Context, token string) ([]dto.Insight, error)
	UBPPerformance(ctx context.Context, token string) ([]dto.UBPPerformance, error)
	Retention(ctx context.Context, token string) (*dto.RetentionSummary, error)
	Analytics(ctx context.Context, token string, period string) (*dto.AnalyticsResponse, error)
}

// DashboardService assembles the student and admin dashboard pages.
type DashboardService struct {
	api    dashboardAPI
	logger *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(api dashboardAPI, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{api: api, logger: logger}
}

// Student fetches the student's own dashboard.
func (s *DashboardService) Student(ctx context.Context, token string) (*dto.StudentDashboardResponse, error) {
	return s.api.StudentDashboard(ctx, token)
}

// Admin assembles the admin dashboard. The headline stats are the primary
// fetch and fail the page; insights, cohort performance and retention are
// auxiliary and degrade to empty fields on failure.
func (s *DashboardService) Admin(ctx context.Context, token string) (*dto.AdminDashboardResponse, error) {
	stats, err := s.api.DashboardStats(ctx, token)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdminDashboardResponse{Stats: stats}

	if insights, err := s.api.Insights(ctx, token); err != nil {
		s.logger.Warn("insights unavailable", zap.Error(err))
	} else {
		resp.Insights = insights
	}

	if rows, err := s.api.UBPPerformance(ctx, token); err != nil {
		s.logger.Warn("ubp performance unavailable", zap.Error(err))
	} else {
		resp.UBPPerformance = rows
	}

	if retention, err := s.api.Retention(ctx, token); err != nil {
		s.logger.Warn("retention unavailable", zap.Error(err))
	} else {
		resp.Retention = retention
	}

	return resp, nil
}

// Analytics fetches the chart series of the analytics tab.
func (s *DashboardService) Analytics(ctx context.Context, token, period string) (*dto.AnalyticsResponse, error) {
	return s.api.Analytics(ctx, token, period)
}

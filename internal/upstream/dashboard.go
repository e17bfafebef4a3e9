package upstream

import (
	"context"
	"net/url"

	"github.com/noah-isme/interview-console/internal/dto"
)

// DashboardStats fetches the headline admin dashboard numbers.
func (c *Client) DashboardStats(ctx context.Context, token string) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats
	if err := c.get(ctx, "/api/admin/dashboard/stats", nil, token, &stats, "failed to load dashboard"); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Insights fetches generated dashboard observations.
func (c *Client) Insights(ctx context.Context, token string) ([]dto.Insight, error) {
	var insights []dto.Insight
	if err := c.get(ctx, "/api/admin/insights", nil, token, &insights, "failed to load insights"); err != nil {
		return nil, err
	}
	return insights, nil
}

// UBPPerformance fetches per-cohort score aggregates.
func (c *Client) UBPPerformance(ctx context.Context, token string) ([]dto.UBPPerformance, error) {
	var rows []dto.UBPPerformance
	if err := c.get(ctx, "/api/admin/ubp-performance", nil, token, &rows, "failed to load cohort performance"); err != nil {
		return nil, err
	}
	return rows, nil
}

// Retention fetches student retention numbers.
func (c *Client) Retention(ctx context.Context, token string) (*dto.RetentionSummary, error) {
	var retention dto.RetentionSummary
	if err := c.get(ctx, "/api/admin/retention", nil, token, &retention, "failed to load retention"); err != nil {
		return nil, err
	}
	return &retention, nil
}

// Analytics fetches the chart series backing the analytics tab.
func (c *Client) Analytics(ctx context.Context, token string, period string) (*dto.AnalyticsResponse, error) {
	query := url.Values{}
	setIfPresent(query, "period", period)
	var analytics dto.AnalyticsResponse
	if err := c.get(ctx, "/api/admin/analytics", query, token, &analytics, "failed to load analytics"); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// StudentDashboard fetches the student's own dashboard payload.
func (c *Client) StudentDashboard(ctx context.Context, token string) (*dto.StudentDashboardResponse, error) {
	var dashboard dto.StudentDashboardResponse
	if err := c.get(ctx, "/api/students/dashboard", nil, token, &dashboard, "failed to load dashboard"); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

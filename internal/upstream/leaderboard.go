package upstream

import (
	"context"
	"net/url"

	"github.com/noah-isme/interview-console/internal/models"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

// Leaderboard fetches the filtered, paginated leaderboard.
func (c *Client) Leaderboard(ctx context.Context, token string, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, *models.Pagination, error) {
	query := url.Values{}
	setIfPresent(query, "university", filter.University)
	setIfPresent(query, "program", filter.Program)
	setIfPresent(query, "batch", filter.Batch)
	setIfPresent(query, "job_role", filter.JobRole)
	setIfPresent(query, "period", filter.Period)
	setPage(query, filter.Page, filter.PageSize)

	var envelope listEnvelope
	if err := c.get(ctx, "/api/admin/leaderboard", query, token, &envelope, "failed to load leaderboard"); err != nil {
		return nil, nil, err
	}

	var entries []models.LeaderboardEntry
	pagination, err := decodeList(envelope, &entries)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load leaderboard")
	}
	return entries, pagination, nil
}

// LeaderboardFilterOptions fetches the option lists of the leaderboard
// filters.
func (c *Client) LeaderboardFilterOptions(ctx context.Context, token string) (*models.LeaderboardOptions, error) {
	var options models.LeaderboardOptions
	if err := c.get(ctx, "/api/admin/leaderboard/filter-options", nil, token, &options, "failed to load filter options"); err != nil {
		return nil, err
	}
	return &options, nil
}

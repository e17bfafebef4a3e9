package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/internal/models"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

type fakeLeaderboardAPI struct {
	pages   map[int][]models.LeaderboardEntry
	total   int
	options *models.LeaderboardOptions
	filters []models.LeaderboardFilter
}

func (f *fakeLeaderboardAPI) Leaderboard(_ context.Context, _ string, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, *models.Pagination, error) {
	f.filters = append(f.filters, filter)
	entries := f.pages[filter.Page]
	return entries, &models.Pagination{Page: filter.Page, Pages: f.total, PageSize: filter.PageSize}, nil
}

func (f *fakeLeaderboardAPI) LeaderboardFilterOptions(context.Context, string) (*models.LeaderboardOptions, error) {
	return f.options, nil
}

func leaderboardConfig() ListingConfig {
	return ListingConfig{DebounceWindow: time.Millisecond, DefaultPageSize: 2}
}

func TestLeaderboardViewAppliesFilters(t *testing.T) {
	api := &fakeLeaderboardAPI{
		pages: map[int][]models.LeaderboardEntry{1: {{Rank: 1, StudentName: "Ada"}}},
		total: 1,
	}
	svc := NewLeaderboardService(api, leaderboardConfig(), true, nil)

	require.NoError(t, svc.SetFilter(context.Background(), "admin-1", "token", "university", "Alpha University"))
	require.NoError(t, svc.Apply(context.Background(), "admin-1", "token"))

	snapshot, err := svc.View(context.Background(), "admin-1", "token")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"university": "Alpha University"}, snapshot.Applied)
	require.NotEmpty(t, api.filters)
	assert.Equal(t, "Alpha University", api.filters[len(api.filters)-1].University)
}

func TestLeaderboardExportWalksAllPages(t *testing.T) {
	api := &fakeLeaderboardAPI{
		pages: map[int][]models.LeaderboardEntry{
			1: {{Rank: 1, StudentName: "Ada", AverageScore: 91.5}, {Rank: 2, StudentName: "Alan", AverageScore: 88.2}},
			2: {{Rank: 3, StudentName: "Grace", AverageScore: 84.9}},
		},
		total: 2,
	}
	svc := NewLeaderboardService(api, leaderboardConfig(), true, nil)

	content, contentType, err := svc.Export(context.Background(), "admin-1", "token", "csv")

	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	body := string(content)
	assert.True(t, strings.HasPrefix(body, "Rank,Student,University,Program,Batch,Sessions,Average Score,Best Score"))
	assert.Contains(t, body, "Ada")
	assert.Contains(t, body, "Grace")
	assert.Contains(t, body, "91.5")
}

func TestLeaderboardExportDisabled(t *testing.T) {
	svc := NewLeaderboardService(&fakeLeaderboardAPI{total: 1}, leaderboardConfig(), false, nil)

	_, _, err := svc.Export(context.Background(), "admin-1", "token", "csv")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestLeaderboardExportRejectsUnknownFormat(t *testing.T) {
	svc := NewLeaderboardService(&fakeLeaderboardAPI{total: 1}, leaderboardConfig(), true, nil)

	_, _, err := svc.Export(context.Background(), "admin-1", "token", "xlsx")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLeaderboardPDFExport(t *testing.T) {
	api := &fakeLeaderboardAPI{
		pages: map[int][]models.LeaderboardEntry{1: {{Rank: 1, StudentName: "Ada"}}},
		total: 1,
	}
	svc := NewLeaderboardService(api, leaderboardConfig(), true, nil)

	content, contentType, err := svc.Export(context.Background(), "admin-1", "token", "pdf")

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

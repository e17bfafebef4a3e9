package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/view"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/export"
)

type leaderboardAPI interface {
	Leaderboard(ctx context.Context, token string, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, *models.Pagination, error)
	LeaderboardFilterOptions(ctx context.Context, token string) (*models.LeaderboardOptions, error)
}

var leaderboardHeaders = []string{
	"Rank", "Student", "University", "Program", "Batch",
	"Sessions", "Average Score", "Best Score",
}

// LeaderboardService drives the leaderboard tab and its snapshot exports.
type LeaderboardService struct {
	api           leaderboardAPI
	cfg           ListingConfig
	exportEnabled bool
	csv           *export.CSVExporter
	pdf           *export.PDFExporter
	logger        *zap.Logger
	registry      *listingRegistry
}

// NewLeaderboardService constructs the leaderboard service.
func NewLeaderboardService(api leaderboardAPI, cfg ListingConfig, exportEnabled bool, logger *zap.Logger) *LeaderboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &LeaderboardService{
		api:           api,
		cfg:           cfg,
		exportEnabled: exportEnabled,
		csv:           export.NewCSVExporter(),
		pdf:           export.NewPDFExporter(),
		logger:        logger,
	}
	s.registry = newListingRegistry(func(v *adminView) *view.Listing {
		listing := view.NewListing(s.listFunc(v), cfg.DebounceWindow)
		listing.SetDependents("university", "program", "batch")
		listing.SetDependents("program", "batch")
		return listing
	})
	return s
}

func (s *LeaderboardService) listFunc(v *adminView) view.ListFunc {
	return func(ctx context.Context, filters map[string]string, page int) (interface{}, *models.Pagination, error) {
		filter := leaderboardFilter(filters)
		filter.Page = page
		filter.PageSize = s.cfg.DefaultPageSize
		entries, pagination, err := s.api.Leaderboard(ctx, v.currentToken(), filter)
		if err != nil {
			s.logger.Warn("leaderboard fetch failed", zap.Error(err))
			return nil, nil, err
		}
		return entries, pagination, nil
	}
}

func leaderboardFilter(filters map[string]string) models.LeaderboardFilter {
	return models.LeaderboardFilter{
		University: filters["university"],
		Program:    filters["program"],
		Batch:      filters["batch"],
		JobRole:    filters["job_role"],
		Period:     filters["period"],
	}
}

// SetFilter stages one leaderboard filter edit.
func (s *LeaderboardService) SetFilter(ctx context.Context, subject, token, name, value string) error {
	return s.registry.get(subject, token).SetFilterInput(ctx, name, value)
}

// Apply applies the staged filters and refetches from page one.
func (s *LeaderboardService) Apply(ctx context.Context, subject, token string) error {
	return s.registry.get(subject, token).ApplyFilters(ctx)
}

// Clear resets every filter and refetches the unscoped first page.
func (s *LeaderboardService) Clear(ctx context.Context, subject, token string) error {
	return s.registry.get(subject, token).ClearFilters(ctx)
}

// SetPage moves the admin's leaderboard to the given page.
func (s *LeaderboardService) SetPage(ctx context.Context, subject, token string, page int) error {
	return s.registry.get(subject, token).SetPage(ctx, page)
}

// View returns the current leaderboard state, fetching the first page on
// the first visit.
func (s *LeaderboardService) View(ctx context.Context, subject, token string) (view.Snapshot, error) {
	listing := s.registry.get(subject, token)
	snapshot, err := listing.Snapshot()
	if err == nil && snapshot.Data == nil {
		if err := listing.Refresh(ctx); err != nil {
			return view.Snapshot{}, err
		}
		return listing.Snapshot()
	}
	return snapshot, err
}

// FilterOptions returns the dropdown values the leaderboard filters offer.
func (s *LeaderboardService) FilterOptions(ctx context.Context, token string) (*models.LeaderboardOptions, error) {
	return s.api.LeaderboardFilterOptions(ctx, token)
}

// Export renders the whole leaderboard under the admin's applied filters
// as csv or pdf bytes plus a content type.
func (s *LeaderboardService) Export(ctx context.Context, subject, token, format string) ([]byte, string, error) {
	if !s.exportEnabled {
		return nil, "", appErrors.Clone(appErrors.ErrForbidden, "leaderboard export is disabled")
	}
	snapshot, err := s.View(ctx, subject, token)
	if err != nil {
		return nil, "", err
	}

	entries, err := s.collectAll(ctx, token, snapshot.Applied)
	if err != nil {
		return nil, "", err
	}
	dataset := leaderboardDataset(entries)

	switch format {
	case "csv":
		content, err := s.csv.Render(dataset)
		return content, "text/csv", err
	case "pdf":
		content, err := s.pdf.Render(dataset, "Interview Leaderboard")
		return content, "application/pdf", err
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// collectAll walks every page of the filtered leaderboard. Exports are
// snapshots of the full ranking, not the visible page.
func (s *LeaderboardService) collectAll(ctx context.Context, token string, filters map[string]string) ([]models.LeaderboardEntry, error) {
	filter := leaderboardFilter(filters)
	filter.PageSize = s.cfg.DefaultPageSize

	var all []models.LeaderboardEntry
	for page := 1; ; page++ {
		filter.Page = page
		entries, pagination, err := s.api.Leaderboard(ctx, token, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
		if pagination == nil || !pagination.HasNext() {
			return all, nil
		}
	}
}

func leaderboardDataset(entries []models.LeaderboardEntry) export.Dataset {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.Itoa(entry.Rank),
			entry.StudentName,
			entry.University,
			entry.Program,
			entry.Batch,
			strconv.Itoa(entry.SessionCount),
			fmt.Sprintf("%.1f", entry.AverageScore),
			fmt.Sprintf("%.1f", entry.BestScore),
		})
	}
	return export.Dataset{Headers: leaderboardHeaders, Rows: rows}
}

// Forget drops the admin's leaderboard view state.
func (s *LeaderboardService) Forget(subject string) {
	s.registry.drop(subject)
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/view"
)

type sessionsAPI interface {
	ListSessions(ctx context.Context, token string, filter models.SessionFilter) ([]models.InterviewSession, *models.Pagination, error)
}

// SessionListService drives the interview-sessions tab of the admin console.
type SessionListService struct {
	api      sessionsAPI
	cfg      ListingConfig
	logger   *zap.Logger
	registry *listingRegistry
}

// NewSessionListService constructs the session list service.
func NewSessionListService(api sessionsAPI, cfg ListingConfig, logger *zap.Logger) *SessionListService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SessionListService{api: api, cfg: cfg, logger: logger}
	s.registry = newListingRegistry(func(v *adminView) *view.Listing {
		return view.NewListing(s.listFunc(v), cfg.DebounceWindow, "search")
	})
	return s
}

func (s *SessionListService) listFunc(v *adminView) view.ListFunc {
	return func(ctx context.Context, filters map[string]string, page int) (interface{}, *models.Pagination, error) {
		filter := models.SessionFilter{
			Search:        filters["search"],
			JobRole:       filters["job_role"],
			Company:       filters["company"],
			InterviewType: filters["interview_type"],
			Status:        filters["status"],
			Page:          page,
			PageSize:      s.cfg.DefaultPageSize,
		}
		sessions, pagination, err := s.api.ListSessions(ctx, v.currentToken(), filter)
		if err != nil {
			s.logger.Warn("session list fetch failed", zap.Error(err))
			return nil, nil, err
		}
		return sessions, pagination, nil
	}
}

// SetFilter stages one filter edit for an admin's session list.
func (s *SessionListService) SetFilter(ctx context.Context, subject, token, name, value string) error {
	return s.registry.get(subject, token).SetFilterInput(ctx, name, value)
}

// Apply applies the staged filters and refetches from page one.
func (s *SessionListService) Apply(ctx context.Context, subject, token string) error {
	return s.registry.get(subject, token).ApplyFilters(ctx)
}

// Clear resets every filter and refetches the unfiltered first page.
func (s *SessionListService) Clear(ctx context.Context, subject, token string) error {
	return s.registry.get(subject, token).ClearFilters(ctx)
}

// SetPage moves the admin's session list to the given page.
func (s *SessionListService) SetPage(ctx context.Context, subject, token string, page int) error {
	return s.registry.get(subject, token).SetPage(ctx, page)
}

// View returns the current list state, fetching the first page on the
// first visit.
func (s *SessionListService) View(ctx context.Context, subject, token string) (view.Snapshot, error) {
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

// Forget drops the admin's session list state.
func (s *SessionListService) Forget(subject string) {
	s.registry.drop(subject)
}

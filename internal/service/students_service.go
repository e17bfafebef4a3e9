package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/view"
)

type studentsAPI interface {
	ListStudents(ctx context.Context, token string, filter models.StudentFilter) ([]models.Student, *models.Pagination, error)
}

// ListingConfig tunes the admin list views.
type ListingConfig struct {
	DebounceWindow  time.Duration
	DefaultPageSize int
}

// StudentListService drives the registered-students tab of the admin
// console. Each admin gets an isolated view whose staged filters, applied
// filters and page persist across requests.
type StudentListService struct {
	api      studentsAPI
	cfg      ListingConfig
	logger   *zap.Logger
	registry *listingRegistry
}

// NewStudentListService constructs the student list service.
func NewStudentListService(api studentsAPI, cfg ListingConfig, logger *zap.Logger) *StudentListService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &StudentListService{api: api, cfg: cfg, logger: logger}
	s.registry = newListingRegistry(func(v *adminView) *view.Listing {
		listing := view.NewListing(s.listFunc(v), cfg.DebounceWindow, "search")
		listing.SetDependents("university", "program", "batch")
		listing.SetDependents("program", "batch")
		return listing
	})
	return s
}

func (s *StudentListService) listFunc(v *adminView) view.ListFunc {
	return func(ctx context.Context, filters map[string]string, page int) (interface{}, *models.Pagination, error) {
		filter := models.StudentFilter{
			Search:     filters["search"],
			University: filters["university"],
			Program:    filters["program"],
			Batch:      filters["batch"],
			Status:     filters["status"],
			Page:       page,
			PageSize:   s.cfg.DefaultPageSize,
		}
		students, pagination, err := s.api.ListStudents(ctx, v.currentToken(), filter)
		if err != nil {
			s.logger.Warn("student list fetch failed", zap.Error(err))
			return nil, nil, err
		}
		return students, pagination, nil
	}
}

// SetFilter stages one filter edit for an admin's student list.
func (s *StudentListService) SetFilter(ctx context.Context, subject, token, name, value string) error {
	return s.registry.get(subject, token).SetFilterInput(ctx, name, value)
}

// Apply applies the staged filters and refetches from page one.
func (s *StudentListService) Apply(ctx context.Context, subject, token string) error {
	return s.registry.get(subject, token).ApplyFilters(ctx)
}

// Clear resets every filter and refetches the unfiltered first page.
func (s *StudentListService) Clear(ctx context.Context, subject, token string) error {
	return s.registry.get(subject, token).ClearFilters(ctx)
}

// SetPage moves the admin's student list to the given page.
func (s *StudentListService) SetPage(ctx context.Context, subject, token string, page int) error {
	return s.registry.get(subject, token).SetPage(ctx, page)
}

// View returns the current list state, fetching the first page when the
// admin has not visited the tab yet.
func (s *StudentListService) View(ctx context.Context, subject, token string) (view.Snapshot, error) {
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

// Forget drops the admin's student list state.
func (s *StudentListService) Forget(subject string) {
	s.registry.drop(subject)
}

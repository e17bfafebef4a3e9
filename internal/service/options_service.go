package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/pkg/jobs"
)

const optionsCacheKey = "console:options:bulk_upload"

type optionsAPI interface {
	BulkUploadOptions(ctx context.Context, token string) (*models.OptionSets, error)
	Universities(ctx context.Context, token string) ([]string, error)
	Programs(ctx context.Context, token, university string) ([]string, error)
	Batches(ctx context.Context, token, university, program string) ([]string, error)
	ResolveUBP(ctx context.Context, token, university, program, batch string) (string, error)
}

// OptionsService serves the shared option sets behind the question upload
// and role mapping forms, cached in Redis, plus the university cascade
// lookups. A background queue refreshes the cache off the request path.
type OptionsService struct {
	api     optionsAPI
	cache   redis.Cmdable
	ttl     time.Duration
	logger  *zap.Logger
	queue   *jobs.Queue
	metrics *MetricsService
}

// NewOptionsService constructs the options service. The cache client may be
// nil, in which case every read goes to the platform API.
func NewOptionsService(api optionsAPI, cache redis.Cmdable, ttl time.Duration, warmWorkers int, logger *zap.Logger) *OptionsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &OptionsService{api: api, cache: cache, ttl: ttl, logger: logger}
	s.queue = jobs.NewQueue("options-warmup", s.handleTask, jobs.QueueConfig{
		Workers: warmWorkers,
		Logger:  logger,
	})
	return s
}

// SetMetrics attaches cache hit/miss instrumentation.
func (s *OptionsService) SetMetrics(metrics *MetricsService) {
	s.metrics = metrics
}

// Start launches the warmup workers.
func (s *OptionsService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the warmup queue.
func (s *OptionsService) Stop() {
	s.queue.Stop()
}

func (s *OptionsService) handleTask(ctx context.Context, task jobs.Task) error {
	token, _ := task.Payload.(string)
	_, err := s.refresh(ctx, token)
	return err
}

// BulkUploadOptions returns the cached option sets, refreshing from the
// platform API on a miss.
func (s *OptionsService) BulkUploadOptions(ctx context.Context, token string) (*models.OptionSets, error) {
	if cached := s.cachedOptions(ctx); cached != nil {
		return cached, nil
	}
	return s.refresh(ctx, token)
}

func (s *OptionsService) cachedOptions(ctx context.Context) *models.OptionSets {
	if s.cache == nil {
		return nil
	}
	start := time.Now()
	raw, err := s.cache.Get(ctx, optionsCacheKey).Bytes()
	if err != nil {
		s.metrics.RecordCacheOperation(false, time.Since(start))
		if err != redis.Nil {
			s.logger.Warn("options cache read failed", zap.Error(err))
		}
		return nil
	}
	var sets models.OptionSets
	if err := json.Unmarshal(raw, &sets); err != nil {
		s.logger.Warn("options cache entry corrupt", zap.Error(err))
		return nil
	}
	s.metrics.RecordCacheOperation(true, time.Since(start))
	return &sets
}

func (s *OptionsService) refresh(ctx context.Context, token string) (*models.OptionSets, error) {
	sets, err := s.api.BulkUploadOptions(ctx, token)
	if err != nil {
		return nil, err
	}
	s.store(ctx, sets)
	return sets, nil
}

func (s *OptionsService) store(ctx context.Context, sets *models.OptionSets) {
	if s.cache == nil || sets == nil {
		return
	}
	raw, err := json.Marshal(sets)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, optionsCacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("options cache write failed", zap.Error(err))
	}
}

// Warm schedules a background cache refresh using the given token.
func (s *OptionsService) Warm(token string) {
	task := jobs.Task{
		ID:       uuid.NewString(),
		Type:     "warm_options",
		Payload:  token,
		Enqueued: time.Now(),
	}
	if err := s.queue.Enqueue(task); err != nil {
		s.logger.Warn("options warmup enqueue failed", zap.Error(err))
	}
}

// Invalidate drops the cached option sets and schedules a refresh.
func (s *OptionsService) Invalidate(ctx context.Context, token string) {
	if s.cache != nil {
		if err := s.cache.Del(ctx, optionsCacheKey).Err(); err != nil {
			s.logger.Warn("options cache invalidate failed", zap.Error(err))
		}
	}
	s.Warm(token)
}

// MergeRoles folds freshly created roles into the cached option sets so the
// role dropdowns offer them before the next refresh.
func (s *OptionsService) MergeRoles(ctx context.Context, token string, roles ...string) {
	sets, err := s.BulkUploadOptions(ctx, token)
	if err != nil {
		s.logger.Warn("role merge skipped, options unavailable", zap.Error(err))
		return
	}
	merged := false
	for _, role := range roles {
		role = strings.TrimSpace(role)
		if role == "" || containsFold(sets.Roles, role) {
			continue
		}
		sets.Roles = append(sets.Roles, role)
		merged = true
	}
	if !merged {
		return
	}
	sort.Strings(sets.Roles)
	s.store(ctx, sets)
}

// Universities lists the universities of the role mapping cascade.
func (s *OptionsService) Universities(ctx context.Context, token string) ([]string, error) {
	return s.api.Universities(ctx, token)
}

// Programs lists the programs offered by one university.
func (s *OptionsService) Programs(ctx context.Context, token, university string) ([]string, error) {
	return s.api.Programs(ctx, token, university)
}

// Batches lists the batches of one university program.
func (s *OptionsService) Batches(ctx context.Context, token, university, program string) ([]string, error) {
	return s.api.Batches(ctx, token, university, program)
}

// ResolveUBP resolves a university, program and batch combination to its
// platform identifier.
func (s *OptionsService) ResolveUBP(ctx context.Context, token, university, program, batch string) (string, error) {
	return s.api.ResolveUBP(ctx, token, university, program, batch)
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

package models

import "time"

// SystemMetrics is a lightweight aggregate snapshot of console health,
// served alongside the Prometheus scrape endpoint.
type SystemMetrics struct {
	CacheHitRatio             float64   `json:"cache_hit_ratio"`
	CacheHits                 uint64    `json:"cache_hits"`
	CacheMisses               uint64    `json:"cache_misses"`
	RequestsTotal             uint64    `json:"requests_total"`
	AverageRequestDurationMs  float64   `json:"average_request_duration_ms"`
	UpstreamCallCount         uint64    `json:"upstream_call_count"`
	AverageUpstreamDurationMs float64   `json:"average_upstream_duration_ms"`
	Goroutines                int       `json:"goroutines"`
	GeneratedAt               time.Time `json:"generated_at"`
}

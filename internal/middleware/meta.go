package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const responseMetaKey = "response_meta"

// Meta accumulates per-request metadata that handlers fold into the
// response envelope: processing time, options cache hits and the admin tab
// the response belongs to.
type Meta struct {
	mu        sync.Mutex
	start     time.Time
	cacheHit  *bool
	activeTab string
}

// WithResponseMeta initialises response metadata on the request context.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(responseMetaKey, &Meta{start: time.Now()})
		c.Next()
	}
}

// SetCacheHit records whether the options cache served this request.
func SetCacheHit(c *gin.Context, hit bool) {
	if m := metaFrom(c); m != nil {
		m.mu.Lock()
		m.cacheHit = &hit
		m.mu.Unlock()
	}
}

// SetActiveTab tags the response with the admin tab it renders.
func SetActiveTab(c *gin.Context, tab string) {
	if m := metaFrom(c); m != nil {
		m.mu.Lock()
		m.activeTab = tab
		m.mu.Unlock()
	}
}

// ExtractMeta renders the request metadata as the envelope meta map.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	m := metaFrom(c)
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]interface{}{
		"processing_time_ms": time.Since(m.start).Milliseconds(),
	}
	if m.cacheHit != nil {
		out["cache_hit"] = *m.cacheHit
	}
	if m.activeTab != "" {
		out["active_tab"] = m.activeTab
	}
	return out
}

func metaFrom(c *gin.Context) *Meta {
	if c == nil {
		return nil
	}
	if value, exists := c.Get(responseMetaKey); exists {
		if m, ok := value.(*Meta); ok {
			return m
		}
	}
	return nil
}

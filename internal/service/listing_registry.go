package service

import (
	"sync"
	"sync/atomic"

	"github.com/noah-isme/interview-console/internal/view"
)

// adminView is one admin's list view state plus the upstream token the
// debounced fetches authenticate with. The token is refreshed on every
// request so a re-login does not fetch with stale credentials.
type adminView struct {
	listing *view.Listing
	token   atomic.Value
}

func (v *adminView) currentToken() string {
	token, _ := v.token.Load().(string)
	return token
}

// listingRegistry holds one Listing per signed-in admin, keyed by the
// console session subject, so staged filters and the current page survive
// between requests.
type listingRegistry struct {
	mu    sync.Mutex
	views map[string]*adminView
	build func(v *adminView) *view.Listing
}

func newListingRegistry(build func(v *adminView) *view.Listing) *listingRegistry {
	return &listingRegistry{
		views: make(map[string]*adminView),
		build: build,
	}
}

func (r *listingRegistry) get(subject, token string) *view.Listing {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[subject]
	if !ok {
		v = &adminView{}
		v.listing = r.build(v)
		r.views[subject] = v
	}
	v.token.Store(token)
	return v.listing
}

// drop forgets an admin's view state, typically on logout.
func (r *listingRegistry) drop(subject string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, subject)
}

package view

import (
	"context"
	"sync"
	"time"

	"github.com/noah-isme/interview-console/internal/models"
)

// ListFunc fetches one page of data for the applied filters.
type ListFunc func(ctx context.Context, filters map[string]string, page int) (interface{}, *models.Pagination, error)

// Listing combines the staged filters, current page and debounced fetching
// of one admin list view. Filter edits stage locally; Apply, Clear, paging
// and free-text edits trigger a refetch, debounced while any filter is
// active.
type Listing struct {
	form    *FilterForm
	fetcher *Fetcher
	list    ListFunc

	mu         sync.Mutex
	page       int
	data       interface{}
	pagination *models.Pagination
	fetchErr   error
}

// Snapshot is the state a list view renders from.
type Snapshot struct {
	Data       interface{}        `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
	Inputs     map[string]string  `json:"filter_inputs"`
	Applied    map[string]string  `json:"filters"`
	Page       int                `json:"page"`
}

// NewListing builds a Listing. The named fields debounce-apply as free text.
func NewListing(list ListFunc, window time.Duration, freeTextFields ...string) *Listing {
	return &Listing{
		form:    NewFilterForm(freeTextFields...),
		fetcher: NewFetcher(window),
		list:    list,
		page:    1,
	}
}

// SetDependents registers filter fields that reset whenever parent changes.
func (l *Listing) SetDependents(parent string, children ...string) {
	l.form.SetDependents(parent, children...)
}

// SetFilterInput stages a filter edit. Free-text fields apply immediately
// and schedule a debounced refetch back on page one.
func (l *Listing) SetFilterInput(ctx context.Context, name, value string) error {
	if !l.form.SetInput(name, value) {
		return nil
	}
	l.setPage(1)
	return l.refetch(ctx)
}

// ApplyFilters applies the staged filters and refetches from page one.
func (l *Listing) ApplyFilters(ctx context.Context) error {
	l.form.Apply()
	l.setPage(1)
	return l.refetch(ctx)
}

// ClearFilters resets all filters and refetches immediately.
func (l *Listing) ClearFilters(ctx context.Context) error {
	l.form.Clear()
	l.setPage(1)
	return l.refetch(ctx)
}

// SetPage moves to the given page and refetches.
func (l *Listing) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	l.setPage(page)
	return l.refetch(ctx)
}

// Refresh refetches the current page with the applied filters.
func (l *Listing) Refresh(ctx context.Context) error {
	return l.refetch(ctx)
}

// Snapshot returns the current view state.
func (l *Listing) Snapshot() (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Data:       l.data,
		Pagination: l.pagination,
		Inputs:     l.form.Inputs(),
		Applied:    l.form.Applied(),
		Page:       l.page,
	}, l.fetchErr
}

// refetch schedules the debounced latest-wins fetch and waits for it to
// settle. A superseded fetch returns nil; the superseding caller reports the
// outcome instead.
func (l *Listing) refetch(ctx context.Context) error {
	filters := l.form.Applied()
	l.mu.Lock()
	page := l.page
	l.mu.Unlock()

	debounce := l.form.HasActiveFilters()

	handle := l.fetcher.Request(ctx, debounce, func(ctx context.Context) (interface{}, error) {
		data, pagination, err := l.list(ctx, filters, page)
		if err != nil {
			return nil, err
		}
		return &fetchedPage{data: data, pagination: pagination}, nil
	}, func(result interface{}, err error) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.fetchErr = err
		if err != nil {
			return
		}
		page := result.(*fetchedPage)
		l.data = page.data
		l.pagination = page.pagination
	})

	applied, err := handle.Wait(ctx)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetchErr
}

func (l *Listing) setPage(page int) {
	l.mu.Lock()
	l.page = page
	l.mu.Unlock()
}

type fetchedPage struct {
	data       interface{}
	pagination *models.Pagination
}

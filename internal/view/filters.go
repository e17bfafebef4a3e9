// Package view implements the page-level state the console keeps per admin
// view: staged filters, dependent option cascades, and the debounced
// latest-wins fetch that feeds each table.
package view

import "sync"

// FilterForm keeps the two-stage filter state of a list view: the inputs the
// user is editing and the applied copy the current listing was fetched with.
// Applied values change only through Apply and Clear, except free-text fields
// which apply on every edit so the page can debounce-fetch while typing.
type FilterForm struct {
	mu         sync.Mutex
	freeText   map[string]bool
	dependents map[string][]string
	inputs     map[string]string
	applied    map[string]string
}

// NewFilterForm builds a FilterForm. The named fields are treated as
// free-text and debounce-apply automatically.
func NewFilterForm(freeTextFields ...string) *FilterForm {
	freeText := make(map[string]bool, len(freeTextFields))
	for _, name := range freeTextFields {
		freeText[name] = true
	}
	return &FilterForm{
		freeText:   freeText,
		dependents: make(map[string][]string),
		inputs:     make(map[string]string),
		applied:    make(map[string]string),
	}
}

// SetDependents registers fields whose staged values only make sense under
// the current value of parent. Editing or clearing parent drops them, so a
// cascade like university, program, batch never applies a child value
// without the ancestor it was chosen for.
func (f *FilterForm) SetDependents(parent string, children ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dependents[parent] = append([]string(nil), children...)
}

// SetInput stages a filter edit. The returned flag reports whether the
// applied state changed, which is only the case for free-text fields.
func (f *FilterForm) SetInput(name, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous := f.inputs[name]
	if value == "" {
		delete(f.inputs, name)
	} else {
		f.inputs[name] = value
	}
	if previous != value {
		f.dropDependentsLocked(name)
	}

	if !f.freeText[name] {
		return false
	}
	if f.applied[name] == value {
		return false
	}
	if value == "" {
		delete(f.applied, name)
	} else {
		f.applied[name] = value
	}
	return true
}

func (f *FilterForm) dropDependentsLocked(name string) {
	for _, child := range f.dependents[name] {
		delete(f.inputs, child)
		f.dropDependentsLocked(child)
	}
}

// Apply copies the staged inputs into the applied state and returns the
// applied copy.
func (f *FilterForm) Apply() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.applied = make(map[string]string, len(f.inputs))
	for name, value := range f.inputs {
		f.applied[name] = value
	}
	return copyValues(f.applied)
}

// Clear resets both staged and applied state.
func (f *FilterForm) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inputs = make(map[string]string)
	f.applied = make(map[string]string)
}

// Inputs returns a copy of the staged filter values.
func (f *FilterForm) Inputs() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyValues(f.inputs)
}

// Applied returns a copy of the applied filter values.
func (f *FilterForm) Applied() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyValues(f.applied)
}

// AppliedValue returns one applied filter value.
func (f *FilterForm) AppliedValue(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applied[name]
}

// HasActiveFilters reports whether any applied filter is non-empty. The
// listing fetch debounces only in that case.
func (f *FilterForm) HasActiveFilters() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, value := range f.applied {
		if value != "" {
			return true
		}
	}
	return false
}

func copyValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for name, value := range values {
		out[name] = value
	}
	return out
}

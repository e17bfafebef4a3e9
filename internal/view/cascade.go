package view

import (
	"context"
	"sync"
)

// OptionLoader fetches the option list of a cascade level, keyed by the
// values of all ancestor levels.
type OptionLoader func(ctx context.Context, ancestors map[string]string) ([]string, error)

// Cascade models dependent dropdowns such as university → program → batch.
// Selecting a level resets every descendant; a non-empty selection loads the
// next level's options, a cleared one leaves descendants empty without a
// fetch.
type Cascade struct {
	mu      sync.Mutex
	levels  []string
	values  map[string]string
	options map[string][]string
	loaders map[string]OptionLoader
}

// NewCascade builds a cascade over the ordered level names.
func NewCascade(levels ...string) *Cascade {
	return &Cascade{
		levels:  append([]string(nil), levels...),
		values:  make(map[string]string),
		options: make(map[string][]string),
		loaders: make(map[string]OptionLoader),
	}
}

// SetLoader registers the option loader of a level.
func (c *Cascade) SetLoader(level string, loader OptionLoader) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaders[level] = loader
}

// SetOptions seeds a level's options directly, used for the root level.
func (c *Cascade) SetOptions(level string, options []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options[level] = append([]string(nil), options...)
}

// Select sets a level's value, resets all descendants, and loads the next
// level's options when the new value is non-empty.
func (c *Cascade) Select(ctx context.Context, level, value string) error {
	c.mu.Lock()
	idx := c.indexOf(level)
	if idx < 0 {
		c.mu.Unlock()
		return nil
	}
	if value == "" {
		delete(c.values, level)
	} else {
		c.values[level] = value
	}
	for _, descendant := range c.levels[idx+1:] {
		delete(c.values, descendant)
		delete(c.options, descendant)
	}

	var child string
	var loader OptionLoader
	var ancestors map[string]string
	if value != "" && idx+1 < len(c.levels) {
		child = c.levels[idx+1]
		loader = c.loaders[child]
		ancestors = make(map[string]string, idx+1)
		for _, ancestor := range c.levels[:idx+1] {
			ancestors[ancestor] = c.values[ancestor]
		}
	}
	c.mu.Unlock()

	if loader == nil {
		return nil
	}
	options, err := loader(ctx, ancestors)
	if err != nil {
		return err
	}

	c.mu.Lock()
	// A later Select may have changed this level; only keep the result if
	// the ancestor value still matches.
	if c.values[level] == value {
		c.options[child] = options
	}
	c.mu.Unlock()
	return nil
}

// Clear empties a level and its descendants without fetching.
func (c *Cascade) Clear(level string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(level)
	if idx < 0 {
		return
	}
	delete(c.values, level)
	for _, descendant := range c.levels[idx+1:] {
		delete(c.values, descendant)
		delete(c.options, descendant)
	}
}

// Value returns a level's current selection.
func (c *Cascade) Value(level string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[level]
}

// Options returns a copy of a level's option list.
func (c *Cascade) Options(level string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.options[level]...)
}

// Values returns a copy of all current selections.
func (c *Cascade) Values() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.values))
	for level, value := range c.values {
		out[level] = value
	}
	return out
}

func (c *Cascade) indexOf(level string) int {
	for i, name := range c.levels {
		if name == level {
			return i
		}
	}
	return -1
}

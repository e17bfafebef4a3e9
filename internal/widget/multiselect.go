// Package widget holds the state machines behind the console's form
// controls. The widgets render nothing; they expose the state a page needs
// to draw a trigger, chips and a dropdown, and they enforce the selection
// rules (sentinel exclusivity, custom value creation, keyboard behaviour).
package widget

import "strings"

// maxVisibleChips is how many selected chips the trigger shows before
// collapsing the rest into an overflow summary.
const maxVisibleChips = 2

// MultiSelectConfig configures a MultiSelect.
type MultiSelectConfig struct {
	Label       string
	Options     []string
	Selected    []string
	AllowCreate bool
	// Sentinel, when non-empty, names an option that is mutually exclusive
	// with every other selection.
	Sentinel string
}

// MultiSelect is a creatable multi-select dropdown: a set of selected values,
// a typed filter, and an open/closed dropdown.
type MultiSelect struct {
	label       string
	options     []string
	selected    []string
	typed       string
	open        bool
	allowCreate bool
	sentinel    string
}

// NewMultiSelect constructs a MultiSelect from its config. A seeded
// selection containing the sentinel collapses to the sentinel alone;
// duplicates are dropped.
func NewMultiSelect(cfg MultiSelectConfig) *MultiSelect {
	m := &MultiSelect{
		label:       cfg.Label,
		options:     append([]string(nil), cfg.Options...),
		allowCreate: cfg.AllowCreate,
		sentinel:    cfg.Sentinel,
	}
	for _, value := range cfg.Selected {
		if m.sentinel != "" && value == m.sentinel {
			m.selected = []string{m.sentinel}
			return m
		}
	}
	for _, value := range cfg.Selected {
		if value != "" && indexOf(m.selected, value) < 0 {
			m.selected = append(m.selected, value)
		}
	}
	return m
}

// Label returns the control label.
func (m *MultiSelect) Label() string { return m.label }

// Selected returns a copy of the current selection.
func (m *MultiSelect) Selected() []string {
	return append([]string(nil), m.selected...)
}

// Options returns a copy of the full option list.
func (m *MultiSelect) Options() []string {
	return append([]string(nil), m.options...)
}

// IsOpen reports whether the dropdown is open.
func (m *MultiSelect) IsOpen() bool { return m.open }

// Open opens the dropdown.
func (m *MultiSelect) Open() { m.open = true }

// Typed returns the current typed filter text.
func (m *MultiSelect) Typed() string { return m.typed }

// SetTyped replaces the typed filter text and opens the dropdown.
func (m *MultiSelect) SetTyped(text string) {
	m.typed = text
	m.open = true
}

// Toggle flips membership of value in the selection. Selecting the sentinel
// clears everything else; selecting anything else removes the sentinel.
func (m *MultiSelect) Toggle(value string) {
	if value == "" {
		return
	}
	if idx := indexOf(m.selected, value); idx >= 0 {
		m.selected = append(m.selected[:idx], m.selected[idx+1:]...)
		return
	}
	if m.sentinel != "" && value == m.sentinel {
		m.selected = []string{m.sentinel}
		return
	}
	if m.sentinel != "" {
		if idx := indexOf(m.selected, m.sentinel); idx >= 0 {
			m.selected = append(m.selected[:idx], m.selected[idx+1:]...)
		}
	}
	m.selected = append(m.selected, value)
}

// VisibleChips returns the chips shown on the trigger and the count of
// selections folded into the overflow summary.
func (m *MultiSelect) VisibleChips() ([]string, int) {
	if len(m.selected) <= maxVisibleChips {
		return append([]string(nil), m.selected...), 0
	}
	return append([]string(nil), m.selected[:maxVisibleChips]...), len(m.selected) - maxVisibleChips
}

// FilteredOptions returns the options matching the typed text.
func (m *MultiSelect) FilteredOptions() []string {
	if m.typed == "" {
		return m.Options()
	}
	needle := strings.ToLower(m.typed)
	filtered := make([]string, 0, len(m.options))
	for _, option := range m.options {
		if strings.Contains(strings.ToLower(option), needle) {
			filtered = append(filtered, option)
		}
	}
	return filtered
}

// ShowCreateRow reports whether the dropdown offers creating the typed text
// as a new value: only with AllowCreate, non-empty text, and no
// case-insensitive match among options or current selections.
func (m *MultiSelect) ShowCreateRow() bool {
	if !m.allowCreate {
		return false
	}
	trimmed := strings.TrimSpace(m.typed)
	if trimmed == "" {
		return false
	}
	return matchFold(m.options, trimmed) == "" && matchFold(m.selected, trimmed) == ""
}

// Backspace removes the last selected chip when the typed text is empty.
func (m *MultiSelect) Backspace() {
	if m.typed != "" || len(m.selected) == 0 {
		return
	}
	m.selected = m.selected[:len(m.selected)-1]
}

// Enter commits the typed text: creates it as a new value when the create
// row is showing, otherwise selects the matching existing option. The typed
// text is cleared either way.
func (m *MultiSelect) Enter() {
	trimmed := strings.TrimSpace(m.typed)
	if trimmed == "" {
		return
	}
	defer func() { m.typed = "" }()

	if m.ShowCreateRow() {
		m.Toggle(trimmed)
		return
	}
	if match := matchFold(m.options, trimmed); match != "" {
		if indexOf(m.selected, match) < 0 {
			m.Toggle(match)
		}
	}
}

// Escape closes the dropdown and clears the typed text.
func (m *MultiSelect) Escape() {
	m.open = false
	m.typed = ""
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}

func matchFold(values []string, value string) string {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return v
		}
	}
	return ""
}

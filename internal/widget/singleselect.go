package widget

import "strings"

// SingleSelectConfig configures a SingleSelect.
type SingleSelectConfig struct {
	Label    string
	Options  []string
	Selected string
}

// SingleSelect is the single-value variant of the dropdown: same trigger and
// filtered option list, no creation support.
type SingleSelect struct {
	label    string
	options  []string
	selected string
	typed    string
	open     bool
}

// NewSingleSelect constructs a SingleSelect from its config.
func NewSingleSelect(cfg SingleSelectConfig) *SingleSelect {
	return &SingleSelect{
		label:    cfg.Label,
		options:  append([]string(nil), cfg.Options...),
		selected: cfg.Selected,
	}
}

// Label returns the control label.
func (s *SingleSelect) Label() string { return s.label }

// Selected returns the current value, empty when nothing is selected.
func (s *SingleSelect) Selected() string { return s.selected }

// IsOpen reports whether the dropdown is open.
func (s *SingleSelect) IsOpen() bool { return s.open }

// Open opens the dropdown.
func (s *SingleSelect) Open() { s.open = true }

// SetTyped replaces the typed filter text and opens the dropdown.
func (s *SingleSelect) SetTyped(text string) {
	s.typed = text
	s.open = true
}

// Typed returns the current typed filter text.
func (s *SingleSelect) Typed() string { return s.typed }

// Select picks a value from the options and closes the dropdown. Unknown
// values are ignored.
func (s *SingleSelect) Select(value string) {
	for _, option := range s.options {
		if option == value {
			s.selected = value
			s.open = false
			s.typed = ""
			return
		}
	}
}

// Clear removes the current selection.
func (s *SingleSelect) Clear() { s.selected = "" }

// SetOptions replaces the option list. A selection no longer present is
// cleared, which is what dependent dropdowns rely on when an ancestor
// changes.
func (s *SingleSelect) SetOptions(options []string) {
	s.options = append([]string(nil), options...)
	if s.selected != "" && indexOf(s.options, s.selected) < 0 {
		s.selected = ""
	}
}

// FilteredOptions returns the options matching the typed text.
func (s *SingleSelect) FilteredOptions() []string {
	if s.typed == "" {
		return append([]string(nil), s.options...)
	}
	needle := strings.ToLower(s.typed)
	filtered := make([]string, 0, len(s.options))
	for _, option := range s.options {
		if strings.Contains(strings.ToLower(option), needle) {
			filtered = append(filtered, option)
		}
	}
	return filtered
}

// Escape closes the dropdown and clears the typed text.
func (s *SingleSelect) Escape() {
	s.open = false
	s.typed = ""
}

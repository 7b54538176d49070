package nav

// Focus identifies the widget receiving key input.
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
)

// FocusState tracks which widget has focus and enforces when focus may move.
type FocusState struct {
	focus Focus
}

// Current returns the focused widget.
func (s *FocusState) Current() Focus {
	return s.focus
}

// RequestSearch moves focus to the search box.
func (s *FocusState) RequestSearch() {
	s.focus = FocusSearch
}

// AfterNavigate forces the search box after a navigation that left nothing
// to show, so the user can widen the filter.
func (s *FocusState) AfterNavigate(empty bool) {
	if empty {
		s.focus = FocusSearch
	}
}

// Commit returns focus to the list. It is refused while the list is empty.
func (s *FocusState) Commit(empty bool) bool {
	if empty {
		return false
	}
	s.focus = FocusList
	return true
}

// Cancel returns focus to the list unconditionally. The caller clears the
// search text and re-applies the empty pattern.
func (s *FocusState) Cancel() {
	s.focus = FocusList
}

package geomap

// PopupSink receives popup open/close effects from the selection
// controller. The synchronizer implements it.
type PopupSink interface {
	OpenPopup(id string)
	ClosePopup(id string)
}

// SelectionEvent notifies observers (detail panel, chat trigger) of a
// selection transition. ID is empty when the selection was cleared.
type SelectionEvent struct {
	ID string
}

// Selection is the single-selection state machine: NoSelection or
// Selected(id). At most one popup is open system-wide; selecting a new
// entry closes the previous popup before opening the new one.
type Selection struct {
	selected  string
	sink      PopupSink
	observers []func(SelectionEvent)
}

// NewSelection creates a controller in the NoSelection state. sink may be
// nil when no popup surface exists (list-only views).
func NewSelection(sink PopupSink) *Selection {
	return &Selection{sink: sink}
}

// Observe registers an observer for selection transitions.
func (s *Selection) Observe(fn func(SelectionEvent)) {
	s.observers = append(s.observers, fn)
}

// Selected returns the selected entry id and whether anything is selected.
func (s *Selection) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// Select transitions to Selected(id). Selecting the already-selected id is
// idempotent: no popup churn, no duplicate events. Otherwise the previous
// popup is closed before the new one opens.
func (s *Selection) Select(id string) bool {
	if id == "" || id == s.selected {
		return false
	}
	if s.selected != "" && s.sink != nil {
		s.sink.ClosePopup(s.selected)
	}
	s.selected = id
	if s.sink != nil {
		s.sink.OpenPopup(id)
	}
	s.notify(SelectionEvent{ID: id})
	return true
}

// Clear transitions to NoSelection, closing the open popup if any.
func (s *Selection) Clear() bool {
	if s.selected == "" {
		return false
	}
	if s.sink != nil {
		s.sink.ClosePopup(s.selected)
	}
	s.selected = ""
	s.notify(SelectionEvent{})
	return true
}

// Drop clears the selection without popup effects. Used when the selected
// entry's marker was already destroyed by a sync.
func (s *Selection) Drop(id string) bool {
	if s.selected != id || id == "" {
		return false
	}
	s.selected = ""
	s.notify(SelectionEvent{})
	return true
}

func (s *Selection) notify(ev SelectionEvent) {
	for _, fn := range s.observers {
		fn(ev)
	}
}

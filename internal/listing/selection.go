package listing

import (
	"sort"

	"github.com/pkg/errors"
)

// Scope decides how far a selection reaches.
type Scope string

const (
	// ScopePage keeps only ids on the visible page; ids leaving the page are dropped.
	ScopePage Scope = "page"
	// ScopeCollection keeps ids across pages as long as they remain in the collection.
	ScopeCollection Scope = "collection"
)

// ParseScope validates a configured scope name. Empty means ScopePage.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "", ScopePage:
		return ScopePage, nil
	case ScopeCollection:
		return ScopeCollection, nil
	}
	return "", errors.Errorf("unknown selection scope %q", s)
}

// Selection is the set of ids chosen for a batch action. Not safe for concurrent use;
// the controller guards it.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds id when absent and removes it when present.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// SelectAll replaces the set with exactly visibleIDs when selected is true and clears it otherwise.
func (s *Selection) SelectAll(visibleIDs []string, selected bool) {
	s.ids = make(map[string]struct{}, len(visibleIDs))
	if !selected {
		return
	}
	for _, id := range visibleIDs {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Remove(id string) {
	delete(s.ids, id)
}

func (s *Selection) Len() int { return len(s.ids) }

// IsAllSelected is true iff the set equals the visible page. An empty page is never all selected.
func (s *Selection) IsAllSelected(visibleIDs []string) bool {
	if len(visibleIDs) == 0 || len(s.ids) != len(visibleIDs) {
		return false
	}
	for _, id := range visibleIDs {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}

// Retain drops every member not in keep and reports whether anything was dropped.
func (s *Selection) Retain(keep []string) bool {
	allowed := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		allowed[id] = struct{}{}
	}
	changed := false
	for id := range s.ids {
		if _, ok := allowed[id]; !ok {
			delete(s.ids, id)
			changed = true
		}
	}
	return changed
}

// IDs returns the members in ascending order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

package listing

import (
	"slices"
	"strings"

	"adminconsole/pkg/pagination"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// QueryState holds the search, sort and pagination parameters of one list.
type QueryState struct {
	SearchTerm    string    `json:"search_term"`
	SortKey       string    `json:"sort_key"`
	SortDirection Direction `json:"sort_direction"`
	Page          int       `json:"page"`
	PageSize      int       `json:"page_size"`
}

// SortField pairs a sortable key with its typed comparator (negative, zero, positive).
type SortField[T any] struct {
	Key     string
	Compare func(a, b T) int
}

// Schema describes an entity type to the pipeline and the controller.
type Schema[T any] struct {
	Noun   string // "user"
	Plural string // "users"

	ID   func(T) string
	Name func(T) string

	// Searchable returns the text fields matched by the search term.
	Searchable func(T) []string
	SortFields []SortField[T]
	Columns    []Column[T]

	DefaultSortKey string
}

// Page is one derived window of the collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Filtered   int `json:"filtered"`
}

// IDs returns the ids of the page's items in display order.
func (s *Schema[T]) IDs(items []T) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = s.ID(item)
	}
	return ids
}

func (s *Schema[T]) sortField(key string) (SortField[T], bool) {
	for _, f := range s.SortFields {
		if f.Key == key {
			return f, true
		}
	}
	return SortField[T]{}, false
}

// InitialQuery is the query state of a fresh controller.
func (s *Schema[T]) InitialQuery(pageSize int) QueryState {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return QueryState{
		SortKey:       s.DefaultSortKey,
		SortDirection: Ascending,
		Page:          pagination.DefaultPage,
		PageSize:      pageSize,
	}
}

// ToggleSort flips the direction when key is already active and otherwise
// switches to key ascending.
func (s *Schema[T]) ToggleSort(q QueryState, key string) (QueryState, error) {
	if _, ok := s.sortField(key); !ok {
		return q, errors.Wrapf(ErrUnknownSortKey, "%s %q", s.Noun, key)
	}
	if q.SortKey == key && q.SortDirection == Ascending {
		q.SortDirection = Descending
	} else {
		q.SortKey = key
		q.SortDirection = Ascending
	}
	return q, nil
}

// Derive filters, sorts and paginates items. It does not modify items.
func (s *Schema[T]) Derive(items []T, q QueryState) (Page[T], error) {
	filtered := s.filter(items, q.SearchTerm)

	if q.SortKey != "" {
		field, ok := s.sortField(q.SortKey)
		if !ok {
			return Page[T]{}, errors.Wrapf(ErrUnknownSortKey, "%s %q", s.Noun, q.SortKey)
		}
		cmp := field.Compare
		if q.SortDirection == Descending {
			cmp = func(a, b T) int { return field.Compare(b, a) }
		}
		slices.SortFunc(filtered, cmp)
	}

	size := q.PageSize
	if size < 1 {
		size = pagination.DefaultPageSize
	}
	total := pagination.TotalPages(len(filtered), size)
	page := pagination.Clamp(q.Page, total)
	start, end := pagination.Bounds(page, size, len(filtered))

	return Page[T]{
		Items:      filtered[start:end:end],
		Page:       page,
		TotalPages: total,
		Filtered:   len(filtered),
	}, nil
}

// filter always returns a fresh slice so sorting never reorders the caller's items.
func (s *Schema[T]) filter(items []T, term string) []T {
	if term == "" || s.Searchable == nil {
		return slices.Clone(items)
	}
	fold := cases.Fold()
	needle := fold.String(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range s.Searchable(item) {
			if strings.Contains(fold.String(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

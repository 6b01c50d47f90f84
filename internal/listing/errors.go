package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownSortKey is returned when a sort key is not one of the schema's sort fields.
	ErrUnknownSortKey = errors.New("unknown sort key")
	// ErrUnsupportedFormat is returned by Export when no encoder is registered for the format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrNotFound is returned by Find when the collection holds no entity with the id.
	ErrNotFound = errors.New("not found")
)

// Kind classifies a failed controller operation.
type Kind string

const (
	KindFetch    Kind = "fetch"
	KindMutation Kind = "mutation"
)

// OpError is the failure of a single controller operation. Transport and validation errors
// from the store are not distinguished: both are carried in Err.
type OpError struct {
	Kind Kind
	Op   string
	ID   string
	Err  error
}

func (e *OpError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// BatchError reports the ids whose delete failed during a batch delete.
// Ids in Deleted were removed from the collection regardless.
type BatchError struct {
	Deleted []string
	Failed  map[string]error
}

// FailedIDs returns the failed ids in ascending order.
func (e *BatchError) FailedIDs() []string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (e *BatchError) Error() string {
	ids := e.FailedIDs()
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s: %v", id, e.Failed[id]))
	}
	return fmt.Sprintf("batch delete: %d of %d failed (%s)",
		len(ids), len(ids)+len(e.Deleted), strings.Join(parts, "; "))
}

// IsFetchFailure reports whether err is a failed FetchAll.
func IsFetchFailure(err error) bool {
	var opErr *OpError
	return errors.As(err, &opErr) && opErr.Kind == KindFetch
}

// IsMutationFailure reports whether err is a failed create, update or delete.
func IsMutationFailure(err error) bool {
	var opErr *OpError
	return errors.As(err, &opErr) && opErr.Kind == KindMutation
}

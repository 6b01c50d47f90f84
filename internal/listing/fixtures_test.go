package listing

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type person struct {
	ID     string
	Name   string
	Email  string
	Joined time.Time
}

type personDraft struct {
	Name  string
	Email string
}

func personSchema() *Schema[person] {
	return &Schema[person]{
		Noun:   "user",
		Plural: "users",
		ID:     func(p person) string { return p.ID },
		Name:   func(p person) string { return p.Name },
		Searchable: func(p person) []string {
			return []string{p.Name, p.Email}
		},
		SortFields: []SortField[person]{
			{Key: "name", Compare: func(a, b person) int { return strings.Compare(a.Name, b.Name) }},
			{Key: "joined", Compare: func(a, b person) int { return a.Joined.Compare(b.Joined) }},
		},
		Columns: []Column[person]{
			{Header: "Name", Value: func(p person) string { return p.Name }},
			{Header: "Email", Value: func(p person) string { return p.Email }},
		},
		DefaultSortKey: "name",
	}
}

func people(n int) []person {
	out := make([]person, n)
	for i := range out {
		out[i] = person{
			ID:    fmt.Sprintf("%02d", i+1),
			Name:  fmt.Sprintf("user-%02d", i+1),
			Email: fmt.Sprintf("user%02d@example.com", i+1),
		}
	}
	return out
}

var errRemote = errors.New("remote unavailable")

// fakeStore is an in-memory remote collaborator.
type fakeStore struct {
	mu        sync.Mutex
	rows      []person
	nextID    int
	listErr   error
	createErr error
	updateErr error
	failIDs   map[string]bool
	deletes   []string
	// listGate, when set, blocks List until a value is received.
	listGate chan []person
}

func newFakeStore(rows ...person) *fakeStore {
	return &fakeStore{rows: rows, nextID: 100, failIDs: map[string]bool{}}
}

func (s *fakeStore) List(ctx context.Context) ([]person, error) {
	if s.listGate != nil {
		select {
		case rows := <-s.listGate:
			return rows, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]person, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, d personDraft) (person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return person{}, s.createErr
	}
	s.nextID++
	p := person{ID: fmt.Sprintf("%d", s.nextID), Name: d.Name, Email: d.Email}
	s.rows = append(s.rows, p)
	return p, nil
}

func (s *fakeStore) Update(_ context.Context, id string, d personDraft) (person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return person{}, s.updateErr
	}
	for i, p := range s.rows {
		if p.ID == id {
			s.rows[i].Name = d.Name
			s.rows[i].Email = d.Email
			return s.rows[i], nil
		}
	}
	return person{}, errors.Errorf("%s not found", id)
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, id)
	if s.failIDs[id] {
		return errors.Errorf("cannot delete %s", id)
	}
	for i, p := range s.rows {
		if p.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type recordingEncoder struct {
	title string
	table Table
}

func (e *recordingEncoder) Encode(w io.Writer, title string, t Table) error {
	e.title = title
	e.table = t
	_, err := w.Write([]byte(strings.Join(t.Headers, ",")))
	return err
}

type recordedOp struct {
	entity string
	op     string
	failed bool
}

type fakeMetrics struct {
	mu  sync.Mutex
	ops []recordedOp
}

func (m *fakeMetrics) ObserveOperation(entity, op string, err error, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, recordedOp{entity: entity, op: op, failed: err != nil})
}

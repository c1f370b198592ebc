// Package workflow tracks the coarse status of orchestrated requests in
// process memory. Records carry no durability guarantee: the table is lost
// on restart, and the owner is expected to call Sweep periodically.
package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

type Record struct {
	ID          string    `json:"workflow_id"`
	Kind        string    `json:"kind"`
	Status      Status    `json:"status"`
	Stage       string    `json:"stage"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
	Err         string    `json:"error,omitempty"`
}

type Store struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]Record),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Begin registers a new workflow and returns its generated id.
func (s *Store) Begin(kind, stage string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.records[id] = Record{
		ID:        id,
		Kind:      kind,
		Status:    StatusProcessing,
		Stage:     stage,
		StartedAt: s.now(),
	}
	s.mu.Unlock()
	return id
}

func (s *Store) SetStage(id, stage string) {
	s.mu.Lock()
	if r, ok := s.records[id]; ok {
		r.Stage = stage
		s.records[id] = r
	}
	s.mu.Unlock()
}

func (s *Store) Complete(id string) {
	s.finish(id, StatusCompleted, "")
}

func (s *Store) Fail(id string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	s.finish(id, StatusError, msg)
}

func (s *Store) finish(id string, status Status, errMsg string) {
	s.mu.Lock()
	if r, ok := s.records[id]; ok {
		r.Status = status
		r.Err = errMsg
		r.CompletedAt = s.now()
		s.records[id] = r
	}
	s.mu.Unlock()
}

func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	r, ok := s.records[id]
	s.mu.RUnlock()
	return r, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	n := len(s.records)
	s.mu.RUnlock()
	return n
}

// Sweep removes finished workflows older than maxAge and returns how many
// were removed. In-flight workflows are never swept.
func (s *Store) Sweep(maxAge time.Duration) int {
	cutoff := s.now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, r := range s.records {
		if r.Status == StatusProcessing {
			continue
		}
		if r.CompletedAt.Before(cutoff) {
			delete(s.records, id)
			removed++
		}
	}
	return removed
}

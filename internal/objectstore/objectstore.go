// Package objectstore stores workflow-definition JSON blobs (§6 "Object
// storage"). Actual S3/GCS wiring is deliberately out of scope (spec.md); the
// interface is what the GetCampaignForDispatch activity depends on, with an
// in-memory implementation for tests and local runs.
package objectstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// Store fetches and saves workflow-definition documents by reference
// (Campaign.WorkflowDefinitionRef).
type Store interface {
	GetWorkflowDefinition(ctx context.Context, ref string) (domain.WorkflowDefinition, error)
	PutWorkflowDefinition(ctx context.Context, ref string, def domain.WorkflowDefinition) error
}

// MemStore is an in-memory Store keyed by ref, JSON round-tripped to catch
// anything that wouldn't survive a real object store.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) GetWorkflowDefinition(_ context.Context, ref string) (domain.WorkflowDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[ref]
	if !ok {
		return domain.WorkflowDefinition{}, &NotFoundError{Ref: ref}
	}
	var def domain.WorkflowDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return domain.WorkflowDefinition{}, err
	}
	return def, nil
}

func (s *MemStore) PutWorkflowDefinition(_ context.Context, ref string, def domain.WorkflowDefinition) error {
	raw, err := json.Marshal(def)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[ref] = raw
	return nil
}

// NotFoundError reports a missing workflow-definition ref.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return "workflow definition not found: " + e.Ref
}

var _ Store = (*MemStore)(nil)

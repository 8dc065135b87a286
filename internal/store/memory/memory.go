// Package memory provides an in-memory implementation of store.TaskStore.
// The collection is memory-resident only and starts empty on every process
// start; persistence is intentionally out of scope.
package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskStore holds the task collection as an ordered slice guarded by a
// single mutex. Every operation, including the read-only List, holds the
// lock for its full duration so each caller sees a consistent
// point-in-time view. Lookups are linear scans; at the expected scale the
// simplicity is worth more than an id index.
type TaskStore struct {
	mu    sync.Mutex
	tasks []domain.Task
}

// Statically verify the interface is satisfied.
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store. One instance is
// constructed at startup and shared for the process lifetime.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// List returns a copy of the current collection in insertion order,
// skipping the first opts.Offset elements and taking at most opts.Limit.
func (s *TaskStore) List(ctx context.Context, opts store.ListOptions) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.tasks) {
		return []domain.Task{}, nil
	}

	limit := opts.Limit
	if limit < 0 {
		limit = 0
	}
	end := len(s.tasks)
	if rest := end - offset; limit < rest {
		end = offset + limit
	}

	out := make([]domain.Task, end-offset)
	copy(out, s.tasks[offset:end])
	return out, nil
}

// Create appends the task to the end of the collection. The existence
// check and the append happen under one lock acquisition, so no other
// operation can interleave between them.
func (s *TaskStore) Create(ctx context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == task.ID {
			return store.ErrTaskExists
		}
	}

	s.tasks = append(s.tasks, task)
	return nil
}

// Update replaces the task with the given id in place, keeping its
// position in the collection.
func (s *TaskStore) Update(ctx context.Context, id int64, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = task
			return nil
		}
	}

	return store.ErrTaskNotFound
}

// Delete removes the task with the given id, shifting subsequent elements
// forward.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}

	return store.ErrTaskNotFound
}

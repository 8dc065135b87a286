package store

import (
	"context"
	"math"

	"github.com/phrazzld/todo-api/internal/domain"
)

// NoLimit is the Limit value meaning "return everything after Offset".
const NoLimit = math.MaxInt

// ListOptions describes pagination for List. Both fields are optional at
// the HTTP layer; a zero Offset and a NoLimit Limit reproduce the full
// collection. Offsets at or beyond the end of the collection yield an
// empty result, not an error.
type ListOptions struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DefaultListOptions returns the options used when a request carries no
// usable pagination fields.
func DefaultListOptions() ListOptions {
	return ListOptions{Offset: 0, Limit: NoLimit}
}

// TaskStore defines the interface for task persistence.
//
// All operations are atomic and fully serialized with respect to one
// another: a caller never observes the intermediate state of another
// operation, and a failed operation leaves the collection exactly as it
// was before the call.
type TaskStore interface {
	// List returns a point-in-time copy of the stored tasks in insertion
	// order, skipping the first opts.Offset elements and returning at most
	// opts.Limit. It never fails and never mutates the collection.
	List(ctx context.Context, opts ListOptions) ([]domain.Task, error)

	// Create appends the task to the collection. The duplicate-id check
	// and the append are a single atomic step.
	// Returns ErrTaskExists if a task with the same id is already stored.
	Create(ctx context.Context, task domain.Task) error

	// Update replaces the task with the given id in place, preserving its
	// position in the collection. All other elements are untouched.
	// Returns ErrTaskNotFound if no task with the id exists.
	Update(ctx context.Context, id int64, task domain.Task) error

	// Delete removes the task with the given id, shifting subsequent
	// elements forward.
	// Returns ErrTaskNotFound if no task with the id exists.
	Delete(ctx context.Context, id int64) error
}

// Package store defines the interface for task persistence operations.
// The interface abstracts the underlying storage mechanism from the
// handler layer, keeping the HTTP surface independent of how the task
// collection is held.
package store

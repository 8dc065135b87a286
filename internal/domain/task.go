package domain

// Task represents a single task record. IDs are supplied by the caller,
// never generated by the service, and must be unique among the tasks
// currently stored.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskRequest represents the request body for creating or updating a task.
// All fields are required; pointer fields let validation distinguish an
// absent field from a zero value (Completed may legitimately be false).
type TaskRequest struct {
	ID        *int64  `json:"id"        validate:"required"`
	Text      *string `json:"text"      validate:"required"`
	Completed *bool   `json:"completed" validate:"required"`
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /todos requests.
// It returns a paginated snapshot of the stored tasks in insertion order.
// Pagination options are decoded leniently and never fail the request.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	opts := decodeListOptions(r)

	tasks, err := h.taskStore.List(r.Context(), opts)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	// Always encode an array, never null
	response := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		response = append(response, taskToResponse(t))
	}

	log.Debug("listed tasks",
		slog.Int("count", len(response)),
		slog.Int("offset", opts.Offset))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateTask handles POST /todos requests.
// It appends a new task with a caller-supplied id, rejecting ids that are
// already in use.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := decodeTaskRequest(w, r, log)
	if !ok {
		return
	}

	task := domain.Task{ID: *req.ID, Text: *req.Text, Completed: *req.Completed}
	log.Debug("creating task", slog.Int64("task_id", task.ID))

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// UpdateTask handles PUT /todos/{id} requests.
// It fully replaces the task with the path id; there is no field merge.
// The path id is authoritative: an id carried in the body is ignored so an
// update can never rename a task into a collision with another stored id.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := getPathTaskID(r)
	if !ok {
		log.Warn("invalid task ID in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	req, ok := decodeTaskRequest(w, r, log)
	if !ok {
		return
	}

	task := domain.Task{ID: id, Text: *req.Text, Completed: *req.Completed}
	log.Debug("updating task", slog.Int64("task_id", id))

	if err := h.taskStore.Update(r.Context(), id, task); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteTask handles DELETE /todos/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := getPathTaskID(r)
	if !ok {
		log.Warn("invalid task ID in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	log.Debug("deleting task", slog.Int64("task_id", id))

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeTaskRequest decodes and validates a task body, writing the error
// response itself on failure. A malformed body is always answered with a
// status code, never allowed to escalate into a process fault.
func decodeTaskRequest(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (TaskRequest, bool) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))

		// Oversized chunked bodies surface here instead of at the
		// Content-Length check in the size-limit middleware.
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithErrorAndLog(w, r,
				http.StatusRequestEntityTooLarge, "Request body too large", err)
			return req, false
		}

		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return req, false
	}

	return req, true
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
	}
}

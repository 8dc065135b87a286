package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/store"
)

// getPathTaskID extracts the task id from the URL path parameters.
//
// Returns:
//   - (id, true): the parsed id if the parameter is present and a valid int64
//   - (0, false): if the parameter is missing or malformed
func getPathTaskID(r *http.Request) (int64, bool) {
	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(pathID, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

// listOptionsBody mirrors the optional JSON body of a list request. Both
// fields are pointers so absent fields can be told apart from zero values.
type listOptionsBody struct {
	Offset *int `json:"offset"`
	Limit  *int `json:"limit"`
}

// decodeListOptions builds the pagination options for a list request.
// Query parameters take precedence; a JSON body is accepted as a fallback
// for parity with clients of the original service. Decoding is lenient by
// contract: any missing, unparsable, or negative field falls back to its
// default instead of failing the request.
func decodeListOptions(r *http.Request) store.ListOptions {
	opts := store.DefaultListOptions()

	query := r.URL.Query()
	fromQuery := false

	if raw := query.Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			opts.Offset = v
		}
		fromQuery = true
	}
	if raw := query.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			opts.Limit = v
		}
		fromQuery = true
	}
	if fromQuery {
		return opts
	}

	if r.Body == nil {
		return opts
	}
	var body listOptionsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return opts
	}
	if body.Offset != nil && *body.Offset >= 0 {
		opts.Offset = *body.Offset
	}
	if body.Limit != nil && *body.Limit >= 0 {
		opts.Limit = *body.Limit
	}

	return opts
}

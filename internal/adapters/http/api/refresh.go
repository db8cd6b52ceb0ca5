package api

import (
	"errors"
	"net/http"

	service "github.com/okian/podium/internal/app"
)

// RefreshHandler queues background view recomputes.
type RefreshHandler struct {
	deps Dependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

// HandlePostRefresh handles POST /refresh/{kind} requests.
func (h *RefreshHandler) HandlePostRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_refresh"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	kind, ok := kindFromPath(w, r, "/refresh/", op)
	if !ok {
		return
	}

	jobID, status, err := h.deps.RequestRefresh(r.Context(), kind)
	switch {
	case errors.Is(err, service.ErrBackpressure):
		writeError(w, http.StatusTooManyRequests, "backpressure", WrapKind(op, ErrBackpressure, err))
		return
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", Wrap(op, err))
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	if status == service.RefreshDuplicate {
		writeJSON(w, http.StatusOK, refreshResponse{Status: string(status), View: string(kind), Duplicate: true})
		return
	}
	writeJSON(w, http.StatusAccepted, refreshResponse{Status: string(status), View: string(kind), JobID: jobID})
}

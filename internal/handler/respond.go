package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
)

// envelope is the uniform response body: every success carries a message and
// (usually) data, every failure carries a message only.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Message: message, Data: data})
}

// respondError maps domain errors onto the API status-code contract:
// validation and missing-lookup failures are 400, duplicate names 409,
// missing entities 404, and everything else 500. Unexpected errors are
// logged with the request logger but never echoed to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		respond(w, http.StatusBadRequest, verr.Error(), nil)
		return
	}

	if errors.Is(err, catalog.ErrMissingLookup) {
		respond(w, http.StatusBadRequest, "please provide either an id or a name", nil)
		return
	}

	var dupErr *catalog.AlreadyExistsError
	if errors.As(err, &dupErr) {
		respond(w, http.StatusConflict, dupErr.Error(), nil)
		return
	}

	if errors.Is(err, catalog.ErrNotFound) {
		respond(w, http.StatusNotFound, "not found", nil)
		return
	}

	zctx.From(r.Context()).Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	respond(w, http.StatusInternalServerError, "internal server error", nil)
}

// decodeJSON decodes the request body into dst. Malformed JSON is a
// validation failure, not a server error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &catalog.ValidationError{Reason: "invalid JSON body"}
	}
	return nil
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rrogerthat/shoppinglist/internal/middleware"
	"github.com/rrogerthat/shoppinglist/internal/service"
)

// maxBodyBytes caps request bodies; entities here are a few hundred bytes.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError translates a service error into a status code and JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *service.ValidationError
		nerr *service.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.As(err, &nerr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: nerr.Error()})
	default:
		slog.Error("Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeBody decodes the JSON request body into dst. Every failure is
// reported as a ValidationError so the client gets a 400.
func decodeBody(r *http.Request, dst any) error {
	return decodeJSON(r, dst, false)
}

// decodePatch is decodeBody for partial updates: an empty body is an
// update with no fields.
func decodePatch(r *http.Request, dst any) error {
	return decodeJSON(r, dst, true)
}

func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return nil
		}
		return &service.ValidationError{Message: "request body is required"}
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return &service.ValidationError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("must be of type %s", describeType(typeErr)),
			}
		case errors.Is(err, io.EOF):
			if allowEmpty {
				return nil
			}
			return &service.ValidationError{Message: "request body is required"}
		default:
			return &service.ValidationError{Message: fmt.Sprintf("invalid JSON body: %v", err)}
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &service.ValidationError{Message: "invalid JSON body: unexpected data after the JSON value"}
	}

	return nil
}

func describeType(err *json.UnmarshalTypeError) string {
	switch err.Type.String() {
	case "[]string":
		return "array of strings"
	case "string":
		return "string"
	case "bool":
		return "boolean"
	default:
		return err.Type.String()
	}
}

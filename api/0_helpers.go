package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/landregistry/api/apiviewv1"
	"github.com/fulldump/landregistry/database"
	"github.com/fulldump/landregistry/listview"
	"github.com/fulldump/landregistry/service"
)

var (
	ErrUnavailable = errors.New("temporary unavailable")
	ErrPanic       = errors.New("panic")
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

// InterceptorUnavailable leaves ErrUnavailable in the context until the
// database is operating. It must be registered inside PrettyErrorInterceptor.
func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status != database.StatusOperating {
				box.SetError(ctx, fmt.Errorf("%w: %s", ErrUnavailable, status))
				return
			}
			next(ctx)
		}
	}
}

// PrettyErrorInterceptor writes the error left by the handler as
// {"error":{"message","description"}} with a matching status code.
func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}

		status, description := describeError(ctx, err)

		w := box.GetResponse(ctx)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(PrettyError{
			Message:     err.Error(),
			Description: description,
		})
	}
}

func describeError(ctx context.Context, err error) (int, string) {

	r := box.GetRequest(ctx)

	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError

	switch {
	case errors.Is(err, box.ErrResourceNotFound):
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", r.URL.String())
	case errors.Is(err, box.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", r.Method)
	case errors.Is(err, service.ErrViewNotFound):
		return http.StatusNotFound, "view not found, list them at /v1/views"
	case errors.Is(err, service.ErrRecordNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, listview.ErrEmptySelection):
		return http.StatusBadRequest, "select at least one record"
	case errors.Is(err, listview.ErrUnknownAction):
		return http.StatusBadRequest, "action not available for this view"
	case errors.Is(err, listview.ErrInvalidCounter):
		return http.StatusBadRequest, "counter conditions need a field and in or not_in values"
	case errors.Is(err, apiviewv1.ErrBadRequest):
		return http.StatusBadRequest, "invalid input"
	case errors.As(err, &syntaxError), errors.As(err, &typeError), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, "Malformed JSON"
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable, "database is not ready, try again later"
	}

	return http.StatusInternalServerError, "Unexpected error"
}

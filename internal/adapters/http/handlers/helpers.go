package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/domain"
)

// maxBodyBytes caps a JSON request body.
const maxBodyBytes = 1 << 20

// validatable is implemented by request bodies that check their own shape.
type validatable interface {
	Validate() error
}

// pathID reads a positive int64 URL parameter. Failures are reported
// against "path.<param>".
func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("path."+param, "must be a positive integer")
	}
	return id, nil
}

// readBody decodes a single JSON value of type T from the request body and
// runs its Validate method when it has one. On failure the problem response
// is already written and ok is false.
func readBody[T any](w http.ResponseWriter, r *http.Request) (body T, ok bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(&body)
	if err == nil && dec.More() {
		err = errors.New("trailing data after JSON value")
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", bodyProblem(err)))
		return body, false
	}

	if v, isValidatable := any(&body).(validatable); isValidatable {
		if err := v.Validate(); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return body, false
		}
	}
	return body, true
}

func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
	case errors.Is(err, io.EOF):
		return domain.MsgRequired
	default:
		return "invalid JSON"
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	dto.Write(w, r, status, dto.ContentTypeJSON, v)
}

// writeEvent writes one Server-Sent Event whose data line is v as JSON.
func writeEvent(w io.Writer, id uint64, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event, err)
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", id, event, data)
	return err
}

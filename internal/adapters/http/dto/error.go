package dto

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

// ErrorResponse is an RFC 9457 Problem Details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one failing field of a validation error.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// errorStatuses is checked in order; the first sentinel err wraps wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// StatusFor maps err to an HTTP status. Unrecognized errors are 500.
func StatusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem body for err. Instance is the request
// URI. A 500 carries no detail; the cause belongs in the log.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.RequestURI,
	}
	if status != http.StatusInternalServerError {
		resp.Detail = err.Error()
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	Write(w, r, resp.Status, ContentTypeProblem, resp)
}

// fieldDetails turns validation fields into details sorted by location.
// Keys that carry a location ("path.id", "query.status") keep it, as does
// "body" for the body as a whole; other bare keys are body fields.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		if field != "body" && !strings.Contains(field, ".") {
			field = "body." + field
		}
		details = append(details, ErrorDetail{Location: field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/reach-summit/summit-api/internal/registration"
	"github.com/reach-summit/summit-api/internal/service"
)

// ErrorBody is the envelope of every error response.
type ErrorBody struct {
	status  int
	Success bool              `json:"success"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *ErrorBody) Error() string  { return e.Message }
func (e *ErrorBody) GetStatus() int { return e.status }

// huma.NewError is package global; set once so every API built here shares
// the error envelope.
func init() {
	huma.NewError = newError
}

// newError replaces huma.NewError so request decoding failures share the
// envelope. Schema violations are reported as 400 with one entry per field.
func newError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}
	body := &ErrorBody{status: status, Message: msg}
	for _, err := range errs {
		var detailer huma.ErrorDetailer
		if !errors.As(err, &detailer) {
			continue
		}
		d := detailer.ErrorDetail()
		if d == nil {
			continue
		}
		if body.Fields == nil {
			body.Fields = map[string]string{}
		}
		key := strings.TrimPrefix(d.Location, "body.")
		if key == "" {
			key = "body"
		}
		body.Fields[key] = d.Message
	}
	return body
}

func validationFailed(fields map[string]string) *ErrorBody {
	return &ErrorBody{
		status:  http.StatusBadRequest,
		Message: "validation failed",
		Fields:  fields,
	}
}

// toHTTPError maps service errors onto responses. Anything unrecognised is
// logged and reported without detail.
func toHTTPError(log *zap.Logger, err error) error {
	var verr *registration.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationFailed(verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound("not found")
	case errors.Is(err, service.ErrStore):
		return huma.Error500InternalServerError("internal server error")
	default:
		log.Error("unhandled request error", zap.Error(err))
		return huma.Error500InternalServerError("internal server error")
	}
}

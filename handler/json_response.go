package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nudostudio/nudo/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Details FieldErrors `json:"details,omitempty"`
}

// FieldError holds every message reported for one field.
type FieldError struct {
	Field    string
	Messages []string
}

// FieldErrors is encoded as a JSON object keyed by field name. Keys keep the
// order in which the fields first failed instead of the alphabetical order
// encoding/json uses for maps.
type FieldErrors []FieldError

// NewFieldErrors groups validation errors by field, preserving emission order.
func NewFieldErrors(errs validator.ValidationErrors) FieldErrors {
	if len(errs) == 0 {
		return nil
	}
	fields := errs.Fields()
	out := make(FieldErrors, 0, len(fields))
	for _, field := range fields {
		out = append(out, FieldError{Field: field, Messages: errs.Get(field)})
	}
	return out
}

// Get returns the messages of field, or nil.
func (f FieldErrors) Get(field string) []string {
	for _, fe := range f {
		if fe.Field == field {
			return fe.Messages
		}
	}
	return nil
}

func (f FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fe := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fe.Field)
		if err != nil {
			return nil, err
		}
		messages := fe.Messages
		if messages == nil {
			messages = []string{}
		}
		value, err := json.Marshal(messages)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *FieldErrors) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*f = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("field errors: expected JSON object")
	}

	var out FieldErrors
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		field, _ := tok.(string)
		var messages []string
		if err := dec.Decode(&messages); err != nil {
			return err
		}
		out = append(out, FieldError{Field: field, Messages: messages})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = out
	return nil
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response with options.
// Errors passed as v are rendered the same way as JSONError.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{},
	}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.status, r.body.Error = classifyError(val)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// JSONError creates a JSON error response.
//
// Validation errors render as 422 with per-field details, HTTPError values
// (and binder errors) use their own status, anything else is a 500 whose
// message does not leak the underlying error.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusInternalServerError,
		body:   JSONResponse{},
	}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.status, r.body.Error = classifyError(e)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

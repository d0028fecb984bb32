package handler

import "net/http"

// emptyResponse represents an empty HTTP response with only a status code
type emptyResponse struct {
	status int
}

// Render writes the status code without any body content
func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates an empty response with status 204 (No Content).
func Empty() Response {
	return emptyResponse{
		status: http.StatusNoContent,
	}
}

// EmptyWithStatus creates an empty response with a custom status code.
//
//	// 202 Accepted: the notification email is sent after the response
//	return handler.EmptyWithStatus(http.StatusAccepted)
func EmptyWithStatus(status int) Response {
	return emptyResponse{
		status: status,
	}
}

type handledResponse struct{}

func (handledResponse) Render(http.ResponseWriter, *http.Request) error { return nil }

// Handled is returned by handlers that already wrote the response themselves,
// typically by streaming events through Context.SSE.
func Handled() Response {
	return handledResponse{}
}

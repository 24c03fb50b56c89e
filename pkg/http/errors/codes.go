package errors

import "net/http"

// Messages served for each error status. They are fixed so that responses never
// carry internal details.
const (
	MsgBadRequest       = "Bad request error"
	MsgNotFound         = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgUnprocessable    = "unprocessable"
	MsgInternalError    = "Internal server error"
	MsgUpstreamError    = "Upstream error"
)

var messages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusNotFound:            MsgNotFound,
	http.StatusMethodNotAllowed:    MsgMethodNotAllowed,
	http.StatusUnprocessableEntity: MsgUnprocessable,
	http.StatusInternalServerError: MsgInternalError,
	http.StatusBadGateway:          MsgUpstreamError,
}

// MessageFor returns the stable message for status, falling back to the
// standard status text.
func MessageFor(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

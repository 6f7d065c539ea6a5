package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf extracts the wire code an error carries, falling back when the
// error is not an HTTPError.
func CodeOf(err error, fallback Code) Code {
	var h HTTPError
	if errors.As(err, &h) {
		return h.Code
	}

	return fallback
}

var (
	// ErrMalformedRequest covers both an unparseable request line and a
	// header line without a key-value separator. The original behavior
	// here was undefined; answering 400 is the documented choice.
	ErrMalformedRequest = NewError(BadRequest, "malformed request")

	// ErrPathEscapesRoot is deliberately indistinguishable from
	// ErrNotFound on the wire, so traversal probes learn nothing.
	ErrPathEscapesRoot = NewError(NotFound, "path escapes document root")

	ErrNotFound         = NewError(NotFound, "not found")
	ErrMethodNotAllowed = NewError(MethodNotAllowed, "method not allowed")
	ErrShutdown         = NewError(ServiceUnavailable, "graceful shutdown")
)

package status

type (
	Code   uint16
	Status string
)

// The server only ever emits this handful of codes. Kept as a dedicated
// type to avoid collisions with net/http's untyped constants.
const (
	OK                  Code = 200
	MovedPermanently    Code = 301
	BadRequest          Code = 400
	NotFound            Code = 404
	MethodNotAllowed    Code = 405
	InternalServerError Code = 500
	ServiceUnavailable  Code = 503
)

// Text returns the fixed reason phrase for the code, or an empty string
// if the code is not one the server produces.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case MovedPermanently:
		return "Moved Permanently"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case InternalServerError:
		return "Internal Server Error"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return ""
	}
}

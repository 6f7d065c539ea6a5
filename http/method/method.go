package method

// Method is a recognized HTTP request method. Anything the server cannot
// recognize parses to Unknown, which is still answered (with 405) rather
// than dropped.
type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

// Supported lists the methods the server actually serves. Everything else
// receives 405 with this list rendered into the Allow header.
var Supported = []Method{GET}

func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		} else if str == "TRACE" {
			return TRACE
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "CONNECT" {
			return CONNECT
		} else if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Unknown
}

func (m Method) String() string {
	lut := [...]string{
		GET: "GET", HEAD: "HEAD", POST: "POST", PUT: "PUT", DELETE: "DELETE",
		CONNECT: "CONNECT", OPTIONS: "OPTIONS", TRACE: "TRACE", PATCH: "PATCH",
	}
	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}

// AllowString renders Supported as an Allow header value, e.g. "GET".
func AllowString() string {
	buff := make([]byte, 0, 16)

	for i, m := range Supported {
		if i > 0 {
			buff = append(buff, ", "...)
		}

		buff = append(buff, m.String()...)
	}

	return string(buff)
}

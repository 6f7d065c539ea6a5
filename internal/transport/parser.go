package transport

import (
	"strings"

	"github.com/indigo-web/utils/uf"
	"github.com/statix-web/statix/http"
	"github.com/statix-web/statix/http/method"
	"github.com/statix-web/statix/http/proto"
	"github.com/statix-web/statix/http/status"
	"github.com/statix-web/statix/kv"
)

const (
	crlf      = "\r\n"
	headerSep = ": "
)

const headersPrealloc = 8

// Parse turns a raw request buffer into a structured request. The parse is
// pure: no I/O happens here and the buffer is never written to. Returned
// strings alias the buffer, which stays valid for the whole exchange as
// the server performs exactly one read per connection.
func Parse(data []byte) (*http.Request, error) {
	text := strings.TrimSpace(uf.B2S(data))
	lines := strings.Split(text, crlf)

	m, target, protocol, err := parseRequestLine(lines[0])
	if err != nil {
		return nil, err
	}

	headers := kv.NewPrealloc(headersPrealloc)

	for _, line := range lines[1:] {
		if len(line) == 0 {
			continue
		}

		key, value, found := strings.Cut(line, headerSep)
		if !found || len(key) == 0 {
			return nil, status.ErrMalformedRequest
		}

		// duplicate header names overwrite earlier ones, last wins
		headers.Set(key, value)
	}

	return http.NewRequest(m, target, protocol, headers), nil
}

// parseRequestLine splits the request line into exactly three tokens:
// method, request-target and protocol. Any other shape is malformed, as
// is a target not starting with a slash.
func parseRequestLine(line string) (m method.Method, target string, protocol proto.Proto, err error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 3 {
		return m, target, protocol, status.ErrMalformedRequest
	}

	target = tokens[1]
	if len(target) == 0 || target[0] != '/' {
		return m, target, protocol, status.ErrMalformedRequest
	}

	// an unrecognized method still parses; the decision engine answers
	// it with 405 instead of dropping the connection. Same goes for
	// exotic protocol tokens, which the original accepted blindly.
	return method.Parse(tokens[0]), target, proto.FromString(tokens[2]), nil
}

package transport

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/statix-web/statix/http/method"
	"github.com/statix-web/statix/http/status"
	"github.com/statix-web/statix/internal/address"
	"github.com/statix-web/statix/internal/engine"
)

const (
	contentLength = "Content-Length: "
	contentType   = "Content-Type: "
	date          = "Date: "
	connection    = "Connection: close"
	location      = "Location: "
	allow         = "Allow: "
)

// httpDate is the RFC 1123 HTTP-date layout with a fixed GMT zone.
const httpDate = "Mon, 02 Jan 2006 15:04:05 GMT"

// Serializer renders a decided outcome into a complete wire-format
// response. The internal buffer is reused across exchanges, so a
// serializer belongs to exactly one connection at a time.
type Serializer struct {
	buff []byte
	addr address.Address
	now  func() time.Time
}

func NewSerializer(buff []byte, addr address.Address) *Serializer {
	return &Serializer{
		buff: buff[:0],
		addr: addr,
		now:  time.Now,
	}
}

// Serialize renders the outcome. The returned slice stays valid until the
// next call. For Ok outcomes whose file vanished between the existence
// check and the read, a 404 is rendered instead and the read error is
// returned alongside it for logging; the response itself is still usable.
func (s *Serializer) Serialize(outcome engine.Outcome) (response []byte, code status.Code, err error) {
	s.clear()

	switch outcome.Kind {
	case engine.Ok:
		body, readErr := os.ReadFile(outcome.Path)
		if readErr != nil {
			// lost the race against a concurrent delete; to the
			// client this is indistinguishable from the file never
			// having existed
			s.renderSimple(status.NotFound)
			return s.buff, status.NotFound, readErr
		}

		s.renderFile(outcome.Path, body)
		return s.buff, status.OK, nil
	case engine.Redirect:
		s.renderRedirect(outcome.Target)
		return s.buff, status.MovedPermanently, nil
	case engine.MethodNotAllowed:
		s.renderMethodNotAllowed()
		return s.buff, status.MethodNotAllowed, nil
	case engine.BadRequest:
		code = status.CodeOf(outcome.Err, status.BadRequest)
		s.renderSimple(code)
		return s.buff, code, nil
	default:
		// the decision engine hands over the concrete error it hit;
		// its code is what goes on the wire, so a traversal attempt
		// renders exactly like a missing file
		code = status.CodeOf(outcome.Err, status.NotFound)
		s.renderSimple(code)
		return s.buff, code, nil
	}
}

func (s *Serializer) renderFile(path string, body []byte) {
	s.renderStatusLine(status.OK)
	s.renderKnownHeader(contentLength, strconv.Itoa(len(body)))
	s.renderKnownHeader(contentType, contentTypeOf(path))
	s.renderDate()
	s.buff = append(s.buff, connection...)
	s.crlf()
	s.crlf()
	s.buff = append(s.buff, body...)
}

func (s *Serializer) renderRedirect(target string) {
	s.renderStatusLine(status.MovedPermanently)
	s.renderKnownHeader(location, "http://"+s.addr.String()+target+"/")
	s.renderDate()
	s.buff = append(s.buff, connection...)
	s.crlf()
	s.crlf()
}

func (s *Serializer) renderMethodNotAllowed() {
	s.renderStatusLine(status.MethodNotAllowed)
	s.renderDate()
	s.renderKnownHeader(allow, method.AllowString())
	s.crlf()
}

func (s *Serializer) renderSimple(code status.Code) {
	s.renderStatusLine(code)
	s.renderDate()
	s.buff = append(s.buff, connection...)
	s.crlf()
	s.crlf()
}

func (s *Serializer) renderStatusLine(code status.Code) {
	s.buff = append(s.buff, "HTTP/1.1 "...)
	s.buff = strconv.AppendInt(s.buff, int64(code), 10)
	s.sp()
	s.buff = append(s.buff, status.Text(code)...)
	s.crlf()
}

func (s *Serializer) renderKnownHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *Serializer) renderDate() {
	s.buff = append(s.buff, date...)
	s.buff = s.now().UTC().AppendFormat(s.buff, httpDate)
	s.crlf()
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}

// contentTypeOf reuses the extension substring after the last dot
// literally, e.g. text/html, text/css, text/txt. No MIME table is
// consulted.
func contentTypeOf(path string) string {
	dot := strings.LastIndexByte(path, '.')
	if dot == -1 || dot == len(path)-1 {
		return "text/plain"
	}

	return "text/" + path[dot+1:]
}

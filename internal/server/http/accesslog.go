package http

import (
	"io"
	"net"
	"sync"
	"time"

	json "github.com/json-iterator/go"
	"github.com/statix-web/statix/http"
	"github.com/statix-web/statix/http/status"
)

// AccessLog writes one JSON line per finished exchange. A single instance
// is shared by all connections, so writes are serialized by a mutex.
type AccessLog struct {
	mu  sync.Mutex
	dst io.Writer
	now func() time.Time
}

type entry struct {
	Time      string `json:"time"`
	Remote    string `json:"remote"`
	Method    string `json:"method"`
	Target    string `json:"target"`
	Status    int    `json:"status"`
	UserAgent string `json:"user_agent,omitempty"`
	Referer   string `json:"referer,omitempty"`
}

func NewAccessLog(dst io.Writer) *AccessLog {
	return &AccessLog{
		dst: dst,
		now: time.Now,
	}
}

// Log records the exchange. The request may be nil when parsing failed;
// the status (typically 400) is recorded anyway.
func (a *AccessLog) Log(remote net.Addr, request *http.Request, code status.Code) {
	if a == nil || a.dst == nil {
		return
	}

	e := entry{
		Time:   a.now().UTC().Format(time.RFC3339),
		Status: int(code),
	}
	if remote != nil {
		e.Remote = remote.String()
	}
	if request != nil {
		e.Method = request.Method.String()
		e.Target = request.Target
		e.UserAgent = request.Headers.Value("User-Agent")
		e.Referer = request.Headers.Value("Referer")
	}

	line, err := json.Marshal(e)
	if err != nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	_, _ = a.dst.Write(append(line, '\n'))
}

package http

import (
	"github.com/statix-web/statix/http/method"
	"github.com/statix-web/statix/http/proto"
	"github.com/statix-web/statix/kv"
)

// Request is the structured form of a single parsed request. It is built
// once per connection and never mutated afterwards.
type Request struct {
	Method method.Method
	// Target is the raw request-target, always non-empty and starting
	// with a slash.
	Target  string
	Proto   proto.Proto
	Headers *kv.Storage
}

func NewRequest(m method.Method, target string, protocol proto.Proto, headers *kv.Storage) *Request {
	return &Request{
		Method:  m,
		Target:  target,
		Proto:   protocol,
		Headers: headers,
	}
}

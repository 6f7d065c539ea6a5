package http

import (
	"log"

	"github.com/statix-web/statix/http"
	"github.com/statix-web/statix/internal/engine"
	"github.com/statix-web/statix/internal/server/tcp"
	"github.com/statix-web/statix/internal/transport"
)

// Server drives a single connection through the whole pipeline: one read,
// parse, decide, serialize, one write, close.
type Server struct {
	engine     engine.Engine
	serializer *transport.Serializer
	accessLog  *AccessLog
}

func NewServer(e engine.Engine, serializer *transport.Serializer, accessLog *AccessLog) *Server {
	return &Server{
		engine:     e,
		serializer: serializer,
		accessLog:  accessLog,
	}
}

// Run performs exactly one exchange and closes the client. Requests
// longer than the read buffer arrive truncated, which the parser then
// treats like any other malformed input.
func (s *Server) Run(client tcp.Client) {
	defer func() {
		_ = client.Close()
	}()

	data, err := client.Read()
	if err != nil {
		// nothing arrived at all, there is nobody to answer
		return
	}

	var request *http.Request

	outcome := engine.Outcome{Kind: engine.BadRequest}
	request, err = transport.Parse(data)
	if err == nil {
		outcome = s.engine.Decide(request)
	} else {
		outcome.Err = err
	}

	response, code, err := s.serializer.Serialize(outcome)
	if err != nil {
		// the file disappeared between the existence check and the
		// read; the rendered 404 is still served and only this
		// exchange is affected
		log.Printf("statix: reading resolved file: %v", err)
	}

	s.accessLog.Log(client.Remote(), request, code)

	if err = client.Write(response); err != nil {
		log.Printf("statix: writing response: %v", err)
	}
}

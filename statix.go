// Package statix is a minimal GET-only HTTP/1.1 static file server. It
// answers every request with one of 200, 301, 404 or 405 (plus a
// defensive 400 for input it cannot parse), serving files from a single
// document root and refusing anything that resolves outside of it.
package statix

import (
	"fmt"
	"io"
	"net"
	"os"

	"github.com/statix-web/statix/config"
	"github.com/statix-web/statix/internal/address"
	"github.com/statix-web/statix/internal/engine"
	"github.com/statix-web/statix/internal/resolver"
	httpserver "github.com/statix-web/statix/internal/server/http"
	"github.com/statix-web/statix/internal/server/tcp"
	"github.com/statix-web/statix/internal/transport"
)

// App wires the document root, the listener and the per-connection
// pipeline together.
type App struct {
	addr      address.Address
	cfg       *config.Config
	accessLog io.Writer
	onStart   func()
	server    *tcp.Server
}

func New(addr string) *App {
	parsed, err := address.Parse(addr)
	if err != nil {
		panic(fmt.Errorf("statix: listen: bad addr: %v", err))
	}

	return &App{
		addr:      parsed,
		cfg:       config.Default(),
		accessLog: os.Stdout,
	}
}

// Tune replaces the default config, filling unset fields with defaults.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// AccessLog redirects per-request log lines. Pass nil to disable them.
func (a *App) AccessLog(dst io.Writer) *App {
	a.accessLog = dst
	return a
}

// NotifyOnStart calls the callback once the listener is bound. It is not
// strongly guaranteed that connections are being accepted at that exact
// moment, only that the port is taken.
func (a *App) NotifyOnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// Addr returns the address the app is bound to. The port is only
// meaningful once Serve has bound the listener, which NotifyOnStart
// signals.
func (a *App) Addr() string {
	return a.addr.String()
}

// Serve binds the listener and blocks until Stop or GracefulShutdown is
// called, or the listener fails.
func (a *App) Serve() error {
	r, err := resolver.New(a.cfg.FS.Root, a.cfg.FS.IndexFile)
	if err != nil {
		return err
	}

	sock, err := net.Listen("tcp", a.addr.String())
	if err != nil {
		return err
	}

	// a ":0" bind asks the OS for a free port; adopt the real one so
	// redirect Location headers point somewhere reachable
	if tcpAddr, ok := sock.Addr().(*net.TCPAddr); ok && a.addr.Port == 0 {
		a.addr.Port = uint16(tcpAddr.Port)
	}

	e := engine.New(r)
	accessLog := httpserver.NewAccessLog(a.accessLog)
	cfg := a.cfg
	addr := a.addr

	a.server = tcp.NewServer(sock, func(conn net.Conn) {
		client := tcp.NewClient(
			conn, cfg.NET.ReadTimeout, cfg.NET.WriteTimeout,
			make([]byte, cfg.NET.ReadBufferSize),
		)
		serializer := transport.NewSerializer(make([]byte, 0, cfg.NET.ReadBufferSize), addr)
		httpserver.NewServer(e, serializer, accessLog).Run(client)
	})

	if a.onStart != nil {
		a.onStart()
	}

	return a.server.Start()
}

// Stop shuts the listener and all in-flight connections down.
func (a *App) Stop() error {
	if a.server == nil {
		return nil
	}

	return a.server.Stop()
}

// GracefulShutdown stops accepting new connections and lets in-flight
// exchanges finish.
func (a *App) GracefulShutdown() error {
	if a.server == nil {
		return nil
	}

	return a.server.GracefulShutdown()
}

package engine

import (
	"strings"

	"github.com/statix-web/statix/http"
	"github.com/statix-web/statix/http/method"
	"github.com/statix-web/statix/http/status"
	"github.com/statix-web/statix/internal/resolver"
)

// Kind enumerates the response categories the server can decide on.
type Kind uint8

const (
	// Ok serves the resolved file.
	Ok Kind = iota + 1
	// Redirect forces the canonical trailing-slash form of a
	// directory-like target.
	Redirect
	NotFound
	MethodNotAllowed
	// BadRequest is never produced by Decide itself; the connection
	// handler selects it when the request could not be parsed at all.
	BadRequest
)

// Outcome is the decided response category plus the data needed to build
// it: the file path for Ok, the original target for Redirect. Error kinds
// carry the status.HTTPError that caused them; the serializer derives the
// wire code from it, and internally distinct errors (a traversal attempt
// vs. a genuinely missing file) stay distinguishable for logging.
type Outcome struct {
	Kind   Kind
	Path   string
	Target string
	Err    error
}

// Engine decides which of the response categories a request falls into.
// The checks run in a fixed order and the first hit is terminal, which
// gives method errors priority over path errors, and redirects priority
// over existence checks.
type Engine struct {
	resolver *resolver.Resolver
}

func New(r *resolver.Resolver) Engine {
	return Engine{resolver: r}
}

func (e Engine) Decide(request *http.Request) Outcome {
	if request.Method != method.GET {
		return Outcome{Kind: MethodNotAllowed, Err: status.ErrMethodNotAllowed}
	}

	// a directory-like target without its trailing slash is redirected
	// before the filesystem is even consulted: it is the redirect
	// target, not the original, that gets validated on the follow-up
	// request
	if e.resolver.DirectoryLike(request.Target) && !strings.HasSuffix(request.Target, "/") {
		return Outcome{Kind: Redirect, Target: request.Target}
	}

	resolved := e.resolver.Resolve(request.Target)
	if !resolved.WithinRoot {
		return Outcome{Kind: NotFound, Err: status.ErrPathEscapesRoot}
	}
	if !resolved.Exists {
		return Outcome{Kind: NotFound, Err: status.ErrNotFound}
	}

	return Outcome{Kind: Ok, Path: resolved.Path}
}

package http

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/statix-web/statix/internal/address"
	"github.com/statix-web/statix/internal/engine"
	"github.com/statix-web/statix/internal/resolver"
	"github.com/statix-web/statix/internal/server/tcp/dummy"
	"github.com/statix-web/statix/internal/transport"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*Server, *bytes.Buffer) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>home</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "docs"), 0o755))

	r, err := resolver.New(root, "index.html")
	require.NoError(t, err)

	logBuff := new(bytes.Buffer)
	serializer := transport.NewSerializer(
		make([]byte, 0, 1024), address.Address{Host: "localhost", Port: 8080},
	)

	return NewServer(engine.New(r), serializer, NewAccessLog(logBuff)), logBuff
}

func exchange(t *testing.T, server *Server, raw string) string {
	client := dummy.NewClient([]byte(raw))
	server.Run(client)
	require.True(t, client.Closed())

	return string(client.Written())
}

func TestRun(t *testing.T) {
	t.Run("serves existing file", func(t *testing.T) {
		server, _ := newServer(t)
		response := exchange(t, server, "GET /a.txt HTTP/1.1\r\nHost: localhost:8080\r\n\r\n")

		require.True(t, strings.HasPrefix(response, "HTTP/1.1 200 OK\r\n"))
		require.Contains(t, response, "Content-Length: 5\r\n")
		require.Contains(t, response, "Content-Type: text/txt\r\n")
		require.True(t, strings.HasSuffix(response, "\r\n\r\nhello"))
	})

	t.Run("serves index for root", func(t *testing.T) {
		server, _ := newServer(t)
		response := exchange(t, server, "GET / HTTP/1.1\r\n\r\n")

		require.True(t, strings.HasPrefix(response, "HTTP/1.1 200 OK\r\n"))
		require.Contains(t, response, "Content-Type: text/html\r\n")
		require.True(t, strings.HasSuffix(response, "<h1>home</h1>"))
	})

	t.Run("redirects directory-like target", func(t *testing.T) {
		server, _ := newServer(t)
		response := exchange(t, server, "GET /docs HTTP/1.1\r\n\r\n")

		require.True(t, strings.HasPrefix(response, "HTTP/1.1 301 Moved Permanently\r\n"))
		require.Contains(t, response, "Location: http://localhost:8080/docs/\r\n")
	})

	t.Run("missing index yields 404", func(t *testing.T) {
		server, _ := newServer(t)
		response := exchange(t, server, "GET /docs/ HTTP/1.1\r\n\r\n")

		require.True(t, strings.HasPrefix(response, "HTTP/1.1 404 Not Found\r\n"))
	})

	t.Run("rejects non-GET", func(t *testing.T) {
		server, _ := newServer(t)
		response := exchange(t, server, "POST /a.txt HTTP/1.1\r\nContent-Length: 0\r\n\r\n")

		require.True(t, strings.HasPrefix(response, "HTTP/1.1 405 Method Not Allowed\r\n"))
		require.Contains(t, response, "Allow: GET\r\n")
	})

	t.Run("answers malformed input with 400", func(t *testing.T) {
		server, _ := newServer(t)
		response := exchange(t, server, "complete nonsense")

		require.True(t, strings.HasPrefix(response, "HTTP/1.1 400 Bad Request\r\n"))
	})

	t.Run("traversal is answered with 404", func(t *testing.T) {
		server, _ := newServer(t)
		response := exchange(t, server, "GET /../../etc/passwd.txt HTTP/1.1\r\n\r\n")

		require.True(t, strings.HasPrefix(response, "HTTP/1.1 404 Not Found\r\n"))
	})

	t.Run("oversized request is truncated to 400", func(t *testing.T) {
		server, _ := newServer(t)

		// the request line alone overflows a 4096-byte read buffer;
		// the single read leaves the request torn mid-line and the
		// remainder is never reassembled
		raw := "GET /" + strings.Repeat("a", 8192) + " HTTP/1.1\r\n\r\n"
		client := dummy.NewClientSized([]byte(raw), 4096)
		server.Run(client)

		require.True(t, client.Closed())
		require.True(t, strings.HasPrefix(string(client.Written()), "HTTP/1.1 400 Bad Request\r\n"))
	})
}

func TestAccessLog(t *testing.T) {
	server, logBuff := newServer(t)
	exchange(t, server, "GET /a.txt HTTP/1.1\r\nUser-Agent: curl/8.0\r\nReferer: http://localhost:8080/\r\n\r\n")

	var logged struct {
		Time      string `json:"time"`
		Remote    string `json:"remote"`
		Method    string `json:"method"`
		Target    string `json:"target"`
		Status    int    `json:"status"`
		UserAgent string `json:"user_agent"`
		Referer   string `json:"referer"`
	}
	require.NoError(t, json.Unmarshal(logBuff.Bytes(), &logged))
	require.Equal(t, "GET", logged.Method)
	require.Equal(t, "/a.txt", logged.Target)
	require.Equal(t, 200, logged.Status)
	require.Equal(t, "curl/8.0", logged.UserAgent)
	require.Equal(t, "http://localhost:8080/", logged.Referer)
	require.NotEmpty(t, logged.Time)
	require.NotEmpty(t, logged.Remote)
}

package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/utils/unreader"
)

// Client replays a fixed request buffer on read and captures everything
// written back, which lets handler tests run a complete exchange without
// opening a socket.
type Client struct {
	unreader *unreader.Unreader
	data     []byte
	readSize int
	written  []byte
	closed   bool
}

func NewClient(data []byte) *Client {
	return NewClientSized(data, len(data))
}

// NewClientSized caps every read at readSize bytes, mimicking a transport
// whose read buffer is smaller than the request: a single read hands out
// a truncated prefix, the rest stays behind.
func NewClientSized(data []byte, readSize int) *Client {
	return &Client{
		unreader: new(unreader.Unreader),
		data:     data,
		readSize: readSize,
	}
}

func (c *Client) Read() ([]byte, error) {
	return c.unreader.PendingOr(func() ([]byte, error) {
		if c.closed || len(c.data) == 0 {
			return nil, io.EOF
		}

		n := len(c.data)
		if c.readSize > 0 && n > c.readSize {
			n = c.readSize
		}

		piece := c.data[:n]
		c.data = c.data[n:]

		return piece, nil
	})
}

func (c *Client) Unread(takeback []byte) {
	c.unreader.Unread(takeback)
}

func (c *Client) Write(b []byte) error {
	c.written = append(c.written, b...)
	return nil
}

func (c *Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 54321}
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Written exposes the bytes the handler sent back.
func (c *Client) Written() []byte {
	return c.written
}

func (c *Client) Closed() bool {
	return c.closed
}

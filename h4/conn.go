package h4

import (
	"net"
	"time"
)

// ConnWithTimeout bounds every read and write on a stream connection. A
// zero timeout leaves the deadlines unset.
type ConnWithTimeout struct {
	net.Conn
	Timeout time.Duration
}

func NewConnWithTimeout(c net.Conn, timeout time.Duration) *ConnWithTimeout {
	return &ConnWithTimeout{Conn: c, Timeout: timeout}
}

func (c *ConnWithTimeout) Read(b []byte) (int, error) {
	if c.Timeout > 0 {
		c.Conn.SetReadDeadline(time.Now().Add(c.Timeout))
	}
	return c.Conn.Read(b)
}

func (c *ConnWithTimeout) Write(b []byte) (int, error) {
	if c.Timeout > 0 {
		c.Conn.SetWriteDeadline(time.Now().Add(c.Timeout))
	}
	return c.Conn.Write(b)
}

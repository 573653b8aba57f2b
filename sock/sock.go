// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sock is a thin TCP socket wrapper whose fallible operations
// report through tagged.Result.
package sock

import (
	"bufio"
	"context"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"code.hybscloud.com/tagged"
)

// ErrClosed is reported when the socket or its peer has been closed.
var ErrClosed = errors.New("sock: connection closed")

// Socket is a connected TCP socket. It is owned by one goroutine at a time.
type Socket struct {
	conn net.Conn
	rd   *bufio.Reader
}

func newSocket(conn net.Conn) *Socket {
	return &Socket{conn: conn, rd: bufio.NewReader(conn)}
}

func hostPort(addr string, port uint16) string {
	return net.JoinHostPort(addr, strconv.Itoa(int(port)))
}

// Dial connects to addr:port over IPv4.
func Dial(ctx context.Context, addr string, port uint16) tagged.Result[*Socket, error] {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp4", hostPort(addr, port))
	if err != nil {
		return tagged.Err[*Socket](errors.Wrapf(err, "dialing %s", hostPort(addr, port)))
	}
	return tagged.Ok[*Socket, error](newSocket(conn))
}

// Send writes p and returns the number of bytes written.
func (s *Socket) Send(p []byte) tagged.Result[int, error] {
	if s.conn == nil {
		return tagged.Err[int](ErrClosed)
	}
	n, err := s.conn.Write(p)
	if err != nil {
		return tagged.Err[int](errors.Wrap(err, "sending"))
	}
	return tagged.Ok[int, error](n)
}

// SendString writes msg.
func (s *Socket) SendString(msg string) tagged.Result[int, error] {
	return s.Send([]byte(msg))
}

// Recv reads into p and returns the number of bytes read.
// A read of zero bytes means the peer closed the connection and is reported
// as ErrClosed.
func (s *Socket) Recv(p []byte) tagged.Result[int, error] {
	if s.conn == nil {
		return tagged.Err[int](ErrClosed)
	}
	n, err := s.rd.Read(p)
	switch {
	case n > 0:
		return tagged.Ok[int, error](n)
	case err == nil, errors.Is(err, io.EOF):
		return tagged.Err[int](ErrClosed)
	default:
		return tagged.Err[int](errors.Wrap(err, "receiving"))
	}
}

// minPollWait bounds a non-positive Poll timeout. A deadline that has
// already passed fails the read before the socket is checked.
const minPollWait = time.Millisecond

// Poll reports whether data (or end of stream) is ready to read within
// timeout. A timeout <= 0 checks pending data and waits at most minPollWait
// when there is none.
func (s *Socket) Poll(timeout time.Duration) tagged.Result[bool, error] {
	if s.conn == nil {
		return tagged.Err[bool](ErrClosed)
	}
	if s.rd.Buffered() > 0 {
		return tagged.Ok[bool, error](true)
	}
	if timeout < minPollWait {
		timeout = minPollWait
	}
	if err := s.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return tagged.Err[bool](errors.Wrap(err, "setting read deadline"))
	}
	defer s.conn.SetReadDeadline(time.Time{})

	_, err := s.rd.Peek(1)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return tagged.Ok[bool, error](true)
	case errors.Is(err, os.ErrDeadlineExceeded):
		return tagged.Ok[bool, error](false)
	default:
		return tagged.Err[bool](errors.Wrap(err, "polling"))
	}
}

// RemoteAddr returns the peer address.
func (s *Socket) RemoteAddr() net.Addr {
	if s.conn == nil {
		return nil
	}
	return s.conn.RemoteAddr()
}

// Close shuts the connection down. Closing twice is a no-op.
func (s *Socket) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// Listener accepts TCP connections.
type Listener struct {
	ln net.Listener
}

// Listen binds addr:port over IPv4 with address and port reuse enabled
// where the platform supports it. Port 0 picks a free port.
func Listen(ctx context.Context, addr string, port uint16) tagged.Result[*Listener, error] {
	lc := net.ListenConfig{Control: reuseControl}
	ln, err := lc.Listen(ctx, "tcp4", hostPort(addr, port))
	if err != nil {
		return tagged.Err[*Listener](errors.Wrapf(err, "listening on %s", hostPort(addr, port)))
	}
	return tagged.Ok[*Listener, error](&Listener{ln: ln})
}

// Accept waits for the next connection.
func (l *Listener) Accept() tagged.Result[*Socket, error] {
	conn, err := l.ln.Accept()
	if err != nil {
		if errors.Is(err, net.ErrClosed) {
			return tagged.Err[*Socket](ErrClosed)
		}
		return tagged.Err[*Socket](errors.Wrap(err, "accepting"))
	}
	return tagged.Ok[*Socket, error](newSocket(conn))
}

// Addr returns the bound address.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Port returns the bound port.
func (l *Listener) Port() uint16 {
	if a, ok := l.ln.Addr().(*net.TCPAddr); ok {
		return uint16(a.Port)
	}
	return 0
}

// Close stops accepting. Pending Accept calls fail with ErrClosed.
func (l *Listener) Close() error {
	return l.ln.Close()
}

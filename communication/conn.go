package communication

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gorilla/websocket"
)

// Conn moves whole lines between the two ends of a game. ReadLine returns
// io.EOF once the peer is gone.
type Conn interface {
	ReadLine() (string, error)
	WriteLine(line string) error
	Close() error
}

type streamConn struct {
	rwc io.ReadWriteCloser
	r   *bufio.Reader
	w   *bufio.Writer
}

// NewStreamConn frames lines with a trailing newline, as used over TCP.
func NewStreamConn(rwc io.ReadWriteCloser) Conn {
	return &streamConn{rwc: rwc, r: bufio.NewReader(rwc), w: bufio.NewWriter(rwc)}
}

func (c *streamConn) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return "", fmt.Errorf("%w: unterminated line %q", ErrFraming, line)
		}
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

func (c *streamConn) WriteLine(line string) error {
	if strings.Contains(line, "\n") {
		return fmt.Errorf("%w: newline inside line", ErrFraming)
	}
	if _, err := c.w.WriteString(line + "\n"); err != nil {
		return err
	}
	return c.w.Flush()
}

func (c *streamConn) Close() error {
	return c.rwc.Close()
}

type webSocketConn struct {
	ws *websocket.Conn
}

// NewWebSocketConn sends each line as one text frame.
func NewWebSocketConn(ws *websocket.Conn) Conn {
	return &webSocketConn{ws: ws}
}

func (c *webSocketConn) ReadLine() (string, error) {
	mt, data, err := c.ws.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return "", io.EOF
		}
		return "", err
	}
	if mt != websocket.TextMessage {
		return "", fmt.Errorf("%w: unexpected frame type %d", ErrFraming, mt)
	}
	return string(data), nil
}

func (c *webSocketConn) WriteLine(line string) error {
	if strings.Contains(line, "\n") {
		return fmt.Errorf("%w: newline inside line", ErrFraming)
	}
	return c.ws.WriteMessage(websocket.TextMessage, []byte(line))
}

// Close says goodbye to the peer before dropping the connection.
func (c *webSocketConn) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.ws.WriteMessage(websocket.CloseMessage, msg)
	return c.ws.Close()
}

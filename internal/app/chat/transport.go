/*
Package chat contains the client-side logic for the community chat.

This file defines the transport ports (Conn and Dialer) and their
gorilla/websocket implementation. The manager only ever sees the ports, so its
reconnection and teardown logic is testable against a scripted fake.
*/
package chat

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"huecas/internal/pkg/logx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed for the client to wait for a Pong from the server.
	pongWait = 60 * time.Second

	// frequency at which the client sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of a frame received from the server.
	maxMessageSize = 8192
)

// Conn is one live connection to the chat service.
type Conn interface {
	// ReadEnvelope blocks until the next server event or a read failure.
	ReadEnvelope() (Envelope, error)

	// WriteEnvelope sends one event to the server.
	WriteEnvelope(Envelope) error

	// Close tears the connection down. Safe to call more than once.
	Close() error
}

// Dialer opens connections to the chat service.
type Dialer interface {
	Dial(ctx context.Context, rawURL string) (Conn, error)
}

// WebsocketDialer is the production Dialer, backed by gorilla/websocket.
type WebsocketDialer struct {
	dialer *websocket.Dialer
}

// NewWebsocketDialer returns a WebsocketDialer using the default handshake settings.
func NewWebsocketDialer() *WebsocketDialer {
	return &WebsocketDialer{
		dialer: websocket.DefaultDialer,
	}
}

// Dial opens a WebSocket connection to rawURL with credentials (cookies)
// included and returns it wrapped as a Conn with heartbeats running.
func (d *WebsocketDialer) Dial(ctx context.Context, rawURL string) (Conn, error) {
	conn, _, err := d.dialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}

	return newWSConn(conn), nil
}

// wsConn adapts a *websocket.Conn to the Conn port. It enforces read limits
// and deadlines and keeps the connection alive with periodic pings, in the
// same shape a server-side pump would.
type wsConn struct {
	conn *websocket.Conn

	// writeMu serializes writes: control frames from the ping loop and data
	// frames from the manager share one connection.
	writeMu sync.Mutex

	closeOnce sync.Once
	closed    chan struct{}
}

func newWSConn(conn *websocket.Conn) *wsConn {
	c := &wsConn{
		conn:   conn,
		closed: make(chan struct{}),
	}

	conn.SetReadLimit(maxMessageSize)

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logx.Warn("Failed to set initial read deadline on chat connection.")
	}

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go c.pingLoop()

	return c
}

// pingLoop sends a periodic Ping to keep the connection heartbeat alive. It
// exits on the first write failure or when the connection closes.
func (c *wsConn) pingLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			c.writeMu.Unlock()

			if err != nil {
				return
			}

		case <-c.closed:
			return
		}
	}
}

// ReadEnvelope blocks for the next JSON frame from the server.
func (c *wsConn) ReadEnvelope() (Envelope, error) {
	var env Envelope
	if err := c.conn.ReadJSON(&env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// WriteEnvelope sends one JSON frame, bounded by the write deadline.
func (c *wsConn) WriteEnvelope(env Envelope) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteJSON(env)
}

// Close stops the ping loop and closes the underlying connection.
func (c *wsConn) Close() error {
	var err error

	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})

	return err
}

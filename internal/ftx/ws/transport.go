package ws

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/net/proxy"
)

const writeTimeout = 10 * time.Second

// Transport is the minimal capability the session needs from a socket: send
// one text frame, receive one text frame. The concrete implementation is
// chosen once at connect time and never switched afterwards.
type Transport interface {
	Send(ctx context.Context, frame []byte) error
	Receive() ([]byte, error)
	Close() error
}

// wsConn carries the gorilla connection shared by both transports. The
// session is the only reader and the only writer, so no locking is needed.
type wsConn struct {
	conn *websocket.Conn
}

func (c *wsConn) Send(ctx context.Context, frame []byte) error {
	deadline := time.Now().Add(writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	return c.conn.WriteMessage(websocket.TextMessage, frame)
}

func (c *wsConn) Receive() ([]byte, error) {
	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		// The protocol is text/JSON only.
		if msgType == websocket.TextMessage {
			return data, nil
		}
	}
}

func (c *wsConn) Close() error {
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(5*time.Second),
	)
	return c.conn.Close()
}

// directTransport dials the endpoint directly; gorilla negotiates TLS as
// part of the wss handshake.
type directTransport struct {
	wsConn
}

func dialDirect(ctx context.Context, endpoint string) (*directTransport, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: defaultHandshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", endpoint, err)
	}

	return &directTransport{wsConn{conn: conn}}, nil
}

// proxyTransport tunnels the connection through a SOCKS5 proxy and layers
// TLS on top, negotiated against the exchange's hostname rather than the
// proxy's.
type proxyTransport struct {
	wsConn
}

func dialProxy(ctx context.Context, endpoint, proxyAddr string) (*proxyTransport, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %s: %w", endpoint, err)
	}

	socks, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("failed to build socks5 dialer for %s: %w", proxyAddr, err)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: defaultHandshakeTimeout,
		NetDialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := socks.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return socks.Dial(network, addr)
		},
		TLSClientConfig: &tls.Config{ServerName: u.Hostname()},
	}

	conn, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s via proxy %s: %w", endpoint, proxyAddr, err)
	}

	return &proxyTransport{wsConn{conn: conn}}, nil
}

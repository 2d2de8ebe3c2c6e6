package ws

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultEndpoint is the production websocket endpoint.
	DefaultEndpoint = "wss://ftx.com/ws"

	// DefaultKeepaliveInterval is how often the session pings the server
	// while the consumer is blocked waiting for frames.
	DefaultKeepaliveInterval = 15 * time.Second

	// DefaultConfirmationBound is how many inbound frames a subscribe or
	// unsubscribe call reads before giving up on its confirmation.
	DefaultConfirmationBound = 100

	defaultHandshakeTimeout = 45 * time.Second
)

// Config describes one streaming session. The zero value plus credentials is
// a valid configuration; empty fields fall back to the documented defaults.
type Config struct {
	// Endpoint is the websocket URL. Defaults to DefaultEndpoint.
	Endpoint string

	// Key and Secret enable the login handshake. Both empty means the
	// session is opened unauthenticated and private channels are rejected
	// locally.
	Key    string
	Secret string

	// Subaccount optionally scopes the login to an exchange subaccount.
	Subaccount string

	// ProxyAddr, when set, routes the connection through a SOCKS5 proxy at
	// this host:port with TLS negotiated against the endpoint's hostname.
	ProxyAddr string

	// KeepaliveInterval overrides DefaultKeepaliveInterval when positive.
	KeepaliveInterval time.Duration

	// ConfirmationBound overrides DefaultConfirmationBound when positive.
	ConfirmationBound int

	Logger zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.KeepaliveInterval <= 0 {
		c.KeepaliveInterval = DefaultKeepaliveInterval
	}
	if c.ConfirmationBound <= 0 {
		c.ConfirmationBound = DefaultConfirmationBound
	}
	return c
}

func (c Config) hasCredentials() bool {
	return c.Key != "" && c.Secret != ""
}

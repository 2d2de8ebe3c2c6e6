package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"ftxgo/internal/domain/events"
)

type readResult struct {
	data []byte
	err  error
}

// Session owns one live websocket connection to the exchange. It is a
// single-consumer object: one logical caller drives Subscribe, Unsubscribe
// and Next, so no internal locking is used. A transport or decode error is
// terminal and is returned from every call made after it; the caller
// recovers by discarding the session and connecting again.
type Session struct {
	cfg           Config
	transport     Transport
	logger        zerolog.Logger
	authenticated bool

	// channels is the active subscription set, in confirmation order.
	channels []Channel

	// queue holds decoded but undelivered events, strictly FIFO. It is
	// drained completely before any new network read is issued.
	queue []events.MarketEvent

	keepalive *time.Ticker

	// pending is the single in-flight read slot: nil when no read is
	// outstanding, otherwise a 1-buffered channel its reader goroutine
	// resolves exactly once. A context cancellation leaves the slot in
	// place so the next call picks the frame up without losing it.
	pending chan readResult

	err error
}

// Connect establishes the transport, performs the login handshake when
// credentials are present, and returns a live session. A dial or handshake
// failure aborts construction; no partial session is returned.
func Connect(ctx context.Context, cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()

	var (
		transport Transport
		err       error
	)
	if cfg.ProxyAddr != "" {
		transport, err = dialProxy(ctx, cfg.Endpoint, cfg.ProxyAddr)
	} else {
		transport, err = dialDirect(ctx, cfg.Endpoint)
	}
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:           cfg,
		transport:     transport,
		logger:        cfg.Logger,
		authenticated: cfg.hasCredentials(),
		keepalive:     time.NewTicker(cfg.KeepaliveInterval),
	}

	if s.authenticated {
		if err := s.login(ctx); err != nil {
			_ = transport.Close()
			return nil, err
		}
	}

	s.logger.Info().
		Str("endpoint", cfg.Endpoint).
		Bool("authenticated", s.authenticated).
		Bool("proxied", cfg.ProxyAddr != "").
		Msg("websocket session established")

	return s, nil
}

// IsAuthenticated reports whether the session was opened with credentials.
// The flag is fixed at connect time; the server's reaction to the login
// frame is never inspected.
func (s *Session) IsAuthenticated() bool {
	return s.authenticated
}

// ActiveChannels returns a copy of the current subscription set.
func (s *Session) ActiveChannels() []Channel {
	out := make([]Channel, len(s.channels))
	copy(out, s.channels)
	return out
}

// Next returns the oldest undelivered event. When the queue is empty it
// races the keepalive timer against the next inbound frame, looping until a
// frame produces at least one event or a terminal error occurs.
func (s *Session) Next(ctx context.Context) (events.MarketEvent, error) {
	for {
		if len(s.queue) > 0 {
			ev := s.queue[0]
			s.queue = s.queue[1:]
			return ev, nil
		}

		frame, err := s.nextFrame(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.handleFrame(frame); err != nil {
			return nil, err
		}
	}
}

// Close tears the transport down and stops the keepalive timer. There is no
// graceful protocol-level shutdown beyond the socket close handshake.
func (s *Session) Close() error {
	s.keepalive.Stop()
	return s.transport.Close()
}

// nextFrame blocks on the race between the keepalive timer and the in-flight
// read, returning the next non-pong frame. At most one read is outstanding
// at any time.
func (s *Session) nextFrame(ctx context.Context) (inboundFrame, error) {
	if s.err != nil {
		return inboundFrame{}, s.err
	}

	for {
		if s.pending == nil {
			slot := make(chan readResult, 1)
			transport := s.transport
			go func() {
				data, err := transport.Receive()
				slot <- readResult{data: data, err: err}
			}()
			s.pending = slot
		}

		select {
		case <-ctx.Done():
			// The read stays outstanding in the slot for the next call.
			return inboundFrame{}, ctx.Err()

		case <-s.keepalive.C:
			if err := s.ping(ctx); err != nil {
				return inboundFrame{}, s.fail(fmt.Errorf("failed to send ping: %w", err))
			}

		case res := <-s.pending:
			s.pending = nil
			if res.err != nil {
				return inboundFrame{}, s.fail(res.err)
			}
			frame, err := decodeFrame(res.data)
			if err != nil {
				return inboundFrame{}, s.fail(err)
			}
			if frame.Type == framePong {
				continue
			}
			return frame, nil
		}
	}
}

// handleFrame demultiplexes one frame into the event queue. Confirmation
// frames arriving outside a subscribe/unsubscribe wait carry no data and
// are dropped here.
func (s *Session) handleFrame(f inboundFrame) error {
	switch f.Type {
	case frameError:
		s.logger.Warn().
			Int("code", f.Code).
			Str("msg", f.Msg).
			Str("channel", string(f.Channel)).
			Msg("server reported an error")
		return nil
	case frameInfo:
		s.logger.Info().Int("code", f.Code).Str("msg", f.Msg).Msg("server info")
		return nil
	}

	evs, err := f.demux()
	if err != nil {
		return s.fail(err)
	}
	s.queue = append(s.queue, evs...)
	return nil
}

func (s *Session) ping(ctx context.Context) error {
	return s.send(ctx, pingRequest{Op: "ping"})
}

func (s *Session) send(ctx context.Context, v any) error {
	frame, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return s.transport.Send(ctx, frame)
}

// fail latches err as the session's terminal error.
func (s *Session) fail(err error) error {
	s.err = err
	return err
}

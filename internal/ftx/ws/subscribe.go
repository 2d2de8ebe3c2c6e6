package ws

import (
	"context"
	"fmt"
)

// Subscribe runs the subscribe handshake for each channel in order. Private
// channels on an unauthenticated session are rejected before any frame is
// sent. On success every requested channel is in the active set exactly
// once, even if requested redundantly.
func (s *Session) Subscribe(ctx context.Context, channels []Channel) error {
	for _, ch := range channels {
		if ch.Private() && !s.authenticated {
			return fmt.Errorf("%w: %s requires credentials", ErrSocketNotAuthenticated, ch)
		}
	}
	return s.subscribeOrUnsubscribe(ctx, channels, true)
}

// Unsubscribe runs the unsubscribe handshake for each channel in order. A
// channel outside the active set fails the whole call up front, with no
// frame sent and the active set untouched. Removals are applied only once
// the whole batch is confirmed: a batch that fails partway leaves the
// active set exactly as it was.
func (s *Session) Unsubscribe(ctx context.Context, channels []Channel) error {
	for _, ch := range channels {
		if !s.subscribed(ch) {
			return fmt.Errorf("%w: %s", ErrNotSubscribed, ch)
		}
	}
	if err := s.subscribeOrUnsubscribe(ctx, channels, false); err != nil {
		return err
	}
	for _, ch := range channels {
		s.remove(ch)
	}
	return nil
}

// UnsubscribeAll unsubscribes from the whole active set, then clears it.
func (s *Session) UnsubscribeAll(ctx context.Context) error {
	active := s.ActiveChannels()
	if err := s.Unsubscribe(ctx, active); err != nil {
		return err
	}
	s.channels = s.channels[:0]
	return nil
}

// subscribeOrUnsubscribe drives the per-channel handshake sequentially: send
// the op frame, then read inbound frames up to the configured bound looking
// for the matching confirmation type. Frames received while waiting are
// demultiplexed as usual so no data is lost. On the subscribe path the
// active set grows per channel at confirmation time, so if a later channel
// in the batch times out the channels confirmed earlier stay subscribed.
// Unsubscribe removals are handled by the caller after the batch succeeds.
func (s *Session) subscribeOrUnsubscribe(ctx context.Context, channels []Channel, subscribe bool) error {
	op, expected := "unsubscribe", frameUnsubscribed
	if subscribe {
		op, expected = "subscribe", frameSubscribed
	}

	for _, ch := range channels {
		if err := s.send(ctx, channelRequest{Op: op, Channel: ch.Name, Market: ch.Symbol}); err != nil {
			return fmt.Errorf("failed to send %s for %s: %w", op, ch, err)
		}

		confirmed := false
		for i := 0; i < s.cfg.ConfirmationBound; i++ {
			frame, err := s.nextFrame(ctx)
			if err != nil {
				return err
			}
			if frame.Type == expected {
				confirmed = true
				break
			}
			if err := s.handleFrame(frame); err != nil {
				return err
			}
		}
		if !confirmed {
			return fmt.Errorf("%w: no %sd frame for %s within %d frames",
				ErrMissingConfirmation, op, ch, s.cfg.ConfirmationBound)
		}

		if subscribe {
			s.add(ch)
		}

		s.logger.Debug().Str("channel", ch.String()).Str("op", op).Msg("confirmed")
	}

	return nil
}

func (s *Session) subscribed(ch Channel) bool {
	for _, c := range s.channels {
		if c == ch {
			return true
		}
	}
	return false
}

func (s *Session) add(ch Channel) {
	if !s.subscribed(ch) {
		s.channels = append(s.channels, ch)
	}
}

func (s *Session) remove(ch Channel) {
	kept := s.channels[:0]
	for _, c := range s.channels {
		if c != ch {
			kept = append(kept, c)
		}
	}
	s.channels = kept
}

package ws

import "errors"

var (
	// ErrSocketNotAuthenticated is returned by Subscribe when a private
	// channel is requested on a session opened without credentials. No frame
	// is sent.
	ErrSocketNotAuthenticated = errors.New("socket not authenticated")

	// ErrNotSubscribed is returned by Unsubscribe when one of the requested
	// channels is not in the active set. No frame is sent and the active set
	// is left unchanged.
	ErrNotSubscribed = errors.New("not subscribed to this channel")

	// ErrMissingConfirmation is returned when the confirmation frame for a
	// subscribe or unsubscribe request does not arrive within the configured
	// bound of inbound frames.
	ErrMissingConfirmation = errors.New("missing subscription confirmation")
)

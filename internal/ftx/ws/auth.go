package ws

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// login sends the signed login frame. It is fire and forget: the server's
// acknowledgment is neither awaited nor inspected, so a rejected login only
// shows up later as a subscribe failure on a private channel.
func (s *Session) login(ctx context.Context) error {
	ts := time.Now().UnixMilli()

	req := loginRequest{
		Op: "login",
		Args: loginArgs{
			Key:        s.cfg.Key,
			Sign:       signLogin(s.cfg.Secret, ts),
			Time:       ts,
			Subaccount: s.cfg.Subaccount,
		},
	}

	if err := s.send(ctx, req); err != nil {
		return fmt.Errorf("failed to send login frame: %w", err)
	}
	return nil
}

// signLogin computes hex(HMAC-SHA256(secret, "{ts}websocket_login")).
func signLogin(secret string, ts int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%dwebsocket_login", ts)
	return hex.EncodeToString(mac.Sum(nil))
}

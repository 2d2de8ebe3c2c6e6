package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignLogin(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		ts     int64
		want   string
	}{
		{
			name:   "documented example key",
			secret: "Y2QTHI23f23f23jfjas23f23To0RfUwX3H42fvN-",
			ts:     1557246346499,
			want:   "d10b5a67a1a941ae9463a60b285ae845cdeac1b11edc7da9977bef0228b96de9",
		},
		{
			name:   "second vector",
			secret: "T4lPid48QtjNxjLUFOcUZghD7CUJ7sTVsfuvQZF2",
			ts:     1588591511721,
			want:   "699b8345968d8bd89958d6fb06e0ac79ea1c80c51388653a74b3b7abb5311ac8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, signLogin(tt.secret, tt.ts))
		})
	}
}

func TestLogin_SendsSignedFrame(t *testing.T) {
	transport := newFakeTransport()
	s := newTestSession(transport, true)
	s.cfg.Key = "api-key"
	s.cfg.Secret = "api-secret"
	s.cfg.Subaccount = "sub1"

	before := time.Now().UnixMilli()
	require.NoError(t, s.login(context.Background()))
	after := time.Now().UnixMilli()

	require.Len(t, transport.sent, 1)

	var req loginRequest
	require.NoError(t, json.Unmarshal(transport.sent[0], &req))
	assert.Equal(t, "login", req.Op)
	assert.Equal(t, "api-key", req.Args.Key)
	assert.Equal(t, "sub1", req.Args.Subaccount)
	assert.GreaterOrEqual(t, req.Args.Time, before)
	assert.LessOrEqual(t, req.Args.Time, after)
	assert.Equal(t, signLogin("api-secret", req.Args.Time), req.Args.Sign)
}

func TestLogin_SubaccountOmittedWhenEmpty(t *testing.T) {
	transport := newFakeTransport()
	s := newTestSession(transport, true)
	s.cfg.Key = "api-key"
	s.cfg.Secret = "api-secret"

	require.NoError(t, s.login(context.Background()))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(transport.sent[0], &raw))
	var args map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["args"], &args))
	_, present := args["subaccount"]
	assert.False(t, present)
}

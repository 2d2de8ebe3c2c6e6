package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderbookDelta_UnmarshalJSON(t *testing.T) {
	raw := `{
		"action": "partial",
		"bids": [[41830.0, 12.5], [41829.5, 0.75]],
		"asks": [[41831.0, 3.25]],
		"checksum": 3145066473,
		"time": 1644413123.5262716
	}`

	var delta OrderbookDelta
	require.NoError(t, json.Unmarshal([]byte(raw), &delta))

	assert.Equal(t, ActionPartial, delta.Action)
	require.Len(t, delta.Bids, 2)
	require.Len(t, delta.Asks, 1)
	assert.Equal(t, "41830", delta.Bids[0].Price.String())
	assert.Equal(t, "12.5", delta.Bids[0].Size.String())
	assert.Equal(t, "41831", delta.Asks[0].Price.String())
	assert.Equal(t, uint32(3145066473), delta.Checksum)
	require.NoError(t, delta.Validate())
}

func TestOrderbookDelta_Validate(t *testing.T) {
	tests := []struct {
		name    string
		action  OrderbookAction
		wantErr error
	}{
		{name: "partial", action: ActionPartial, wantErr: nil},
		{name: "update", action: ActionUpdate, wantErr: nil},
		{name: "empty", action: "", wantErr: ErrInvalidAction},
		{name: "unknown", action: "snapshot", wantErr: ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := OrderbookDelta{Action: tt.action}
			err := delta.Validate()
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPriceLevel_UnmarshalJSON_Invalid(t *testing.T) {
	var level PriceLevel
	err := json.Unmarshal([]byte(`{"price": 1.0}`), &level)
	require.Error(t, err)
}

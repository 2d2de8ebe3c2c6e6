package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrade(t *testing.T) {
	now := time.Now()

	trade := NewTrade(
		3084555328,
		decimal.NewFromFloat(41834.0),
		decimal.NewFromFloat(0.006),
		SideBuy,
		false,
		now,
	)

	assert.NotNil(t, trade)
	assert.Equal(t, int64(3084555328), trade.ID)
	assert.True(t, trade.Price.Equal(decimal.NewFromFloat(41834.0)))
	assert.True(t, trade.Size.Equal(decimal.NewFromFloat(0.006)))
	assert.Equal(t, SideBuy, trade.Side)
	assert.False(t, trade.Liquidation)
	assert.Equal(t, now, trade.Time)
}

func TestTrade_Validate(t *testing.T) {
	tests := []struct {
		name    string
		trade   *Trade
		wantErr error
	}{
		{
			name: "valid trade",
			trade: &Trade{
				ID:    1,
				Price: decimal.NewFromFloat(41834.0),
				Size:  decimal.NewFromFloat(0.006),
				Side:  SideSell,
				Time:  time.Now(),
			},
			wantErr: nil,
		},
		{
			name: "zero price",
			trade: &Trade{
				ID:   1,
				Size: decimal.NewFromFloat(0.006),
				Side: SideBuy,
			},
			wantErr: ErrInvalidPrice,
		},
		{
			name: "negative price",
			trade: &Trade{
				ID:    1,
				Price: decimal.NewFromFloat(-1),
				Size:  decimal.NewFromFloat(0.006),
				Side:  SideBuy,
			},
			wantErr: ErrInvalidPrice,
		},
		{
			name: "zero size",
			trade: &Trade{
				ID:    1,
				Price: decimal.NewFromFloat(41834.0),
				Side:  SideBuy,
			},
			wantErr: ErrInvalidSize,
		},
		{
			name: "unknown side",
			trade: &Trade{
				ID:    1,
				Price: decimal.NewFromFloat(41834.0),
				Size:  decimal.NewFromFloat(0.006),
				Side:  Side("short"),
			},
			wantErr: ErrInvalidSide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trade.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

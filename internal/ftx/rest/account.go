package rest

import (
	"context"
	"fmt"
)

func (c *Client) GetBalances(ctx context.Context) ([]Balance, error) {
	var balances []Balance
	if err := c.get(ctx, "/wallet/balances", &balances); err != nil {
		return nil, fmt.Errorf("failed to get balances: %w", err)
	}
	return balances, nil
}

func (c *Client) GetPositions(ctx context.Context) ([]Position, error) {
	var positions []Position
	if err := c.get(ctx, "/positions", &positions); err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	return positions, nil
}

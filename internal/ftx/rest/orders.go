package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"ftxgo/internal/domain/entities"
)

func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*entities.Order, error) {
	var order entities.Order
	if err := c.post(ctx, "/orders", req, &order); err != nil {
		return nil, fmt.Errorf("failed to place order on %s: %w", req.Market, err)
	}
	return &order, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	var order entities.Order
	if err := c.get(ctx, "/orders/"+strconv.FormatInt(id, 10), &order); err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return &order, nil
}

// GetOpenOrders lists resting orders, optionally filtered by market.
func (c *Client) GetOpenOrders(ctx context.Context, market string) ([]*entities.Order, error) {
	path := "/orders"
	if market != "" {
		path += "?market=" + url.QueryEscape(market)
	}

	var orders []*entities.Order
	if err := c.get(ctx, path, &orders); err != nil {
		return nil, fmt.Errorf("failed to get open orders: %w", err)
	}
	return orders, nil
}

// CancelOrder requests cancellation; the exchange confirms asynchronously,
// so success here only means the request was queued.
func (c *Client) CancelOrder(ctx context.Context, id int64) error {
	if err := c.delete(ctx, "/orders/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("failed to cancel order %d: %w", id, err)
	}
	return nil
}

package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"ftxgo/internal/domain/entities"
)

func (c *Client) GetMarkets(ctx context.Context) ([]Market, error) {
	var markets []Market
	if err := c.get(ctx, "/markets", &markets); err != nil {
		return nil, fmt.Errorf("failed to get markets: %w", err)
	}
	return markets, nil
}

func (c *Client) GetMarket(ctx context.Context, name string) (*Market, error) {
	var market Market
	if err := c.get(ctx, "/markets/"+url.PathEscape(name), &market); err != nil {
		return nil, fmt.Errorf("failed to get market %s: %w", name, err)
	}
	return &market, nil
}

// GetOrderbook fetches a snapshot with up to depth levels per side. A depth
// of zero leaves it to the server default.
func (c *Client) GetOrderbook(ctx context.Context, market string, depth int) (*OrderbookSnapshot, error) {
	path := "/markets/" + url.PathEscape(market) + "/orderbook"
	if depth > 0 {
		path += "?depth=" + strconv.Itoa(depth)
	}

	var book OrderbookSnapshot
	if err := c.get(ctx, path, &book); err != nil {
		return nil, fmt.Errorf("failed to get orderbook for %s: %w", market, err)
	}
	return &book, nil
}

// GetTrades returns recent public trades, newest first. Zero values drop the
// corresponding query parameter.
func (c *Client) GetTrades(ctx context.Context, market string, limit int, start, end time.Time) ([]*entities.Trade, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if !start.IsZero() {
		query.Set("start_time", strconv.FormatInt(start.Unix(), 10))
	}
	if !end.IsZero() {
		query.Set("end_time", strconv.FormatInt(end.Unix(), 10))
	}

	path := "/markets/" + url.PathEscape(market) + "/trades"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var trades []*entities.Trade
	if err := c.get(ctx, path, &trades); err != nil {
		return nil, fmt.Errorf("failed to get trades for %s: %w", market, err)
	}
	return trades, nil
}

// GetHistoricalPrices returns candles at the given resolution in seconds.
func (c *Client) GetHistoricalPrices(ctx context.Context, market string, resolution, limit int, start, end time.Time) ([]Candle, error) {
	query := url.Values{}
	query.Set("resolution", strconv.Itoa(resolution))
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if !start.IsZero() {
		query.Set("start_time", strconv.FormatInt(start.Unix(), 10))
	}
	if !end.IsZero() {
		query.Set("end_time", strconv.FormatInt(end.Unix(), 10))
	}

	path := "/markets/" + url.PathEscape(market) + "/candles?" + query.Encode()

	var candles []Candle
	if err := c.get(ctx, path, &candles); err != nil {
		return nil, fmt.Errorf("failed to get candles for %s: %w", market, err)
	}
	return candles, nil
}

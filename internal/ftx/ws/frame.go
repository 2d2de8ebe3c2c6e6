package ws

import (
	"encoding/json"
	"fmt"

	"ftxgo/internal/domain/entities"
	"ftxgo/internal/domain/events"
)

type frameType string

const (
	frameSubscribed   frameType = "subscribed"
	frameUnsubscribed frameType = "unsubscribed"
	framePong         frameType = "pong"
	framePartial      frameType = "partial"
	frameUpdate       frameType = "update"
	frameError        frameType = "error"
	frameInfo         frameType = "info"
)

// inboundFrame is one decoded server message. Data stays raw until the frame
// is demultiplexed, because its shape depends on the channel.
type inboundFrame struct {
	Type    frameType       `json:"type"`
	Channel ChannelName     `json:"channel"`
	Market  string          `json:"market"`
	Data    json.RawMessage `json:"data"`
	Code    int             `json:"code"`
	Msg     string          `json:"msg"`
}

func decodeFrame(raw []byte) (inboundFrame, error) {
	var f inboundFrame
	if err := json.Unmarshal(raw, &f); err != nil {
		return inboundFrame{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	return f, nil
}

// demux expands one frame into zero or more ordered events. Confirmation and
// pong frames carry no data and yield nothing; a trades frame carries a list
// and yields one event per element, preserving list order; every other data
// frame yields exactly one event.
func (f inboundFrame) demux() ([]events.MarketEvent, error) {
	if len(f.Data) == 0 || string(f.Data) == "null" {
		return nil, nil
	}

	switch f.Channel {
	case ChannelNameTrades:
		var trades []*entities.Trade
		if err := json.Unmarshal(f.Data, &trades); err != nil {
			return nil, fmt.Errorf("failed to decode trades data: %w", err)
		}
		out := make([]events.MarketEvent, 0, len(trades))
		for _, trade := range trades {
			out = append(out, events.TradeEvent{Symbol: f.Market, Trade: trade})
		}
		return out, nil

	case ChannelNameOrderbook:
		var delta entities.OrderbookDelta
		if err := json.Unmarshal(f.Data, &delta); err != nil {
			return nil, fmt.Errorf("failed to decode orderbook data: %w", err)
		}
		return []events.MarketEvent{events.OrderbookEvent{Symbol: f.Market, Delta: &delta}}, nil

	case ChannelNameTicker:
		var ticker entities.Ticker
		if err := json.Unmarshal(f.Data, &ticker); err != nil {
			return nil, fmt.Errorf("failed to decode ticker data: %w", err)
		}
		return []events.MarketEvent{events.TickerEvent{Symbol: f.Market, Ticker: &ticker}}, nil

	case ChannelNameFills:
		var fill entities.Fill
		if err := json.Unmarshal(f.Data, &fill); err != nil {
			return nil, fmt.Errorf("failed to decode fill data: %w", err)
		}
		return []events.MarketEvent{events.FillEvent{Symbol: f.Market, Fill: &fill}}, nil

	case ChannelNameOrders:
		var order entities.Order
		if err := json.Unmarshal(f.Data, &order); err != nil {
			return nil, fmt.Errorf("failed to decode order data: %w", err)
		}
		return []events.MarketEvent{events.OrderEvent{Symbol: f.Market, Order: &order}}, nil
	}

	return nil, fmt.Errorf("unexpected data frame on channel %q", f.Channel)
}

// Outgoing op frames.

type loginArgs struct {
	Key        string `json:"key"`
	Sign       string `json:"sign"`
	Time       int64  `json:"time"`
	Subaccount string `json:"subaccount,omitempty"`
}

type loginRequest struct {
	Op   string    `json:"op"`
	Args loginArgs `json:"args"`
}

type channelRequest struct {
	Op      string      `json:"op"`
	Channel ChannelName `json:"channel"`
	Market  string      `json:"market"`
}

type pingRequest struct {
	Op string `json:"op"`
}

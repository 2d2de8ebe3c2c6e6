package ws

// ChannelName is the wire name of a subscription target.
type ChannelName string

const (
	ChannelNameOrderbook ChannelName = "orderbook"
	ChannelNameTrades    ChannelName = "trades"
	ChannelNameTicker    ChannelName = "ticker"
	ChannelNameFills     ChannelName = "fills"
	ChannelNameOrders    ChannelName = "orders"
)

// Channel identifies one subscription target. Market-scoped channels carry a
// symbol; the account-scoped fills and orders channels do not. Channels are
// comparable values, so the session can track membership by equality.
type Channel struct {
	Name   ChannelName
	Symbol string
}

func OrderbookChannel(symbol string) Channel {
	return Channel{Name: ChannelNameOrderbook, Symbol: symbol}
}

func TradesChannel(symbol string) Channel {
	return Channel{Name: ChannelNameTrades, Symbol: symbol}
}

func TickerChannel(symbol string) Channel {
	return Channel{Name: ChannelNameTicker, Symbol: symbol}
}

func FillsChannel() Channel {
	return Channel{Name: ChannelNameFills}
}

func OrdersChannel() Channel {
	return Channel{Name: ChannelNameOrders}
}

// Private reports whether subscribing to the channel requires an
// authenticated session.
func (c Channel) Private() bool {
	return c.Name == ChannelNameFills || c.Name == ChannelNameOrders
}

func (c Channel) String() string {
	if c.Symbol == "" {
		return string(c.Name)
	}
	return string(c.Name) + ":" + c.Symbol
}

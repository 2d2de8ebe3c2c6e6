package entities

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderbookAction distinguishes a full snapshot from an incremental update
// on the orderbook channel.
type OrderbookAction string

const (
	ActionPartial OrderbookAction = "partial"
	ActionUpdate  OrderbookAction = "update"
)

// PriceLevel is one (price, size) pair of an orderbook side. On the wire it
// is a two-element JSON array.
type PriceLevel struct {
	Price decimal.Decimal
	Size  decimal.Decimal
}

func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var pair [2]decimal.Decimal
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("price level: %w", err)
	}
	l.Price = pair[0]
	l.Size = pair[1]
	return nil
}

func (l PriceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]decimal.Decimal{l.Price, l.Size})
}

// OrderbookDelta is the payload of one orderbook channel frame. A size of
// zero in Bids or Asks removes that level.
type OrderbookDelta struct {
	Action   OrderbookAction `json:"action"`
	Bids     []PriceLevel    `json:"bids"`
	Asks     []PriceLevel    `json:"asks"`
	Checksum uint32          `json:"checksum"`
	Time     float64         `json:"time"`
}

func (d *OrderbookDelta) Validate() error {
	if d.Action != ActionPartial && d.Action != ActionUpdate {
		return ErrInvalidAction
	}
	return nil
}

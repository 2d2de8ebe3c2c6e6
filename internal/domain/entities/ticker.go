package entities

import "github.com/shopspring/decimal"

// Ticker is the best bid/offer snapshot pushed on the ticker channel.
type Ticker struct {
	Bid     decimal.Decimal `json:"bid"`
	Ask     decimal.Decimal `json:"ask"`
	BidSize decimal.Decimal `json:"bidSize"`
	AskSize decimal.Decimal `json:"askSize"`
	Last    decimal.Decimal `json:"last"`
	Time    float64         `json:"time"`
}

func (t *Ticker) Validate() error {
	if t.Bid.Sign() < 0 || t.Ask.Sign() < 0 {
		return ErrInvalidPrice
	}
	return nil
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FillType distinguishes regular order fills from OTC conversions.
type FillType string

const (
	FillTypeOrder FillType = "order"
	FillTypeOTC   FillType = "otc"
)

// Fill is an execution against one of the account's own orders, pushed on
// the private fills channel.
type Fill struct {
	ID            int64           `json:"id"`
	Market        string          `json:"market"`
	Future        string          `json:"future"`
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	Type          FillType        `json:"type"`
	Side          Side            `json:"side"`
	Price         decimal.Decimal `json:"price"`
	Size          decimal.Decimal `json:"size"`
	OrderID       int64           `json:"orderId"`
	TradeID       int64           `json:"tradeId"`
	Fee           decimal.Decimal `json:"fee"`
	FeeRate       decimal.Decimal `json:"feeRate"`
	FeeCurrency   string          `json:"feeCurrency"`
	Liquidity     string          `json:"liquidity"`
	Time          time.Time       `json:"time"`
}

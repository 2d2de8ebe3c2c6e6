package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"ftxgo/internal/domain/entities"
)

type MarketType string

const (
	MarketTypeFuture MarketType = "future"
	MarketTypeSpot   MarketType = "spot"
)

type Market struct {
	Name           string          `json:"name"`
	Type           MarketType      `json:"type"`
	Underlying     string          `json:"underlying"`
	BaseCurrency   string          `json:"baseCurrency"`
	QuoteCurrency  string          `json:"quoteCurrency"`
	Enabled        bool            `json:"enabled"`
	Restricted     bool            `json:"restricted"`
	PostOnly       bool            `json:"postOnly"`
	Ask            decimal.Decimal `json:"ask"`
	Bid            decimal.Decimal `json:"bid"`
	Last           decimal.Decimal `json:"last"`
	Price          decimal.Decimal `json:"price"`
	PriceIncrement decimal.Decimal `json:"priceIncrement"`
	SizeIncrement  decimal.Decimal `json:"sizeIncrement"`
	MinProvideSize decimal.Decimal `json:"minProvideSize"`
	Change1h       decimal.Decimal `json:"change1h"`
	Change24h      decimal.Decimal `json:"change24h"`
	QuoteVolume24h decimal.Decimal `json:"quoteVolume24h"`
	VolumeUSD24h   decimal.Decimal `json:"volumeUsd24h"`
}

// OrderbookSnapshot is a depth-limited point-in-time book, best levels first.
type OrderbookSnapshot struct {
	Bids []entities.PriceLevel `json:"bids"`
	Asks []entities.PriceLevel `json:"asks"`
}

type Candle struct {
	StartTime time.Time       `json:"startTime"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
}

type Balance struct {
	Coin                   string          `json:"coin"`
	Free                   decimal.Decimal `json:"free"`
	Total                  decimal.Decimal `json:"total"`
	SpotBorrow             decimal.Decimal `json:"spotBorrow"`
	AvailableWithoutBorrow decimal.Decimal `json:"availableWithoutBorrow"`
}

type Position struct {
	Future                       string          `json:"future"`
	Side                         entities.Side   `json:"side"`
	Size                         decimal.Decimal `json:"size"`
	NetSize                      decimal.Decimal `json:"netSize"`
	OpenSize                     decimal.Decimal `json:"openSize"`
	Cost                         decimal.Decimal `json:"cost"`
	EntryPrice                   decimal.Decimal `json:"entryPrice"`
	EstimatedLiquidationPrice    decimal.Decimal `json:"estimatedLiquidationPrice"`
	RealizedPnl                  decimal.Decimal `json:"realizedPnl"`
	UnrealizedPnl                decimal.Decimal `json:"unrealizedPnl"`
	InitialMarginRequirement     decimal.Decimal `json:"initialMarginRequirement"`
	MaintenanceMarginRequirement decimal.Decimal `json:"maintenanceMarginRequirement"`
	CollateralUsed               decimal.Decimal `json:"collateralUsed"`
}

// PlaceOrderRequest is the body of POST /orders. Price must be omitted for
// market orders, which the pointer encodes as null.
type PlaceOrderRequest struct {
	Market     string             `json:"market"`
	Side       entities.Side      `json:"side"`
	Type       entities.OrderType `json:"type"`
	Price      *decimal.Decimal   `json:"price"`
	Size       decimal.Decimal    `json:"size"`
	ReduceOnly bool               `json:"reduceOnly"`
	IOC        bool               `json:"ioc"`
	PostOnly   bool               `json:"postOnly"`
	ClientID   string             `json:"clientId,omitempty"`
}

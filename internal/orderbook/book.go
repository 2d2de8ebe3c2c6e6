// Package orderbook folds successive orderbook delta events into a
// maintained bid/ask ladder. It only consumes events emitted by the
// streaming session and holds no reference back into it.
package orderbook

import (
	"hash/crc32"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"ftxgo/internal/domain/entities"
)

const checksumDepth = 100

// Book is one market's price ladder. It is a plain stateless fold over
// deltas: not safe for concurrent use, no locking.
type Book struct {
	symbol string
	bids   []entities.PriceLevel // price descending
	asks   []entities.PriceLevel // price ascending
}

func New(symbol string) *Book {
	return &Book{symbol: symbol}
}

func (b *Book) Symbol() string { return b.symbol }

// Apply folds one delta into the ladder. A partial replaces the whole book;
// an update upserts each level, with size zero removing the level.
func (b *Book) Apply(delta *entities.OrderbookDelta) error {
	if err := delta.Validate(); err != nil {
		return err
	}

	if delta.Action == entities.ActionPartial {
		b.bids = b.bids[:0]
		b.asks = b.asks[:0]
	}

	for _, level := range delta.Bids {
		b.bids = upsert(b.bids, level, true)
	}
	for _, level := range delta.Asks {
		b.asks = upsert(b.asks, level, false)
	}
	return nil
}

func (b *Book) BestBid() (entities.PriceLevel, bool) {
	if len(b.bids) == 0 {
		return entities.PriceLevel{}, false
	}
	return b.bids[0], true
}

func (b *Book) BestAsk() (entities.PriceLevel, bool) {
	if len(b.asks) == 0 {
		return entities.PriceLevel{}, false
	}
	return b.asks[0], true
}

// Spread returns best ask minus best bid, or false when either side is empty.
func (b *Book) Spread() (decimal.Decimal, bool) {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	if !okBid || !okAsk {
		return decimal.Decimal{}, false
	}
	return ask.Price.Sub(bid.Price), true
}

// Bids returns a copy of the bid ladder, best first.
func (b *Book) Bids() []entities.PriceLevel {
	out := make([]entities.PriceLevel, len(b.bids))
	copy(out, b.bids)
	return out
}

// Asks returns a copy of the ask ladder, best first.
func (b *Book) Asks() []entities.PriceLevel {
	out := make([]entities.PriceLevel, len(b.asks))
	copy(out, b.asks)
	return out
}

// Checksum computes the crc32 the exchange expects: the first hundred bid
// and ask levels interleaved as "bidPrice:bidSize:askPrice:askSize:..."
// with shorter sides simply contributing fewer fields.
func (b *Book) Checksum() uint32 {
	var sb strings.Builder
	for i := 0; i < checksumDepth; i++ {
		if i < len(b.bids) {
			sb.WriteString(b.bids[i].Price.String())
			sb.WriteByte(':')
			sb.WriteString(b.bids[i].Size.String())
			sb.WriteByte(':')
		}
		if i < len(b.asks) {
			sb.WriteString(b.asks[i].Price.String())
			sb.WriteByte(':')
			sb.WriteString(b.asks[i].Size.String())
			sb.WriteByte(':')
		}
	}
	s := sb.String()
	s = strings.TrimSuffix(s, ":")
	return crc32.ChecksumIEEE([]byte(s))
}

// Verify reports whether the ladder matches the checksum carried by the
// latest delta.
func (b *Book) Verify(checksum uint32) bool {
	return b.Checksum() == checksum
}

// upsert inserts, replaces or removes one level, keeping the slice sorted.
// Bids sort descending, asks ascending.
func upsert(levels []entities.PriceLevel, level entities.PriceLevel, descending bool) []entities.PriceLevel {
	i := sort.Search(len(levels), func(i int) bool {
		if descending {
			return levels[i].Price.LessThanOrEqual(level.Price)
		}
		return levels[i].Price.GreaterThanOrEqual(level.Price)
	})

	exists := i < len(levels) && levels[i].Price.Equal(level.Price)

	if level.Size.Sign() == 0 {
		if exists {
			return append(levels[:i], levels[i+1:]...)
		}
		return levels
	}

	if exists {
		levels[i] = level
		return levels
	}

	levels = append(levels, entities.PriceLevel{})
	copy(levels[i+1:], levels[i:])
	levels[i] = level
	return levels
}

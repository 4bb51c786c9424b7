package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PriceReading normalized price of one collateral asset
type PriceReading struct {
	AssetID string          `json:"asset_id"`
	Price   decimal.Decimal `json:"price"`
	AsOf    time.Time       `json:"as_of"`
}

// PriceFeed external oracle collaborator. LatestPrice returns the feed-native
// integer-scaled price and the time of the reading; it never checks
// staleness itself.
type PriceFeed interface {
	LatestPrice(ctx context.Context, feedID string) (decimal.Decimal, time.Time, error)
}

// IPriceOracleService normalized price reads over the registered feeds.
// Price rejects stale readings; UncheckedPrice is the non-strict variant.
// Neither caches: every call re-queries the upstream feed.
type IPriceOracleService interface {
	Price(ctx context.Context, assetID string) (*PriceReading, error)
	UncheckedPrice(ctx context.Context, assetID string) (*PriceReading, error)
}

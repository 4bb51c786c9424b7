// Package views response shapes of the rest api.
package views

import (
	"time"

	"anchor/core"

	"github.com/shopspring/decimal"
)

// Collateral one deposited balance with its valuation
type Collateral struct {
	AssetID  string          `json:"asset_id"`
	Symbol   string          `json:"symbol"`
	Amount   decimal.Decimal `json:"amount"`
	PriceUsd decimal.Decimal `json:"price_usd"`
	ValueUsd decimal.Decimal `json:"value_usd"`
}

// Account vault summary with its collateral breakdown
type Account struct {
	core.AccountInfo
	Collaterals []Collateral `json:"collaterals"`
}

// Asset registered asset with its latest reading
type Asset struct {
	AssetID     string          `json:"asset_id"`
	Symbol      string          `json:"symbol"`
	PriceFeedID string          `json:"price_feed_id"`
	PriceUsd    decimal.Decimal `json:"price_usd,omitempty"`
	PriceAt     *time.Time      `json:"price_at,omitempty"`
}

// Stats ledger-wide aggregates
type Stats struct {
	TotalDebt   decimal.Decimal            `json:"total_debt"`
	Collaterals map[string]decimal.Decimal `json:"collaterals"`
}

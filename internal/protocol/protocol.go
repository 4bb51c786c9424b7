package protocol

import (
	"time"

	"anchor/pkg/number"

	"github.com/shopspring/decimal"
)

const (
	// MaxPrecision working precision for all ratios and values
	MaxPrecision = 16
	// FeedPrecision decimal precision of feed-native integer prices
	FeedPrecision = 8
	// OracleStaleTimeout max age of a price reading
	OracleStaleTimeout = 3 * time.Hour
)

var (
	// LiquidationThreshold share of raw collateral value counted toward
	// solvency; 0.5 means 200% overcollateralization is required
	LiquidationThreshold = decimal.New(5, -1)
	// LiquidationBonus extra share of seized collateral awarded to the
	// liquidator
	LiquidationBonus = decimal.New(1, -1)
	// MinHealthFactor vaults at or above it are solvent
	MinHealthFactor = decimal.New(1, 0)
	// MaxHealthFactor sentinel health factor for vaults with zero debt.
	// The raw formula divides by debt and would fault at zero; returning an
	// explicit ceiling is a deliberate deviation, not an approximation.
	MaxHealthFactor = decimal.New(1, 32)
)

// RiskAdjustedValue collateral value counted toward solvency, floored in the
// protocol's favor
func RiskAdjustedValue(collateralValue decimal.Decimal) decimal.Decimal {
	return collateralValue.Mul(LiquidationThreshold).Truncate(MaxPrecision)
}

// HealthFactor risk-adjusted collateral value over debt. Zero-debt vaults
// get MaxHealthFactor.
func HealthFactor(collateralValue, debt decimal.Decimal) decimal.Decimal {
	if !debt.IsPositive() {
		return MaxHealthFactor
	}

	return number.DivFloor(RiskAdjustedValue(collateralValue), debt, MaxPrecision)
}

// IsHealthy whether a health factor clears the minimum
func IsHealthy(healthFactor decimal.Decimal) bool {
	return healthFactor.GreaterThanOrEqual(MinHealthFactor)
}

// UsdValue value of an asset amount at the given price
func UsdValue(amount, price decimal.Decimal) decimal.Decimal {
	return amount.Mul(price).Truncate(MaxPrecision)
}

// TokenAmount inverse of UsdValue under the same price, up to floor rounding
func TokenAmount(usdValue, price decimal.Decimal) decimal.Decimal {
	return number.DivFloor(usdValue, price, MaxPrecision)
}

// SeizeAmount collateral seized for a converted debt amount, bonus included
func SeizeAmount(tokenAmount decimal.Decimal) decimal.Decimal {
	return tokenAmount.Add(tokenAmount.Mul(LiquidationBonus)).Truncate(MaxPrecision)
}

// NormalizeFeedPrice shift a feed-native integer price onto the working scale
func NormalizeFeedPrice(raw decimal.Decimal) decimal.Decimal {
	return raw.Shift(-FeedPrecision)
}

// IsStale whether a reading of age asOf has outlived the staleness timeout
func IsStale(asOf, now time.Time) bool {
	return now.Sub(asOf) > OracleStaleTimeout
}

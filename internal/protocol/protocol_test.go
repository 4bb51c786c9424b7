package protocol

import (
	"testing"
	"time"

	"anchor/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthFactor(t *testing.T) {
	// 10 units priced at $2000 with 5000 minted: (20000 * 0.5) / 5000 = 2.0
	value := number.Decimal("20000")
	hf := HealthFactor(value, number.Decimal("5000"))
	assert.True(t, hf.Equal(number.Decimal("2")), "health factor should be 2.0, got %s", hf)
	assert.True(t, IsHealthy(hf))

	// debt of 20001 against 20000 collateral breaks the minimum
	hf = HealthFactor(value, number.Decimal("20001"))
	assert.True(t, hf.LessThan(MinHealthFactor), "health factor %s should be below minimum", hf)

	// exactly at the boundary stays solvent
	hf = HealthFactor(value, number.Decimal("10000"))
	assert.True(t, hf.Equal(MinHealthFactor))
	assert.True(t, IsHealthy(hf))
}

func TestHealthFactorAfterPriceDrop(t *testing.T) {
	// same vault after the price falls to $800: (8000 * 0.5) / 5000 = 0.8
	hf := HealthFactor(number.Decimal("8000"), number.Decimal("5000"))
	assert.True(t, hf.Equal(number.Decimal("0.8")), "health factor should be 0.8, got %s", hf)
	assert.False(t, IsHealthy(hf))
}

func TestHealthFactorZeroDebt(t *testing.T) {
	hf := HealthFactor(number.Decimal("20000"), decimal.Zero)
	assert.True(t, hf.Equal(MaxHealthFactor))
	assert.True(t, IsHealthy(hf))

	hf = HealthFactor(decimal.Zero, decimal.Zero)
	assert.True(t, hf.Equal(MaxHealthFactor))
}

func TestHealthFactorFloorsTowardProtocol(t *testing.T) {
	// 1/3 style quotient must truncate, never round up
	hf := HealthFactor(number.Decimal("2"), number.Decimal("3"))
	expected := number.Decimal("0.3333333333333333")
	assert.True(t, hf.Equal(expected), "got %s", hf)
}

func TestUsdValueTokenAmountInverse(t *testing.T) {
	price := number.Decimal("2000")

	for _, raw := range []string{"10", "0.5", "123.456789", "0.0000000000000001"} {
		amount := number.Decimal(raw)
		value := UsdValue(amount, price)
		back := TokenAmount(value, price)

		diff := amount.Sub(back).Abs()
		limit := decimal.New(1, -MaxPrecision)
		require.True(t, diff.LessThanOrEqual(limit),
			"round trip of %s drifted by %s", raw, diff)
	}
}

func TestTokenAmountFloors(t *testing.T) {
	// $100 at price 3 is 33.33... tokens, floored at working precision
	got := TokenAmount(number.Decimal("100"), number.Decimal("3"))
	expected := number.Decimal("33.3333333333333333")
	assert.True(t, got.Equal(expected), "got %s", got)
}

func TestSeizeAmount(t *testing.T) {
	// covering 1000 debt at $800: 1.25 tokens plus the 10% bonus
	tokens := TokenAmount(number.Decimal("1000"), number.Decimal("800"))
	assert.True(t, tokens.Equal(number.Decimal("1.25")))

	seize := SeizeAmount(tokens)
	assert.True(t, seize.Equal(number.Decimal("1.375")), "got %s", seize)
}

func TestNormalizeFeedPrice(t *testing.T) {
	// 2000 USD quoted by an 8-decimal feed
	got := NormalizeFeedPrice(number.Decimal("200000000000"))
	assert.True(t, got.Equal(number.Decimal("2000")))
}

func TestIsStale(t *testing.T) {
	now := time.Now()
	assert.False(t, IsStale(now.Add(-time.Hour), now))
	assert.False(t, IsStale(now.Add(-OracleStaleTimeout), now))
	assert.True(t, IsStale(now.Add(-OracleStaleTimeout-time.Second), now))
}

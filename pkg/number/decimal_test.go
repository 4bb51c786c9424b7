package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestDivFloor(t *testing.T) {
	data := map[string]string{
		"100":  "33.33",
		"10":   "3.33",
		"0.02": "0.00",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := DivFloor(Decimal(k), Decimal("3"), 2)
			assert.Equal(t, v, c.StringFixed(2), "should floor")
		})
	}
}

func TestDivFloorNeverRoundsUp(t *testing.T) {
	data := map[string]string{
		"4000.0000000000000001": "0.9999999999999999",
		"4000":                  "1",
		"3999.9999999999999999": "1",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := DivFloor(Decimal("4000"), Decimal(k), 16)
			assert.Equal(t, v, c.String(), "quotient must floor at the boundary")
		})
	}
}

func TestCeil(t *testing.T) {
	data := map[string]string{
		"0.10304":     "0.11",
		"0.100000001": "0.11",
		"0.108":       "0.11",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := Ceil(Decimal(k), 2)
			assert.Equal(t, v, c.String(), "should be ceil")
		})
	}
}

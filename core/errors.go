package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrInvalidAmount zero or malformed quantity
	ErrInvalidAmount ErrorCode = 100101
	// ErrUnsupportedAsset asset not registered
	ErrUnsupportedAsset ErrorCode = 100102
	// ErrInsufficientCollateral collateral balance would go negative
	ErrInsufficientCollateral ErrorCode = 100103
	// ErrInsufficientDebt debt balance would go negative
	ErrInsufficientDebt ErrorCode = 100104
	// ErrHealthFactorTooLow post-mutation solvency check failed
	ErrHealthFactorTooLow ErrorCode = 100105
	// ErrTransferFailed custody or issuance call reported failure
	ErrTransferFailed ErrorCode = 100106
	// ErrMintFailed issuance authority mint reported failure
	ErrMintFailed ErrorCode = 100107
	// ErrLiquidationNotEligible target vault already healthy
	ErrLiquidationNotEligible ErrorCode = 100108
	// ErrLiquidationNotImproved liquidation did not strictly raise health
	ErrLiquidationNotImproved ErrorCode = 100109
	// ErrStaleOracleData price reading older than the staleness timeout
	ErrStaleOracleData ErrorCode = 100110
	// ErrReentrantCall nested entry into a mutating operation
	ErrReentrantCall ErrorCode = 100111
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

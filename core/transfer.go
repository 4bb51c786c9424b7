package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// ICustodyService external custody of collateral assets. Failures come back
// as errors, never as silent no-ops.
type ICustodyService interface {
	TransferIn(ctx context.Context, fromUserID, assetID string, amount decimal.Decimal) error
	TransferOut(ctx context.Context, toUserID, assetID string, amount decimal.Decimal) error
}

// IIssuerService synthetic-asset issuance authority. Supply bookkeeping is
// the issuer's own; the engine only asks it to mint or to pull and retire.
type IIssuerService interface {
	Mint(ctx context.Context, toUserID string, amount decimal.Decimal) error
	// Burn pulls the amount from fromUserID and retires it
	Burn(ctx context.Context, fromUserID string, amount decimal.Decimal) error
}

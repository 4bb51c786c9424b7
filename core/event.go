package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

const (
	// EventTypeDeposit collateral deposited
	EventTypeDeposit = "deposit"
	// EventTypeRedeem collateral redeemed or seized
	EventTypeRedeem = "redeem"
)

// Event ledger notification. Created inside the same db tx as the ledger
// mutation it describes, before the external call, so the event log and the
// ledger commit or roll back together.
type Event struct {
	ID         uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID    string          `sql:"size:36;unique_index:event_trace_idx" json:"trace_id"`
	Type       string          `sql:"size:24;index:event_type_idx" json:"type"`
	UserID     string          `sql:"size:36;index:event_user_idx" json:"user_id"`
	OpponentID string          `sql:"size:36" json:"opponent_id,omitempty"`
	AssetID    string          `sql:"size:36" json:"asset_id"`
	Amount     decimal.Decimal `sql:"type:decimal(32,16)" json:"amount"`
	Content    types.JSONText  `sql:"type:varchar(1024)" json:"content,omitempty"`
	CreatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// IEventStore event store interface
type IEventStore interface {
	Create(ctx context.Context, tx *db.DB, event *Event) error
	List(ctx context.Context, fromID uint64, limit int) ([]*Event, error)
	FindByUser(ctx context.Context, userID string, limit int) ([]*Event, error)
}

// INotifier emits ledger notifications, ordered and synchronous
type INotifier interface {
	DepositCreated(ctx context.Context, tx *db.DB, userID, assetID string, amount decimal.Decimal) error
	CollateralRedeemed(ctx context.Context, tx *db.DB, fromUserID, toUserID, assetID string, amount decimal.Decimal) error
}

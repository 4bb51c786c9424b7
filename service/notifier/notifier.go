package notifier

import (
	"context"
	"encoding/json"

	"anchor/core"
	"anchor/pkg/id"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

type notifier struct {
	eventStore core.IEventStore
}

// New new notifier backed by the event store. Events ride the same db tx as
// the ledger writes they describe.
func New(eventStore core.IEventStore) core.INotifier {
	return &notifier{eventStore: eventStore}
}

func (n *notifier) DepositCreated(ctx context.Context, tx *db.DB, userID, assetID string, amount decimal.Decimal) error {
	content, _ := json.Marshal(map[string]interface{}{
		"user_id":  userID,
		"asset_id": assetID,
		"amount":   amount,
	})

	return n.eventStore.Create(ctx, tx, &core.Event{
		TraceID: id.GenTraceID(),
		Type:    core.EventTypeDeposit,
		UserID:  userID,
		AssetID: assetID,
		Amount:  amount,
		Content: content,
	})
}

func (n *notifier) CollateralRedeemed(ctx context.Context, tx *db.DB, fromUserID, toUserID, assetID string, amount decimal.Decimal) error {
	content, _ := json.Marshal(map[string]interface{}{
		"from_user_id": fromUserID,
		"to_user_id":   toUserID,
		"asset_id":     assetID,
		"amount":       amount,
	})

	return n.eventStore.Create(ctx, tx, &core.Event{
		TraceID:    id.GenTraceID(),
		Type:       core.EventTypeRedeem,
		UserID:     fromUserID,
		OpponentID: toUserID,
		AssetID:    assetID,
		Amount:     amount,
		Content:    content,
	})
}

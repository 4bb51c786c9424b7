package custody

import (
	"context"
	"fmt"

	"anchor/core"
	"anchor/pkg/resthttp"

	"github.com/shopspring/decimal"
)

type custodyService struct {
	endpoint string
}

// New custody client over the custodian's http gateway
func New(endpoint string) core.ICustodyService {
	return &custodyService{endpoint: endpoint}
}

func (s *custodyService) TransferIn(ctx context.Context, fromUserID, assetID string, amount decimal.Decimal) error {
	return s.transfer(ctx, "transfer_in", fromUserID, assetID, amount)
}

func (s *custodyService) TransferOut(ctx context.Context, toUserID, assetID string, amount decimal.Decimal) error {
	return s.transfer(ctx, "transfer_out", toUserID, assetID, amount)
}

func (s *custodyService) transfer(ctx context.Context, action, userID, assetID string, amount decimal.Decimal) error {
	url := fmt.Sprintf("%s/transfers", s.endpoint)
	resp, err := resthttp.Request(ctx).SetBody(map[string]interface{}{
		"action":   action,
		"user_id":  userID,
		"asset_id": assetID,
		"amount":   amount,
	}).Post(url)
	if err != nil {
		return err
	}

	return resthttp.ParseResponse(resp, nil)
}

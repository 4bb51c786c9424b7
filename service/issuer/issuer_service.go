package issuer

import (
	"context"
	"fmt"

	"anchor/core"
	"anchor/pkg/resthttp"

	"github.com/shopspring/decimal"
)

type issuerService struct {
	endpoint string
}

// New issuance client over the issuer's http gateway
func New(endpoint string) core.IIssuerService {
	return &issuerService{endpoint: endpoint}
}

func (s *issuerService) Mint(ctx context.Context, toUserID string, amount decimal.Decimal) error {
	url := fmt.Sprintf("%s/mints", s.endpoint)
	resp, err := resthttp.Request(ctx).SetBody(map[string]interface{}{
		"user_id": toUserID,
		"amount":  amount,
	}).Post(url)
	if err != nil {
		return err
	}

	return resthttp.ParseResponse(resp, nil)
}

func (s *issuerService) Burn(ctx context.Context, fromUserID string, amount decimal.Decimal) error {
	url := fmt.Sprintf("%s/burns", s.endpoint)
	resp, err := resthttp.Request(ctx).SetBody(map[string]interface{}{
		"user_id": fromUserID,
		"amount":  amount,
	}).Post(url)
	if err != nil {
		return err
	}

	return resthttp.ParseResponse(resp, nil)
}

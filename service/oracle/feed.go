package oracle

import (
	"context"
	"fmt"
	"time"

	"anchor/core"
	"anchor/pkg/resthttp"

	"github.com/shopspring/decimal"
)

type feedClient struct {
	endpoint string
}

// NewFeed price feed over the oracle network's http gateway
func NewFeed(endpoint string) core.PriceFeed {
	return &feedClient{endpoint: endpoint}
}

func (c *feedClient) LatestPrice(ctx context.Context, feedID string) (decimal.Decimal, time.Time, error) {
	url := fmt.Sprintf("%s/feeds/%s/latest", c.endpoint, feedID)
	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}

	var body struct {
		Price     decimal.Decimal `json:"price"`
		UpdatedAt int64           `json:"updated_at"`
	}
	if err := resthttp.ParseResponse(resp, &body); err != nil {
		return decimal.Zero, time.Time{}, err
	}

	return body.Price, time.Unix(body.UpdatedAt, 0), nil
}

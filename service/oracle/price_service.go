package oracle

import (
	"context"
	"fmt"
	"time"

	"anchor/core"
	"anchor/internal/protocol"

	"github.com/fox-one/pkg/logger"
)

type priceOracleService struct {
	registry *core.AssetRegistry
	feed     core.PriceFeed
}

// New new price oracle service
func New(registry *core.AssetRegistry, feed core.PriceFeed) core.IPriceOracleService {
	return &priceOracleService{
		registry: registry,
		feed:     feed,
	}
}

func (s *priceOracleService) Price(ctx context.Context, assetID string) (*core.PriceReading, error) {
	reading, err := s.UncheckedPrice(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if protocol.IsStale(reading.AsOf, time.Now()) {
		logger.FromContext(ctx).WithField("asset", assetID).
			Warnln("stale price reading from", reading.AsOf)
		return nil, fmt.Errorf("reading of %s from %s: %w", assetID, reading.AsOf, core.ErrStaleOracleData)
	}

	return reading, nil
}

func (s *priceOracleService) UncheckedPrice(ctx context.Context, assetID string) (*core.PriceReading, error) {
	asset, ok := s.registry.Find(assetID)
	if !ok {
		return nil, fmt.Errorf("asset %s: %w", assetID, core.ErrUnsupportedAsset)
	}

	raw, asOf, err := s.feed.LatestPrice(ctx, asset.PriceFeedID)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", asset.PriceFeedID, err)
	}

	if !raw.IsPositive() {
		return nil, fmt.Errorf("feed %s returned price %s", asset.PriceFeedID, raw)
	}

	return &core.PriceReading{
		AssetID: assetID,
		Price:   protocol.NormalizeFeedPrice(raw),
		AsOf:    asOf,
	}, nil
}

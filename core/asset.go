package core

import (
	"fmt"
)

// CollateralAsset collateral asset config, immutable after construction
type CollateralAsset struct {
	AssetID     string `json:"asset_id" valid:"uuid,required"`
	Symbol      string `json:"symbol" valid:"required"`
	PriceFeedID string `json:"price_feed_id" valid:"-"`
}

// AssetRegistry ordered set of registered collateral assets and their price
// feeds. Built once at startup and never mutated afterwards; iteration over
// All is stable so aggregate valuation stays deterministic.
type AssetRegistry struct {
	assets []*CollateralAsset
	index  map[string]*CollateralAsset
}

// NewAssetRegistry build registry from parallel asset / feed lists
func NewAssetRegistry(assets []*CollateralAsset, feedIDs []string) (*AssetRegistry, error) {
	if len(assets) != len(feedIDs) {
		return nil, fmt.Errorf("%d assets with %d price feeds: %w", len(assets), len(feedIDs), ErrUnsupportedAsset)
	}

	r := &AssetRegistry{
		assets: make([]*CollateralAsset, 0, len(assets)),
		index:  make(map[string]*CollateralAsset, len(assets)),
	}

	for idx, a := range assets {
		if _, ok := r.index[a.AssetID]; ok {
			return nil, fmt.Errorf("duplicated asset %s: %w", a.AssetID, ErrUnsupportedAsset)
		}

		asset := &CollateralAsset{
			AssetID:     a.AssetID,
			Symbol:      a.Symbol,
			PriceFeedID: feedIDs[idx],
		}
		r.assets = append(r.assets, asset)
		r.index[asset.AssetID] = asset
	}

	return r, nil
}

// Find find registered asset by asset id
func (r *AssetRegistry) Find(assetID string) (*CollateralAsset, bool) {
	asset, ok := r.index[assetID]
	return asset, ok
}

// All registered assets in registration order
func (r *AssetRegistry) All() []*CollateralAsset {
	return r.assets
}

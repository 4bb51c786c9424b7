package core

import (
	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/store/db"
)

// Config anchor config
type Config struct {
	App         App                `json:"app"`
	DB          db.Config          `json:"db"`
	Oracle      Oracle             `json:"oracle"`
	Custody     Remote             `json:"custody"`
	Issuer      Remote             `json:"issuer"`
	Collaterals []*CollateralAsset `json:"collaterals"`
	PriceFeeds  []string           `json:"price_feeds"`
}

// App app config
type App struct {
	Location string `json:"location"`
}

// Oracle price oracle config
type Oracle struct {
	EndPoint string `json:"end_point" valid:"url,required"`
}

// Remote http collaborator endpoint
type Remote struct {
	EndPoint string `json:"end_point" valid:"url,required"`
}

// Validate validate config
func (c *Config) Validate() error {
	_, err := govalidator.ValidateStruct(c)
	return err
}

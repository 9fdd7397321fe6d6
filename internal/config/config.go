package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Database DatabaseConf `json:",optional"`
}

// DatabaseConf names the backing store. The DSN shape picks the driver,
// see internal/db.Open.
type DatabaseConf struct {
	DataSource string `json:",default=file:data/catalog.db?_pragma=foreign_keys(1)"`
}

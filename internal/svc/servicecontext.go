package svc

import (
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"

	"github.com/ludotrove/catalog/internal/config"
	"github.com/ludotrove/catalog/internal/db"
	cataloggorm "github.com/ludotrove/catalog/internal/repo/gorm/catalog"
	"github.com/ludotrove/catalog/internal/service/catalog"
)

type ServiceContext struct {
	Config  config.Config
	DB      *gorm.DB
	Catalog *catalog.Service
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.Info("Initializing catalog service context")

	gdb, err := db.Open(c.Database.DataSource)
	logx.Must(err)
	logx.Must(cataloggorm.AutoMigrate(gdb))

	return &ServiceContext{
		Config:  c,
		DB:      gdb,
		Catalog: catalog.NewService(cataloggorm.NewUnitOfWork(gdb)),
	}
}

package main

import (
	"flag"
	"fmt"

	"github.com/ludotrove/catalog/internal/config"
	"github.com/ludotrove/catalog/internal/handler"
	"github.com/ludotrove/catalog/internal/middleware"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/catalog.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	server.Use(middleware.NewRequestIDMiddleware().Handle)

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting catalog server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

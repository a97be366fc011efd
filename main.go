package main

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eins/config"
	"github.com/ratel-online/eins/database"
	"github.com/ratel-online/eins/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	database.StartJanitor(cfg.SweepInterval, cfg.SessionTTL)
	var server network.Network = network.NewHttpServer(cfg.Addr)
	log.Error(server.Serve())
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/mwalczyk/redcache/cache"
	"github.com/mwalczyk/redcache/config"
	"github.com/mwalczyk/redcache/store"
	"go.uber.org/zap"
)

var fAddr = flag.String("addr", "", "Store address, overrides REDCACHE_ADDR.")
var fBackend = flag.String("backend", "", "Store backend (redis|badger), overrides REDCACHE_BACKEND.")
var fPath = flag.String("path", "", "Badger directory, overrides REDCACHE_PATH.")
var fKeep = flag.Bool("keep", false, "Do not flush the store namespace on connect.")
var fDev = flag.Bool("dev", false, "Run in development mode")

func main() {
	flag.Parse()
	logger, err := zap.NewProduction()
	if *fDev {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	sugarlog := logger.Sugar()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *fAddr != "" {
		cfg.Addr = *fAddr
	}
	if *fBackend != "" {
		cfg.Backend = *fBackend
	}
	if *fPath != "" {
		cfg.Path = *fPath
	}
	if *fKeep {
		cfg.FlushOnConnect = false
	}

	ctx := context.Background()
	st, err := store.Open(cfg, sugarlog)
	if err != nil {
		log.Fatalf("Store: %v", err)
	}
	c, err := cache.New(ctx, cfg, st, sugarlog)
	if err != nil {
		log.Fatalf("Cache: %v", err)
	}
	defer c.Close()

	key, err := c.Store(ctx, "foo")
	if err != nil {
		log.Fatalf("Store value: %v", err)
	}
	text, _, err := c.RetrieveString(ctx, key)
	if err != nil {
		log.Fatalf("Retrieve: %v", err)
	}
	sugarlog.Infof("stored %q under %s", text, key)

	key, err = c.Store(ctx, 42)
	if err != nil {
		log.Fatalf("Store value: %v", err)
	}
	n, _, err := c.RetrieveInt(ctx, key)
	if err != nil {
		log.Fatalf("Retrieve: %v", err)
	}
	sugarlog.Infof("stored %d under %s", n, key)

	calls, err := c.History().Replay(ctx)
	if err != nil {
		log.Fatalf("Replay: %v", err)
	}
	sugarlog.Infof("%s was called %d times:", cache.OpName, len(calls))
	for _, call := range calls {
		sugarlog.Infof("%s%s -> %s", cache.OpName, call.Input, call.Output)
	}
}

package main

import (
	"fmt"

	"github.com/Churchillk/WealthTracker/internal/config"
	"github.com/Churchillk/WealthTracker/internal/database"
	"github.com/Churchillk/WealthTracker/internal/router"
	"github.com/Churchillk/WealthTracker/internal/storage"
	"github.com/Churchillk/WealthTracker/internal/util"

	"github.com/joho/godotenv"
)

func main() {
	// .env feeds the WT_* overrides viper picks up
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		util.Logger.Fatalf("load config: %v", err)
	}

	util.InitLogger(cfg.Log.Level, cfg.Log.Format)

	db, err := database.Init(cfg.Database)
	if err != nil {
		util.Logger.Fatalf("init database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		util.Logger.Fatalf("migrate database: %v", err)
	}

	store, err := storage.New(cfg.Upload.Dir)
	if err != nil {
		util.Logger.Fatalf("init upload store: %v", err)
	}

	r := router.SetupRouter(cfg, db, store)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	util.Logger.Infof("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		util.Logger.Fatalf("run server: %v", err)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodbridge-backend/cmd/config"
	migration "foodbridge-backend/cmd/database/migrate"
	"foodbridge-backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	infra, closeInfra := config.NewInfrastructure(ctx)
	app, err := config.NewApp(db, infra)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	go func() {
		if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Errorf("shutdown: %v", err)
	}
	closeInfra()
	cancel()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

package main

import (
	"github.com/sneaker-store/internal/config"
	"github.com/sneaker-store/internal/logger"
	"github.com/sneaker-store/internal/models"
	"github.com/sneaker-store/internal/repository"
	"github.com/sneaker-store/internal/seed"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	db, err := models.OpenDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, logger.NewGormLogger(cfg.Server.Mode))
	if err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	inserted, err := seed.Catalog(repository.NewProductRepository(db))
	if err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}
	if inserted == 0 {
		stdLog.Printf("Catalog already populated, nothing to seed")
		return
	}
	stdLog.Printf("Seeded %d sneakers", inserted)
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/sneaker-store/internal/app"
	"github.com/sneaker-store/internal/cache"
	"github.com/sneaker-store/internal/config"
	"github.com/sneaker-store/internal/logger"
	"github.com/sneaker-store/internal/models"
	"github.com/sneaker-store/internal/provider"
	"github.com/sneaker-store/internal/seed"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
	ansiGreen = "\033[32m"
)

const redisPingTimeout = 3 * time.Second

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.UserJWT.SecretKey) {
			stdLog.Fatalf("JWT secret 过弱或仍为默认值，请在生产环境中配置强随机密钥")
		}
	} else if isWeakSecret(cfg.UserJWT.SecretKey) {
		stdLog.Printf("警告: JWT secret 过弱或仍为默认值，建议在生产环境中更换")
	}

	// 初始化数据库
	db, err := models.OpenDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, logger.NewGormLogger(cfg.Server.Mode))
	if err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	// 自动迁移数据库表
	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化默认管理员账号
	adminPassword := strings.TrimSpace(cfg.Bootstrap.AdminPassword)
	if cfg.Server.Mode == "release" && adminPassword == "" {
		stdLog.Printf("警告: 未设置 bootstrap.admin_password，已跳过默认管理员初始化")
	} else if err := models.InitDefaultAdmin(db, cfg.Bootstrap.AdminEmail, adminPassword, cfg.Security.BcryptCost); err != nil {
		stdLog.Printf("警告: 初始化默认管理员失败: %v", err)
	}

	container := provider.NewContainer(cfg, db, cache.New(&cfg.Redis))
	defer func() {
		_ = container.Cache.Close()
	}()

	if cfg.Bootstrap.SeedCatalog {
		if inserted, err := seed.Catalog(container.ProductRepo); err != nil {
			logger.Warnw("catalog_seed_failed", "error", err)
		} else if inserted > 0 {
			logger.Infow("catalog_seeded", "count", inserted)
		}
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	if err := container.Cache.Ping(pingCtx); err != nil {
		logger.Warnw("redis_ping_failed", "error", err)
	}
	cancel()

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:    cfg,
		Container: container,
		Logger:    logger.S(),
		Signals:   []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "╔══════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiCyan + "║            Sneaker Store API 启动中            ║" + ansiReset)
	fmt.Println(ansiCyan + "╚══════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Endpoints: /auth  /catalog  /basket  /health" + ansiReset)
	fmt.Println(ansiDim + "----------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}

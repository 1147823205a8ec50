package app

import (
	"errors"

	"github.com/sneaker-store/internal/config"
	"github.com/sneaker-store/internal/provider"
	"github.com/sneaker-store/internal/router"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, container *provider.Container) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if container == nil {
		return nil, errors.New("container is nil")
	}

	engine := router.SetupRouter(cfg, container)
	httpService := NewHTTPService(cfg.Server, engine)

	return NewRunner(httpService), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Container)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", listenAddr(opts.Config), "mode", opts.Config.Server.Mode)
	return RunWithOptions(runner, opts)
}

func listenAddr(cfg *config.Config) string {
	return cfg.Server.Host + ":" + cfg.Server.Port
}

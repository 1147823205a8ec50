package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sneaker-store/internal/config"
)

const readHeaderTimeout = 10 * time.Second

// HTTPService 对外 API 服务
type HTTPService struct {
	name   string
	server *http.Server
}

// NewHTTPService 按 server 配置创建 HTTP 服务，超时未配置时不限制
func NewHTTPService(cfg config.ServerConfig, handler http.Handler) *HTTPService {
	return &HTTPService{
		name: "api",
		server: &http.Server{
			Addr:              cfg.Host + ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       secondsOrZero(cfg.ReadTimeoutSeconds),
			WriteTimeout:      secondsOrZero(cfg.WriteTimeoutSeconds),
			IdleTimeout:       secondsOrZero(cfg.IdleTimeoutSeconds),
		},
	}
}

func secondsOrZero(seconds int) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// Name 服务名称
func (s *HTTPService) Name() string {
	if s == nil || s.name == "" {
		return "api"
	}
	return s.name
}

// Start 阻塞监听，Shutdown 触发的 ErrServerClosed 视为正常退出
func (s *HTTPService) Start(_ context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("api server not initialized")
	}
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop 停止接收新连接并等待进行中的请求完成
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

package provider

import (
	"github.com/sneaker-store/internal/cache"
	"github.com/sneaker-store/internal/config"
	"github.com/sneaker-store/internal/repository"
	"github.com/sneaker-store/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  *cache.Cache

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	BasketRepo  repository.BasketRepository

	// Services
	UserAuthService *service.UserAuthService
	CatalogService  *service.CatalogService
	BasketService   *service.BasketService
}

// NewContainer 初始化容器，数据库与缓存由调用方创建并负责关闭
func NewContainer(cfg *config.Config, db *gorm.DB, appCache *cache.Cache) *Container {
	if appCache == nil {
		appCache = cache.New(nil)
	}
	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  appCache,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.UserRepo = repository.NewUserRepository(c.DB)
	c.ProductRepo = repository.NewProductRepository(c.DB)
	c.BasketRepo = repository.NewBasketRepository(c.DB)
}

func (c *Container) initServices() {
	hasher := service.NewBcryptHasher(c.Config.Security.BcryptCost)
	issuer := service.NewJWTIssuer(c.Config.UserJWT.SecretKey, c.Config.UserJWT.ExpireHours)

	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, hasher, issuer, c.Cache)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.Cache)
	c.BasketService = service.NewBasketService(c.BasketRepo, c.ProductRepo)
}

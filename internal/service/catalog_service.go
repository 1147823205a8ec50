package service

import (
	"context"

	"github.com/sneaker-store/internal/cache"
	"github.com/sneaker-store/internal/logger"
	"github.com/sneaker-store/internal/models"
	"github.com/sneaker-store/internal/repository"
)

// ProductCache 商品详情缓存
type ProductCache interface {
	GetProduct(ctx context.Context, productID uint) (*models.Product, bool, error)
	SetProduct(ctx context.Context, product *models.Product) error
}

// CatalogService 只读商品目录服务
type CatalogService struct {
	productRepo repository.ProductRepository
	cache       ProductCache
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository, productCache ProductCache) *CatalogService {
	if productCache == nil {
		productCache = cache.New(nil)
	}
	return &CatalogService{productRepo: productRepo, cache: productCache}
}

// ListProducts 全量商品列表
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.List()
}

// GetProduct 商品详情，不存在时返回 ErrProductNotFound
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	if product, hit, err := s.cache.GetProduct(ctx, id); err != nil {
		logger.Warnw("product_cache_get_failed", "product_id", id, "error", err)
	} else if hit {
		return product, nil
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.cache.SetProduct(ctx, product); err != nil {
		logger.Warnw("product_cache_set_failed", "product_id", id, "error", err)
	}
	return product, nil
}

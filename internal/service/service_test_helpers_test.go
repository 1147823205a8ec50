package service

import (
	"fmt"
	"testing"

	"github.com/sneaker-store/internal/cache"
	"github.com/sneaker-store/internal/config"
	"github.com/sneaker-store/internal/models"
	"github.com/sneaker-store/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type serviceFixture struct {
	db      *gorm.DB
	cfg     *config.Config
	auth    *UserAuthService
	catalog *CatalogService
	basket  *BasketService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{
		UserJWT: config.JWTConfig{SecretKey: "test-secret-key-with-enough-length", ExpireHours: 1},
	}
	disabledCache := cache.New(nil)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	basketRepo := repository.NewBasketRepository(db)

	return &serviceFixture{
		db:      db,
		cfg:     cfg,
		auth:    NewUserAuthService(cfg, userRepo, NewBcryptHasher(bcrypt.MinCost), NewJWTIssuer(cfg.UserJWT.SecretKey, cfg.UserJWT.ExpireHours), disabledCache),
		catalog: NewCatalogService(productRepo, disabledCache),
		basket:  NewBasketService(basketRepo, productRepo),
	}
}

func (f *serviceFixture) createProduct(t *testing.T, brand, model string, size float64) *models.Product {
	t.Helper()
	product := &models.Product{
		Brand:     brand,
		Model:     model,
		Size:      size,
		ColorName: "White",
		Price:     models.NewMoneyFromInt(9999),
		InStock:   true,
	}
	if err := f.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

package repository

import (
	"fmt"
	"testing"

	"github.com/sneaker-store/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func strPtr(v string) *string { return &v }

func seedProducts(t *testing.T, repo *GormProductRepository) []models.Product {
	t.Helper()
	products := []models.Product{
		{Brand: "Nike", Model: "Air Jordan 1 Retro High", Size: 42, ColorName: "Black/Red", Price: models.NewMoneyFromInt(18999), Category: strPtr("Basketball"), Gender: strPtr("Men"), InStock: true},
		{Brand: "Adidas", Model: "Stan Smith", Size: 37.5, ColorName: "White/Green", Price: models.NewMoneyFromInt(8999), Category: strPtr("Lifestyle"), Gender: strPtr("Women"), InStock: true},
		{Brand: "Nike", Model: "Dunk Low Retro", Size: 41, ColorName: "Panda", Price: models.NewMoneyFromInt(12999), Category: strPtr("Skateboarding"), Gender: strPtr("Unisex"), InStock: false},
	}
	if err := repo.CreateBatch(products); err != nil {
		t.Fatalf("create products failed: %v", err)
	}
	return products
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupRepositoryTestDB(t))
	if err := repo.Create(&models.User{Email: "a@b.c", PasswordHash: "h"}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := repo.Create(&models.User{Email: "a@b.c", PasswordHash: "h"}); err != ErrDuplicate {
		t.Fatalf("want ErrDuplicate got %v", err)
	}
	missing, err := repo.GetByEmail("nobody@b.c")
	if err != nil || missing != nil {
		t.Fatalf("missing user should be nil,nil got %v,%v", missing, err)
	}
}

func TestUserRepositoryUpdateProfile(t *testing.T) {
	repo := NewUserRepository(setupRepositoryTestDB(t))
	user := &models.User{Email: "a@b.c", PasswordHash: "h", Phone: strPtr("123")}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	updates := map[string]interface{}{"first_name": "Ann", "phone": nil}
	if err := repo.UpdateProfile(user.ID, updates); err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	loaded, err := repo.GetByID(user.ID)
	if err != nil || loaded == nil {
		t.Fatalf("load user failed: %v", err)
	}
	if loaded.FirstName == nil || *loaded.FirstName != "Ann" {
		t.Fatalf("first name not updated: %v", loaded.FirstName)
	}
	if loaded.Phone != nil {
		t.Fatalf("phone should be cleared, got %v", *loaded.Phone)
	}
}

func TestProductRepositoryListOrdersByID(t *testing.T) {
	repo := NewProductRepository(setupRepositoryTestDB(t))
	seedProducts(t, repo)

	all, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("want 3 products got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("products should be ordered by id asc")
		}
	}
}

func TestProductRepositoryListEmpty(t *testing.T) {
	repo := NewProductRepository(setupRepositoryTestDB(t))
	all, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("empty catalogue should be an empty non-nil slice, got %v", all)
	}
}

func TestProductRepositoryGetAndListByIDs(t *testing.T) {
	repo := NewProductRepository(setupRepositoryTestDB(t))
	products := seedProducts(t, repo)

	got, err := repo.GetByID(99999)
	if err != nil || got != nil {
		t.Fatalf("missing product should be nil,nil got %v,%v", got, err)
	}
	batch, err := repo.ListByIDs([]uint{products[0].ID, products[2].ID, 99999})
	if err != nil {
		t.Fatalf("list by ids failed: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("want 2 products got %d", len(batch))
	}
	count, err := repo.Count()
	if err != nil || count != 3 {
		t.Fatalf("want count 3 got %d (%v)", count, err)
	}
}

func TestBasketRepositoryAddQuantityMerges(t *testing.T) {
	repo := NewBasketRepository(setupRepositoryTestDB(t))

	if err := repo.AddQuantity(&models.BasketItem{UserID: 1, ProductID: 10, Size: 42, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := repo.AddQuantity(&models.BasketItem{UserID: 1, ProductID: 10, Size: 42, Quantity: 3}); err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if err := repo.AddQuantity(&models.BasketItem{UserID: 1, ProductID: 10, Size: 43, Quantity: 1}); err != nil {
		t.Fatalf("other size add failed: %v", err)
	}
	if err := repo.AddQuantity(&models.BasketItem{UserID: 2, ProductID: 10, Size: 42, Quantity: 1}); err != nil {
		t.Fatalf("other user add failed: %v", err)
	}

	items, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list basket failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 lines got %d", len(items))
	}
	if items[0].Size != 42 || items[0].Quantity != 5 {
		t.Fatalf("want merged quantity 5 for size 42 got %+v", items[0])
	}
	if items[1].Size != 43 || items[1].Quantity != 1 {
		t.Fatalf("unexpected second line %+v", items[1])
	}
}

func TestBasketRepositoryOwnership(t *testing.T) {
	repo := NewBasketRepository(setupRepositoryTestDB(t))
	item := &models.BasketItem{UserID: 1, ProductID: 10, Size: 42, Quantity: 1}
	if err := repo.AddQuantity(item); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	foreign, err := repo.GetByIDAndUser(item.ID, 2)
	if err != nil || foreign != nil {
		t.Fatalf("other user must not see line, got %v,%v", foreign, err)
	}
	deleted, err := repo.DeleteByIDAndUser(item.ID, 2)
	if err != nil || deleted {
		t.Fatalf("other user must not delete line, got %v,%v", deleted, err)
	}

	if err := repo.UpdateQuantity(item.ID, 1, 7); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	own, err := repo.GetByIDAndUser(item.ID, 1)
	if err != nil || own == nil || own.Quantity != 7 {
		t.Fatalf("want quantity 7 got %+v (%v)", own, err)
	}

	if err := repo.ClearByUser(1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := repo.ClearByUser(1); err != nil {
		t.Fatalf("clear on empty basket failed: %v", err)
	}
	items, _ := repo.ListByUser(1)
	if len(items) != 0 {
		t.Fatalf("basket should be empty, got %d", len(items))
	}
}

package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := OpenDB("sqlite", dsn, DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, gormlogger.Discard)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestMoneyMarshalJSONAsNumber(t *testing.T) {
	payload, err := json.Marshal(map[string]Money{"price": NewMoneyFromInt(18999)})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(payload) != `{"price":18999.00}` {
		t.Fatalf("unexpected payload: %s", payload)
	}

	var decoded struct {
		Price Money `json:"price"`
	}
	if err := json.Unmarshal([]byte(`{"price":"12.345"}`), &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !decoded.Price.Equal(decimal.RequireFromString("12.35")) {
		t.Fatalf("want 12.35 got %s", decoded.Price.String())
	}
}

func TestOpenDBRejectsUnknownDriver(t *testing.T) {
	if _, err := OpenDB("oracle", "x", DBPoolConfig{}, gormlogger.Discard); err == nil {
		t.Fatalf("want error for unsupported driver")
	}
}

func TestBasketItemUniquePerUserProductSize(t *testing.T) {
	db := openTestDB(t)
	first := BasketItem{UserID: 1, ProductID: 2, Size: 42, Quantity: 1}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create basket item failed: %v", err)
	}
	if first.AddedAt.IsZero() {
		t.Fatalf("added_at should be set on create")
	}
	dup := BasketItem{UserID: 1, ProductID: 2, Size: 42, Quantity: 3}
	if err := db.Create(&dup).Error; err == nil {
		t.Fatalf("want unique violation for duplicate basket line")
	}
	otherSize := BasketItem{UserID: 1, ProductID: 2, Size: 43, Quantity: 1}
	if err := db.Create(&otherSize).Error; err != nil {
		t.Fatalf("different size should be allowed: %v", err)
	}
}

func TestProductDefaults(t *testing.T) {
	db := openTestDB(t)
	product := Product{Brand: "Nike", Model: "Dunk Low", Size: 41, ColorName: "Panda", Price: NewMoneyFromInt(12999), InStock: true}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	var loaded Product
	if err := db.First(&loaded, product.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if loaded.Condition != "New" {
		t.Fatalf("want condition New got %q", loaded.Condition)
	}
	if loaded.Price.String() != "12999.00" {
		t.Fatalf("want price 12999.00 got %s", loaded.Price.String())
	}
}

func TestInitDefaultAdminIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := InitDefaultAdmin(db, "", "secret-pass", 4); err != nil {
		t.Fatalf("init admin failed: %v", err)
	}
	if err := InitDefaultAdmin(db, "", "other-pass", 4); err != nil {
		t.Fatalf("second init admin failed: %v", err)
	}
	var users []User
	if err := db.Find(&users).Error; err != nil {
		t.Fatalf("list users failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("want 1 admin got %d", len(users))
	}
	if users[0].Email != "admin@admin.com" || !users[0].IsAdmin {
		t.Fatalf("unexpected admin: %+v", users[0])
	}
	if users[0].FirstName == nil || *users[0].FirstName != "Администратор" {
		t.Fatalf("want admin first name Администратор got %v", users[0].FirstName)
	}
	if users[0].LastName == nil || *users[0].LastName != "Системы" {
		t.Fatalf("want admin last name Системы got %v", users[0].LastName)
	}
}

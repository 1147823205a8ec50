package repository

import (
	"errors"

	"github.com/sneaker-store/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BasketRepository 购物车数据访问接口
type BasketRepository interface {
	ListByUser(userID uint) ([]models.BasketItem, error)
	AddQuantity(item *models.BasketItem) error
	GetByIDAndUser(id, userID uint) (*models.BasketItem, error)
	UpdateQuantity(id, userID uint, quantity int) error
	DeleteByIDAndUser(id, userID uint) (bool, error)
	ClearByUser(userID uint) error
}

// GormBasketRepository GORM 实现
type GormBasketRepository struct {
	db *gorm.DB
}

// NewBasketRepository 创建购物车仓库
func NewBasketRepository(db *gorm.DB) *GormBasketRepository {
	return &GormBasketRepository{db: db}
}

// ListByUser 获取用户购物车行，按 id 升序
func (r *GormBasketRepository) ListByUser(userID uint) ([]models.BasketItem, error) {
	items := make([]models.BasketItem, 0)
	if err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddQuantity 按 (user_id, sneaker_id, size) 合并：已存在则累加数量，否则新建。
// 单条 INSERT ... ON CONFLICT 完成，并发添加同一行不会产生重复记录。
func (r *GormBasketRepository) AddQuantity(item *models.BasketItem) error {
	if item == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "sneaker_id"}, {Name: "size"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("basket_items.quantity + excluded.quantity"),
		}),
	}).Create(item).Error
}

// GetByIDAndUser 获取属于该用户的购物车行
func (r *GormBasketRepository) GetByIDAndUser(id, userID uint) (*models.BasketItem, error) {
	var item models.BasketItem
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity 覆盖数量
func (r *GormBasketRepository) UpdateQuantity(id, userID uint, quantity int) error {
	return r.db.Model(&models.BasketItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", quantity).Error
}

// DeleteByIDAndUser 删除购物车行，返回是否命中
func (r *GormBasketRepository) DeleteByIDAndUser(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.BasketItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ClearByUser 清空购物车
func (r *GormBasketRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.BasketItem{}).Error
}

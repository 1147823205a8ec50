package models

import "time"

// BasketItem 购物车行，(user_id, sneaker_id, size) 唯一
type BasketItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                                  // 主键
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_basket_user_product_size" json:"user_id"`                // 用户ID
	ProductID uint      `gorm:"column:sneaker_id;not null;uniqueIndex:idx_basket_user_product_size" json:"sneaker_id"` // 商品ID
	Size      float64   `gorm:"not null;uniqueIndex:idx_basket_user_product_size" json:"size"`                         // 尺寸
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`                                                    // 数量
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`                                                        // 加入时间
}

// TableName 指定表名
func (BasketItem) TableName() string {
	return "basket_items"
}

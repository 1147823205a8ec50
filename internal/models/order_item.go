package models

// OrderItem 订单项表，价格为下单时快照
type OrderItem struct {
	ID        uint    `gorm:"primarykey" json:"id"`                               // 主键
	OrderID   uint    `gorm:"index;not null" json:"order_id"`                     // 订单ID
	ProductID uint    `gorm:"column:sneaker_id;index;not null" json:"sneaker_id"` // 商品ID
	Size      float64 `gorm:"not null" json:"size"`                               // 尺寸
	Quantity  int     `gorm:"not null" json:"quantity"`                           // 数量
	Price     Money   `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

package models

// Product 商品（球鞋）表，只读目录
type Product struct {
	ID          uint    `gorm:"primarykey" json:"id"`                                     // 主键
	Brand       string  `gorm:"type:varchar(50);not null" json:"brand"`                   // 品牌
	Model       string  `gorm:"type:varchar(100);not null" json:"model"`                  // 型号
	Size        float64 `gorm:"not null" json:"size"`                                     // 欧码尺寸
	ColorName   string  `gorm:"type:varchar(50);not null" json:"color_name"`              // 颜色名称
	ColorCode   *string `gorm:"type:varchar(7)" json:"color_code"`                        // 颜色 HEX
	Price       Money   `gorm:"type:decimal(20,2);not null;default:0" json:"price"`       // 价格
	Description *string `gorm:"type:text" json:"description"`                             // 描述
	Category    *string `gorm:"type:varchar(50)" json:"category"`                         // 分类
	Gender      *string `gorm:"type:varchar(20)" json:"gender"`                           // 适用人群
	InStock     bool    `gorm:"not null;default:true" json:"in_stock"`                    // 是否有货
	Condition   string  `gorm:"type:varchar(20);not null;default:'New'" json:"condition"` // 成色
	ImageURL    *string `gorm:"type:varchar(200)" json:"image_url"`                       // 图片地址
	ReleaseYear *int    `json:"release_year"`                                             // 发售年份
	SKU         *string `gorm:"column:sku;type:varchar(50)" json:"sku"`                   // 货号
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

package models

import "time"

// User 用户表
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                // 主键
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"` // 邮箱
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`                 // 密码哈希（不返回给前端）
	FirstName    *string   `gorm:"type:varchar(50)" json:"first_name"`                  // 名
	LastName     *string   `gorm:"type:varchar(50)" json:"last_name"`                   // 姓
	Phone        *string   `gorm:"type:varchar(20)" json:"phone"`                       // 电话
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`              // 管理员标记
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                             // 注册时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

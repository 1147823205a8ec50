package models

import (
	"errors"
	"strings"

	"github.com/sneaker-store/internal/constants"
	"github.com/sneaker-store/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultAdmin 初始化默认管理员账号，已存在时只确保管理员标记
func InitDefaultAdmin(db *gorm.DB, email, password string, cost int) error {
	if db == nil {
		return errors.New("database not initialized")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		email = constants.DefaultAdminEmail
	}

	var existing User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if !existing.IsAdmin {
			if err := db.Model(&existing).Update("is_admin", true).Error; err != nil {
				logger.Warnw("ensure_default_admin_flag_failed", "email", email, "error", err)
			}
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if password == "" {
		password = constants.DefaultAdminPassword
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}

	firstName := constants.DefaultAdminFirstName
	lastName := constants.DefaultAdminLastName
	admin := User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    &firstName,
		LastName:     &lastName,
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	if password == constants.DefaultAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "email", email)
		logger.Warnw("default_admin_password_change_required", "email", email)
	} else {
		logger.Warnw("default_admin_created", "email", email, "password_hidden", true)
	}
	return nil
}

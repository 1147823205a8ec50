package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/sneaker-store/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

const productCacheTTL = 5 * time.Minute

// UserAuthState 用户鉴权快照，命中时跳过按 ID 查库
type UserAuthState struct {
	UserID    uint  `json:"user_id"`
	IsAdmin   bool  `json:"is_admin"`
	UpdatedAt int64 `json:"updated_at"`
}

func userAuthStateKey(userID uint) string {
	return fmt.Sprintf("auth:user:%d", userID)
}

func productKey(productID uint) string {
	return fmt.Sprintf("catalog:product:%d", productID)
}

// BuildUserAuthState 从用户模型构建鉴权快照
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:    user.ID,
		IsAdmin:   user.IsAdmin,
		UpdatedAt: time.Now().Unix(),
	}
}

// GetUserAuthState 获取用户鉴权快照
func (c *Cache) GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	var state UserAuthState
	hit, err := c.GetJSON(ctx, userAuthStateKey(userID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetUserAuthState 写入用户鉴权快照
func (c *Cache) SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return c.SetJSON(ctx, userAuthStateKey(state.UserID), state, authStateCacheTTL)
}

// GetProduct 获取商品详情缓存
func (c *Cache) GetProduct(ctx context.Context, productID uint) (*models.Product, bool, error) {
	if productID == 0 {
		return nil, false, nil
	}
	var product models.Product
	hit, err := c.GetJSON(ctx, productKey(productID), &product)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &product, true, nil
}

// SetProduct 写入商品详情缓存
func (c *Cache) SetProduct(ctx context.Context, product *models.Product) error {
	if product == nil || product.ID == 0 {
		return nil
	}
	return c.SetJSON(ctx, productKey(product.ID), product, productCacheTTL)
}

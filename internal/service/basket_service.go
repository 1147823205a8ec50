package service

import (
	"context"
	"time"

	"github.com/sneaker-store/internal/models"
	"github.com/sneaker-store/internal/repository"
)

// BasketService 购物车服务
type BasketService struct {
	basketRepo  repository.BasketRepository
	productRepo repository.ProductRepository
}

// NewBasketService 创建购物车服务
func NewBasketService(basketRepo repository.BasketRepository, productRepo repository.ProductRepository) *BasketService {
	return &BasketService{
		basketRepo:  basketRepo,
		productRepo: productRepo,
	}
}

// BasketLineView 购物车行视图，嵌入商品当前数据；商品已删除时 product 为 null
type BasketLineView struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	ProductID uint            `json:"sneaker_id"`
	Size      float64         `json:"size"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
	Product   *models.Product `json:"product"`
}

// AddBasketItemInput 加购参数
type AddBasketItemInput struct {
	ProductID uint
	Size      float64
	Quantity  *int
}

// List 获取用户购物车
func (s *BasketService) List(ctx context.Context, userID uint) ([]BasketLineView, error) {
	items, err := s.basketRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []BasketLineView{}, nil
	}

	productIDs := make([]uint, 0, len(items))
	seen := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uint]*models.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	views := make([]BasketLineView, 0, len(items))
	for _, item := range items {
		views = append(views, BasketLineView{
			ID:        item.ID,
			UserID:    item.UserID,
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
			Product:   productMap[item.ProductID],
		})
	}
	return views, nil
}

// AddItem 加入购物车，同一 (商品, 尺码) 累加数量
func (s *BasketService) AddItem(ctx context.Context, userID uint, input AddBasketItemInput) error {
	if input.ProductID == 0 || input.Size <= 0 {
		return ErrBasketItemInvalid
	}
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if quantity <= 0 {
		return ErrBasketQuantityInvalid
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	return s.basketRepo.AddQuantity(&models.BasketItem{
		UserID:    userID,
		ProductID: product.ID,
		Size:      input.Size,
		Quantity:  quantity,
	})
}

// UpdateItem 覆盖数量；nil 不做修改，非正数删除该行
func (s *BasketService) UpdateItem(ctx context.Context, userID, lineID uint, quantity *int) error {
	item, err := s.basketRepo.GetByIDAndUser(lineID, userID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrBasketItemNotFound
	}
	if quantity == nil {
		return nil
	}
	if *quantity <= 0 {
		_, err := s.basketRepo.DeleteByIDAndUser(item.ID, userID)
		return err
	}
	return s.basketRepo.UpdateQuantity(item.ID, userID, *quantity)
}

// RemoveItem 删除购物车行
func (s *BasketService) RemoveItem(ctx context.Context, userID, lineID uint) error {
	deleted, err := s.basketRepo.DeleteByIDAndUser(lineID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBasketItemNotFound
	}
	return nil
}

// Clear 清空购物车
func (s *BasketService) Clear(ctx context.Context, userID uint) error {
	return s.basketRepo.ClearByUser(userID)
}

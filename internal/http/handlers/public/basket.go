package public

import (
	"errors"
	"io"
	"net/http"

	handlershared "github.com/sneaker-store/internal/http/handlers/shared"
	"github.com/sneaker-store/internal/http/response"
	"github.com/sneaker-store/internal/service"

	"github.com/gin-gonic/gin"
)

// AddBasketItemRequest 加购请求
type AddBasketItemRequest struct {
	ProductID uint    `json:"sneaker_id"`
	Size      float64 `json:"size"`
	Quantity  *int    `json:"quantity"`
}

// UpdateBasketItemRequest 修改数量请求，quantity 缺省时不做修改
type UpdateBasketItemRequest struct {
	Quantity *int `json:"quantity"`
}

// GetBasket 获取购物车
func (h *Handler) GetBasket(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	lines, err := h.BasketService.List(c.Request.Context(), uid)
	if err != nil {
		respondBasketError(c, err)
		return
	}
	response.Success(c, lines)
}

// AddBasketItem 加入购物车
func (h *Handler) AddBasketItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddBasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.BasketService.AddItem(c.Request.Context(), uid, service.AddBasketItemInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}); err != nil {
		respondBasketError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "success.basket_added")
}

// UpdateBasketItem 修改购物车行数量
func (h *Handler) UpdateBasketItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	lineID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "error.basket_item_not_found", nil)
		return
	}
	var req UpdateBasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.BasketService.UpdateItem(c.Request.Context(), uid, lineID, req.Quantity); err != nil {
		respondBasketError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "success.basket_updated")
}

// RemoveBasketItem 删除购物车行
func (h *Handler) RemoveBasketItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	lineID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "error.basket_item_not_found", nil)
		return
	}
	if err := h.BasketService.RemoveItem(c.Request.Context(), uid, lineID); err != nil {
		respondBasketError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "success.basket_removed")
}

// ClearBasket 清空购物车
func (h *Handler) ClearBasket(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.BasketService.Clear(c.Request.Context(), uid); err != nil {
		respondBasketError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "success.basket_cleared")
}

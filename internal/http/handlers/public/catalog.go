package public

import (
	handlershared "github.com/sneaker-store/internal/http/handlers/shared"
	"github.com/sneaker-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListCatalog 商品列表，返回全部商品
func (h *Handler) ListCatalog(c *gin.Context) {
	products, err := h.CatalogService.ListProducts(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, products)
}

// GetCatalogItem 商品详情，非法或不存在的 ID 均返回 404
func (h *Handler) GetCatalogItem(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		return
	}
	product, err := h.CatalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, product)
}

package seed

import (
	"fmt"

	"github.com/sneaker-store/internal/models"
	"github.com/sneaker-store/internal/repository"
)

// DefaultCatalog 返回初始商品目录
func DefaultCatalog() []models.Product {
	products := make([]models.Product, 0, len(defaultSneakers))
	for _, item := range defaultSneakers {
		description := item.description
		category := item.category
		gender := item.gender
		imageURL := fmt.Sprintf(imageURLTemplate, item.photo)
		releaseYear := item.releaseYear
		products = append(products, models.Product{
			Brand:       item.brand,
			Model:       item.model,
			Size:        item.size,
			ColorName:   item.colorName,
			Price:       models.NewMoneyFromInt(item.price),
			Description: &description,
			Category:    &category,
			Gender:      &gender,
			InStock:     true,
			Condition:   "New",
			ImageURL:    &imageURL,
			ReleaseYear: &releaseYear,
		})
	}
	return products
}

// Catalog 商品表为空时写入初始目录，返回写入条数
func Catalog(repo repository.ProductRepository) (int, error) {
	total, err := repo.Count()
	if err != nil {
		return 0, err
	}
	if total > 0 {
		return 0, nil
	}
	products := DefaultCatalog()
	if err := repo.CreateBatch(products); err != nil {
		return 0, err
	}
	return len(products), nil
}

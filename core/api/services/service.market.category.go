package services

import (
	"context"
	"fmt"

	"ark_deals/core/common"
	"ark_deals/core/global"

	models "ark_deals/core/api/models/mongodb"
)

// defaultCategories là bộ danh mục cố định của sàn, seed một lần lúc khởi động
var defaultCategories = []string{
	"Máy ảnh DSLR",
	"Máy ảnh Mirrorless",
	"Máy ảnh Point & Shoot",
}

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục sản phẩm.
// Danh mục chỉ đọc từ phía API.
type CategoryService struct {
	BaseServiceMongo[models.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongo: NewBaseServiceMongo[models.Category](categoryCollection),
	}, nil
}

// FindAll liệt kê tất cả danh mục
func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.Find(ctx, nil, nil)
}

// EnsureDefaults seed bộ danh mục mặc định nếu collection đang rỗng
func (s *CategoryService) EnsureDefaults(ctx context.Context) error {
	count, err := s.CountDocuments(ctx, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, 0, len(defaultCategories))
	for _, name := range defaultCategories {
		categories = append(categories, models.Category{Name: name})
	}

	_, err = s.InsertMany(ctx, categories)
	return err
}

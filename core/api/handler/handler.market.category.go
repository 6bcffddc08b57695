package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"ark_deals/core/api/services"
)

// CategoryHandler xử lý các request liên quan đến danh mục sản phẩm
type CategoryHandler struct {
	BaseHandler
	CategoryService *services.CategoryService
}

// NewCategoryHandler tạo một instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := services.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	return &CategoryHandler{CategoryService: categoryService}, nil
}

// HandleFindAll trả về toàn bộ danh mục sản phẩm
// @Router /categories [get]
func (h *CategoryHandler) HandleFindAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categories, err := h.CategoryService.FindAll(context.Background())
		h.HandleResponse(c, categories, err)
		return nil
	})
}

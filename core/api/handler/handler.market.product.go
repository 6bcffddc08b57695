package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"ark_deals/core/api/dto"
	"ark_deals/core/api/services"
)

// ProductHandler xử lý các request liên quan đến sản phẩm second-hand
type ProductHandler struct {
	BaseHandler
	ProductService *services.ProductService
}

// NewProductHandler tạo một instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := services.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	return &ProductHandler{ProductService: productService}, nil
}

// HandleCreate đăng bán một sản phẩm mới (chỉ dành cho seller)
// @Router /add-product [post]
func (h *ProductHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.ProductService.Create(context.Background(), &input)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleListAvailable trả về toàn bộ sản phẩm chưa bán, mới đăng trước
// @Router /products [get]
func (h *ProductHandler) HandleListAvailable(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		products, err := h.ProductService.ListAvailable(context.Background())
		h.HandleResponse(c, products, err)
		return nil
	})
}

// HandleListByCategory trả về sản phẩm chưa bán thuộc một danh mục
// @Router /productsByCategory/{id} [get]
func (h *ProductHandler) HandleListByCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		products, err := h.ProductService.ListByCategory(context.Background(), id)
		h.HandleResponse(c, products, err)
		return nil
	})
}

// HandleListBySeller trả về toàn bộ sản phẩm của một seller (kể cả đã bán)
// @Router /myproducts [get]
func (h *ProductHandler) HandleListBySeller(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Query("email")
		products, err := h.ProductService.ListBySeller(context.Background(), email)
		h.HandleResponse(c, products, err)
		return nil
	})
}

// HandleToggleAdvertised đảo trạng thái quảng cáo của một sản phẩm
// @Router /advertisement-status/{id} [patch]
func (h *ProductHandler) HandleToggleAdvertised(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.ProductService.ToggleAdvertised(context.Background(), id)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleMarkSold đánh dấu sản phẩm đã bán và gỡ khỏi quảng cáo
// @Router /products-paid/{id} [patch]
func (h *ProductHandler) HandleMarkSold(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.ProductService.MarkSold(context.Background(), id)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleBulkToggleVerified đảo trạng thái verified cho toàn bộ sản phẩm của một seller
// @Router /verify-product/{email} [patch]
func (h *ProductHandler) HandleBulkToggleVerified(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Params("email")
		modified, err := h.ProductService.BulkToggleVerified(context.Background(), email)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"modifiedCount": modified}, nil)
		return nil
	})
}

// HandleDelete xóa một sản phẩm theo ID (chủ tài khoản tự gỡ bài đăng)
// @Router /delete-product/{id} [delete]
func (h *ProductHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.ProductService.DeleteById(context.Background(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"acknowledged": true, "deletedCount": 1}, nil)
		return nil
	})
}

// HandleBulkDeleteBySeller xóa toàn bộ sản phẩm của một seller (chỉ dành cho admin).
// Seller không có sản phẩm nào trả về found=false thay vì lỗi.
// @Router /user-product-delete/{email} [delete]
func (h *ProductHandler) HandleBulkDeleteBySeller(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Params("email")
		deleted, found, err := h.ProductService.BulkDeleteBySeller(context.Background(), email)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if !found {
			h.HandleResponse(c, fiber.Map{
				"found":        false,
				"deletedCount": int64(0),
				"message":      "Không tìm thấy sản phẩm nào của người bán này",
			}, nil)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"found": true, "deletedCount": deleted}, nil)
		return nil
	})
}

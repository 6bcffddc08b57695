package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"ark_deals/core/api/dto"
	"ark_deals/core/api/services"
)

// AdvertisementHandler xử lý các request liên quan đến quảng cáo sản phẩm
type AdvertisementHandler struct {
	BaseHandler
	AdvertisementService *services.AdvertisementService
}

// NewAdvertisementHandler tạo một instance mới của AdvertisementHandler
func NewAdvertisementHandler() (*AdvertisementHandler, error) {
	advertisementService, err := services.NewAdvertisementService()
	if err != nil {
		return nil, fmt.Errorf("failed to create advertisement service: %v", err)
	}

	return &AdvertisementHandler{AdvertisementService: advertisementService}, nil
}

// HandleCreate tạo quảng cáo cho một sản phẩm đang bán
// @Router /add-advertisement [post]
func (h *AdvertisementHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.AdvertisementCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ad, err := h.AdvertisementService.Create(context.Background(), &input)
		h.HandleResponse(c, ad, err)
		return nil
	})
}

// HandleListVerified trả về các quảng cáo đã được duyệt để hiển thị trang chủ
// @Router /advertisements [get]
func (h *AdvertisementHandler) HandleListVerified(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ads, err := h.AdvertisementService.ListVerified(context.Background())
		h.HandleResponse(c, ads, err)
		return nil
	})
}

// HandleBulkToggleVerified đảo trạng thái duyệt cho toàn bộ quảng cáo của một seller
// @Router /verify-ad/{email} [patch]
func (h *AdvertisementHandler) HandleBulkToggleVerified(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Params("email")
		modified, err := h.AdvertisementService.BulkToggleVerified(context.Background(), email)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"modifiedCount": modified}, nil)
		return nil
	})
}

// HandleBulkDeleteBySeller xóa toàn bộ quảng cáo của một seller.
// Seller không có quảng cáo nào trả về found=false thay vì lỗi.
// @Router /ad-delete/{email} [delete]
func (h *AdvertisementHandler) HandleBulkDeleteBySeller(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Params("email")
		deleted, found, err := h.AdvertisementService.BulkDeleteBySeller(context.Background(), email)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if !found {
			h.HandleResponse(c, fiber.Map{
				"found":        false,
				"deletedCount": int64(0),
				"message":      "Không tìm thấy quảng cáo nào của người bán này",
			}, nil)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"found": true, "deletedCount": deleted}, nil)
		return nil
	})
}

// HandleDelete xóa một quảng cáo theo ID
// @Router /advertisement-delete/{id} [delete]
func (h *AdvertisementHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.AdvertisementService.DeleteAd(context.Background(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"acknowledged": true, "deletedCount": 1}, nil)
		return nil
	})
}

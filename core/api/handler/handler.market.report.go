package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"ark_deals/core/api/dto"
	"ark_deals/core/api/services"
)

// ReportHandler xử lý các request liên quan đến sản phẩm bị báo cáo
type ReportHandler struct {
	BaseHandler
	ReportService *services.ReportService
}

// NewReportHandler tạo một instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := services.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}

	return &ReportHandler{ReportService: reportService}, nil
}

// HandleCreate ghi nhận một báo cáo vi phạm từ người mua
// @Router /reported-item-buyer [post]
func (h *ReportHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ReportedItemCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		report, err := h.ReportService.Create(context.Background(), &input)
		h.HandleResponse(c, report, err)
		return nil
	})
}

// HandleFindAll trả về toàn bộ báo cáo vi phạm (chỉ dành cho admin)
// @Router /reported-item [get]
func (h *ReportHandler) HandleFindAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		reports, err := h.ReportService.FindAll(context.Background())
		h.HandleResponse(c, reports, err)
		return nil
	})
}

// HandleFindByReporter trả về các báo cáo mà một người mua đã gửi
// @Router /reported-item-buyer [get]
func (h *ReportHandler) HandleFindByReporter(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Query("email")
		reports, err := h.ReportService.FindByReporter(context.Background(), email)
		h.HandleResponse(c, reports, err)
		return nil
	})
}

// HandleDeleteByProduct gỡ toàn bộ báo cáo của một sản phẩm.
// Tham số id là ID sản phẩm (pID) lưu dưới dạng chuỗi trong báo cáo.
// @Router /reported-item/{id} [delete]
func (h *ReportHandler) HandleDeleteByProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pid := c.Params("id")
		deleted, err := h.ReportService.DeleteByProduct(context.Background(), pid)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"acknowledged": true, "deletedCount": deleted}, nil)
		return nil
	})
}

package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"ark_deals/core/api/dto"
	"ark_deals/core/api/services"
)

// OrderHandler xử lý các request liên quan đến đơn đặt hàng
type OrderHandler struct {
	BaseHandler
	OrderService *services.OrderService
}

// NewOrderHandler tạo một instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := services.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	return &OrderHandler{OrderService: orderService}, nil
}

// HandleCreate tạo đơn đặt hàng mới cho một sản phẩm
// @Router /orders [post]
func (h *OrderHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.OrderService.Create(context.Background(), &input)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleListByBuyer trả về các đơn hàng mà một buyer đã đặt
// @Router /myorders [get]
func (h *OrderHandler) HandleListByBuyer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Query("email")
		orders, err := h.OrderService.ListByBuyer(context.Background(), email)
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleListBySeller trả về các đơn hàng đặt mua sản phẩm của một seller
// @Router /mybuyers [get]
func (h *OrderHandler) HandleListBySeller(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Query("email")
		orders, err := h.OrderService.ListBySeller(context.Background(), email)
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleToggleMeeting đảo trạng thái xác nhận gặp mặt của một đơn hàng
// @Router /confirm-meeting/{id} [patch]
func (h *OrderHandler) HandleToggleMeeting(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.OrderService.ToggleMeeting(context.Background(), id)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleMarkPaid đánh dấu đơn hàng đã thanh toán
// @Router /orders-paid/{id} [patch]
func (h *OrderHandler) HandleMarkPaid(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.OrderService.MarkPaid(context.Background(), id)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleDeleteUnpaidDuplicates dọn các đơn trùng chưa thanh toán của một sản phẩm.
// Tham số id là ID sản phẩm (pId) lưu dưới dạng chuỗi trong đơn hàng.
// @Router /orders-paid-dup/{id} [delete]
func (h *OrderHandler) HandleDeleteUnpaidDuplicates(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pid := c.Params("id")
		deleted, err := h.OrderService.DeleteUnpaidDuplicates(context.Background(), pid)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"acknowledged": true, "deletedCount": deleted}, nil)
		return nil
	})
}

// HandleDelete xóa một đơn hàng theo ID
// @Router /order-delete/{id} [delete]
func (h *OrderHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.OrderService.DeleteById(context.Background(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"acknowledged": true, "deletedCount": 1}, nil)
		return nil
	})
}

// HandleBulkDeleteBySeller xóa toàn bộ đơn hàng trên sản phẩm của một seller.
// Không có đơn nào trả về found=false thay vì lỗi.
// @Router /orders-delete/{email} [delete]
func (h *OrderHandler) HandleBulkDeleteBySeller(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Params("email")
		deleted, found, err := h.OrderService.BulkDeleteBySeller(context.Background(), email)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if !found {
			h.HandleResponse(c, fiber.Map{
				"found":        false,
				"deletedCount": int64(0),
				"message":      "Không tìm thấy đơn hàng nào trên sản phẩm của người bán này",
			}, nil)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"found": true, "deletedCount": deleted}, nil)
		return nil
	})
}

// HandleBulkDeleteByBuyer xóa toàn bộ đơn hàng mà một buyer đã đặt (chỉ dành cho admin)
// @Router /buyer-orders-delete/{email} [delete]
func (h *OrderHandler) HandleBulkDeleteByBuyer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Params("email")
		deleted, found, err := h.OrderService.BulkDeleteByBuyer(context.Background(), email)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if !found {
			h.HandleResponse(c, fiber.Map{
				"found":        false,
				"deletedCount": int64(0),
				"message":      "Không tìm thấy đơn hàng nào của người mua này",
			}, nil)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"found": true, "deletedCount": deleted}, nil)
		return nil
	})
}

// Package handler chứa các handler xử lý request HTTP cho phần xác thực và quản lý người dùng
package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"ark_deals/core/api/dto"
	models "ark_deals/core/api/models/mongodb"
	"ark_deals/core/api/services"
	"ark_deals/core/global"
)

// UserHandler xử lý các request liên quan đến xác thực và quản lý thông tin người dùng
type UserHandler struct {
	BaseHandler
	UserService *services.UserService
}

// NewUserHandler tạo một instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := services.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	return &UserHandler{UserService: userService}, nil
}

// HandleCreate đăng ký một tài khoản mới (buyer, seller hoặc admin)
// @Router /add-users [post]
func (h *UserHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.Register(context.Background(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleIssueToken cấp JWT cho một email đã đăng ký.
// Email chưa có tài khoản trả về 401 kèm accessToken rỗng để client phân biệt.
// @Router /jwt [get]
func (h *UserHandler) HandleIssueToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Query("email")
		token, err := h.UserService.IssueToken(context.Background(), email, global.MongoDB_ServerConfig.JwtSecret)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, dto.TokenResponse{AccessToken: token}, nil)
		return nil
	})
}

// HandleProbeAdmin kiểm tra email có thuộc tài khoản admin không.
// Luôn trả về 200 với cờ boolean, kể cả khi email chưa đăng ký.
// @Router /admin/{email} [get]
func (h *UserHandler) HandleProbeAdmin(c fiber.Ctx) error {
	return h.probeRole(c, models.RoleAdmin)
}

// HandleProbeSeller kiểm tra email có thuộc tài khoản seller không.
// @Router /seller/{email} [get]
func (h *UserHandler) HandleProbeSeller(c fiber.Ctx) error {
	return h.probeRole(c, models.RoleSeller)
}

// HandleProbeBuyer kiểm tra email có thuộc tài khoản buyer không.
// @Router /buyer/{email} [get]
func (h *UserHandler) HandleProbeBuyer(c fiber.Ctx) error {
	return h.probeRole(c, models.RoleBuyer)
}

func (h *UserHandler) probeRole(c fiber.Ctx, role string) error {
	return h.SafeHandler(c, func() error {
		email := c.Params("email")
		has, err := h.UserService.HasRole(context.Background(), email, role)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var probe dto.RoleProbeResponse
		switch role {
		case models.RoleAdmin:
			probe.IsAdmin = &has
		case models.RoleSeller:
			probe.IsSeller = &has
		case models.RoleBuyer:
			probe.IsBuyer = &has
		}
		h.HandleResponse(c, probe, nil)
		return nil
	})
}

// HandleProfile trả về hồ sơ của chính người dùng đã xác thực
// @Router /profile/{email} [get]
func (h *UserHandler) HandleProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Params("email")
		user, err := h.UserService.FindByEmail(context.Background(), email)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleFindSellers trả về toàn bộ tài khoản seller (chỉ dành cho admin)
// @Router /allsellers [get]
func (h *UserHandler) HandleFindSellers(c fiber.Ctx) error {
	return h.findByRole(c, models.RoleSeller)
}

// HandleFindBuyers trả về toàn bộ tài khoản buyer (chỉ dành cho admin)
// @Router /allbuyers [get]
func (h *UserHandler) HandleFindBuyers(c fiber.Ctx) error {
	return h.findByRole(c, models.RoleBuyer)
}

func (h *UserHandler) findByRole(c fiber.Ctx, role string) error {
	return h.SafeHandler(c, func() error {
		users, err := h.UserService.FindByRole(context.Background(), role)
		h.HandleResponse(c, users, err)
		return nil
	})
}

// HandleToggleVerified đảo trạng thái verified của một seller
// @Router /verify-seller/{id} [patch]
func (h *UserHandler) HandleToggleVerified(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.ToggleVerified(context.Background(), id)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleDelete xóa tài khoản theo email (chỉ dành cho admin).
// Sản phẩm, quảng cáo và đơn hàng liên quan được xóa bằng các endpoint riêng.
// @Router /user-delete/{email} [delete]
func (h *UserHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		email := c.Params("email")
		err := h.UserService.DeleteByEmail(context.Background(), email)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"acknowledged": true, "deletedCount": 1}, nil)
		return nil
	})
}

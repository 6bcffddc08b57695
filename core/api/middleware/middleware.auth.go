package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "ark_deals/core/api/models/mongodb"
	"ark_deals/core/api/services"
	"ark_deals/core/common"
	"ark_deals/core/global"
	"ark_deals/core/logger"
	"ark_deals/core/utility"
)

// LocalsUserEmail là key lưu email đã xác thực vào Fiber locals
const LocalsUserEmail = "user_email"

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD services.BaseServiceMongo[models.User]
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := services.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &AuthManager{UserCRUD: userService}, nil
}

// HandleErrorResponse trả về error response chuẩn hóa cho các middleware.
// Format giống với HandleResponse của handler để client xử lý thống nhất.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		c.Set("Content-Type", "application/json; charset=utf-8")
		c.Status(customErr.StatusCode).JSON(fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}
	c.Set("Content-Type", "application/json; charset=utf-8")
	c.Status(common.StatusInternalServerError).JSON(fiber.Map{
		"code":    common.ErrCodeDatabase.Code,
		"message": err.Error(),
		"status":  "error",
	})
}

// RequireSignIn xác thực JWT token từ header Authorization.
// Token hợp lệ: lưu email vào locals rồi cho request đi tiếp.
// Thiếu header trả về 401, token sai/hết hạn trả về 403.
func (am *AuthManager) RequireSignIn() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := utility.ParseToken(parts[1], global.MongoDB_ServerConfig.JwtSecret)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token verification failed")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		c.Locals(LocalsUserEmail, claims.Email)
		return c.Next()
	}
}

// RequireAdmin chặn request nếu email đã xác thực không thuộc tài khoản admin.
// Phải đứng sau RequireSignIn trong pipeline.
func (am *AuthManager) RequireAdmin() fiber.Handler {
	return am.requireRole(models.RoleAdmin)
}

// RequireSeller chặn request nếu email đã xác thực không thuộc tài khoản seller.
func (am *AuthManager) RequireSeller() fiber.Handler {
	return am.requireRole(models.RoleSeller)
}

func (am *AuthManager) requireRole(role string) fiber.Handler {
	return func(c fiber.Ctx) error {
		email, _ := c.Locals(LocalsUserEmail).(string)
		user, err := am.UserCRUD.FindOne(context.Background(), bson.M{"email": email}, nil)
		if err != nil || user.Role != role {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_email":    email,
				"required_role": role,
				"path":          c.Path(),
			}).Warn("❌ [AUTH] User does not have required role")
			HandleErrorResponse(c, common.ErrForbiddenRole)
			return nil
		}
		return c.Next()
	}
}

// RequireUser chặn request nếu email đã xác thực không tồn tại trong hệ thống.
// Dùng cho các route chỉ cần tài khoản đã đăng ký, không phân biệt vai trò.
func (am *AuthManager) RequireUser() fiber.Handler {
	return func(c fiber.Ctx) error {
		email, _ := c.Locals(LocalsUserEmail).(string)
		_, err := am.UserCRUD.FindOne(context.Background(), bson.M{"email": email}, nil)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_email": email,
				"path":       c.Path(),
			}).Warn("❌ [AUTH] Authenticated email is not a registered user")
			HandleErrorResponse(c, common.ErrForbiddenRole)
			return nil
		}
		return c.Next()
	}
}

// RequireIdentityMatch chặn request khi email trong token không khớp với email
// của tài nguyên được yêu cầu (path param hoặc query string).
// Route dùng path param :email thì so với param, ngược lại so với query ?email=.
func (am *AuthManager) RequireIdentityMatch() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenEmail, _ := c.Locals(LocalsUserEmail).(string)

		requested := c.Params("email")
		if requested == "" {
			requested = c.Query("email")
		}

		if requested == "" || requested != tokenEmail {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"token_email":     tokenEmail,
				"requested_email": requested,
				"path":            c.Path(),
			}).Warn("❌ [AUTH] Identity does not match requested resource")
			HandleErrorResponse(c, common.ErrInvalidIdentity)
			return nil
		}
		return c.Next()
	}
}

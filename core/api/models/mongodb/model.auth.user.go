// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role hợp lệ của người dùng
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User định nghĩa mô hình người dùng
// Email là khóa tra cứu chính của toàn hệ thống (đăng nhập, gates, lọc theo chủ sở hữu).
// Verified chỉ có ý nghĩa với seller; dùng con trỏ vì document cũ có thể không có field này,
// và khi đó thao tác toggle không đổi gì cả.
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Role     string             `json:"role" bson:"role"`
	Verified *bool              `json:"verified,omitempty" bson:"verified,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin kiểm tra người dùng có phải admin không
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSeller kiểm tra người dùng có phải seller không
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}

// IsBuyer kiểm tra người dùng có phải buyer không
func (u *User) IsBuyer() bool {
	return u.Role == RoleBuyer
}

package dto

// UserCreateInput dữ liệu đầu vào khi đăng ký người dùng (tầng transport)
type UserCreateInput struct {
	Name  string `json:"name" validate:"required,no_xss"`        // Tên hiển thị (bắt buộc)
	Email string `json:"email" validate:"required,email"`        // Email, khóa tra cứu chính (bắt buộc, unique)
	Role  string `json:"role" validate:"required,user_role"`     // Role: buyer, seller, admin (bắt buộc)
}

// TokenResponse dữ liệu trả về khi cấp access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"` // Token đã ký, rỗng nếu không cấp được
}

// RoleProbeResponse dữ liệu trả về của các endpoint thăm dò role
// Mỗi endpoint chỉ set một field tương ứng
type RoleProbeResponse struct {
	IsAdmin  *bool `json:"isAdmin,omitempty"`  // Kết quả probe /admin/:email
	IsSeller *bool `json:"isSeller,omitempty"` // Kết quả probe /seller/:email
	IsBuyer  *bool `json:"isBuyer,omitempty"`  // Kết quả probe /buyer/:email
}

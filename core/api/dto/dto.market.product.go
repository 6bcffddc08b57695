package dto

// ProductCreateInput dữ liệu đầu vào khi seller đăng sản phẩm (tầng transport)
type ProductCreateInput struct {
	Name          string `json:"name" validate:"required,no_xss"`     // Tên sản phẩm (bắt buộc)
	Description   string `json:"description,omitempty" validate:"omitempty,no_xss"` // Mô tả
	Img           string `json:"img,omitempty"`                       // URL hình ảnh
	Category      string `json:"category" validate:"required"`        // Tên danh mục (denormalized, bắt buộc)
	Location      string `json:"location,omitempty"`                  // Khu vực giao dịch
	ResalePrice   string `json:"resalePrice" validate:"required"`     // Giá bán lại (bắt buộc)
	OriginalPrice string `json:"originalPrice,omitempty"`             // Giá mua ban đầu
	YearsOfUse    string `json:"yearsOfUse,omitempty"`                // Số năm đã sử dụng
	SellerName    string `json:"sellerName,omitempty"`                // Tên seller
	Email         string `json:"email" validate:"required,email"`     // Email seller (bắt buộc)
	Phone         string `json:"phone,omitempty"`                     // Số điện thoại liên hệ
}

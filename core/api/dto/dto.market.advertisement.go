package dto

// AdvertisementCreateInput dữ liệu đầu vào khi seller tạo quảng cáo (tầng transport)
type AdvertisementCreateInput struct {
	Email       string `json:"email" validate:"required,email"` // Email seller (bắt buộc)
	ProductID   string `json:"productId" validate:"required,exists=products"` // Id sản phẩm dạng hex string, phải tồn tại (bắt buộc)
	ProductName string `json:"productName,omitempty"`           // Tên sản phẩm
	Img         string `json:"img,omitempty"`                   // URL hình ảnh
	ResalePrice string `json:"resalePrice,omitempty"`           // Giá bán lại
}

package dto

// ReportedItemCreateInput dữ liệu đầu vào khi người dùng báo cáo sản phẩm (tầng transport)
type ReportedItemCreateInput struct {
	Email       string `json:"email" validate:"required,email"`          // Email người báo cáo (bắt buộc)
	PID         string `json:"pID" validate:"required"`                  // Id sản phẩm bị báo cáo dạng hex string (bắt buộc)
	ProductName string `json:"productName,omitempty"`                    // Tên sản phẩm
	Reason      string `json:"reason,omitempty" validate:"omitempty,no_xss"` // Lý do báo cáo
}

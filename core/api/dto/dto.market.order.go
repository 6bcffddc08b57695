package dto

// OrderCreateInput dữ liệu đầu vào khi buyer đặt đơn (tầng transport)
type OrderCreateInput struct {
	ProductName     string `json:"productName" validate:"required,no_xss"` // Tên sản phẩm (bắt buộc)
	Price           string `json:"price,omitempty"`                        // Giá tại thời điểm đặt
	Img             string `json:"img,omitempty"`                          // URL hình ảnh sản phẩm
	BuyerName       string `json:"buyerName,omitempty"`                    // Tên buyer
	Email           string `json:"email" validate:"required,email"`        // Email buyer (bắt buộc)
	SellerEmail     string `json:"sellerEmail" validate:"required,email"`  // Email seller (bắt buộc)
	Phone           string `json:"phone,omitempty"`                        // Số điện thoại buyer
	MeetingLocation string `json:"meetingLocation,omitempty"`              // Địa điểm hẹn gặp
	PID             string `json:"pId" validate:"required"`                // Id sản phẩm gốc dạng hex string (bắt buộc)
}

package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ark_deals/core/api/dto"
	models "ark_deals/core/api/models/mongodb"
	"ark_deals/core/common"
	"ark_deals/core/global"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	BaseServiceMongo[models.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	return &OrderService{
		BaseServiceMongo: NewBaseServiceMongo[models.Order](orderCollection),
	}, nil
}

// Create tạo đơn hàng mới cho buyer
func (s *OrderService) Create(ctx context.Context, input *dto.OrderCreateInput) (models.Order, error) {
	order := models.Order{
		ProductName:     input.ProductName,
		Price:           input.Price,
		Img:             input.Img,
		BuyerName:       input.BuyerName,
		Email:           input.Email,
		SellerEmail:     input.SellerEmail,
		Phone:           input.Phone,
		MeetingLocation: input.MeetingLocation,
		PID:             input.PID,
	}
	return s.InsertOne(ctx, order)
}

// ListByBuyer liệt kê đơn hàng của một buyer
func (s *OrderService) ListByBuyer(ctx context.Context, email string) ([]models.Order, error) {
	return s.Find(ctx, bson.M{"email": email}, nil)
}

// ListBySeller liệt kê đơn hàng đổ về một seller
func (s *OrderService) ListBySeller(ctx context.Context, email string) ([]models.Order, error) {
	return s.Find(ctx, bson.M{"sellerEmail": email}, nil)
}

// ToggleMeeting đảo cờ xác nhận lịch hẹn của đơn hàng.
// Document không có field meeting decode thành false nên lần toggle đầu cho true.
func (s *OrderService) ToggleMeeting(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	next := !order.Meeting
	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{"meeting": next}})
}

// MarkPaid đánh dấu đơn hàng đã thanh toán (idempotent, set vô điều kiện)
func (s *OrderService) MarkPaid(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{"paid": true}})
}

// DeleteUnpaidDuplicates dọn các đơn trùng chưa thanh toán của cùng một sản phẩm.
// Caller chịu trách nhiệm gọi sau khi đã mark-paid đơn được chọn; đơn đã paid
// không nằm trong filter nên không bị đụng tới.
func (s *OrderService) DeleteUnpaidDuplicates(ctx context.Context, pid string) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"pId": pid, "paid": false})
}

// BulkDeleteBySeller xóa toàn bộ đơn hàng đổ về một seller.
// Đọc tập lọc trước; tập rỗng trả về found=false.
func (s *OrderService) BulkDeleteBySeller(ctx context.Context, email string) (int64, bool, error) {
	orders, err := s.Find(ctx, bson.M{"sellerEmail": email}, nil)
	if err != nil {
		return 0, false, err
	}
	if len(orders) == 0 {
		return 0, false, nil
	}

	deleted, err := s.DeleteMany(ctx, bson.M{"sellerEmail": email})
	return deleted, true, err
}

// BulkDeleteByBuyer xóa toàn bộ đơn hàng của một buyer.
// Đọc tập lọc trước; tập rỗng trả về found=false.
func (s *OrderService) BulkDeleteByBuyer(ctx context.Context, email string) (int64, bool, error) {
	orders, err := s.Find(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return 0, false, err
	}
	if len(orders) == 0 {
		return 0, false, nil
	}

	deleted, err := s.DeleteMany(ctx, bson.M{"email": email})
	return deleted, true, err
}

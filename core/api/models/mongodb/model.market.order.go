// Package models - model đơn hàng (Order) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order định nghĩa mô hình đơn hàng.
// PID giữ id của sản phẩm gốc dưới dạng hex string (field "pId"), dùng để dọn các đơn
// trùng chưa thanh toán sau khi một đơn đã được thanh toán.
// Meeting là cờ bật/tắt do seller xác nhận lịch hẹn, không có ngữ nghĩa gì thêm.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductName     string             `json:"productName" bson:"productName"`
	Price           string             `json:"price,omitempty" bson:"price,omitempty"`
	Img             string             `json:"img,omitempty" bson:"img,omitempty"`
	BuyerName       string             `json:"buyerName,omitempty" bson:"buyerName,omitempty"`
	Email           string             `json:"email" bson:"email" index:"single:1"`
	SellerEmail     string             `json:"sellerEmail" bson:"sellerEmail" index:"single:1"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	MeetingLocation string             `json:"meetingLocation,omitempty" bson:"meetingLocation,omitempty"`
	PID             string             `json:"pId" bson:"pId" index:"single:1"`

	Meeting bool `json:"meeting" bson:"meeting"`
	Paid    bool `json:"paid" bson:"paid"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

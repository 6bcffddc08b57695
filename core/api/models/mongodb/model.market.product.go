// Package models - model sản phẩm (Product) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product định nghĩa mô hình sản phẩm second-hand.
// Category là bản sao tên danh mục (denormalized), không phải tham chiếu ID.
// Verified phản chiếu trạng thái xác minh của seller và được toggle hàng loạt theo email seller.
type Product struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Img           string             `json:"img,omitempty" bson:"img,omitempty"`
	Category      string             `json:"category" bson:"category" index:"single:1"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	ResalePrice   string             `json:"resalePrice,omitempty" bson:"resalePrice,omitempty"`
	OriginalPrice string             `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	YearsOfUse    string             `json:"yearsOfUse,omitempty" bson:"yearsOfUse,omitempty"`
	SellerName    string             `json:"sellerName,omitempty" bson:"sellerName,omitempty"`
	Email         string             `json:"email" bson:"email" index:"single:1"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`

	Sold       bool `json:"sold" bson:"sold"`
	Advertised bool `json:"advertised" bson:"advertised"`
	Verified   bool `json:"verified" bson:"verified"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

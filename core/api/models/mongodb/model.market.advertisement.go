// Package models - model quảng cáo (Advertisement) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Advertisement định nghĩa mô hình quảng cáo sản phẩm.
// Mỗi quảng cáo gắn với một sản phẩm (ProductID dạng hex string) và seller (Email).
// Verified được admin toggle hàng loạt theo email seller.
type Advertisement struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email" index:"single:1"`
	ProductID   string             `json:"productId" bson:"productId"`
	ProductName string             `json:"productName,omitempty" bson:"productName,omitempty"`
	Img         string             `json:"img,omitempty" bson:"img,omitempty"`
	ResalePrice string             `json:"resalePrice,omitempty" bson:"resalePrice,omitempty"`

	Verified bool `json:"verified" bson:"verified"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

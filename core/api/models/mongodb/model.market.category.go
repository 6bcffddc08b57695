// Package models - model danh mục sản phẩm (Category) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category định nghĩa mô hình danh mục sản phẩm.
// Danh mục chỉ đọc từ phía API; được seed một lần lúc khởi động.
// Product tham chiếu danh mục bằng tên (denormalized), không phải bằng ID.
type Category struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name" index:"unique"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

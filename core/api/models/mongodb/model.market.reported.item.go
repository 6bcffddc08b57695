// Package models - model sản phẩm bị báo cáo (ReportedItem) thuộc domain market.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportedItem định nghĩa mô hình báo cáo vi phạm.
// PID giữ id sản phẩm bị báo cáo dưới dạng hex string (field "pID" - khác hoa thường
// với "pId" của Order, giữ nguyên theo dữ liệu hiện có).
// Báo cáo được xóa hàng loạt theo id sản phẩm khi admin gỡ sản phẩm.
type ReportedItem struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	PID         string             `json:"pID" bson:"pID" index:"single:1"`
	ProductName string             `json:"productName,omitempty" bson:"productName,omitempty"`
	Reason      string             `json:"reason,omitempty" bson:"reason,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

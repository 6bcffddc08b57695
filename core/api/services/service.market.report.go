package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"ark_deals/core/api/dto"
	models "ark_deals/core/api/models/mongodb"
	"ark_deals/core/common"
	"ark_deals/core/global"
)

// ReportService là cấu trúc chứa các phương thức liên quan đến báo cáo vi phạm
type ReportService struct {
	BaseServiceMongo[models.ReportedItem]
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	reportCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ReportedItems)
	if !exist {
		return nil, fmt.Errorf("failed to get reported_items collection: %v", common.ErrNotFound)
	}

	return &ReportService{
		BaseServiceMongo: NewBaseServiceMongo[models.ReportedItem](reportCollection),
	}, nil
}

// Create ghi nhận báo cáo vi phạm mới
func (s *ReportService) Create(ctx context.Context, input *dto.ReportedItemCreateInput) (models.ReportedItem, error) {
	report := models.ReportedItem{
		Email:       input.Email,
		PID:         input.PID,
		ProductName: input.ProductName,
		Reason:      input.Reason,
	}
	return s.InsertOne(ctx, report)
}

// FindAll liệt kê tất cả báo cáo (cho admin)
func (s *ReportService) FindAll(ctx context.Context) ([]models.ReportedItem, error) {
	return s.Find(ctx, nil, nil)
}

// FindByReporter liệt kê báo cáo của một người dùng
func (s *ReportService) FindByReporter(ctx context.Context, email string) ([]models.ReportedItem, error) {
	return s.Find(ctx, bson.M{"email": email}, nil)
}

// DeleteByProduct xóa tất cả báo cáo trỏ đến một sản phẩm
func (s *ReportService) DeleteByProduct(ctx context.Context, pid string) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"pID": pid})
}

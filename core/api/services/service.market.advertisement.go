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

// AdvertisementService là cấu trúc chứa các phương thức liên quan đến quảng cáo
type AdvertisementService struct {
	BaseServiceMongo[models.Advertisement]
}

// NewAdvertisementService tạo mới AdvertisementService
func NewAdvertisementService() (*AdvertisementService, error) {
	adCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Advertisements)
	if !exist {
		return nil, fmt.Errorf("failed to get advertisements collection: %v", common.ErrNotFound)
	}

	return &AdvertisementService{
		BaseServiceMongo: NewBaseServiceMongo[models.Advertisement](adCollection),
	}, nil
}

// Create tạo quảng cáo mới cho seller
func (s *AdvertisementService) Create(ctx context.Context, input *dto.AdvertisementCreateInput) (models.Advertisement, error) {
	ad := models.Advertisement{
		Email:       input.Email,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Img:         input.Img,
		ResalePrice: input.ResalePrice,
	}
	return s.InsertOne(ctx, ad)
}

// ListVerified liệt kê các quảng cáo đã được admin duyệt (cho trang chủ)
func (s *AdvertisementService) ListVerified(ctx context.Context) ([]models.Advertisement, error) {
	return s.Find(ctx, bson.M{"verified": true}, nil)
}

// BulkToggleVerified đảo cờ verified cho toàn bộ quảng cáo của một seller.
// Như với sản phẩm: MỘT quyết định tính từ document CUỐI trong tập lọc, áp cho
// tất cả. Tập rỗng là no-op.
func (s *AdvertisementService) BulkToggleVerified(ctx context.Context, email string) (int64, error) {
	ads, err := s.Find(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return 0, err
	}
	if len(ads) == 0 {
		return 0, nil
	}

	next := !ads[len(ads)-1].Verified
	return s.UpdateMany(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"verified": next}}, nil)
}

// BulkDeleteBySeller xóa toàn bộ quảng cáo của một seller.
// Đọc tập lọc trước; tập rỗng trả về found=false.
func (s *AdvertisementService) BulkDeleteBySeller(ctx context.Context, email string) (int64, bool, error) {
	ads, err := s.Find(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return 0, false, err
	}
	if len(ads) == 0 {
		return 0, false, nil
	}

	deleted, err := s.DeleteMany(ctx, bson.M{"email": email})
	return deleted, true, err
}

// DeleteAd xóa một quảng cáo theo id
func (s *AdvertisementService) DeleteAd(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}

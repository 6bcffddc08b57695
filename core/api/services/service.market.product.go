package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ark_deals/core/api/dto"
	models "ark_deals/core/api/models/mongodb"
	"ark_deals/core/common"
	"ark_deals/core/global"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	BaseServiceMongo[models.Product]
	categoryService BaseServiceMongo[models.Category]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongo: NewBaseServiceMongo[models.Product](productCollection),
		categoryService:  NewBaseServiceMongo[models.Category](categoryCollection),
	}, nil
}

// Create đăng sản phẩm mới cho seller
func (s *ProductService) Create(ctx context.Context, input *dto.ProductCreateInput) (models.Product, error) {
	product := models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Img:           input.Img,
		Category:      input.Category,
		Location:      input.Location,
		ResalePrice:   input.ResalePrice,
		OriginalPrice: input.OriginalPrice,
		YearsOfUse:    input.YearsOfUse,
		SellerName:    input.SellerName,
		Email:         input.Email,
		Phone:         input.Phone,
	}
	return s.InsertOne(ctx, product)
}

// ListAvailable liệt kê sản phẩm chưa bán, mới đăng trước
func (s *ProductService) ListAvailable(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"sold": false}, opts)
}

// ListByCategory liệt kê sản phẩm chưa bán thuộc danh mục.
// Tra cứu 2 bước: resolve id danh mục ra tên, rồi lọc sản phẩm theo tên đó
// (Product lưu tên danh mục denormalized, không lưu id).
func (s *ProductService) ListByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	category, err := s.categoryService.FindOneById(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return s.Find(ctx, bson.M{"category": category.Name, "sold": false}, nil)
}

// ListBySeller liệt kê sản phẩm của một seller
func (s *ProductService) ListBySeller(ctx context.Context, email string) ([]models.Product, error) {
	return s.Find(ctx, bson.M{"email": email}, nil)
}

// ToggleAdvertised đảo cờ advertised của sản phẩm.
// Document không có field advertised decode thành false, nên lần toggle
// đầu tiên luôn cho kết quả true.
func (s *ProductService) ToggleAdvertised(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	next := !product.Advertised
	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{"advertised": next}})
}

// MarkSold đánh dấu sản phẩm đã bán sau khi thanh toán.
// sold=true và advertised=false được set trong cùng một update.
func (s *ProductService) MarkSold(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{"sold": true, "advertised": false}})
}

// BulkToggleVerified đảo cờ verified cho toàn bộ sản phẩm của một seller.
// Quyết định toggle được tính MỘT lần từ document CUỐI trong tập lọc rồi áp
// cho tất cả - mọi sản phẩm của seller nhận cùng một giá trị mới, không phải
// toggle từng document. Tập rỗng là no-op.
func (s *ProductService) BulkToggleVerified(ctx context.Context, email string) (int64, error) {
	products, err := s.Find(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, nil
	}

	next := !products[len(products)-1].Verified
	return s.UpdateMany(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"verified": next}}, nil)
}

// BulkDeleteBySeller xóa toàn bộ sản phẩm của một seller.
// Đọc tập lọc trước; tập rỗng trả về found=false để handler trả thông báo
// "không tìm thấy" thay vì kết quả xóa 0 bản ghi.
func (s *ProductService) BulkDeleteBySeller(ctx context.Context, email string) (int64, bool, error) {
	products, err := s.Find(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return 0, false, err
	}
	if len(products) == 0 {
		return 0, false, nil
	}

	deleted, err := s.DeleteMany(ctx, bson.M{"email": email})
	return deleted, true, err
}

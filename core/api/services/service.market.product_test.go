package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "ark_deals/core/api/models/mongodb"
	"ark_deals/core/common"
)

func newTestProductService() (*ProductService, *memBase[models.Product], *memBase[models.Category]) {
	products := newMemBase[models.Product]()
	categories := newMemBase[models.Category]()
	svc := &ProductService{
		BaseServiceMongo: products,
		categoryService:  categories,
	}
	return svc, products, categories
}

func TestProductService_ToggleAdvertised_ThieuFieldThanhTrue(t *testing.T) {
	svc, mem, _ := newTestProductService()
	// Document cũ không có field advertised: decode thành false, toggle đầu tiên luôn ra true
	id := mem.seed(bson.M{"name": "Canon 5D", "email": "s@x.com", "sold": false})

	product, err := svc.ToggleAdvertised(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, product.Advertised)

	product, err = svc.ToggleAdvertised(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, product.Advertised)
}

func TestProductService_MarkSold_GoKhoiQuangCao(t *testing.T) {
	svc, mem, _ := newTestProductService()
	id := mem.seed(bson.M{"name": "Canon 5D", "email": "s@x.com", "sold": false, "advertised": true})

	product, err := svc.MarkSold(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, product.Sold)
	assert.False(t, product.Advertised, "sản phẩm đã bán phải bị gỡ khỏi quảng cáo trong cùng một update")
}

func TestProductService_BulkToggleVerified_MotQuyetDinhChoCaTap(t *testing.T) {
	svc, mem, _ := newTestProductService()
	// Trạng thái lẫn lộn [true, false, true]: quyết định tính từ document CUỐI
	// (true → false) rồi áp cho tất cả
	mem.seed(bson.M{"email": "s@x.com", "verified": true})
	mem.seed(bson.M{"email": "s@x.com", "verified": false})
	mem.seed(bson.M{"email": "s@x.com", "verified": true})

	modified, err := svc.BulkToggleVerified(context.Background(), "s@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), modified)

	products, err := svc.ListBySeller(context.Background(), "s@x.com")
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.False(t, p.Verified, "mọi sản phẩm phải nhận cùng một giá trị mới")
	}
}

func TestProductService_BulkToggleVerified_TapRong(t *testing.T) {
	svc, _, _ := newTestProductService()

	modified, err := svc.BulkToggleVerified(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Zero(t, modified)
}

func TestProductService_BulkDeleteBySeller_PhanBietKhongTimThay(t *testing.T) {
	svc, mem, _ := newTestProductService()

	deleted, found, err := svc.BulkDeleteBySeller(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, found, "tập rỗng phải trả found=false, không phải deletedCount=0")
	assert.Zero(t, deleted)

	mem.seed(bson.M{"email": "s@x.com"})
	mem.seed(bson.M{"email": "s@x.com"})

	deleted, found, err = svc.BulkDeleteBySeller(context.Background(), "s@x.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(2), deleted)
}

func TestProductService_ListByCategory_LocTheoTenVaChuaBan(t *testing.T) {
	svc, mem, categories := newTestProductService()
	catID := categories.seed(bson.M{"name": "Máy ảnh DSLR"})

	mem.seed(bson.M{"name": "Canon 5D", "category": "Máy ảnh DSLR", "sold": false})
	mem.seed(bson.M{"name": "Nikon D850", "category": "Máy ảnh DSLR", "sold": true})
	mem.seed(bson.M{"name": "Sony A7", "category": "Máy ảnh Mirrorless", "sold": false})

	products, err := svc.ListByCategory(context.Background(), catID)
	require.NoError(t, err)
	require.Len(t, products, 1, "chỉ sản phẩm chưa bán đúng danh mục")
	assert.Equal(t, "Canon 5D", products[0].Name)
}

func TestProductService_ListByCategory_DanhMucKhongTonTai(t *testing.T) {
	svc, _, _ := newTestProductService()

	_, err := svc.ListByCategory(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestProductService_ListAvailable_BoQuaDaBan(t *testing.T) {
	svc, mem, _ := newTestProductService()
	mem.seed(bson.M{"name": "A", "sold": false})
	mem.seed(bson.M{"name": "B", "sold": true})

	products, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A", products[0].Name)
}

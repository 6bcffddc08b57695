package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	models "ark_deals/core/api/models/mongodb"
)

func newTestAdvertisementService() (*AdvertisementService, *memBase[models.Advertisement]) {
	mem := newMemBase[models.Advertisement]()
	return &AdvertisementService{BaseServiceMongo: mem}, mem
}

func TestAdvertisementService_BulkToggleVerified_TapRongLaNoOp(t *testing.T) {
	svc, _ := newTestAdvertisementService()

	modified, err := svc.BulkToggleVerified(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Zero(t, modified)
}

func TestAdvertisementService_BulkToggleVerified_CungMotGiaTri(t *testing.T) {
	svc, mem := newTestAdvertisementService()
	mem.seed(bson.M{"email": "s@x.com", "verified": false})
	mem.seed(bson.M{"email": "s@x.com", "verified": false})

	modified, err := svc.BulkToggleVerified(context.Background(), "s@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), modified)

	ads, err := svc.Find(context.Background(), bson.M{"email": "s@x.com"}, nil)
	require.NoError(t, err)
	for _, ad := range ads {
		assert.True(t, ad.Verified)
	}
}

func TestAdvertisementService_BulkToggleVerified_QuyetDinhTheoBanGhiCuoi(t *testing.T) {
	svc, mem := newTestAdvertisementService()
	mem.seed(bson.M{"email": "s@x.com", "verified": false})
	mem.seed(bson.M{"email": "s@x.com", "verified": true})
	mem.seed(bson.M{"email": "s@x.com", "verified": true})

	// Bản ghi cuối đang verified=true nên toàn bộ tập được gán false
	modified, err := svc.BulkToggleVerified(context.Background(), "s@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), modified)

	ads, err := svc.Find(context.Background(), bson.M{"email": "s@x.com"}, nil)
	require.NoError(t, err)
	require.Len(t, ads, 3)
	for _, ad := range ads {
		assert.False(t, ad.Verified, "toàn bộ quảng cáo phải nhận cùng một giá trị mới")
	}
}

func TestAdvertisementService_ListVerified(t *testing.T) {
	svc, mem := newTestAdvertisementService()
	mem.seed(bson.M{"email": "s@x.com", "verified": true, "productName": "Canon 5D"})
	mem.seed(bson.M{"email": "s@x.com", "verified": false, "productName": "Nikon D850"})

	ads, err := svc.ListVerified(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "Canon 5D", ads[0].ProductName)
}

func TestAdvertisementService_BulkDeleteBySeller_PhanBietKhongTimThay(t *testing.T) {
	svc, mem := newTestAdvertisementService()

	deleted, found, err := svc.BulkDeleteBySeller(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, found, "seller không có quảng cáo phải trả found=false")
	assert.Zero(t, deleted)

	mem.seed(bson.M{"email": "s@x.com"})

	deleted, found, err = svc.BulkDeleteBySeller(context.Background(), "s@x.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(1), deleted)
}

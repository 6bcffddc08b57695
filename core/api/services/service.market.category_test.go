package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	models "ark_deals/core/api/models/mongodb"
)

func newTestCategoryService() (*CategoryService, *memBase[models.Category]) {
	mem := newMemBase[models.Category]()
	return &CategoryService{BaseServiceMongo: mem}, mem
}

func TestCategoryService_EnsureDefaults_SeedKhiTrong(t *testing.T) {
	svc, _ := newTestCategoryService()

	require.NoError(t, svc.EnsureDefaults(context.Background()))

	categories, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, len(defaultCategories))
}

func TestCategoryService_EnsureDefaults_KhongSeedLai(t *testing.T) {
	svc, mem := newTestCategoryService()
	mem.seed(bson.M{"name": "Máy ảnh DSLR"})

	require.NoError(t, svc.EnsureDefaults(context.Background()))

	categories, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1, "collection đã có dữ liệu thì không seed thêm")
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"ark_deals/core/api/dto"
	models "ark_deals/core/api/models/mongodb"
)

func newTestReportService() (*ReportService, *memBase[models.ReportedItem]) {
	mem := newMemBase[models.ReportedItem]()
	return &ReportService{BaseServiceMongo: mem}, mem
}

func TestReportService_CreateVaFindByReporter(t *testing.T) {
	svc, _ := newTestReportService()

	_, err := svc.Create(context.Background(), &dto.ReportedItemCreateInput{
		Email:       "b@x.com",
		PID:         "p1",
		ProductName: "Canon 5D",
		Reason:      "Hàng giả",
	})
	require.NoError(t, err)

	reports, err := svc.FindByReporter(context.Background(), "b@x.com")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "p1", reports[0].PID)

	reports, err = svc.FindByReporter(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestReportService_DeleteByProduct_XoaTatCaBaoCaoCuaSanPham(t *testing.T) {
	svc, mem := newTestReportService()
	mem.seed(bson.M{"email": "b1@x.com", "pID": "p1"})
	mem.seed(bson.M{"email": "b2@x.com", "pID": "p1"})
	mem.seed(bson.M{"email": "b3@x.com", "pID": "p2"})

	deleted, err := svc.DeleteByProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	all, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "p2", all[0].PID)
}

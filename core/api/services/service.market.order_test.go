package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	models "ark_deals/core/api/models/mongodb"
)

func newTestOrderService() (*OrderService, *memBase[models.Order]) {
	mem := newMemBase[models.Order]()
	return &OrderService{BaseServiceMongo: mem}, mem
}

func TestOrderService_ToggleMeeting_HaiLanVeTrangThaiCu(t *testing.T) {
	svc, mem := newTestOrderService()
	// Field meeting vắng mặt decode thành false, toggle đầu tiên ra true
	id := mem.seed(bson.M{"email": "b@x.com", "sellerEmail": "s@x.com", "pId": "p1"})

	order, err := svc.ToggleMeeting(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, order.Meeting)

	order, err = svc.ToggleMeeting(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, order.Meeting, "toggle hai lần phải quay về trạng thái ban đầu")
}

func TestOrderService_MarkPaid_KhongDieuKien(t *testing.T) {
	svc, mem := newTestOrderService()
	id := mem.seed(bson.M{"email": "b@x.com", "pId": "p1", "paid": true})

	// MarkPaid set paid=true vô điều kiện, kể cả khi đã paid
	order, err := svc.MarkPaid(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, order.Paid)
}

func TestOrderService_DeleteUnpaidDuplicates_GiuDonDaThanhToan(t *testing.T) {
	svc, mem := newTestOrderService()
	mem.seed(bson.M{"email": "b1@x.com", "pId": "p1", "paid": true})
	mem.seed(bson.M{"email": "b2@x.com", "pId": "p1", "paid": false})
	mem.seed(bson.M{"email": "b3@x.com", "pId": "p1", "paid": false})
	mem.seed(bson.M{"email": "b4@x.com", "pId": "p2", "paid": false})

	deleted, err := svc.DeleteUnpaidDuplicates(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	// Đơn đã thanh toán và đơn của sản phẩm khác phải còn nguyên
	remaining, err := svc.Find(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	for _, o := range remaining {
		assert.True(t, o.Paid || o.PID == "p2")
	}
}

func TestOrderService_ListTheoBuyerVaSeller(t *testing.T) {
	svc, mem := newTestOrderService()
	mem.seed(bson.M{"email": "b@x.com", "sellerEmail": "s@x.com", "pId": "p1"})
	mem.seed(bson.M{"email": "b@x.com", "sellerEmail": "s2@x.com", "pId": "p2"})
	mem.seed(bson.M{"email": "b2@x.com", "sellerEmail": "s@x.com", "pId": "p3"})

	byBuyer, err := svc.ListByBuyer(context.Background(), "b@x.com")
	require.NoError(t, err)
	assert.Len(t, byBuyer, 2)

	bySeller, err := svc.ListBySeller(context.Background(), "s@x.com")
	require.NoError(t, err)
	assert.Len(t, bySeller, 2)
}

func TestOrderService_BulkDelete_PhanBietKhongTimThay(t *testing.T) {
	svc, mem := newTestOrderService()

	_, found, err := svc.BulkDeleteBySeller(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = svc.BulkDeleteByBuyer(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, found)

	mem.seed(bson.M{"email": "b@x.com", "sellerEmail": "s@x.com", "pId": "p1"})
	mem.seed(bson.M{"email": "b2@x.com", "sellerEmail": "s@x.com", "pId": "p2"})

	deleted, found, err := svc.BulkDeleteBySeller(context.Background(), "s@x.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(2), deleted)
}

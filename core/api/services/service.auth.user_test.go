package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"ark_deals/core/api/dto"
	models "ark_deals/core/api/models/mongodb"
	"ark_deals/core/common"
	"ark_deals/core/utility"
)

const testJwtSecret = "test-secret"

func newTestUserService() (*UserService, *memBase[models.User]) {
	mem := newMemBase[models.User]()
	return &UserService{BaseServiceMongo: mem}, mem
}

func TestUserService_HasRole_KhongCoBanGhi(t *testing.T) {
	svc, _ := newTestUserService()

	// Email chưa đăng ký không phải là lỗi, trả về false cho mọi role
	for _, role := range []string{models.RoleAdmin, models.RoleSeller, models.RoleBuyer} {
		has, err := svc.HasRole(context.Background(), "ghost@x.com", role)
		require.NoError(t, err, "HasRole không được trả lỗi khi email không tồn tại")
		assert.False(t, has)
	}
}

func TestUserService_HasRole_DungVaSaiRole(t *testing.T) {
	svc, mem := newTestUserService()
	mem.seed(bson.M{"email": "seller@x.com", "role": models.RoleSeller})

	has, err := svc.HasRole(context.Background(), "seller@x.com", models.RoleSeller)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = svc.HasRole(context.Background(), "seller@x.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestUserService_IssueToken_EmailChuaDangKy(t *testing.T) {
	svc, _ := newTestUserService()

	token, err := svc.IssueToken(context.Background(), "ghost@x.com", testJwtSecret)
	require.Error(t, err)
	assert.Empty(t, token)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusUnauthorized, customErr.StatusCode)

	// Details mang token rỗng để client phân biệt với các lỗi khác
	details, ok := customErr.Details.(dto.TokenResponse)
	require.True(t, ok, "Details phải là TokenResponse")
	assert.Empty(t, details.AccessToken)
}

func TestUserService_IssueToken_EmailDaDangKy(t *testing.T) {
	svc, mem := newTestUserService()
	mem.seed(bson.M{"email": "buyer@x.com", "role": models.RoleBuyer})

	token, err := svc.IssueToken(context.Background(), "buyer@x.com", testJwtSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Claim trong token phải đúng email được cấp
	claims, err := utility.ParseToken(token, testJwtSecret)
	require.NoError(t, err)
	assert.Equal(t, "buyer@x.com", claims.Email)
}

func TestUserService_ToggleVerified_ThieuField(t *testing.T) {
	svc, mem := newTestUserService()
	// Bản ghi cũ không có field verified: toggle là no-op
	id := mem.seed(bson.M{"email": "seller@x.com", "role": models.RoleSeller})

	user, err := svc.ToggleVerified(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, user.Verified)

	stored, err := svc.FindOneById(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, stored.Verified)
}

func TestUserService_ToggleVerified_DaoGiaTri(t *testing.T) {
	svc, mem := newTestUserService()
	id := mem.seed(bson.M{"email": "seller@x.com", "role": models.RoleSeller, "verified": false})

	user, err := svc.ToggleVerified(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, user.Verified)
	assert.True(t, *user.Verified)

	user, err = svc.ToggleVerified(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, user.Verified)
	assert.False(t, *user.Verified)
}

func TestUserService_Register_VaFindByRole(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), &dto.UserCreateInput{Name: "A", Email: "a@x.com", Role: models.RoleSeller})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), &dto.UserCreateInput{Name: "B", Email: "b@x.com", Role: models.RoleBuyer})
	require.NoError(t, err)

	sellers, err := svc.FindByRole(context.Background(), models.RoleSeller)
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, "a@x.com", sellers[0].Email)
}

func TestUserService_Register_EmailSaiDinhDang(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), &dto.UserCreateInput{Name: "A", Email: "khong-phai-email", Role: models.RoleBuyer})
	require.Error(t, err, "Email sai định dạng phải bị từ chối")

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
}

func TestUserService_DeleteByEmail(t *testing.T) {
	svc, mem := newTestUserService()
	mem.seed(bson.M{"email": "a@x.com", "role": models.RoleBuyer})

	require.NoError(t, svc.DeleteByEmail(context.Background(), "a@x.com"))

	exists, err := svc.Exists(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "ark_deals/core/api/models/mongodb"
	"ark_deals/config"
	"ark_deals/core/common"
	"ark_deals/core/global"
	"ark_deals/core/utility"
)

const testSecret = "middleware-test-secret"

// fakeUserStore chỉ cần FindOne cho các gate; các method còn lại không được gọi.
type fakeUserStore struct {
	users map[string]models.User
}

func (f *fakeUserStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.User, error) {
	m, _ := filter.(bson.M)
	email, _ := m["email"].(string)
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return models.User{}, common.ErrNotFound
}

func (f *fakeUserStore) InsertOne(ctx context.Context, data models.User) (models.User, error) {
	return data, nil
}
func (f *fakeUserStore) InsertMany(ctx context.Context, data []models.User) ([]models.User, error) {
	return data, nil
}
func (f *fakeUserStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.User, error) {
	return nil, nil
}
func (f *fakeUserStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (models.User, error) {
	return models.User{}, common.ErrNotFound
}
func (f *fakeUserStore) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error) {
	return 0, nil
}
func (f *fakeUserStore) DeleteOne(ctx context.Context, filter interface{}) error { return nil }
func (f *fakeUserStore) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return 0, nil
}
func (f *fakeUserStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return 0, nil
}
func (f *fakeUserStore) FindOneById(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return models.User{}, common.ErrNotFound
}
func (f *fakeUserStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.User, error) {
	return models.User{}, common.ErrNotFound
}
func (f *fakeUserStore) DeleteById(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeUserStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	_, err := f.FindOne(ctx, filter, nil)
	return err == nil, nil
}

func newTestAuthManager() *AuthManager {
	global.MongoDB_ServerConfig = &config.Configuration{JwtSecret: testSecret}
	return &AuthManager{UserCRUD: &fakeUserStore{users: map[string]models.User{
		"admin@x.com":  {Email: "admin@x.com", Role: models.RoleAdmin},
		"seller@x.com": {Email: "seller@x.com", Role: models.RoleSeller},
		"buyer@x.com":  {Email: "buyer@x.com", Role: models.RoleBuyer},
	}}}
}

func okHandler(c fiber.Ctx) error {
	return c.SendString("ok")
}

func signedToken(t *testing.T, email string) string {
	t.Helper()
	token, err := utility.CreateToken(email, testSecret)
	require.NoError(t, err)
	return token
}

func TestRequireSignIn_ThieuHeader(t *testing.T) {
	am := newTestAuthManager()
	app := fiber.New()
	group := app.Group("/profile")
	group.Use(am.RequireSignIn())
	group.Get("/:email", okHandler)

	req := httptest.NewRequest("GET", "/profile/a@x.com", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode, "thiếu Authorization header phải trả 401")
}

func TestRequireSignIn_TokenSai(t *testing.T) {
	am := newTestAuthManager()
	app := fiber.New()
	group := app.Group("/profile")
	group.Use(am.RequireSignIn())
	group.Get("/:email", okHandler)

	req := httptest.NewRequest("GET", "/profile/a@x.com", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusForbidden, resp.StatusCode, "token không hợp lệ phải trả 403")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), common.ErrCodeAuthToken.Code, "envelope phải mang mã lỗi token")
}

func TestRequireIdentityMatch_KhacDanhTinh(t *testing.T) {
	am := newTestAuthManager()
	app := fiber.New()
	group := app.Group("/profile")
	group.Use(am.RequireSignIn())
	group.Use(am.RequireIdentityMatch())
	group.Get("/:email", okHandler)

	// Token của a@x.com xin profile của b@x.com
	req := httptest.NewRequest("GET", "/profile/b@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "a@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusForbidden, resp.StatusCode)

	// Đúng danh tính thì đi qua
	req = httptest.NewRequest("GET", "/profile/a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "a@x.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestRequireAdmin_ChanSeller(t *testing.T) {
	am := newTestAuthManager()
	app := fiber.New()
	group := app.Group("/allsellers")
	group.Use(am.RequireSignIn())
	group.Use(am.RequireAdmin())
	group.Get("", okHandler)

	req := httptest.NewRequest("GET", "/allsellers", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "seller@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/allsellers", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "admin@x.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
}

func TestRequireUser_EmailChuaDangKy(t *testing.T) {
	am := newTestAuthManager()
	app := fiber.New()
	group := app.Group("/orders")
	group.Use(am.RequireSignIn())
	group.Use(am.RequireUser())
	group.Post("", okHandler)

	// Token ký đúng secret nhưng email không có bản ghi user
	req := httptest.NewRequest("POST", "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "ghost@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("POST", "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "buyer@x.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
}

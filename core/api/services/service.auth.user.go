package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ark_deals/core/api/dto"
	models "ark_deals/core/api/models/mongodb"
	"ark_deals/core/common"
	"ark_deals/core/global"
	"ark_deals/core/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	BaseServiceMongo[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	// Lấy collection từ registry
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongo: NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới
func (s *UserService) Register(ctx context.Context, input *dto.UserCreateInput) (models.User, error) {
	if err := utility.ValidateEmail(input.Email); err != nil {
		return models.User{}, common.NewError(
			common.ErrCodeValidationInput,
			"Email không đúng định dạng",
			common.StatusBadRequest,
			nil,
		)
	}

	user := models.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
	return s.InsertOne(ctx, user)
}

// IssueToken cấp access token cho email đã đăng ký.
// Danh tính được xác lập thuần túy bằng việc email có bản ghi user hay không,
// không kiểm tra mật khẩu. Email chưa đăng ký trả về lỗi 401 kèm token rỗng.
func (s *UserService) IssueToken(ctx context.Context, email string, secret string) (string, error) {
	_, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.NewError(
				common.ErrCodeAuthCredentials,
				"Email chưa được đăng ký",
				common.StatusUnauthorized,
				dto.TokenResponse{AccessToken: ""},
			)
		}
		return "", err
	}

	return utility.CreateToken(email, secret)
}

// FindByEmail tìm người dùng theo email
func (s *UserService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.FindOne(ctx, bson.M{"email": email}, nil)
}

// HasRole kiểm tra email có bản ghi user với role cho trước hay không.
// Không có bản ghi không phải là lỗi - trả về false cho mọi role.
func (s *UserService) HasRole(ctx context.Context, email string, role string) (bool, error) {
	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}

// Exists kiểm tra email có bản ghi user hay không (bất kỳ role nào)
func (s *UserService) Exists(ctx context.Context, email string) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"email": email})
}

// FindByRole liệt kê người dùng theo role (admin dùng cho /allsellers, /allbuyers)
func (s *UserService) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.Find(ctx, bson.M{"role": role}, nil)
}

// ToggleVerified đảo cờ verified của seller.
// Document cũ có thể không có field verified; khi đó thao tác không đổi gì cả
// (khác với toggle của product/ad, nơi field vắng mặt được coi là false).
func (s *UserService) ToggleVerified(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if user.Verified == nil {
		return user, nil
	}

	next := !*user.Verified
	return s.UpdateById(ctx, id, bson.M{"$set": bson.M{"verified": next}})
}

// DeleteByEmail xóa người dùng theo email.
// Chỉ xóa bản ghi user; sản phẩm, đơn hàng và quảng cáo của user do admin client
// gọi tiếp các endpoint xóa hàng loạt tương ứng, không có transaction bao trùm.
func (s *UserService) DeleteByEmail(ctx context.Context, email string) error {
	return s.DeleteOne(ctx, bson.M{"email": email})
}

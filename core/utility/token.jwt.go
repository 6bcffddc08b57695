package utility

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"ark_deals/core/common"
)

// TokenLifetime thời gian sống của access token.
// Client của sàn chỉ xin token một lần khi đăng nhập nên token sống dài ngày.
const TokenLifetime = 10 * 24 * time.Hour

// JwtToken chứa data được mã hóa trong JWT token.
type JwtToken struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// CreateToken tạo access token gắn với email của người dùng.
// @params - email của người dùng, secret key để ký token
// @returns - chuỗi token đã ký và lỗi nếu có
func CreateToken(email string, secret string) (string, error) {
	claims := &JwtToken{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenLifetime).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return tokenString, nil
}

// ParseToken giải mã và kiểm tra chữ ký của access token.
// Token sai chữ ký, sai thuật toán hoặc hết hạn đều trả về ErrTokenInvalid.
// @params - chuỗi token, secret key để kiểm tra chữ ký
// @returns - claims đã giải mã và lỗi nếu có
func ParseToken(tokenString string, secret string) (*JwtToken, error) {
	claims := &JwtToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}

package utility

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ark_deals/core/common"
)

func TestCreateToken_ParseLaiDungClaim(t *testing.T) {
	token, err := CreateToken("buyer@x.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "buyer@x.com", claims.Email)

	// Hạn token phải xa hơn hiện tại (token sống dài)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestParseToken_SaiSecret(t *testing.T) {
	token, err := CreateToken("buyer@x.com", "secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "wrong-secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestParseToken_ChuoiRac(t *testing.T) {
	_, err := ParseToken("not-a-jwt", "secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

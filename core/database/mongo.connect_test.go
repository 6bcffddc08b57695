package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ark_deals/config"
)

func TestGetInstance_URIRong(t *testing.T) {
	client, err := GetInstance(&config.Configuration{MongoDB_ConnectionURI: ""})
	require.Error(t, err, "URI rỗng phải trả về lỗi thay vì client")
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "connection URL is empty")
}

func TestGetInstance_URISaiDinhDang(t *testing.T) {
	client, err := GetInstance(&config.Configuration{MongoDB_ConnectionURI: "khong-phai-uri"})
	require.Error(t, err, "URI sai định dạng phải trả về lỗi kết nối")
	assert.Nil(t, client)
}

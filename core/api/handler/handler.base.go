package handler

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ark_deals/core/common"
	"ark_deals/core/global"
)

// BaseHandler chứa các tiện ích chung cho mọi handler trong ứng dụng.
// Các handler nghiệp vụ embed struct này để dùng chung parse/validate/response.
type BaseHandler struct{}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
//
// Parameters:
// - c: Fiber context
// - input: Con trỏ tới struct sẽ chứa dữ liệu được parse
//
// Returns:
// - error: Lỗi nếu có trong quá trình parse hoặc validate
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// Validate với validator từ global
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ParseObjectID parse một path param thành ObjectID.
// Trả về lỗi VALIDATION khi giá trị không đúng định dạng hex 24 ký tự.
func (h *BaseHandler) ParseObjectID(c fiber.Ctx, paramName string) (primitive.ObjectID, error) {
	raw := c.Params(paramName)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không đúng định dạng ObjectID",
			common.StatusBadRequest,
			err,
		)
	}
	return id, nil
}

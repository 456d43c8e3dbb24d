package auth

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// PhoneRequest binds a mainland mobile number, e.g. 13800138000.
type PhoneRequest struct {
	Phone string `json:"phone" validate:"required,numeric,len=11,startswith=1"`
}

type MessageRequest struct {
	Content string `json:"content" validate:"notblank,max=500"`
}

type ApplyRequest struct {
	Intro string `json:"intro" validate:"max=300"`
}

type CreateEventRequest struct {
	Title       string   `json:"title" validate:"notblank,max=60"`
	Description string   `json:"description" validate:"max=1000"`
	Destination string   `json:"destination" validate:"notblank"`
	Date        string   `json:"date" validate:"notblank"`
	Tags        []string `json:"tags" validate:"min=1,dive,oneof=旅行 棋牌 运动 读书 聚餐 其他"`
	AgeRange    string   `json:"ageRange"`
	GenderReq   string   `json:"genderReq"`
	Capacity    int      `json:"capacity" validate:"min=2,max=50"`
}

type CreatePostRequest struct {
	EventID string `json:"eventId" validate:"required"`
	Content string `json:"content" validate:"notblank,max=1000"`
	Image   string `json:"image" validate:"required,startswith=/images/"`
}

// Validate checks any of the request types above against its tags.
func Validate(request any) error {
	return validate.Struct(request)
}

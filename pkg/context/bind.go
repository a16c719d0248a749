package context

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"KMate/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// 校验错误里使用 json 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// BindJSON 绑定并校验请求体
func BindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ValidationError(ve)
	}
	return response.BadRequest(err.Error())
}

func ValidationError(ve validator.ValidationErrors) *response.HTTPError {
	fields := make([]response.FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, response.FieldError{
			Property:    fe.Field(),
			Value:       fe.Value(),
			Constraints: map[string]string{fe.Tag(): constraintMessage(fe)},
		})
	}
	return response.Validation(fields)
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s",
			fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "latitude":
		return "Latitude must be a valid latitude value"
	case "longitude":
		return "Longitude must be a valid longitude value"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	}
	return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
}

// BindQuery 绑定并校验查询参数
func BindQuery(c *gin.Context, obj any) error {
	err := c.ShouldBindQuery(obj)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ValidationError(ve)
	}
	return response.BadRequest(err.Error())
}

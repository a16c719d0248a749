package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError 统一错误体 {message, error, statusCode}
type HTTPError struct {
	Status  int
	Message any
	Err     string
}

func (e *HTTPError) Error() string {
	if s, ok := e.Message.(string); ok {
		return s
	}
	return e.Err
}

// Body 输出的 JSON 结构
func (e *HTTPError) Body() gin.H {
	return gin.H{
		"message":    e.Message,
		"error":      e.Err,
		"statusCode": e.Status,
	}
}

func NewError(code int, msg string) *HTTPError {
	return &HTTPError{
		Status:  code,
		Message: msg,
		Err:     http.StatusText(code),
	}
}

func NotFound(msg string) *HTTPError {
	return NewError(http.StatusNotFound, msg)
}

func Forbidden(msg string) *HTTPError {
	return NewError(http.StatusForbidden, msg)
}

func Conflict(msg string) *HTTPError {
	return NewError(http.StatusConflict, msg)
}

func BadRequest(msg string) *HTTPError {
	return NewError(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) *HTTPError {
	return NewError(http.StatusUnauthorized, msg)
}

func InternalError() *HTTPError {
	return NewError(http.StatusInternalServerError, "Internal server error")
}

// FieldError 单个字段的校验失败信息
type FieldError struct {
	Property    string            `json:"property"`
	Value       any               `json:"value"`
	Constraints map[string]string `json:"constraints"`
}

func Validation(fields []FieldError) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: fields,
		Err:     "Validation Error",
	}
}

func Abort(c *gin.Context, err *HTTPError) {
	c.AbortWithStatusJSON(err.Status, err.Body())
}

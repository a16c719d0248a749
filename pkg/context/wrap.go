package context

import (
	"errors"
	"strconv"

	"KMate/pkg/log"
	"KMate/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// HandlerFunc 返回 error 的处理函数，由 Wrap 统一输出错误
type HandlerFunc func(*gin.Context) error

// MaxLimit 列表单次最多返回条数
const MaxLimit = 100

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			he := Translate(err)
			if he.Status >= 500 {
				log.L.Error("request failed",
					zap.String("method", c.Request.Method),
					zap.String("path", c.FullPath()),
					zap.Error(err),
				)
			}
			c.AbortWithStatusJSON(he.Status, he.Body())
		}
	}
}

// Translate 把 service / gorm / validator 错误映射为 HTTP 错误
func Translate(err error) *response.HTTPError {
	var he *response.HTTPError
	if errors.As(err, &he) {
		return he
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ValidationError(ve)
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return response.NotFound("Resource not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return response.Conflict("Resource already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return response.Conflict("Resource is still referenced")
	}
	return response.InternalError()
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, response.Unauthorized("Unauthorized")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, response.Unauthorized("Unauthorized")
	}

	return uid, nil
}

func GetRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}

// ParamID 读取正整数路径参数
func ParamID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.BadRequest("Validation failed (numeric string is expected)")
	}
	return id, nil
}

// Paging 分页参数: page 默认 1，limit 默认 10
func Paging(c *gin.Context) (page int, limit int) {
	page = 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	return page, Limit(c, 10)
}

// Limit 读取 limit，不超过 MaxLimit
func Limit(c *gin.Context, def int) int {
	return min(QueryInt(c, "limit", def), MaxLimit)
}

// QueryInt 读取可选整数参数
func QueryInt(c *gin.Context, name string, def int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil && v > 0 {
		return v
	}
	return def
}

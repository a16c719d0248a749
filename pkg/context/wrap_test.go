package context

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"KMate/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h HandlerFunc, target string, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Any("/t", Wrap(h))
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"http error", response.Forbidden("nope"), http.StatusForbidden, "nope"},
		{"wrapped http error", fmt.Errorf("svc: %w", response.NotFound("Place not found")), http.StatusNotFound, "Place not found"},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "Resource not found"},
		{"duplicated key", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), http.StatusConflict, "Resource already exists"},
		{"foreign key", gorm.ErrForeignKeyViolated, http.StatusConflict, "Resource is still referenced"},
		{"unknown", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			he := Translate(tc.err)
			assert.Equal(t, tc.status, he.Status)
			assert.Equal(t, tc.message, he.Message)
			assert.Equal(t, http.StatusText(tc.status), he.Err)
		})
	}
}

func TestWrap_ErrorBody(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		return errors.New("boom")
	}, "/t", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error","error":"Internal Server Error","statusCode":500}`, w.Body.String())
}

func TestWrap_Success(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		response.Success(c, gin.H{"ok": true})
		return nil
	}, "/t", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

type bindTarget struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"omitempty,oneof=trend community"`
}

func TestBindJSON_ValidationBody(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		var req bindTarget
		return BindJSON(c, &req)
	}, "/t", `{"kind":"blog"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message    []response.FieldError `json:"message"`
		Error      string                `json:"error"`
		StatusCode int                   `json:"statusCode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation Error", body.Error)
	assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	require.Len(t, body.Message, 2)

	assert.Equal(t, "name", body.Message[0].Property)
	assert.Equal(t, "", body.Message[0].Value)
	assert.Equal(t, map[string]string{"required": "name should not be empty"}, body.Message[0].Constraints)

	assert.Equal(t, "kind", body.Message[1].Property)
	assert.Equal(t, "blog", body.Message[1].Value)
	assert.Equal(t, map[string]string{"oneof": "kind must be one of the following values: trend, community"}, body.Message[1].Constraints)
}

func TestBindJSON_Malformed(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		var req bindTarget
		return BindJSON(c, &req)
	}, "/t", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"Bad Request"`)
}

func TestPagingAndLimit(t *testing.T) {
	cases := []struct {
		query string
		page  int
		limit int
		list  int
	}{
		{"", 1, 10, 10},
		{"?page=3&limit=20", 3, 20, 20},
		{"?page=0&limit=-5", 1, 10, 10},
		{"?limit=5000", 1, MaxLimit, MaxLimit},
		{"?page=abc&limit=abc", 1, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/t"+tc.query, nil)

			page, limit := Paging(c)
			assert.Equal(t, tc.page, page)
			assert.Equal(t, tc.limit, limit)
			assert.Equal(t, tc.list, Limit(c, 10))
		})
	}
}

func TestParamID(t *testing.T) {
	for _, raw := range []string{"0", "-1", "abc", "1.5"} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, err := ParamID(c, "id")
		assert.Error(t, err, raw)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := ParamID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"KMate/models"
	"KMate/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testIssuer = &jwt.Issuer{
	AccessSecret:  []byte("access"),
	RefreshSecret: []byte("refresh"),
	AccessTTL:     time.Hour,
	RefreshTTL:    time.Hour,
}

type router interface {
	RegisterRouter(r gin.IRouter)
}

func newEngine(routers ...router) *gin.Engine {
	r := gin.New()
	for _, h := range routers {
		h.RegisterRouter(r)
	}
	return r
}

func bearer(t *testing.T, uid uint64, role string) string {
	t.Helper()
	access, _, err := testIssuer.Pair(uid, "u@example.com", role)
	require.NoError(t, err)
	return "Bearer " + access
}

func userToken(t *testing.T, uid uint64) string {
	return bearer(t, uid, models.RoleUser)
}

func call(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

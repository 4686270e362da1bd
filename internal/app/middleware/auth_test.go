package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"directory-http-service/internal/error/code"
	"directory-http-service/internal/error/response"
	"directory-http-service/internal/infrastructure/config"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{APIKey: "test-secret-key"}
	r := gin.New()
	r.GET("/protected", APIKeyAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if apiKey != "" {
		req.Header.Set(APIKeyHeader, apiKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIKeyAuthMissingKey(t *testing.T) {
	r := newAuthTestRouter()

	w := doRequest(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, code.ErrAPIKeyMissing, body.Code)
}

func TestAPIKeyAuthWrongKey(t *testing.T) {
	r := newAuthTestRouter()

	w := doRequest(r, "wrong-key")
	require.Equal(t, http.StatusForbidden, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, code.ErrAPIKeyInvalid, body.Code)
}

func TestAPIKeyAuthValidKey(t *testing.T) {
	r := newAuthTestRouter()

	w := doRequest(r, "test-secret-key")
	require.Equal(t, http.StatusOK, w.Code)
}

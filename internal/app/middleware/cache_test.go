package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func contextForURL(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestCacheKeyIgnoresQueryOrder(t *testing.T) {
	a := cacheKey(contextForURL(t, "/api/v1/buildings/?limit=10&offset=20"))
	b := cacheKey(contextForURL(t, "/api/v1/buildings/?offset=20&limit=10"))

	require.Equal(t, a, b)
}

func TestCacheKeyDistinguishesPathAndParams(t *testing.T) {
	base := cacheKey(contextForURL(t, "/api/v1/buildings/?limit=10"))

	require.NotEqual(t, base, cacheKey(contextForURL(t, "/api/v1/activities/?limit=10")))
	require.NotEqual(t, base, cacheKey(contextForURL(t, "/api/v1/buildings/?limit=20")))
}

func TestCachePassThroughWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	InitCacheMiddleware(nil)

	r := gin.New()
	r.GET("/data", Cache(CacheConfig{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"value": 42})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

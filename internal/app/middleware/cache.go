package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// 全局Redis客户端，为nil时缓存中间件直接放行
var cacheClient *redis.Client

// InitCacheMiddleware 初始化响应缓存中间件
func InitCacheMiddleware(client *redis.Client) {
	cacheClient = client
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Expiration time.Duration // 缓存过期时间
}

// 缓存的响应内容
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// 捕获响应体的writer
type cacheBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheBodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// cacheKey 生成缓存键：路径 + 排序后的查询参数，做MD5哈希
func cacheKey(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var queryString string
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			queryString += key + "=" + value + "&"
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(path + "?" + queryString))
	return "respcache:" + hex.EncodeToString(hasher.Sum(nil))
}

// Cache 创建Redis响应缓存中间件，只缓存GET请求的200响应。
// Redis不可用时跳过缓存，不影响请求处理。
func Cache(cfg CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cacheClient == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		ctx := c.Request.Context()

		// 命中缓存直接返回
		if data, err := cacheClient.Get(ctx, key).Bytes(); err == nil {
			var cached cachedResponse
			if json.Unmarshal(data, &cached) == nil {
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		// 捕获响应体
		writer := &cacheBodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		// 只缓存成功的响应
		if writer.Status() == http.StatusOK {
			cached := cachedResponse{
				Status:      writer.Status(),
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			}
			if data, err := json.Marshal(cached); err == nil {
				cacheClient.Set(ctx, key, data, cfg.Expiration)
			}
		}
	}
}

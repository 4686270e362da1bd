// Package pagination 实现 limit/offset 分页：参数解析、{count, next, previous, results}
// 响应组装与翻页链接合成。
package pagination

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params 从查询字符串提取的分页参数
type Params struct {
	Limit  int
	Offset int
}

// Response 列表接口的统一响应结构
type Response struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// ParseParams 解析并校验 limit/offset 查询参数。
// limit 默认 defaultLimit，取值范围 [1, maxLimit]；offset 默认 0，不能为负。
// 越界或非整数一律返回错误，不做静默修正。
func ParseParams(c *gin.Context, defaultLimit, maxLimit int) (Params, error) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return Params{}, fmt.Errorf("limit 必须是整数")
	}
	if limit < 1 || limit > maxLimit {
		return Params{}, fmt.Errorf("limit 必须在 [1, %d] 范围内", maxLimit)
	}

	offsetStr := c.DefaultQuery("offset", "0")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		return Params{}, fmt.Errorf("offset 必须是整数")
	}
	if offset < 0 {
		return Params{}, fmt.Errorf("offset 不能为负数")
	}

	return Params{Limit: limit, Offset: offset}, nil
}

// BuildResponse 组装分页响应。results 必须是已取出的当前页数据，
// total 为忽略 limit/offset 的完整匹配数量。
// next 仅当 offset+limit < total 时存在；previous 仅当 offset > 0 时存在，
// 指向 max(offset-limit, 0)。两个链接都保留当前请求的其余查询参数。
func BuildResponse(c *gin.Context, results interface{}, total int64, limit, offset int) Response {
	requestURL := currentURL(c)

	var next *string
	if int64(offset+limit) < total {
		u := replacePageParams(requestURL, limit, offset+limit)
		next = &u
	}

	var previous *string
	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		u := replacePageParams(requestURL, limit, prevOffset)
		previous = &u
	}

	return Response{
		Count:    total,
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}

// currentURL 还原当前请求的完整URL（scheme + host + path + query）
func currentURL(c *gin.Context) string {
	u := *c.Request.URL
	if !u.IsAbs() {
		u.Scheme = "http"
		if c.Request.TLS != nil {
			u.Scheme = "https"
		}
		u.Host = c.Request.Host
	}
	return u.String()
}

// replacePageParams 替换URL中的 limit/offset，其余查询参数原样保留
func replacePageParams(rawURL string, limit, offset int) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	return u.String()
}

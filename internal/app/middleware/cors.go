/*
 * @Description: API 跨域中间件
 * @Author: 安知鱼
 * @Date: 2026-03-06 18:22:41
 * @LastEditTime: 2026-06-15 20:41:09
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Cors 对 /api/ 下的路由回显 Origin 并放行预检请求。
// 接口只有 GET 和 POST，且无认证头；Content-Disposition
// 需要显式暴露，否则浏览器拿不到导出文件名。
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api/") {
			origin := c.Request.Header.Get("Origin")

			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-Requested-With, Content-Length, Content-Disposition")
			c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Disposition")
			c.Header("Access-Control-Allow-Credentials", "true")

			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
		}

		c.Next()
	}
}

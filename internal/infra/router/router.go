/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-03-04 11:30:55
 * @LastEditTime: 2026-06-17 18:26:37
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/picmeta-app/internal/app/middleware"
	image_handler "github.com/anzhiyu-c/picmeta-app/pkg/handler/image"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		// 🚫 强制禁用所有形式的缓存
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")

		// 继续处理请求
		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	imageHandler *image_handler.ImageHandler
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(imageHandler *image_handler.ImageHandler) *Router {
	return &Router{
		imageHandler: imageHandler,
	}
}

// Setup 注册全部路由。
func (r *Router) Setup(engine *gin.Engine) {
	// 创建 /api 分组
	apiGroup := engine.Group("/api")
	// 应用全局反缓存中间件
	apiGroup.Use(NoCacheMiddleware())

	apiGroup.GET("/health", r.imageHandler.Health)

	r.registerImageRoutes(apiGroup)
}

func (r *Router) registerImageRoutes(api *gin.RouterGroup) {
	images := api.Group("/image")
	{
		// 解析是最贵的操作，单独限流
		images.POST("/analyze", middleware.AnalyzeRateLimit(), r.imageHandler.Analyze)
		images.POST("/analyze-batch", middleware.AnalyzeRateLimit(), r.imageHandler.AnalyzeBatch)

		images.GET("/list", r.imageHandler.List)
		images.GET("/export/csv", r.imageHandler.ExportCsv)
		images.GET("/export/json", r.imageHandler.ExportJson)
		images.GET("/keywords/popular", r.imageHandler.PopularKeywords)

		images.GET("/:id", r.imageHandler.Get)
		images.POST("/:id/keywords", r.imageHandler.SaveKeywords)
		images.POST("/:id/reset", r.imageHandler.Reset)
	}
}

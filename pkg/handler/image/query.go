/*
 * @Description: 图片元数据查询接口
 * @Author: 安知鱼
 * @Date: 2026-03-07 09:44:02
 * @LastEditTime: 2026-05-12 20:26:33
 * @LastEditors: 安知鱼
 */
package image

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anzhiyu-c/picmeta-app/internal/pkg/version"
	"github.com/anzhiyu-c/picmeta-app/pkg/constant"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/repository"
	"github.com/anzhiyu-c/picmeta-app/pkg/response"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/upload"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// List 分页查询元数据记录 (GET /api/image/list)
// @Summary      查询元数据列表
// @Tags         图片元数据
// @Produce      json
// @Param        userId   query  string  false  "按用户过滤"
// @Param        batchId  query  string  false  "按批次过滤"
// @Param        status   query  string  false  "按处理状态过滤"
// @Param        page     query  int     false  "页码，从1开始"
// @Param        pageSize query  int     false  "每页条数"
// @Success      200  {object}  response.Response  "查询成功"
// @Router       /image/list [get]
func (h *ImageHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	status := c.Query("status")
	if status != "" && !isValidStatus(status) {
		response.Fail(c, http.StatusBadRequest, "无效的处理状态: "+status)
		return
	}

	records, total, err := h.repo.List(c.Request.Context(), repository.ImageMetadataListOptions{
		UserID:  c.Query("userId"),
		BatchID: c.Query("batchId"),
		Status:  model.ProcessingStatus(status),
		Skip:    (page - 1) * pageSize,
		Take:    pageSize,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "查询失败: "+err.Error())
		return
	}

	dtos := make([]*model.ImageMetadataDto, 0, len(records))
	for _, m := range records {
		dtos = append(dtos, model.NewImageMetadataDto(m))
	}

	response.Success(c, gin.H{
		"list":     dtos,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	}, "查询成功")
}

// Get 按ID查询单条记录 (GET /api/image/:id)
// @Summary      查询单条元数据
// @Tags         图片元数据
// @Produce      json
// @Param        id  path  int  true  "记录ID"
// @Success      200  {object}  response.Response  "查询成功"
// @Failure      404  {object}  response.Response  "记录不存在"
// @Router       /image/{id} [get]
func (h *ImageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	metadata, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "记录不存在")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "查询失败: "+err.Error())
		return
	}

	response.Success(c, model.NewImageMetadataDto(metadata), "查询成功")
}

// Health 健康检查 (GET /api/health)
func (h *ImageHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status":           "ok",
		"version":          version.GetVersion(),
		"supportedFormats": upload.AllowedExtensions(),
		"maxFileSize":      h.uploadSvc.MaxFileSize(),
		"maxBatchFiles":    h.maxBatch,
	}, "服务正常")
}

func isValidStatus(s string) bool {
	switch model.ProcessingStatus(s) {
	case model.StatusPending, model.StatusProcessing, model.StatusCompleted, model.StatusFailed:
		return true
	}
	return false
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, http.StatusBadRequest, "无效的记录ID")
		return 0, false
	}
	return uint(id), true
}

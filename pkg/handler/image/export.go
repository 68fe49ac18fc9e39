/*
 * @Description: 元数据导出接口
 * @Author: 安知鱼
 * @Date: 2026-03-08 10:02:11
 * @LastEditTime: 2026-05-12 20:40:08
 * @LastEditors: 安知鱼
 */
package image

import (
	"fmt"
	"net/http"
	"time"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/repository"
	"github.com/anzhiyu-c/picmeta-app/pkg/response"

	"github.com/gin-gonic/gin"
)

// exportBatchLimit CSV/JSON 导出一次最多取多少条。
const exportBatchLimit = 10000

// ExportCsv 导出元数据为CSV (GET /api/image/export/csv)
// @Summary      导出CSV
// @Tags         图片元数据
// @Produce      text/csv
// @Param        userId   query  string  false  "按用户过滤"
// @Param        batchId  query  string  false  "按批次过滤"
// @Success      200  {string}  string  "CSV文件"
// @Router       /image/export/csv [get]
func (h *ImageHandler) ExportCsv(c *gin.Context) {
	records, ok := h.collectExportRecords(c)
	if !ok {
		return
	}

	csv := h.exportSvc.ExportToCsv(records)
	fileName := fmt.Sprintf("image-metadata-%s.csv", time.Now().Format("20060102-150405"))

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// ExportJson 导出元数据为JSON (GET /api/image/export/json)
// @Summary      导出JSON
// @Tags         图片元数据
// @Produce      json
// @Param        userId   query  string  false  "按用户过滤"
// @Param        batchId  query  string  false  "按批次过滤"
// @Success      200  {string}  string  "JSON文件"
// @Router       /image/export/json [get]
func (h *ImageHandler) ExportJson(c *gin.Context) {
	records, ok := h.collectExportRecords(c)
	if !ok {
		return
	}

	data, err := h.exportSvc.ExportToJson(records)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "导出失败: "+err.Error())
		return
	}

	fileName := fmt.Sprintf("image-metadata-%s.json", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(data))
}

func (h *ImageHandler) collectExportRecords(c *gin.Context) ([]*model.ImageMetadata, bool) {
	records, _, err := h.repo.List(c.Request.Context(), repository.ImageMetadataListOptions{
		UserID:  c.Query("userId"),
		BatchID: c.Query("batchId"),
		Take:    exportBatchLimit,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "查询导出数据失败: "+err.Error())
		return nil, false
	}
	return records, true
}

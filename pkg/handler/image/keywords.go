/*
 * @Description: 关键词管理接口
 * @Author: 安知鱼
 * @Date: 2026-03-08 14:25:50
 * @LastEditTime: 2026-06-01 11:13:27
 * @LastEditors: 安知鱼
 */
package image

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anzhiyu-c/picmeta-app/pkg/constant"
	"github.com/anzhiyu-c/picmeta-app/pkg/response"

	"github.com/gin-gonic/gin"
)

// SaveKeywordsRequest 是保存关键词接口的请求体。
type SaveKeywordsRequest struct {
	Keywords []string `json:"keywords" binding:"required"`
}

// SaveKeywords 覆盖保存一条记录的关键词 (POST /api/image/:id/keywords)
// @Summary      保存关键词
// @Description  规范化后覆盖保存指定记录的关键词列表
// @Tags         图片元数据
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "记录ID"
// @Param        body  body  SaveKeywordsRequest  true  "关键词列表"
// @Success      200  {object}  response.Response  "保存成功"
// @Failure      404  {object}  response.Response  "记录不存在"
// @Router       /image/{id}/keywords [post]
func (h *ImageHandler) SaveKeywords(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req SaveKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	if err := h.keywordSvc.SaveKeywords(c.Request.Context(), id, req.Keywords); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "记录不存在")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "保存关键词失败: "+err.Error())
		return
	}

	response.Success(c, nil, "保存成功")
}

// PopularKeywords 查询出现频率最高的关键词 (GET /api/image/keywords/popular)
// @Summary      热门关键词
// @Tags         图片元数据
// @Produce      json
// @Param        count  query  int  false  "返回数量，默认20"
// @Success      200  {object}  response.Response  "查询成功"
// @Router       /image/keywords/popular [get]
func (h *ImageHandler) PopularKeywords(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "20"))
	if count < 1 {
		count = 20
	}

	keywords, err := h.keywordSvc.GetPopularKeywords(c.Request.Context(), count)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "查询热门关键词失败: "+err.Error())
		return
	}

	response.Success(c, keywords, "查询成功")
}

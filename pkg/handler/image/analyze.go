/*
 * @Description: 图片解析接口 (单文件 / 批量)
 * @Author: 安知鱼
 * @Date: 2026-03-07 00:31:18
 * @LastEditTime: 2026-06-14 17:02:40
 * @LastEditors: 安知鱼
 */
package image

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/anzhiyu-c/picmeta-app/pkg/constant"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
	"github.com/anzhiyu-c/picmeta-app/pkg/response"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/upload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RejectedFile 描述一个未进入管线的文件及其全部拒绝原因。
type RejectedFile struct {
	FileName string   `json:"fileName"`
	Reasons  []string `json:"reasons"`
}

// BatchResult 是批量解析接口的返回载荷。
type BatchResult struct {
	BatchID  string                    `json:"batchId"`
	Results  []*model.ImageMetadataDto `json:"results"`
	Rejected []RejectedFile            `json:"rejected,omitempty"`
}

// Analyze 处理单文件解析请求 (POST /api/image/analyze)
// @Summary      解析单张图片
// @Description  上传一张图片并提取其元数据
// @Tags         图片元数据
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "图片文件"
// @Success      201  {object}  response.Response  "解析完成"
// @Failure      400  {object}  response.Response  "文件无效"
// @Failure      409  {object}  response.Response  "相同内容的文件已存在"
// @Router       /image/analyze [post]
func (h *ImageHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "请求中缺少文件: "+err.Error())
		return
	}

	if reasons := h.uploadSvc.ValidateFile(fileHeader.Filename, fileHeader.Size, contentTypeOf(fileHeader)); len(reasons) > 0 {
		status := http.StatusBadRequest
		if errors.Is(reasons[0], constant.ErrFileTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		response.Fail(c, status, "文件校验失败: "+reasons[0].Error())
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "无法读取上传文件: "+err.Error())
		return
	}
	defer src.Close()

	userID := c.Query("userId")
	metadata := h.uploadSvc.ProcessFile(c.Request.Context(), upload.FileInput{
		FileName:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: contentTypeOf(fileHeader),
		Reader:      src,
	})
	if userID != "" {
		metadata.UserID = &userID
	}

	if err := h.repo.Create(c.Request.Context(), metadata); err != nil {
		if errors.Is(err, constant.ErrConflict) {
			response.Fail(c, http.StatusConflict, "相同内容的文件已存在")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "保存解析结果失败: "+err.Error())
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, model.NewImageMetadataDto(metadata), "解析完成")
}

// AnalyzeBatch 处理批量解析请求 (POST /api/image/analyze-batch)
// @Summary      批量解析图片
// @Description  一次上传多张图片并提取元数据，单文件失败不影响其余文件
// @Tags         图片元数据
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "图片文件列表"
// @Success      200  {object}  response.Response  "批量解析完成"
// @Failure      400  {object}  response.Response  "请求无效或超出批量上限"
// @Router       /image/analyze-batch [post]
func (h *ImageHandler) AnalyzeBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的 multipart 请求: "+err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		response.Fail(c, http.StatusBadRequest, "请求中没有文件")
		return
	}
	if len(files) > h.maxBatch {
		response.Fail(c, http.StatusBadRequest,
			fmt.Sprintf("单批最多允许 %d 个文件，收到 %d 个", h.maxBatch, len(files)))
		return
	}

	batchID := uuid.NewString()
	userID := c.Query("userId")

	result := &BatchResult{BatchID: batchID}
	for _, fh := range files {
		// 准入校验失败的文件不产生记录，只进入拒绝列表
		if reasons := h.uploadSvc.ValidateFile(fh.Filename, fh.Size, contentTypeOf(fh)); len(reasons) > 0 {
			result.Rejected = append(result.Rejected, RejectedFile{FileName: fh.Filename, Reasons: reasonStrings(reasons)})
			continue
		}

		metadata := h.processOne(c, fh, batchID, userID)
		result.Results = append(result.Results, model.NewImageMetadataDto(metadata))
	}

	log.Printf("[ImageHandler] 批次 %s 完成: %d 个已处理, %d 个被拒绝。",
		batchID, len(result.Results), len(result.Rejected))
	response.Success(c, result, "批量解析完成")
}

// processOne 处理批次内的单个文件并持久化，打开失败等同于管线失败，仍产出记录。
func (h *ImageHandler) processOne(c *gin.Context, fh *multipart.FileHeader, batchID, userID string) *model.ImageMetadata {
	var metadata *model.ImageMetadata

	src, err := fh.Open()
	if err != nil {
		metadata = model.NewImageMetadata(fh.Filename, uint64(fh.Size), contentTypeOf(fh))
		metadata.MarkAsFailed("无法读取上传文件: " + err.Error())
	} else {
		metadata = h.uploadSvc.ProcessFile(c.Request.Context(), upload.FileInput{
			FileName:    fh.Filename,
			Size:        fh.Size,
			ContentType: contentTypeOf(fh),
			Reader:      src,
		})
		src.Close()
	}

	metadata.BatchID = &batchID
	if userID != "" {
		metadata.UserID = &userID
	}

	if err := h.repo.Create(c.Request.Context(), metadata); err != nil {
		if errors.Is(err, constant.ErrConflict) {
			log.Printf("[ImageHandler] 提示: 文件 %s 与已有记录内容相同，未重复入库。", fh.Filename)
			metadata.MarkAsFailed("相同内容的文件已存在")
		} else {
			log.Printf("[ImageHandler] 错误: 保存文件 %s 的记录失败: %v", fh.Filename, err)
		}
	}
	return metadata
}

// Reset 把一条记录重置为待处理状态 (POST /api/image/:id/reset)
// @Summary      重置处理状态
// @Tags         图片元数据
// @Produce      json
// @Param        id  path  int  true  "记录ID"
// @Success      200  {object}  response.Response  "已重置"
// @Failure      404  {object}  response.Response  "记录不存在"
// @Router       /image/{id}/reset [post]
func (h *ImageHandler) Reset(c *gin.Context) {
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
		response.Fail(c, http.StatusInternalServerError, "查询记录失败: "+err.Error())
		return
	}

	metadata.ResetProcessingState()
	if err := h.repo.Update(c.Request.Context(), metadata); err != nil {
		response.Fail(c, http.StatusInternalServerError, "重置失败: "+err.Error())
		return
	}

	response.Success(c, model.NewImageMetadataDto(metadata), "已重置")
}

func contentTypeOf(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}

func reasonStrings(reasons []error) []string {
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, r.Error())
	}
	return out
}

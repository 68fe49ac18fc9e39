/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-03-07 00:12:25
 * @LastEditTime: 2026-05-30 15:19:39
 * @LastEditors: 安知鱼
 */
package image

import (
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/repository"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/export"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/keyword"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/upload"
)

// ImageHandler 负责处理所有与图片元数据相关的HTTP请求
type ImageHandler struct {
	uploadSvc  *upload.Service
	keywordSvc *keyword.Service
	exportSvc  *export.Service
	repo       repository.ImageMetadataRepository
	maxBatch   int
}

// NewHandler 是 ImageHandler 的构造函数
func NewHandler(
	uploadSvc *upload.Service,
	keywordSvc *keyword.Service,
	exportSvc *export.Service,
	repo repository.ImageMetadataRepository,
	maxBatch int,
) *ImageHandler {
	if maxBatch <= 0 {
		maxBatch = 10
	}
	return &ImageHandler{
		uploadSvc:  uploadSvc,
		keywordSvc: keywordSvc,
		exportSvc:  exportSvc,
		repo:       repo,
		maxBatch:   maxBatch,
	}
}

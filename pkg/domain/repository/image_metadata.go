/*
 * @Description: 图片元数据仓储接口
 * @Author: 安知鱼
 * @Date: 2026-03-04 14:11:09
 * @LastEditTime: 2026-04-25 10:18:36
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
)

// ImageMetadataListOptions 组合查询条件，Skip/Take 实现分页。
type ImageMetadataListOptions struct {
	UserID  string
	BatchID string
	Status  model.ProcessingStatus
	Skip    int
	Take    int
}

// ImageMetadataRepository 定义元数据记录的持久化能力。
// 核心管线不直接依赖具体实现，由外层注入。
type ImageMetadataRepository interface {
	// Create 持久化一条新记录并回填 ID。
	Create(ctx context.Context, m *model.ImageMetadata) error

	// Update 按 ID 覆盖保存。
	Update(ctx context.Context, m *model.ImageMetadata) error

	// FindByID 按主键查找，未找到返回 constant.ErrNotFound。
	FindByID(ctx context.Context, id uint) (*model.ImageMetadata, error)

	// FindByHash 按内容指纹查找（去重入口），未找到返回 constant.ErrNotFound。
	FindByHash(ctx context.Context, hash string) (*model.ImageMetadata, error)

	// List 按条件分页查询，返回记录和总数。
	List(ctx context.Context, opts ImageMetadataListOptions) ([]*model.ImageMetadata, int, error)

	// AllKeywordStrings 返回所有非空的关键词字段原始串，用于热门关键词统计。
	AllKeywordStrings(ctx context.Context) ([]string, error)

	// ResetStuckProcessing 把卡在 Processing 状态超过 olderThan 的记录重置为
	// Pending，返回受影响的行数。由后台定时任务调用。
	ResetStuckProcessing(ctx context.Context, olderThan time.Duration) (int, error)
}

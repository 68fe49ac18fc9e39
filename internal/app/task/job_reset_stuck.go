/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-03-10 15:23:10
 * @LastEditTime: 2026-04-22 12:29:31
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"
	"time"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/repository"
)

// stuckThreshold 处理中的记录超过这个时长没有任何更新，就认为管线已失联。
const stuckThreshold = 30 * time.Minute

// ResetStuckProcessingJob 负责把卡死的处理中记录重置回待处理状态
type ResetStuckProcessingJob struct {
	metadataRepo repository.ImageMetadataRepository
}

// NewResetStuckProcessingJob 是任务的构造函数
func NewResetStuckProcessingJob(metadataRepo repository.ImageMetadataRepository) *ResetStuckProcessingJob {
	return &ResetStuckProcessingJob{
		metadataRepo: metadataRepo,
	}
}

// Run 是 Job 接口要求实现的方法
func (j *ResetStuckProcessingJob) Run() {
	resetCount, err := j.metadataRepo.ResetStuckProcessing(context.Background(), stuckThreshold)
	if err != nil {
		// 日志由 wrapper 统一处理，这里可以只处理错误本身
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
	} else if resetCount > 0 {
		log.Printf("任务 '%s' 业务逻辑执行完毕，共重置了 %d 条卡死记录。", j.Name(), resetCount)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名
func (j *ResetStuckProcessingJob) Name() string {
	return "ResetStuckProcessingJob"
}

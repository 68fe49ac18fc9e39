/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-03-12 09:40:33
 * @LastEditTime: 2026-04-22 12:30:02
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"

	"github.com/anzhiyu-c/picmeta-app/pkg/service/keyword"
)

// warmupKeywordCount 预热时统计的关键词数量，覆盖接口的默认取值。
const warmupKeywordCount = 50

// PopularKeywordsWarmupJob 定期重建热门关键词缓存，避免首个请求扫全表
type PopularKeywordsWarmupJob struct {
	keywordSvc *keyword.Service
}

// NewPopularKeywordsWarmupJob 是任务的构造函数
func NewPopularKeywordsWarmupJob(keywordSvc *keyword.Service) *PopularKeywordsWarmupJob {
	return &PopularKeywordsWarmupJob{
		keywordSvc: keywordSvc,
	}
}

// Run 是 Job 接口要求实现的方法
func (j *PopularKeywordsWarmupJob) Run() {
	keywords, err := j.keywordSvc.GetPopularKeywords(context.Background(), warmupKeywordCount)
	if err != nil {
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
	} else {
		log.Printf("任务 '%s' 业务逻辑执行完毕，缓存了 %d 个热门关键词。", j.Name(), len(keywords))
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名
func (j *PopularKeywordsWarmupJob) Name() string {
	return "PopularKeywordsWarmupJob"
}

/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-03-05 16:09:46
 * @LastEditTime: 2026-06-03 18:20:00
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"os"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/repository"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/keyword"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	// 在这里注入所有任务可能需要的依赖
	metadataRepo repository.ImageMetadataRepository
	keywordSvc   *keyword.Service
}

// NewScheduler 是 Scheduler 的构造函数。
func NewScheduler(metadataRepo repository.ImageMetadataRepository, keywordSvc *keyword.Service) *Scheduler {
	// 1. 创建一个 slog.Logger 实例，并为其添加一个固定的 "system":"cron" 属性。
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	// 2. 创建一个新的 cron 调度器实例，并将 logger 传递给装饰器。
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron:         c,
		logger:       logger,
		metadataRepo: metadataRepo,
		keywordSvc:   keywordSvc,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	// --- 任务1: 恢复卡死的处理中记录 ---
	resetJob := NewResetStuckProcessingJob(s.metadataRepo)

	_, err := s.cron.AddJob("0 */10 * * * *", resetJob)
	if err != nil {
		s.logger.Error("Failed to add 'ResetStuckProcessingJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'ResetStuckProcessingJob'", "schedule", "every 10 minutes")

	// --- 任务2: 预热热门关键词缓存 ---
	if s.keywordSvc != nil {
		warmupJob := NewPopularKeywordsWarmupJob(s.keywordSvc)
		_, err = s.cron.AddJob("0 5 * * * *", warmupJob)
		if err != nil {
			s.logger.Error("Failed to add 'PopularKeywordsWarmupJob'", slog.Any("error", err))
			os.Exit(1)
		}
		s.logger.Info("-> Successfully registered 'PopularKeywordsWarmupJob'", "schedule", "every hour at :05:00")
	}

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 优雅地停止 cron 调度器。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}

/*
 * @Description: 图片批处理管线：缓冲、指纹、尺寸探测、解析器扇出、AI 增强、关键词合并
 * @Author: 安知鱼
 * @Date: 2026-03-05 11:20:08
 * @LastEditTime: 2026-05-21 18:03:36
 * @LastEditors: 安知鱼
 */
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/anzhiyu-c/picmeta-app/pkg/constant"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/repository"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/ai"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/keyword"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/parser"
	"github.com/anzhiyu-c/picmeta-app/pkg/util/hashutil"

	"github.com/gabriel-vasile/mimetype"
	"github.com/redis/go-redis/v9"

	// 尺寸探测依赖的解码器注册
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultMaxFileSize 单文件大小上限 50MB。
const DefaultMaxFileSize = 50 << 20

// 允许的内容类型与扩展名（API 边界的准入校验）
var (
	allowedMimeTypes = []string{
		"image/jpeg", "image/jpg", "image/png", "image/gif",
		"image/bmp", "image/webp", "image/svg+xml", "image/tiff",
	}
	allowedExtensions = []string{
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".svg",
		".tiff", ".tif", ".ico", ".avif", ".heic", ".heif",
	}
)

// AllowedExtensions 返回准入扩展名列表的副本，供健康检查等只读用途。
func AllowedExtensions() []string {
	return append([]string(nil), allowedExtensions...)
}

// FileInput 是管线的输入：一个带名字、声明大小和声明类型的字节流。
type FileInput struct {
	FileName    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// Service 驱动单文件七阶段处理管线和批量编排。
// repo 和 rdb 都允许为 nil：去重索引是尽力而为的外部能力，不属于管线核心。
type Service struct {
	parsers     []parser.ImageParser
	analyzer    ai.Analyzer
	keywordSvc  *keyword.Service
	repo        repository.ImageMetadataRepository
	rdb         *redis.Client
	maxFileSize int64
}

// NewService 构造函数。parsers 的顺序即字段合并的优先级。
func NewService(
	parsers []parser.ImageParser,
	analyzer ai.Analyzer,
	keywordSvc *keyword.Service,
	repo repository.ImageMetadataRepository,
	rdb *redis.Client,
	maxFileSize int64,
) *Service {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Service{
		parsers:     parsers,
		analyzer:    analyzer,
		keywordSvc:  keywordSvc,
		repo:        repo,
		rdb:         rdb,
		maxFileSize: maxFileSize,
	}
}

// MaxFileSize 当前生效的单文件大小上限（字节）。
func (s *Service) MaxFileSize() int64 {
	return s.maxFileSize
}

// ValidateFile 在进入管线前做准入校验，返回全部拒绝原因；空切片表示通过。
// 大小和类型的拒绝分别包装 constant.ErrFileTooLarge / constant.ErrUnsupportedFormat，
// 调用方可以据此映射 HTTP 状态码。被拒绝的文件不会产生任何记录。
func (s *Service) ValidateFile(fileName string, size int64, contentType string) []error {
	var reasons []error

	if size == 0 {
		reasons = append(reasons, errors.New("文件为空"))
	}
	if size > s.maxFileSize {
		reasons = append(reasons, fmt.Errorf("%w，上限为 %s", constant.ErrFileTooLarge, model.FormatFileSize(uint64(s.maxFileSize))))
	}

	typeOK := false
	for _, mt := range allowedMimeTypes {
		if strings.EqualFold(contentType, mt) {
			typeOK = true
			break
		}
	}
	if !typeOK {
		ext := strings.ToLower(filepath.Ext(fileName))
		for _, allowed := range allowedExtensions {
			if ext == allowed {
				typeOK = true
				break
			}
		}
	}
	if !typeOK {
		reasons = append(reasons, fmt.Errorf("%w，允许的格式: %s", constant.ErrUnsupportedFormat, strings.Join(allowedExtensions, ", ")))
	}

	return reasons
}

// ProcessBatch 按输入顺序逐个处理文件，返回与输入一一对应的记录。
// 单个文件的失败绝不影响其他文件，返回切片总是与输入等长。
func (s *Service) ProcessBatch(ctx context.Context, inputs []FileInput) []*model.ImageMetadata {
	results := make([]*model.ImageMetadata, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, s.ProcessFile(ctx, input))
	}
	return results
}

// ProcessFile 对单个文件执行完整管线。永不向调用方抛出：
// 缓冲阶段失败时记录置为 Failed；降级阶段（尺寸、单个解析器、AI）
// 失败只写日志，字段保持缺失，记录仍可到达 Completed。
func (s *Service) ProcessFile(ctx context.Context, input FileInput) (metadata *model.ImageMetadata) {
	metadata = model.NewImageMetadata(input.FileName, uint64(input.Size), input.ContentType)

	// 注册的解析器可能来自外部，panic 视为该条目的致命失败
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[Pipeline] 错误: 处理文件 %s 时发生异常: %v", input.FileName, rec)
			metadata.MarkAsFailed(fmt.Sprintf("processing panicked: %v", rec))
		}
	}()

	// 阶段1: 把输入流完整物化为可寻址的内存缓冲，后续阶段都从头重读
	data, err := s.materialize(input)
	if err != nil {
		log.Printf("[Pipeline] 错误: 缓冲文件 %s 失败: %v", input.FileName, err)
		metadata.MarkAsFailed(fmt.Sprintf("failed to buffer file: %v", err))
		return metadata
	}
	metadata.FileSizeBytes = uint64(len(data))

	if metadata.MimeType == nil {
		detected := mimetype.Detect(data).String()
		metadata.MimeType = &detected
	}

	// 阶段2: 内容指纹
	hash := hashutil.MD5Hex(data)
	metadata.FileHash = &hash
	s.noteDuplicate(ctx, hash, input.FileName)

	// 阶段3: 基础尺寸探测，失败降级
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		w, h := uint(cfg.Width), uint(cfg.Height)
		metadata.Width = &w
		metadata.Height = &h
	} else {
		log.Printf("[Pipeline] 警告: 无法探测文件 %s 的尺寸: %v", input.FileName, err)
	}

	// 阶段4: 解析器扇出，每个适用的解析器从位置0读取，结果按注册顺序 first-wins 合并
	for _, p := range s.parsers {
		if !p.ValidateFile(input.FileName, bytes.NewReader(data)) {
			continue
		}
		extracted := p.ParseMetadata(ctx, bytes.NewReader(data), input.FileName)
		if extracted == nil {
			continue
		}
		if extracted.HasErrors() {
			log.Printf("[Pipeline] 警告: 解析器 %T 处理文件 %s 失败: %s", p, input.FileName, *extracted.ErrorMessage)
		}
		parser.Merge(metadata, extracted)
	}

	// 阶段5: AI 增强，任何失败（包括超时）都不会使条目失败
	s.enrichWithAiAnalysis(ctx, metadata, data)

	// 阶段6: 对合并完成的记录做关键词提取
	metadata.SetKeywordList(s.keywordSvc.ExtractKeywords(metadata))

	// 阶段7: 终态
	metadata.MarkAsCompleted()
	log.Printf("[Pipeline] 文件 %s 处理完成。", input.FileName)
	return metadata
}

// materialize 把输入读进内存并执行大小上限，超限文件在任何处理开始前就被拒绝。
func (s *Service) materialize(input FileInput) ([]byte, error) {
	if input.Reader == nil {
		return nil, fmt.Errorf("输入流为空")
	}
	data, err := io.ReadAll(io.LimitReader(input.Reader, s.maxFileSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("文件超过 %s 上限", model.FormatFileSize(uint64(s.maxFileSize)))
	}
	return data, nil
}

// noteDuplicate 尽力而为地维护共享去重索引；索引不可用时静默跳过。
func (s *Service) noteDuplicate(ctx context.Context, hash, fileName string) {
	if s.rdb != nil {
		// SETNX 保证并发批次下同一指纹只被首个写入者占据
		ok, err := s.rdb.SetNX(ctx, "picmeta:dedup:"+hash, fileName, 0).Result()
		if err == nil && !ok {
			log.Printf("[Pipeline] 提示: 文件 %s 的内容指纹 %s 已存在，可能是重复上传。", fileName, hash)
		}
		return
	}
	if s.repo != nil {
		if existing, err := s.repo.FindByHash(ctx, hash); err == nil && existing != nil {
			log.Printf("[Pipeline] 提示: 文件 %s 与已有记录 #%d 内容相同。", fileName, existing.ID)
		}
	}
}

func (s *Service) enrichWithAiAnalysis(ctx context.Context, metadata *model.ImageMetadata, data []byte) {
	if s.analyzer == nil {
		return
	}

	result, err := s.analyzer.Analyze(ctx, bytes.NewReader(data), metadata.FileName)
	if err != nil {
		log.Printf("[Pipeline] 警告: 文件 %s 的AI分析失败: %v", metadata.FileName, err)
		return
	}

	if result.Description != "" {
		metadata.AiAnalysis = &result.Description
	}

	// AI 关键词并入现有关键词集合，保持先来者在前
	if len(result.Keywords) > 0 {
		existing := metadata.KeywordList()
		seen := make(map[string]struct{}, len(existing))
		for _, kw := range existing {
			seen[strings.ToLower(kw)] = struct{}{}
		}
		for _, kw := range result.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			if _, dup := seen[strings.ToLower(kw)]; dup {
				continue
			}
			seen[strings.ToLower(kw)] = struct{}{}
			existing = append(existing, kw)
		}
		metadata.SetKeywordList(existing)
	}
}

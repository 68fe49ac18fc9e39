/*
 * @Description: 关键词提取与归一化服务
 * @Author: 安知鱼
 * @Date: 2026-03-04 15:02:48
 * @LastEditTime: 2026-05-20 09:41:27
 * @LastEditors: 安知鱼
 */
package keyword

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/repository"

	"github.com/redis/go-redis/v9"
)

// 停用词表是固定的硬编码集合，不可配置。
// 包含冠词、介词、常见无信息量词，以及 image/photo/picture/file 这类与图片无关紧要的字面词。
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "by": {},
	"for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {}, "it": {}, "its": {},
	"of": {}, "on": {}, "that": {}, "the": {}, "to": {}, "was": {}, "will": {}, "with": {},
	"image": {}, "photo": {}, "picture": {}, "file": {},
}

// 描述文本的分词分隔符：空白加常见标点
func isTokenSeparator(r rune) bool {
	switch r {
	case '.', ',', ';', '!', '?':
		return true
	}
	return unicode.IsSpace(r)
}

const popularKeywordsCacheKey = "picmeta:keywords:popular"

// Service 负责关键词的提取、归一化、热门统计与手动保存。
// redis 客户端可以为 nil，此时热门关键词统计直接走数据库。
type Service struct {
	repo repository.ImageMetadataRepository
	rdb  *redis.Client
}

// NewService 构造函数
func NewService(repo repository.ImageMetadataRepository, rdb *redis.Client) *Service {
	return &Service{repo: repo, rdb: rdb}
}

// ExtractKeywords 从一条完整合并后的记录中派生归一化、去重、升序排列的关键词列表。
// 纯函数语义：确定性、无 I/O、永不失败（内部异常被捕获并返回空列表）。
func (s *Service) ExtractKeywords(metadata *model.ImageMetadata) (result []string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[KeywordService] 警告: 为 %s 提取关键词时发生异常: %v", metadata.FileName, rec)
			result = []string{}
		}
	}()
	return extractKeywords(metadata)
}

func extractKeywords(metadata *model.ImageMetadata) []string {
	seen := make(map[string]struct{})
	add := func(raw string) {
		cleaned := CleanKeyword(raw)
		if cleaned == "" {
			return
		}
		seen[cleaned] = struct{}{}
	}

	// 1. 种子：已有关键词字段（逗号/分号分隔）
	if metadata.Keywords != nil {
		for _, kw := range strings.FieldsFunc(*metadata.Keywords, func(r rune) bool { return r == ',' || r == ';' }) {
			add(kw)
		}
	}

	// 2. 结构化字段：相机厂商/型号、位置分段、作者
	if metadata.CameraMake != nil {
		add(*metadata.CameraMake)
	}
	if metadata.CameraModel != nil {
		add(*metadata.CameraModel)
	}
	if metadata.LocationName != nil {
		for _, part := range strings.Split(*metadata.LocationName, ",") {
			add(part)
		}
	}
	if metadata.Artist != nil {
		add(*metadata.Artist)
	}

	// 3. 自由文本：描述与 AI 分析按词切分
	if metadata.Description != nil {
		for _, word := range tokenizeText(*metadata.Description) {
			seen[word] = struct{}{}
		}
	}
	if metadata.AiAnalysis != nil {
		for _, word := range tokenizeText(*metadata.AiAnalysis) {
			seen[word] = struct{}{}
		}
	}

	// 4. 技术阈值关键词
	for _, kw := range technicalKeywords(metadata) {
		seen[kw] = struct{}{}
	}

	// 5. 终检: 去掉停用词和过短词条，升序排列
	result := make([]string, 0, len(seen))
	for kw := range seen {
		if len(kw) <= 2 {
			continue
		}
		if _, isStop := stopWords[kw]; isStop {
			continue
		}
		result = append(result, kw)
	}
	sort.Strings(result)
	return result
}

// technicalKeywords 按相机参数阈值派生技术性关键词，各条件独立判断。
func technicalKeywords(metadata *model.ImageMetadata) []string {
	var kws []string

	if metadata.CameraMake != nil {
		cameraMake := strings.ToLower(*metadata.CameraMake)
		for _, brand := range []string{"canon", "nikon", "sony"} {
			if strings.Contains(cameraMake, brand) {
				kws = append(kws, brand)
			}
		}
	}

	if metadata.Iso != nil {
		if *metadata.Iso >= 3200 {
			kws = append(kws, "high-iso")
		} else if *metadata.Iso <= 200 {
			kws = append(kws, "low-iso")
		}
	}

	if metadata.Aperture != nil {
		if *metadata.Aperture <= 2.8 {
			kws = append(kws, "wide-aperture")
		} else if *metadata.Aperture >= 8 {
			kws = append(kws, "narrow-aperture")
		}
	}

	if metadata.FocalLength != nil {
		if *metadata.FocalLength <= 35 {
			kws = append(kws, "wide-angle")
		} else if *metadata.FocalLength >= 85 {
			kws = append(kws, "telephoto")
		}
	}

	if metadata.GpsLatitude != nil && metadata.GpsLongitude != nil {
		kws = append(kws, "geotagged", "location-data")
	}

	return kws
}

// tokenizeText 把自由文本切分成已清理、去重、过滤后的词条。
func tokenizeText(text string) []string {
	if text == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var words []string
	for _, token := range strings.FieldsFunc(text, isTokenSeparator) {
		cleaned := CleanKeyword(token)
		if cleaned == "" || len(cleaned) <= 2 {
			continue
		}
		if _, isStop := stopWords[cleaned]; isStop {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		words = append(words, cleaned)
	}
	return words
}

// CleanKeyword 清理单个关键词：只保留字母、数字、空白、连字符和下划线，去首尾空白并转小写。
func CleanKeyword(keyword string) string {
	var b strings.Builder
	for _, r := range keyword {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

// NormalizeKeywords 清理、去重（大小写不敏感）并升序排列一组关键词。
func NormalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		cleaned := CleanKeyword(kw)
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		result = append(result, cleaned)
	}
	sort.Strings(result)
	return result
}

// GetPopularKeywords 返回出现频次最高的 count 个关键词。
// Redis 可用时缓存统计结果，失效时间 10 分钟。
func (s *Service) GetPopularKeywords(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		count = 50
	}

	cacheKey := fmt.Sprintf("%s:%d", popularKeywordsCacheKey, count)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			return strings.Split(cached, "\n"), nil
		}
	}

	raws, err := s.repo.AllKeywordStrings(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询关键词字段失败: %w", err)
	}

	counts := make(map[string]int)
	for _, raw := range raws {
		for _, kw := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
			cleaned := CleanKeyword(kw)
			if cleaned != "" {
				counts[cleaned]++
			}
		}
	}

	keywords := make([]string, 0, len(counts))
	for kw := range counts {
		keywords = append(keywords, kw)
	}
	// 频次降序，同频按字典序保证稳定
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})
	if len(keywords) > count {
		keywords = keywords[:count]
	}

	if s.rdb != nil && len(keywords) > 0 {
		if err := s.rdb.Set(ctx, cacheKey, strings.Join(keywords, "\n"), 10*time.Minute).Err(); err != nil {
			log.Printf("[KeywordService] 警告: 写入热门关键词缓存失败: %v", err)
		}
	}

	return keywords, nil
}

// SaveKeywords 手动保存某条记录的关键词：归一化后写回并更新时间戳。
func (s *Service) SaveKeywords(ctx context.Context, imageID uint, keywords []string) error {
	metadata, err := s.repo.FindByID(ctx, imageID)
	if err != nil {
		return err
	}

	metadata.SetKeywordList(NormalizeKeywords(keywords))
	metadata.Touch()

	if err := s.repo.Update(ctx, metadata); err != nil {
		return fmt.Errorf("保存关键词失败: %w", err)
	}

	s.invalidatePopularCache(ctx)
	return nil
}

func (s *Service) invalidatePopularCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	iter := s.rdb.Scan(ctx, 0, popularKeywordsCacheKey+":*", 100).Iterator()
	for iter.Next(ctx) {
		s.rdb.Del(ctx, iter.Val())
	}
}

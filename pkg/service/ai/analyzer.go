/*
 * @Description: 外部 AI 图像分析服务的客户端与内置占位实现
 * @Author: 安知鱼
 * @Date: 2026-03-05 09:30:12
 * @LastEditTime: 2026-05-20 10:14:55
 * @LastEditors: 安知鱼
 */
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/anzhiyu-c/picmeta-app/pkg/config"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
)

// Analyzer 是外部 AI 分析服务的接口。
// 调用方保证传入的流位于起始位置；分析失败只会降级，不应中断整体流程。
type Analyzer interface {
	Analyze(ctx context.Context, r io.Reader, fileName string) (*model.AiAnalysisResult, error)
}

// NewAnalyzerFromConfig 按配置选择实现：未启用或未配置端点时使用占位分析器。
func NewAnalyzerFromConfig(cfg *config.Config) Analyzer {
	if !cfg.GetBool(config.KeyAIEnabled) {
		log.Println("[AiAnalyzer] AI 分析未启用，使用占位分析器。")
		return &PlaceholderAnalyzer{}
	}
	endpoint := cfg.GetString(config.KeyAIEndpoint)
	if endpoint == "" {
		log.Println("[AiAnalyzer] 警告: AI 分析已启用但未配置端点，退回占位分析器。")
		return &PlaceholderAnalyzer{}
	}

	timeout := time.Duration(cfg.GetInt(config.KeyAITimeoutSeconds)) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPAnalyzer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// PlaceholderAnalyzer 在未接入真实 AI 服务时返回固定的占位结果。
type PlaceholderAnalyzer struct{}

// Analyze 实现 Analyzer 接口
func (a *PlaceholderAnalyzer) Analyze(_ context.Context, _ io.Reader, fileName string) (*model.AiAnalysisResult, error) {
	log.Printf("[AiAnalyzer] 占位分析完成: %s", fileName)
	return &model.AiAnalysisResult{
		Description: "AI analysis is not configured. This is a placeholder description.",
		Keywords:    []string{"placeholder", "no-ai-service"},
		Confidence:  0,
	}, nil
}

// HTTPAnalyzer 以 multipart 上传方式调用远端分析服务。
type HTTPAnalyzer struct {
	endpoint string
	client   *http.Client
}

// Analyze 实现 Analyzer 接口
func (a *HTTPAnalyzer) Analyze(ctx context.Context, r io.Reader, fileName string) (*model.AiAnalysisResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("构建分析请求失败: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("构建分析请求失败: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("构建分析请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("构建分析请求失败: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用 AI 分析服务失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI 分析服务返回异常状态: %s", resp.Status)
	}

	var result model.AiAnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("解析 AI 分析结果失败: %w", err)
	}
	return &result, nil
}

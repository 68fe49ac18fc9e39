/*
 * @Description: 图片元数据模型
 * @Author: 安知鱼
 * @Date: 2026-03-02 10:12:31
 * @LastEditTime: 2026-04-18 16:40:02
 * @LastEditors: 安知鱼
 */
package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ProcessingStatus 表示一条元数据记录的处理状态。
// 状态机: Pending → Processing → {Completed | Failed}，终态只能通过显式重置回到 Pending。
type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "Pending"
	StatusProcessing ProcessingStatus = "Processing"
	StatusCompleted  ProcessingStatus = "Completed"
	StatusFailed     ProcessingStatus = "Failed"
)

// KeywordSeparator 是关键词存储为单个字符串时使用的统一分隔符。
const KeywordSeparator = ", "

// ImageMetadata 是一张图片的规范化元数据记录 (纯粹的业务模型)。
// 可选字段使用指针类型表示"缺失"，合并引擎依赖这一语义做 first-wins 合并。
type ImageMetadata struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time

	FileName      string
	FileSizeBytes uint64
	MimeType      *string
	FileHash      *string // 32位小写十六进制内容指纹，用于去重
	Width         *uint
	Height        *uint

	// 原始标签块，序列化为 目录名 → 标签名 → 可读值 的 JSON 树
	ExifData *string
	XmpData  *string
	IptcData *string

	AiAnalysis *string
	Keywords   *string

	CameraMake   *string
	CameraModel  *string
	LensInfo     *string
	DateTaken    *time.Time
	Iso          *int
	Aperture     *float64
	ShutterSpeed *float64
	FocalLength  *float64
	GpsLatitude  *float64
	GpsLongitude *float64
	GpsAltitude  *float64
	LocationName *string
	Copyright    *string
	Artist       *string
	Description  *string
	Software     *string
	ColorSpace   *string
	Orientation  *int
	WhiteBalance *string
	Flash        *string
	MeteringMode *string
	ExposureMode *string

	SceneCaptureType *string

	ProcessingStatus ProcessingStatus
	ErrorMessage     *string

	UserID  *string
	BatchID *string
}

// NewImageMetadata 创建一条处于 Processing 状态的新记录，时间戳同时初始化。
func NewImageMetadata(fileName string, sizeBytes uint64, mimeType string) *ImageMetadata {
	now := time.Now().UTC()
	m := &ImageMetadata{
		FileName:         fileName,
		FileSizeBytes:    sizeBytes,
		ProcessingStatus: StatusProcessing,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if mimeType != "" {
		m.MimeType = &mimeType
	}
	return m
}

// IsProcessed 记录是否已成功处理完成
func (m *ImageMetadata) IsProcessed() bool {
	return m.ProcessingStatus == StatusCompleted
}

// HasErrors 处理过程中是否记录了错误
func (m *ImageMetadata) HasErrors() bool {
	return m.ErrorMessage != nil && *m.ErrorMessage != ""
}

// Touch 更新 UpdatedAt 时间戳，任何变更都应调用。
func (m *ImageMetadata) Touch() {
	m.UpdatedAt = time.Now().UTC()
}

// MarkAsCompleted 将记录置为完成终态。
// 非致命告警只写日志不落库，因此 Completed 的记录不允许携带 ErrorMessage。
func (m *ImageMetadata) MarkAsCompleted() {
	m.ProcessingStatus = StatusCompleted
	m.ErrorMessage = nil
	m.Touch()
}

// MarkAsFailed 将记录置为失败终态，并记录原因。
func (m *ImageMetadata) MarkAsFailed(errorMessage string) {
	m.ProcessingStatus = StatusFailed
	m.ErrorMessage = &errorMessage
	m.Touch()
}

// ResetProcessingState 显式重置为 Pending，只有外部调用方（如手动重新处理）可以触发。
func (m *ImageMetadata) ResetProcessingState() {
	m.ProcessingStatus = StatusPending
	m.ErrorMessage = nil
	m.Touch()
}

// FileSize 格式化后的文件大小，用于展示。
func (m *ImageMetadata) FileSize() string {
	return FormatFileSize(m.FileSizeBytes)
}

// Dimensions 返回 "宽x高" 字符串；宽高必须同时存在，否则返回空串。
func (m *ImageMetadata) Dimensions() string {
	if m.Width != nil && m.Height != nil {
		return fmt.Sprintf("%dx%d", *m.Width, *m.Height)
	}
	return ""
}

// KeywordList 把存储为单个字符串的关键词拆成有序列表。
func (m *ImageMetadata) KeywordList() []string {
	if m.Keywords == nil || *m.Keywords == "" {
		return []string{}
	}
	parts := strings.Split(*m.Keywords, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			list = append(list, kw)
		}
	}
	return list
}

// SetKeywordList 以统一分隔符写回关键词字段；空列表清空字段。
func (m *ImageMetadata) SetKeywordList(keywords []string) {
	if len(keywords) == 0 {
		m.Keywords = nil
		return
	}
	joined := strings.Join(keywords, KeywordSeparator)
	m.Keywords = &joined
}

// CameraSettings 汇总相机参数用于展示，如 "f/1.8 • 1/250s • ISO 6400 • 50mm"。
func (m *ImageMetadata) CameraSettings() string {
	var settings []string
	if m.Aperture != nil {
		settings = append(settings, fmt.Sprintf("f/%.1f", *m.Aperture))
	}
	if m.ShutterSpeed != nil {
		if *m.ShutterSpeed >= 1 {
			settings = append(settings, fmt.Sprintf("%gs", *m.ShutterSpeed))
		} else if *m.ShutterSpeed > 0 {
			settings = append(settings, fmt.Sprintf("1/%ds", int(math.Round(1 / *m.ShutterSpeed))))
		}
	}
	if m.Iso != nil {
		settings = append(settings, fmt.Sprintf("ISO %d", *m.Iso))
	}
	if m.FocalLength != nil {
		settings = append(settings, fmt.Sprintf("%gmm", *m.FocalLength))
	}
	return strings.Join(settings, " • ")
}

// GpsCoordinates 把经纬度格式化为 "40.000000°N, 74.000000°W" 形式。
func (m *ImageMetadata) GpsCoordinates() string {
	if m.GpsLatitude == nil || m.GpsLongitude == nil {
		return ""
	}
	lat := fmt.Sprintf("%.6f°N", *m.GpsLatitude)
	if *m.GpsLatitude < 0 {
		lat = fmt.Sprintf("%.6f°S", math.Abs(*m.GpsLatitude))
	}
	lng := fmt.Sprintf("%.6f°E", *m.GpsLongitude)
	if *m.GpsLongitude < 0 {
		lng = fmt.Sprintf("%.6f°W", math.Abs(*m.GpsLongitude))
	}
	return lat + ", " + lng
}

// FormatFileSize 把字节数格式化为人类可读的大小。
func FormatFileSize(bytes uint64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	case bytes < gb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	default:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(gb))
	}
}

// AiAnalysisResult 是外部 AI 分析服务的输出，核心只消费不生产。
type AiAnalysisResult struct {
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Confidence  float64  `json:"confidence"`
}

// ImageMetadataDto 是给 API 层的展示对象。
type ImageMetadataDto struct {
	ID               uint       `json:"id"`
	FileName         string     `json:"fileName"`
	FileSize         string     `json:"fileSize"`
	MimeType         *string    `json:"mimeType,omitempty"`
	Dimensions       string     `json:"dimensions,omitempty"`
	DateTaken        *time.Time `json:"dateTaken,omitempty"`
	CameraMake       *string    `json:"cameraMake,omitempty"`
	CameraModel      *string    `json:"cameraModel,omitempty"`
	CameraSettings   string     `json:"cameraSettings,omitempty"`
	GpsCoordinates   string     `json:"gpsCoordinates,omitempty"`
	LocationName     *string    `json:"locationName,omitempty"`
	Keywords         []string   `json:"keywords"`
	AiAnalysis       *string    `json:"aiAnalysis,omitempty"`
	ProcessingStatus string     `json:"processingStatus"`
	ErrorMessage     *string    `json:"errorMessage,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// NewImageMetadataDto 从业务模型构造展示对象。
func NewImageMetadataDto(m *ImageMetadata) *ImageMetadataDto {
	return &ImageMetadataDto{
		ID:               m.ID,
		FileName:         m.FileName,
		FileSize:         m.FileSize(),
		MimeType:         m.MimeType,
		Dimensions:       m.Dimensions(),
		DateTaken:        m.DateTaken,
		CameraMake:       m.CameraMake,
		CameraModel:      m.CameraModel,
		CameraSettings:   m.CameraSettings(),
		GpsCoordinates:   m.GpsCoordinates(),
		LocationName:     m.LocationName,
		Keywords:         m.KeywordList(),
		AiAnalysis:       m.AiAnalysis,
		ProcessingStatus: string(m.ProcessingStatus),
		ErrorMessage:     m.ErrorMessage,
		CreatedAt:        m.CreatedAt,
	}
}

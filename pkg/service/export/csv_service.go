/*
 * @Description: 元数据导出服务 (CSV / JSON)
 * @Author: 安知鱼
 * @Date: 2026-03-06 10:08:51
 * @LastEditTime: 2026-05-21 18:21:14
 * @LastEditors: 安知鱼
 */
package export

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
)

const timeLayout = "2006-01-02 15:04:05"

// csvHeaders 的顺序是导出契约的一部分，调整会破坏下游消费方。
var csvHeaders = []string{
	"ID", "FileName", "FileSize", "MimeType", "Dimensions", "DateTaken",
	"CameraMake", "CameraModel", "LensInfo", "CameraSettings",
	"ISO", "Aperture", "ShutterSpeed", "FocalLength",
	"GpsLatitude", "GpsLongitude", "GpsAltitude", "LocationName",
	"Keywords", "Description", "AiAnalysis", "Artist", "Copyright",
	"ProcessingStatus", "CreatedAt", "UpdatedAt",
}

// Service 把元数据记录集合渲染为可下载的文本格式。
type Service struct{}

// NewService 构造函数
func NewService() *Service {
	return &Service{}
}

// ExportToCsv 按固定列顺序渲染 CSV。
func (s *Service) ExportToCsv(records []*model.ImageMetadata) string {
	var b strings.Builder

	writeRow(&b, csvHeaders)

	for _, m := range records {
		row := []string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.FileName,
			m.FileSize(),
			strPtr(m.MimeType),
			m.Dimensions(),
			timePtr(m.DateTaken),
			strPtr(m.CameraMake),
			strPtr(m.CameraModel),
			strPtr(m.LensInfo),
			m.CameraSettings(),
			intPtr(m.Iso),
			floatPtr(m.Aperture),
			floatPtr(m.ShutterSpeed),
			floatPtr(m.FocalLength),
			floatPtr(m.GpsLatitude),
			floatPtr(m.GpsLongitude),
			floatPtr(m.GpsAltitude),
			strPtr(m.LocationName),
			strPtr(m.Keywords),
			strPtr(m.Description),
			strPtr(m.AiAnalysis),
			strPtr(m.Artist),
			strPtr(m.Copyright),
			string(m.ProcessingStatus),
			m.CreatedAt.Format(timeLayout),
			m.UpdatedAt.Format(timeLayout),
		}
		writeRow(&b, row)
	}

	log.Printf("[ExportService] 已导出 %d 条记录为CSV。", len(records))
	return b.String()
}

// ExportToJson 渲染展示对象列表为缩进JSON。
func (s *Service) ExportToJson(records []*model.ImageMetadata) (string, error) {
	dtos := make([]*model.ImageMetadataDto, 0, len(records))
	for _, m := range records {
		dtos = append(dtos, model.NewImageMetadataDto(m))
	}

	data, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化导出数据失败: %w", err)
	}

	log.Printf("[ExportService] 已导出 %d 条记录为JSON。", len(records))
	return string(data), nil
}

func writeRow(b *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCsvValue(v))
	}
	b.WriteByte('\n')
}

// escapeCsvValue 含逗号/引号/换行的值整体加引号，并把内嵌引号翻倍；空值渲染为 ""。
func escapeCsvValue(value string) string {
	if value == "" {
		return `""`
	}
	if strings.ContainsAny(value, ",\"\n\r") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func strPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intPtr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func floatPtr(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func timePtr(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format(timeLayout)
}

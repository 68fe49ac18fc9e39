package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
)

func strp(s string) *string { return &s }

func TestEscapeCsvValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "空值渲染为双引号", input: "", expected: `""`},
		{name: "普通值原样输出", input: "Canon", expected: "Canon"},
		{name: "含逗号整体加引号", input: "Tokyo, Japan", expected: `"Tokyo, Japan"`},
		{name: "内嵌引号翻倍", input: `the "best" shot`, expected: `"the ""best"" shot"`},
		{name: "含换行加引号", input: "line1\nline2", expected: "\"line1\nline2\""},
		{name: "含回车加引号", input: "line1\rline2", expected: "\"line1\rline2\""},
		{name: "只有引号", input: `"`, expected: `""""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeCsvValue(tt.input); got != tt.expected {
				t.Errorf("escapeCsvValue(%q) = %q, 期望 %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExportToCsvHeader(t *testing.T) {
	svc := NewService()

	out := svc.ExportToCsv(nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("空导出应只有表头行，实际 %d 行", len(lines))
	}

	expected := "ID,FileName,FileSize,MimeType,Dimensions,DateTaken," +
		"CameraMake,CameraModel,LensInfo,CameraSettings," +
		"ISO,Aperture,ShutterSpeed,FocalLength," +
		"GpsLatitude,GpsLongitude,GpsAltitude,LocationName," +
		"Keywords,Description,AiAnalysis,Artist,Copyright," +
		"ProcessingStatus,CreatedAt,UpdatedAt"
	if lines[0] != expected {
		t.Errorf("表头不匹配:\n实际: %s\n期望: %s", lines[0], expected)
	}
}

func TestExportToCsvRows(t *testing.T) {
	svc := NewService()

	m := model.NewImageMetadata("photo.jpg", 2048, "image/jpeg")
	m.ID = 7
	m.CameraMake = strp("Canon")
	m.LocationName = strp("Kyoto, Japan")
	m.Keywords = strp("canon, temple")
	taken := time.Date(2023, 7, 15, 14, 30, 5, 0, time.UTC)
	m.DateTaken = &taken

	out := svc.ExportToCsv([]*model.ImageMetadata{m})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("期望 1 条数据行，实际 %d 行", len(lines)-1)
	}

	row := lines[1]
	if !strings.HasPrefix(row, "7,photo.jpg,2.0 KB,image/jpeg,") {
		t.Errorf("行前缀不匹配: %s", row)
	}
	if !strings.Contains(row, "2023-07-15 14:30:05") {
		t.Errorf("拍摄时间格式不匹配: %s", row)
	}
	// 含逗号的字段要整体加引号
	if !strings.Contains(row, `"Kyoto, Japan"`) {
		t.Errorf("位置字段未转义: %s", row)
	}
	if !strings.Contains(row, `"canon, temple"`) {
		t.Errorf("关键词字段未转义: %s", row)
	}
	if !strings.Contains(row, "Processing") {
		t.Errorf("处理状态缺失: %s", row)
	}
}

func TestExportToCsvEmptyFieldsRendered(t *testing.T) {
	svc := NewService()

	m := model.NewImageMetadata("bare.png", 10, "image/png")
	m.ID = 1
	m.MimeType = nil

	out := svc.ExportToCsv([]*model.ImageMetadata{m})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	row := lines[1]

	// 缺失的 MimeType 和 Dimensions 都渲染为 ""
	if !strings.HasPrefix(row, `1,bare.png,10 B,"","",`) {
		t.Errorf("空字段渲染不匹配: %s", row)
	}
}

func TestExportToJson(t *testing.T) {
	svc := NewService()

	m := model.NewImageMetadata("photo.jpg", 2048, "image/jpeg")
	m.ID = 3
	m.SetKeywordList([]string{"canon", "sunset"})

	out, err := svc.ExportToJson([]*model.ImageMetadata{m})
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("输出不是合法JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("期望 1 条记录，实际 %d 条", len(decoded))
	}
	if decoded[0]["fileName"] != "photo.jpg" {
		t.Errorf("fileName = %v", decoded[0]["fileName"])
	}
	kws, ok := decoded[0]["keywords"].([]interface{})
	if !ok || len(kws) != 2 {
		t.Errorf("keywords 字段不匹配: %v", decoded[0]["keywords"])
	}
}

func TestExportToJsonEmpty(t *testing.T) {
	svc := NewService()

	out, err := svc.ExportToJson(nil)
	if err != nil {
		t.Fatalf("空导出失败: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("空导出应为 []，实际 %q", out)
	}
}

package model

import (
	"reflect"
	"testing"
)

func strp(s string) *string   { return &s }
func intp(i int) *int         { return &i }
func f64p(f float64) *float64 { return &f }
func uintp(u uint) *uint      { return &u }

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    uint64
		expected string
	}{
		{name: "零字节", bytes: 0, expected: "0 B"},
		{name: "不足1KB", bytes: 1023, expected: "1023 B"},
		{name: "恰好1KB", bytes: 1024, expected: "1.0 KB"},
		{name: "KB范围", bytes: 1536, expected: "1.5 KB"},
		{name: "MB范围", bytes: 2 * 1024 * 1024, expected: "2.0 MB"},
		{name: "上传上限50MB", bytes: 52428800, expected: "50.0 MB"},
		{name: "GB范围", bytes: 3 * 1024 * 1024 * 1024, expected: "3.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFileSize(tt.bytes); got != tt.expected {
				t.Errorf("FormatFileSize(%d) = %q, 期望 %q", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestNewImageMetadata(t *testing.T) {
	m := NewImageMetadata("photo.jpg", 1024, "image/jpeg")

	if m.FileName != "photo.jpg" {
		t.Errorf("FileName = %q", m.FileName)
	}
	if m.ProcessingStatus != StatusProcessing {
		t.Errorf("新记录状态应为 Processing，实际 %s", m.ProcessingStatus)
	}
	if m.MimeType == nil || *m.MimeType != "image/jpeg" {
		t.Error("MimeType 未设置")
	}
	if m.CreatedAt.IsZero() || m.UpdatedAt.IsZero() {
		t.Error("时间戳未初始化")
	}
}

func TestStatusTransitions(t *testing.T) {
	t.Run("完成状态不携带错误信息", func(t *testing.T) {
		m := NewImageMetadata("a.jpg", 1, "image/jpeg")
		m.ErrorMessage = strp("一个中途产生的告警")

		m.MarkAsCompleted()

		if m.ProcessingStatus != StatusCompleted {
			t.Errorf("状态 = %s", m.ProcessingStatus)
		}
		if m.ErrorMessage != nil {
			t.Error("MarkAsCompleted 应清空 ErrorMessage")
		}
		if !m.IsProcessed() {
			t.Error("IsProcessed 应为 true")
		}
	})

	t.Run("失败状态记录原因", func(t *testing.T) {
		m := NewImageMetadata("a.jpg", 1, "image/jpeg")

		m.MarkAsFailed("解码失败")

		if m.ProcessingStatus != StatusFailed {
			t.Errorf("状态 = %s", m.ProcessingStatus)
		}
		if m.ErrorMessage == nil || *m.ErrorMessage != "解码失败" {
			t.Error("失败原因未记录")
		}
		if !m.HasErrors() {
			t.Error("HasErrors 应为 true")
		}
	})

	t.Run("重置回到待处理", func(t *testing.T) {
		m := NewImageMetadata("a.jpg", 1, "image/jpeg")
		m.MarkAsFailed("解码失败")

		m.ResetProcessingState()

		if m.ProcessingStatus != StatusPending {
			t.Errorf("状态 = %s", m.ProcessingStatus)
		}
		if m.ErrorMessage != nil {
			t.Error("重置应清空 ErrorMessage")
		}
	})
}

func TestKeywordListRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		expected []string
	}{
		{name: "空列表清空字段", keywords: nil, expected: []string{}},
		{name: "单个关键词", keywords: []string{"sunset"}, expected: []string{"sunset"}},
		{name: "多个关键词", keywords: []string{"canon", "sunset", "telephoto"}, expected: []string{"canon", "sunset", "telephoto"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewImageMetadata("a.jpg", 1, "image/jpeg")
			m.SetKeywordList(tt.keywords)

			if got := m.KeywordList(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("KeywordList() = %v, 期望 %v", got, tt.expected)
			}
		})
	}

	t.Run("带空白的存量数据", func(t *testing.T) {
		m := NewImageMetadata("a.jpg", 1, "image/jpeg")
		m.Keywords = strp("canon,  sunset , ,telephoto")

		expected := []string{"canon", "sunset", "telephoto"}
		if got := m.KeywordList(); !reflect.DeepEqual(got, expected) {
			t.Errorf("KeywordList() = %v, 期望 %v", got, expected)
		}
	})
}

func TestCameraSettings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ImageMetadata)
		expected string
	}{
		{
			name: "全部参数",
			mutate: func(m *ImageMetadata) {
				m.Aperture = f64p(1.8)
				m.ShutterSpeed = f64p(0.004)
				m.Iso = intp(6400)
				m.FocalLength = f64p(50)
			},
			expected: "f/1.8 • 1/250s • ISO 6400 • 50mm",
		},
		{
			name: "长曝光",
			mutate: func(m *ImageMetadata) {
				m.ShutterSpeed = f64p(30)
			},
			expected: "30s",
		},
		{
			name:   "无参数",
			mutate: func(m *ImageMetadata) {},
			expected: "",
		},
		{
			name: "只有光圈和焦距",
			mutate: func(m *ImageMetadata) {
				m.Aperture = f64p(8)
				m.FocalLength = f64p(105)
			},
			expected: "f/8.0 • 105mm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewImageMetadata("a.jpg", 1, "image/jpeg")
			tt.mutate(m)

			if got := m.CameraSettings(); got != tt.expected {
				t.Errorf("CameraSettings() = %q, 期望 %q", got, tt.expected)
			}
		})
	}
}

func TestGpsCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng *float64
		expected string
	}{
		{name: "东北半球", lat: f64p(39.9042), lng: f64p(116.4074), expected: "39.904200°N, 116.407400°E"},
		{name: "西南半球", lat: f64p(-33.8688), lng: f64p(-70.6693), expected: "33.868800°S, 70.669300°W"},
		{name: "缺少经度", lat: f64p(39.9), lng: nil, expected: ""},
		{name: "全部缺失", lat: nil, lng: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewImageMetadata("a.jpg", 1, "image/jpeg")
			m.GpsLatitude = tt.lat
			m.GpsLongitude = tt.lng

			if got := m.GpsCoordinates(); got != tt.expected {
				t.Errorf("GpsCoordinates() = %q, 期望 %q", got, tt.expected)
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	m := NewImageMetadata("a.jpg", 1, "image/jpeg")
	if m.Dimensions() != "" {
		t.Error("宽高缺失时应返回空串")
	}

	m.Width = uintp(4000)
	if m.Dimensions() != "" {
		t.Error("只有宽度时应返回空串")
	}

	m.Height = uintp(3000)
	if got := m.Dimensions(); got != "4000x3000" {
		t.Errorf("Dimensions() = %q", got)
	}
}

package keyword

import (
	"reflect"
	"testing"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
)

func strp(s string) *string   { return &s }
func intp(i int) *int         { return &i }
func f64p(f float64) *float64 { return &f }

func TestCleanKeyword(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "转小写", input: "Canon", expected: "canon"},
		{name: "去首尾空白", input: "  sunset  ", expected: "sunset"},
		{name: "剔除标点", input: "sunset!?", expected: "sunset"},
		{name: "保留连字符和下划线", input: "high-iso_mode", expected: "high-iso_mode"},
		{name: "保留数字", input: "D850", expected: "d850"},
		{name: "纯符号清空", input: "@#$%", expected: ""},
		{name: "空串", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanKeyword(tt.input); got != tt.expected {
				t.Errorf("CleanKeyword(%q) = %q, 期望 %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeKeywords(t *testing.T) {
	got := NormalizeKeywords([]string{"Sunset", "CANON", "sunset", "  beach  ", "", "@#"})
	expected := []string{"beach", "canon", "sunset"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("NormalizeKeywords = %v, 期望 %v", got, expected)
	}
}

func TestExtractKeywordsFiltersStopWords(t *testing.T) {
	svc := NewService(nil, nil)

	m := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	m.Description = strp("the image of a beautiful sunset from that beach")

	got := svc.ExtractKeywords(m)

	for _, kw := range got {
		switch kw {
		case "the", "image", "from", "that":
			t.Errorf("停用词 %q 未被过滤", kw)
		}
	}
	if !contains(got, "beautiful") || !contains(got, "sunset") || !contains(got, "beach") {
		t.Errorf("有效词条丢失: %v", got)
	}
}

func TestExtractKeywordsShortTokensDropped(t *testing.T) {
	svc := NewService(nil, nil)

	m := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	m.Keywords = strp("uv, sky, hdr")

	got := svc.ExtractKeywords(m)

	// 长度不超过2的词条在终检中被剔除
	if contains(got, "uv") {
		t.Errorf("过短词条未被过滤: %v", got)
	}
	if !contains(got, "sky") || !contains(got, "hdr") {
		t.Errorf("三字符词条应保留: %v", got)
	}
}

func TestExtractKeywordsTechnical(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*model.ImageMetadata)
		expected []string
		excluded []string
	}{
		{
			name:     "高感光度",
			mutate:   func(m *model.ImageMetadata) { m.Iso = intp(3200) },
			expected: []string{"high-iso"},
			excluded: []string{"low-iso"},
		},
		{
			name:     "低感光度",
			mutate:   func(m *model.ImageMetadata) { m.Iso = intp(200) },
			expected: []string{"low-iso"},
			excluded: []string{"high-iso"},
		},
		{
			name:     "中间感光度无关键词",
			mutate:   func(m *model.ImageMetadata) { m.Iso = intp(800) },
			excluded: []string{"high-iso", "low-iso"},
		},
		{
			name:     "大光圈",
			mutate:   func(m *model.ImageMetadata) { m.Aperture = f64p(1.8) },
			expected: []string{"wide-aperture"},
		},
		{
			name:     "边界光圈2.8算大光圈",
			mutate:   func(m *model.ImageMetadata) { m.Aperture = f64p(2.8) },
			expected: []string{"wide-aperture"},
		},
		{
			name:     "小光圈",
			mutate:   func(m *model.ImageMetadata) { m.Aperture = f64p(11) },
			expected: []string{"narrow-aperture"},
		},
		{
			name:     "广角",
			mutate:   func(m *model.ImageMetadata) { m.FocalLength = f64p(24) },
			expected: []string{"wide-angle"},
		},
		{
			name:     "长焦",
			mutate:   func(m *model.ImageMetadata) { m.FocalLength = f64p(200) },
			expected: []string{"telephoto"},
		},
		{
			name: "GPS信息",
			mutate: func(m *model.ImageMetadata) {
				m.GpsLatitude = f64p(39.9)
				m.GpsLongitude = f64p(116.4)
			},
			expected: []string{"geotagged", "location-data"},
		},
		{
			name:     "只有纬度不算定位",
			mutate:   func(m *model.ImageMetadata) { m.GpsLatitude = f64p(39.9) },
			excluded: []string{"geotagged", "location-data"},
		},
		{
			name:     "佳能品牌识别",
			mutate:   func(m *model.ImageMetadata) { m.CameraMake = strp("Canon Inc.") },
			expected: []string{"canon"},
		},
	}

	svc := NewService(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
			tt.mutate(m)

			got := svc.ExtractKeywords(m)
			for _, kw := range tt.expected {
				if !contains(got, kw) {
					t.Errorf("缺少期望关键词 %q: %v", kw, got)
				}
			}
			for _, kw := range tt.excluded {
				if contains(got, kw) {
					t.Errorf("不应出现关键词 %q: %v", kw, got)
				}
			}
		})
	}
}

func TestExtractKeywordsFullRecord(t *testing.T) {
	svc := NewService(nil, nil)

	m := model.NewImageMetadata("IMG_0001.jpg", 1, "image/jpeg")
	m.CameraMake = strp("Canon")
	m.CameraModel = strp("EOS R5")
	m.Iso = intp(6400)
	m.Aperture = f64p(1.8)
	m.GpsLatitude = f64p(35.6762)
	m.GpsLongitude = f64p(139.6503)
	m.LocationName = strp("Tokyo, Japan")

	got := svc.ExtractKeywords(m)

	for _, kw := range []string{"canon", "eos r5", "high-iso", "wide-aperture", "geotagged", "location-data", "tokyo", "japan"} {
		if !contains(got, kw) {
			t.Errorf("缺少期望关键词 %q: %v", kw, got)
		}
	}
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	svc := NewService(nil, nil)

	m := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	m.Description = strp("mountain lake reflection alpine landscape")
	m.CameraMake = strp("Nikon")

	first := svc.ExtractKeywords(m)
	for i := 0; i < 5; i++ {
		if got := svc.ExtractKeywords(m); !reflect.DeepEqual(got, first) {
			t.Fatalf("第 %d 次提取结果不一致: %v != %v", i+1, got, first)
		}
	}

	// 结果本身必须有序
	for i := 1; i < len(first); i++ {
		if first[i-1] >= first[i] {
			t.Errorf("结果未升序排列: %v", first)
		}
	}
}

func TestExtractKeywordsApplyBackIdempotent(t *testing.T) {
	svc := NewService(nil, nil)

	m := model.NewImageMetadata("IMG_0002.jpg", 1, "image/jpeg")
	m.CameraMake = strp("Sony")
	m.Iso = intp(100)
	m.Aperture = f64p(11)
	m.Description = strp("harbor lighthouse morning fog")

	first := svc.ExtractKeywords(m)
	m.SetKeywordList(first)

	// 把结果写回记录后再次提取必须是不动点
	second := svc.ExtractKeywords(m)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("写回后再提取应保持不变: %v != %v", first, second)
	}

	m.SetKeywordList(second)
	if third := svc.ExtractKeywords(m); !reflect.DeepEqual(second, third) {
		t.Fatalf("重复写回仍应稳定: %v != %v", second, third)
	}
}

func TestExtractKeywordsEmptyRecord(t *testing.T) {
	svc := NewService(nil, nil)

	m := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	if got := svc.ExtractKeywords(m); len(got) != 0 {
		t.Errorf("空记录应返回空列表: %v", got)
	}
}

func contains(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

/*
 * @Description: EXIF 解析器单元测试：格式准入与标签值解析
 * @Author: 安知鱼
 * @Date: 2026-05-23 11:02:19
 * @LastEditTime: 2026-06-02 17:22:40
 * @LastEditors: 安知鱼
 */
package parser

import (
	"context"
	"strings"
	"testing"
)

func TestExifValidateFile(t *testing.T) {
	p := NewExifParser()

	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{"JPEG", "photo.jpg", true},
		{"大写扩展名", "IMG_0001.JPG", true},
		{"HEIC", "iphone.heic", true},
		{"RAW格式CR2", "shot.cr2", true},
		{"RAW格式NEF", "shot.nef", true},
		{"GIF不支持", "anim.gif", false},
		{"无扩展名", "Makefile", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ValidateFile(tt.fileName, nil); got != tt.want {
				t.Errorf("ValidateFile(%s) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestExifParseMetadataNoExif(t *testing.T) {
	p := NewExifParser()

	// 结构化解析失败后回退蛮力搜索，找不到 EXIF 块不算错误
	m := p.ParseMetadata(context.Background(), strings.NewReader("not a real image at all"), "fake.jpg")
	if m == nil {
		t.Fatal("返回值不应为 nil")
	}
	if m.FileName != "fake.jpg" {
		t.Errorf("FileName = %s", m.FileName)
	}
	if m.ErrorMessage != nil {
		t.Errorf("缺少EXIF数据不算失败: %s", *m.ErrorMessage)
	}
	if m.CameraMake != nil || m.ExifData != nil {
		t.Error("没有EXIF数据时不应提取任何字段")
	}
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"标准分数", "28/10", 2.8, false},
		{"整数分数", "50/1", 50, false},
		{"纯小数", "1.8", 1.8, false},
		{"快门分数", "1/250", 0.004, false},
		{"分母为零", "1/0", 0, true},
		{"多段斜杠", "1/2/3", 0, true},
		{"非数字", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRational(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRational(%q) 应返回错误", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRational(%q) 意外错误: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseRational(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookupTag(t *testing.T) {
	dirs := map[string]map[string]string{
		"IFD0": {
			"Make":  "  Canon  ",
			"Model": "",
		},
	}

	t.Run("去除首尾空白", func(t *testing.T) {
		v, ok := lookupTag(dirs, "IFD0", "Make")
		if !ok || v != "Canon" {
			t.Errorf("got (%q, %v)", v, ok)
		}
	})
	t.Run("空值视为缺失", func(t *testing.T) {
		if _, ok := lookupTag(dirs, "IFD0", "Model"); ok {
			t.Error("空白值不应命中")
		}
	})
	t.Run("目录不存在", func(t *testing.T) {
		if _, ok := lookupTag(dirs, "IFD/Exif", "ISO"); ok {
			t.Error("缺失目录不应命中")
		}
	})
}

func TestParseTagInt(t *testing.T) {
	dirs := map[string]map[string]string{
		"IFD/Exif": {
			"ISOSpeedRatings": "3200",
			"PixelXDimension": "6000.5",
			"ExposureProgram": "2",
		},
	}

	if n, ok := parseTagInt(dirs, "IFD/Exif", "ISOSpeedRatings"); !ok || n != 3200 {
		t.Errorf("整数标签解析失败: (%d, %v)", n, ok)
	}
	if _, ok := parseTagInt(dirs, "IFD/Exif", "PixelXDimension"); ok {
		t.Error("非整数值不应命中")
	}
	if _, ok := parseTagInt(dirs, "IFD/Exif", "Missing"); ok {
		t.Error("缺失标签不应命中")
	}
}

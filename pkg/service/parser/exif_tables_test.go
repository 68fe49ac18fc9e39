package parser

import "testing"

func TestFlashDescription(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected string
	}{
		{name: "未闪光", code: 0x0000, expected: "No Flash"},
		{name: "闪光", code: 0x0001, expected: "Flash Fired"},
		{name: "自动闪光", code: 0x0019, expected: "Auto, Fired"},
		{name: "自动未闪光", code: 0x0018, expected: "Auto, Did not fire"},
		{name: "无闪光功能", code: 0x0020, expected: "No flash function"},
		{name: "未知编码按十六进制渲染", code: 0x1234, expected: "Unknown (0x1234)"},
		{name: "未知编码补零", code: 0x0002, expected: "Unknown (0x0002)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlashDescription(tt.code); got != tt.expected {
				t.Errorf("FlashDescription(0x%04X) = %q, 期望 %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestMeteringModeDescription(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{0, "Unknown"},
		{1, "Average"},
		{2, "Center Weighted Average"},
		{3, "Spot"},
		{5, "Pattern"},
		{255, "Other"},
		{99, "Unknown (99)"},
	}

	for _, tt := range tests {
		if got := MeteringModeDescription(tt.code); got != tt.expected {
			t.Errorf("MeteringModeDescription(%d) = %q, 期望 %q", tt.code, got, tt.expected)
		}
	}
}

func TestExposureModeDescription(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{0, "Auto"},
		{1, "Manual"},
		{2, "Auto Bracket"},
		{7, "Unknown (7)"},
	}

	for _, tt := range tests {
		if got := ExposureModeDescription(tt.code); got != tt.expected {
			t.Errorf("ExposureModeDescription(%d) = %q, 期望 %q", tt.code, got, tt.expected)
		}
	}
}

func TestSceneCaptureTypeDescription(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{0, "Standard"},
		{1, "Landscape"},
		{2, "Portrait"},
		{3, "Night Scene"},
		{9, "Unknown (9)"},
	}

	for _, tt := range tests {
		if got := SceneCaptureTypeDescription(tt.code); got != tt.expected {
			t.Errorf("SceneCaptureTypeDescription(%d) = %q, 期望 %q", tt.code, got, tt.expected)
		}
	}
}

func TestWhiteBalanceDescription(t *testing.T) {
	if got := WhiteBalanceDescription(0); got != "Auto" {
		t.Errorf("WhiteBalanceDescription(0) = %q", got)
	}
	// 规范只定义了 0/1，非零一律按手动处理
	for _, code := range []int{1, 2, 255} {
		if got := WhiteBalanceDescription(code); got != "Manual" {
			t.Errorf("WhiteBalanceDescription(%d) = %q", code, got)
		}
	}
}

func TestColorSpaceDescription(t *testing.T) {
	if got := ColorSpaceDescription(1); got != "sRGB" {
		t.Errorf("ColorSpaceDescription(1) = %q", got)
	}
	for _, code := range []int{0, 2, 65535} {
		if got := ColorSpaceDescription(code); got != "Uncalibrated" {
			t.Errorf("ColorSpaceDescription(%d) = %q", code, got)
		}
	}
}

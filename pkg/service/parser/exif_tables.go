/*
 * @Description: EXIF 数值编码到可读描述的映射表
 * @Author: 安知鱼
 * @Date: 2026-03-03 10:40:19
 * @LastEditTime: 2026-04-22 16:02:48
 * @LastEditors: 安知鱼
 */
package parser

import "fmt"

// flashDescriptions 按 EXIF Flash 标签的位掩码值给出可读描述。
// 编码组合了 闪光是否触发、回闪检测、工作模式 三部分信息。
var flashDescriptions = map[int]string{
	0x0000: "No Flash",
	0x0001: "Flash Fired",
	0x0005: "Flash Fired, Return not detected",
	0x0007: "Flash Fired, Return detected",
	0x0008: "On, Did not fire",
	0x0009: "On, Fired",
	0x000D: "On, Return not detected",
	0x000F: "On, Return detected",
	0x0010: "Off, Did not fire",
	0x0014: "Off, Did not fire, Return not detected",
	0x0018: "Auto, Did not fire",
	0x0019: "Auto, Fired",
	0x001D: "Auto, Fired, Return not detected",
	0x001F: "Auto, Fired, Return detected",
	0x0020: "No flash function",
	0x0030: "Off, No flash function",
	0x0041: "Fired, Red-eye reduction",
	0x0045: "Fired, Red-eye reduction, Return not detected",
	0x0047: "Fired, Red-eye reduction, Return detected",
	0x0049: "On, Red-eye reduction",
	0x004D: "On, Red-eye reduction, Return not detected",
	0x004F: "On, Red-eye reduction, Return detected",
	0x0050: "Off, Red-eye reduction",
	0x0058: "Auto, Did not fire, Red-eye reduction",
	0x0059: "Auto, Fired, Red-eye reduction",
	0x005D: "Auto, Fired, Red-eye reduction, Return not detected",
	0x005F: "Auto, Fired, Red-eye reduction, Return detected",
}

// FlashDescription 返回 Flash 编码的可读描述，未知编码渲染为 "Unknown (0xHHHH)"。
func FlashDescription(code int) string {
	if desc, ok := flashDescriptions[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown (0x%04X)", code)
}

// MeteringModeDescription 返回测光模式编码的可读描述。
func MeteringModeDescription(code int) string {
	switch code {
	case 0:
		return "Unknown"
	case 1:
		return "Average"
	case 2:
		return "Center Weighted Average"
	case 3:
		return "Spot"
	case 4:
		return "Multi Spot"
	case 5:
		return "Pattern"
	case 6:
		return "Partial"
	case 255:
		return "Other"
	default:
		return fmt.Sprintf("Unknown (%d)", code)
	}
}

// ExposureModeDescription 返回曝光模式编码的可读描述。
func ExposureModeDescription(code int) string {
	switch code {
	case 0:
		return "Auto"
	case 1:
		return "Manual"
	case 2:
		return "Auto Bracket"
	default:
		return fmt.Sprintf("Unknown (%d)", code)
	}
}

// SceneCaptureTypeDescription 返回场景类型编码的可读描述。
func SceneCaptureTypeDescription(code int) string {
	switch code {
	case 0:
		return "Standard"
	case 1:
		return "Landscape"
	case 2:
		return "Portrait"
	case 3:
		return "Night Scene"
	default:
		return fmt.Sprintf("Unknown (%d)", code)
	}
}

// WhiteBalanceDescription EXIF 白平衡只有 0(自动)/1(手动) 两个取值。
func WhiteBalanceDescription(code int) string {
	if code == 0 {
		return "Auto"
	}
	return "Manual"
}

// ColorSpaceDescription EXIF 色彩空间 1 表示 sRGB，其余视为未标定。
func ColorSpaceDescription(code int) string {
	if code == 1 {
		return "sRGB"
	}
	return "Uncalibrated"
}

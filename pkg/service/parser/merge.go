/*
 * @Description: 元数据合并引擎 (first-wins)
 * @Author: 安知鱼
 * @Date: 2026-03-03 10:02:55
 * @LastEditTime: 2026-04-22 15:37:21
 * @LastEditors: 安知鱼
 */
package parser

import "github.com/anzhiyu-c/picmeta-app/pkg/domain/model"

// Merge 把 source 的字段合并进 target：目标字段已有值则保留，缺失时取 source 的值。
// 解析器按注册顺序执行，先提取成功者生效，后来者永不覆盖。
// 没有失败路径：source 的空字段是 no-op。
func Merge(target, source *model.ImageMetadata) {
	if target == nil || source == nil {
		return
	}

	// 原始标签块按来源各占一个槽位，同样 first-wins
	coalesce(&target.ExifData, source.ExifData)
	coalesce(&target.XmpData, source.XmpData)
	coalesce(&target.IptcData, source.IptcData)

	coalesce(&target.CameraMake, source.CameraMake)
	coalesce(&target.CameraModel, source.CameraModel)
	coalesce(&target.LensInfo, source.LensInfo)
	coalesce(&target.DateTaken, source.DateTaken)
	coalesce(&target.Iso, source.Iso)
	coalesce(&target.Aperture, source.Aperture)
	coalesce(&target.ShutterSpeed, source.ShutterSpeed)
	coalesce(&target.FocalLength, source.FocalLength)
	coalesce(&target.GpsLatitude, source.GpsLatitude)
	coalesce(&target.GpsLongitude, source.GpsLongitude)
	coalesce(&target.GpsAltitude, source.GpsAltitude)
	coalesce(&target.LocationName, source.LocationName)
	coalesce(&target.Copyright, source.Copyright)
	coalesce(&target.Artist, source.Artist)
	coalesce(&target.Description, source.Description)
	coalesce(&target.Software, source.Software)
	coalesce(&target.ColorSpace, source.ColorSpace)
	coalesce(&target.Orientation, source.Orientation)
	coalesce(&target.WhiteBalance, source.WhiteBalance)
	coalesce(&target.Flash, source.Flash)
	coalesce(&target.MeteringMode, source.MeteringMode)
	coalesce(&target.ExposureMode, source.ExposureMode)
	coalesce(&target.SceneCaptureType, source.SceneCaptureType)
	coalesce(&target.Keywords, source.Keywords)
}

// coalesce 对单个可选字段执行 first-wins 赋值。
func coalesce[T any](dst **T, src *T) {
	if *dst == nil && src != nil {
		*dst = src
	}
}

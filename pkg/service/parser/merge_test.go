package parser

import (
	"testing"
	"time"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
)

func strp(s string) *string   { return &s }
func intp(i int) *int         { return &i }
func f64p(f float64) *float64 { return &f }

func TestMergeFirstWins(t *testing.T) {
	target := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	target.CameraMake = strp("Canon")
	target.Iso = intp(100)

	source := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	source.CameraMake = strp("Nikon")
	source.Iso = intp(6400)
	source.CameraModel = strp("Z6")
	source.Aperture = f64p(2.8)

	Merge(target, source)

	if *target.CameraMake != "Canon" {
		t.Errorf("已有字段被覆盖: CameraMake = %s", *target.CameraMake)
	}
	if *target.Iso != 100 {
		t.Errorf("已有字段被覆盖: Iso = %d", *target.Iso)
	}
	if target.CameraModel == nil || *target.CameraModel != "Z6" {
		t.Error("缺失字段未从 source 补齐: CameraModel")
	}
	if target.Aperture == nil || *target.Aperture != 2.8 {
		t.Error("缺失字段未从 source 补齐: Aperture")
	}
}

func TestMergeRawBlocksKeepSlots(t *testing.T) {
	target := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	target.ExifData = strp(`{"IFD":{}}`)

	source := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	source.ExifData = strp(`{"other":{}}`)
	source.XmpData = strp(`{"XMP":{}}`)

	Merge(target, source)

	if *target.ExifData != `{"IFD":{}}` {
		t.Error("EXIF 原始块不应被覆盖")
	}
	if target.XmpData == nil || *target.XmpData != `{"XMP":{}}` {
		t.Error("XMP 原始块应被补齐")
	}
}

func TestMergeIdempotent(t *testing.T) {
	now := time.Date(2023, 7, 15, 14, 30, 0, 0, time.UTC)

	source := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	source.CameraMake = strp("Sony")
	source.DateTaken = &now
	source.GpsLatitude = f64p(39.9)
	source.GpsLongitude = f64p(116.4)

	target := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	Merge(target, source)
	first := *target

	// 重复合并同一来源不应产生任何变化
	Merge(target, source)
	if *target.CameraMake != *first.CameraMake ||
		!target.DateTaken.Equal(*first.DateTaken) ||
		*target.GpsLatitude != *first.GpsLatitude {
		t.Error("重复合并改变了结果")
	}
}

func TestMergeNilSafety(t *testing.T) {
	target := model.NewImageMetadata("a.jpg", 1, "image/jpeg")

	// nil 参与方是 no-op，不允许 panic
	Merge(target, nil)
	Merge(nil, target)
	Merge(nil, nil)

	if target.CameraMake != nil {
		t.Error("no-op 合并不应引入字段")
	}
}

func TestMergeParserPriorityChain(t *testing.T) {
	// 模拟管线：EXIF 解析器先合并，XMP 解析器随后补齐
	record := model.NewImageMetadata("a.jpg", 1, "image/jpeg")

	exifResult := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	exifResult.CameraMake = strp("Canon")
	exifResult.Iso = intp(400)

	xmpResult := model.NewImageMetadata("a.jpg", 1, "image/jpeg")
	xmpResult.CameraMake = strp("不应生效的厂商")
	xmpResult.Description = strp("夕阳下的海岸线")
	xmpResult.Artist = strp("摄影师甲")

	Merge(record, exifResult)
	Merge(record, xmpResult)

	if *record.CameraMake != "Canon" {
		t.Errorf("先注册的解析器应优先: CameraMake = %s", *record.CameraMake)
	}
	if record.Description == nil || *record.Description != "夕阳下的海岸线" {
		t.Error("后注册解析器的独有字段应生效")
	}
	if record.Artist == nil || *record.Artist != "摄影师甲" {
		t.Error("后注册解析器的独有字段应生效")
	}
	if record.Iso == nil || *record.Iso != 400 {
		t.Error("先注册解析器的字段应保留")
	}
}

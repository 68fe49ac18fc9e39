/*
 * @Description: EXIF/TIFF 家族解析器，结构化解析优先，失败后回退到蛮力搜索
 * @Author: 安知鱼
 * @Date: 2026-03-03 11:05:33
 * @LastEditTime: 2026-05-19 17:26:40
 * @LastEditors: 安知鱼
 */
package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"

	"github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"

	heicexif "github.com/dsoprea/go-heic-exif-extractor"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure"
	pngstructure "github.com/dsoprea/go-png-image-structure"
	tiffstructure "github.com/dsoprea/go-tiff-image-structure"
	riimage "github.com/dsoprea/go-utility/image"
)

// EXIF 标签所在的目录路径
const (
	ifdRoot = "IFD"
	ifdExif = "IFD/Exif"
	ifdGps  = "IFD/GPSInfo"
)

type mediaParser interface {
	Parse(rs io.ReadSeeker, size int) (ec riimage.MediaContext, err error)
}

// mediaParserFor 按扩展名选择结构化解析器；RAW 等其他格式返回 nil，依赖蛮力搜索。
func mediaParserFor(ext string) mediaParser {
	switch ext {
	case ".jpg", ".jpeg":
		return jpegstructure.NewJpegMediaParser()
	case ".png":
		return pngstructure.NewPngMediaParser()
	case ".tiff", ".tif":
		return tiffstructure.NewTiffMediaParser()
	case ".heic", ".heif", ".avif":
		return heicexif.NewHeicExifMediaParser()
	default:
		return nil
	}
}

// ExifParser 从 EXIF/TIFF 家族图片中提取元数据。
type ExifParser struct {
	formats []string
}

// NewExifParser 构造函数
func NewExifParser() *ExifParser {
	return &ExifParser{
		formats: []string{
			".jpg", ".jpeg", ".png", ".tiff", ".tif",
			".heic", ".heif", ".avif",
			".cr2", ".nef", ".orf", ".arw", ".dng",
		},
	}
}

// SupportedFormats 实现 ImageParser 接口
func (p *ExifParser) SupportedFormats() []string {
	return append([]string(nil), p.formats...)
}

// ValidateFile 实现 ImageParser 接口
func (p *ExifParser) ValidateFile(fileName string, _ io.ReadSeeker) bool {
	return validateByExtension(fileName, p.formats)
}

// ParseMetadata 实现 ImageParser 接口。对调用方永不失败：
// 任何内部错误（包括依赖库的 panic）都被捕获并写入返回记录的 ErrorMessage。
func (p *ExifParser) ParseMetadata(_ context.Context, r io.ReadSeeker, fileName string) (metadata *model.ImageMetadata) {
	metadata = newBaseMetadata(fileName)

	// dsoprea 系列库在少数坏输入上会 panic，这里统一兜底
	defer func() {
		if rec := recover(); rec != nil {
			msg := fmt.Sprintf("EXIF parsing failed: %v", rec)
			metadata.ErrorMessage = &msg
		}
	}()

	rawExif, err := p.extractRawExif(r, fileName)
	if err != nil {
		msg := fmt.Sprintf("EXIF parsing failed: %v", err)
		metadata.ErrorMessage = &msg
		return metadata
	}
	if len(rawExif) == 0 {
		log.Printf("[ExifParser] 信息: 文件 %s 中未找到EXIF数据。", fileName)
		return metadata
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		msg := fmt.Sprintf("EXIF parsing failed: %v", err)
		metadata.ErrorMessage = &msg
		return metadata
	}

	// 目录名 → 标签名 → 可读值
	directories := make(map[string]map[string]string)
	for _, tag := range entries {
		if tag.TagName == "" {
			continue
		}
		// 清理空字符
		value := strings.ReplaceAll(tag.FormattedFirst, "\x00", "")
		if value == "" {
			continue
		}
		dir := directories[tag.IfdPath]
		if dir == nil {
			dir = make(map[string]string)
			directories[tag.IfdPath] = dir
		}
		if _, exists := dir[tag.TagName]; !exists {
			dir[tag.TagName] = value
		}
	}

	if blob, err := json.MarshalIndent(directories, "", "  "); err == nil {
		raw := string(blob)
		metadata.ExifData = &raw
	}

	p.extractCameraInfo(directories, metadata)
	p.extractDateTimeInfo(directories, metadata)
	p.extractTechnicalInfo(directories, metadata)
	p.extractGpsInfo(rawExif, metadata, fileName)

	return metadata
}

// extractRawExif 先做结构化解析，拿不到 EXIF 块时回退到全文件蛮力搜索。
func (p *ExifParser) extractRawExif(r io.ReadSeeker, fileName string) ([]byte, error) {
	size, err := streamSize(r)
	if err != nil {
		return nil, fmt.Errorf("无法探测流长度: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	var rawExif []byte

	if mp := mediaParserFor(ext); mp != nil {
		if mc, pErr := mp.Parse(r, int(size)); pErr == nil {
			_, rawExif, _ = mc.Exif()
		} else {
			log.Printf("[ExifParser] 信息: 结构化解析文件 %s 失败: %v。将尝试蛮力搜索。", fileName, pErr)
		}
	}

	if len(rawExif) == 0 {
		if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil {
			return nil, fmt.Errorf("无法重置读取位置: %w", seekErr)
		}
		rawExif, err = exif.SearchAndExtractExifWithReader(r)
		if err != nil {
			if errors.Is(err, exif.ErrNoExif) {
				return nil, nil
			}
			return nil, err
		}
	}

	return rawExif, nil
}

func (p *ExifParser) extractCameraInfo(dirs map[string]map[string]string, metadata *model.ImageMetadata) {
	stringFields := []struct {
		dst     **string
		ifdPath string
		tagName string
	}{
		{&metadata.CameraMake, ifdRoot, "Make"},
		{&metadata.CameraModel, ifdRoot, "Model"},
		{&metadata.Software, ifdRoot, "Software"},
		{&metadata.Artist, ifdRoot, "Artist"},
		{&metadata.Copyright, ifdRoot, "Copyright"},
		{&metadata.Description, ifdRoot, "ImageDescription"},
		{&metadata.LensInfo, ifdExif, "LensModel"},
	}
	for _, f := range stringFields {
		if value, ok := lookupTag(dirs, f.ifdPath, f.tagName); ok {
			v := value
			*f.dst = &v
		}
	}

	if v, ok := parseTagInt(dirs, ifdRoot, "Orientation"); ok {
		metadata.Orientation = &v
	}
}

// extractDateTimeInfo 拍摄时间回退链: DateTimeOriginal → DateTimeDigitized → IFD0 DateTime，
// 第一个成功解析者生效。
func (p *ExifParser) extractDateTimeInfo(dirs map[string]map[string]string, metadata *model.ImageMetadata) {
	candidates := []struct {
		ifdPath string
		tagName string
	}{
		{ifdExif, "DateTimeOriginal"},
		{ifdExif, "DateTimeDigitized"},
		{ifdRoot, "DateTime"},
	}
	for _, c := range candidates {
		value, ok := lookupTag(dirs, c.ifdPath, c.tagName)
		if !ok {
			continue
		}
		if t, err := time.Parse("2006:01:02 15:04:05", value); err == nil {
			metadata.DateTaken = &t
			return
		}
	}
}

func (p *ExifParser) extractTechnicalInfo(dirs map[string]map[string]string, metadata *model.ImageMetadata) {
	if v, ok := parseTagInt(dirs, ifdExif, "ISOSpeedRatings"); ok {
		metadata.Iso = &v
	}
	if f, ok := parseTagRational(dirs, ifdExif, "FNumber"); ok {
		metadata.Aperture = &f
	}
	if f, ok := parseTagRational(dirs, ifdExif, "ExposureTime"); ok {
		metadata.ShutterSpeed = &f
	}
	if f, ok := parseTagRational(dirs, ifdExif, "FocalLength"); ok {
		metadata.FocalLength = &f
	}
	if v, ok := parseTagInt(dirs, ifdExif, "WhiteBalance"); ok {
		desc := WhiteBalanceDescription(v)
		metadata.WhiteBalance = &desc
	}
	if v, ok := parseTagInt(dirs, ifdExif, "Flash"); ok {
		desc := FlashDescription(v)
		metadata.Flash = &desc
	}
	if v, ok := parseTagInt(dirs, ifdExif, "MeteringMode"); ok {
		desc := MeteringModeDescription(v)
		metadata.MeteringMode = &desc
	}
	if v, ok := parseTagInt(dirs, ifdExif, "ExposureMode"); ok {
		desc := ExposureModeDescription(v)
		metadata.ExposureMode = &desc
	}
	if v, ok := parseTagInt(dirs, ifdExif, "SceneCaptureType"); ok {
		desc := SceneCaptureTypeDescription(v)
		metadata.SceneCaptureType = &desc
	}
	if v, ok := parseTagInt(dirs, ifdExif, "ColorSpace"); ok {
		desc := ColorSpaceDescription(v)
		metadata.ColorSpace = &desc
	}
}

// extractGpsInfo 通过 GPS 目录的大地坐标转换提取经纬度和海拔。
// GPS 数据损坏只影响 GPS 字段本身，不影响整条记录。
func (p *ExifParser) extractGpsInfo(rawExif []byte, metadata *model.ImageMetadata, fileName string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[ExifParser] 警告: 解析文件 %s 的GPS数据时发生异常: %v", fileName, rec)
		}
	}()

	im := exifcommon.NewIfdMapping()
	if err := exifcommon.LoadStandardIfds(im); err != nil {
		log.Printf("[ExifParser] 警告: 加载标准IFD映射失败: %v", err)
		return
	}
	ti := exif.NewTagIndex()

	_, index, err := exif.Collect(im, ti, rawExif)
	if err != nil {
		return
	}

	gpsIfd, err := index.RootIfd.ChildWithIfdPath(exifcommon.IfdGpsInfoStandardIfdIdentity)
	if err != nil {
		return
	}

	gi, err := gpsIfd.GpsInfo()
	if err != nil {
		log.Printf("[ExifParser] 警告: 文件 %s 的GPS目录存在但坐标解析失败: %v", fileName, err)
		return
	}

	lat := gi.Latitude.Decimal()
	lng := gi.Longitude.Decimal()
	metadata.GpsLatitude = &lat
	metadata.GpsLongitude = &lng

	if gi.Altitude != 0 {
		alt := float64(gi.Altitude)
		metadata.GpsAltitude = &alt
	}
}

// lookupTag 返回指定目录内指定标签的已清理值。
func lookupTag(dirs map[string]map[string]string, ifdPath, tagName string) (string, bool) {
	dir, ok := dirs[ifdPath]
	if !ok {
		return "", false
	}
	value, ok := dir[tagName]
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

func parseTagInt(dirs map[string]map[string]string, ifdPath, tagName string) (int, bool) {
	value, ok := lookupTag(dirs, ifdPath, tagName)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseTagRational 解析 "分子/分母" 形式的有理数值，兼容纯小数形式。
func parseTagRational(dirs map[string]map[string]string, ifdPath, tagName string) (float64, bool) {
	value, ok := lookupTag(dirs, ifdPath, tagName)
	if !ok {
		return 0, false
	}
	f, err := parseRational(value)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseRational(s string) (float64, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		return strconv.ParseFloat(parts[0], 64)
	case 2:
		num, err1 := strconv.ParseFloat(parts[0], 64)
		den, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil || den == 0 {
			return 0, errors.New("invalid rational components")
		}
		return num / den, nil
	default:
		return 0, errors.New("invalid rational format")
	}
}

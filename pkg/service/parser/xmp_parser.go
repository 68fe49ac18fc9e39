/*
 * @Description: XMP 解析器：定位内嵌 XMP 包并提取常用 Dublin Core 字段
 * @Author: 安知鱼
 * @Date: 2026-03-04 09:47:28
 * @LastEditTime: 2026-05-19 17:30:12
 * @LastEditors: 安知鱼
 */
package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
)

var (
	xmpPacketStart = []byte("<x:xmpmeta")
	xmpPacketEnd   = []byte("</x:xmpmeta>")
)

// XmpParser 从图片文件中定位内嵌的 XMP 包并解析描述性字段。
// 只做轻量的 XML 字段提取，完整的 XMP 数据模型不在范围内。
type XmpParser struct {
	formats []string
}

// NewXmpParser 构造函数
func NewXmpParser() *XmpParser {
	return &XmpParser{
		formats: []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".webp"},
	}
}

// SupportedFormats 实现 ImageParser 接口
func (p *XmpParser) SupportedFormats() []string {
	return append([]string(nil), p.formats...)
}

// ValidateFile 实现 ImageParser 接口
func (p *XmpParser) ValidateFile(fileName string, _ io.ReadSeeker) bool {
	return validateByExtension(fileName, p.formats)
}

// ParseMetadata 实现 ImageParser 接口。文件中没有 XMP 包不算失败，
// 返回只含 FileName 的记录；读取或解码错误写入 ErrorMessage。
func (p *XmpParser) ParseMetadata(_ context.Context, r io.ReadSeeker, fileName string) *model.ImageMetadata {
	metadata := newBaseMetadata(fileName)

	data, err := io.ReadAll(r)
	if err != nil {
		msg := fmt.Sprintf("XMP parsing failed: %v", err)
		metadata.ErrorMessage = &msg
		return metadata
	}

	packet := locateXmpPacket(data)
	if packet == nil {
		return metadata
	}

	fields, err := decodeXmpFields(packet)
	if err != nil {
		msg := fmt.Sprintf("XMP parsing failed: %v", err)
		metadata.ErrorMessage = &msg
		return metadata
	}
	if len(fields) == 0 {
		return metadata
	}

	// 原始标签块: 目录名 → 标签名 → 值
	if blob, err := json.MarshalIndent(map[string]map[string]string{"XMP": fields}, "", "  "); err == nil {
		raw := string(blob)
		metadata.XmpData = &raw
	}

	if v, ok := fields["dc:description"]; ok {
		metadata.Description = &v
	}
	if v, ok := fields["dc:creator"]; ok {
		metadata.Artist = &v
	}
	if v, ok := fields["dc:rights"]; ok {
		metadata.Copyright = &v
	}
	if v, ok := fields["dc:subject"]; ok {
		metadata.Keywords = &v
	}
	if v, ok := fields["xmp:CreatorTool"]; ok {
		metadata.Software = &v
	}

	return metadata
}

// locateXmpPacket 在文件字节中定位第一个完整的 XMP 包。
func locateXmpPacket(data []byte) []byte {
	start := bytes.Index(data, xmpPacketStart)
	if start < 0 {
		return nil
	}
	end := bytes.Index(data[start:], xmpPacketEnd)
	if end < 0 {
		return nil
	}
	return data[start : start+end+len(xmpPacketEnd)]
}

// decodeXmpFields 用 XML 令牌流提取常用字段。
// rdf 容器 (Seq/Bag/Alt) 里的 rdf:li 值收集起来，多值用逗号连接。
func decodeXmpFields(packet []byte) (map[string]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(packet))
	decoder.Strict = false

	// 关心的元素局部名 → 规范化键名
	wanted := map[string]string{
		"title":       "dc:title",
		"description": "dc:description",
		"creator":     "dc:creator",
		"rights":      "dc:rights",
		"subject":     "dc:subject",
		"CreatorTool": "xmp:CreatorTool",
		"CreateDate":  "xmp:CreateDate",
	}

	fields := make(map[string]string)
	var currentKey string
	var values []string
	var textBuf strings.Builder

	flush := func() {
		if currentKey == "" {
			return
		}
		if text := strings.TrimSpace(textBuf.String()); text != "" {
			values = append(values, text)
		}
		if len(values) > 0 {
			fields[currentKey] = strings.Join(values, ", ")
		}
		currentKey = ""
		values = nil
		textBuf.Reset()
	}

	depth := 0
	keyDepth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if key, ok := wanted[t.Name.Local]; ok && currentKey == "" {
				currentKey = key
				keyDepth = depth
				continue
			}
			if currentKey != "" && t.Name.Local == "li" {
				// 进入列表项前丢弃容器层的空白文本
				textBuf.Reset()
			}
		case xml.EndElement:
			if currentKey != "" {
				if t.Name.Local == "li" {
					if text := strings.TrimSpace(textBuf.String()); text != "" {
						values = append(values, text)
					}
					textBuf.Reset()
				}
				if depth == keyDepth {
					flush()
				}
			}
			depth--
		case xml.CharData:
			if currentKey != "" {
				textBuf.Write(t)
			}
		}
	}
	flush()

	return fields, nil
}

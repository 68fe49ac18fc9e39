/*
 * @Description: 图片元数据解析器的统一接口与公共辅助
 * @Author: 安知鱼
 * @Date: 2026-03-03 09:22:17
 * @LastEditTime: 2026-05-12 11:08:44
 * @LastEditors: 安知鱼
 */
package parser

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
)

// ImageParser 是格式解析器的统一能力集。
// 解析器注册为一个有序列表，注册顺序即合并优先级：同一字段先被成功提取者生效。
type ImageParser interface {
	// ValidateFile 判断本解析器是否适用于该文件（按扩展名，大小写不敏感）。
	// 调用方保证在 ParseMetadata 前把流重置到起始位置。
	ValidateFile(fileName string, r io.ReadSeeker) bool

	// ParseMetadata 从流中解析元数据。对调用方永不失败：
	// 内部解码出错时返回只含 FileName 的记录，并把失败原因写入 ErrorMessage。
	ParseMetadata(ctx context.Context, r io.ReadSeeker, fileName string) *model.ImageMetadata

	// SupportedFormats 返回小写、带点前缀的扩展名列表。
	SupportedFormats() []string
}

// validateByExtension 按声明的扩展名列表做大小写不敏感匹配。
func validateByExtension(fileName string, formats []string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return false
	}
	for _, f := range formats {
		if ext == f {
			return true
		}
	}
	return false
}

// newBaseMetadata 创建解析器输出的基础记录，状态固定为 Processing。
func newBaseMetadata(fileName string) *model.ImageMetadata {
	return model.NewImageMetadata(fileName, 0, "")
}

// streamSize 通过 Seek 探测流长度，并把位置还原到起始处。
func streamSize(r io.ReadSeeker) (int64, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}

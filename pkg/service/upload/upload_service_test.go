/*
 * @Description: 批处理管线单元测试：准入校验、失败隔离、合并优先级
 * @Author: 安知鱼
 * @Date: 2026-05-22 10:14:51
 * @LastEditTime: 2026-06-02 16:40:12
 * @LastEditors: 安知鱼
 */
package upload

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/anzhiyu-c/picmeta-app/pkg/constant"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/keyword"
	"github.com/anzhiyu-c/picmeta-app/pkg/service/parser"
)

// stampParser 把固定的相机厂商写入结果，用于验证合并顺序。
type stampParser struct {
	make string
}

func (p *stampParser) SupportedFormats() []string { return []string{".jpg"} }

func (p *stampParser) ValidateFile(fileName string, r io.ReadSeeker) bool { return true }

func (p *stampParser) ParseMetadata(ctx context.Context, r io.ReadSeeker, fileName string) *model.ImageMetadata {
	m := &model.ImageMetadata{FileName: fileName}
	m.CameraMake = &p.make
	return m
}

// panicParser 对指定文件名抛出异常，模拟行为不可控的外部解析器。
type panicParser struct {
	target string
}

func (p *panicParser) SupportedFormats() []string { return []string{".jpg"} }

func (p *panicParser) ValidateFile(fileName string, r io.ReadSeeker) bool {
	return fileName == p.target
}

func (p *panicParser) ParseMetadata(ctx context.Context, r io.ReadSeeker, fileName string) *model.ImageMetadata {
	panic("parser exploded")
}

func newTestService(parsers []parser.ImageParser, maxFileSize int64) *Service {
	return NewService(parsers, nil, keyword.NewService(nil, nil), nil, nil, maxFileSize)
}

func TestValidateFile(t *testing.T) {
	svc := newTestService(nil, 0)

	tests := []struct {
		name        string
		fileName    string
		size        int64
		contentType string
		wantReasons int
		wantContain string
	}{
		{"合法JPEG", "photo.jpg", 1024, "image/jpeg", 0, ""},
		{"大小写不敏感的MIME", "photo.jpg", 1024, "IMAGE/JPEG", 0, ""},
		{"MIME缺失但扩展名兜底", "shot.HEIC", 1024, "", 0, ""},
		{"恰好到达大小上限", "big.png", DefaultMaxFileSize, "image/png", 0, ""},
		{"超过大小上限一个字节", "big.png", DefaultMaxFileSize + 1, "image/png", 1, "文件超过大小限制"},
		{"空文件", "empty.jpg", 0, "image/jpeg", 1, "文件为空"},
		{"类型不支持", "doc.txt", 1024, "text/plain", 1, "不支持的文件类型"},
		{"空文件且类型不支持", "doc.txt", 0, "text/plain", 2, "文件为空"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons := svc.ValidateFile(tt.fileName, tt.size, tt.contentType)
			if len(reasons) != tt.wantReasons {
				t.Fatalf("拒绝原因数量 = %d, want %d (%v)", len(reasons), tt.wantReasons, reasons)
			}
			var joined strings.Builder
			for _, r := range reasons {
				joined.WriteString(r.Error())
				joined.WriteString(";")
			}
			if tt.wantContain != "" && !strings.Contains(joined.String(), tt.wantContain) {
				t.Errorf("拒绝原因 %v 应包含 %q", reasons, tt.wantContain)
			}
		})
	}
}

func TestValidateFileSentinels(t *testing.T) {
	svc := newTestService(nil, 0)

	t.Run("超限原因可被识别", func(t *testing.T) {
		reasons := svc.ValidateFile("big.png", DefaultMaxFileSize+1, "image/png")
		if len(reasons) != 1 || !errors.Is(reasons[0], constant.ErrFileTooLarge) {
			t.Errorf("超限拒绝应包装 ErrFileTooLarge: %v", reasons)
		}
	})
	t.Run("类型原因可被识别", func(t *testing.T) {
		reasons := svc.ValidateFile("doc.txt", 1024, "text/plain")
		if len(reasons) != 1 || !errors.Is(reasons[0], constant.ErrUnsupportedFormat) {
			t.Errorf("类型拒绝应包装 ErrUnsupportedFormat: %v", reasons)
		}
	})
}

func TestMaxFileSizeDefault(t *testing.T) {
	if got := newTestService(nil, 0).MaxFileSize(); got != DefaultMaxFileSize {
		t.Errorf("非法上限应回退到默认值, got %d", got)
	}
	if got := newTestService(nil, 1024).MaxFileSize(); got != 1024 {
		t.Errorf("显式上限应生效, got %d", got)
	}
}

func TestProcessFileCompletes(t *testing.T) {
	svc := newTestService(nil, 0)
	content := "hello"

	m := svc.ProcessFile(context.Background(), FileInput{
		FileName:    "note.jpg",
		Size:        int64(len(content)),
		ContentType: "image/jpeg",
		Reader:      strings.NewReader(content),
	})

	if m.ProcessingStatus != model.StatusCompleted {
		t.Fatalf("状态 = %s, want %s (错误: %v)", m.ProcessingStatus, model.StatusCompleted, m.ErrorMessage)
	}
	if m.FileHash == nil || *m.FileHash != "5d41402abc4b2a76b9719d911017c592" {
		t.Errorf("内容指纹不正确: %v", m.FileHash)
	}
	if m.MimeType == nil || *m.MimeType == "" {
		t.Error("应通过内容嗅探回填 MIME 类型")
	}
	if m.FileSizeBytes != uint64(len(content)) {
		t.Errorf("文件大小应以实际读取字节数为准, got %d", m.FileSizeBytes)
	}
}

func TestProcessFileBufferFailures(t *testing.T) {
	t.Run("输入流为空", func(t *testing.T) {
		svc := newTestService(nil, 0)
		m := svc.ProcessFile(context.Background(), FileInput{FileName: "ghost.jpg", Size: 10, ContentType: "image/jpeg"})
		if m.ProcessingStatus != model.StatusFailed {
			t.Fatalf("状态 = %s, want %s", m.ProcessingStatus, model.StatusFailed)
		}
		if m.ErrorMessage == nil || !strings.Contains(*m.ErrorMessage, "failed to buffer file") {
			t.Errorf("错误信息不正确: %v", m.ErrorMessage)
		}
	})

	t.Run("实际内容超过上限", func(t *testing.T) {
		svc := newTestService(nil, 16)
		m := svc.ProcessFile(context.Background(), FileInput{
			FileName:    "oversize.jpg",
			Size:        8, // 声明大小撒谎，以实际字节数为准
			ContentType: "image/jpeg",
			Reader:      strings.NewReader(strings.Repeat("x", 32)),
		})
		if m.ProcessingStatus != model.StatusFailed {
			t.Fatalf("状态 = %s, want %s", m.ProcessingStatus, model.StatusFailed)
		}
		if m.ErrorMessage == nil || !strings.Contains(*m.ErrorMessage, "failed to buffer file") {
			t.Errorf("错误信息不正确: %v", m.ErrorMessage)
		}
	})
}

func TestProcessFileMergePriority(t *testing.T) {
	parsers := []parser.ImageParser{
		&stampParser{make: "Canon"},
		&stampParser{make: "Nikon"},
	}
	svc := newTestService(parsers, 0)

	m := svc.ProcessFile(context.Background(), FileInput{
		FileName:    "dual.jpg",
		Size:        4,
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("data"),
	})

	if m.ProcessingStatus != model.StatusCompleted {
		t.Fatalf("状态 = %s, want %s", m.ProcessingStatus, model.StatusCompleted)
	}
	if m.CameraMake == nil || *m.CameraMake != "Canon" {
		t.Errorf("先注册的解析器应获胜, got %v", m.CameraMake)
	}
}

func TestProcessBatchIsolation(t *testing.T) {
	parsers := []parser.ImageParser{&panicParser{target: "bomb.jpg"}}
	svc := newTestService(parsers, 0)

	inputs := []FileInput{
		{FileName: "a.jpg", Size: 3, ContentType: "image/jpeg", Reader: strings.NewReader("aaa")},
		{FileName: "bomb.jpg", Size: 3, ContentType: "image/jpeg", Reader: strings.NewReader("bbb")},
		{FileName: "c.jpg", Size: 3, ContentType: "image/jpeg", Reader: strings.NewReader("ccc")},
	}

	results := svc.ProcessBatch(context.Background(), inputs)
	if len(results) != len(inputs) {
		t.Fatalf("返回条目数 = %d, want %d", len(results), len(inputs))
	}
	for i, input := range inputs {
		if results[i].FileName != input.FileName {
			t.Errorf("第 %d 条顺序错乱: got %s, want %s", i, results[i].FileName, input.FileName)
		}
	}

	if results[0].ProcessingStatus != model.StatusCompleted {
		t.Errorf("a.jpg 状态 = %s, want %s", results[0].ProcessingStatus, model.StatusCompleted)
	}
	if results[2].ProcessingStatus != model.StatusCompleted {
		t.Errorf("c.jpg 状态 = %s, want %s", results[2].ProcessingStatus, model.StatusCompleted)
	}

	bomb := results[1]
	if bomb.ProcessingStatus != model.StatusFailed {
		t.Fatalf("bomb.jpg 状态 = %s, want %s", bomb.ProcessingStatus, model.StatusFailed)
	}
	if bomb.ErrorMessage == nil || !strings.Contains(*bomb.ErrorMessage, "processing panicked") {
		t.Errorf("异常文件的错误信息不正确: %v", bomb.ErrorMessage)
	}
}

/*
 * @Description: XMP 解析器单元测试：包定位与 Dublin Core 字段提取
 * @Author: 安知鱼
 * @Date: 2026-05-23 09:31:44
 * @LastEditTime: 2026-06-02 17:05:28
 * @LastEditors: 安知鱼
 */
package parser

import (
	"context"
	"strings"
	"testing"
)

const sampleXmpPacket = `<x:xmpmeta xmlns:x="adobe:ns:meta/">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about=""
    xmlns:dc="http://purl.org/dc/elements/1.1/"
    xmlns:xmp="http://ns.adobe.com/xap/1.0/">
   <dc:description>
    <rdf:Alt>
     <rdf:li xml:lang="x-default">Sunset over the bay</rdf:li>
    </rdf:Alt>
   </dc:description>
   <dc:creator>
    <rdf:Seq>
     <rdf:li>Jane Doe</rdf:li>
    </rdf:Seq>
   </dc:creator>
   <dc:subject>
    <rdf:Bag>
     <rdf:li>sunset</rdf:li>
     <rdf:li>ocean</rdf:li>
     <rdf:li>travel</rdf:li>
    </rdf:Bag>
   </dc:subject>
   <dc:rights>
    <rdf:Alt>
     <rdf:li xml:lang="x-default">© 2023 Jane Doe</rdf:li>
    </rdf:Alt>
   </dc:rights>
   <xmp:CreatorTool>Adobe Lightroom 12.0</xmp:CreatorTool>
  </rdf:Description>
 </rdf:RDF>
</x:xmpmeta>`

func TestXmpValidateFile(t *testing.T) {
	p := NewXmpParser()

	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{"JPEG", "photo.jpg", true},
		{"大写扩展名", "PHOTO.TIFF", true},
		{"WebP", "shot.webp", true},
		{"不支持的格式", "icon.gif", false},
		{"无扩展名", "README", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ValidateFile(tt.fileName, nil); got != tt.want {
				t.Errorf("ValidateFile(%s) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestXmpParseMetadata(t *testing.T) {
	p := NewXmpParser()

	// 包前后夹杂二进制噪声，模拟真实 JPEG 中的内嵌位置
	fileBytes := "\xff\xd8\xff\xe1 garbage " + sampleXmpPacket + " trailing bytes"

	m := p.ParseMetadata(context.Background(), strings.NewReader(fileBytes), "embedded.jpg")
	if m == nil {
		t.Fatal("返回值不应为 nil")
	}
	if m.ErrorMessage != nil {
		t.Fatalf("不应产生解析错误: %s", *m.ErrorMessage)
	}

	if m.Description == nil || *m.Description != "Sunset over the bay" {
		t.Errorf("Description = %v", m.Description)
	}
	if m.Artist == nil || *m.Artist != "Jane Doe" {
		t.Errorf("Artist = %v", m.Artist)
	}
	if m.Copyright == nil || *m.Copyright != "© 2023 Jane Doe" {
		t.Errorf("Copyright = %v", m.Copyright)
	}
	if m.Keywords == nil || *m.Keywords != "sunset, ocean, travel" {
		t.Errorf("多值 subject 应以逗号连接: %v", m.Keywords)
	}
	if m.Software == nil || *m.Software != "Adobe Lightroom 12.0" {
		t.Errorf("Software = %v", m.Software)
	}
	if m.XmpData == nil || !strings.Contains(*m.XmpData, "dc:creator") {
		t.Error("原始标签块应包含提取到的字段")
	}
}

func TestXmpParseMetadataNoPacket(t *testing.T) {
	p := NewXmpParser()

	m := p.ParseMetadata(context.Background(), strings.NewReader("plain bytes without any packet"), "bare.jpg")
	if m == nil {
		t.Fatal("返回值不应为 nil")
	}
	if m.ErrorMessage != nil {
		t.Errorf("缺少 XMP 包不算失败: %s", *m.ErrorMessage)
	}
	if m.FileName != "bare.jpg" {
		t.Errorf("FileName = %s", m.FileName)
	}
	if m.Description != nil || m.Artist != nil || m.XmpData != nil {
		t.Error("没有 XMP 包时不应提取任何字段")
	}
}

func TestLocateXmpPacket(t *testing.T) {
	t.Run("有起始无结束", func(t *testing.T) {
		if got := locateXmpPacket([]byte("<x:xmpmeta truncated")); got != nil {
			t.Errorf("不完整的包应返回 nil, got %q", got)
		}
	})

	t.Run("完整包", func(t *testing.T) {
		data := []byte("junk<x:xmpmeta>body</x:xmpmeta>junk")
		got := locateXmpPacket(data)
		if string(got) != "<x:xmpmeta>body</x:xmpmeta>" {
			t.Errorf("定位结果 = %q", got)
		}
	})
}

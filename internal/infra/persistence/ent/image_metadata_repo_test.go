/*
 * @Description: 仓储集成测试：指纹唯一约束与可清空字段的持久化
 * @Author: 安知鱼
 * @Date: 2026-06-16 10:08:27
 * @LastEditTime: 2026-06-16 15:33:02
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/anzhiyu-c/picmeta-app/ent/enttest"
	"github.com/anzhiyu-c/picmeta-app/pkg/constant"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/repository"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

func strp(s string) *string { return &s }

// newTestRepo 在共享缓存的内存库上建一个迁移完成的仓储，库名按测试隔离。
func newTestRepo(t *testing.T) repository.ImageMetadataRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return NewEntImageMetadataRepository(client)
}

func TestCreateDuplicateHashConflict(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := model.NewImageMetadata("a.jpg", 3, "image/jpeg")
	first.FileHash = strp("5d41402abc4b2a76b9719d911017c592")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("首次入库失败: %v", err)
	}

	dup := model.NewImageMetadata("b.jpg", 3, "image/jpeg")
	dup.FileHash = strp("5d41402abc4b2a76b9719d911017c592")
	if err := repo.Create(ctx, dup); !errors.Is(err, constant.ErrConflict) {
		t.Fatalf("相同指纹应返回 ErrConflict, got %v", err)
	}

	other := model.NewImageMetadata("c.jpg", 4, "image/jpeg")
	other.FileHash = strp("0cc175b9c0f1b6a831c399e269772661")
	if err := repo.Create(ctx, other); err != nil {
		t.Errorf("不同指纹应正常入库: %v", err)
	}
}

func TestCreateNilHashNotConstrained(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// 唯一索引不约束 NULL，未算出指纹的失败记录可以共存
	for _, name := range []string{"x.jpg", "y.jpg"} {
		m := model.NewImageMetadata(name, 1, "image/jpeg")
		m.MarkAsFailed("failed to buffer file")
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("无指纹记录 %s 入库失败: %v", name, err)
		}
	}
}

func TestUpdateClearsKeywords(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m := model.NewImageMetadata("k.jpg", 2, "image/jpeg")
	m.Keywords = strp("canon, temple")
	m.MarkAsCompleted()
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("入库失败: %v", err)
	}

	// 保存空关键词列表等价于清空该列
	m.SetKeywordList(nil)
	if err := repo.Update(ctx, m); err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	got, err := repo.FindByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if got.Keywords != nil {
		t.Errorf("关键词应被清空, got %q", *got.Keywords)
	}

	m.SetKeywordList([]string{"harbor", "sunset"})
	if err := repo.Update(ctx, m); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	got, err = repo.FindByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if got.Keywords == nil || *got.Keywords != "harbor, sunset" {
		t.Errorf("关键词写入不正确: %v", got.Keywords)
	}
}

func TestUpdateClearsErrorMessage(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m := model.NewImageMetadata("e.jpg", 2, "image/jpeg")
	m.MarkAsFailed("processing panicked: boom")
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("入库失败: %v", err)
	}

	m.ResetProcessingState()
	if err := repo.Update(ctx, m); err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	got, err := repo.FindByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if got.ProcessingStatus != model.StatusPending {
		t.Errorf("状态 = %s, want %s", got.ProcessingStatus, model.StatusPending)
	}
	if got.ErrorMessage != nil {
		t.Errorf("错误信息应被清空, got %q", *got.ErrorMessage)
	}
}

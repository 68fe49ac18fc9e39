/*
 * @Description: 图片元数据仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2026-03-06 15:42:20
 * @LastEditTime: 2026-06-02 11:37:49
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"time"

	"github.com/anzhiyu-c/picmeta-app/ent"
	"github.com/anzhiyu-c/picmeta-app/ent/imagemetadata"
	"github.com/anzhiyu-c/picmeta-app/pkg/constant"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/model"
	"github.com/anzhiyu-c/picmeta-app/pkg/domain/repository"
)

type entImageMetadataRepo struct {
	client *ent.Client
}

// NewEntImageMetadataRepository 是 entImageMetadataRepo 的构造函数
func NewEntImageMetadataRepository(client *ent.Client) repository.ImageMetadataRepository {
	return &entImageMetadataRepo{client: client}
}

// Create 实现了接口
func (r *entImageMetadataRepo) Create(ctx context.Context, m *model.ImageMetadata) error {
	po, err := r.client.ImageMetadata.Create().
		SetFileName(m.FileName).
		SetFileSizeBytes(m.FileSizeBytes).
		SetNillableMimeType(m.MimeType).
		SetNillableFileHash(m.FileHash).
		SetNillableWidth(m.Width).
		SetNillableHeight(m.Height).
		SetNillableExifData(m.ExifData).
		SetNillableXmpData(m.XmpData).
		SetNillableIptcData(m.IptcData).
		SetNillableAiAnalysis(m.AiAnalysis).
		SetNillableKeywords(m.Keywords).
		SetNillableCameraMake(m.CameraMake).
		SetNillableCameraModel(m.CameraModel).
		SetNillableLensInfo(m.LensInfo).
		SetNillableSoftware(m.Software).
		SetNillableDateTaken(m.DateTaken).
		SetNillableIso(m.Iso).
		SetNillableAperture(m.Aperture).
		SetNillableShutterSpeed(m.ShutterSpeed).
		SetNillableFocalLength(m.FocalLength).
		SetNillableGpsLatitude(m.GpsLatitude).
		SetNillableGpsLongitude(m.GpsLongitude).
		SetNillableGpsAltitude(m.GpsAltitude).
		SetNillableLocationName(m.LocationName).
		SetNillableOrientation(m.Orientation).
		SetNillableDescription(m.Description).
		SetNillableArtist(m.Artist).
		SetNillableCopyright(m.Copyright).
		SetNillableWhiteBalance(m.WhiteBalance).
		SetNillableFlash(m.Flash).
		SetNillableMeteringMode(m.MeteringMode).
		SetNillableExposureMode(m.ExposureMode).
		SetNillableColorSpace(m.ColorSpace).
		SetNillableSceneCaptureType(m.SceneCaptureType).
		SetProcessingStatus(string(m.ProcessingStatus)).
		SetNillableErrorMessage(m.ErrorMessage).
		SetNillableUserID(m.UserID).
		SetNillableBatchID(m.BatchID).
		Save(ctx)
	if err != nil {
		// 内容指纹上的唯一约束被触发时交给调用方决策
		if ent.IsConstraintError(err) {
			return constant.ErrConflict
		}
		return err
	}

	// 回填数据库生成的字段
	m.ID = po.ID
	m.CreatedAt = po.CreatedAt
	m.UpdatedAt = po.UpdatedAt
	return nil
}

// Update 实现了接口
func (r *entImageMetadataRepo) Update(ctx context.Context, m *model.ImageMetadata) error {
	update := r.client.ImageMetadata.UpdateOneID(m.ID).
		SetNillableMimeType(m.MimeType).
		SetNillableFileHash(m.FileHash).
		SetNillableWidth(m.Width).
		SetNillableHeight(m.Height).
		SetNillableExifData(m.ExifData).
		SetNillableXmpData(m.XmpData).
		SetNillableIptcData(m.IptcData).
		SetNillableAiAnalysis(m.AiAnalysis).
		SetNillableCameraMake(m.CameraMake).
		SetNillableCameraModel(m.CameraModel).
		SetNillableLensInfo(m.LensInfo).
		SetNillableSoftware(m.Software).
		SetNillableDateTaken(m.DateTaken).
		SetNillableIso(m.Iso).
		SetNillableAperture(m.Aperture).
		SetNillableShutterSpeed(m.ShutterSpeed).
		SetNillableFocalLength(m.FocalLength).
		SetNillableGpsLatitude(m.GpsLatitude).
		SetNillableGpsLongitude(m.GpsLongitude).
		SetNillableGpsAltitude(m.GpsAltitude).
		SetNillableLocationName(m.LocationName).
		SetNillableOrientation(m.Orientation).
		SetNillableDescription(m.Description).
		SetNillableArtist(m.Artist).
		SetNillableCopyright(m.Copyright).
		SetNillableWhiteBalance(m.WhiteBalance).
		SetNillableFlash(m.Flash).
		SetNillableMeteringMode(m.MeteringMode).
		SetNillableExposureMode(m.ExposureMode).
		SetNillableColorSpace(m.ColorSpace).
		SetNillableSceneCaptureType(m.SceneCaptureType).
		SetProcessingStatus(string(m.ProcessingStatus))

	// SetNillable 对 nil 指针是空操作，会被清空的字段要显式清列：
	// 重置和完成会清掉 ErrorMessage，保存空关键词列表会清掉 Keywords
	if m.ErrorMessage != nil {
		update.SetErrorMessage(*m.ErrorMessage)
	} else {
		update.ClearErrorMessage()
	}
	if m.Keywords != nil {
		update.SetKeywords(*m.Keywords)
	} else {
		update.ClearKeywords()
	}

	err := update.Exec(ctx)
	if ent.IsNotFound(err) {
		return constant.ErrNotFound
	}
	return err
}

// FindByID 实现了接口
func (r *entImageMetadataRepo) FindByID(ctx context.Context, id uint) (*model.ImageMetadata, error) {
	po, err := r.client.ImageMetadata.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainImageMetadata(po), nil
}

// FindByHash 实现了接口。同一指纹命中多条时返回最早的一条。
func (r *entImageMetadataRepo) FindByHash(ctx context.Context, hash string) (*model.ImageMetadata, error) {
	po, err := r.client.ImageMetadata.Query().
		Where(imagemetadata.FileHash(hash)).
		Order(ent.Asc(imagemetadata.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainImageMetadata(po), nil
}

// List 实现了接口
func (r *entImageMetadataRepo) List(ctx context.Context, opts repository.ImageMetadataListOptions) ([]*model.ImageMetadata, int, error) {
	query := r.client.ImageMetadata.Query()

	if opts.UserID != "" {
		query = query.Where(imagemetadata.UserID(opts.UserID))
	}
	if opts.BatchID != "" {
		query = query.Where(imagemetadata.BatchID(opts.BatchID))
	}
	if opts.Status != "" {
		query = query.Where(imagemetadata.ProcessingStatus(string(opts.Status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	query = query.Order(ent.Desc(imagemetadata.FieldCreatedAt), ent.Desc(imagemetadata.FieldID))
	if opts.Skip > 0 {
		query = query.Offset(opts.Skip)
	}
	if opts.Take > 0 {
		query = query.Limit(opts.Take)
	}

	pos, err := query.All(ctx)
	if err != nil {
		return nil, 0, err
	}

	models := make([]*model.ImageMetadata, len(pos))
	for i := range pos {
		models[i] = toDomainImageMetadata(pos[i])
	}
	return models, total, nil
}

// AllKeywordStrings 实现了接口
func (r *entImageMetadataRepo) AllKeywordStrings(ctx context.Context) ([]string, error) {
	return r.client.ImageMetadata.Query().
		Where(
			imagemetadata.KeywordsNotNil(),
			imagemetadata.KeywordsNEQ(""),
		).
		Select(imagemetadata.FieldKeywords).
		Strings(ctx)
}

// ResetStuckProcessing 实现了接口
func (r *entImageMetadataRepo) ResetStuckProcessing(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	return r.client.ImageMetadata.Update().
		Where(
			imagemetadata.ProcessingStatus(string(model.StatusProcessing)),
			imagemetadata.UpdatedAtLT(cutoff),
		).
		SetProcessingStatus(string(model.StatusPending)).
		Save(ctx)
}

// toDomainImageMetadata 是一个辅助函数
func toDomainImageMetadata(p *ent.ImageMetadata) *model.ImageMetadata {
	if p == nil {
		return nil
	}
	return &model.ImageMetadata{
		ID:               p.ID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		FileName:         p.FileName,
		FileSizeBytes:    p.FileSizeBytes,
		MimeType:         p.MimeType,
		FileHash:         p.FileHash,
		Width:            p.Width,
		Height:           p.Height,
		ExifData:         p.ExifData,
		XmpData:          p.XmpData,
		IptcData:         p.IptcData,
		AiAnalysis:       p.AiAnalysis,
		Keywords:         p.Keywords,
		CameraMake:       p.CameraMake,
		CameraModel:      p.CameraModel,
		LensInfo:         p.LensInfo,
		Software:         p.Software,
		DateTaken:        p.DateTaken,
		Iso:              p.Iso,
		Aperture:         p.Aperture,
		ShutterSpeed:     p.ShutterSpeed,
		FocalLength:      p.FocalLength,
		GpsLatitude:      p.GpsLatitude,
		GpsLongitude:     p.GpsLongitude,
		GpsAltitude:      p.GpsAltitude,
		LocationName:     p.LocationName,
		Orientation:      p.Orientation,
		Description:      p.Description,
		Artist:           p.Artist,
		Copyright:        p.Copyright,
		WhiteBalance:     p.WhiteBalance,
		Flash:            p.Flash,
		MeteringMode:     p.MeteringMode,
		ExposureMode:     p.ExposureMode,
		ColorSpace:       p.ColorSpace,
		SceneCaptureType: p.SceneCaptureType,
		ProcessingStatus: model.ProcessingStatus(p.ProcessingStatus),
		ErrorMessage:     p.ErrorMessage,
		UserID:           p.UserID,
		BatchID:          p.BatchID,
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/picmeta-app/ent/imagemetadata"
)

// ImageMetadataCreate is the builder for creating a ImageMetadata entity.
type ImageMetadataCreate struct {
	config
	mutation *ImageMetadataMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (imc *ImageMetadataCreate) SetCreatedAt(t time.Time) *ImageMetadataCreate {
	imc.mutation.SetCreatedAt(t)
	return imc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableCreatedAt(t *time.Time) *ImageMetadataCreate {
	if t != nil {
		imc.SetCreatedAt(*t)
	}
	return imc
}

// SetUpdatedAt sets the "updated_at" field.
func (imc *ImageMetadataCreate) SetUpdatedAt(t time.Time) *ImageMetadataCreate {
	imc.mutation.SetUpdatedAt(t)
	return imc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableUpdatedAt(t *time.Time) *ImageMetadataCreate {
	if t != nil {
		imc.SetUpdatedAt(*t)
	}
	return imc
}

// SetFileName sets the "file_name" field.
func (imc *ImageMetadataCreate) SetFileName(s string) *ImageMetadataCreate {
	imc.mutation.SetFileName(s)
	return imc
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (imc *ImageMetadataCreate) SetFileSizeBytes(u uint64) *ImageMetadataCreate {
	imc.mutation.SetFileSizeBytes(u)
	return imc
}

// SetMimeType sets the "mime_type" field.
func (imc *ImageMetadataCreate) SetMimeType(s string) *ImageMetadataCreate {
	imc.mutation.SetMimeType(s)
	return imc
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableMimeType(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetMimeType(*s)
	}
	return imc
}

// SetFileHash sets the "file_hash" field.
func (imc *ImageMetadataCreate) SetFileHash(s string) *ImageMetadataCreate {
	imc.mutation.SetFileHash(s)
	return imc
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableFileHash(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetFileHash(*s)
	}
	return imc
}

// SetWidth sets the "width" field.
func (imc *ImageMetadataCreate) SetWidth(u uint) *ImageMetadataCreate {
	imc.mutation.SetWidth(u)
	return imc
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableWidth(u *uint) *ImageMetadataCreate {
	if u != nil {
		imc.SetWidth(*u)
	}
	return imc
}

// SetHeight sets the "height" field.
func (imc *ImageMetadataCreate) SetHeight(u uint) *ImageMetadataCreate {
	imc.mutation.SetHeight(u)
	return imc
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableHeight(u *uint) *ImageMetadataCreate {
	if u != nil {
		imc.SetHeight(*u)
	}
	return imc
}

// SetExifData sets the "exif_data" field.
func (imc *ImageMetadataCreate) SetExifData(s string) *ImageMetadataCreate {
	imc.mutation.SetExifData(s)
	return imc
}

// SetNillableExifData sets the "exif_data" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableExifData(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetExifData(*s)
	}
	return imc
}

// SetXmpData sets the "xmp_data" field.
func (imc *ImageMetadataCreate) SetXmpData(s string) *ImageMetadataCreate {
	imc.mutation.SetXmpData(s)
	return imc
}

// SetNillableXmpData sets the "xmp_data" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableXmpData(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetXmpData(*s)
	}
	return imc
}

// SetIptcData sets the "iptc_data" field.
func (imc *ImageMetadataCreate) SetIptcData(s string) *ImageMetadataCreate {
	imc.mutation.SetIptcData(s)
	return imc
}

// SetNillableIptcData sets the "iptc_data" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableIptcData(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetIptcData(*s)
	}
	return imc
}

// SetAiAnalysis sets the "ai_analysis" field.
func (imc *ImageMetadataCreate) SetAiAnalysis(s string) *ImageMetadataCreate {
	imc.mutation.SetAiAnalysis(s)
	return imc
}

// SetNillableAiAnalysis sets the "ai_analysis" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableAiAnalysis(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetAiAnalysis(*s)
	}
	return imc
}

// SetKeywords sets the "keywords" field.
func (imc *ImageMetadataCreate) SetKeywords(s string) *ImageMetadataCreate {
	imc.mutation.SetKeywords(s)
	return imc
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableKeywords(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetKeywords(*s)
	}
	return imc
}

// SetCameraMake sets the "camera_make" field.
func (imc *ImageMetadataCreate) SetCameraMake(s string) *ImageMetadataCreate {
	imc.mutation.SetCameraMake(s)
	return imc
}

// SetNillableCameraMake sets the "camera_make" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableCameraMake(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetCameraMake(*s)
	}
	return imc
}

// SetCameraModel sets the "camera_model" field.
func (imc *ImageMetadataCreate) SetCameraModel(s string) *ImageMetadataCreate {
	imc.mutation.SetCameraModel(s)
	return imc
}

// SetNillableCameraModel sets the "camera_model" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableCameraModel(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetCameraModel(*s)
	}
	return imc
}

// SetLensInfo sets the "lens_info" field.
func (imc *ImageMetadataCreate) SetLensInfo(s string) *ImageMetadataCreate {
	imc.mutation.SetLensInfo(s)
	return imc
}

// SetNillableLensInfo sets the "lens_info" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableLensInfo(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetLensInfo(*s)
	}
	return imc
}

// SetSoftware sets the "software" field.
func (imc *ImageMetadataCreate) SetSoftware(s string) *ImageMetadataCreate {
	imc.mutation.SetSoftware(s)
	return imc
}

// SetNillableSoftware sets the "software" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableSoftware(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetSoftware(*s)
	}
	return imc
}

// SetDateTaken sets the "date_taken" field.
func (imc *ImageMetadataCreate) SetDateTaken(t time.Time) *ImageMetadataCreate {
	imc.mutation.SetDateTaken(t)
	return imc
}

// SetNillableDateTaken sets the "date_taken" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableDateTaken(t *time.Time) *ImageMetadataCreate {
	if t != nil {
		imc.SetDateTaken(*t)
	}
	return imc
}

// SetIso sets the "iso" field.
func (imc *ImageMetadataCreate) SetIso(i int) *ImageMetadataCreate {
	imc.mutation.SetIso(i)
	return imc
}

// SetNillableIso sets the "iso" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableIso(i *int) *ImageMetadataCreate {
	if i != nil {
		imc.SetIso(*i)
	}
	return imc
}

// SetAperture sets the "aperture" field.
func (imc *ImageMetadataCreate) SetAperture(f float64) *ImageMetadataCreate {
	imc.mutation.SetAperture(f)
	return imc
}

// SetNillableAperture sets the "aperture" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableAperture(f *float64) *ImageMetadataCreate {
	if f != nil {
		imc.SetAperture(*f)
	}
	return imc
}

// SetShutterSpeed sets the "shutter_speed" field.
func (imc *ImageMetadataCreate) SetShutterSpeed(f float64) *ImageMetadataCreate {
	imc.mutation.SetShutterSpeed(f)
	return imc
}

// SetNillableShutterSpeed sets the "shutter_speed" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableShutterSpeed(f *float64) *ImageMetadataCreate {
	if f != nil {
		imc.SetShutterSpeed(*f)
	}
	return imc
}

// SetFocalLength sets the "focal_length" field.
func (imc *ImageMetadataCreate) SetFocalLength(f float64) *ImageMetadataCreate {
	imc.mutation.SetFocalLength(f)
	return imc
}

// SetNillableFocalLength sets the "focal_length" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableFocalLength(f *float64) *ImageMetadataCreate {
	if f != nil {
		imc.SetFocalLength(*f)
	}
	return imc
}

// SetGpsLatitude sets the "gps_latitude" field.
func (imc *ImageMetadataCreate) SetGpsLatitude(f float64) *ImageMetadataCreate {
	imc.mutation.SetGpsLatitude(f)
	return imc
}

// SetNillableGpsLatitude sets the "gps_latitude" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableGpsLatitude(f *float64) *ImageMetadataCreate {
	if f != nil {
		imc.SetGpsLatitude(*f)
	}
	return imc
}

// SetGpsLongitude sets the "gps_longitude" field.
func (imc *ImageMetadataCreate) SetGpsLongitude(f float64) *ImageMetadataCreate {
	imc.mutation.SetGpsLongitude(f)
	return imc
}

// SetNillableGpsLongitude sets the "gps_longitude" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableGpsLongitude(f *float64) *ImageMetadataCreate {
	if f != nil {
		imc.SetGpsLongitude(*f)
	}
	return imc
}

// SetGpsAltitude sets the "gps_altitude" field.
func (imc *ImageMetadataCreate) SetGpsAltitude(f float64) *ImageMetadataCreate {
	imc.mutation.SetGpsAltitude(f)
	return imc
}

// SetNillableGpsAltitude sets the "gps_altitude" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableGpsAltitude(f *float64) *ImageMetadataCreate {
	if f != nil {
		imc.SetGpsAltitude(*f)
	}
	return imc
}

// SetLocationName sets the "location_name" field.
func (imc *ImageMetadataCreate) SetLocationName(s string) *ImageMetadataCreate {
	imc.mutation.SetLocationName(s)
	return imc
}

// SetNillableLocationName sets the "location_name" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableLocationName(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetLocationName(*s)
	}
	return imc
}

// SetOrientation sets the "orientation" field.
func (imc *ImageMetadataCreate) SetOrientation(i int) *ImageMetadataCreate {
	imc.mutation.SetOrientation(i)
	return imc
}

// SetNillableOrientation sets the "orientation" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableOrientation(i *int) *ImageMetadataCreate {
	if i != nil {
		imc.SetOrientation(*i)
	}
	return imc
}

// SetDescription sets the "description" field.
func (imc *ImageMetadataCreate) SetDescription(s string) *ImageMetadataCreate {
	imc.mutation.SetDescription(s)
	return imc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableDescription(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetDescription(*s)
	}
	return imc
}

// SetArtist sets the "artist" field.
func (imc *ImageMetadataCreate) SetArtist(s string) *ImageMetadataCreate {
	imc.mutation.SetArtist(s)
	return imc
}

// SetNillableArtist sets the "artist" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableArtist(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetArtist(*s)
	}
	return imc
}

// SetCopyright sets the "copyright" field.
func (imc *ImageMetadataCreate) SetCopyright(s string) *ImageMetadataCreate {
	imc.mutation.SetCopyright(s)
	return imc
}

// SetNillableCopyright sets the "copyright" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableCopyright(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetCopyright(*s)
	}
	return imc
}

// SetWhiteBalance sets the "white_balance" field.
func (imc *ImageMetadataCreate) SetWhiteBalance(s string) *ImageMetadataCreate {
	imc.mutation.SetWhiteBalance(s)
	return imc
}

// SetNillableWhiteBalance sets the "white_balance" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableWhiteBalance(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetWhiteBalance(*s)
	}
	return imc
}

// SetFlash sets the "flash" field.
func (imc *ImageMetadataCreate) SetFlash(s string) *ImageMetadataCreate {
	imc.mutation.SetFlash(s)
	return imc
}

// SetNillableFlash sets the "flash" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableFlash(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetFlash(*s)
	}
	return imc
}

// SetMeteringMode sets the "metering_mode" field.
func (imc *ImageMetadataCreate) SetMeteringMode(s string) *ImageMetadataCreate {
	imc.mutation.SetMeteringMode(s)
	return imc
}

// SetNillableMeteringMode sets the "metering_mode" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableMeteringMode(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetMeteringMode(*s)
	}
	return imc
}

// SetExposureMode sets the "exposure_mode" field.
func (imc *ImageMetadataCreate) SetExposureMode(s string) *ImageMetadataCreate {
	imc.mutation.SetExposureMode(s)
	return imc
}

// SetNillableExposureMode sets the "exposure_mode" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableExposureMode(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetExposureMode(*s)
	}
	return imc
}

// SetColorSpace sets the "color_space" field.
func (imc *ImageMetadataCreate) SetColorSpace(s string) *ImageMetadataCreate {
	imc.mutation.SetColorSpace(s)
	return imc
}

// SetNillableColorSpace sets the "color_space" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableColorSpace(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetColorSpace(*s)
	}
	return imc
}

// SetSceneCaptureType sets the "scene_capture_type" field.
func (imc *ImageMetadataCreate) SetSceneCaptureType(s string) *ImageMetadataCreate {
	imc.mutation.SetSceneCaptureType(s)
	return imc
}

// SetNillableSceneCaptureType sets the "scene_capture_type" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableSceneCaptureType(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetSceneCaptureType(*s)
	}
	return imc
}

// SetProcessingStatus sets the "processing_status" field.
func (imc *ImageMetadataCreate) SetProcessingStatus(s string) *ImageMetadataCreate {
	imc.mutation.SetProcessingStatus(s)
	return imc
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableProcessingStatus(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetProcessingStatus(*s)
	}
	return imc
}

// SetErrorMessage sets the "error_message" field.
func (imc *ImageMetadataCreate) SetErrorMessage(s string) *ImageMetadataCreate {
	imc.mutation.SetErrorMessage(s)
	return imc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableErrorMessage(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetErrorMessage(*s)
	}
	return imc
}

// SetUserID sets the "user_id" field.
func (imc *ImageMetadataCreate) SetUserID(s string) *ImageMetadataCreate {
	imc.mutation.SetUserID(s)
	return imc
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableUserID(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetUserID(*s)
	}
	return imc
}

// SetBatchID sets the "batch_id" field.
func (imc *ImageMetadataCreate) SetBatchID(s string) *ImageMetadataCreate {
	imc.mutation.SetBatchID(s)
	return imc
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (imc *ImageMetadataCreate) SetNillableBatchID(s *string) *ImageMetadataCreate {
	if s != nil {
		imc.SetBatchID(*s)
	}
	return imc
}

// SetID sets the "id" field.
func (imc *ImageMetadataCreate) SetID(u uint) *ImageMetadataCreate {
	imc.mutation.SetID(u)
	return imc
}

// Mutation returns the ImageMetadataMutation object of the builder.
func (imc *ImageMetadataCreate) Mutation() *ImageMetadataMutation {
	return imc.mutation
}

// Save creates the ImageMetadata in the database.
func (imc *ImageMetadataCreate) Save(ctx context.Context) (*ImageMetadata, error) {
	imc.defaults()
	return withHooks(ctx, imc.sqlSave, imc.mutation, imc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (imc *ImageMetadataCreate) SaveX(ctx context.Context) *ImageMetadata {
	v, err := imc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (imc *ImageMetadataCreate) Exec(ctx context.Context) error {
	_, err := imc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (imc *ImageMetadataCreate) ExecX(ctx context.Context) {
	if err := imc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (imc *ImageMetadataCreate) defaults() {
	if _, ok := imc.mutation.CreatedAt(); !ok {
		v := imagemetadata.DefaultCreatedAt()
		imc.mutation.SetCreatedAt(v)
	}
	if _, ok := imc.mutation.UpdatedAt(); !ok {
		v := imagemetadata.DefaultUpdatedAt()
		imc.mutation.SetUpdatedAt(v)
	}
	if _, ok := imc.mutation.ProcessingStatus(); !ok {
		v := imagemetadata.DefaultProcessingStatus
		imc.mutation.SetProcessingStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (imc *ImageMetadataCreate) check() error {
	if _, ok := imc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImageMetadata.created_at"`)}
	}
	if _, ok := imc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ImageMetadata.updated_at"`)}
	}
	if _, ok := imc.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ImageMetadata.file_name"`)}
	}
	if v, ok := imc.mutation.FileName(); ok {
		if err := imagemetadata.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.file_name": %w`, err)}
		}
	}
	if _, ok := imc.mutation.FileSizeBytes(); !ok {
		return &ValidationError{Name: "file_size_bytes", err: errors.New(`ent: missing required field "ImageMetadata.file_size_bytes"`)}
	}
	if v, ok := imc.mutation.MimeType(); ok {
		if err := imagemetadata.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.mime_type": %w`, err)}
		}
	}
	if v, ok := imc.mutation.FileHash(); ok {
		if err := imagemetadata.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.file_hash": %w`, err)}
		}
	}
	if v, ok := imc.mutation.CameraMake(); ok {
		if err := imagemetadata.CameraMakeValidator(v); err != nil {
			return &ValidationError{Name: "camera_make", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.camera_make": %w`, err)}
		}
	}
	if v, ok := imc.mutation.CameraModel(); ok {
		if err := imagemetadata.CameraModelValidator(v); err != nil {
			return &ValidationError{Name: "camera_model", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.camera_model": %w`, err)}
		}
	}
	if v, ok := imc.mutation.LensInfo(); ok {
		if err := imagemetadata.LensInfoValidator(v); err != nil {
			return &ValidationError{Name: "lens_info", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.lens_info": %w`, err)}
		}
	}
	if v, ok := imc.mutation.Software(); ok {
		if err := imagemetadata.SoftwareValidator(v); err != nil {
			return &ValidationError{Name: "software", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.software": %w`, err)}
		}
	}
	if v, ok := imc.mutation.LocationName(); ok {
		if err := imagemetadata.LocationNameValidator(v); err != nil {
			return &ValidationError{Name: "location_name", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.location_name": %w`, err)}
		}
	}
	if v, ok := imc.mutation.Artist(); ok {
		if err := imagemetadata.ArtistValidator(v); err != nil {
			return &ValidationError{Name: "artist", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.artist": %w`, err)}
		}
	}
	if v, ok := imc.mutation.Copyright(); ok {
		if err := imagemetadata.CopyrightValidator(v); err != nil {
			return &ValidationError{Name: "copyright", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.copyright": %w`, err)}
		}
	}
	if v, ok := imc.mutation.WhiteBalance(); ok {
		if err := imagemetadata.WhiteBalanceValidator(v); err != nil {
			return &ValidationError{Name: "white_balance", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.white_balance": %w`, err)}
		}
	}
	if v, ok := imc.mutation.Flash(); ok {
		if err := imagemetadata.FlashValidator(v); err != nil {
			return &ValidationError{Name: "flash", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.flash": %w`, err)}
		}
	}
	if v, ok := imc.mutation.MeteringMode(); ok {
		if err := imagemetadata.MeteringModeValidator(v); err != nil {
			return &ValidationError{Name: "metering_mode", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.metering_mode": %w`, err)}
		}
	}
	if v, ok := imc.mutation.ExposureMode(); ok {
		if err := imagemetadata.ExposureModeValidator(v); err != nil {
			return &ValidationError{Name: "exposure_mode", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.exposure_mode": %w`, err)}
		}
	}
	if v, ok := imc.mutation.ColorSpace(); ok {
		if err := imagemetadata.ColorSpaceValidator(v); err != nil {
			return &ValidationError{Name: "color_space", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.color_space": %w`, err)}
		}
	}
	if v, ok := imc.mutation.SceneCaptureType(); ok {
		if err := imagemetadata.SceneCaptureTypeValidator(v); err != nil {
			return &ValidationError{Name: "scene_capture_type", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.scene_capture_type": %w`, err)}
		}
	}
	if _, ok := imc.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "ImageMetadata.processing_status"`)}
	}
	if v, ok := imc.mutation.ProcessingStatus(); ok {
		if err := imagemetadata.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.processing_status": %w`, err)}
		}
	}
	if v, ok := imc.mutation.UserID(); ok {
		if err := imagemetadata.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.user_id": %w`, err)}
		}
	}
	if v, ok := imc.mutation.BatchID(); ok {
		if err := imagemetadata.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.batch_id": %w`, err)}
		}
	}
	return nil
}

func (imc *ImageMetadataCreate) sqlSave(ctx context.Context) (*ImageMetadata, error) {
	if err := imc.check(); err != nil {
		return nil, err
	}
	_node, _spec := imc.createSpec()
	if err := sqlgraph.CreateNode(ctx, imc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	imc.mutation.id = &_node.ID
	imc.mutation.done = true
	return _node, nil
}

func (imc *ImageMetadataCreate) createSpec() (*ImageMetadata, *sqlgraph.CreateSpec) {
	var (
		_node = &ImageMetadata{config: imc.config}
		_spec = sqlgraph.NewCreateSpec(imagemetadata.Table, sqlgraph.NewFieldSpec(imagemetadata.FieldID, field.TypeUint))
	)
	if id, ok := imc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := imc.mutation.CreatedAt(); ok {
		_spec.SetField(imagemetadata.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := imc.mutation.UpdatedAt(); ok {
		_spec.SetField(imagemetadata.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := imc.mutation.FileName(); ok {
		_spec.SetField(imagemetadata.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := imc.mutation.FileSizeBytes(); ok {
		_spec.SetField(imagemetadata.FieldFileSizeBytes, field.TypeUint64, value)
		_node.FileSizeBytes = value
	}
	if value, ok := imc.mutation.MimeType(); ok {
		_spec.SetField(imagemetadata.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := imc.mutation.FileHash(); ok {
		_spec.SetField(imagemetadata.FieldFileHash, field.TypeString, value)
		_node.FileHash = &value
	}
	if value, ok := imc.mutation.Width(); ok {
		_spec.SetField(imagemetadata.FieldWidth, field.TypeUint, value)
		_node.Width = &value
	}
	if value, ok := imc.mutation.Height(); ok {
		_spec.SetField(imagemetadata.FieldHeight, field.TypeUint, value)
		_node.Height = &value
	}
	if value, ok := imc.mutation.ExifData(); ok {
		_spec.SetField(imagemetadata.FieldExifData, field.TypeString, value)
		_node.ExifData = &value
	}
	if value, ok := imc.mutation.XmpData(); ok {
		_spec.SetField(imagemetadata.FieldXmpData, field.TypeString, value)
		_node.XmpData = &value
	}
	if value, ok := imc.mutation.IptcData(); ok {
		_spec.SetField(imagemetadata.FieldIptcData, field.TypeString, value)
		_node.IptcData = &value
	}
	if value, ok := imc.mutation.AiAnalysis(); ok {
		_spec.SetField(imagemetadata.FieldAiAnalysis, field.TypeString, value)
		_node.AiAnalysis = &value
	}
	if value, ok := imc.mutation.Keywords(); ok {
		_spec.SetField(imagemetadata.FieldKeywords, field.TypeString, value)
		_node.Keywords = &value
	}
	if value, ok := imc.mutation.CameraMake(); ok {
		_spec.SetField(imagemetadata.FieldCameraMake, field.TypeString, value)
		_node.CameraMake = &value
	}
	if value, ok := imc.mutation.CameraModel(); ok {
		_spec.SetField(imagemetadata.FieldCameraModel, field.TypeString, value)
		_node.CameraModel = &value
	}
	if value, ok := imc.mutation.LensInfo(); ok {
		_spec.SetField(imagemetadata.FieldLensInfo, field.TypeString, value)
		_node.LensInfo = &value
	}
	if value, ok := imc.mutation.Software(); ok {
		_spec.SetField(imagemetadata.FieldSoftware, field.TypeString, value)
		_node.Software = &value
	}
	if value, ok := imc.mutation.DateTaken(); ok {
		_spec.SetField(imagemetadata.FieldDateTaken, field.TypeTime, value)
		_node.DateTaken = &value
	}
	if value, ok := imc.mutation.Iso(); ok {
		_spec.SetField(imagemetadata.FieldIso, field.TypeInt, value)
		_node.Iso = &value
	}
	if value, ok := imc.mutation.Aperture(); ok {
		_spec.SetField(imagemetadata.FieldAperture, field.TypeFloat64, value)
		_node.Aperture = &value
	}
	if value, ok := imc.mutation.ShutterSpeed(); ok {
		_spec.SetField(imagemetadata.FieldShutterSpeed, field.TypeFloat64, value)
		_node.ShutterSpeed = &value
	}
	if value, ok := imc.mutation.FocalLength(); ok {
		_spec.SetField(imagemetadata.FieldFocalLength, field.TypeFloat64, value)
		_node.FocalLength = &value
	}
	if value, ok := imc.mutation.GpsLatitude(); ok {
		_spec.SetField(imagemetadata.FieldGpsLatitude, field.TypeFloat64, value)
		_node.GpsLatitude = &value
	}
	if value, ok := imc.mutation.GpsLongitude(); ok {
		_spec.SetField(imagemetadata.FieldGpsLongitude, field.TypeFloat64, value)
		_node.GpsLongitude = &value
	}
	if value, ok := imc.mutation.GpsAltitude(); ok {
		_spec.SetField(imagemetadata.FieldGpsAltitude, field.TypeFloat64, value)
		_node.GpsAltitude = &value
	}
	if value, ok := imc.mutation.LocationName(); ok {
		_spec.SetField(imagemetadata.FieldLocationName, field.TypeString, value)
		_node.LocationName = &value
	}
	if value, ok := imc.mutation.Orientation(); ok {
		_spec.SetField(imagemetadata.FieldOrientation, field.TypeInt, value)
		_node.Orientation = &value
	}
	if value, ok := imc.mutation.Description(); ok {
		_spec.SetField(imagemetadata.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := imc.mutation.Artist(); ok {
		_spec.SetField(imagemetadata.FieldArtist, field.TypeString, value)
		_node.Artist = &value
	}
	if value, ok := imc.mutation.Copyright(); ok {
		_spec.SetField(imagemetadata.FieldCopyright, field.TypeString, value)
		_node.Copyright = &value
	}
	if value, ok := imc.mutation.WhiteBalance(); ok {
		_spec.SetField(imagemetadata.FieldWhiteBalance, field.TypeString, value)
		_node.WhiteBalance = &value
	}
	if value, ok := imc.mutation.Flash(); ok {
		_spec.SetField(imagemetadata.FieldFlash, field.TypeString, value)
		_node.Flash = &value
	}
	if value, ok := imc.mutation.MeteringMode(); ok {
		_spec.SetField(imagemetadata.FieldMeteringMode, field.TypeString, value)
		_node.MeteringMode = &value
	}
	if value, ok := imc.mutation.ExposureMode(); ok {
		_spec.SetField(imagemetadata.FieldExposureMode, field.TypeString, value)
		_node.ExposureMode = &value
	}
	if value, ok := imc.mutation.ColorSpace(); ok {
		_spec.SetField(imagemetadata.FieldColorSpace, field.TypeString, value)
		_node.ColorSpace = &value
	}
	if value, ok := imc.mutation.SceneCaptureType(); ok {
		_spec.SetField(imagemetadata.FieldSceneCaptureType, field.TypeString, value)
		_node.SceneCaptureType = &value
	}
	if value, ok := imc.mutation.ProcessingStatus(); ok {
		_spec.SetField(imagemetadata.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := imc.mutation.ErrorMessage(); ok {
		_spec.SetField(imagemetadata.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := imc.mutation.UserID(); ok {
		_spec.SetField(imagemetadata.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := imc.mutation.BatchID(); ok {
		_spec.SetField(imagemetadata.FieldBatchID, field.TypeString, value)
		_node.BatchID = &value
	}
	return _node, _spec
}

// ImageMetadataCreateBulk is the builder for creating many ImageMetadata entities in bulk.
type ImageMetadataCreateBulk struct {
	config
	err      error
	builders []*ImageMetadataCreate
}

// Save creates the ImageMetadata entities in the database.
func (imcb *ImageMetadataCreateBulk) Save(ctx context.Context) ([]*ImageMetadata, error) {
	if imcb.err != nil {
		return nil, imcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(imcb.builders))
	nodes := make([]*ImageMetadata, len(imcb.builders))
	mutators := make([]Mutator, len(imcb.builders))
	for i := range imcb.builders {
		func(i int, root context.Context) {
			builder := imcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImageMetadataMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, imcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, imcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, imcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (imcb *ImageMetadataCreateBulk) SaveX(ctx context.Context) []*ImageMetadata {
	v, err := imcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (imcb *ImageMetadataCreateBulk) Exec(ctx context.Context) error {
	_, err := imcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (imcb *ImageMetadataCreateBulk) ExecX(ctx context.Context) {
	if err := imcb.Exec(ctx); err != nil {
		panic(err)
	}
}

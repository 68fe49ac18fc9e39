// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/picmeta-app/ent/imagemetadata"
	"github.com/anzhiyu-c/picmeta-app/ent/predicate"
)

// ImageMetadataUpdate is the builder for updating ImageMetadata entities.
type ImageMetadataUpdate struct {
	config
	hooks    []Hook
	mutation *ImageMetadataMutation
}

// Where appends a list predicates to the ImageMetadataUpdate builder.
func (imu *ImageMetadataUpdate) Where(ps ...predicate.ImageMetadata) *ImageMetadataUpdate {
	imu.mutation.Where(ps...)
	return imu
}

// SetUpdatedAt sets the "updated_at" field.
func (imu *ImageMetadataUpdate) SetUpdatedAt(t time.Time) *ImageMetadataUpdate {
	imu.mutation.SetUpdatedAt(t)
	return imu
}

// SetFileName sets the "file_name" field.
func (imu *ImageMetadataUpdate) SetFileName(s string) *ImageMetadataUpdate {
	imu.mutation.SetFileName(s)
	return imu
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableFileName(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetFileName(*s)
	}
	return imu
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (imu *ImageMetadataUpdate) SetFileSizeBytes(u uint64) *ImageMetadataUpdate {
	imu.mutation.ResetFileSizeBytes()
	imu.mutation.SetFileSizeBytes(u)
	return imu
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableFileSizeBytes(u *uint64) *ImageMetadataUpdate {
	if u != nil {
		imu.SetFileSizeBytes(*u)
	}
	return imu
}

// AddFileSizeBytes adds u to the "file_size_bytes" field.
func (imu *ImageMetadataUpdate) AddFileSizeBytes(u int64) *ImageMetadataUpdate {
	imu.mutation.AddFileSizeBytes(u)
	return imu
}

// SetMimeType sets the "mime_type" field.
func (imu *ImageMetadataUpdate) SetMimeType(s string) *ImageMetadataUpdate {
	imu.mutation.SetMimeType(s)
	return imu
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableMimeType(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetMimeType(*s)
	}
	return imu
}

// ClearMimeType clears the value of the "mime_type" field.
func (imu *ImageMetadataUpdate) ClearMimeType() *ImageMetadataUpdate {
	imu.mutation.ClearMimeType()
	return imu
}

// SetFileHash sets the "file_hash" field.
func (imu *ImageMetadataUpdate) SetFileHash(s string) *ImageMetadataUpdate {
	imu.mutation.SetFileHash(s)
	return imu
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableFileHash(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetFileHash(*s)
	}
	return imu
}

// ClearFileHash clears the value of the "file_hash" field.
func (imu *ImageMetadataUpdate) ClearFileHash() *ImageMetadataUpdate {
	imu.mutation.ClearFileHash()
	return imu
}

// SetWidth sets the "width" field.
func (imu *ImageMetadataUpdate) SetWidth(u uint) *ImageMetadataUpdate {
	imu.mutation.ResetWidth()
	imu.mutation.SetWidth(u)
	return imu
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableWidth(u *uint) *ImageMetadataUpdate {
	if u != nil {
		imu.SetWidth(*u)
	}
	return imu
}

// AddWidth adds u to the "width" field.
func (imu *ImageMetadataUpdate) AddWidth(u int) *ImageMetadataUpdate {
	imu.mutation.AddWidth(u)
	return imu
}

// ClearWidth clears the value of the "width" field.
func (imu *ImageMetadataUpdate) ClearWidth() *ImageMetadataUpdate {
	imu.mutation.ClearWidth()
	return imu
}

// SetHeight sets the "height" field.
func (imu *ImageMetadataUpdate) SetHeight(u uint) *ImageMetadataUpdate {
	imu.mutation.ResetHeight()
	imu.mutation.SetHeight(u)
	return imu
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableHeight(u *uint) *ImageMetadataUpdate {
	if u != nil {
		imu.SetHeight(*u)
	}
	return imu
}

// AddHeight adds u to the "height" field.
func (imu *ImageMetadataUpdate) AddHeight(u int) *ImageMetadataUpdate {
	imu.mutation.AddHeight(u)
	return imu
}

// ClearHeight clears the value of the "height" field.
func (imu *ImageMetadataUpdate) ClearHeight() *ImageMetadataUpdate {
	imu.mutation.ClearHeight()
	return imu
}

// SetExifData sets the "exif_data" field.
func (imu *ImageMetadataUpdate) SetExifData(s string) *ImageMetadataUpdate {
	imu.mutation.SetExifData(s)
	return imu
}

// SetNillableExifData sets the "exif_data" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableExifData(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetExifData(*s)
	}
	return imu
}

// ClearExifData clears the value of the "exif_data" field.
func (imu *ImageMetadataUpdate) ClearExifData() *ImageMetadataUpdate {
	imu.mutation.ClearExifData()
	return imu
}

// SetXmpData sets the "xmp_data" field.
func (imu *ImageMetadataUpdate) SetXmpData(s string) *ImageMetadataUpdate {
	imu.mutation.SetXmpData(s)
	return imu
}

// SetNillableXmpData sets the "xmp_data" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableXmpData(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetXmpData(*s)
	}
	return imu
}

// ClearXmpData clears the value of the "xmp_data" field.
func (imu *ImageMetadataUpdate) ClearXmpData() *ImageMetadataUpdate {
	imu.mutation.ClearXmpData()
	return imu
}

// SetIptcData sets the "iptc_data" field.
func (imu *ImageMetadataUpdate) SetIptcData(s string) *ImageMetadataUpdate {
	imu.mutation.SetIptcData(s)
	return imu
}

// SetNillableIptcData sets the "iptc_data" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableIptcData(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetIptcData(*s)
	}
	return imu
}

// ClearIptcData clears the value of the "iptc_data" field.
func (imu *ImageMetadataUpdate) ClearIptcData() *ImageMetadataUpdate {
	imu.mutation.ClearIptcData()
	return imu
}

// SetAiAnalysis sets the "ai_analysis" field.
func (imu *ImageMetadataUpdate) SetAiAnalysis(s string) *ImageMetadataUpdate {
	imu.mutation.SetAiAnalysis(s)
	return imu
}

// SetNillableAiAnalysis sets the "ai_analysis" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableAiAnalysis(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetAiAnalysis(*s)
	}
	return imu
}

// ClearAiAnalysis clears the value of the "ai_analysis" field.
func (imu *ImageMetadataUpdate) ClearAiAnalysis() *ImageMetadataUpdate {
	imu.mutation.ClearAiAnalysis()
	return imu
}

// SetKeywords sets the "keywords" field.
func (imu *ImageMetadataUpdate) SetKeywords(s string) *ImageMetadataUpdate {
	imu.mutation.SetKeywords(s)
	return imu
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableKeywords(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetKeywords(*s)
	}
	return imu
}

// ClearKeywords clears the value of the "keywords" field.
func (imu *ImageMetadataUpdate) ClearKeywords() *ImageMetadataUpdate {
	imu.mutation.ClearKeywords()
	return imu
}

// SetCameraMake sets the "camera_make" field.
func (imu *ImageMetadataUpdate) SetCameraMake(s string) *ImageMetadataUpdate {
	imu.mutation.SetCameraMake(s)
	return imu
}

// SetNillableCameraMake sets the "camera_make" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableCameraMake(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetCameraMake(*s)
	}
	return imu
}

// ClearCameraMake clears the value of the "camera_make" field.
func (imu *ImageMetadataUpdate) ClearCameraMake() *ImageMetadataUpdate {
	imu.mutation.ClearCameraMake()
	return imu
}

// SetCameraModel sets the "camera_model" field.
func (imu *ImageMetadataUpdate) SetCameraModel(s string) *ImageMetadataUpdate {
	imu.mutation.SetCameraModel(s)
	return imu
}

// SetNillableCameraModel sets the "camera_model" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableCameraModel(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetCameraModel(*s)
	}
	return imu
}

// ClearCameraModel clears the value of the "camera_model" field.
func (imu *ImageMetadataUpdate) ClearCameraModel() *ImageMetadataUpdate {
	imu.mutation.ClearCameraModel()
	return imu
}

// SetLensInfo sets the "lens_info" field.
func (imu *ImageMetadataUpdate) SetLensInfo(s string) *ImageMetadataUpdate {
	imu.mutation.SetLensInfo(s)
	return imu
}

// SetNillableLensInfo sets the "lens_info" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableLensInfo(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetLensInfo(*s)
	}
	return imu
}

// ClearLensInfo clears the value of the "lens_info" field.
func (imu *ImageMetadataUpdate) ClearLensInfo() *ImageMetadataUpdate {
	imu.mutation.ClearLensInfo()
	return imu
}

// SetSoftware sets the "software" field.
func (imu *ImageMetadataUpdate) SetSoftware(s string) *ImageMetadataUpdate {
	imu.mutation.SetSoftware(s)
	return imu
}

// SetNillableSoftware sets the "software" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableSoftware(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetSoftware(*s)
	}
	return imu
}

// ClearSoftware clears the value of the "software" field.
func (imu *ImageMetadataUpdate) ClearSoftware() *ImageMetadataUpdate {
	imu.mutation.ClearSoftware()
	return imu
}

// SetDateTaken sets the "date_taken" field.
func (imu *ImageMetadataUpdate) SetDateTaken(t time.Time) *ImageMetadataUpdate {
	imu.mutation.SetDateTaken(t)
	return imu
}

// SetNillableDateTaken sets the "date_taken" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableDateTaken(t *time.Time) *ImageMetadataUpdate {
	if t != nil {
		imu.SetDateTaken(*t)
	}
	return imu
}

// ClearDateTaken clears the value of the "date_taken" field.
func (imu *ImageMetadataUpdate) ClearDateTaken() *ImageMetadataUpdate {
	imu.mutation.ClearDateTaken()
	return imu
}

// SetIso sets the "iso" field.
func (imu *ImageMetadataUpdate) SetIso(i int) *ImageMetadataUpdate {
	imu.mutation.ResetIso()
	imu.mutation.SetIso(i)
	return imu
}

// SetNillableIso sets the "iso" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableIso(i *int) *ImageMetadataUpdate {
	if i != nil {
		imu.SetIso(*i)
	}
	return imu
}

// AddIso adds i to the "iso" field.
func (imu *ImageMetadataUpdate) AddIso(i int) *ImageMetadataUpdate {
	imu.mutation.AddIso(i)
	return imu
}

// ClearIso clears the value of the "iso" field.
func (imu *ImageMetadataUpdate) ClearIso() *ImageMetadataUpdate {
	imu.mutation.ClearIso()
	return imu
}

// SetAperture sets the "aperture" field.
func (imu *ImageMetadataUpdate) SetAperture(f float64) *ImageMetadataUpdate {
	imu.mutation.ResetAperture()
	imu.mutation.SetAperture(f)
	return imu
}

// SetNillableAperture sets the "aperture" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableAperture(f *float64) *ImageMetadataUpdate {
	if f != nil {
		imu.SetAperture(*f)
	}
	return imu
}

// AddAperture adds f to the "aperture" field.
func (imu *ImageMetadataUpdate) AddAperture(f float64) *ImageMetadataUpdate {
	imu.mutation.AddAperture(f)
	return imu
}

// ClearAperture clears the value of the "aperture" field.
func (imu *ImageMetadataUpdate) ClearAperture() *ImageMetadataUpdate {
	imu.mutation.ClearAperture()
	return imu
}

// SetShutterSpeed sets the "shutter_speed" field.
func (imu *ImageMetadataUpdate) SetShutterSpeed(f float64) *ImageMetadataUpdate {
	imu.mutation.ResetShutterSpeed()
	imu.mutation.SetShutterSpeed(f)
	return imu
}

// SetNillableShutterSpeed sets the "shutter_speed" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableShutterSpeed(f *float64) *ImageMetadataUpdate {
	if f != nil {
		imu.SetShutterSpeed(*f)
	}
	return imu
}

// AddShutterSpeed adds f to the "shutter_speed" field.
func (imu *ImageMetadataUpdate) AddShutterSpeed(f float64) *ImageMetadataUpdate {
	imu.mutation.AddShutterSpeed(f)
	return imu
}

// ClearShutterSpeed clears the value of the "shutter_speed" field.
func (imu *ImageMetadataUpdate) ClearShutterSpeed() *ImageMetadataUpdate {
	imu.mutation.ClearShutterSpeed()
	return imu
}

// SetFocalLength sets the "focal_length" field.
func (imu *ImageMetadataUpdate) SetFocalLength(f float64) *ImageMetadataUpdate {
	imu.mutation.ResetFocalLength()
	imu.mutation.SetFocalLength(f)
	return imu
}

// SetNillableFocalLength sets the "focal_length" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableFocalLength(f *float64) *ImageMetadataUpdate {
	if f != nil {
		imu.SetFocalLength(*f)
	}
	return imu
}

// AddFocalLength adds f to the "focal_length" field.
func (imu *ImageMetadataUpdate) AddFocalLength(f float64) *ImageMetadataUpdate {
	imu.mutation.AddFocalLength(f)
	return imu
}

// ClearFocalLength clears the value of the "focal_length" field.
func (imu *ImageMetadataUpdate) ClearFocalLength() *ImageMetadataUpdate {
	imu.mutation.ClearFocalLength()
	return imu
}

// SetGpsLatitude sets the "gps_latitude" field.
func (imu *ImageMetadataUpdate) SetGpsLatitude(f float64) *ImageMetadataUpdate {
	imu.mutation.ResetGpsLatitude()
	imu.mutation.SetGpsLatitude(f)
	return imu
}

// SetNillableGpsLatitude sets the "gps_latitude" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableGpsLatitude(f *float64) *ImageMetadataUpdate {
	if f != nil {
		imu.SetGpsLatitude(*f)
	}
	return imu
}

// AddGpsLatitude adds f to the "gps_latitude" field.
func (imu *ImageMetadataUpdate) AddGpsLatitude(f float64) *ImageMetadataUpdate {
	imu.mutation.AddGpsLatitude(f)
	return imu
}

// ClearGpsLatitude clears the value of the "gps_latitude" field.
func (imu *ImageMetadataUpdate) ClearGpsLatitude() *ImageMetadataUpdate {
	imu.mutation.ClearGpsLatitude()
	return imu
}

// SetGpsLongitude sets the "gps_longitude" field.
func (imu *ImageMetadataUpdate) SetGpsLongitude(f float64) *ImageMetadataUpdate {
	imu.mutation.ResetGpsLongitude()
	imu.mutation.SetGpsLongitude(f)
	return imu
}

// SetNillableGpsLongitude sets the "gps_longitude" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableGpsLongitude(f *float64) *ImageMetadataUpdate {
	if f != nil {
		imu.SetGpsLongitude(*f)
	}
	return imu
}

// AddGpsLongitude adds f to the "gps_longitude" field.
func (imu *ImageMetadataUpdate) AddGpsLongitude(f float64) *ImageMetadataUpdate {
	imu.mutation.AddGpsLongitude(f)
	return imu
}

// ClearGpsLongitude clears the value of the "gps_longitude" field.
func (imu *ImageMetadataUpdate) ClearGpsLongitude() *ImageMetadataUpdate {
	imu.mutation.ClearGpsLongitude()
	return imu
}

// SetGpsAltitude sets the "gps_altitude" field.
func (imu *ImageMetadataUpdate) SetGpsAltitude(f float64) *ImageMetadataUpdate {
	imu.mutation.ResetGpsAltitude()
	imu.mutation.SetGpsAltitude(f)
	return imu
}

// SetNillableGpsAltitude sets the "gps_altitude" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableGpsAltitude(f *float64) *ImageMetadataUpdate {
	if f != nil {
		imu.SetGpsAltitude(*f)
	}
	return imu
}

// AddGpsAltitude adds f to the "gps_altitude" field.
func (imu *ImageMetadataUpdate) AddGpsAltitude(f float64) *ImageMetadataUpdate {
	imu.mutation.AddGpsAltitude(f)
	return imu
}

// ClearGpsAltitude clears the value of the "gps_altitude" field.
func (imu *ImageMetadataUpdate) ClearGpsAltitude() *ImageMetadataUpdate {
	imu.mutation.ClearGpsAltitude()
	return imu
}

// SetLocationName sets the "location_name" field.
func (imu *ImageMetadataUpdate) SetLocationName(s string) *ImageMetadataUpdate {
	imu.mutation.SetLocationName(s)
	return imu
}

// SetNillableLocationName sets the "location_name" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableLocationName(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetLocationName(*s)
	}
	return imu
}

// ClearLocationName clears the value of the "location_name" field.
func (imu *ImageMetadataUpdate) ClearLocationName() *ImageMetadataUpdate {
	imu.mutation.ClearLocationName()
	return imu
}

// SetOrientation sets the "orientation" field.
func (imu *ImageMetadataUpdate) SetOrientation(i int) *ImageMetadataUpdate {
	imu.mutation.ResetOrientation()
	imu.mutation.SetOrientation(i)
	return imu
}

// SetNillableOrientation sets the "orientation" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableOrientation(i *int) *ImageMetadataUpdate {
	if i != nil {
		imu.SetOrientation(*i)
	}
	return imu
}

// AddOrientation adds i to the "orientation" field.
func (imu *ImageMetadataUpdate) AddOrientation(i int) *ImageMetadataUpdate {
	imu.mutation.AddOrientation(i)
	return imu
}

// ClearOrientation clears the value of the "orientation" field.
func (imu *ImageMetadataUpdate) ClearOrientation() *ImageMetadataUpdate {
	imu.mutation.ClearOrientation()
	return imu
}

// SetDescription sets the "description" field.
func (imu *ImageMetadataUpdate) SetDescription(s string) *ImageMetadataUpdate {
	imu.mutation.SetDescription(s)
	return imu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableDescription(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetDescription(*s)
	}
	return imu
}

// ClearDescription clears the value of the "description" field.
func (imu *ImageMetadataUpdate) ClearDescription() *ImageMetadataUpdate {
	imu.mutation.ClearDescription()
	return imu
}

// SetArtist sets the "artist" field.
func (imu *ImageMetadataUpdate) SetArtist(s string) *ImageMetadataUpdate {
	imu.mutation.SetArtist(s)
	return imu
}

// SetNillableArtist sets the "artist" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableArtist(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetArtist(*s)
	}
	return imu
}

// ClearArtist clears the value of the "artist" field.
func (imu *ImageMetadataUpdate) ClearArtist() *ImageMetadataUpdate {
	imu.mutation.ClearArtist()
	return imu
}

// SetCopyright sets the "copyright" field.
func (imu *ImageMetadataUpdate) SetCopyright(s string) *ImageMetadataUpdate {
	imu.mutation.SetCopyright(s)
	return imu
}

// SetNillableCopyright sets the "copyright" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableCopyright(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetCopyright(*s)
	}
	return imu
}

// ClearCopyright clears the value of the "copyright" field.
func (imu *ImageMetadataUpdate) ClearCopyright() *ImageMetadataUpdate {
	imu.mutation.ClearCopyright()
	return imu
}

// SetWhiteBalance sets the "white_balance" field.
func (imu *ImageMetadataUpdate) SetWhiteBalance(s string) *ImageMetadataUpdate {
	imu.mutation.SetWhiteBalance(s)
	return imu
}

// SetNillableWhiteBalance sets the "white_balance" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableWhiteBalance(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetWhiteBalance(*s)
	}
	return imu
}

// ClearWhiteBalance clears the value of the "white_balance" field.
func (imu *ImageMetadataUpdate) ClearWhiteBalance() *ImageMetadataUpdate {
	imu.mutation.ClearWhiteBalance()
	return imu
}

// SetFlash sets the "flash" field.
func (imu *ImageMetadataUpdate) SetFlash(s string) *ImageMetadataUpdate {
	imu.mutation.SetFlash(s)
	return imu
}

// SetNillableFlash sets the "flash" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableFlash(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetFlash(*s)
	}
	return imu
}

// ClearFlash clears the value of the "flash" field.
func (imu *ImageMetadataUpdate) ClearFlash() *ImageMetadataUpdate {
	imu.mutation.ClearFlash()
	return imu
}

// SetMeteringMode sets the "metering_mode" field.
func (imu *ImageMetadataUpdate) SetMeteringMode(s string) *ImageMetadataUpdate {
	imu.mutation.SetMeteringMode(s)
	return imu
}

// SetNillableMeteringMode sets the "metering_mode" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableMeteringMode(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetMeteringMode(*s)
	}
	return imu
}

// ClearMeteringMode clears the value of the "metering_mode" field.
func (imu *ImageMetadataUpdate) ClearMeteringMode() *ImageMetadataUpdate {
	imu.mutation.ClearMeteringMode()
	return imu
}

// SetExposureMode sets the "exposure_mode" field.
func (imu *ImageMetadataUpdate) SetExposureMode(s string) *ImageMetadataUpdate {
	imu.mutation.SetExposureMode(s)
	return imu
}

// SetNillableExposureMode sets the "exposure_mode" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableExposureMode(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetExposureMode(*s)
	}
	return imu
}

// ClearExposureMode clears the value of the "exposure_mode" field.
func (imu *ImageMetadataUpdate) ClearExposureMode() *ImageMetadataUpdate {
	imu.mutation.ClearExposureMode()
	return imu
}

// SetColorSpace sets the "color_space" field.
func (imu *ImageMetadataUpdate) SetColorSpace(s string) *ImageMetadataUpdate {
	imu.mutation.SetColorSpace(s)
	return imu
}

// SetNillableColorSpace sets the "color_space" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableColorSpace(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetColorSpace(*s)
	}
	return imu
}

// ClearColorSpace clears the value of the "color_space" field.
func (imu *ImageMetadataUpdate) ClearColorSpace() *ImageMetadataUpdate {
	imu.mutation.ClearColorSpace()
	return imu
}

// SetSceneCaptureType sets the "scene_capture_type" field.
func (imu *ImageMetadataUpdate) SetSceneCaptureType(s string) *ImageMetadataUpdate {
	imu.mutation.SetSceneCaptureType(s)
	return imu
}

// SetNillableSceneCaptureType sets the "scene_capture_type" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableSceneCaptureType(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetSceneCaptureType(*s)
	}
	return imu
}

// ClearSceneCaptureType clears the value of the "scene_capture_type" field.
func (imu *ImageMetadataUpdate) ClearSceneCaptureType() *ImageMetadataUpdate {
	imu.mutation.ClearSceneCaptureType()
	return imu
}

// SetProcessingStatus sets the "processing_status" field.
func (imu *ImageMetadataUpdate) SetProcessingStatus(s string) *ImageMetadataUpdate {
	imu.mutation.SetProcessingStatus(s)
	return imu
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableProcessingStatus(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetProcessingStatus(*s)
	}
	return imu
}

// SetErrorMessage sets the "error_message" field.
func (imu *ImageMetadataUpdate) SetErrorMessage(s string) *ImageMetadataUpdate {
	imu.mutation.SetErrorMessage(s)
	return imu
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableErrorMessage(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetErrorMessage(*s)
	}
	return imu
}

// ClearErrorMessage clears the value of the "error_message" field.
func (imu *ImageMetadataUpdate) ClearErrorMessage() *ImageMetadataUpdate {
	imu.mutation.ClearErrorMessage()
	return imu
}

// SetUserID sets the "user_id" field.
func (imu *ImageMetadataUpdate) SetUserID(s string) *ImageMetadataUpdate {
	imu.mutation.SetUserID(s)
	return imu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableUserID(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetUserID(*s)
	}
	return imu
}

// ClearUserID clears the value of the "user_id" field.
func (imu *ImageMetadataUpdate) ClearUserID() *ImageMetadataUpdate {
	imu.mutation.ClearUserID()
	return imu
}

// SetBatchID sets the "batch_id" field.
func (imu *ImageMetadataUpdate) SetBatchID(s string) *ImageMetadataUpdate {
	imu.mutation.SetBatchID(s)
	return imu
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (imu *ImageMetadataUpdate) SetNillableBatchID(s *string) *ImageMetadataUpdate {
	if s != nil {
		imu.SetBatchID(*s)
	}
	return imu
}

// ClearBatchID clears the value of the "batch_id" field.
func (imu *ImageMetadataUpdate) ClearBatchID() *ImageMetadataUpdate {
	imu.mutation.ClearBatchID()
	return imu
}

// Mutation returns the ImageMetadataMutation object of the builder.
func (imu *ImageMetadataUpdate) Mutation() *ImageMetadataMutation {
	return imu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (imu *ImageMetadataUpdate) Save(ctx context.Context) (int, error) {
	imu.defaults()
	return withHooks(ctx, imu.sqlSave, imu.mutation, imu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (imu *ImageMetadataUpdate) SaveX(ctx context.Context) int {
	affected, err := imu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (imu *ImageMetadataUpdate) Exec(ctx context.Context) error {
	_, err := imu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (imu *ImageMetadataUpdate) ExecX(ctx context.Context) {
	if err := imu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (imu *ImageMetadataUpdate) defaults() {
	if _, ok := imu.mutation.UpdatedAt(); !ok {
		v := imagemetadata.UpdateDefaultUpdatedAt()
		imu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (imu *ImageMetadataUpdate) check() error {
	if v, ok := imu.mutation.FileName(); ok {
		if err := imagemetadata.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.file_name": %w`, err)}
		}
	}
	if v, ok := imu.mutation.MimeType(); ok {
		if err := imagemetadata.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.mime_type": %w`, err)}
		}
	}
	if v, ok := imu.mutation.FileHash(); ok {
		if err := imagemetadata.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.file_hash": %w`, err)}
		}
	}
	if v, ok := imu.mutation.CameraMake(); ok {
		if err := imagemetadata.CameraMakeValidator(v); err != nil {
			return &ValidationError{Name: "camera_make", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.camera_make": %w`, err)}
		}
	}
	if v, ok := imu.mutation.CameraModel(); ok {
		if err := imagemetadata.CameraModelValidator(v); err != nil {
			return &ValidationError{Name: "camera_model", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.camera_model": %w`, err)}
		}
	}
	if v, ok := imu.mutation.LensInfo(); ok {
		if err := imagemetadata.LensInfoValidator(v); err != nil {
			return &ValidationError{Name: "lens_info", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.lens_info": %w`, err)}
		}
	}
	if v, ok := imu.mutation.Software(); ok {
		if err := imagemetadata.SoftwareValidator(v); err != nil {
			return &ValidationError{Name: "software", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.software": %w`, err)}
		}
	}
	if v, ok := imu.mutation.LocationName(); ok {
		if err := imagemetadata.LocationNameValidator(v); err != nil {
			return &ValidationError{Name: "location_name", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.location_name": %w`, err)}
		}
	}
	if v, ok := imu.mutation.Artist(); ok {
		if err := imagemetadata.ArtistValidator(v); err != nil {
			return &ValidationError{Name: "artist", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.artist": %w`, err)}
		}
	}
	if v, ok := imu.mutation.Copyright(); ok {
		if err := imagemetadata.CopyrightValidator(v); err != nil {
			return &ValidationError{Name: "copyright", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.copyright": %w`, err)}
		}
	}
	if v, ok := imu.mutation.WhiteBalance(); ok {
		if err := imagemetadata.WhiteBalanceValidator(v); err != nil {
			return &ValidationError{Name: "white_balance", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.white_balance": %w`, err)}
		}
	}
	if v, ok := imu.mutation.Flash(); ok {
		if err := imagemetadata.FlashValidator(v); err != nil {
			return &ValidationError{Name: "flash", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.flash": %w`, err)}
		}
	}
	if v, ok := imu.mutation.MeteringMode(); ok {
		if err := imagemetadata.MeteringModeValidator(v); err != nil {
			return &ValidationError{Name: "metering_mode", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.metering_mode": %w`, err)}
		}
	}
	if v, ok := imu.mutation.ExposureMode(); ok {
		if err := imagemetadata.ExposureModeValidator(v); err != nil {
			return &ValidationError{Name: "exposure_mode", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.exposure_mode": %w`, err)}
		}
	}
	if v, ok := imu.mutation.ColorSpace(); ok {
		if err := imagemetadata.ColorSpaceValidator(v); err != nil {
			return &ValidationError{Name: "color_space", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.color_space": %w`, err)}
		}
	}
	if v, ok := imu.mutation.SceneCaptureType(); ok {
		if err := imagemetadata.SceneCaptureTypeValidator(v); err != nil {
			return &ValidationError{Name: "scene_capture_type", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.scene_capture_type": %w`, err)}
		}
	}
	if v, ok := imu.mutation.ProcessingStatus(); ok {
		if err := imagemetadata.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.processing_status": %w`, err)}
		}
	}
	if v, ok := imu.mutation.UserID(); ok {
		if err := imagemetadata.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.user_id": %w`, err)}
		}
	}
	if v, ok := imu.mutation.BatchID(); ok {
		if err := imagemetadata.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.batch_id": %w`, err)}
		}
	}
	return nil
}

func (imu *ImageMetadataUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := imu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(imagemetadata.Table, imagemetadata.Columns, sqlgraph.NewFieldSpec(imagemetadata.FieldID, field.TypeUint))
	if ps := imu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := imu.mutation.UpdatedAt(); ok {
		_spec.SetField(imagemetadata.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := imu.mutation.FileName(); ok {
		_spec.SetField(imagemetadata.FieldFileName, field.TypeString, value)
	}
	if value, ok := imu.mutation.FileSizeBytes(); ok {
		_spec.SetField(imagemetadata.FieldFileSizeBytes, field.TypeUint64, value)
	}
	if value, ok := imu.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(imagemetadata.FieldFileSizeBytes, field.TypeUint64, value)
	}
	if value, ok := imu.mutation.MimeType(); ok {
		_spec.SetField(imagemetadata.FieldMimeType, field.TypeString, value)
	}
	if imu.mutation.MimeTypeCleared() {
		_spec.ClearField(imagemetadata.FieldMimeType, field.TypeString)
	}
	if value, ok := imu.mutation.FileHash(); ok {
		_spec.SetField(imagemetadata.FieldFileHash, field.TypeString, value)
	}
	if imu.mutation.FileHashCleared() {
		_spec.ClearField(imagemetadata.FieldFileHash, field.TypeString)
	}
	if value, ok := imu.mutation.Width(); ok {
		_spec.SetField(imagemetadata.FieldWidth, field.TypeUint, value)
	}
	if value, ok := imu.mutation.AddedWidth(); ok {
		_spec.AddField(imagemetadata.FieldWidth, field.TypeUint, value)
	}
	if imu.mutation.WidthCleared() {
		_spec.ClearField(imagemetadata.FieldWidth, field.TypeUint)
	}
	if value, ok := imu.mutation.Height(); ok {
		_spec.SetField(imagemetadata.FieldHeight, field.TypeUint, value)
	}
	if value, ok := imu.mutation.AddedHeight(); ok {
		_spec.AddField(imagemetadata.FieldHeight, field.TypeUint, value)
	}
	if imu.mutation.HeightCleared() {
		_spec.ClearField(imagemetadata.FieldHeight, field.TypeUint)
	}
	if value, ok := imu.mutation.ExifData(); ok {
		_spec.SetField(imagemetadata.FieldExifData, field.TypeString, value)
	}
	if imu.mutation.ExifDataCleared() {
		_spec.ClearField(imagemetadata.FieldExifData, field.TypeString)
	}
	if value, ok := imu.mutation.XmpData(); ok {
		_spec.SetField(imagemetadata.FieldXmpData, field.TypeString, value)
	}
	if imu.mutation.XmpDataCleared() {
		_spec.ClearField(imagemetadata.FieldXmpData, field.TypeString)
	}
	if value, ok := imu.mutation.IptcData(); ok {
		_spec.SetField(imagemetadata.FieldIptcData, field.TypeString, value)
	}
	if imu.mutation.IptcDataCleared() {
		_spec.ClearField(imagemetadata.FieldIptcData, field.TypeString)
	}
	if value, ok := imu.mutation.AiAnalysis(); ok {
		_spec.SetField(imagemetadata.FieldAiAnalysis, field.TypeString, value)
	}
	if imu.mutation.AiAnalysisCleared() {
		_spec.ClearField(imagemetadata.FieldAiAnalysis, field.TypeString)
	}
	if value, ok := imu.mutation.Keywords(); ok {
		_spec.SetField(imagemetadata.FieldKeywords, field.TypeString, value)
	}
	if imu.mutation.KeywordsCleared() {
		_spec.ClearField(imagemetadata.FieldKeywords, field.TypeString)
	}
	if value, ok := imu.mutation.CameraMake(); ok {
		_spec.SetField(imagemetadata.FieldCameraMake, field.TypeString, value)
	}
	if imu.mutation.CameraMakeCleared() {
		_spec.ClearField(imagemetadata.FieldCameraMake, field.TypeString)
	}
	if value, ok := imu.mutation.CameraModel(); ok {
		_spec.SetField(imagemetadata.FieldCameraModel, field.TypeString, value)
	}
	if imu.mutation.CameraModelCleared() {
		_spec.ClearField(imagemetadata.FieldCameraModel, field.TypeString)
	}
	if value, ok := imu.mutation.LensInfo(); ok {
		_spec.SetField(imagemetadata.FieldLensInfo, field.TypeString, value)
	}
	if imu.mutation.LensInfoCleared() {
		_spec.ClearField(imagemetadata.FieldLensInfo, field.TypeString)
	}
	if value, ok := imu.mutation.Software(); ok {
		_spec.SetField(imagemetadata.FieldSoftware, field.TypeString, value)
	}
	if imu.mutation.SoftwareCleared() {
		_spec.ClearField(imagemetadata.FieldSoftware, field.TypeString)
	}
	if value, ok := imu.mutation.DateTaken(); ok {
		_spec.SetField(imagemetadata.FieldDateTaken, field.TypeTime, value)
	}
	if imu.mutation.DateTakenCleared() {
		_spec.ClearField(imagemetadata.FieldDateTaken, field.TypeTime)
	}
	if value, ok := imu.mutation.Iso(); ok {
		_spec.SetField(imagemetadata.FieldIso, field.TypeInt, value)
	}
	if value, ok := imu.mutation.AddedIso(); ok {
		_spec.AddField(imagemetadata.FieldIso, field.TypeInt, value)
	}
	if imu.mutation.IsoCleared() {
		_spec.ClearField(imagemetadata.FieldIso, field.TypeInt)
	}
	if value, ok := imu.mutation.Aperture(); ok {
		_spec.SetField(imagemetadata.FieldAperture, field.TypeFloat64, value)
	}
	if value, ok := imu.mutation.AddedAperture(); ok {
		_spec.AddField(imagemetadata.FieldAperture, field.TypeFloat64, value)
	}
	if imu.mutation.ApertureCleared() {
		_spec.ClearField(imagemetadata.FieldAperture, field.TypeFloat64)
	}
	if value, ok := imu.mutation.ShutterSpeed(); ok {
		_spec.SetField(imagemetadata.FieldShutterSpeed, field.TypeFloat64, value)
	}
	if value, ok := imu.mutation.AddedShutterSpeed(); ok {
		_spec.AddField(imagemetadata.FieldShutterSpeed, field.TypeFloat64, value)
	}
	if imu.mutation.ShutterSpeedCleared() {
		_spec.ClearField(imagemetadata.FieldShutterSpeed, field.TypeFloat64)
	}
	if value, ok := imu.mutation.FocalLength(); ok {
		_spec.SetField(imagemetadata.FieldFocalLength, field.TypeFloat64, value)
	}
	if value, ok := imu.mutation.AddedFocalLength(); ok {
		_spec.AddField(imagemetadata.FieldFocalLength, field.TypeFloat64, value)
	}
	if imu.mutation.FocalLengthCleared() {
		_spec.ClearField(imagemetadata.FieldFocalLength, field.TypeFloat64)
	}
	if value, ok := imu.mutation.GpsLatitude(); ok {
		_spec.SetField(imagemetadata.FieldGpsLatitude, field.TypeFloat64, value)
	}
	if value, ok := imu.mutation.AddedGpsLatitude(); ok {
		_spec.AddField(imagemetadata.FieldGpsLatitude, field.TypeFloat64, value)
	}
	if imu.mutation.GpsLatitudeCleared() {
		_spec.ClearField(imagemetadata.FieldGpsLatitude, field.TypeFloat64)
	}
	if value, ok := imu.mutation.GpsLongitude(); ok {
		_spec.SetField(imagemetadata.FieldGpsLongitude, field.TypeFloat64, value)
	}
	if value, ok := imu.mutation.AddedGpsLongitude(); ok {
		_spec.AddField(imagemetadata.FieldGpsLongitude, field.TypeFloat64, value)
	}
	if imu.mutation.GpsLongitudeCleared() {
		_spec.ClearField(imagemetadata.FieldGpsLongitude, field.TypeFloat64)
	}
	if value, ok := imu.mutation.GpsAltitude(); ok {
		_spec.SetField(imagemetadata.FieldGpsAltitude, field.TypeFloat64, value)
	}
	if value, ok := imu.mutation.AddedGpsAltitude(); ok {
		_spec.AddField(imagemetadata.FieldGpsAltitude, field.TypeFloat64, value)
	}
	if imu.mutation.GpsAltitudeCleared() {
		_spec.ClearField(imagemetadata.FieldGpsAltitude, field.TypeFloat64)
	}
	if value, ok := imu.mutation.LocationName(); ok {
		_spec.SetField(imagemetadata.FieldLocationName, field.TypeString, value)
	}
	if imu.mutation.LocationNameCleared() {
		_spec.ClearField(imagemetadata.FieldLocationName, field.TypeString)
	}
	if value, ok := imu.mutation.Orientation(); ok {
		_spec.SetField(imagemetadata.FieldOrientation, field.TypeInt, value)
	}
	if value, ok := imu.mutation.AddedOrientation(); ok {
		_spec.AddField(imagemetadata.FieldOrientation, field.TypeInt, value)
	}
	if imu.mutation.OrientationCleared() {
		_spec.ClearField(imagemetadata.FieldOrientation, field.TypeInt)
	}
	if value, ok := imu.mutation.Description(); ok {
		_spec.SetField(imagemetadata.FieldDescription, field.TypeString, value)
	}
	if imu.mutation.DescriptionCleared() {
		_spec.ClearField(imagemetadata.FieldDescription, field.TypeString)
	}
	if value, ok := imu.mutation.Artist(); ok {
		_spec.SetField(imagemetadata.FieldArtist, field.TypeString, value)
	}
	if imu.mutation.ArtistCleared() {
		_spec.ClearField(imagemetadata.FieldArtist, field.TypeString)
	}
	if value, ok := imu.mutation.Copyright(); ok {
		_spec.SetField(imagemetadata.FieldCopyright, field.TypeString, value)
	}
	if imu.mutation.CopyrightCleared() {
		_spec.ClearField(imagemetadata.FieldCopyright, field.TypeString)
	}
	if value, ok := imu.mutation.WhiteBalance(); ok {
		_spec.SetField(imagemetadata.FieldWhiteBalance, field.TypeString, value)
	}
	if imu.mutation.WhiteBalanceCleared() {
		_spec.ClearField(imagemetadata.FieldWhiteBalance, field.TypeString)
	}
	if value, ok := imu.mutation.Flash(); ok {
		_spec.SetField(imagemetadata.FieldFlash, field.TypeString, value)
	}
	if imu.mutation.FlashCleared() {
		_spec.ClearField(imagemetadata.FieldFlash, field.TypeString)
	}
	if value, ok := imu.mutation.MeteringMode(); ok {
		_spec.SetField(imagemetadata.FieldMeteringMode, field.TypeString, value)
	}
	if imu.mutation.MeteringModeCleared() {
		_spec.ClearField(imagemetadata.FieldMeteringMode, field.TypeString)
	}
	if value, ok := imu.mutation.ExposureMode(); ok {
		_spec.SetField(imagemetadata.FieldExposureMode, field.TypeString, value)
	}
	if imu.mutation.ExposureModeCleared() {
		_spec.ClearField(imagemetadata.FieldExposureMode, field.TypeString)
	}
	if value, ok := imu.mutation.ColorSpace(); ok {
		_spec.SetField(imagemetadata.FieldColorSpace, field.TypeString, value)
	}
	if imu.mutation.ColorSpaceCleared() {
		_spec.ClearField(imagemetadata.FieldColorSpace, field.TypeString)
	}
	if value, ok := imu.mutation.SceneCaptureType(); ok {
		_spec.SetField(imagemetadata.FieldSceneCaptureType, field.TypeString, value)
	}
	if imu.mutation.SceneCaptureTypeCleared() {
		_spec.ClearField(imagemetadata.FieldSceneCaptureType, field.TypeString)
	}
	if value, ok := imu.mutation.ProcessingStatus(); ok {
		_spec.SetField(imagemetadata.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := imu.mutation.ErrorMessage(); ok {
		_spec.SetField(imagemetadata.FieldErrorMessage, field.TypeString, value)
	}
	if imu.mutation.ErrorMessageCleared() {
		_spec.ClearField(imagemetadata.FieldErrorMessage, field.TypeString)
	}
	if value, ok := imu.mutation.UserID(); ok {
		_spec.SetField(imagemetadata.FieldUserID, field.TypeString, value)
	}
	if imu.mutation.UserIDCleared() {
		_spec.ClearField(imagemetadata.FieldUserID, field.TypeString)
	}
	if value, ok := imu.mutation.BatchID(); ok {
		_spec.SetField(imagemetadata.FieldBatchID, field.TypeString, value)
	}
	if imu.mutation.BatchIDCleared() {
		_spec.ClearField(imagemetadata.FieldBatchID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, imu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imagemetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	imu.mutation.done = true
	return n, nil
}

// ImageMetadataUpdateOne is the builder for updating a single ImageMetadata entity.
type ImageMetadataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImageMetadataMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (imuo *ImageMetadataUpdateOne) SetUpdatedAt(t time.Time) *ImageMetadataUpdateOne {
	imuo.mutation.SetUpdatedAt(t)
	return imuo
}

// SetFileName sets the "file_name" field.
func (imuo *ImageMetadataUpdateOne) SetFileName(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetFileName(s)
	return imuo
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableFileName(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetFileName(*s)
	}
	return imuo
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (imuo *ImageMetadataUpdateOne) SetFileSizeBytes(u uint64) *ImageMetadataUpdateOne {
	imuo.mutation.ResetFileSizeBytes()
	imuo.mutation.SetFileSizeBytes(u)
	return imuo
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableFileSizeBytes(u *uint64) *ImageMetadataUpdateOne {
	if u != nil {
		imuo.SetFileSizeBytes(*u)
	}
	return imuo
}

// AddFileSizeBytes adds u to the "file_size_bytes" field.
func (imuo *ImageMetadataUpdateOne) AddFileSizeBytes(u int64) *ImageMetadataUpdateOne {
	imuo.mutation.AddFileSizeBytes(u)
	return imuo
}

// SetMimeType sets the "mime_type" field.
func (imuo *ImageMetadataUpdateOne) SetMimeType(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetMimeType(s)
	return imuo
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableMimeType(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetMimeType(*s)
	}
	return imuo
}

// ClearMimeType clears the value of the "mime_type" field.
func (imuo *ImageMetadataUpdateOne) ClearMimeType() *ImageMetadataUpdateOne {
	imuo.mutation.ClearMimeType()
	return imuo
}

// SetFileHash sets the "file_hash" field.
func (imuo *ImageMetadataUpdateOne) SetFileHash(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetFileHash(s)
	return imuo
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableFileHash(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetFileHash(*s)
	}
	return imuo
}

// ClearFileHash clears the value of the "file_hash" field.
func (imuo *ImageMetadataUpdateOne) ClearFileHash() *ImageMetadataUpdateOne {
	imuo.mutation.ClearFileHash()
	return imuo
}

// SetWidth sets the "width" field.
func (imuo *ImageMetadataUpdateOne) SetWidth(u uint) *ImageMetadataUpdateOne {
	imuo.mutation.ResetWidth()
	imuo.mutation.SetWidth(u)
	return imuo
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableWidth(u *uint) *ImageMetadataUpdateOne {
	if u != nil {
		imuo.SetWidth(*u)
	}
	return imuo
}

// AddWidth adds u to the "width" field.
func (imuo *ImageMetadataUpdateOne) AddWidth(u int) *ImageMetadataUpdateOne {
	imuo.mutation.AddWidth(u)
	return imuo
}

// ClearWidth clears the value of the "width" field.
func (imuo *ImageMetadataUpdateOne) ClearWidth() *ImageMetadataUpdateOne {
	imuo.mutation.ClearWidth()
	return imuo
}

// SetHeight sets the "height" field.
func (imuo *ImageMetadataUpdateOne) SetHeight(u uint) *ImageMetadataUpdateOne {
	imuo.mutation.ResetHeight()
	imuo.mutation.SetHeight(u)
	return imuo
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableHeight(u *uint) *ImageMetadataUpdateOne {
	if u != nil {
		imuo.SetHeight(*u)
	}
	return imuo
}

// AddHeight adds u to the "height" field.
func (imuo *ImageMetadataUpdateOne) AddHeight(u int) *ImageMetadataUpdateOne {
	imuo.mutation.AddHeight(u)
	return imuo
}

// ClearHeight clears the value of the "height" field.
func (imuo *ImageMetadataUpdateOne) ClearHeight() *ImageMetadataUpdateOne {
	imuo.mutation.ClearHeight()
	return imuo
}

// SetExifData sets the "exif_data" field.
func (imuo *ImageMetadataUpdateOne) SetExifData(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetExifData(s)
	return imuo
}

// SetNillableExifData sets the "exif_data" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableExifData(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetExifData(*s)
	}
	return imuo
}

// ClearExifData clears the value of the "exif_data" field.
func (imuo *ImageMetadataUpdateOne) ClearExifData() *ImageMetadataUpdateOne {
	imuo.mutation.ClearExifData()
	return imuo
}

// SetXmpData sets the "xmp_data" field.
func (imuo *ImageMetadataUpdateOne) SetXmpData(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetXmpData(s)
	return imuo
}

// SetNillableXmpData sets the "xmp_data" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableXmpData(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetXmpData(*s)
	}
	return imuo
}

// ClearXmpData clears the value of the "xmp_data" field.
func (imuo *ImageMetadataUpdateOne) ClearXmpData() *ImageMetadataUpdateOne {
	imuo.mutation.ClearXmpData()
	return imuo
}

// SetIptcData sets the "iptc_data" field.
func (imuo *ImageMetadataUpdateOne) SetIptcData(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetIptcData(s)
	return imuo
}

// SetNillableIptcData sets the "iptc_data" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableIptcData(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetIptcData(*s)
	}
	return imuo
}

// ClearIptcData clears the value of the "iptc_data" field.
func (imuo *ImageMetadataUpdateOne) ClearIptcData() *ImageMetadataUpdateOne {
	imuo.mutation.ClearIptcData()
	return imuo
}

// SetAiAnalysis sets the "ai_analysis" field.
func (imuo *ImageMetadataUpdateOne) SetAiAnalysis(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetAiAnalysis(s)
	return imuo
}

// SetNillableAiAnalysis sets the "ai_analysis" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableAiAnalysis(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetAiAnalysis(*s)
	}
	return imuo
}

// ClearAiAnalysis clears the value of the "ai_analysis" field.
func (imuo *ImageMetadataUpdateOne) ClearAiAnalysis() *ImageMetadataUpdateOne {
	imuo.mutation.ClearAiAnalysis()
	return imuo
}

// SetKeywords sets the "keywords" field.
func (imuo *ImageMetadataUpdateOne) SetKeywords(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetKeywords(s)
	return imuo
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableKeywords(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetKeywords(*s)
	}
	return imuo
}

// ClearKeywords clears the value of the "keywords" field.
func (imuo *ImageMetadataUpdateOne) ClearKeywords() *ImageMetadataUpdateOne {
	imuo.mutation.ClearKeywords()
	return imuo
}

// SetCameraMake sets the "camera_make" field.
func (imuo *ImageMetadataUpdateOne) SetCameraMake(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetCameraMake(s)
	return imuo
}

// SetNillableCameraMake sets the "camera_make" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableCameraMake(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetCameraMake(*s)
	}
	return imuo
}

// ClearCameraMake clears the value of the "camera_make" field.
func (imuo *ImageMetadataUpdateOne) ClearCameraMake() *ImageMetadataUpdateOne {
	imuo.mutation.ClearCameraMake()
	return imuo
}

// SetCameraModel sets the "camera_model" field.
func (imuo *ImageMetadataUpdateOne) SetCameraModel(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetCameraModel(s)
	return imuo
}

// SetNillableCameraModel sets the "camera_model" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableCameraModel(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetCameraModel(*s)
	}
	return imuo
}

// ClearCameraModel clears the value of the "camera_model" field.
func (imuo *ImageMetadataUpdateOne) ClearCameraModel() *ImageMetadataUpdateOne {
	imuo.mutation.ClearCameraModel()
	return imuo
}

// SetLensInfo sets the "lens_info" field.
func (imuo *ImageMetadataUpdateOne) SetLensInfo(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetLensInfo(s)
	return imuo
}

// SetNillableLensInfo sets the "lens_info" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableLensInfo(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetLensInfo(*s)
	}
	return imuo
}

// ClearLensInfo clears the value of the "lens_info" field.
func (imuo *ImageMetadataUpdateOne) ClearLensInfo() *ImageMetadataUpdateOne {
	imuo.mutation.ClearLensInfo()
	return imuo
}

// SetSoftware sets the "software" field.
func (imuo *ImageMetadataUpdateOne) SetSoftware(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetSoftware(s)
	return imuo
}

// SetNillableSoftware sets the "software" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableSoftware(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetSoftware(*s)
	}
	return imuo
}

// ClearSoftware clears the value of the "software" field.
func (imuo *ImageMetadataUpdateOne) ClearSoftware() *ImageMetadataUpdateOne {
	imuo.mutation.ClearSoftware()
	return imuo
}

// SetDateTaken sets the "date_taken" field.
func (imuo *ImageMetadataUpdateOne) SetDateTaken(t time.Time) *ImageMetadataUpdateOne {
	imuo.mutation.SetDateTaken(t)
	return imuo
}

// SetNillableDateTaken sets the "date_taken" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableDateTaken(t *time.Time) *ImageMetadataUpdateOne {
	if t != nil {
		imuo.SetDateTaken(*t)
	}
	return imuo
}

// ClearDateTaken clears the value of the "date_taken" field.
func (imuo *ImageMetadataUpdateOne) ClearDateTaken() *ImageMetadataUpdateOne {
	imuo.mutation.ClearDateTaken()
	return imuo
}

// SetIso sets the "iso" field.
func (imuo *ImageMetadataUpdateOne) SetIso(i int) *ImageMetadataUpdateOne {
	imuo.mutation.ResetIso()
	imuo.mutation.SetIso(i)
	return imuo
}

// SetNillableIso sets the "iso" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableIso(i *int) *ImageMetadataUpdateOne {
	if i != nil {
		imuo.SetIso(*i)
	}
	return imuo
}

// AddIso adds i to the "iso" field.
func (imuo *ImageMetadataUpdateOne) AddIso(i int) *ImageMetadataUpdateOne {
	imuo.mutation.AddIso(i)
	return imuo
}

// ClearIso clears the value of the "iso" field.
func (imuo *ImageMetadataUpdateOne) ClearIso() *ImageMetadataUpdateOne {
	imuo.mutation.ClearIso()
	return imuo
}

// SetAperture sets the "aperture" field.
func (imuo *ImageMetadataUpdateOne) SetAperture(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.ResetAperture()
	imuo.mutation.SetAperture(f)
	return imuo
}

// SetNillableAperture sets the "aperture" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableAperture(f *float64) *ImageMetadataUpdateOne {
	if f != nil {
		imuo.SetAperture(*f)
	}
	return imuo
}

// AddAperture adds f to the "aperture" field.
func (imuo *ImageMetadataUpdateOne) AddAperture(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.AddAperture(f)
	return imuo
}

// ClearAperture clears the value of the "aperture" field.
func (imuo *ImageMetadataUpdateOne) ClearAperture() *ImageMetadataUpdateOne {
	imuo.mutation.ClearAperture()
	return imuo
}

// SetShutterSpeed sets the "shutter_speed" field.
func (imuo *ImageMetadataUpdateOne) SetShutterSpeed(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.ResetShutterSpeed()
	imuo.mutation.SetShutterSpeed(f)
	return imuo
}

// SetNillableShutterSpeed sets the "shutter_speed" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableShutterSpeed(f *float64) *ImageMetadataUpdateOne {
	if f != nil {
		imuo.SetShutterSpeed(*f)
	}
	return imuo
}

// AddShutterSpeed adds f to the "shutter_speed" field.
func (imuo *ImageMetadataUpdateOne) AddShutterSpeed(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.AddShutterSpeed(f)
	return imuo
}

// ClearShutterSpeed clears the value of the "shutter_speed" field.
func (imuo *ImageMetadataUpdateOne) ClearShutterSpeed() *ImageMetadataUpdateOne {
	imuo.mutation.ClearShutterSpeed()
	return imuo
}

// SetFocalLength sets the "focal_length" field.
func (imuo *ImageMetadataUpdateOne) SetFocalLength(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.ResetFocalLength()
	imuo.mutation.SetFocalLength(f)
	return imuo
}

// SetNillableFocalLength sets the "focal_length" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableFocalLength(f *float64) *ImageMetadataUpdateOne {
	if f != nil {
		imuo.SetFocalLength(*f)
	}
	return imuo
}

// AddFocalLength adds f to the "focal_length" field.
func (imuo *ImageMetadataUpdateOne) AddFocalLength(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.AddFocalLength(f)
	return imuo
}

// ClearFocalLength clears the value of the "focal_length" field.
func (imuo *ImageMetadataUpdateOne) ClearFocalLength() *ImageMetadataUpdateOne {
	imuo.mutation.ClearFocalLength()
	return imuo
}

// SetGpsLatitude sets the "gps_latitude" field.
func (imuo *ImageMetadataUpdateOne) SetGpsLatitude(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.ResetGpsLatitude()
	imuo.mutation.SetGpsLatitude(f)
	return imuo
}

// SetNillableGpsLatitude sets the "gps_latitude" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableGpsLatitude(f *float64) *ImageMetadataUpdateOne {
	if f != nil {
		imuo.SetGpsLatitude(*f)
	}
	return imuo
}

// AddGpsLatitude adds f to the "gps_latitude" field.
func (imuo *ImageMetadataUpdateOne) AddGpsLatitude(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.AddGpsLatitude(f)
	return imuo
}

// ClearGpsLatitude clears the value of the "gps_latitude" field.
func (imuo *ImageMetadataUpdateOne) ClearGpsLatitude() *ImageMetadataUpdateOne {
	imuo.mutation.ClearGpsLatitude()
	return imuo
}

// SetGpsLongitude sets the "gps_longitude" field.
func (imuo *ImageMetadataUpdateOne) SetGpsLongitude(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.ResetGpsLongitude()
	imuo.mutation.SetGpsLongitude(f)
	return imuo
}

// SetNillableGpsLongitude sets the "gps_longitude" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableGpsLongitude(f *float64) *ImageMetadataUpdateOne {
	if f != nil {
		imuo.SetGpsLongitude(*f)
	}
	return imuo
}

// AddGpsLongitude adds f to the "gps_longitude" field.
func (imuo *ImageMetadataUpdateOne) AddGpsLongitude(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.AddGpsLongitude(f)
	return imuo
}

// ClearGpsLongitude clears the value of the "gps_longitude" field.
func (imuo *ImageMetadataUpdateOne) ClearGpsLongitude() *ImageMetadataUpdateOne {
	imuo.mutation.ClearGpsLongitude()
	return imuo
}

// SetGpsAltitude sets the "gps_altitude" field.
func (imuo *ImageMetadataUpdateOne) SetGpsAltitude(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.ResetGpsAltitude()
	imuo.mutation.SetGpsAltitude(f)
	return imuo
}

// SetNillableGpsAltitude sets the "gps_altitude" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableGpsAltitude(f *float64) *ImageMetadataUpdateOne {
	if f != nil {
		imuo.SetGpsAltitude(*f)
	}
	return imuo
}

// AddGpsAltitude adds f to the "gps_altitude" field.
func (imuo *ImageMetadataUpdateOne) AddGpsAltitude(f float64) *ImageMetadataUpdateOne {
	imuo.mutation.AddGpsAltitude(f)
	return imuo
}

// ClearGpsAltitude clears the value of the "gps_altitude" field.
func (imuo *ImageMetadataUpdateOne) ClearGpsAltitude() *ImageMetadataUpdateOne {
	imuo.mutation.ClearGpsAltitude()
	return imuo
}

// SetLocationName sets the "location_name" field.
func (imuo *ImageMetadataUpdateOne) SetLocationName(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetLocationName(s)
	return imuo
}

// SetNillableLocationName sets the "location_name" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableLocationName(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetLocationName(*s)
	}
	return imuo
}

// ClearLocationName clears the value of the "location_name" field.
func (imuo *ImageMetadataUpdateOne) ClearLocationName() *ImageMetadataUpdateOne {
	imuo.mutation.ClearLocationName()
	return imuo
}

// SetOrientation sets the "orientation" field.
func (imuo *ImageMetadataUpdateOne) SetOrientation(i int) *ImageMetadataUpdateOne {
	imuo.mutation.ResetOrientation()
	imuo.mutation.SetOrientation(i)
	return imuo
}

// SetNillableOrientation sets the "orientation" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableOrientation(i *int) *ImageMetadataUpdateOne {
	if i != nil {
		imuo.SetOrientation(*i)
	}
	return imuo
}

// AddOrientation adds i to the "orientation" field.
func (imuo *ImageMetadataUpdateOne) AddOrientation(i int) *ImageMetadataUpdateOne {
	imuo.mutation.AddOrientation(i)
	return imuo
}

// ClearOrientation clears the value of the "orientation" field.
func (imuo *ImageMetadataUpdateOne) ClearOrientation() *ImageMetadataUpdateOne {
	imuo.mutation.ClearOrientation()
	return imuo
}

// SetDescription sets the "description" field.
func (imuo *ImageMetadataUpdateOne) SetDescription(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetDescription(s)
	return imuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableDescription(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetDescription(*s)
	}
	return imuo
}

// ClearDescription clears the value of the "description" field.
func (imuo *ImageMetadataUpdateOne) ClearDescription() *ImageMetadataUpdateOne {
	imuo.mutation.ClearDescription()
	return imuo
}

// SetArtist sets the "artist" field.
func (imuo *ImageMetadataUpdateOne) SetArtist(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetArtist(s)
	return imuo
}

// SetNillableArtist sets the "artist" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableArtist(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetArtist(*s)
	}
	return imuo
}

// ClearArtist clears the value of the "artist" field.
func (imuo *ImageMetadataUpdateOne) ClearArtist() *ImageMetadataUpdateOne {
	imuo.mutation.ClearArtist()
	return imuo
}

// SetCopyright sets the "copyright" field.
func (imuo *ImageMetadataUpdateOne) SetCopyright(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetCopyright(s)
	return imuo
}

// SetNillableCopyright sets the "copyright" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableCopyright(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetCopyright(*s)
	}
	return imuo
}

// ClearCopyright clears the value of the "copyright" field.
func (imuo *ImageMetadataUpdateOne) ClearCopyright() *ImageMetadataUpdateOne {
	imuo.mutation.ClearCopyright()
	return imuo
}

// SetWhiteBalance sets the "white_balance" field.
func (imuo *ImageMetadataUpdateOne) SetWhiteBalance(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetWhiteBalance(s)
	return imuo
}

// SetNillableWhiteBalance sets the "white_balance" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableWhiteBalance(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetWhiteBalance(*s)
	}
	return imuo
}

// ClearWhiteBalance clears the value of the "white_balance" field.
func (imuo *ImageMetadataUpdateOne) ClearWhiteBalance() *ImageMetadataUpdateOne {
	imuo.mutation.ClearWhiteBalance()
	return imuo
}

// SetFlash sets the "flash" field.
func (imuo *ImageMetadataUpdateOne) SetFlash(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetFlash(s)
	return imuo
}

// SetNillableFlash sets the "flash" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableFlash(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetFlash(*s)
	}
	return imuo
}

// ClearFlash clears the value of the "flash" field.
func (imuo *ImageMetadataUpdateOne) ClearFlash() *ImageMetadataUpdateOne {
	imuo.mutation.ClearFlash()
	return imuo
}

// SetMeteringMode sets the "metering_mode" field.
func (imuo *ImageMetadataUpdateOne) SetMeteringMode(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetMeteringMode(s)
	return imuo
}

// SetNillableMeteringMode sets the "metering_mode" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableMeteringMode(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetMeteringMode(*s)
	}
	return imuo
}

// ClearMeteringMode clears the value of the "metering_mode" field.
func (imuo *ImageMetadataUpdateOne) ClearMeteringMode() *ImageMetadataUpdateOne {
	imuo.mutation.ClearMeteringMode()
	return imuo
}

// SetExposureMode sets the "exposure_mode" field.
func (imuo *ImageMetadataUpdateOne) SetExposureMode(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetExposureMode(s)
	return imuo
}

// SetNillableExposureMode sets the "exposure_mode" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableExposureMode(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetExposureMode(*s)
	}
	return imuo
}

// ClearExposureMode clears the value of the "exposure_mode" field.
func (imuo *ImageMetadataUpdateOne) ClearExposureMode() *ImageMetadataUpdateOne {
	imuo.mutation.ClearExposureMode()
	return imuo
}

// SetColorSpace sets the "color_space" field.
func (imuo *ImageMetadataUpdateOne) SetColorSpace(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetColorSpace(s)
	return imuo
}

// SetNillableColorSpace sets the "color_space" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableColorSpace(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetColorSpace(*s)
	}
	return imuo
}

// ClearColorSpace clears the value of the "color_space" field.
func (imuo *ImageMetadataUpdateOne) ClearColorSpace() *ImageMetadataUpdateOne {
	imuo.mutation.ClearColorSpace()
	return imuo
}

// SetSceneCaptureType sets the "scene_capture_type" field.
func (imuo *ImageMetadataUpdateOne) SetSceneCaptureType(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetSceneCaptureType(s)
	return imuo
}

// SetNillableSceneCaptureType sets the "scene_capture_type" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableSceneCaptureType(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetSceneCaptureType(*s)
	}
	return imuo
}

// ClearSceneCaptureType clears the value of the "scene_capture_type" field.
func (imuo *ImageMetadataUpdateOne) ClearSceneCaptureType() *ImageMetadataUpdateOne {
	imuo.mutation.ClearSceneCaptureType()
	return imuo
}

// SetProcessingStatus sets the "processing_status" field.
func (imuo *ImageMetadataUpdateOne) SetProcessingStatus(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetProcessingStatus(s)
	return imuo
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableProcessingStatus(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetProcessingStatus(*s)
	}
	return imuo
}

// SetErrorMessage sets the "error_message" field.
func (imuo *ImageMetadataUpdateOne) SetErrorMessage(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetErrorMessage(s)
	return imuo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableErrorMessage(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetErrorMessage(*s)
	}
	return imuo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (imuo *ImageMetadataUpdateOne) ClearErrorMessage() *ImageMetadataUpdateOne {
	imuo.mutation.ClearErrorMessage()
	return imuo
}

// SetUserID sets the "user_id" field.
func (imuo *ImageMetadataUpdateOne) SetUserID(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetUserID(s)
	return imuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableUserID(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetUserID(*s)
	}
	return imuo
}

// ClearUserID clears the value of the "user_id" field.
func (imuo *ImageMetadataUpdateOne) ClearUserID() *ImageMetadataUpdateOne {
	imuo.mutation.ClearUserID()
	return imuo
}

// SetBatchID sets the "batch_id" field.
func (imuo *ImageMetadataUpdateOne) SetBatchID(s string) *ImageMetadataUpdateOne {
	imuo.mutation.SetBatchID(s)
	return imuo
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (imuo *ImageMetadataUpdateOne) SetNillableBatchID(s *string) *ImageMetadataUpdateOne {
	if s != nil {
		imuo.SetBatchID(*s)
	}
	return imuo
}

// ClearBatchID clears the value of the "batch_id" field.
func (imuo *ImageMetadataUpdateOne) ClearBatchID() *ImageMetadataUpdateOne {
	imuo.mutation.ClearBatchID()
	return imuo
}

// Mutation returns the ImageMetadataMutation object of the builder.
func (imuo *ImageMetadataUpdateOne) Mutation() *ImageMetadataMutation {
	return imuo.mutation
}

// Where appends a list predicates to the ImageMetadataUpdate builder.
func (imuo *ImageMetadataUpdateOne) Where(ps ...predicate.ImageMetadata) *ImageMetadataUpdateOne {
	imuo.mutation.Where(ps...)
	return imuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (imuo *ImageMetadataUpdateOne) Select(field string, fields ...string) *ImageMetadataUpdateOne {
	imuo.fields = append([]string{field}, fields...)
	return imuo
}

// Save executes the query and returns the updated ImageMetadata entity.
func (imuo *ImageMetadataUpdateOne) Save(ctx context.Context) (*ImageMetadata, error) {
	imuo.defaults()
	return withHooks(ctx, imuo.sqlSave, imuo.mutation, imuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (imuo *ImageMetadataUpdateOne) SaveX(ctx context.Context) *ImageMetadata {
	node, err := imuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (imuo *ImageMetadataUpdateOne) Exec(ctx context.Context) error {
	_, err := imuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (imuo *ImageMetadataUpdateOne) ExecX(ctx context.Context) {
	if err := imuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (imuo *ImageMetadataUpdateOne) defaults() {
	if _, ok := imuo.mutation.UpdatedAt(); !ok {
		v := imagemetadata.UpdateDefaultUpdatedAt()
		imuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (imuo *ImageMetadataUpdateOne) check() error {
	if v, ok := imuo.mutation.FileName(); ok {
		if err := imagemetadata.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.file_name": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.MimeType(); ok {
		if err := imagemetadata.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.mime_type": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.FileHash(); ok {
		if err := imagemetadata.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.file_hash": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.CameraMake(); ok {
		if err := imagemetadata.CameraMakeValidator(v); err != nil {
			return &ValidationError{Name: "camera_make", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.camera_make": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.CameraModel(); ok {
		if err := imagemetadata.CameraModelValidator(v); err != nil {
			return &ValidationError{Name: "camera_model", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.camera_model": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.LensInfo(); ok {
		if err := imagemetadata.LensInfoValidator(v); err != nil {
			return &ValidationError{Name: "lens_info", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.lens_info": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.Software(); ok {
		if err := imagemetadata.SoftwareValidator(v); err != nil {
			return &ValidationError{Name: "software", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.software": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.LocationName(); ok {
		if err := imagemetadata.LocationNameValidator(v); err != nil {
			return &ValidationError{Name: "location_name", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.location_name": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.Artist(); ok {
		if err := imagemetadata.ArtistValidator(v); err != nil {
			return &ValidationError{Name: "artist", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.artist": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.Copyright(); ok {
		if err := imagemetadata.CopyrightValidator(v); err != nil {
			return &ValidationError{Name: "copyright", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.copyright": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.WhiteBalance(); ok {
		if err := imagemetadata.WhiteBalanceValidator(v); err != nil {
			return &ValidationError{Name: "white_balance", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.white_balance": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.Flash(); ok {
		if err := imagemetadata.FlashValidator(v); err != nil {
			return &ValidationError{Name: "flash", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.flash": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.MeteringMode(); ok {
		if err := imagemetadata.MeteringModeValidator(v); err != nil {
			return &ValidationError{Name: "metering_mode", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.metering_mode": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.ExposureMode(); ok {
		if err := imagemetadata.ExposureModeValidator(v); err != nil {
			return &ValidationError{Name: "exposure_mode", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.exposure_mode": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.ColorSpace(); ok {
		if err := imagemetadata.ColorSpaceValidator(v); err != nil {
			return &ValidationError{Name: "color_space", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.color_space": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.SceneCaptureType(); ok {
		if err := imagemetadata.SceneCaptureTypeValidator(v); err != nil {
			return &ValidationError{Name: "scene_capture_type", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.scene_capture_type": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.ProcessingStatus(); ok {
		if err := imagemetadata.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.processing_status": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.UserID(); ok {
		if err := imagemetadata.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.user_id": %w`, err)}
		}
	}
	if v, ok := imuo.mutation.BatchID(); ok {
		if err := imagemetadata.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "ImageMetadata.batch_id": %w`, err)}
		}
	}
	return nil
}

func (imuo *ImageMetadataUpdateOne) sqlSave(ctx context.Context) (_node *ImageMetadata, err error) {
	if err := imuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(imagemetadata.Table, imagemetadata.Columns, sqlgraph.NewFieldSpec(imagemetadata.FieldID, field.TypeUint))
	id, ok := imuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImageMetadata.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := imuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, imagemetadata.FieldID)
		for _, f := range fields {
			if !imagemetadata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != imagemetadata.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := imuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := imuo.mutation.UpdatedAt(); ok {
		_spec.SetField(imagemetadata.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := imuo.mutation.FileName(); ok {
		_spec.SetField(imagemetadata.FieldFileName, field.TypeString, value)
	}
	if value, ok := imuo.mutation.FileSizeBytes(); ok {
		_spec.SetField(imagemetadata.FieldFileSizeBytes, field.TypeUint64, value)
	}
	if value, ok := imuo.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(imagemetadata.FieldFileSizeBytes, field.TypeUint64, value)
	}
	if value, ok := imuo.mutation.MimeType(); ok {
		_spec.SetField(imagemetadata.FieldMimeType, field.TypeString, value)
	}
	if imuo.mutation.MimeTypeCleared() {
		_spec.ClearField(imagemetadata.FieldMimeType, field.TypeString)
	}
	if value, ok := imuo.mutation.FileHash(); ok {
		_spec.SetField(imagemetadata.FieldFileHash, field.TypeString, value)
	}
	if imuo.mutation.FileHashCleared() {
		_spec.ClearField(imagemetadata.FieldFileHash, field.TypeString)
	}
	if value, ok := imuo.mutation.Width(); ok {
		_spec.SetField(imagemetadata.FieldWidth, field.TypeUint, value)
	}
	if value, ok := imuo.mutation.AddedWidth(); ok {
		_spec.AddField(imagemetadata.FieldWidth, field.TypeUint, value)
	}
	if imuo.mutation.WidthCleared() {
		_spec.ClearField(imagemetadata.FieldWidth, field.TypeUint)
	}
	if value, ok := imuo.mutation.Height(); ok {
		_spec.SetField(imagemetadata.FieldHeight, field.TypeUint, value)
	}
	if value, ok := imuo.mutation.AddedHeight(); ok {
		_spec.AddField(imagemetadata.FieldHeight, field.TypeUint, value)
	}
	if imuo.mutation.HeightCleared() {
		_spec.ClearField(imagemetadata.FieldHeight, field.TypeUint)
	}
	if value, ok := imuo.mutation.ExifData(); ok {
		_spec.SetField(imagemetadata.FieldExifData, field.TypeString, value)
	}
	if imuo.mutation.ExifDataCleared() {
		_spec.ClearField(imagemetadata.FieldExifData, field.TypeString)
	}
	if value, ok := imuo.mutation.XmpData(); ok {
		_spec.SetField(imagemetadata.FieldXmpData, field.TypeString, value)
	}
	if imuo.mutation.XmpDataCleared() {
		_spec.ClearField(imagemetadata.FieldXmpData, field.TypeString)
	}
	if value, ok := imuo.mutation.IptcData(); ok {
		_spec.SetField(imagemetadata.FieldIptcData, field.TypeString, value)
	}
	if imuo.mutation.IptcDataCleared() {
		_spec.ClearField(imagemetadata.FieldIptcData, field.TypeString)
	}
	if value, ok := imuo.mutation.AiAnalysis(); ok {
		_spec.SetField(imagemetadata.FieldAiAnalysis, field.TypeString, value)
	}
	if imuo.mutation.AiAnalysisCleared() {
		_spec.ClearField(imagemetadata.FieldAiAnalysis, field.TypeString)
	}
	if value, ok := imuo.mutation.Keywords(); ok {
		_spec.SetField(imagemetadata.FieldKeywords, field.TypeString, value)
	}
	if imuo.mutation.KeywordsCleared() {
		_spec.ClearField(imagemetadata.FieldKeywords, field.TypeString)
	}
	if value, ok := imuo.mutation.CameraMake(); ok {
		_spec.SetField(imagemetadata.FieldCameraMake, field.TypeString, value)
	}
	if imuo.mutation.CameraMakeCleared() {
		_spec.ClearField(imagemetadata.FieldCameraMake, field.TypeString)
	}
	if value, ok := imuo.mutation.CameraModel(); ok {
		_spec.SetField(imagemetadata.FieldCameraModel, field.TypeString, value)
	}
	if imuo.mutation.CameraModelCleared() {
		_spec.ClearField(imagemetadata.FieldCameraModel, field.TypeString)
	}
	if value, ok := imuo.mutation.LensInfo(); ok {
		_spec.SetField(imagemetadata.FieldLensInfo, field.TypeString, value)
	}
	if imuo.mutation.LensInfoCleared() {
		_spec.ClearField(imagemetadata.FieldLensInfo, field.TypeString)
	}
	if value, ok := imuo.mutation.Software(); ok {
		_spec.SetField(imagemetadata.FieldSoftware, field.TypeString, value)
	}
	if imuo.mutation.SoftwareCleared() {
		_spec.ClearField(imagemetadata.FieldSoftware, field.TypeString)
	}
	if value, ok := imuo.mutation.DateTaken(); ok {
		_spec.SetField(imagemetadata.FieldDateTaken, field.TypeTime, value)
	}
	if imuo.mutation.DateTakenCleared() {
		_spec.ClearField(imagemetadata.FieldDateTaken, field.TypeTime)
	}
	if value, ok := imuo.mutation.Iso(); ok {
		_spec.SetField(imagemetadata.FieldIso, field.TypeInt, value)
	}
	if value, ok := imuo.mutation.AddedIso(); ok {
		_spec.AddField(imagemetadata.FieldIso, field.TypeInt, value)
	}
	if imuo.mutation.IsoCleared() {
		_spec.ClearField(imagemetadata.FieldIso, field.TypeInt)
	}
	if value, ok := imuo.mutation.Aperture(); ok {
		_spec.SetField(imagemetadata.FieldAperture, field.TypeFloat64, value)
	}
	if value, ok := imuo.mutation.AddedAperture(); ok {
		_spec.AddField(imagemetadata.FieldAperture, field.TypeFloat64, value)
	}
	if imuo.mutation.ApertureCleared() {
		_spec.ClearField(imagemetadata.FieldAperture, field.TypeFloat64)
	}
	if value, ok := imuo.mutation.ShutterSpeed(); ok {
		_spec.SetField(imagemetadata.FieldShutterSpeed, field.TypeFloat64, value)
	}
	if value, ok := imuo.mutation.AddedShutterSpeed(); ok {
		_spec.AddField(imagemetadata.FieldShutterSpeed, field.TypeFloat64, value)
	}
	if imuo.mutation.ShutterSpeedCleared() {
		_spec.ClearField(imagemetadata.FieldShutterSpeed, field.TypeFloat64)
	}
	if value, ok := imuo.mutation.FocalLength(); ok {
		_spec.SetField(imagemetadata.FieldFocalLength, field.TypeFloat64, value)
	}
	if value, ok := imuo.mutation.AddedFocalLength(); ok {
		_spec.AddField(imagemetadata.FieldFocalLength, field.TypeFloat64, value)
	}
	if imuo.mutation.FocalLengthCleared() {
		_spec.ClearField(imagemetadata.FieldFocalLength, field.TypeFloat64)
	}
	if value, ok := imuo.mutation.GpsLatitude(); ok {
		_spec.SetField(imagemetadata.FieldGpsLatitude, field.TypeFloat64, value)
	}
	if value, ok := imuo.mutation.AddedGpsLatitude(); ok {
		_spec.AddField(imagemetadata.FieldGpsLatitude, field.TypeFloat64, value)
	}
	if imuo.mutation.GpsLatitudeCleared() {
		_spec.ClearField(imagemetadata.FieldGpsLatitude, field.TypeFloat64)
	}
	if value, ok := imuo.mutation.GpsLongitude(); ok {
		_spec.SetField(imagemetadata.FieldGpsLongitude, field.TypeFloat64, value)
	}
	if value, ok := imuo.mutation.AddedGpsLongitude(); ok {
		_spec.AddField(imagemetadata.FieldGpsLongitude, field.TypeFloat64, value)
	}
	if imuo.mutation.GpsLongitudeCleared() {
		_spec.ClearField(imagemetadata.FieldGpsLongitude, field.TypeFloat64)
	}
	if value, ok := imuo.mutation.GpsAltitude(); ok {
		_spec.SetField(imagemetadata.FieldGpsAltitude, field.TypeFloat64, value)
	}
	if value, ok := imuo.mutation.AddedGpsAltitude(); ok {
		_spec.AddField(imagemetadata.FieldGpsAltitude, field.TypeFloat64, value)
	}
	if imuo.mutation.GpsAltitudeCleared() {
		_spec.ClearField(imagemetadata.FieldGpsAltitude, field.TypeFloat64)
	}
	if value, ok := imuo.mutation.LocationName(); ok {
		_spec.SetField(imagemetadata.FieldLocationName, field.TypeString, value)
	}
	if imuo.mutation.LocationNameCleared() {
		_spec.ClearField(imagemetadata.FieldLocationName, field.TypeString)
	}
	if value, ok := imuo.mutation.Orientation(); ok {
		_spec.SetField(imagemetadata.FieldOrientation, field.TypeInt, value)
	}
	if value, ok := imuo.mutation.AddedOrientation(); ok {
		_spec.AddField(imagemetadata.FieldOrientation, field.TypeInt, value)
	}
	if imuo.mutation.OrientationCleared() {
		_spec.ClearField(imagemetadata.FieldOrientation, field.TypeInt)
	}
	if value, ok := imuo.mutation.Description(); ok {
		_spec.SetField(imagemetadata.FieldDescription, field.TypeString, value)
	}
	if imuo.mutation.DescriptionCleared() {
		_spec.ClearField(imagemetadata.FieldDescription, field.TypeString)
	}
	if value, ok := imuo.mutation.Artist(); ok {
		_spec.SetField(imagemetadata.FieldArtist, field.TypeString, value)
	}
	if imuo.mutation.ArtistCleared() {
		_spec.ClearField(imagemetadata.FieldArtist, field.TypeString)
	}
	if value, ok := imuo.mutation.Copyright(); ok {
		_spec.SetField(imagemetadata.FieldCopyright, field.TypeString, value)
	}
	if imuo.mutation.CopyrightCleared() {
		_spec.ClearField(imagemetadata.FieldCopyright, field.TypeString)
	}
	if value, ok := imuo.mutation.WhiteBalance(); ok {
		_spec.SetField(imagemetadata.FieldWhiteBalance, field.TypeString, value)
	}
	if imuo.mutation.WhiteBalanceCleared() {
		_spec.ClearField(imagemetadata.FieldWhiteBalance, field.TypeString)
	}
	if value, ok := imuo.mutation.Flash(); ok {
		_spec.SetField(imagemetadata.FieldFlash, field.TypeString, value)
	}
	if imuo.mutation.FlashCleared() {
		_spec.ClearField(imagemetadata.FieldFlash, field.TypeString)
	}
	if value, ok := imuo.mutation.MeteringMode(); ok {
		_spec.SetField(imagemetadata.FieldMeteringMode, field.TypeString, value)
	}
	if imuo.mutation.MeteringModeCleared() {
		_spec.ClearField(imagemetadata.FieldMeteringMode, field.TypeString)
	}
	if value, ok := imuo.mutation.ExposureMode(); ok {
		_spec.SetField(imagemetadata.FieldExposureMode, field.TypeString, value)
	}
	if imuo.mutation.ExposureModeCleared() {
		_spec.ClearField(imagemetadata.FieldExposureMode, field.TypeString)
	}
	if value, ok := imuo.mutation.ColorSpace(); ok {
		_spec.SetField(imagemetadata.FieldColorSpace, field.TypeString, value)
	}
	if imuo.mutation.ColorSpaceCleared() {
		_spec.ClearField(imagemetadata.FieldColorSpace, field.TypeString)
	}
	if value, ok := imuo.mutation.SceneCaptureType(); ok {
		_spec.SetField(imagemetadata.FieldSceneCaptureType, field.TypeString, value)
	}
	if imuo.mutation.SceneCaptureTypeCleared() {
		_spec.ClearField(imagemetadata.FieldSceneCaptureType, field.TypeString)
	}
	if value, ok := imuo.mutation.ProcessingStatus(); ok {
		_spec.SetField(imagemetadata.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := imuo.mutation.ErrorMessage(); ok {
		_spec.SetField(imagemetadata.FieldErrorMessage, field.TypeString, value)
	}
	if imuo.mutation.ErrorMessageCleared() {
		_spec.ClearField(imagemetadata.FieldErrorMessage, field.TypeString)
	}
	if value, ok := imuo.mutation.UserID(); ok {
		_spec.SetField(imagemetadata.FieldUserID, field.TypeString, value)
	}
	if imuo.mutation.UserIDCleared() {
		_spec.ClearField(imagemetadata.FieldUserID, field.TypeString)
	}
	if value, ok := imuo.mutation.BatchID(); ok {
		_spec.SetField(imagemetadata.FieldBatchID, field.TypeString, value)
	}
	if imuo.mutation.BatchIDCleared() {
		_spec.ClearField(imagemetadata.FieldBatchID, field.TypeString)
	}
	_node = &ImageMetadata{config: imuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, imuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{imagemetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	imuo.mutation.done = true
	return _node, nil
}

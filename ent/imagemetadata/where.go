// Code generated by ent, DO NOT EDIT.

package imagemetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/picmeta-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldUpdatedAt, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFileName, v))
}

// FileSizeBytes applies equality check predicate on the "file_size_bytes" field. It's identical to FileSizeBytesEQ.
func FileSizeBytes(v uint64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFileSizeBytes, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldMimeType, v))
}

// FileHash applies equality check predicate on the "file_hash" field. It's identical to FileHashEQ.
func FileHash(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFileHash, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldHeight, v))
}

// ExifData applies equality check predicate on the "exif_data" field. It's identical to ExifDataEQ.
func ExifData(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldExifData, v))
}

// XmpData applies equality check predicate on the "xmp_data" field. It's identical to XmpDataEQ.
func XmpData(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldXmpData, v))
}

// IptcData applies equality check predicate on the "iptc_data" field. It's identical to IptcDataEQ.
func IptcData(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldIptcData, v))
}

// AiAnalysis applies equality check predicate on the "ai_analysis" field. It's identical to AiAnalysisEQ.
func AiAnalysis(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldAiAnalysis, v))
}

// Keywords applies equality check predicate on the "keywords" field. It's identical to KeywordsEQ.
func Keywords(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldKeywords, v))
}

// CameraMake applies equality check predicate on the "camera_make" field. It's identical to CameraMakeEQ.
func CameraMake(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldCameraMake, v))
}

// CameraModel applies equality check predicate on the "camera_model" field. It's identical to CameraModelEQ.
func CameraModel(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldCameraModel, v))
}

// LensInfo applies equality check predicate on the "lens_info" field. It's identical to LensInfoEQ.
func LensInfo(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldLensInfo, v))
}

// Software applies equality check predicate on the "software" field. It's identical to SoftwareEQ.
func Software(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldSoftware, v))
}

// DateTaken applies equality check predicate on the "date_taken" field. It's identical to DateTakenEQ.
func DateTaken(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldDateTaken, v))
}

// Iso applies equality check predicate on the "iso" field. It's identical to IsoEQ.
func Iso(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldIso, v))
}

// Aperture applies equality check predicate on the "aperture" field. It's identical to ApertureEQ.
func Aperture(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldAperture, v))
}

// ShutterSpeed applies equality check predicate on the "shutter_speed" field. It's identical to ShutterSpeedEQ.
func ShutterSpeed(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldShutterSpeed, v))
}

// FocalLength applies equality check predicate on the "focal_length" field. It's identical to FocalLengthEQ.
func FocalLength(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFocalLength, v))
}

// GpsLatitude applies equality check predicate on the "gps_latitude" field. It's identical to GpsLatitudeEQ.
func GpsLatitude(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldGpsLatitude, v))
}

// GpsLongitude applies equality check predicate on the "gps_longitude" field. It's identical to GpsLongitudeEQ.
func GpsLongitude(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldGpsLongitude, v))
}

// GpsAltitude applies equality check predicate on the "gps_altitude" field. It's identical to GpsAltitudeEQ.
func GpsAltitude(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldGpsAltitude, v))
}

// LocationName applies equality check predicate on the "location_name" field. It's identical to LocationNameEQ.
func LocationName(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldLocationName, v))
}

// Orientation applies equality check predicate on the "orientation" field. It's identical to OrientationEQ.
func Orientation(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldOrientation, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldDescription, v))
}

// Artist applies equality check predicate on the "artist" field. It's identical to ArtistEQ.
func Artist(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldArtist, v))
}

// Copyright applies equality check predicate on the "copyright" field. It's identical to CopyrightEQ.
func Copyright(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldCopyright, v))
}

// WhiteBalance applies equality check predicate on the "white_balance" field. It's identical to WhiteBalanceEQ.
func WhiteBalance(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldWhiteBalance, v))
}

// Flash applies equality check predicate on the "flash" field. It's identical to FlashEQ.
func Flash(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFlash, v))
}

// MeteringMode applies equality check predicate on the "metering_mode" field. It's identical to MeteringModeEQ.
func MeteringMode(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldMeteringMode, v))
}

// ExposureMode applies equality check predicate on the "exposure_mode" field. It's identical to ExposureModeEQ.
func ExposureMode(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldExposureMode, v))
}

// ColorSpace applies equality check predicate on the "color_space" field. It's identical to ColorSpaceEQ.
func ColorSpace(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldColorSpace, v))
}

// SceneCaptureType applies equality check predicate on the "scene_capture_type" field. It's identical to SceneCaptureTypeEQ.
func SceneCaptureType(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldSceneCaptureType, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldProcessingStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldErrorMessage, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldUserID, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldBatchID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldUpdatedAt, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldFileName, v))
}

// FileSizeBytesEQ applies the EQ predicate on the "file_size_bytes" field.
func FileSizeBytesEQ(v uint64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesNEQ applies the NEQ predicate on the "file_size_bytes" field.
func FileSizeBytesNEQ(v uint64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesIn applies the In predicate on the "file_size_bytes" field.
func FileSizeBytesIn(vs ...uint64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesNotIn applies the NotIn predicate on the "file_size_bytes" field.
func FileSizeBytesNotIn(vs ...uint64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesGT applies the GT predicate on the "file_size_bytes" field.
func FileSizeBytesGT(v uint64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldFileSizeBytes, v))
}

// FileSizeBytesGTE applies the GTE predicate on the "file_size_bytes" field.
func FileSizeBytesGTE(v uint64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldFileSizeBytes, v))
}

// FileSizeBytesLT applies the LT predicate on the "file_size_bytes" field.
func FileSizeBytesLT(v uint64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldFileSizeBytes, v))
}

// FileSizeBytesLTE applies the LTE predicate on the "file_size_bytes" field.
func FileSizeBytesLTE(v uint64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldFileSizeBytes, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeIsNil applies the IsNil predicate on the "mime_type" field.
func MimeTypeIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldMimeType))
}

// MimeTypeNotNil applies the NotNil predicate on the "mime_type" field.
func MimeTypeNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldMimeType))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldMimeType, v))
}

// FileHashEQ applies the EQ predicate on the "file_hash" field.
func FileHashEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFileHash, v))
}

// FileHashNEQ applies the NEQ predicate on the "file_hash" field.
func FileHashNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldFileHash, v))
}

// FileHashIn applies the In predicate on the "file_hash" field.
func FileHashIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldFileHash, vs...))
}

// FileHashNotIn applies the NotIn predicate on the "file_hash" field.
func FileHashNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldFileHash, vs...))
}

// FileHashGT applies the GT predicate on the "file_hash" field.
func FileHashGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldFileHash, v))
}

// FileHashGTE applies the GTE predicate on the "file_hash" field.
func FileHashGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldFileHash, v))
}

// FileHashLT applies the LT predicate on the "file_hash" field.
func FileHashLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldFileHash, v))
}

// FileHashLTE applies the LTE predicate on the "file_hash" field.
func FileHashLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldFileHash, v))
}

// FileHashContains applies the Contains predicate on the "file_hash" field.
func FileHashContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldFileHash, v))
}

// FileHashHasPrefix applies the HasPrefix predicate on the "file_hash" field.
func FileHashHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldFileHash, v))
}

// FileHashHasSuffix applies the HasSuffix predicate on the "file_hash" field.
func FileHashHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldFileHash, v))
}

// FileHashIsNil applies the IsNil predicate on the "file_hash" field.
func FileHashIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldFileHash))
}

// FileHashNotNil applies the NotNil predicate on the "file_hash" field.
func FileHashNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldFileHash))
}

// FileHashEqualFold applies the EqualFold predicate on the "file_hash" field.
func FileHashEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldFileHash, v))
}

// FileHashContainsFold applies the ContainsFold predicate on the "file_hash" field.
func FileHashContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldFileHash, v))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldWidth, v))
}

// WidthIsNil applies the IsNil predicate on the "width" field.
func WidthIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldWidth))
}

// WidthNotNil applies the NotNil predicate on the "width" field.
func WidthNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldWidth))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v uint) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldHeight, v))
}

// HeightIsNil applies the IsNil predicate on the "height" field.
func HeightIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldHeight))
}

// HeightNotNil applies the NotNil predicate on the "height" field.
func HeightNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldHeight))
}

// ExifDataEQ applies the EQ predicate on the "exif_data" field.
func ExifDataEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldExifData, v))
}

// ExifDataNEQ applies the NEQ predicate on the "exif_data" field.
func ExifDataNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldExifData, v))
}

// ExifDataIn applies the In predicate on the "exif_data" field.
func ExifDataIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldExifData, vs...))
}

// ExifDataNotIn applies the NotIn predicate on the "exif_data" field.
func ExifDataNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldExifData, vs...))
}

// ExifDataGT applies the GT predicate on the "exif_data" field.
func ExifDataGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldExifData, v))
}

// ExifDataGTE applies the GTE predicate on the "exif_data" field.
func ExifDataGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldExifData, v))
}

// ExifDataLT applies the LT predicate on the "exif_data" field.
func ExifDataLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldExifData, v))
}

// ExifDataLTE applies the LTE predicate on the "exif_data" field.
func ExifDataLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldExifData, v))
}

// ExifDataContains applies the Contains predicate on the "exif_data" field.
func ExifDataContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldExifData, v))
}

// ExifDataHasPrefix applies the HasPrefix predicate on the "exif_data" field.
func ExifDataHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldExifData, v))
}

// ExifDataHasSuffix applies the HasSuffix predicate on the "exif_data" field.
func ExifDataHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldExifData, v))
}

// ExifDataIsNil applies the IsNil predicate on the "exif_data" field.
func ExifDataIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldExifData))
}

// ExifDataNotNil applies the NotNil predicate on the "exif_data" field.
func ExifDataNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldExifData))
}

// ExifDataEqualFold applies the EqualFold predicate on the "exif_data" field.
func ExifDataEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldExifData, v))
}

// ExifDataContainsFold applies the ContainsFold predicate on the "exif_data" field.
func ExifDataContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldExifData, v))
}

// XmpDataEQ applies the EQ predicate on the "xmp_data" field.
func XmpDataEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldXmpData, v))
}

// XmpDataNEQ applies the NEQ predicate on the "xmp_data" field.
func XmpDataNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldXmpData, v))
}

// XmpDataIn applies the In predicate on the "xmp_data" field.
func XmpDataIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldXmpData, vs...))
}

// XmpDataNotIn applies the NotIn predicate on the "xmp_data" field.
func XmpDataNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldXmpData, vs...))
}

// XmpDataGT applies the GT predicate on the "xmp_data" field.
func XmpDataGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldXmpData, v))
}

// XmpDataGTE applies the GTE predicate on the "xmp_data" field.
func XmpDataGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldXmpData, v))
}

// XmpDataLT applies the LT predicate on the "xmp_data" field.
func XmpDataLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldXmpData, v))
}

// XmpDataLTE applies the LTE predicate on the "xmp_data" field.
func XmpDataLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldXmpData, v))
}

// XmpDataContains applies the Contains predicate on the "xmp_data" field.
func XmpDataContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldXmpData, v))
}

// XmpDataHasPrefix applies the HasPrefix predicate on the "xmp_data" field.
func XmpDataHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldXmpData, v))
}

// XmpDataHasSuffix applies the HasSuffix predicate on the "xmp_data" field.
func XmpDataHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldXmpData, v))
}

// XmpDataIsNil applies the IsNil predicate on the "xmp_data" field.
func XmpDataIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldXmpData))
}

// XmpDataNotNil applies the NotNil predicate on the "xmp_data" field.
func XmpDataNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldXmpData))
}

// XmpDataEqualFold applies the EqualFold predicate on the "xmp_data" field.
func XmpDataEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldXmpData, v))
}

// XmpDataContainsFold applies the ContainsFold predicate on the "xmp_data" field.
func XmpDataContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldXmpData, v))
}

// IptcDataEQ applies the EQ predicate on the "iptc_data" field.
func IptcDataEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldIptcData, v))
}

// IptcDataNEQ applies the NEQ predicate on the "iptc_data" field.
func IptcDataNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldIptcData, v))
}

// IptcDataIn applies the In predicate on the "iptc_data" field.
func IptcDataIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldIptcData, vs...))
}

// IptcDataNotIn applies the NotIn predicate on the "iptc_data" field.
func IptcDataNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldIptcData, vs...))
}

// IptcDataGT applies the GT predicate on the "iptc_data" field.
func IptcDataGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldIptcData, v))
}

// IptcDataGTE applies the GTE predicate on the "iptc_data" field.
func IptcDataGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldIptcData, v))
}

// IptcDataLT applies the LT predicate on the "iptc_data" field.
func IptcDataLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldIptcData, v))
}

// IptcDataLTE applies the LTE predicate on the "iptc_data" field.
func IptcDataLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldIptcData, v))
}

// IptcDataContains applies the Contains predicate on the "iptc_data" field.
func IptcDataContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldIptcData, v))
}

// IptcDataHasPrefix applies the HasPrefix predicate on the "iptc_data" field.
func IptcDataHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldIptcData, v))
}

// IptcDataHasSuffix applies the HasSuffix predicate on the "iptc_data" field.
func IptcDataHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldIptcData, v))
}

// IptcDataIsNil applies the IsNil predicate on the "iptc_data" field.
func IptcDataIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldIptcData))
}

// IptcDataNotNil applies the NotNil predicate on the "iptc_data" field.
func IptcDataNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldIptcData))
}

// IptcDataEqualFold applies the EqualFold predicate on the "iptc_data" field.
func IptcDataEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldIptcData, v))
}

// IptcDataContainsFold applies the ContainsFold predicate on the "iptc_data" field.
func IptcDataContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldIptcData, v))
}

// AiAnalysisEQ applies the EQ predicate on the "ai_analysis" field.
func AiAnalysisEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldAiAnalysis, v))
}

// AiAnalysisNEQ applies the NEQ predicate on the "ai_analysis" field.
func AiAnalysisNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldAiAnalysis, v))
}

// AiAnalysisIn applies the In predicate on the "ai_analysis" field.
func AiAnalysisIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldAiAnalysis, vs...))
}

// AiAnalysisNotIn applies the NotIn predicate on the "ai_analysis" field.
func AiAnalysisNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldAiAnalysis, vs...))
}

// AiAnalysisGT applies the GT predicate on the "ai_analysis" field.
func AiAnalysisGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldAiAnalysis, v))
}

// AiAnalysisGTE applies the GTE predicate on the "ai_analysis" field.
func AiAnalysisGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldAiAnalysis, v))
}

// AiAnalysisLT applies the LT predicate on the "ai_analysis" field.
func AiAnalysisLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldAiAnalysis, v))
}

// AiAnalysisLTE applies the LTE predicate on the "ai_analysis" field.
func AiAnalysisLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldAiAnalysis, v))
}

// AiAnalysisContains applies the Contains predicate on the "ai_analysis" field.
func AiAnalysisContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldAiAnalysis, v))
}

// AiAnalysisHasPrefix applies the HasPrefix predicate on the "ai_analysis" field.
func AiAnalysisHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldAiAnalysis, v))
}

// AiAnalysisHasSuffix applies the HasSuffix predicate on the "ai_analysis" field.
func AiAnalysisHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldAiAnalysis, v))
}

// AiAnalysisIsNil applies the IsNil predicate on the "ai_analysis" field.
func AiAnalysisIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldAiAnalysis))
}

// AiAnalysisNotNil applies the NotNil predicate on the "ai_analysis" field.
func AiAnalysisNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldAiAnalysis))
}

// AiAnalysisEqualFold applies the EqualFold predicate on the "ai_analysis" field.
func AiAnalysisEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldAiAnalysis, v))
}

// AiAnalysisContainsFold applies the ContainsFold predicate on the "ai_analysis" field.
func AiAnalysisContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldAiAnalysis, v))
}

// KeywordsEQ applies the EQ predicate on the "keywords" field.
func KeywordsEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldKeywords, v))
}

// KeywordsNEQ applies the NEQ predicate on the "keywords" field.
func KeywordsNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldKeywords, v))
}

// KeywordsIn applies the In predicate on the "keywords" field.
func KeywordsIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldKeywords, vs...))
}

// KeywordsNotIn applies the NotIn predicate on the "keywords" field.
func KeywordsNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldKeywords, vs...))
}

// KeywordsGT applies the GT predicate on the "keywords" field.
func KeywordsGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldKeywords, v))
}

// KeywordsGTE applies the GTE predicate on the "keywords" field.
func KeywordsGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldKeywords, v))
}

// KeywordsLT applies the LT predicate on the "keywords" field.
func KeywordsLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldKeywords, v))
}

// KeywordsLTE applies the LTE predicate on the "keywords" field.
func KeywordsLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldKeywords, v))
}

// KeywordsContains applies the Contains predicate on the "keywords" field.
func KeywordsContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldKeywords, v))
}

// KeywordsHasPrefix applies the HasPrefix predicate on the "keywords" field.
func KeywordsHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldKeywords, v))
}

// KeywordsHasSuffix applies the HasSuffix predicate on the "keywords" field.
func KeywordsHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldKeywords, v))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldKeywords))
}

// KeywordsEqualFold applies the EqualFold predicate on the "keywords" field.
func KeywordsEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldKeywords, v))
}

// KeywordsContainsFold applies the ContainsFold predicate on the "keywords" field.
func KeywordsContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldKeywords, v))
}

// CameraMakeEQ applies the EQ predicate on the "camera_make" field.
func CameraMakeEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldCameraMake, v))
}

// CameraMakeNEQ applies the NEQ predicate on the "camera_make" field.
func CameraMakeNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldCameraMake, v))
}

// CameraMakeIn applies the In predicate on the "camera_make" field.
func CameraMakeIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldCameraMake, vs...))
}

// CameraMakeNotIn applies the NotIn predicate on the "camera_make" field.
func CameraMakeNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldCameraMake, vs...))
}

// CameraMakeGT applies the GT predicate on the "camera_make" field.
func CameraMakeGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldCameraMake, v))
}

// CameraMakeGTE applies the GTE predicate on the "camera_make" field.
func CameraMakeGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldCameraMake, v))
}

// CameraMakeLT applies the LT predicate on the "camera_make" field.
func CameraMakeLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldCameraMake, v))
}

// CameraMakeLTE applies the LTE predicate on the "camera_make" field.
func CameraMakeLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldCameraMake, v))
}

// CameraMakeContains applies the Contains predicate on the "camera_make" field.
func CameraMakeContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldCameraMake, v))
}

// CameraMakeHasPrefix applies the HasPrefix predicate on the "camera_make" field.
func CameraMakeHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldCameraMake, v))
}

// CameraMakeHasSuffix applies the HasSuffix predicate on the "camera_make" field.
func CameraMakeHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldCameraMake, v))
}

// CameraMakeIsNil applies the IsNil predicate on the "camera_make" field.
func CameraMakeIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldCameraMake))
}

// CameraMakeNotNil applies the NotNil predicate on the "camera_make" field.
func CameraMakeNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldCameraMake))
}

// CameraMakeEqualFold applies the EqualFold predicate on the "camera_make" field.
func CameraMakeEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldCameraMake, v))
}

// CameraMakeContainsFold applies the ContainsFold predicate on the "camera_make" field.
func CameraMakeContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldCameraMake, v))
}

// CameraModelEQ applies the EQ predicate on the "camera_model" field.
func CameraModelEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldCameraModel, v))
}

// CameraModelNEQ applies the NEQ predicate on the "camera_model" field.
func CameraModelNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldCameraModel, v))
}

// CameraModelIn applies the In predicate on the "camera_model" field.
func CameraModelIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldCameraModel, vs...))
}

// CameraModelNotIn applies the NotIn predicate on the "camera_model" field.
func CameraModelNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldCameraModel, vs...))
}

// CameraModelGT applies the GT predicate on the "camera_model" field.
func CameraModelGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldCameraModel, v))
}

// CameraModelGTE applies the GTE predicate on the "camera_model" field.
func CameraModelGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldCameraModel, v))
}

// CameraModelLT applies the LT predicate on the "camera_model" field.
func CameraModelLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldCameraModel, v))
}

// CameraModelLTE applies the LTE predicate on the "camera_model" field.
func CameraModelLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldCameraModel, v))
}

// CameraModelContains applies the Contains predicate on the "camera_model" field.
func CameraModelContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldCameraModel, v))
}

// CameraModelHasPrefix applies the HasPrefix predicate on the "camera_model" field.
func CameraModelHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldCameraModel, v))
}

// CameraModelHasSuffix applies the HasSuffix predicate on the "camera_model" field.
func CameraModelHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldCameraModel, v))
}

// CameraModelIsNil applies the IsNil predicate on the "camera_model" field.
func CameraModelIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldCameraModel))
}

// CameraModelNotNil applies the NotNil predicate on the "camera_model" field.
func CameraModelNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldCameraModel))
}

// CameraModelEqualFold applies the EqualFold predicate on the "camera_model" field.
func CameraModelEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldCameraModel, v))
}

// CameraModelContainsFold applies the ContainsFold predicate on the "camera_model" field.
func CameraModelContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldCameraModel, v))
}

// LensInfoEQ applies the EQ predicate on the "lens_info" field.
func LensInfoEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldLensInfo, v))
}

// LensInfoNEQ applies the NEQ predicate on the "lens_info" field.
func LensInfoNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldLensInfo, v))
}

// LensInfoIn applies the In predicate on the "lens_info" field.
func LensInfoIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldLensInfo, vs...))
}

// LensInfoNotIn applies the NotIn predicate on the "lens_info" field.
func LensInfoNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldLensInfo, vs...))
}

// LensInfoGT applies the GT predicate on the "lens_info" field.
func LensInfoGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldLensInfo, v))
}

// LensInfoGTE applies the GTE predicate on the "lens_info" field.
func LensInfoGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldLensInfo, v))
}

// LensInfoLT applies the LT predicate on the "lens_info" field.
func LensInfoLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldLensInfo, v))
}

// LensInfoLTE applies the LTE predicate on the "lens_info" field.
func LensInfoLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldLensInfo, v))
}

// LensInfoContains applies the Contains predicate on the "lens_info" field.
func LensInfoContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldLensInfo, v))
}

// LensInfoHasPrefix applies the HasPrefix predicate on the "lens_info" field.
func LensInfoHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldLensInfo, v))
}

// LensInfoHasSuffix applies the HasSuffix predicate on the "lens_info" field.
func LensInfoHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldLensInfo, v))
}

// LensInfoIsNil applies the IsNil predicate on the "lens_info" field.
func LensInfoIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldLensInfo))
}

// LensInfoNotNil applies the NotNil predicate on the "lens_info" field.
func LensInfoNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldLensInfo))
}

// LensInfoEqualFold applies the EqualFold predicate on the "lens_info" field.
func LensInfoEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldLensInfo, v))
}

// LensInfoContainsFold applies the ContainsFold predicate on the "lens_info" field.
func LensInfoContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldLensInfo, v))
}

// SoftwareEQ applies the EQ predicate on the "software" field.
func SoftwareEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldSoftware, v))
}

// SoftwareNEQ applies the NEQ predicate on the "software" field.
func SoftwareNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldSoftware, v))
}

// SoftwareIn applies the In predicate on the "software" field.
func SoftwareIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldSoftware, vs...))
}

// SoftwareNotIn applies the NotIn predicate on the "software" field.
func SoftwareNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldSoftware, vs...))
}

// SoftwareGT applies the GT predicate on the "software" field.
func SoftwareGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldSoftware, v))
}

// SoftwareGTE applies the GTE predicate on the "software" field.
func SoftwareGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldSoftware, v))
}

// SoftwareLT applies the LT predicate on the "software" field.
func SoftwareLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldSoftware, v))
}

// SoftwareLTE applies the LTE predicate on the "software" field.
func SoftwareLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldSoftware, v))
}

// SoftwareContains applies the Contains predicate on the "software" field.
func SoftwareContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldSoftware, v))
}

// SoftwareHasPrefix applies the HasPrefix predicate on the "software" field.
func SoftwareHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldSoftware, v))
}

// SoftwareHasSuffix applies the HasSuffix predicate on the "software" field.
func SoftwareHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldSoftware, v))
}

// SoftwareIsNil applies the IsNil predicate on the "software" field.
func SoftwareIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldSoftware))
}

// SoftwareNotNil applies the NotNil predicate on the "software" field.
func SoftwareNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldSoftware))
}

// SoftwareEqualFold applies the EqualFold predicate on the "software" field.
func SoftwareEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldSoftware, v))
}

// SoftwareContainsFold applies the ContainsFold predicate on the "software" field.
func SoftwareContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldSoftware, v))
}

// DateTakenEQ applies the EQ predicate on the "date_taken" field.
func DateTakenEQ(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldDateTaken, v))
}

// DateTakenNEQ applies the NEQ predicate on the "date_taken" field.
func DateTakenNEQ(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldDateTaken, v))
}

// DateTakenIn applies the In predicate on the "date_taken" field.
func DateTakenIn(vs ...time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldDateTaken, vs...))
}

// DateTakenNotIn applies the NotIn predicate on the "date_taken" field.
func DateTakenNotIn(vs ...time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldDateTaken, vs...))
}

// DateTakenGT applies the GT predicate on the "date_taken" field.
func DateTakenGT(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldDateTaken, v))
}

// DateTakenGTE applies the GTE predicate on the "date_taken" field.
func DateTakenGTE(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldDateTaken, v))
}

// DateTakenLT applies the LT predicate on the "date_taken" field.
func DateTakenLT(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldDateTaken, v))
}

// DateTakenLTE applies the LTE predicate on the "date_taken" field.
func DateTakenLTE(v time.Time) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldDateTaken, v))
}

// DateTakenIsNil applies the IsNil predicate on the "date_taken" field.
func DateTakenIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldDateTaken))
}

// DateTakenNotNil applies the NotNil predicate on the "date_taken" field.
func DateTakenNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldDateTaken))
}

// IsoEQ applies the EQ predicate on the "iso" field.
func IsoEQ(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldIso, v))
}

// IsoNEQ applies the NEQ predicate on the "iso" field.
func IsoNEQ(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldIso, v))
}

// IsoIn applies the In predicate on the "iso" field.
func IsoIn(vs ...int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldIso, vs...))
}

// IsoNotIn applies the NotIn predicate on the "iso" field.
func IsoNotIn(vs ...int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldIso, vs...))
}

// IsoGT applies the GT predicate on the "iso" field.
func IsoGT(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldIso, v))
}

// IsoGTE applies the GTE predicate on the "iso" field.
func IsoGTE(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldIso, v))
}

// IsoLT applies the LT predicate on the "iso" field.
func IsoLT(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldIso, v))
}

// IsoLTE applies the LTE predicate on the "iso" field.
func IsoLTE(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldIso, v))
}

// IsoIsNil applies the IsNil predicate on the "iso" field.
func IsoIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldIso))
}

// IsoNotNil applies the NotNil predicate on the "iso" field.
func IsoNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldIso))
}

// ApertureEQ applies the EQ predicate on the "aperture" field.
func ApertureEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldAperture, v))
}

// ApertureNEQ applies the NEQ predicate on the "aperture" field.
func ApertureNEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldAperture, v))
}

// ApertureIn applies the In predicate on the "aperture" field.
func ApertureIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldAperture, vs...))
}

// ApertureNotIn applies the NotIn predicate on the "aperture" field.
func ApertureNotIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldAperture, vs...))
}

// ApertureGT applies the GT predicate on the "aperture" field.
func ApertureGT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldAperture, v))
}

// ApertureGTE applies the GTE predicate on the "aperture" field.
func ApertureGTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldAperture, v))
}

// ApertureLT applies the LT predicate on the "aperture" field.
func ApertureLT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldAperture, v))
}

// ApertureLTE applies the LTE predicate on the "aperture" field.
func ApertureLTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldAperture, v))
}

// ApertureIsNil applies the IsNil predicate on the "aperture" field.
func ApertureIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldAperture))
}

// ApertureNotNil applies the NotNil predicate on the "aperture" field.
func ApertureNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldAperture))
}

// ShutterSpeedEQ applies the EQ predicate on the "shutter_speed" field.
func ShutterSpeedEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldShutterSpeed, v))
}

// ShutterSpeedNEQ applies the NEQ predicate on the "shutter_speed" field.
func ShutterSpeedNEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldShutterSpeed, v))
}

// ShutterSpeedIn applies the In predicate on the "shutter_speed" field.
func ShutterSpeedIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldShutterSpeed, vs...))
}

// ShutterSpeedNotIn applies the NotIn predicate on the "shutter_speed" field.
func ShutterSpeedNotIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldShutterSpeed, vs...))
}

// ShutterSpeedGT applies the GT predicate on the "shutter_speed" field.
func ShutterSpeedGT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldShutterSpeed, v))
}

// ShutterSpeedGTE applies the GTE predicate on the "shutter_speed" field.
func ShutterSpeedGTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldShutterSpeed, v))
}

// ShutterSpeedLT applies the LT predicate on the "shutter_speed" field.
func ShutterSpeedLT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldShutterSpeed, v))
}

// ShutterSpeedLTE applies the LTE predicate on the "shutter_speed" field.
func ShutterSpeedLTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldShutterSpeed, v))
}

// ShutterSpeedIsNil applies the IsNil predicate on the "shutter_speed" field.
func ShutterSpeedIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldShutterSpeed))
}

// ShutterSpeedNotNil applies the NotNil predicate on the "shutter_speed" field.
func ShutterSpeedNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldShutterSpeed))
}

// FocalLengthEQ applies the EQ predicate on the "focal_length" field.
func FocalLengthEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFocalLength, v))
}

// FocalLengthNEQ applies the NEQ predicate on the "focal_length" field.
func FocalLengthNEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldFocalLength, v))
}

// FocalLengthIn applies the In predicate on the "focal_length" field.
func FocalLengthIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldFocalLength, vs...))
}

// FocalLengthNotIn applies the NotIn predicate on the "focal_length" field.
func FocalLengthNotIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldFocalLength, vs...))
}

// FocalLengthGT applies the GT predicate on the "focal_length" field.
func FocalLengthGT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldFocalLength, v))
}

// FocalLengthGTE applies the GTE predicate on the "focal_length" field.
func FocalLengthGTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldFocalLength, v))
}

// FocalLengthLT applies the LT predicate on the "focal_length" field.
func FocalLengthLT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldFocalLength, v))
}

// FocalLengthLTE applies the LTE predicate on the "focal_length" field.
func FocalLengthLTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldFocalLength, v))
}

// FocalLengthIsNil applies the IsNil predicate on the "focal_length" field.
func FocalLengthIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldFocalLength))
}

// FocalLengthNotNil applies the NotNil predicate on the "focal_length" field.
func FocalLengthNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldFocalLength))
}

// GpsLatitudeEQ applies the EQ predicate on the "gps_latitude" field.
func GpsLatitudeEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldGpsLatitude, v))
}

// GpsLatitudeNEQ applies the NEQ predicate on the "gps_latitude" field.
func GpsLatitudeNEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldGpsLatitude, v))
}

// GpsLatitudeIn applies the In predicate on the "gps_latitude" field.
func GpsLatitudeIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldGpsLatitude, vs...))
}

// GpsLatitudeNotIn applies the NotIn predicate on the "gps_latitude" field.
func GpsLatitudeNotIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldGpsLatitude, vs...))
}

// GpsLatitudeGT applies the GT predicate on the "gps_latitude" field.
func GpsLatitudeGT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldGpsLatitude, v))
}

// GpsLatitudeGTE applies the GTE predicate on the "gps_latitude" field.
func GpsLatitudeGTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldGpsLatitude, v))
}

// GpsLatitudeLT applies the LT predicate on the "gps_latitude" field.
func GpsLatitudeLT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldGpsLatitude, v))
}

// GpsLatitudeLTE applies the LTE predicate on the "gps_latitude" field.
func GpsLatitudeLTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldGpsLatitude, v))
}

// GpsLatitudeIsNil applies the IsNil predicate on the "gps_latitude" field.
func GpsLatitudeIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldGpsLatitude))
}

// GpsLatitudeNotNil applies the NotNil predicate on the "gps_latitude" field.
func GpsLatitudeNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldGpsLatitude))
}

// GpsLongitudeEQ applies the EQ predicate on the "gps_longitude" field.
func GpsLongitudeEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldGpsLongitude, v))
}

// GpsLongitudeNEQ applies the NEQ predicate on the "gps_longitude" field.
func GpsLongitudeNEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldGpsLongitude, v))
}

// GpsLongitudeIn applies the In predicate on the "gps_longitude" field.
func GpsLongitudeIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldGpsLongitude, vs...))
}

// GpsLongitudeNotIn applies the NotIn predicate on the "gps_longitude" field.
func GpsLongitudeNotIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldGpsLongitude, vs...))
}

// GpsLongitudeGT applies the GT predicate on the "gps_longitude" field.
func GpsLongitudeGT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldGpsLongitude, v))
}

// GpsLongitudeGTE applies the GTE predicate on the "gps_longitude" field.
func GpsLongitudeGTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldGpsLongitude, v))
}

// GpsLongitudeLT applies the LT predicate on the "gps_longitude" field.
func GpsLongitudeLT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldGpsLongitude, v))
}

// GpsLongitudeLTE applies the LTE predicate on the "gps_longitude" field.
func GpsLongitudeLTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldGpsLongitude, v))
}

// GpsLongitudeIsNil applies the IsNil predicate on the "gps_longitude" field.
func GpsLongitudeIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldGpsLongitude))
}

// GpsLongitudeNotNil applies the NotNil predicate on the "gps_longitude" field.
func GpsLongitudeNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldGpsLongitude))
}

// GpsAltitudeEQ applies the EQ predicate on the "gps_altitude" field.
func GpsAltitudeEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldGpsAltitude, v))
}

// GpsAltitudeNEQ applies the NEQ predicate on the "gps_altitude" field.
func GpsAltitudeNEQ(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldGpsAltitude, v))
}

// GpsAltitudeIn applies the In predicate on the "gps_altitude" field.
func GpsAltitudeIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldGpsAltitude, vs...))
}

// GpsAltitudeNotIn applies the NotIn predicate on the "gps_altitude" field.
func GpsAltitudeNotIn(vs ...float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldGpsAltitude, vs...))
}

// GpsAltitudeGT applies the GT predicate on the "gps_altitude" field.
func GpsAltitudeGT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldGpsAltitude, v))
}

// GpsAltitudeGTE applies the GTE predicate on the "gps_altitude" field.
func GpsAltitudeGTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldGpsAltitude, v))
}

// GpsAltitudeLT applies the LT predicate on the "gps_altitude" field.
func GpsAltitudeLT(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldGpsAltitude, v))
}

// GpsAltitudeLTE applies the LTE predicate on the "gps_altitude" field.
func GpsAltitudeLTE(v float64) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldGpsAltitude, v))
}

// GpsAltitudeIsNil applies the IsNil predicate on the "gps_altitude" field.
func GpsAltitudeIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldGpsAltitude))
}

// GpsAltitudeNotNil applies the NotNil predicate on the "gps_altitude" field.
func GpsAltitudeNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldGpsAltitude))
}

// LocationNameEQ applies the EQ predicate on the "location_name" field.
func LocationNameEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldLocationName, v))
}

// LocationNameNEQ applies the NEQ predicate on the "location_name" field.
func LocationNameNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldLocationName, v))
}

// LocationNameIn applies the In predicate on the "location_name" field.
func LocationNameIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldLocationName, vs...))
}

// LocationNameNotIn applies the NotIn predicate on the "location_name" field.
func LocationNameNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldLocationName, vs...))
}

// LocationNameGT applies the GT predicate on the "location_name" field.
func LocationNameGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldLocationName, v))
}

// LocationNameGTE applies the GTE predicate on the "location_name" field.
func LocationNameGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldLocationName, v))
}

// LocationNameLT applies the LT predicate on the "location_name" field.
func LocationNameLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldLocationName, v))
}

// LocationNameLTE applies the LTE predicate on the "location_name" field.
func LocationNameLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldLocationName, v))
}

// LocationNameContains applies the Contains predicate on the "location_name" field.
func LocationNameContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldLocationName, v))
}

// LocationNameHasPrefix applies the HasPrefix predicate on the "location_name" field.
func LocationNameHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldLocationName, v))
}

// LocationNameHasSuffix applies the HasSuffix predicate on the "location_name" field.
func LocationNameHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldLocationName, v))
}

// LocationNameIsNil applies the IsNil predicate on the "location_name" field.
func LocationNameIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldLocationName))
}

// LocationNameNotNil applies the NotNil predicate on the "location_name" field.
func LocationNameNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldLocationName))
}

// LocationNameEqualFold applies the EqualFold predicate on the "location_name" field.
func LocationNameEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldLocationName, v))
}

// LocationNameContainsFold applies the ContainsFold predicate on the "location_name" field.
func LocationNameContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldLocationName, v))
}

// OrientationEQ applies the EQ predicate on the "orientation" field.
func OrientationEQ(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldOrientation, v))
}

// OrientationNEQ applies the NEQ predicate on the "orientation" field.
func OrientationNEQ(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldOrientation, v))
}

// OrientationIn applies the In predicate on the "orientation" field.
func OrientationIn(vs ...int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldOrientation, vs...))
}

// OrientationNotIn applies the NotIn predicate on the "orientation" field.
func OrientationNotIn(vs ...int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldOrientation, vs...))
}

// OrientationGT applies the GT predicate on the "orientation" field.
func OrientationGT(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldOrientation, v))
}

// OrientationGTE applies the GTE predicate on the "orientation" field.
func OrientationGTE(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldOrientation, v))
}

// OrientationLT applies the LT predicate on the "orientation" field.
func OrientationLT(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldOrientation, v))
}

// OrientationLTE applies the LTE predicate on the "orientation" field.
func OrientationLTE(v int) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldOrientation, v))
}

// OrientationIsNil applies the IsNil predicate on the "orientation" field.
func OrientationIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldOrientation))
}

// OrientationNotNil applies the NotNil predicate on the "orientation" field.
func OrientationNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldOrientation))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldDescription, v))
}

// ArtistEQ applies the EQ predicate on the "artist" field.
func ArtistEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldArtist, v))
}

// ArtistNEQ applies the NEQ predicate on the "artist" field.
func ArtistNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldArtist, v))
}

// ArtistIn applies the In predicate on the "artist" field.
func ArtistIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldArtist, vs...))
}

// ArtistNotIn applies the NotIn predicate on the "artist" field.
func ArtistNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldArtist, vs...))
}

// ArtistGT applies the GT predicate on the "artist" field.
func ArtistGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldArtist, v))
}

// ArtistGTE applies the GTE predicate on the "artist" field.
func ArtistGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldArtist, v))
}

// ArtistLT applies the LT predicate on the "artist" field.
func ArtistLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldArtist, v))
}

// ArtistLTE applies the LTE predicate on the "artist" field.
func ArtistLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldArtist, v))
}

// ArtistContains applies the Contains predicate on the "artist" field.
func ArtistContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldArtist, v))
}

// ArtistHasPrefix applies the HasPrefix predicate on the "artist" field.
func ArtistHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldArtist, v))
}

// ArtistHasSuffix applies the HasSuffix predicate on the "artist" field.
func ArtistHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldArtist, v))
}

// ArtistIsNil applies the IsNil predicate on the "artist" field.
func ArtistIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldArtist))
}

// ArtistNotNil applies the NotNil predicate on the "artist" field.
func ArtistNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldArtist))
}

// ArtistEqualFold applies the EqualFold predicate on the "artist" field.
func ArtistEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldArtist, v))
}

// ArtistContainsFold applies the ContainsFold predicate on the "artist" field.
func ArtistContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldArtist, v))
}

// CopyrightEQ applies the EQ predicate on the "copyright" field.
func CopyrightEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldCopyright, v))
}

// CopyrightNEQ applies the NEQ predicate on the "copyright" field.
func CopyrightNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldCopyright, v))
}

// CopyrightIn applies the In predicate on the "copyright" field.
func CopyrightIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldCopyright, vs...))
}

// CopyrightNotIn applies the NotIn predicate on the "copyright" field.
func CopyrightNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldCopyright, vs...))
}

// CopyrightGT applies the GT predicate on the "copyright" field.
func CopyrightGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldCopyright, v))
}

// CopyrightGTE applies the GTE predicate on the "copyright" field.
func CopyrightGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldCopyright, v))
}

// CopyrightLT applies the LT predicate on the "copyright" field.
func CopyrightLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldCopyright, v))
}

// CopyrightLTE applies the LTE predicate on the "copyright" field.
func CopyrightLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldCopyright, v))
}

// CopyrightContains applies the Contains predicate on the "copyright" field.
func CopyrightContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldCopyright, v))
}

// CopyrightHasPrefix applies the HasPrefix predicate on the "copyright" field.
func CopyrightHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldCopyright, v))
}

// CopyrightHasSuffix applies the HasSuffix predicate on the "copyright" field.
func CopyrightHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldCopyright, v))
}

// CopyrightIsNil applies the IsNil predicate on the "copyright" field.
func CopyrightIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldCopyright))
}

// CopyrightNotNil applies the NotNil predicate on the "copyright" field.
func CopyrightNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldCopyright))
}

// CopyrightEqualFold applies the EqualFold predicate on the "copyright" field.
func CopyrightEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldCopyright, v))
}

// CopyrightContainsFold applies the ContainsFold predicate on the "copyright" field.
func CopyrightContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldCopyright, v))
}

// WhiteBalanceEQ applies the EQ predicate on the "white_balance" field.
func WhiteBalanceEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldWhiteBalance, v))
}

// WhiteBalanceNEQ applies the NEQ predicate on the "white_balance" field.
func WhiteBalanceNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldWhiteBalance, v))
}

// WhiteBalanceIn applies the In predicate on the "white_balance" field.
func WhiteBalanceIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldWhiteBalance, vs...))
}

// WhiteBalanceNotIn applies the NotIn predicate on the "white_balance" field.
func WhiteBalanceNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldWhiteBalance, vs...))
}

// WhiteBalanceGT applies the GT predicate on the "white_balance" field.
func WhiteBalanceGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldWhiteBalance, v))
}

// WhiteBalanceGTE applies the GTE predicate on the "white_balance" field.
func WhiteBalanceGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldWhiteBalance, v))
}

// WhiteBalanceLT applies the LT predicate on the "white_balance" field.
func WhiteBalanceLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldWhiteBalance, v))
}

// WhiteBalanceLTE applies the LTE predicate on the "white_balance" field.
func WhiteBalanceLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldWhiteBalance, v))
}

// WhiteBalanceContains applies the Contains predicate on the "white_balance" field.
func WhiteBalanceContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldWhiteBalance, v))
}

// WhiteBalanceHasPrefix applies the HasPrefix predicate on the "white_balance" field.
func WhiteBalanceHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldWhiteBalance, v))
}

// WhiteBalanceHasSuffix applies the HasSuffix predicate on the "white_balance" field.
func WhiteBalanceHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldWhiteBalance, v))
}

// WhiteBalanceIsNil applies the IsNil predicate on the "white_balance" field.
func WhiteBalanceIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldWhiteBalance))
}

// WhiteBalanceNotNil applies the NotNil predicate on the "white_balance" field.
func WhiteBalanceNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldWhiteBalance))
}

// WhiteBalanceEqualFold applies the EqualFold predicate on the "white_balance" field.
func WhiteBalanceEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldWhiteBalance, v))
}

// WhiteBalanceContainsFold applies the ContainsFold predicate on the "white_balance" field.
func WhiteBalanceContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldWhiteBalance, v))
}

// FlashEQ applies the EQ predicate on the "flash" field.
func FlashEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldFlash, v))
}

// FlashNEQ applies the NEQ predicate on the "flash" field.
func FlashNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldFlash, v))
}

// FlashIn applies the In predicate on the "flash" field.
func FlashIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldFlash, vs...))
}

// FlashNotIn applies the NotIn predicate on the "flash" field.
func FlashNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldFlash, vs...))
}

// FlashGT applies the GT predicate on the "flash" field.
func FlashGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldFlash, v))
}

// FlashGTE applies the GTE predicate on the "flash" field.
func FlashGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldFlash, v))
}

// FlashLT applies the LT predicate on the "flash" field.
func FlashLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldFlash, v))
}

// FlashLTE applies the LTE predicate on the "flash" field.
func FlashLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldFlash, v))
}

// FlashContains applies the Contains predicate on the "flash" field.
func FlashContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldFlash, v))
}

// FlashHasPrefix applies the HasPrefix predicate on the "flash" field.
func FlashHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldFlash, v))
}

// FlashHasSuffix applies the HasSuffix predicate on the "flash" field.
func FlashHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldFlash, v))
}

// FlashIsNil applies the IsNil predicate on the "flash" field.
func FlashIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldFlash))
}

// FlashNotNil applies the NotNil predicate on the "flash" field.
func FlashNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldFlash))
}

// FlashEqualFold applies the EqualFold predicate on the "flash" field.
func FlashEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldFlash, v))
}

// FlashContainsFold applies the ContainsFold predicate on the "flash" field.
func FlashContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldFlash, v))
}

// MeteringModeEQ applies the EQ predicate on the "metering_mode" field.
func MeteringModeEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldMeteringMode, v))
}

// MeteringModeNEQ applies the NEQ predicate on the "metering_mode" field.
func MeteringModeNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldMeteringMode, v))
}

// MeteringModeIn applies the In predicate on the "metering_mode" field.
func MeteringModeIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldMeteringMode, vs...))
}

// MeteringModeNotIn applies the NotIn predicate on the "metering_mode" field.
func MeteringModeNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldMeteringMode, vs...))
}

// MeteringModeGT applies the GT predicate on the "metering_mode" field.
func MeteringModeGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldMeteringMode, v))
}

// MeteringModeGTE applies the GTE predicate on the "metering_mode" field.
func MeteringModeGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldMeteringMode, v))
}

// MeteringModeLT applies the LT predicate on the "metering_mode" field.
func MeteringModeLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldMeteringMode, v))
}

// MeteringModeLTE applies the LTE predicate on the "metering_mode" field.
func MeteringModeLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldMeteringMode, v))
}

// MeteringModeContains applies the Contains predicate on the "metering_mode" field.
func MeteringModeContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldMeteringMode, v))
}

// MeteringModeHasPrefix applies the HasPrefix predicate on the "metering_mode" field.
func MeteringModeHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldMeteringMode, v))
}

// MeteringModeHasSuffix applies the HasSuffix predicate on the "metering_mode" field.
func MeteringModeHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldMeteringMode, v))
}

// MeteringModeIsNil applies the IsNil predicate on the "metering_mode" field.
func MeteringModeIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldMeteringMode))
}

// MeteringModeNotNil applies the NotNil predicate on the "metering_mode" field.
func MeteringModeNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldMeteringMode))
}

// MeteringModeEqualFold applies the EqualFold predicate on the "metering_mode" field.
func MeteringModeEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldMeteringMode, v))
}

// MeteringModeContainsFold applies the ContainsFold predicate on the "metering_mode" field.
func MeteringModeContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldMeteringMode, v))
}

// ExposureModeEQ applies the EQ predicate on the "exposure_mode" field.
func ExposureModeEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldExposureMode, v))
}

// ExposureModeNEQ applies the NEQ predicate on the "exposure_mode" field.
func ExposureModeNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldExposureMode, v))
}

// ExposureModeIn applies the In predicate on the "exposure_mode" field.
func ExposureModeIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldExposureMode, vs...))
}

// ExposureModeNotIn applies the NotIn predicate on the "exposure_mode" field.
func ExposureModeNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldExposureMode, vs...))
}

// ExposureModeGT applies the GT predicate on the "exposure_mode" field.
func ExposureModeGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldExposureMode, v))
}

// ExposureModeGTE applies the GTE predicate on the "exposure_mode" field.
func ExposureModeGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldExposureMode, v))
}

// ExposureModeLT applies the LT predicate on the "exposure_mode" field.
func ExposureModeLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldExposureMode, v))
}

// ExposureModeLTE applies the LTE predicate on the "exposure_mode" field.
func ExposureModeLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldExposureMode, v))
}

// ExposureModeContains applies the Contains predicate on the "exposure_mode" field.
func ExposureModeContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldExposureMode, v))
}

// ExposureModeHasPrefix applies the HasPrefix predicate on the "exposure_mode" field.
func ExposureModeHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldExposureMode, v))
}

// ExposureModeHasSuffix applies the HasSuffix predicate on the "exposure_mode" field.
func ExposureModeHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldExposureMode, v))
}

// ExposureModeIsNil applies the IsNil predicate on the "exposure_mode" field.
func ExposureModeIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldExposureMode))
}

// ExposureModeNotNil applies the NotNil predicate on the "exposure_mode" field.
func ExposureModeNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldExposureMode))
}

// ExposureModeEqualFold applies the EqualFold predicate on the "exposure_mode" field.
func ExposureModeEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldExposureMode, v))
}

// ExposureModeContainsFold applies the ContainsFold predicate on the "exposure_mode" field.
func ExposureModeContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldExposureMode, v))
}

// ColorSpaceEQ applies the EQ predicate on the "color_space" field.
func ColorSpaceEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldColorSpace, v))
}

// ColorSpaceNEQ applies the NEQ predicate on the "color_space" field.
func ColorSpaceNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldColorSpace, v))
}

// ColorSpaceIn applies the In predicate on the "color_space" field.
func ColorSpaceIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldColorSpace, vs...))
}

// ColorSpaceNotIn applies the NotIn predicate on the "color_space" field.
func ColorSpaceNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldColorSpace, vs...))
}

// ColorSpaceGT applies the GT predicate on the "color_space" field.
func ColorSpaceGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldColorSpace, v))
}

// ColorSpaceGTE applies the GTE predicate on the "color_space" field.
func ColorSpaceGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldColorSpace, v))
}

// ColorSpaceLT applies the LT predicate on the "color_space" field.
func ColorSpaceLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldColorSpace, v))
}

// ColorSpaceLTE applies the LTE predicate on the "color_space" field.
func ColorSpaceLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldColorSpace, v))
}

// ColorSpaceContains applies the Contains predicate on the "color_space" field.
func ColorSpaceContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldColorSpace, v))
}

// ColorSpaceHasPrefix applies the HasPrefix predicate on the "color_space" field.
func ColorSpaceHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldColorSpace, v))
}

// ColorSpaceHasSuffix applies the HasSuffix predicate on the "color_space" field.
func ColorSpaceHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldColorSpace, v))
}

// ColorSpaceIsNil applies the IsNil predicate on the "color_space" field.
func ColorSpaceIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldColorSpace))
}

// ColorSpaceNotNil applies the NotNil predicate on the "color_space" field.
func ColorSpaceNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldColorSpace))
}

// ColorSpaceEqualFold applies the EqualFold predicate on the "color_space" field.
func ColorSpaceEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldColorSpace, v))
}

// ColorSpaceContainsFold applies the ContainsFold predicate on the "color_space" field.
func ColorSpaceContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldColorSpace, v))
}

// SceneCaptureTypeEQ applies the EQ predicate on the "scene_capture_type" field.
func SceneCaptureTypeEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldSceneCaptureType, v))
}

// SceneCaptureTypeNEQ applies the NEQ predicate on the "scene_capture_type" field.
func SceneCaptureTypeNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldSceneCaptureType, v))
}

// SceneCaptureTypeIn applies the In predicate on the "scene_capture_type" field.
func SceneCaptureTypeIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldSceneCaptureType, vs...))
}

// SceneCaptureTypeNotIn applies the NotIn predicate on the "scene_capture_type" field.
func SceneCaptureTypeNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldSceneCaptureType, vs...))
}

// SceneCaptureTypeGT applies the GT predicate on the "scene_capture_type" field.
func SceneCaptureTypeGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldSceneCaptureType, v))
}

// SceneCaptureTypeGTE applies the GTE predicate on the "scene_capture_type" field.
func SceneCaptureTypeGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldSceneCaptureType, v))
}

// SceneCaptureTypeLT applies the LT predicate on the "scene_capture_type" field.
func SceneCaptureTypeLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldSceneCaptureType, v))
}

// SceneCaptureTypeLTE applies the LTE predicate on the "scene_capture_type" field.
func SceneCaptureTypeLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldSceneCaptureType, v))
}

// SceneCaptureTypeContains applies the Contains predicate on the "scene_capture_type" field.
func SceneCaptureTypeContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldSceneCaptureType, v))
}

// SceneCaptureTypeHasPrefix applies the HasPrefix predicate on the "scene_capture_type" field.
func SceneCaptureTypeHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldSceneCaptureType, v))
}

// SceneCaptureTypeHasSuffix applies the HasSuffix predicate on the "scene_capture_type" field.
func SceneCaptureTypeHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldSceneCaptureType, v))
}

// SceneCaptureTypeIsNil applies the IsNil predicate on the "scene_capture_type" field.
func SceneCaptureTypeIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldSceneCaptureType))
}

// SceneCaptureTypeNotNil applies the NotNil predicate on the "scene_capture_type" field.
func SceneCaptureTypeNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldSceneCaptureType))
}

// SceneCaptureTypeEqualFold applies the EqualFold predicate on the "scene_capture_type" field.
func SceneCaptureTypeEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldSceneCaptureType, v))
}

// SceneCaptureTypeContainsFold applies the ContainsFold predicate on the "scene_capture_type" field.
func SceneCaptureTypeContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldSceneCaptureType, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldErrorMessage, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldUserID, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDIsNil applies the IsNil predicate on the "batch_id" field.
func BatchIDIsNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldIsNull(FieldBatchID))
}

// BatchIDNotNil applies the NotNil predicate on the "batch_id" field.
func BatchIDNotNil() predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldNotNull(FieldBatchID))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.FieldContainsFold(FieldBatchID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImageMetadata) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImageMetadata) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImageMetadata) predicate.ImageMetadata {
	return predicate.ImageMetadata(sql.NotPredicates(p))
}

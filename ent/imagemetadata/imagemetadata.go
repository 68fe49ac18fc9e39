// Code generated by ent, DO NOT EDIT.

package imagemetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the imagemetadata type in the database.
	Label = "image_metadata"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFileSizeBytes holds the string denoting the file_size_bytes field in the database.
	FieldFileSizeBytes = "file_size_bytes"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldFileHash holds the string denoting the file_hash field in the database.
	FieldFileHash = "file_hash"
	// FieldWidth holds the string denoting the width field in the database.
	FieldWidth = "width"
	// FieldHeight holds the string denoting the height field in the database.
	FieldHeight = "height"
	// FieldExifData holds the string denoting the exif_data field in the database.
	FieldExifData = "exif_data"
	// FieldXmpData holds the string denoting the xmp_data field in the database.
	FieldXmpData = "xmp_data"
	// FieldIptcData holds the string denoting the iptc_data field in the database.
	FieldIptcData = "iptc_data"
	// FieldAiAnalysis holds the string denoting the ai_analysis field in the database.
	FieldAiAnalysis = "ai_analysis"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldCameraMake holds the string denoting the camera_make field in the database.
	FieldCameraMake = "camera_make"
	// FieldCameraModel holds the string denoting the camera_model field in the database.
	FieldCameraModel = "camera_model"
	// FieldLensInfo holds the string denoting the lens_info field in the database.
	FieldLensInfo = "lens_info"
	// FieldSoftware holds the string denoting the software field in the database.
	FieldSoftware = "software"
	// FieldDateTaken holds the string denoting the date_taken field in the database.
	FieldDateTaken = "date_taken"
	// FieldIso holds the string denoting the iso field in the database.
	FieldIso = "iso"
	// FieldAperture holds the string denoting the aperture field in the database.
	FieldAperture = "aperture"
	// FieldShutterSpeed holds the string denoting the shutter_speed field in the database.
	FieldShutterSpeed = "shutter_speed"
	// FieldFocalLength holds the string denoting the focal_length field in the database.
	FieldFocalLength = "focal_length"
	// FieldGpsLatitude holds the string denoting the gps_latitude field in the database.
	FieldGpsLatitude = "gps_latitude"
	// FieldGpsLongitude holds the string denoting the gps_longitude field in the database.
	FieldGpsLongitude = "gps_longitude"
	// FieldGpsAltitude holds the string denoting the gps_altitude field in the database.
	FieldGpsAltitude = "gps_altitude"
	// FieldLocationName holds the string denoting the location_name field in the database.
	FieldLocationName = "location_name"
	// FieldOrientation holds the string denoting the orientation field in the database.
	FieldOrientation = "orientation"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldArtist holds the string denoting the artist field in the database.
	FieldArtist = "artist"
	// FieldCopyright holds the string denoting the copyright field in the database.
	FieldCopyright = "copyright"
	// FieldWhiteBalance holds the string denoting the white_balance field in the database.
	FieldWhiteBalance = "white_balance"
	// FieldFlash holds the string denoting the flash field in the database.
	FieldFlash = "flash"
	// FieldMeteringMode holds the string denoting the metering_mode field in the database.
	FieldMeteringMode = "metering_mode"
	// FieldExposureMode holds the string denoting the exposure_mode field in the database.
	FieldExposureMode = "exposure_mode"
	// FieldColorSpace holds the string denoting the color_space field in the database.
	FieldColorSpace = "color_space"
	// FieldSceneCaptureType holds the string denoting the scene_capture_type field in the database.
	FieldSceneCaptureType = "scene_capture_type"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// Table holds the table name of the imagemetadata in the database.
	Table = "image_metadata"
)

// Columns holds all SQL columns for imagemetadata fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFileName,
	FieldFileSizeBytes,
	FieldMimeType,
	FieldFileHash,
	FieldWidth,
	FieldHeight,
	FieldExifData,
	FieldXmpData,
	FieldIptcData,
	FieldAiAnalysis,
	FieldKeywords,
	FieldCameraMake,
	FieldCameraModel,
	FieldLensInfo,
	FieldSoftware,
	FieldDateTaken,
	FieldIso,
	FieldAperture,
	FieldShutterSpeed,
	FieldFocalLength,
	FieldGpsLatitude,
	FieldGpsLongitude,
	FieldGpsAltitude,
	FieldLocationName,
	FieldOrientation,
	FieldDescription,
	FieldArtist,
	FieldCopyright,
	FieldWhiteBalance,
	FieldFlash,
	FieldMeteringMode,
	FieldExposureMode,
	FieldColorSpace,
	FieldSceneCaptureType,
	FieldProcessingStatus,
	FieldErrorMessage,
	FieldUserID,
	FieldBatchID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	MimeTypeValidator func(string) error
	// FileHashValidator is a validator for the "file_hash" field. It is called by the builders before save.
	FileHashValidator func(string) error
	// CameraMakeValidator is a validator for the "camera_make" field. It is called by the builders before save.
	CameraMakeValidator func(string) error
	// CameraModelValidator is a validator for the "camera_model" field. It is called by the builders before save.
	CameraModelValidator func(string) error
	// LensInfoValidator is a validator for the "lens_info" field. It is called by the builders before save.
	LensInfoValidator func(string) error
	// SoftwareValidator is a validator for the "software" field. It is called by the builders before save.
	SoftwareValidator func(string) error
	// LocationNameValidator is a validator for the "location_name" field. It is called by the builders before save.
	LocationNameValidator func(string) error
	// ArtistValidator is a validator for the "artist" field. It is called by the builders before save.
	ArtistValidator func(string) error
	// CopyrightValidator is a validator for the "copyright" field. It is called by the builders before save.
	CopyrightValidator func(string) error
	// WhiteBalanceValidator is a validator for the "white_balance" field. It is called by the builders before save.
	WhiteBalanceValidator func(string) error
	// FlashValidator is a validator for the "flash" field. It is called by the builders before save.
	FlashValidator func(string) error
	// MeteringModeValidator is a validator for the "metering_mode" field. It is called by the builders before save.
	MeteringModeValidator func(string) error
	// ExposureModeValidator is a validator for the "exposure_mode" field. It is called by the builders before save.
	ExposureModeValidator func(string) error
	// ColorSpaceValidator is a validator for the "color_space" field. It is called by the builders before save.
	ColorSpaceValidator func(string) error
	// SceneCaptureTypeValidator is a validator for the "scene_capture_type" field. It is called by the builders before save.
	SceneCaptureTypeValidator func(string) error
	// DefaultProcessingStatus holds the default value on creation for the "processing_status" field.
	DefaultProcessingStatus string
	// ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	ProcessingStatusValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	BatchIDValidator func(string) error
)

// OrderOption defines the ordering options for the ImageMetadata queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFileSizeBytes orders the results by the file_size_bytes field.
func ByFileSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeBytes, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByFileHash orders the results by the file_hash field.
func ByFileHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileHash, opts...).ToFunc()
}

// ByWidth orders the results by the width field.
func ByWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWidth, opts...).ToFunc()
}

// ByHeight orders the results by the height field.
func ByHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeight, opts...).ToFunc()
}

// ByExifData orders the results by the exif_data field.
func ByExifData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExifData, opts...).ToFunc()
}

// ByXmpData orders the results by the xmp_data field.
func ByXmpData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXmpData, opts...).ToFunc()
}

// ByIptcData orders the results by the iptc_data field.
func ByIptcData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIptcData, opts...).ToFunc()
}

// ByAiAnalysis orders the results by the ai_analysis field.
func ByAiAnalysis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiAnalysis, opts...).ToFunc()
}

// ByKeywords orders the results by the keywords field.
func ByKeywords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeywords, opts...).ToFunc()
}

// ByCameraMake orders the results by the camera_make field.
func ByCameraMake(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCameraMake, opts...).ToFunc()
}

// ByCameraModel orders the results by the camera_model field.
func ByCameraModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCameraModel, opts...).ToFunc()
}

// ByLensInfo orders the results by the lens_info field.
func ByLensInfo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLensInfo, opts...).ToFunc()
}

// BySoftware orders the results by the software field.
func BySoftware(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoftware, opts...).ToFunc()
}

// ByDateTaken orders the results by the date_taken field.
func ByDateTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateTaken, opts...).ToFunc()
}

// ByIso orders the results by the iso field.
func ByIso(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIso, opts...).ToFunc()
}

// ByAperture orders the results by the aperture field.
func ByAperture(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAperture, opts...).ToFunc()
}

// ByShutterSpeed orders the results by the shutter_speed field.
func ByShutterSpeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShutterSpeed, opts...).ToFunc()
}

// ByFocalLength orders the results by the focal_length field.
func ByFocalLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocalLength, opts...).ToFunc()
}

// ByGpsLatitude orders the results by the gps_latitude field.
func ByGpsLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpsLatitude, opts...).ToFunc()
}

// ByGpsLongitude orders the results by the gps_longitude field.
func ByGpsLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpsLongitude, opts...).ToFunc()
}

// ByGpsAltitude orders the results by the gps_altitude field.
func ByGpsAltitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpsAltitude, opts...).ToFunc()
}

// ByLocationName orders the results by the location_name field.
func ByLocationName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationName, opts...).ToFunc()
}

// ByOrientation orders the results by the orientation field.
func ByOrientation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrientation, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByArtist orders the results by the artist field.
func ByArtist(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtist, opts...).ToFunc()
}

// ByCopyright orders the results by the copyright field.
func ByCopyright(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCopyright, opts...).ToFunc()
}

// ByWhiteBalance orders the results by the white_balance field.
func ByWhiteBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhiteBalance, opts...).ToFunc()
}

// ByFlash orders the results by the flash field.
func ByFlash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlash, opts...).ToFunc()
}

// ByMeteringMode orders the results by the metering_mode field.
func ByMeteringMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeteringMode, opts...).ToFunc()
}

// ByExposureMode orders the results by the exposure_mode field.
func ByExposureMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExposureMode, opts...).ToFunc()
}

// ByColorSpace orders the results by the color_space field.
func ByColorSpace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColorSpace, opts...).ToFunc()
}

// BySceneCaptureType orders the results by the scene_capture_type field.
func BySceneCaptureType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSceneCaptureType, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

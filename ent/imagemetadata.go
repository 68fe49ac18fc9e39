// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/picmeta-app/ent/imagemetadata"
)

// 图片元数据表
type ImageMetadata struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FileSizeBytes holds the value of the "file_size_bytes" field.
	FileSizeBytes uint64 `json:"file_size_bytes,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType *string `json:"mime_type,omitempty"`
	// FileHash holds the value of the "file_hash" field.
	FileHash *string `json:"file_hash,omitempty"`
	// Width holds the value of the "width" field.
	Width *uint `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height *uint `json:"height,omitempty"`
	// ExifData holds the value of the "exif_data" field.
	ExifData *string `json:"exif_data,omitempty"`
	// XmpData holds the value of the "xmp_data" field.
	XmpData *string `json:"xmp_data,omitempty"`
	// IptcData holds the value of the "iptc_data" field.
	IptcData *string `json:"iptc_data,omitempty"`
	// AiAnalysis holds the value of the "ai_analysis" field.
	AiAnalysis *string `json:"ai_analysis,omitempty"`
	// Keywords holds the value of the "keywords" field.
	Keywords *string `json:"keywords,omitempty"`
	// CameraMake holds the value of the "camera_make" field.
	CameraMake *string `json:"camera_make,omitempty"`
	// CameraModel holds the value of the "camera_model" field.
	CameraModel *string `json:"camera_model,omitempty"`
	// LensInfo holds the value of the "lens_info" field.
	LensInfo *string `json:"lens_info,omitempty"`
	// Software holds the value of the "software" field.
	Software *string `json:"software,omitempty"`
	// DateTaken holds the value of the "date_taken" field.
	DateTaken *time.Time `json:"date_taken,omitempty"`
	// Iso holds the value of the "iso" field.
	Iso *int `json:"iso,omitempty"`
	// Aperture holds the value of the "aperture" field.
	Aperture *float64 `json:"aperture,omitempty"`
	// ShutterSpeed holds the value of the "shutter_speed" field.
	ShutterSpeed *float64 `json:"shutter_speed,omitempty"`
	// FocalLength holds the value of the "focal_length" field.
	FocalLength *float64 `json:"focal_length,omitempty"`
	// GpsLatitude holds the value of the "gps_latitude" field.
	GpsLatitude *float64 `json:"gps_latitude,omitempty"`
	// GpsLongitude holds the value of the "gps_longitude" field.
	GpsLongitude *float64 `json:"gps_longitude,omitempty"`
	// GpsAltitude holds the value of the "gps_altitude" field.
	GpsAltitude *float64 `json:"gps_altitude,omitempty"`
	// LocationName holds the value of the "location_name" field.
	LocationName *string `json:"location_name,omitempty"`
	// Orientation holds the value of the "orientation" field.
	Orientation *int `json:"orientation,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Artist holds the value of the "artist" field.
	Artist *string `json:"artist,omitempty"`
	// Copyright holds the value of the "copyright" field.
	Copyright *string `json:"copyright,omitempty"`
	// WhiteBalance holds the value of the "white_balance" field.
	WhiteBalance *string `json:"white_balance,omitempty"`
	// Flash holds the value of the "flash" field.
	Flash *string `json:"flash,omitempty"`
	// MeteringMode holds the value of the "metering_mode" field.
	MeteringMode *string `json:"metering_mode,omitempty"`
	// ExposureMode holds the value of the "exposure_mode" field.
	ExposureMode *string `json:"exposure_mode,omitempty"`
	// ColorSpace holds the value of the "color_space" field.
	ColorSpace *string `json:"color_space,omitempty"`
	// SceneCaptureType holds the value of the "scene_capture_type" field.
	SceneCaptureType *string `json:"scene_capture_type,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus string `json:"processing_status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID      *string `json:"batch_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImageMetadata) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case imagemetadata.FieldAperture, imagemetadata.FieldShutterSpeed, imagemetadata.FieldFocalLength, imagemetadata.FieldGpsLatitude, imagemetadata.FieldGpsLongitude, imagemetadata.FieldGpsAltitude:
			values[i] = new(sql.NullFloat64)
		case imagemetadata.FieldID, imagemetadata.FieldFileSizeBytes, imagemetadata.FieldWidth, imagemetadata.FieldHeight, imagemetadata.FieldIso, imagemetadata.FieldOrientation:
			values[i] = new(sql.NullInt64)
		case imagemetadata.FieldFileName, imagemetadata.FieldMimeType, imagemetadata.FieldFileHash, imagemetadata.FieldExifData, imagemetadata.FieldXmpData, imagemetadata.FieldIptcData, imagemetadata.FieldAiAnalysis, imagemetadata.FieldKeywords, imagemetadata.FieldCameraMake, imagemetadata.FieldCameraModel, imagemetadata.FieldLensInfo, imagemetadata.FieldSoftware, imagemetadata.FieldLocationName, imagemetadata.FieldDescription, imagemetadata.FieldArtist, imagemetadata.FieldCopyright, imagemetadata.FieldWhiteBalance, imagemetadata.FieldFlash, imagemetadata.FieldMeteringMode, imagemetadata.FieldExposureMode, imagemetadata.FieldColorSpace, imagemetadata.FieldSceneCaptureType, imagemetadata.FieldProcessingStatus, imagemetadata.FieldErrorMessage, imagemetadata.FieldUserID, imagemetadata.FieldBatchID:
			values[i] = new(sql.NullString)
		case imagemetadata.FieldCreatedAt, imagemetadata.FieldUpdatedAt, imagemetadata.FieldDateTaken:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImageMetadata fields.
func (im *ImageMetadata) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case imagemetadata.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			im.ID = uint(value.Int64)
		case imagemetadata.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				im.CreatedAt = value.Time
			}
		case imagemetadata.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				im.UpdatedAt = value.Time
			}
		case imagemetadata.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				im.FileName = value.String
			}
		case imagemetadata.FieldFileSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_bytes", values[i])
			} else if value.Valid {
				im.FileSizeBytes = uint64(value.Int64)
			}
		case imagemetadata.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				im.MimeType = new(string)
				*im.MimeType = value.String
			}
		case imagemetadata.FieldFileHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_hash", values[i])
			} else if value.Valid {
				im.FileHash = new(string)
				*im.FileHash = value.String
			}
		case imagemetadata.FieldWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				im.Width = new(uint)
				*im.Width = uint(value.Int64)
			}
		case imagemetadata.FieldHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				im.Height = new(uint)
				*im.Height = uint(value.Int64)
			}
		case imagemetadata.FieldExifData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exif_data", values[i])
			} else if value.Valid {
				im.ExifData = new(string)
				*im.ExifData = value.String
			}
		case imagemetadata.FieldXmpData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field xmp_data", values[i])
			} else if value.Valid {
				im.XmpData = new(string)
				*im.XmpData = value.String
			}
		case imagemetadata.FieldIptcData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field iptc_data", values[i])
			} else if value.Valid {
				im.IptcData = new(string)
				*im.IptcData = value.String
			}
		case imagemetadata.FieldAiAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_analysis", values[i])
			} else if value.Valid {
				im.AiAnalysis = new(string)
				*im.AiAnalysis = value.String
			}
		case imagemetadata.FieldKeywords:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keywords", values[i])
			} else if value.Valid {
				im.Keywords = new(string)
				*im.Keywords = value.String
			}
		case imagemetadata.FieldCameraMake:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field camera_make", values[i])
			} else if value.Valid {
				im.CameraMake = new(string)
				*im.CameraMake = value.String
			}
		case imagemetadata.FieldCameraModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field camera_model", values[i])
			} else if value.Valid {
				im.CameraModel = new(string)
				*im.CameraModel = value.String
			}
		case imagemetadata.FieldLensInfo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lens_info", values[i])
			} else if value.Valid {
				im.LensInfo = new(string)
				*im.LensInfo = value.String
			}
		case imagemetadata.FieldSoftware:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field software", values[i])
			} else if value.Valid {
				im.Software = new(string)
				*im.Software = value.String
			}
		case imagemetadata.FieldDateTaken:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_taken", values[i])
			} else if value.Valid {
				im.DateTaken = new(time.Time)
				*im.DateTaken = value.Time
			}
		case imagemetadata.FieldIso:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iso", values[i])
			} else if value.Valid {
				im.Iso = new(int)
				*im.Iso = int(value.Int64)
			}
		case imagemetadata.FieldAperture:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field aperture", values[i])
			} else if value.Valid {
				im.Aperture = new(float64)
				*im.Aperture = value.Float64
			}
		case imagemetadata.FieldShutterSpeed:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field shutter_speed", values[i])
			} else if value.Valid {
				im.ShutterSpeed = new(float64)
				*im.ShutterSpeed = value.Float64
			}
		case imagemetadata.FieldFocalLength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field focal_length", values[i])
			} else if value.Valid {
				im.FocalLength = new(float64)
				*im.FocalLength = value.Float64
			}
		case imagemetadata.FieldGpsLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gps_latitude", values[i])
			} else if value.Valid {
				im.GpsLatitude = new(float64)
				*im.GpsLatitude = value.Float64
			}
		case imagemetadata.FieldGpsLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gps_longitude", values[i])
			} else if value.Valid {
				im.GpsLongitude = new(float64)
				*im.GpsLongitude = value.Float64
			}
		case imagemetadata.FieldGpsAltitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gps_altitude", values[i])
			} else if value.Valid {
				im.GpsAltitude = new(float64)
				*im.GpsAltitude = value.Float64
			}
		case imagemetadata.FieldLocationName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_name", values[i])
			} else if value.Valid {
				im.LocationName = new(string)
				*im.LocationName = value.String
			}
		case imagemetadata.FieldOrientation:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field orientation", values[i])
			} else if value.Valid {
				im.Orientation = new(int)
				*im.Orientation = int(value.Int64)
			}
		case imagemetadata.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				im.Description = new(string)
				*im.Description = value.String
			}
		case imagemetadata.FieldArtist:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artist", values[i])
			} else if value.Valid {
				im.Artist = new(string)
				*im.Artist = value.String
			}
		case imagemetadata.FieldCopyright:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field copyright", values[i])
			} else if value.Valid {
				im.Copyright = new(string)
				*im.Copyright = value.String
			}
		case imagemetadata.FieldWhiteBalance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field white_balance", values[i])
			} else if value.Valid {
				im.WhiteBalance = new(string)
				*im.WhiteBalance = value.String
			}
		case imagemetadata.FieldFlash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flash", values[i])
			} else if value.Valid {
				im.Flash = new(string)
				*im.Flash = value.String
			}
		case imagemetadata.FieldMeteringMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metering_mode", values[i])
			} else if value.Valid {
				im.MeteringMode = new(string)
				*im.MeteringMode = value.String
			}
		case imagemetadata.FieldExposureMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exposure_mode", values[i])
			} else if value.Valid {
				im.ExposureMode = new(string)
				*im.ExposureMode = value.String
			}
		case imagemetadata.FieldColorSpace:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color_space", values[i])
			} else if value.Valid {
				im.ColorSpace = new(string)
				*im.ColorSpace = value.String
			}
		case imagemetadata.FieldSceneCaptureType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scene_capture_type", values[i])
			} else if value.Valid {
				im.SceneCaptureType = new(string)
				*im.SceneCaptureType = value.String
			}
		case imagemetadata.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				im.ProcessingStatus = value.String
			}
		case imagemetadata.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				im.ErrorMessage = new(string)
				*im.ErrorMessage = value.String
			}
		case imagemetadata.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				im.UserID = new(string)
				*im.UserID = value.String
			}
		case imagemetadata.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				im.BatchID = new(string)
				*im.BatchID = value.String
			}
		default:
			im.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImageMetadata.
// This includes values selected through modifiers, order, etc.
func (im *ImageMetadata) Value(name string) (ent.Value, error) {
	return im.selectValues.Get(name)
}

// Update returns a builder for updating this ImageMetadata.
// Note that you need to call ImageMetadata.Unwrap() before calling this method if this ImageMetadata
// was returned from a transaction, and the transaction was committed or rolled back.
func (im *ImageMetadata) Update() *ImageMetadataUpdateOne {
	return NewImageMetadataClient(im.config).UpdateOne(im)
}

// Unwrap unwraps the ImageMetadata entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (im *ImageMetadata) Unwrap() *ImageMetadata {
	_tx, ok := im.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImageMetadata is not a transactional entity")
	}
	im.config.driver = _tx.drv
	return im
}

// String implements the fmt.Stringer.
func (im *ImageMetadata) String() string {
	var builder strings.Builder
	builder.WriteString("ImageMetadata(")
	builder.WriteString(fmt.Sprintf("id=%v, ", im.ID))
	builder.WriteString("created_at=")
	builder.WriteString(im.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(im.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(im.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", im.FileSizeBytes))
	builder.WriteString(", ")
	if v := im.MimeType; v != nil {
		builder.WriteString("mime_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.FileHash; v != nil {
		builder.WriteString("file_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.Width; v != nil {
		builder.WriteString("width=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.Height; v != nil {
		builder.WriteString("height=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.ExifData; v != nil {
		builder.WriteString("exif_data=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.XmpData; v != nil {
		builder.WriteString("xmp_data=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.IptcData; v != nil {
		builder.WriteString("iptc_data=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.AiAnalysis; v != nil {
		builder.WriteString("ai_analysis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.Keywords; v != nil {
		builder.WriteString("keywords=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.CameraMake; v != nil {
		builder.WriteString("camera_make=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.CameraModel; v != nil {
		builder.WriteString("camera_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.LensInfo; v != nil {
		builder.WriteString("lens_info=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.Software; v != nil {
		builder.WriteString("software=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.DateTaken; v != nil {
		builder.WriteString("date_taken=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := im.Iso; v != nil {
		builder.WriteString("iso=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.Aperture; v != nil {
		builder.WriteString("aperture=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.ShutterSpeed; v != nil {
		builder.WriteString("shutter_speed=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.FocalLength; v != nil {
		builder.WriteString("focal_length=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.GpsLatitude; v != nil {
		builder.WriteString("gps_latitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.GpsLongitude; v != nil {
		builder.WriteString("gps_longitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.GpsAltitude; v != nil {
		builder.WriteString("gps_altitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.LocationName; v != nil {
		builder.WriteString("location_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.Orientation; v != nil {
		builder.WriteString("orientation=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := im.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.Artist; v != nil {
		builder.WriteString("artist=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.Copyright; v != nil {
		builder.WriteString("copyright=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.WhiteBalance; v != nil {
		builder.WriteString("white_balance=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.Flash; v != nil {
		builder.WriteString("flash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.MeteringMode; v != nil {
		builder.WriteString("metering_mode=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.ExposureMode; v != nil {
		builder.WriteString("exposure_mode=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.ColorSpace; v != nil {
		builder.WriteString("color_space=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.SceneCaptureType; v != nil {
		builder.WriteString("scene_capture_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(im.ProcessingStatus)
	builder.WriteString(", ")
	if v := im.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := im.BatchID; v != nil {
		builder.WriteString("batch_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ImageMetadataSlice is a parsable slice of ImageMetadata.
type ImageMetadataSlice []*ImageMetadata

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ImageMetadataColumns holds the columns for the "image_metadata" table.
	ImageMetadataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "file_name", Type: field.TypeString, Size: 255},
		{Name: "file_size_bytes", Type: field.TypeUint64},
		{Name: "mime_type", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "file_hash", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "width", Type: field.TypeUint, Nullable: true},
		{Name: "height", Type: field.TypeUint, Nullable: true},
		{Name: "exif_data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "xmp_data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "iptc_data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ai_analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "keywords", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "camera_make", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "camera_model", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "lens_info", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "software", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "date_taken", Type: field.TypeTime, Nullable: true},
		{Name: "iso", Type: field.TypeInt, Nullable: true},
		{Name: "aperture", Type: field.TypeFloat64, Nullable: true},
		{Name: "shutter_speed", Type: field.TypeFloat64, Nullable: true},
		{Name: "focal_length", Type: field.TypeFloat64, Nullable: true},
		{Name: "gps_latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "gps_longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "gps_altitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "location_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "orientation", Type: field.TypeInt, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "artist", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "copyright", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "white_balance", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "flash", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "metering_mode", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "exposure_mode", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "color_space", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "scene_capture_type", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "processing_status", Type: field.TypeString, Size: 20, Default: "Pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "user_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "batch_id", Type: field.TypeString, Nullable: true, Size: 36},
	}
	// ImageMetadataTable holds the schema information for the "image_metadata" table.
	ImageMetadataTable = &schema.Table{
		Name:       "image_metadata",
		Comment:    "图片元数据表",
		Columns:    ImageMetadataColumns,
		PrimaryKey: []*schema.Column{ImageMetadataColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "imagemetadata_file_hash",
				Unique:  true,
				Columns: []*schema.Column{ImageMetadataColumns[6]},
			},
			{
				Name:    "imagemetadata_batch_id",
				Unique:  false,
				Columns: []*schema.Column{ImageMetadataColumns[40]},
			},
			{
				Name:    "imagemetadata_processing_status",
				Unique:  false,
				Columns: []*schema.Column{ImageMetadataColumns[37]},
			},
			{
				Name:    "imagemetadata_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImageMetadataColumns[39], ImageMetadataColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ImageMetadataTable,
	}
)

func init() {
}

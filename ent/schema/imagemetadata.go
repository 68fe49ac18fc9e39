package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ImageMetadata holds the schema definition for the ImageMetadata entity.
type ImageMetadata struct {
	ent.Schema
}

// Annotations of the ImageMetadata.
func (ImageMetadata) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("图片元数据表"),
	}
}

// Fields of the ImageMetadata.
func (ImageMetadata) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("file_name").
			MaxLen(255).
			NotEmpty(),
		field.Uint64("file_size_bytes"),
		field.String("mime_type").
			MaxLen(100).
			Optional().
			Nillable(),
		// MD5 内容指纹，32位十六进制
		field.String("file_hash").
			MaxLen(32).
			Optional().
			Nillable(),
		field.Uint("width").
			Optional().
			Nillable(),
		field.Uint("height").
			Optional().
			Nillable(),
		field.Text("exif_data").
			Optional().
			Nillable(),
		field.Text("xmp_data").
			Optional().
			Nillable(),
		field.Text("iptc_data").
			Optional().
			Nillable(),
		field.Text("ai_analysis").
			Optional().
			Nillable(),
		field.Text("keywords").
			Optional().
			Nillable(),
		field.String("camera_make").
			MaxLen(100).
			Optional().
			Nillable(),
		field.String("camera_model").
			MaxLen(100).
			Optional().
			Nillable(),
		field.String("lens_info").
			MaxLen(200).
			Optional().
			Nillable(),
		field.String("software").
			MaxLen(200).
			Optional().
			Nillable(),
		field.Time("date_taken").
			Optional().
			Nillable(),
		field.Int("iso").
			Optional().
			Nillable(),
		field.Float("aperture").
			Optional().
			Nillable(),
		field.Float("shutter_speed").
			Optional().
			Nillable(),
		field.Float("focal_length").
			Optional().
			Nillable(),
		field.Float("gps_latitude").
			Optional().
			Nillable(),
		field.Float("gps_longitude").
			Optional().
			Nillable(),
		field.Float("gps_altitude").
			Optional().
			Nillable(),
		field.String("location_name").
			MaxLen(255).
			Optional().
			Nillable(),
		field.Int("orientation").
			Optional().
			Nillable(),
		field.Text("description").
			Optional().
			Nillable(),
		field.String("artist").
			MaxLen(200).
			Optional().
			Nillable(),
		field.String("copyright").
			MaxLen(255).
			Optional().
			Nillable(),
		field.String("white_balance").
			MaxLen(50).
			Optional().
			Nillable(),
		field.String("flash").
			MaxLen(100).
			Optional().
			Nillable(),
		field.String("metering_mode").
			MaxLen(50).
			Optional().
			Nillable(),
		field.String("exposure_mode").
			MaxLen(50).
			Optional().
			Nillable(),
		field.String("color_space").
			MaxLen(50).
			Optional().
			Nillable(),
		field.String("scene_capture_type").
			MaxLen(50).
			Optional().
			Nillable(),
		field.String("processing_status").
			MaxLen(20).
			Default("Pending"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("user_id").
			MaxLen(100).
			Optional().
			Nillable(),
		field.String("batch_id").
			MaxLen(36).
			Optional().
			Nillable(),
	}
}

// Indexes of the ImageMetadata.
func (ImageMetadata) Indexes() []ent.Index {
	return []ent.Index{
		// SQL 唯一索引不约束 NULL，因此只在指纹存在时唯一
		index.Fields("file_hash").
			Unique(),
		index.Fields("batch_id"),
		index.Fields("processing_status"),
		index.Fields("user_id", "created_at"),
	}
}

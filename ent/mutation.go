// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/picmeta-app/ent/imagemetadata"
	"github.com/anzhiyu-c/picmeta-app/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeImageMetadata = "ImageMetadata"
)

// ImageMetadataMutation represents an operation that mutates the ImageMetadata nodes in the graph.
type ImageMetadataMutation struct {
	config
	op                 Op
	typ                string
	id                 *uint
	created_at         *time.Time
	updated_at         *time.Time
	file_name          *string
	file_size_bytes    *uint64
	addfile_size_bytes *int64
	mime_type          *string
	file_hash          *string
	width              *uint
	addwidth           *int
	height             *uint
	addheight          *int
	exif_data          *string
	xmp_data           *string
	iptc_data          *string
	ai_analysis        *string
	keywords           *string
	camera_make        *string
	camera_model       *string
	lens_info          *string
	software           *string
	date_taken         *time.Time
	iso                *int
	addiso             *int
	aperture           *float64
	addaperture        *float64
	shutter_speed      *float64
	addshutter_speed   *float64
	focal_length       *float64
	addfocal_length    *float64
	gps_latitude       *float64
	addgps_latitude    *float64
	gps_longitude      *float64
	addgps_longitude   *float64
	gps_altitude       *float64
	addgps_altitude    *float64
	location_name      *string
	orientation        *int
	addorientation     *int
	description        *string
	artist             *string
	copyright          *string
	white_balance      *string
	flash              *string
	metering_mode      *string
	exposure_mode      *string
	color_space        *string
	scene_capture_type *string
	processing_status  *string
	error_message      *string
	user_id            *string
	batch_id           *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ImageMetadata, error)
	predicates         []predicate.ImageMetadata
}

var _ ent.Mutation = (*ImageMetadataMutation)(nil)

// imagemetadataOption allows management of the mutation configuration using functional options.
type imagemetadataOption func(*ImageMetadataMutation)

// newImageMetadataMutation creates new mutation for the ImageMetadata entity.
func newImageMetadataMutation(c config, op Op, opts ...imagemetadataOption) *ImageMetadataMutation {
	m := &ImageMetadataMutation{
		config:        c,
		op:            op,
		typ:           TypeImageMetadata,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImageMetadataID sets the ID field of the mutation.
func withImageMetadataID(id uint) imagemetadataOption {
	return func(m *ImageMetadataMutation) {
		var (
			err   error
			once  sync.Once
			value *ImageMetadata
		)
		m.oldValue = func(ctx context.Context) (*ImageMetadata, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImageMetadata.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImageMetadata sets the old ImageMetadata of the mutation.
func withImageMetadata(node *ImageMetadata) imagemetadataOption {
	return func(m *ImageMetadataMutation) {
		m.oldValue = func(context.Context) (*ImageMetadata, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImageMetadataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImageMetadataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImageMetadata entities.
func (m *ImageMetadataMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImageMetadataMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImageMetadataMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImageMetadata.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ImageMetadataMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImageMetadataMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImageMetadataMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ImageMetadataMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ImageMetadataMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ImageMetadataMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFileName sets the "file_name" field.
func (m *ImageMetadataMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ImageMetadataMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ImageMetadataMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *ImageMetadataMutation) SetFileSizeBytes(u uint64) {
	m.file_size_bytes = &u
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *ImageMetadataMutation) FileSizeBytes() (r uint64, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldFileSizeBytes(ctx context.Context) (v uint64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds u to the "file_size_bytes" field.
func (m *ImageMetadataMutation) AddFileSizeBytes(u int64) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += u
	} else {
		m.addfile_size_bytes = &u
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *ImageMetadataMutation) AddedFileSizeBytes() (r int64, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *ImageMetadataMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
}

// SetMimeType sets the "mime_type" field.
func (m *ImageMetadataMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *ImageMetadataMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *ImageMetadataMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[imagemetadata.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *ImageMetadataMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *ImageMetadataMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, imagemetadata.FieldMimeType)
}

// SetFileHash sets the "file_hash" field.
func (m *ImageMetadataMutation) SetFileHash(s string) {
	m.file_hash = &s
}

// FileHash returns the value of the "file_hash" field in the mutation.
func (m *ImageMetadataMutation) FileHash() (r string, exists bool) {
	v := m.file_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHash returns the old "file_hash" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldFileHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHash: %w", err)
	}
	return oldValue.FileHash, nil
}

// ClearFileHash clears the value of the "file_hash" field.
func (m *ImageMetadataMutation) ClearFileHash() {
	m.file_hash = nil
	m.clearedFields[imagemetadata.FieldFileHash] = struct{}{}
}

// FileHashCleared returns if the "file_hash" field was cleared in this mutation.
func (m *ImageMetadataMutation) FileHashCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldFileHash]
	return ok
}

// ResetFileHash resets all changes to the "file_hash" field.
func (m *ImageMetadataMutation) ResetFileHash() {
	m.file_hash = nil
	delete(m.clearedFields, imagemetadata.FieldFileHash)
}

// SetWidth sets the "width" field.
func (m *ImageMetadataMutation) SetWidth(u uint) {
	m.width = &u
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *ImageMetadataMutation) Width() (r uint, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldWidth(ctx context.Context) (v *uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds u to the "width" field.
func (m *ImageMetadataMutation) AddWidth(u int) {
	if m.addwidth != nil {
		*m.addwidth += u
	} else {
		m.addwidth = &u
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *ImageMetadataMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ClearWidth clears the value of the "width" field.
func (m *ImageMetadataMutation) ClearWidth() {
	m.width = nil
	m.addwidth = nil
	m.clearedFields[imagemetadata.FieldWidth] = struct{}{}
}

// WidthCleared returns if the "width" field was cleared in this mutation.
func (m *ImageMetadataMutation) WidthCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldWidth]
	return ok
}

// ResetWidth resets all changes to the "width" field.
func (m *ImageMetadataMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
	delete(m.clearedFields, imagemetadata.FieldWidth)
}

// SetHeight sets the "height" field.
func (m *ImageMetadataMutation) SetHeight(u uint) {
	m.height = &u
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *ImageMetadataMutation) Height() (r uint, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldHeight(ctx context.Context) (v *uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds u to the "height" field.
func (m *ImageMetadataMutation) AddHeight(u int) {
	if m.addheight != nil {
		*m.addheight += u
	} else {
		m.addheight = &u
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *ImageMetadataMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeight clears the value of the "height" field.
func (m *ImageMetadataMutation) ClearHeight() {
	m.height = nil
	m.addheight = nil
	m.clearedFields[imagemetadata.FieldHeight] = struct{}{}
}

// HeightCleared returns if the "height" field was cleared in this mutation.
func (m *ImageMetadataMutation) HeightCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldHeight]
	return ok
}

// ResetHeight resets all changes to the "height" field.
func (m *ImageMetadataMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
	delete(m.clearedFields, imagemetadata.FieldHeight)
}

// SetExifData sets the "exif_data" field.
func (m *ImageMetadataMutation) SetExifData(s string) {
	m.exif_data = &s
}

// ExifData returns the value of the "exif_data" field in the mutation.
func (m *ImageMetadataMutation) ExifData() (r string, exists bool) {
	v := m.exif_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExifData returns the old "exif_data" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldExifData(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExifData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExifData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExifData: %w", err)
	}
	return oldValue.ExifData, nil
}

// ClearExifData clears the value of the "exif_data" field.
func (m *ImageMetadataMutation) ClearExifData() {
	m.exif_data = nil
	m.clearedFields[imagemetadata.FieldExifData] = struct{}{}
}

// ExifDataCleared returns if the "exif_data" field was cleared in this mutation.
func (m *ImageMetadataMutation) ExifDataCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldExifData]
	return ok
}

// ResetExifData resets all changes to the "exif_data" field.
func (m *ImageMetadataMutation) ResetExifData() {
	m.exif_data = nil
	delete(m.clearedFields, imagemetadata.FieldExifData)
}

// SetXmpData sets the "xmp_data" field.
func (m *ImageMetadataMutation) SetXmpData(s string) {
	m.xmp_data = &s
}

// XmpData returns the value of the "xmp_data" field in the mutation.
func (m *ImageMetadataMutation) XmpData() (r string, exists bool) {
	v := m.xmp_data
	if v == nil {
		return
	}
	return *v, true
}

// OldXmpData returns the old "xmp_data" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldXmpData(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXmpData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXmpData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXmpData: %w", err)
	}
	return oldValue.XmpData, nil
}

// ClearXmpData clears the value of the "xmp_data" field.
func (m *ImageMetadataMutation) ClearXmpData() {
	m.xmp_data = nil
	m.clearedFields[imagemetadata.FieldXmpData] = struct{}{}
}

// XmpDataCleared returns if the "xmp_data" field was cleared in this mutation.
func (m *ImageMetadataMutation) XmpDataCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldXmpData]
	return ok
}

// ResetXmpData resets all changes to the "xmp_data" field.
func (m *ImageMetadataMutation) ResetXmpData() {
	m.xmp_data = nil
	delete(m.clearedFields, imagemetadata.FieldXmpData)
}

// SetIptcData sets the "iptc_data" field.
func (m *ImageMetadataMutation) SetIptcData(s string) {
	m.iptc_data = &s
}

// IptcData returns the value of the "iptc_data" field in the mutation.
func (m *ImageMetadataMutation) IptcData() (r string, exists bool) {
	v := m.iptc_data
	if v == nil {
		return
	}
	return *v, true
}

// OldIptcData returns the old "iptc_data" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldIptcData(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIptcData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIptcData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIptcData: %w", err)
	}
	return oldValue.IptcData, nil
}

// ClearIptcData clears the value of the "iptc_data" field.
func (m *ImageMetadataMutation) ClearIptcData() {
	m.iptc_data = nil
	m.clearedFields[imagemetadata.FieldIptcData] = struct{}{}
}

// IptcDataCleared returns if the "iptc_data" field was cleared in this mutation.
func (m *ImageMetadataMutation) IptcDataCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldIptcData]
	return ok
}

// ResetIptcData resets all changes to the "iptc_data" field.
func (m *ImageMetadataMutation) ResetIptcData() {
	m.iptc_data = nil
	delete(m.clearedFields, imagemetadata.FieldIptcData)
}

// SetAiAnalysis sets the "ai_analysis" field.
func (m *ImageMetadataMutation) SetAiAnalysis(s string) {
	m.ai_analysis = &s
}

// AiAnalysis returns the value of the "ai_analysis" field in the mutation.
func (m *ImageMetadataMutation) AiAnalysis() (r string, exists bool) {
	v := m.ai_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAiAnalysis returns the old "ai_analysis" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldAiAnalysis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiAnalysis: %w", err)
	}
	return oldValue.AiAnalysis, nil
}

// ClearAiAnalysis clears the value of the "ai_analysis" field.
func (m *ImageMetadataMutation) ClearAiAnalysis() {
	m.ai_analysis = nil
	m.clearedFields[imagemetadata.FieldAiAnalysis] = struct{}{}
}

// AiAnalysisCleared returns if the "ai_analysis" field was cleared in this mutation.
func (m *ImageMetadataMutation) AiAnalysisCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldAiAnalysis]
	return ok
}

// ResetAiAnalysis resets all changes to the "ai_analysis" field.
func (m *ImageMetadataMutation) ResetAiAnalysis() {
	m.ai_analysis = nil
	delete(m.clearedFields, imagemetadata.FieldAiAnalysis)
}

// SetKeywords sets the "keywords" field.
func (m *ImageMetadataMutation) SetKeywords(s string) {
	m.keywords = &s
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *ImageMetadataMutation) Keywords() (r string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldKeywords(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// ClearKeywords clears the value of the "keywords" field.
func (m *ImageMetadataMutation) ClearKeywords() {
	m.keywords = nil
	m.clearedFields[imagemetadata.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *ImageMetadataMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *ImageMetadataMutation) ResetKeywords() {
	m.keywords = nil
	delete(m.clearedFields, imagemetadata.FieldKeywords)
}

// SetCameraMake sets the "camera_make" field.
func (m *ImageMetadataMutation) SetCameraMake(s string) {
	m.camera_make = &s
}

// CameraMake returns the value of the "camera_make" field in the mutation.
func (m *ImageMetadataMutation) CameraMake() (r string, exists bool) {
	v := m.camera_make
	if v == nil {
		return
	}
	return *v, true
}

// OldCameraMake returns the old "camera_make" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldCameraMake(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCameraMake is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCameraMake requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCameraMake: %w", err)
	}
	return oldValue.CameraMake, nil
}

// ClearCameraMake clears the value of the "camera_make" field.
func (m *ImageMetadataMutation) ClearCameraMake() {
	m.camera_make = nil
	m.clearedFields[imagemetadata.FieldCameraMake] = struct{}{}
}

// CameraMakeCleared returns if the "camera_make" field was cleared in this mutation.
func (m *ImageMetadataMutation) CameraMakeCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldCameraMake]
	return ok
}

// ResetCameraMake resets all changes to the "camera_make" field.
func (m *ImageMetadataMutation) ResetCameraMake() {
	m.camera_make = nil
	delete(m.clearedFields, imagemetadata.FieldCameraMake)
}

// SetCameraModel sets the "camera_model" field.
func (m *ImageMetadataMutation) SetCameraModel(s string) {
	m.camera_model = &s
}

// CameraModel returns the value of the "camera_model" field in the mutation.
func (m *ImageMetadataMutation) CameraModel() (r string, exists bool) {
	v := m.camera_model
	if v == nil {
		return
	}
	return *v, true
}

// OldCameraModel returns the old "camera_model" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldCameraModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCameraModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCameraModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCameraModel: %w", err)
	}
	return oldValue.CameraModel, nil
}

// ClearCameraModel clears the value of the "camera_model" field.
func (m *ImageMetadataMutation) ClearCameraModel() {
	m.camera_model = nil
	m.clearedFields[imagemetadata.FieldCameraModel] = struct{}{}
}

// CameraModelCleared returns if the "camera_model" field was cleared in this mutation.
func (m *ImageMetadataMutation) CameraModelCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldCameraModel]
	return ok
}

// ResetCameraModel resets all changes to the "camera_model" field.
func (m *ImageMetadataMutation) ResetCameraModel() {
	m.camera_model = nil
	delete(m.clearedFields, imagemetadata.FieldCameraModel)
}

// SetLensInfo sets the "lens_info" field.
func (m *ImageMetadataMutation) SetLensInfo(s string) {
	m.lens_info = &s
}

// LensInfo returns the value of the "lens_info" field in the mutation.
func (m *ImageMetadataMutation) LensInfo() (r string, exists bool) {
	v := m.lens_info
	if v == nil {
		return
	}
	return *v, true
}

// OldLensInfo returns the old "lens_info" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldLensInfo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLensInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLensInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLensInfo: %w", err)
	}
	return oldValue.LensInfo, nil
}

// ClearLensInfo clears the value of the "lens_info" field.
func (m *ImageMetadataMutation) ClearLensInfo() {
	m.lens_info = nil
	m.clearedFields[imagemetadata.FieldLensInfo] = struct{}{}
}

// LensInfoCleared returns if the "lens_info" field was cleared in this mutation.
func (m *ImageMetadataMutation) LensInfoCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldLensInfo]
	return ok
}

// ResetLensInfo resets all changes to the "lens_info" field.
func (m *ImageMetadataMutation) ResetLensInfo() {
	m.lens_info = nil
	delete(m.clearedFields, imagemetadata.FieldLensInfo)
}

// SetSoftware sets the "software" field.
func (m *ImageMetadataMutation) SetSoftware(s string) {
	m.software = &s
}

// Software returns the value of the "software" field in the mutation.
func (m *ImageMetadataMutation) Software() (r string, exists bool) {
	v := m.software
	if v == nil {
		return
	}
	return *v, true
}

// OldSoftware returns the old "software" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldSoftware(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoftware is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoftware requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoftware: %w", err)
	}
	return oldValue.Software, nil
}

// ClearSoftware clears the value of the "software" field.
func (m *ImageMetadataMutation) ClearSoftware() {
	m.software = nil
	m.clearedFields[imagemetadata.FieldSoftware] = struct{}{}
}

// SoftwareCleared returns if the "software" field was cleared in this mutation.
func (m *ImageMetadataMutation) SoftwareCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldSoftware]
	return ok
}

// ResetSoftware resets all changes to the "software" field.
func (m *ImageMetadataMutation) ResetSoftware() {
	m.software = nil
	delete(m.clearedFields, imagemetadata.FieldSoftware)
}

// SetDateTaken sets the "date_taken" field.
func (m *ImageMetadataMutation) SetDateTaken(t time.Time) {
	m.date_taken = &t
}

// DateTaken returns the value of the "date_taken" field in the mutation.
func (m *ImageMetadataMutation) DateTaken() (r time.Time, exists bool) {
	v := m.date_taken
	if v == nil {
		return
	}
	return *v, true
}

// OldDateTaken returns the old "date_taken" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldDateTaken(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateTaken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateTaken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateTaken: %w", err)
	}
	return oldValue.DateTaken, nil
}

// ClearDateTaken clears the value of the "date_taken" field.
func (m *ImageMetadataMutation) ClearDateTaken() {
	m.date_taken = nil
	m.clearedFields[imagemetadata.FieldDateTaken] = struct{}{}
}

// DateTakenCleared returns if the "date_taken" field was cleared in this mutation.
func (m *ImageMetadataMutation) DateTakenCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldDateTaken]
	return ok
}

// ResetDateTaken resets all changes to the "date_taken" field.
func (m *ImageMetadataMutation) ResetDateTaken() {
	m.date_taken = nil
	delete(m.clearedFields, imagemetadata.FieldDateTaken)
}

// SetIso sets the "iso" field.
func (m *ImageMetadataMutation) SetIso(i int) {
	m.iso = &i
	m.addiso = nil
}

// Iso returns the value of the "iso" field in the mutation.
func (m *ImageMetadataMutation) Iso() (r int, exists bool) {
	v := m.iso
	if v == nil {
		return
	}
	return *v, true
}

// OldIso returns the old "iso" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldIso(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIso is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIso requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIso: %w", err)
	}
	return oldValue.Iso, nil
}

// AddIso adds i to the "iso" field.
func (m *ImageMetadataMutation) AddIso(i int) {
	if m.addiso != nil {
		*m.addiso += i
	} else {
		m.addiso = &i
	}
}

// AddedIso returns the value that was added to the "iso" field in this mutation.
func (m *ImageMetadataMutation) AddedIso() (r int, exists bool) {
	v := m.addiso
	if v == nil {
		return
	}
	return *v, true
}

// ClearIso clears the value of the "iso" field.
func (m *ImageMetadataMutation) ClearIso() {
	m.iso = nil
	m.addiso = nil
	m.clearedFields[imagemetadata.FieldIso] = struct{}{}
}

// IsoCleared returns if the "iso" field was cleared in this mutation.
func (m *ImageMetadataMutation) IsoCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldIso]
	return ok
}

// ResetIso resets all changes to the "iso" field.
func (m *ImageMetadataMutation) ResetIso() {
	m.iso = nil
	m.addiso = nil
	delete(m.clearedFields, imagemetadata.FieldIso)
}

// SetAperture sets the "aperture" field.
func (m *ImageMetadataMutation) SetAperture(f float64) {
	m.aperture = &f
	m.addaperture = nil
}

// Aperture returns the value of the "aperture" field in the mutation.
func (m *ImageMetadataMutation) Aperture() (r float64, exists bool) {
	v := m.aperture
	if v == nil {
		return
	}
	return *v, true
}

// OldAperture returns the old "aperture" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldAperture(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAperture is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAperture requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAperture: %w", err)
	}
	return oldValue.Aperture, nil
}

// AddAperture adds f to the "aperture" field.
func (m *ImageMetadataMutation) AddAperture(f float64) {
	if m.addaperture != nil {
		*m.addaperture += f
	} else {
		m.addaperture = &f
	}
}

// AddedAperture returns the value that was added to the "aperture" field in this mutation.
func (m *ImageMetadataMutation) AddedAperture() (r float64, exists bool) {
	v := m.addaperture
	if v == nil {
		return
	}
	return *v, true
}

// ClearAperture clears the value of the "aperture" field.
func (m *ImageMetadataMutation) ClearAperture() {
	m.aperture = nil
	m.addaperture = nil
	m.clearedFields[imagemetadata.FieldAperture] = struct{}{}
}

// ApertureCleared returns if the "aperture" field was cleared in this mutation.
func (m *ImageMetadataMutation) ApertureCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldAperture]
	return ok
}

// ResetAperture resets all changes to the "aperture" field.
func (m *ImageMetadataMutation) ResetAperture() {
	m.aperture = nil
	m.addaperture = nil
	delete(m.clearedFields, imagemetadata.FieldAperture)
}

// SetShutterSpeed sets the "shutter_speed" field.
func (m *ImageMetadataMutation) SetShutterSpeed(f float64) {
	m.shutter_speed = &f
	m.addshutter_speed = nil
}

// ShutterSpeed returns the value of the "shutter_speed" field in the mutation.
func (m *ImageMetadataMutation) ShutterSpeed() (r float64, exists bool) {
	v := m.shutter_speed
	if v == nil {
		return
	}
	return *v, true
}

// OldShutterSpeed returns the old "shutter_speed" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldShutterSpeed(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShutterSpeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShutterSpeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShutterSpeed: %w", err)
	}
	return oldValue.ShutterSpeed, nil
}

// AddShutterSpeed adds f to the "shutter_speed" field.
func (m *ImageMetadataMutation) AddShutterSpeed(f float64) {
	if m.addshutter_speed != nil {
		*m.addshutter_speed += f
	} else {
		m.addshutter_speed = &f
	}
}

// AddedShutterSpeed returns the value that was added to the "shutter_speed" field in this mutation.
func (m *ImageMetadataMutation) AddedShutterSpeed() (r float64, exists bool) {
	v := m.addshutter_speed
	if v == nil {
		return
	}
	return *v, true
}

// ClearShutterSpeed clears the value of the "shutter_speed" field.
func (m *ImageMetadataMutation) ClearShutterSpeed() {
	m.shutter_speed = nil
	m.addshutter_speed = nil
	m.clearedFields[imagemetadata.FieldShutterSpeed] = struct{}{}
}

// ShutterSpeedCleared returns if the "shutter_speed" field was cleared in this mutation.
func (m *ImageMetadataMutation) ShutterSpeedCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldShutterSpeed]
	return ok
}

// ResetShutterSpeed resets all changes to the "shutter_speed" field.
func (m *ImageMetadataMutation) ResetShutterSpeed() {
	m.shutter_speed = nil
	m.addshutter_speed = nil
	delete(m.clearedFields, imagemetadata.FieldShutterSpeed)
}

// SetFocalLength sets the "focal_length" field.
func (m *ImageMetadataMutation) SetFocalLength(f float64) {
	m.focal_length = &f
	m.addfocal_length = nil
}

// FocalLength returns the value of the "focal_length" field in the mutation.
func (m *ImageMetadataMutation) FocalLength() (r float64, exists bool) {
	v := m.focal_length
	if v == nil {
		return
	}
	return *v, true
}

// OldFocalLength returns the old "focal_length" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldFocalLength(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocalLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocalLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocalLength: %w", err)
	}
	return oldValue.FocalLength, nil
}

// AddFocalLength adds f to the "focal_length" field.
func (m *ImageMetadataMutation) AddFocalLength(f float64) {
	if m.addfocal_length != nil {
		*m.addfocal_length += f
	} else {
		m.addfocal_length = &f
	}
}

// AddedFocalLength returns the value that was added to the "focal_length" field in this mutation.
func (m *ImageMetadataMutation) AddedFocalLength() (r float64, exists bool) {
	v := m.addfocal_length
	if v == nil {
		return
	}
	return *v, true
}

// ClearFocalLength clears the value of the "focal_length" field.
func (m *ImageMetadataMutation) ClearFocalLength() {
	m.focal_length = nil
	m.addfocal_length = nil
	m.clearedFields[imagemetadata.FieldFocalLength] = struct{}{}
}

// FocalLengthCleared returns if the "focal_length" field was cleared in this mutation.
func (m *ImageMetadataMutation) FocalLengthCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldFocalLength]
	return ok
}

// ResetFocalLength resets all changes to the "focal_length" field.
func (m *ImageMetadataMutation) ResetFocalLength() {
	m.focal_length = nil
	m.addfocal_length = nil
	delete(m.clearedFields, imagemetadata.FieldFocalLength)
}

// SetGpsLatitude sets the "gps_latitude" field.
func (m *ImageMetadataMutation) SetGpsLatitude(f float64) {
	m.gps_latitude = &f
	m.addgps_latitude = nil
}

// GpsLatitude returns the value of the "gps_latitude" field in the mutation.
func (m *ImageMetadataMutation) GpsLatitude() (r float64, exists bool) {
	v := m.gps_latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldGpsLatitude returns the old "gps_latitude" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldGpsLatitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpsLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpsLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpsLatitude: %w", err)
	}
	return oldValue.GpsLatitude, nil
}

// AddGpsLatitude adds f to the "gps_latitude" field.
func (m *ImageMetadataMutation) AddGpsLatitude(f float64) {
	if m.addgps_latitude != nil {
		*m.addgps_latitude += f
	} else {
		m.addgps_latitude = &f
	}
}

// AddedGpsLatitude returns the value that was added to the "gps_latitude" field in this mutation.
func (m *ImageMetadataMutation) AddedGpsLatitude() (r float64, exists bool) {
	v := m.addgps_latitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearGpsLatitude clears the value of the "gps_latitude" field.
func (m *ImageMetadataMutation) ClearGpsLatitude() {
	m.gps_latitude = nil
	m.addgps_latitude = nil
	m.clearedFields[imagemetadata.FieldGpsLatitude] = struct{}{}
}

// GpsLatitudeCleared returns if the "gps_latitude" field was cleared in this mutation.
func (m *ImageMetadataMutation) GpsLatitudeCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldGpsLatitude]
	return ok
}

// ResetGpsLatitude resets all changes to the "gps_latitude" field.
func (m *ImageMetadataMutation) ResetGpsLatitude() {
	m.gps_latitude = nil
	m.addgps_latitude = nil
	delete(m.clearedFields, imagemetadata.FieldGpsLatitude)
}

// SetGpsLongitude sets the "gps_longitude" field.
func (m *ImageMetadataMutation) SetGpsLongitude(f float64) {
	m.gps_longitude = &f
	m.addgps_longitude = nil
}

// GpsLongitude returns the value of the "gps_longitude" field in the mutation.
func (m *ImageMetadataMutation) GpsLongitude() (r float64, exists bool) {
	v := m.gps_longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldGpsLongitude returns the old "gps_longitude" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldGpsLongitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpsLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpsLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpsLongitude: %w", err)
	}
	return oldValue.GpsLongitude, nil
}

// AddGpsLongitude adds f to the "gps_longitude" field.
func (m *ImageMetadataMutation) AddGpsLongitude(f float64) {
	if m.addgps_longitude != nil {
		*m.addgps_longitude += f
	} else {
		m.addgps_longitude = &f
	}
}

// AddedGpsLongitude returns the value that was added to the "gps_longitude" field in this mutation.
func (m *ImageMetadataMutation) AddedGpsLongitude() (r float64, exists bool) {
	v := m.addgps_longitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearGpsLongitude clears the value of the "gps_longitude" field.
func (m *ImageMetadataMutation) ClearGpsLongitude() {
	m.gps_longitude = nil
	m.addgps_longitude = nil
	m.clearedFields[imagemetadata.FieldGpsLongitude] = struct{}{}
}

// GpsLongitudeCleared returns if the "gps_longitude" field was cleared in this mutation.
func (m *ImageMetadataMutation) GpsLongitudeCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldGpsLongitude]
	return ok
}

// ResetGpsLongitude resets all changes to the "gps_longitude" field.
func (m *ImageMetadataMutation) ResetGpsLongitude() {
	m.gps_longitude = nil
	m.addgps_longitude = nil
	delete(m.clearedFields, imagemetadata.FieldGpsLongitude)
}

// SetGpsAltitude sets the "gps_altitude" field.
func (m *ImageMetadataMutation) SetGpsAltitude(f float64) {
	m.gps_altitude = &f
	m.addgps_altitude = nil
}

// GpsAltitude returns the value of the "gps_altitude" field in the mutation.
func (m *ImageMetadataMutation) GpsAltitude() (r float64, exists bool) {
	v := m.gps_altitude
	if v == nil {
		return
	}
	return *v, true
}

// OldGpsAltitude returns the old "gps_altitude" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldGpsAltitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpsAltitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpsAltitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpsAltitude: %w", err)
	}
	return oldValue.GpsAltitude, nil
}

// AddGpsAltitude adds f to the "gps_altitude" field.
func (m *ImageMetadataMutation) AddGpsAltitude(f float64) {
	if m.addgps_altitude != nil {
		*m.addgps_altitude += f
	} else {
		m.addgps_altitude = &f
	}
}

// AddedGpsAltitude returns the value that was added to the "gps_altitude" field in this mutation.
func (m *ImageMetadataMutation) AddedGpsAltitude() (r float64, exists bool) {
	v := m.addgps_altitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearGpsAltitude clears the value of the "gps_altitude" field.
func (m *ImageMetadataMutation) ClearGpsAltitude() {
	m.gps_altitude = nil
	m.addgps_altitude = nil
	m.clearedFields[imagemetadata.FieldGpsAltitude] = struct{}{}
}

// GpsAltitudeCleared returns if the "gps_altitude" field was cleared in this mutation.
func (m *ImageMetadataMutation) GpsAltitudeCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldGpsAltitude]
	return ok
}

// ResetGpsAltitude resets all changes to the "gps_altitude" field.
func (m *ImageMetadataMutation) ResetGpsAltitude() {
	m.gps_altitude = nil
	m.addgps_altitude = nil
	delete(m.clearedFields, imagemetadata.FieldGpsAltitude)
}

// SetLocationName sets the "location_name" field.
func (m *ImageMetadataMutation) SetLocationName(s string) {
	m.location_name = &s
}

// LocationName returns the value of the "location_name" field in the mutation.
func (m *ImageMetadataMutation) LocationName() (r string, exists bool) {
	v := m.location_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationName returns the old "location_name" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldLocationName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationName: %w", err)
	}
	return oldValue.LocationName, nil
}

// ClearLocationName clears the value of the "location_name" field.
func (m *ImageMetadataMutation) ClearLocationName() {
	m.location_name = nil
	m.clearedFields[imagemetadata.FieldLocationName] = struct{}{}
}

// LocationNameCleared returns if the "location_name" field was cleared in this mutation.
func (m *ImageMetadataMutation) LocationNameCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldLocationName]
	return ok
}

// ResetLocationName resets all changes to the "location_name" field.
func (m *ImageMetadataMutation) ResetLocationName() {
	m.location_name = nil
	delete(m.clearedFields, imagemetadata.FieldLocationName)
}

// SetOrientation sets the "orientation" field.
func (m *ImageMetadataMutation) SetOrientation(i int) {
	m.orientation = &i
	m.addorientation = nil
}

// Orientation returns the value of the "orientation" field in the mutation.
func (m *ImageMetadataMutation) Orientation() (r int, exists bool) {
	v := m.orientation
	if v == nil {
		return
	}
	return *v, true
}

// OldOrientation returns the old "orientation" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldOrientation(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrientation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrientation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrientation: %w", err)
	}
	return oldValue.Orientation, nil
}

// AddOrientation adds i to the "orientation" field.
func (m *ImageMetadataMutation) AddOrientation(i int) {
	if m.addorientation != nil {
		*m.addorientation += i
	} else {
		m.addorientation = &i
	}
}

// AddedOrientation returns the value that was added to the "orientation" field in this mutation.
func (m *ImageMetadataMutation) AddedOrientation() (r int, exists bool) {
	v := m.addorientation
	if v == nil {
		return
	}
	return *v, true
}

// ClearOrientation clears the value of the "orientation" field.
func (m *ImageMetadataMutation) ClearOrientation() {
	m.orientation = nil
	m.addorientation = nil
	m.clearedFields[imagemetadata.FieldOrientation] = struct{}{}
}

// OrientationCleared returns if the "orientation" field was cleared in this mutation.
func (m *ImageMetadataMutation) OrientationCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldOrientation]
	return ok
}

// ResetOrientation resets all changes to the "orientation" field.
func (m *ImageMetadataMutation) ResetOrientation() {
	m.orientation = nil
	m.addorientation = nil
	delete(m.clearedFields, imagemetadata.FieldOrientation)
}

// SetDescription sets the "description" field.
func (m *ImageMetadataMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ImageMetadataMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ImageMetadataMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[imagemetadata.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ImageMetadataMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ImageMetadataMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, imagemetadata.FieldDescription)
}

// SetArtist sets the "artist" field.
func (m *ImageMetadataMutation) SetArtist(s string) {
	m.artist = &s
}

// Artist returns the value of the "artist" field in the mutation.
func (m *ImageMetadataMutation) Artist() (r string, exists bool) {
	v := m.artist
	if v == nil {
		return
	}
	return *v, true
}

// OldArtist returns the old "artist" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldArtist(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtist is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtist requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtist: %w", err)
	}
	return oldValue.Artist, nil
}

// ClearArtist clears the value of the "artist" field.
func (m *ImageMetadataMutation) ClearArtist() {
	m.artist = nil
	m.clearedFields[imagemetadata.FieldArtist] = struct{}{}
}

// ArtistCleared returns if the "artist" field was cleared in this mutation.
func (m *ImageMetadataMutation) ArtistCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldArtist]
	return ok
}

// ResetArtist resets all changes to the "artist" field.
func (m *ImageMetadataMutation) ResetArtist() {
	m.artist = nil
	delete(m.clearedFields, imagemetadata.FieldArtist)
}

// SetCopyright sets the "copyright" field.
func (m *ImageMetadataMutation) SetCopyright(s string) {
	m.copyright = &s
}

// Copyright returns the value of the "copyright" field in the mutation.
func (m *ImageMetadataMutation) Copyright() (r string, exists bool) {
	v := m.copyright
	if v == nil {
		return
	}
	return *v, true
}

// OldCopyright returns the old "copyright" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldCopyright(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCopyright is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCopyright requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCopyright: %w", err)
	}
	return oldValue.Copyright, nil
}

// ClearCopyright clears the value of the "copyright" field.
func (m *ImageMetadataMutation) ClearCopyright() {
	m.copyright = nil
	m.clearedFields[imagemetadata.FieldCopyright] = struct{}{}
}

// CopyrightCleared returns if the "copyright" field was cleared in this mutation.
func (m *ImageMetadataMutation) CopyrightCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldCopyright]
	return ok
}

// ResetCopyright resets all changes to the "copyright" field.
func (m *ImageMetadataMutation) ResetCopyright() {
	m.copyright = nil
	delete(m.clearedFields, imagemetadata.FieldCopyright)
}

// SetWhiteBalance sets the "white_balance" field.
func (m *ImageMetadataMutation) SetWhiteBalance(s string) {
	m.white_balance = &s
}

// WhiteBalance returns the value of the "white_balance" field in the mutation.
func (m *ImageMetadataMutation) WhiteBalance() (r string, exists bool) {
	v := m.white_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldWhiteBalance returns the old "white_balance" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldWhiteBalance(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhiteBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhiteBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhiteBalance: %w", err)
	}
	return oldValue.WhiteBalance, nil
}

// ClearWhiteBalance clears the value of the "white_balance" field.
func (m *ImageMetadataMutation) ClearWhiteBalance() {
	m.white_balance = nil
	m.clearedFields[imagemetadata.FieldWhiteBalance] = struct{}{}
}

// WhiteBalanceCleared returns if the "white_balance" field was cleared in this mutation.
func (m *ImageMetadataMutation) WhiteBalanceCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldWhiteBalance]
	return ok
}

// ResetWhiteBalance resets all changes to the "white_balance" field.
func (m *ImageMetadataMutation) ResetWhiteBalance() {
	m.white_balance = nil
	delete(m.clearedFields, imagemetadata.FieldWhiteBalance)
}

// SetFlash sets the "flash" field.
func (m *ImageMetadataMutation) SetFlash(s string) {
	m.flash = &s
}

// Flash returns the value of the "flash" field in the mutation.
func (m *ImageMetadataMutation) Flash() (r string, exists bool) {
	v := m.flash
	if v == nil {
		return
	}
	return *v, true
}

// OldFlash returns the old "flash" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldFlash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlash: %w", err)
	}
	return oldValue.Flash, nil
}

// ClearFlash clears the value of the "flash" field.
func (m *ImageMetadataMutation) ClearFlash() {
	m.flash = nil
	m.clearedFields[imagemetadata.FieldFlash] = struct{}{}
}

// FlashCleared returns if the "flash" field was cleared in this mutation.
func (m *ImageMetadataMutation) FlashCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldFlash]
	return ok
}

// ResetFlash resets all changes to the "flash" field.
func (m *ImageMetadataMutation) ResetFlash() {
	m.flash = nil
	delete(m.clearedFields, imagemetadata.FieldFlash)
}

// SetMeteringMode sets the "metering_mode" field.
func (m *ImageMetadataMutation) SetMeteringMode(s string) {
	m.metering_mode = &s
}

// MeteringMode returns the value of the "metering_mode" field in the mutation.
func (m *ImageMetadataMutation) MeteringMode() (r string, exists bool) {
	v := m.metering_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMeteringMode returns the old "metering_mode" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldMeteringMode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeteringMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeteringMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeteringMode: %w", err)
	}
	return oldValue.MeteringMode, nil
}

// ClearMeteringMode clears the value of the "metering_mode" field.
func (m *ImageMetadataMutation) ClearMeteringMode() {
	m.metering_mode = nil
	m.clearedFields[imagemetadata.FieldMeteringMode] = struct{}{}
}

// MeteringModeCleared returns if the "metering_mode" field was cleared in this mutation.
func (m *ImageMetadataMutation) MeteringModeCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldMeteringMode]
	return ok
}

// ResetMeteringMode resets all changes to the "metering_mode" field.
func (m *ImageMetadataMutation) ResetMeteringMode() {
	m.metering_mode = nil
	delete(m.clearedFields, imagemetadata.FieldMeteringMode)
}

// SetExposureMode sets the "exposure_mode" field.
func (m *ImageMetadataMutation) SetExposureMode(s string) {
	m.exposure_mode = &s
}

// ExposureMode returns the value of the "exposure_mode" field in the mutation.
func (m *ImageMetadataMutation) ExposureMode() (r string, exists bool) {
	v := m.exposure_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExposureMode returns the old "exposure_mode" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldExposureMode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExposureMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExposureMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExposureMode: %w", err)
	}
	return oldValue.ExposureMode, nil
}

// ClearExposureMode clears the value of the "exposure_mode" field.
func (m *ImageMetadataMutation) ClearExposureMode() {
	m.exposure_mode = nil
	m.clearedFields[imagemetadata.FieldExposureMode] = struct{}{}
}

// ExposureModeCleared returns if the "exposure_mode" field was cleared in this mutation.
func (m *ImageMetadataMutation) ExposureModeCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldExposureMode]
	return ok
}

// ResetExposureMode resets all changes to the "exposure_mode" field.
func (m *ImageMetadataMutation) ResetExposureMode() {
	m.exposure_mode = nil
	delete(m.clearedFields, imagemetadata.FieldExposureMode)
}

// SetColorSpace sets the "color_space" field.
func (m *ImageMetadataMutation) SetColorSpace(s string) {
	m.color_space = &s
}

// ColorSpace returns the value of the "color_space" field in the mutation.
func (m *ImageMetadataMutation) ColorSpace() (r string, exists bool) {
	v := m.color_space
	if v == nil {
		return
	}
	return *v, true
}

// OldColorSpace returns the old "color_space" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldColorSpace(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColorSpace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColorSpace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColorSpace: %w", err)
	}
	return oldValue.ColorSpace, nil
}

// ClearColorSpace clears the value of the "color_space" field.
func (m *ImageMetadataMutation) ClearColorSpace() {
	m.color_space = nil
	m.clearedFields[imagemetadata.FieldColorSpace] = struct{}{}
}

// ColorSpaceCleared returns if the "color_space" field was cleared in this mutation.
func (m *ImageMetadataMutation) ColorSpaceCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldColorSpace]
	return ok
}

// ResetColorSpace resets all changes to the "color_space" field.
func (m *ImageMetadataMutation) ResetColorSpace() {
	m.color_space = nil
	delete(m.clearedFields, imagemetadata.FieldColorSpace)
}

// SetSceneCaptureType sets the "scene_capture_type" field.
func (m *ImageMetadataMutation) SetSceneCaptureType(s string) {
	m.scene_capture_type = &s
}

// SceneCaptureType returns the value of the "scene_capture_type" field in the mutation.
func (m *ImageMetadataMutation) SceneCaptureType() (r string, exists bool) {
	v := m.scene_capture_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSceneCaptureType returns the old "scene_capture_type" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldSceneCaptureType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSceneCaptureType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSceneCaptureType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSceneCaptureType: %w", err)
	}
	return oldValue.SceneCaptureType, nil
}

// ClearSceneCaptureType clears the value of the "scene_capture_type" field.
func (m *ImageMetadataMutation) ClearSceneCaptureType() {
	m.scene_capture_type = nil
	m.clearedFields[imagemetadata.FieldSceneCaptureType] = struct{}{}
}

// SceneCaptureTypeCleared returns if the "scene_capture_type" field was cleared in this mutation.
func (m *ImageMetadataMutation) SceneCaptureTypeCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldSceneCaptureType]
	return ok
}

// ResetSceneCaptureType resets all changes to the "scene_capture_type" field.
func (m *ImageMetadataMutation) ResetSceneCaptureType() {
	m.scene_capture_type = nil
	delete(m.clearedFields, imagemetadata.FieldSceneCaptureType)
}

// SetProcessingStatus sets the "processing_status" field.
func (m *ImageMetadataMutation) SetProcessingStatus(s string) {
	m.processing_status = &s
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *ImageMetadataMutation) ProcessingStatus() (r string, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldProcessingStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *ImageMetadataMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ImageMetadataMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ImageMetadataMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ImageMetadataMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[imagemetadata.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ImageMetadataMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ImageMetadataMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, imagemetadata.FieldErrorMessage)
}

// SetUserID sets the "user_id" field.
func (m *ImageMetadataMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ImageMetadataMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ImageMetadataMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[imagemetadata.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ImageMetadataMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ImageMetadataMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, imagemetadata.FieldUserID)
}

// SetBatchID sets the "batch_id" field.
func (m *ImageMetadataMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *ImageMetadataMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the ImageMetadata entity.
// If the ImageMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMetadataMutation) OldBatchID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ClearBatchID clears the value of the "batch_id" field.
func (m *ImageMetadataMutation) ClearBatchID() {
	m.batch_id = nil
	m.clearedFields[imagemetadata.FieldBatchID] = struct{}{}
}

// BatchIDCleared returns if the "batch_id" field was cleared in this mutation.
func (m *ImageMetadataMutation) BatchIDCleared() bool {
	_, ok := m.clearedFields[imagemetadata.FieldBatchID]
	return ok
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *ImageMetadataMutation) ResetBatchID() {
	m.batch_id = nil
	delete(m.clearedFields, imagemetadata.FieldBatchID)
}

// Where appends a list predicates to the ImageMetadataMutation builder.
func (m *ImageMetadataMutation) Where(ps ...predicate.ImageMetadata) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImageMetadataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImageMetadataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImageMetadata, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImageMetadataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImageMetadataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImageMetadata).
func (m *ImageMetadataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImageMetadataMutation) Fields() []string {
	fields := make([]string, 0, 40)
	if m.created_at != nil {
		fields = append(fields, imagemetadata.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, imagemetadata.FieldUpdatedAt)
	}
	if m.file_name != nil {
		fields = append(fields, imagemetadata.FieldFileName)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, imagemetadata.FieldFileSizeBytes)
	}
	if m.mime_type != nil {
		fields = append(fields, imagemetadata.FieldMimeType)
	}
	if m.file_hash != nil {
		fields = append(fields, imagemetadata.FieldFileHash)
	}
	if m.width != nil {
		fields = append(fields, imagemetadata.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, imagemetadata.FieldHeight)
	}
	if m.exif_data != nil {
		fields = append(fields, imagemetadata.FieldExifData)
	}
	if m.xmp_data != nil {
		fields = append(fields, imagemetadata.FieldXmpData)
	}
	if m.iptc_data != nil {
		fields = append(fields, imagemetadata.FieldIptcData)
	}
	if m.ai_analysis != nil {
		fields = append(fields, imagemetadata.FieldAiAnalysis)
	}
	if m.keywords != nil {
		fields = append(fields, imagemetadata.FieldKeywords)
	}
	if m.camera_make != nil {
		fields = append(fields, imagemetadata.FieldCameraMake)
	}
	if m.camera_model != nil {
		fields = append(fields, imagemetadata.FieldCameraModel)
	}
	if m.lens_info != nil {
		fields = append(fields, imagemetadata.FieldLensInfo)
	}
	if m.software != nil {
		fields = append(fields, imagemetadata.FieldSoftware)
	}
	if m.date_taken != nil {
		fields = append(fields, imagemetadata.FieldDateTaken)
	}
	if m.iso != nil {
		fields = append(fields, imagemetadata.FieldIso)
	}
	if m.aperture != nil {
		fields = append(fields, imagemetadata.FieldAperture)
	}
	if m.shutter_speed != nil {
		fields = append(fields, imagemetadata.FieldShutterSpeed)
	}
	if m.focal_length != nil {
		fields = append(fields, imagemetadata.FieldFocalLength)
	}
	if m.gps_latitude != nil {
		fields = append(fields, imagemetadata.FieldGpsLatitude)
	}
	if m.gps_longitude != nil {
		fields = append(fields, imagemetadata.FieldGpsLongitude)
	}
	if m.gps_altitude != nil {
		fields = append(fields, imagemetadata.FieldGpsAltitude)
	}
	if m.location_name != nil {
		fields = append(fields, imagemetadata.FieldLocationName)
	}
	if m.orientation != nil {
		fields = append(fields, imagemetadata.FieldOrientation)
	}
	if m.description != nil {
		fields = append(fields, imagemetadata.FieldDescription)
	}
	if m.artist != nil {
		fields = append(fields, imagemetadata.FieldArtist)
	}
	if m.copyright != nil {
		fields = append(fields, imagemetadata.FieldCopyright)
	}
	if m.white_balance != nil {
		fields = append(fields, imagemetadata.FieldWhiteBalance)
	}
	if m.flash != nil {
		fields = append(fields, imagemetadata.FieldFlash)
	}
	if m.metering_mode != nil {
		fields = append(fields, imagemetadata.FieldMeteringMode)
	}
	if m.exposure_mode != nil {
		fields = append(fields, imagemetadata.FieldExposureMode)
	}
	if m.color_space != nil {
		fields = append(fields, imagemetadata.FieldColorSpace)
	}
	if m.scene_capture_type != nil {
		fields = append(fields, imagemetadata.FieldSceneCaptureType)
	}
	if m.processing_status != nil {
		fields = append(fields, imagemetadata.FieldProcessingStatus)
	}
	if m.error_message != nil {
		fields = append(fields, imagemetadata.FieldErrorMessage)
	}
	if m.user_id != nil {
		fields = append(fields, imagemetadata.FieldUserID)
	}
	if m.batch_id != nil {
		fields = append(fields, imagemetadata.FieldBatchID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImageMetadataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case imagemetadata.FieldCreatedAt:
		return m.CreatedAt()
	case imagemetadata.FieldUpdatedAt:
		return m.UpdatedAt()
	case imagemetadata.FieldFileName:
		return m.FileName()
	case imagemetadata.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case imagemetadata.FieldMimeType:
		return m.MimeType()
	case imagemetadata.FieldFileHash:
		return m.FileHash()
	case imagemetadata.FieldWidth:
		return m.Width()
	case imagemetadata.FieldHeight:
		return m.Height()
	case imagemetadata.FieldExifData:
		return m.ExifData()
	case imagemetadata.FieldXmpData:
		return m.XmpData()
	case imagemetadata.FieldIptcData:
		return m.IptcData()
	case imagemetadata.FieldAiAnalysis:
		return m.AiAnalysis()
	case imagemetadata.FieldKeywords:
		return m.Keywords()
	case imagemetadata.FieldCameraMake:
		return m.CameraMake()
	case imagemetadata.FieldCameraModel:
		return m.CameraModel()
	case imagemetadata.FieldLensInfo:
		return m.LensInfo()
	case imagemetadata.FieldSoftware:
		return m.Software()
	case imagemetadata.FieldDateTaken:
		return m.DateTaken()
	case imagemetadata.FieldIso:
		return m.Iso()
	case imagemetadata.FieldAperture:
		return m.Aperture()
	case imagemetadata.FieldShutterSpeed:
		return m.ShutterSpeed()
	case imagemetadata.FieldFocalLength:
		return m.FocalLength()
	case imagemetadata.FieldGpsLatitude:
		return m.GpsLatitude()
	case imagemetadata.FieldGpsLongitude:
		return m.GpsLongitude()
	case imagemetadata.FieldGpsAltitude:
		return m.GpsAltitude()
	case imagemetadata.FieldLocationName:
		return m.LocationName()
	case imagemetadata.FieldOrientation:
		return m.Orientation()
	case imagemetadata.FieldDescription:
		return m.Description()
	case imagemetadata.FieldArtist:
		return m.Artist()
	case imagemetadata.FieldCopyright:
		return m.Copyright()
	case imagemetadata.FieldWhiteBalance:
		return m.WhiteBalance()
	case imagemetadata.FieldFlash:
		return m.Flash()
	case imagemetadata.FieldMeteringMode:
		return m.MeteringMode()
	case imagemetadata.FieldExposureMode:
		return m.ExposureMode()
	case imagemetadata.FieldColorSpace:
		return m.ColorSpace()
	case imagemetadata.FieldSceneCaptureType:
		return m.SceneCaptureType()
	case imagemetadata.FieldProcessingStatus:
		return m.ProcessingStatus()
	case imagemetadata.FieldErrorMessage:
		return m.ErrorMessage()
	case imagemetadata.FieldUserID:
		return m.UserID()
	case imagemetadata.FieldBatchID:
		return m.BatchID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImageMetadataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case imagemetadata.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case imagemetadata.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case imagemetadata.FieldFileName:
		return m.OldFileName(ctx)
	case imagemetadata.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case imagemetadata.FieldMimeType:
		return m.OldMimeType(ctx)
	case imagemetadata.FieldFileHash:
		return m.OldFileHash(ctx)
	case imagemetadata.FieldWidth:
		return m.OldWidth(ctx)
	case imagemetadata.FieldHeight:
		return m.OldHeight(ctx)
	case imagemetadata.FieldExifData:
		return m.OldExifData(ctx)
	case imagemetadata.FieldXmpData:
		return m.OldXmpData(ctx)
	case imagemetadata.FieldIptcData:
		return m.OldIptcData(ctx)
	case imagemetadata.FieldAiAnalysis:
		return m.OldAiAnalysis(ctx)
	case imagemetadata.FieldKeywords:
		return m.OldKeywords(ctx)
	case imagemetadata.FieldCameraMake:
		return m.OldCameraMake(ctx)
	case imagemetadata.FieldCameraModel:
		return m.OldCameraModel(ctx)
	case imagemetadata.FieldLensInfo:
		return m.OldLensInfo(ctx)
	case imagemetadata.FieldSoftware:
		return m.OldSoftware(ctx)
	case imagemetadata.FieldDateTaken:
		return m.OldDateTaken(ctx)
	case imagemetadata.FieldIso:
		return m.OldIso(ctx)
	case imagemetadata.FieldAperture:
		return m.OldAperture(ctx)
	case imagemetadata.FieldShutterSpeed:
		return m.OldShutterSpeed(ctx)
	case imagemetadata.FieldFocalLength:
		return m.OldFocalLength(ctx)
	case imagemetadata.FieldGpsLatitude:
		return m.OldGpsLatitude(ctx)
	case imagemetadata.FieldGpsLongitude:
		return m.OldGpsLongitude(ctx)
	case imagemetadata.FieldGpsAltitude:
		return m.OldGpsAltitude(ctx)
	case imagemetadata.FieldLocationName:
		return m.OldLocationName(ctx)
	case imagemetadata.FieldOrientation:
		return m.OldOrientation(ctx)
	case imagemetadata.FieldDescription:
		return m.OldDescription(ctx)
	case imagemetadata.FieldArtist:
		return m.OldArtist(ctx)
	case imagemetadata.FieldCopyright:
		return m.OldCopyright(ctx)
	case imagemetadata.FieldWhiteBalance:
		return m.OldWhiteBalance(ctx)
	case imagemetadata.FieldFlash:
		return m.OldFlash(ctx)
	case imagemetadata.FieldMeteringMode:
		return m.OldMeteringMode(ctx)
	case imagemetadata.FieldExposureMode:
		return m.OldExposureMode(ctx)
	case imagemetadata.FieldColorSpace:
		return m.OldColorSpace(ctx)
	case imagemetadata.FieldSceneCaptureType:
		return m.OldSceneCaptureType(ctx)
	case imagemetadata.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case imagemetadata.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case imagemetadata.FieldUserID:
		return m.OldUserID(ctx)
	case imagemetadata.FieldBatchID:
		return m.OldBatchID(ctx)
	}
	return nil, fmt.Errorf("unknown ImageMetadata field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageMetadataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case imagemetadata.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case imagemetadata.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case imagemetadata.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case imagemetadata.FieldFileSizeBytes:
		v, ok := value.(uint64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case imagemetadata.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case imagemetadata.FieldFileHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHash(v)
		return nil
	case imagemetadata.FieldWidth:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case imagemetadata.FieldHeight:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case imagemetadata.FieldExifData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExifData(v)
		return nil
	case imagemetadata.FieldXmpData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXmpData(v)
		return nil
	case imagemetadata.FieldIptcData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIptcData(v)
		return nil
	case imagemetadata.FieldAiAnalysis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiAnalysis(v)
		return nil
	case imagemetadata.FieldKeywords:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case imagemetadata.FieldCameraMake:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCameraMake(v)
		return nil
	case imagemetadata.FieldCameraModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCameraModel(v)
		return nil
	case imagemetadata.FieldLensInfo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLensInfo(v)
		return nil
	case imagemetadata.FieldSoftware:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoftware(v)
		return nil
	case imagemetadata.FieldDateTaken:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateTaken(v)
		return nil
	case imagemetadata.FieldIso:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIso(v)
		return nil
	case imagemetadata.FieldAperture:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAperture(v)
		return nil
	case imagemetadata.FieldShutterSpeed:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShutterSpeed(v)
		return nil
	case imagemetadata.FieldFocalLength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocalLength(v)
		return nil
	case imagemetadata.FieldGpsLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpsLatitude(v)
		return nil
	case imagemetadata.FieldGpsLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpsLongitude(v)
		return nil
	case imagemetadata.FieldGpsAltitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpsAltitude(v)
		return nil
	case imagemetadata.FieldLocationName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationName(v)
		return nil
	case imagemetadata.FieldOrientation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrientation(v)
		return nil
	case imagemetadata.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case imagemetadata.FieldArtist:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtist(v)
		return nil
	case imagemetadata.FieldCopyright:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCopyright(v)
		return nil
	case imagemetadata.FieldWhiteBalance:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhiteBalance(v)
		return nil
	case imagemetadata.FieldFlash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlash(v)
		return nil
	case imagemetadata.FieldMeteringMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeteringMode(v)
		return nil
	case imagemetadata.FieldExposureMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExposureMode(v)
		return nil
	case imagemetadata.FieldColorSpace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColorSpace(v)
		return nil
	case imagemetadata.FieldSceneCaptureType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSceneCaptureType(v)
		return nil
	case imagemetadata.FieldProcessingStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case imagemetadata.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case imagemetadata.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case imagemetadata.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	}
	return fmt.Errorf("unknown ImageMetadata field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImageMetadataMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size_bytes != nil {
		fields = append(fields, imagemetadata.FieldFileSizeBytes)
	}
	if m.addwidth != nil {
		fields = append(fields, imagemetadata.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, imagemetadata.FieldHeight)
	}
	if m.addiso != nil {
		fields = append(fields, imagemetadata.FieldIso)
	}
	if m.addaperture != nil {
		fields = append(fields, imagemetadata.FieldAperture)
	}
	if m.addshutter_speed != nil {
		fields = append(fields, imagemetadata.FieldShutterSpeed)
	}
	if m.addfocal_length != nil {
		fields = append(fields, imagemetadata.FieldFocalLength)
	}
	if m.addgps_latitude != nil {
		fields = append(fields, imagemetadata.FieldGpsLatitude)
	}
	if m.addgps_longitude != nil {
		fields = append(fields, imagemetadata.FieldGpsLongitude)
	}
	if m.addgps_altitude != nil {
		fields = append(fields, imagemetadata.FieldGpsAltitude)
	}
	if m.addorientation != nil {
		fields = append(fields, imagemetadata.FieldOrientation)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImageMetadataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case imagemetadata.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	case imagemetadata.FieldWidth:
		return m.AddedWidth()
	case imagemetadata.FieldHeight:
		return m.AddedHeight()
	case imagemetadata.FieldIso:
		return m.AddedIso()
	case imagemetadata.FieldAperture:
		return m.AddedAperture()
	case imagemetadata.FieldShutterSpeed:
		return m.AddedShutterSpeed()
	case imagemetadata.FieldFocalLength:
		return m.AddedFocalLength()
	case imagemetadata.FieldGpsLatitude:
		return m.AddedGpsLatitude()
	case imagemetadata.FieldGpsLongitude:
		return m.AddedGpsLongitude()
	case imagemetadata.FieldGpsAltitude:
		return m.AddedGpsAltitude()
	case imagemetadata.FieldOrientation:
		return m.AddedOrientation()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageMetadataMutation) AddField(name string, value ent.Value) error {
	switch name {
	case imagemetadata.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	case imagemetadata.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case imagemetadata.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case imagemetadata.FieldIso:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIso(v)
		return nil
	case imagemetadata.FieldAperture:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAperture(v)
		return nil
	case imagemetadata.FieldShutterSpeed:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddShutterSpeed(v)
		return nil
	case imagemetadata.FieldFocalLength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFocalLength(v)
		return nil
	case imagemetadata.FieldGpsLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGpsLatitude(v)
		return nil
	case imagemetadata.FieldGpsLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGpsLongitude(v)
		return nil
	case imagemetadata.FieldGpsAltitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGpsAltitude(v)
		return nil
	case imagemetadata.FieldOrientation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrientation(v)
		return nil
	}
	return fmt.Errorf("unknown ImageMetadata numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImageMetadataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(imagemetadata.FieldMimeType) {
		fields = append(fields, imagemetadata.FieldMimeType)
	}
	if m.FieldCleared(imagemetadata.FieldFileHash) {
		fields = append(fields, imagemetadata.FieldFileHash)
	}
	if m.FieldCleared(imagemetadata.FieldWidth) {
		fields = append(fields, imagemetadata.FieldWidth)
	}
	if m.FieldCleared(imagemetadata.FieldHeight) {
		fields = append(fields, imagemetadata.FieldHeight)
	}
	if m.FieldCleared(imagemetadata.FieldExifData) {
		fields = append(fields, imagemetadata.FieldExifData)
	}
	if m.FieldCleared(imagemetadata.FieldXmpData) {
		fields = append(fields, imagemetadata.FieldXmpData)
	}
	if m.FieldCleared(imagemetadata.FieldIptcData) {
		fields = append(fields, imagemetadata.FieldIptcData)
	}
	if m.FieldCleared(imagemetadata.FieldAiAnalysis) {
		fields = append(fields, imagemetadata.FieldAiAnalysis)
	}
	if m.FieldCleared(imagemetadata.FieldKeywords) {
		fields = append(fields, imagemetadata.FieldKeywords)
	}
	if m.FieldCleared(imagemetadata.FieldCameraMake) {
		fields = append(fields, imagemetadata.FieldCameraMake)
	}
	if m.FieldCleared(imagemetadata.FieldCameraModel) {
		fields = append(fields, imagemetadata.FieldCameraModel)
	}
	if m.FieldCleared(imagemetadata.FieldLensInfo) {
		fields = append(fields, imagemetadata.FieldLensInfo)
	}
	if m.FieldCleared(imagemetadata.FieldSoftware) {
		fields = append(fields, imagemetadata.FieldSoftware)
	}
	if m.FieldCleared(imagemetadata.FieldDateTaken) {
		fields = append(fields, imagemetadata.FieldDateTaken)
	}
	if m.FieldCleared(imagemetadata.FieldIso) {
		fields = append(fields, imagemetadata.FieldIso)
	}
	if m.FieldCleared(imagemetadata.FieldAperture) {
		fields = append(fields, imagemetadata.FieldAperture)
	}
	if m.FieldCleared(imagemetadata.FieldShutterSpeed) {
		fields = append(fields, imagemetadata.FieldShutterSpeed)
	}
	if m.FieldCleared(imagemetadata.FieldFocalLength) {
		fields = append(fields, imagemetadata.FieldFocalLength)
	}
	if m.FieldCleared(imagemetadata.FieldGpsLatitude) {
		fields = append(fields, imagemetadata.FieldGpsLatitude)
	}
	if m.FieldCleared(imagemetadata.FieldGpsLongitude) {
		fields = append(fields, imagemetadata.FieldGpsLongitude)
	}
	if m.FieldCleared(imagemetadata.FieldGpsAltitude) {
		fields = append(fields, imagemetadata.FieldGpsAltitude)
	}
	if m.FieldCleared(imagemetadata.FieldLocationName) {
		fields = append(fields, imagemetadata.FieldLocationName)
	}
	if m.FieldCleared(imagemetadata.FieldOrientation) {
		fields = append(fields, imagemetadata.FieldOrientation)
	}
	if m.FieldCleared(imagemetadata.FieldDescription) {
		fields = append(fields, imagemetadata.FieldDescription)
	}
	if m.FieldCleared(imagemetadata.FieldArtist) {
		fields = append(fields, imagemetadata.FieldArtist)
	}
	if m.FieldCleared(imagemetadata.FieldCopyright) {
		fields = append(fields, imagemetadata.FieldCopyright)
	}
	if m.FieldCleared(imagemetadata.FieldWhiteBalance) {
		fields = append(fields, imagemetadata.FieldWhiteBalance)
	}
	if m.FieldCleared(imagemetadata.FieldFlash) {
		fields = append(fields, imagemetadata.FieldFlash)
	}
	if m.FieldCleared(imagemetadata.FieldMeteringMode) {
		fields = append(fields, imagemetadata.FieldMeteringMode)
	}
	if m.FieldCleared(imagemetadata.FieldExposureMode) {
		fields = append(fields, imagemetadata.FieldExposureMode)
	}
	if m.FieldCleared(imagemetadata.FieldColorSpace) {
		fields = append(fields, imagemetadata.FieldColorSpace)
	}
	if m.FieldCleared(imagemetadata.FieldSceneCaptureType) {
		fields = append(fields, imagemetadata.FieldSceneCaptureType)
	}
	if m.FieldCleared(imagemetadata.FieldErrorMessage) {
		fields = append(fields, imagemetadata.FieldErrorMessage)
	}
	if m.FieldCleared(imagemetadata.FieldUserID) {
		fields = append(fields, imagemetadata.FieldUserID)
	}
	if m.FieldCleared(imagemetadata.FieldBatchID) {
		fields = append(fields, imagemetadata.FieldBatchID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImageMetadataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImageMetadataMutation) ClearField(name string) error {
	switch name {
	case imagemetadata.FieldMimeType:
		m.ClearMimeType()
		return nil
	case imagemetadata.FieldFileHash:
		m.ClearFileHash()
		return nil
	case imagemetadata.FieldWidth:
		m.ClearWidth()
		return nil
	case imagemetadata.FieldHeight:
		m.ClearHeight()
		return nil
	case imagemetadata.FieldExifData:
		m.ClearExifData()
		return nil
	case imagemetadata.FieldXmpData:
		m.ClearXmpData()
		return nil
	case imagemetadata.FieldIptcData:
		m.ClearIptcData()
		return nil
	case imagemetadata.FieldAiAnalysis:
		m.ClearAiAnalysis()
		return nil
	case imagemetadata.FieldKeywords:
		m.ClearKeywords()
		return nil
	case imagemetadata.FieldCameraMake:
		m.ClearCameraMake()
		return nil
	case imagemetadata.FieldCameraModel:
		m.ClearCameraModel()
		return nil
	case imagemetadata.FieldLensInfo:
		m.ClearLensInfo()
		return nil
	case imagemetadata.FieldSoftware:
		m.ClearSoftware()
		return nil
	case imagemetadata.FieldDateTaken:
		m.ClearDateTaken()
		return nil
	case imagemetadata.FieldIso:
		m.ClearIso()
		return nil
	case imagemetadata.FieldAperture:
		m.ClearAperture()
		return nil
	case imagemetadata.FieldShutterSpeed:
		m.ClearShutterSpeed()
		return nil
	case imagemetadata.FieldFocalLength:
		m.ClearFocalLength()
		return nil
	case imagemetadata.FieldGpsLatitude:
		m.ClearGpsLatitude()
		return nil
	case imagemetadata.FieldGpsLongitude:
		m.ClearGpsLongitude()
		return nil
	case imagemetadata.FieldGpsAltitude:
		m.ClearGpsAltitude()
		return nil
	case imagemetadata.FieldLocationName:
		m.ClearLocationName()
		return nil
	case imagemetadata.FieldOrientation:
		m.ClearOrientation()
		return nil
	case imagemetadata.FieldDescription:
		m.ClearDescription()
		return nil
	case imagemetadata.FieldArtist:
		m.ClearArtist()
		return nil
	case imagemetadata.FieldCopyright:
		m.ClearCopyright()
		return nil
	case imagemetadata.FieldWhiteBalance:
		m.ClearWhiteBalance()
		return nil
	case imagemetadata.FieldFlash:
		m.ClearFlash()
		return nil
	case imagemetadata.FieldMeteringMode:
		m.ClearMeteringMode()
		return nil
	case imagemetadata.FieldExposureMode:
		m.ClearExposureMode()
		return nil
	case imagemetadata.FieldColorSpace:
		m.ClearColorSpace()
		return nil
	case imagemetadata.FieldSceneCaptureType:
		m.ClearSceneCaptureType()
		return nil
	case imagemetadata.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case imagemetadata.FieldUserID:
		m.ClearUserID()
		return nil
	case imagemetadata.FieldBatchID:
		m.ClearBatchID()
		return nil
	}
	return fmt.Errorf("unknown ImageMetadata nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImageMetadataMutation) ResetField(name string) error {
	switch name {
	case imagemetadata.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case imagemetadata.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case imagemetadata.FieldFileName:
		m.ResetFileName()
		return nil
	case imagemetadata.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case imagemetadata.FieldMimeType:
		m.ResetMimeType()
		return nil
	case imagemetadata.FieldFileHash:
		m.ResetFileHash()
		return nil
	case imagemetadata.FieldWidth:
		m.ResetWidth()
		return nil
	case imagemetadata.FieldHeight:
		m.ResetHeight()
		return nil
	case imagemetadata.FieldExifData:
		m.ResetExifData()
		return nil
	case imagemetadata.FieldXmpData:
		m.ResetXmpData()
		return nil
	case imagemetadata.FieldIptcData:
		m.ResetIptcData()
		return nil
	case imagemetadata.FieldAiAnalysis:
		m.ResetAiAnalysis()
		return nil
	case imagemetadata.FieldKeywords:
		m.ResetKeywords()
		return nil
	case imagemetadata.FieldCameraMake:
		m.ResetCameraMake()
		return nil
	case imagemetadata.FieldCameraModel:
		m.ResetCameraModel()
		return nil
	case imagemetadata.FieldLensInfo:
		m.ResetLensInfo()
		return nil
	case imagemetadata.FieldSoftware:
		m.ResetSoftware()
		return nil
	case imagemetadata.FieldDateTaken:
		m.ResetDateTaken()
		return nil
	case imagemetadata.FieldIso:
		m.ResetIso()
		return nil
	case imagemetadata.FieldAperture:
		m.ResetAperture()
		return nil
	case imagemetadata.FieldShutterSpeed:
		m.ResetShutterSpeed()
		return nil
	case imagemetadata.FieldFocalLength:
		m.ResetFocalLength()
		return nil
	case imagemetadata.FieldGpsLatitude:
		m.ResetGpsLatitude()
		return nil
	case imagemetadata.FieldGpsLongitude:
		m.ResetGpsLongitude()
		return nil
	case imagemetadata.FieldGpsAltitude:
		m.ResetGpsAltitude()
		return nil
	case imagemetadata.FieldLocationName:
		m.ResetLocationName()
		return nil
	case imagemetadata.FieldOrientation:
		m.ResetOrientation()
		return nil
	case imagemetadata.FieldDescription:
		m.ResetDescription()
		return nil
	case imagemetadata.FieldArtist:
		m.ResetArtist()
		return nil
	case imagemetadata.FieldCopyright:
		m.ResetCopyright()
		return nil
	case imagemetadata.FieldWhiteBalance:
		m.ResetWhiteBalance()
		return nil
	case imagemetadata.FieldFlash:
		m.ResetFlash()
		return nil
	case imagemetadata.FieldMeteringMode:
		m.ResetMeteringMode()
		return nil
	case imagemetadata.FieldExposureMode:
		m.ResetExposureMode()
		return nil
	case imagemetadata.FieldColorSpace:
		m.ResetColorSpace()
		return nil
	case imagemetadata.FieldSceneCaptureType:
		m.ResetSceneCaptureType()
		return nil
	case imagemetadata.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case imagemetadata.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case imagemetadata.FieldUserID:
		m.ResetUserID()
		return nil
	case imagemetadata.FieldBatchID:
		m.ResetBatchID()
		return nil
	}
	return fmt.Errorf("unknown ImageMetadata field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImageMetadataMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImageMetadataMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImageMetadataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImageMetadataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImageMetadataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImageMetadataMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImageMetadataMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImageMetadata unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImageMetadataMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImageMetadata edge %s", name)
}

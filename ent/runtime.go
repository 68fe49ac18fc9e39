// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anzhiyu-c/picmeta-app/ent/imagemetadata"
	"github.com/anzhiyu-c/picmeta-app/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	imagemetadataFields := schema.ImageMetadata{}.Fields()
	_ = imagemetadataFields
	// imagemetadataDescCreatedAt is the schema descriptor for created_at field.
	imagemetadataDescCreatedAt := imagemetadataFields[1].Descriptor()
	// imagemetadata.DefaultCreatedAt holds the default value on creation for the created_at field.
	imagemetadata.DefaultCreatedAt = imagemetadataDescCreatedAt.Default.(func() time.Time)
	// imagemetadataDescUpdatedAt is the schema descriptor for updated_at field.
	imagemetadataDescUpdatedAt := imagemetadataFields[2].Descriptor()
	// imagemetadata.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	imagemetadata.DefaultUpdatedAt = imagemetadataDescUpdatedAt.Default.(func() time.Time)
	// imagemetadata.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	imagemetadata.UpdateDefaultUpdatedAt = imagemetadataDescUpdatedAt.UpdateDefault.(func() time.Time)
	// imagemetadataDescFileName is the schema descriptor for file_name field.
	imagemetadataDescFileName := imagemetadataFields[3].Descriptor()
	// imagemetadata.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	imagemetadata.FileNameValidator = func() func(string) error {
		validators := imagemetadataDescFileName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_name string) error {
			for _, fn := range fns {
				if err := fn(file_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// imagemetadataDescMimeType is the schema descriptor for mime_type field.
	imagemetadataDescMimeType := imagemetadataFields[5].Descriptor()
	// imagemetadata.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	imagemetadata.MimeTypeValidator = imagemetadataDescMimeType.Validators[0].(func(string) error)
	// imagemetadataDescFileHash is the schema descriptor for file_hash field.
	imagemetadataDescFileHash := imagemetadataFields[6].Descriptor()
	// imagemetadata.FileHashValidator is a validator for the "file_hash" field. It is called by the builders before save.
	imagemetadata.FileHashValidator = imagemetadataDescFileHash.Validators[0].(func(string) error)
	// imagemetadataDescCameraMake is the schema descriptor for camera_make field.
	imagemetadataDescCameraMake := imagemetadataFields[14].Descriptor()
	// imagemetadata.CameraMakeValidator is a validator for the "camera_make" field. It is called by the builders before save.
	imagemetadata.CameraMakeValidator = imagemetadataDescCameraMake.Validators[0].(func(string) error)
	// imagemetadataDescCameraModel is the schema descriptor for camera_model field.
	imagemetadataDescCameraModel := imagemetadataFields[15].Descriptor()
	// imagemetadata.CameraModelValidator is a validator for the "camera_model" field. It is called by the builders before save.
	imagemetadata.CameraModelValidator = imagemetadataDescCameraModel.Validators[0].(func(string) error)
	// imagemetadataDescLensInfo is the schema descriptor for lens_info field.
	imagemetadataDescLensInfo := imagemetadataFields[16].Descriptor()
	// imagemetadata.LensInfoValidator is a validator for the "lens_info" field. It is called by the builders before save.
	imagemetadata.LensInfoValidator = imagemetadataDescLensInfo.Validators[0].(func(string) error)
	// imagemetadataDescSoftware is the schema descriptor for software field.
	imagemetadataDescSoftware := imagemetadataFields[17].Descriptor()
	// imagemetadata.SoftwareValidator is a validator for the "software" field. It is called by the builders before save.
	imagemetadata.SoftwareValidator = imagemetadataDescSoftware.Validators[0].(func(string) error)
	// imagemetadataDescLocationName is the schema descriptor for location_name field.
	imagemetadataDescLocationName := imagemetadataFields[26].Descriptor()
	// imagemetadata.LocationNameValidator is a validator for the "location_name" field. It is called by the builders before save.
	imagemetadata.LocationNameValidator = imagemetadataDescLocationName.Validators[0].(func(string) error)
	// imagemetadataDescArtist is the schema descriptor for artist field.
	imagemetadataDescArtist := imagemetadataFields[29].Descriptor()
	// imagemetadata.ArtistValidator is a validator for the "artist" field. It is called by the builders before save.
	imagemetadata.ArtistValidator = imagemetadataDescArtist.Validators[0].(func(string) error)
	// imagemetadataDescCopyright is the schema descriptor for copyright field.
	imagemetadataDescCopyright := imagemetadataFields[30].Descriptor()
	// imagemetadata.CopyrightValidator is a validator for the "copyright" field. It is called by the builders before save.
	imagemetadata.CopyrightValidator = imagemetadataDescCopyright.Validators[0].(func(string) error)
	// imagemetadataDescWhiteBalance is the schema descriptor for white_balance field.
	imagemetadataDescWhiteBalance := imagemetadataFields[31].Descriptor()
	// imagemetadata.WhiteBalanceValidator is a validator for the "white_balance" field. It is called by the builders before save.
	imagemetadata.WhiteBalanceValidator = imagemetadataDescWhiteBalance.Validators[0].(func(string) error)
	// imagemetadataDescFlash is the schema descriptor for flash field.
	imagemetadataDescFlash := imagemetadataFields[32].Descriptor()
	// imagemetadata.FlashValidator is a validator for the "flash" field. It is called by the builders before save.
	imagemetadata.FlashValidator = imagemetadataDescFlash.Validators[0].(func(string) error)
	// imagemetadataDescMeteringMode is the schema descriptor for metering_mode field.
	imagemetadataDescMeteringMode := imagemetadataFields[33].Descriptor()
	// imagemetadata.MeteringModeValidator is a validator for the "metering_mode" field. It is called by the builders before save.
	imagemetadata.MeteringModeValidator = imagemetadataDescMeteringMode.Validators[0].(func(string) error)
	// imagemetadataDescExposureMode is the schema descriptor for exposure_mode field.
	imagemetadataDescExposureMode := imagemetadataFields[34].Descriptor()
	// imagemetadata.ExposureModeValidator is a validator for the "exposure_mode" field. It is called by the builders before save.
	imagemetadata.ExposureModeValidator = imagemetadataDescExposureMode.Validators[0].(func(string) error)
	// imagemetadataDescColorSpace is the schema descriptor for color_space field.
	imagemetadataDescColorSpace := imagemetadataFields[35].Descriptor()
	// imagemetadata.ColorSpaceValidator is a validator for the "color_space" field. It is called by the builders before save.
	imagemetadata.ColorSpaceValidator = imagemetadataDescColorSpace.Validators[0].(func(string) error)
	// imagemetadataDescSceneCaptureType is the schema descriptor for scene_capture_type field.
	imagemetadataDescSceneCaptureType := imagemetadataFields[36].Descriptor()
	// imagemetadata.SceneCaptureTypeValidator is a validator for the "scene_capture_type" field. It is called by the builders before save.
	imagemetadata.SceneCaptureTypeValidator = imagemetadataDescSceneCaptureType.Validators[0].(func(string) error)
	// imagemetadataDescProcessingStatus is the schema descriptor for processing_status field.
	imagemetadataDescProcessingStatus := imagemetadataFields[37].Descriptor()
	// imagemetadata.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	imagemetadata.DefaultProcessingStatus = imagemetadataDescProcessingStatus.Default.(string)
	// imagemetadata.ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	imagemetadata.ProcessingStatusValidator = imagemetadataDescProcessingStatus.Validators[0].(func(string) error)
	// imagemetadataDescUserID is the schema descriptor for user_id field.
	imagemetadataDescUserID := imagemetadataFields[39].Descriptor()
	// imagemetadata.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	imagemetadata.UserIDValidator = imagemetadataDescUserID.Validators[0].(func(string) error)
	// imagemetadataDescBatchID is the schema descriptor for batch_id field.
	imagemetadataDescBatchID := imagemetadataFields[40].Descriptor()
	// imagemetadata.BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	imagemetadata.BatchIDValidator = imagemetadataDescBatchID.Validators[0].(func(string) error)
}

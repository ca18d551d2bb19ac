package model

import (
	"errors"
	"fmt"
)

// TypeProcessImage is the asynq task building the variants of an upload.
const TypeProcessImage = "media:process_image"

const keyPrefix = "content"

var (
	ErrImageTooLarge      = errors.New("image exceeds 5MB")
	ErrInvalidImage       = errors.New("not a valid image file")
	ErrStorageUnavailable = errors.New("media storage unavailable")
	ErrInvalidImageID     = errors.New("invalid image id")
)

// Messages shown by the entry form.
const (
	MsgImageTooLarge = "L'image ne doit pas dépasser 5MB"
	MsgInvalidImage  = "Veuillez sélectionner un fichier image valide"
)

type ErrorCode string

const (
	ErrCodeMediaUnavailable ErrorCode = "MEDIA_UNAVAILABLE"  // 503
	ErrCodeImageTooLarge    ErrorCode = "IMAGE_TOO_LARGE"    // 413
	ErrCodeInvalidImage     ErrorCode = "INVALID_IMAGE"      // 400
	ErrCodeImageNotFound    ErrorCode = "IMAGE_NOT_FOUND"    // 404
	ErrCodeInternalError    ErrorCode = "SYS_INTERNAL_ERROR" // 500
)

// UploadResult is returned to the entry form; URL goes into the item's imageUrl.
type UploadResult struct {
	ID          string            `json:"id"`
	URL         string            `json:"url"`
	Key         string            `json:"key"`
	ContentType string            `json:"content_type"`
	Size        int               `json:"size"`
	Variants    map[string]string `json:"variants"`
	Queued      bool              `json:"variants_queued"`
}

// ProcessImagePayload is the body of a TypeProcessImage task.
type ProcessImagePayload struct {
	ImageID string `json:"image_id"`
	Key     string `json:"key"`
}

// Folder is the object prefix holding every file of one image.
func Folder(imageID string) string {
	return fmt.Sprintf("%s/%s/", keyPrefix, imageID)
}

// OriginalKey is where the uploaded file is stored.
func OriginalKey(imageID, ext string) string {
	return fmt.Sprintf("%s/%s/original.%s", keyPrefix, imageID, ext)
}

// VariantKey is where a generated variant is stored.
func VariantKey(imageID, variant string) string {
	return fmt.Sprintf("%s/%s/%s.jpg", keyPrefix, imageID, variant)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"vitrine-backend/internal/domains/media/model"
	"vitrine-backend/internal/infrastructure/storage"
	"vitrine-backend/pkg/logger"
)

const processImageMaxRetry = 2

type mediaService struct {
	storage   ObjectStorage
	processor *storage.ImageProcessor
	queue     TaskEnqueuer
}

// NewMediaService wires the upload flow.
// store may be nil (MinIO down): uploads then fail with ErrStorageUnavailable.
// queue may be nil: variants are then built inline.
func NewMediaService(store ObjectStorage, processor *storage.ImageProcessor, queue TaskEnqueuer) ServiceInterface {
	return &mediaService{
		storage:   store,
		processor: processor,
		queue:     queue,
	}
}

// UploadImage validates and stores the original, then schedules the variants.
//
// Flow:
// 1. Validate size and format
// 2. Upload original to content/<uuid>/original.<ext>
// 3. Enqueue media:process_image (inline fallback without a queue)
func (s *mediaService) UploadImage(ctx context.Context, data []byte) (*model.UploadResult, error) {
	if s.storage == nil {
		return nil, model.ErrStorageUnavailable
	}

	// STEP 1: Validate
	format, err := s.processor.ValidateImage(data)
	if err != nil {
		if errors.Is(err, storage.ErrImageTooLarge) {
			return nil, model.ErrImageTooLarge
		}
		return nil, model.ErrInvalidImage
	}

	// STEP 2: Upload original
	imageID := uuid.NewString()
	key := model.OriginalKey(imageID, storage.Extension(format))
	contentType := storage.ContentType(format)

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}

	result := &model.UploadResult{
		ID:          imageID,
		URL:         url,
		Key:         key,
		ContentType: contentType,
		Size:        len(data),
		Variants:    make(map[string]string, len(storage.VariantSizes)),
	}
	for variant := range storage.VariantSizes {
		result.Variants[variant] = s.storage.URL(model.VariantKey(imageID, variant))
	}

	// STEP 3: Variants
	payload := model.ProcessImagePayload{ImageID: imageID, Key: key}
	if s.queue != nil {
		if err := s.enqueue(ctx, payload); err == nil {
			result.Queued = true
		} else {
			logger.Warn("Failed to enqueue image processing, building variants inline", map[string]interface{}{
				"image_id": imageID,
				"error":    err.Error(),
			})
		}
	}
	if !result.Queued {
		if err := s.buildVariants(ctx, imageID, data); err != nil {
			logger.Error("Failed to build image variants", err)
		}
	}

	logger.Info("Image uploaded", map[string]interface{}{
		"image_id": imageID,
		"size":     len(data),
		"queued":   result.Queued,
	})
	return result, nil
}

// DeleteImage removes the original and all variants of an image
func (s *mediaService) DeleteImage(ctx context.Context, imageID string) error {
	if _, err := uuid.Parse(imageID); err != nil {
		return model.ErrInvalidImageID
	}
	if s.storage == nil {
		return model.ErrStorageUnavailable
	}

	removed, err := s.storage.DeleteByPrefix(ctx, model.Folder(imageID))
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}

	logger.Info("Image deleted", map[string]interface{}{
		"image_id": imageID,
		"objects":  removed,
	})
	return nil
}

// ProcessImage is run by the worker: download the original, upload variants
func (s *mediaService) ProcessImage(ctx context.Context, payload model.ProcessImagePayload) error {
	if s.storage == nil {
		return model.ErrStorageUnavailable
	}

	data, err := s.storage.Download(ctx, payload.Key)
	if err != nil {
		return fmt.Errorf("download original: %w", err)
	}

	return s.buildVariants(ctx, payload.ImageID, data)
}

func (s *mediaService) buildVariants(ctx context.Context, imageID string, data []byte) error {
	variants, err := s.processor.ProcessImage(data)
	if err != nil {
		return fmt.Errorf("process image: %w", err)
	}

	for name, body := range variants {
		if _, err := s.storage.Upload(ctx, model.VariantKey(imageID, name), body, "image/jpeg"); err != nil {
			return fmt.Errorf("upload %s variant: %w", name, err)
		}
	}
	return nil
}

func (s *mediaService) enqueue(ctx context.Context, payload model.ProcessImagePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(model.TypeProcessImage, body)
	if _, err := s.queue.EnqueueContext(ctx, task,
		asynq.Queue("default"),
		asynq.MaxRetry(processImageMaxRetry),
	); err != nil {
		return fmt.Errorf("enqueue %s: %w", model.TypeProcessImage, err)
	}
	return nil
}

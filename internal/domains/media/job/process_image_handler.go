package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"vitrine-backend/internal/domains/media/model"
	"vitrine-backend/internal/domains/media/service"
	"vitrine-backend/internal/infrastructure/storage"
)

// ProcessImageHandler builds and uploads the variants of an uploaded image
type ProcessImageHandler struct {
	mediaService service.ServiceInterface
}

func NewProcessImageHandler(mediaService service.ServiceInterface) *ProcessImageHandler {
	return &ProcessImageHandler{
		mediaService: mediaService,
	}
}

// ProcessTask handles media:process_image
func (h *ProcessImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.ProcessImagePayload

	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ProcessImage payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	if payload.ImageID == "" || payload.Key == "" {
		return fmt.Errorf("incomplete payload: %w", asynq.SkipRetry)
	}

	log.Info().
		Str("image_id", payload.ImageID).
		Msg("Processing image variants")

	if err := h.mediaService.ProcessImage(ctx, payload); err != nil {
		log.Error().
			Err(err).
			Str("image_id", payload.ImageID).
			Msg("Failed to process image")
		if errors.Is(err, storage.ErrImageTooLarge) || errors.Is(err, storage.ErrNotAnImage) {
			return fmt.Errorf("process image: %w: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("process image: %w", err)
	}

	log.Info().
		Str("image_id", payload.ImageID).
		Msg("Image variants processed successfully")

	return nil
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	mediaJob "vitrine-backend/internal/domains/media/job"
	mediaModel "vitrine-backend/internal/domains/media/model"
	mediaService "vitrine-backend/internal/domains/media/service"
	"vitrine-backend/internal/infrastructure/storage"
)

// HandlerRegistry holds the task handlers and the storage they share
type HandlerRegistry struct {
	Storage      *storage.MinIOStorage
	processImage *mediaJob.ProcessImageHandler
}

// initializeHandlers connects MinIO and builds the task handlers.
// Storage is mandatory here: every task reads and writes objects.
func initializeHandlers(ctx context.Context, cfg *Config) (*HandlerRegistry, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	store, err := storage.NewMinIOStorage(connectCtx, cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("connect media storage: %w", err)
	}

	// no queue: the worker never re-enqueues
	media := mediaService.NewMediaService(store, storage.NewImageProcessor(), nil)

	return &HandlerRegistry{
		Storage:      store,
		processImage: mediaJob.NewProcessImageHandler(media),
	}, nil
}

// RegisterHandlers maps task types to handlers
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(mediaModel.TypeProcessImage, h.processImage.ProcessTask)
}

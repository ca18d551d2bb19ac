package service

import (
	"context"

	"github.com/hibiken/asynq"

	"vitrine-backend/internal/domains/media/model"
)

type ServiceInterface interface {
	UploadImage(ctx context.Context, data []byte) (*model.UploadResult, error)
	DeleteImage(ctx context.Context, imageID string) error
	ProcessImage(ctx context.Context, payload model.ProcessImagePayload) error
}

// ObjectStorage is the subset of the MinIO client the media service needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
	URL(key string) string
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

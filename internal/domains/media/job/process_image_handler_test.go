package job

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"

	"vitrine-backend/internal/domains/media/model"
	"vitrine-backend/internal/infrastructure/storage"
)

type stubMediaService struct {
	processed []model.ProcessImagePayload
	err       error
}

func (s *stubMediaService) UploadImage(context.Context, []byte) (*model.UploadResult, error) {
	return nil, errors.New("not used")
}

func (s *stubMediaService) DeleteImage(context.Context, string) error {
	return errors.New("not used")
}

func (s *stubMediaService) ProcessImage(_ context.Context, payload model.ProcessImagePayload) error {
	s.processed = append(s.processed, payload)
	return s.err
}

func TestProcessImageHandler(t *testing.T) {
	svc := &stubMediaService{}
	h := NewProcessImageHandler(svc)
	ctx := context.Background()

	task := asynq.NewTask(model.TypeProcessImage, []byte(`{"image_id":"abc","key":"content/abc/original.png"}`))
	assert.NoError(t, h.ProcessTask(ctx, task))
	assert.Equal(t, []model.ProcessImagePayload{{ImageID: "abc", Key: "content/abc/original.png"}}, svc.processed)

	err := h.ProcessTask(ctx, asynq.NewTask(model.TypeProcessImage, []byte(`{broken`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = h.ProcessTask(ctx, asynq.NewTask(model.TypeProcessImage, []byte(`{"image_id":"abc"}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	svc.err = errors.New("minio timeout")
	err = h.ProcessTask(ctx, task)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)

	svc.err = fmt.Errorf("process image: %w", storage.ErrImageTooLarge)
	err = h.ProcessTask(ctx, task)
	assert.ErrorIs(t, err, storage.ErrImageTooLarge)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

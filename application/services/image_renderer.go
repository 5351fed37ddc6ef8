package services

import (
	"context"
	"fmt"

	"github.com/guillaumesimon/albert-news/application/ports/inbound"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/channel_utils"
	"github.com/guillaumesimon/albert-news/domain"
)

type imageRenderer struct {
	logger     outbound.LoggerPort
	renderer   outbound.ImageRendererPort
	workerPool outbound.TaskDispatcher
}

func NewImageRenderer(logger outbound.LoggerPort, renderer outbound.ImageRendererPort, workerPool outbound.TaskDispatcher) inbound.ImageRenderingPort {
	return &imageRenderer{
		logger:     logger,
		renderer:   renderer,
		workerPool: workerPool,
	}
}

// Render emits a single images event once both renders succeeded. Any render
// without output fails the whole stage.
func (i *imageRenderer) Render(ctx context.Context, request domain.PodcastRequest, prompts domain.ImagePromptSet,
	sink outbound.EventSinkPort) ([]domain.RenderedImage, error) {
	pending := domain.NewPendingImages(prompts)

	images, err := channel_utils.FanOut(ctx, i.workerPool, pending,
		func(ctx context.Context, index int, image domain.RenderedImage) (domain.RenderedImage, error) {
			urls, err := i.renderer.Render(ctx, image.Prompt)
			if err != nil {
				return image, fmt.Errorf("image %d rendering: %w", index+1, err)
			}
			if len(urls) == 0 || urls[0] == "" {
				return image, fmt.Errorf("image %d rendering: %w", index+1, domain.ErrMalformedRenderOutput)
			}
			image.URL = urls[0]
			return image, nil
		})
	if err != nil {
		return nil, err
	}

	i.logger.DebugWithFields("Rendered images", map[string]interface{}{
		"request_id": request.ID,
		"count":      len(images),
	})

	if err = sink.Emit(domain.NewImagesEvent(images)); err != nil {
		return nil, err
	}

	return images, nil
}

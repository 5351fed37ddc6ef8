package inbound

import (
	"context"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type ImageRenderingPort interface {
	Render(ctx context.Context, request domain.PodcastRequest, prompts domain.ImagePromptSet, sink outbound.EventSinkPort) ([]domain.RenderedImage, error)
}

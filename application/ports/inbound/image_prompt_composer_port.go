package inbound

import (
	"context"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type ImagePromptComposerPort interface {
	Compose(ctx context.Context, request domain.PodcastRequest, script string, sink outbound.EventSinkPort) (domain.ImagePromptSet, error)
}

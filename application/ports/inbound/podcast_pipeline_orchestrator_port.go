package inbound

import (
	"context"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

// PodcastPipelinePort runs every stage for one request. The sink always
// receives exactly one terminal event, complete or error, as its last event.
type PodcastPipelinePort interface {
	Run(ctx context.Context, request domain.PodcastRequest, sink outbound.EventSinkPort) (*domain.PodcastPackage, error)
}

package inbound

import (
	"context"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type EventClassifierPort interface {
	Classify(ctx context.Context, request domain.PodcastRequest, sink outbound.EventSinkPort) (domain.EventStatus, error)
}

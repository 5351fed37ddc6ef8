package inbound

import (
	"context"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type QuestionGeneratorPort interface {
	Generate(ctx context.Context, request domain.PodcastRequest, label domain.EventLabel, sink outbound.EventSinkPort) (domain.QuestionSet, error)
}

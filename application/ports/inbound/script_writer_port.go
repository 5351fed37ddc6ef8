package inbound

import (
	"context"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type ScriptWriterPort interface {
	Write(ctx context.Context, request domain.PodcastRequest, answers []domain.AnsweredQuestion, sink outbound.EventSinkPort) (string, error)
}

package inbound

import (
	"context"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

// ResearchAnswererPort returns the answers in question order.
type ResearchAnswererPort interface {
	Answer(ctx context.Context, request domain.PodcastRequest, questions domain.QuestionSet, sink outbound.EventSinkPort) ([]domain.AnsweredQuestion, error)
}

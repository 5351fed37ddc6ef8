package services

import (
	"context"
	"fmt"

	"github.com/guillaumesimon/albert-news/application/directives"
	"github.com/guillaumesimon/albert-news/application/ports/inbound"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type questionGenerator struct {
	logger    outbound.LoggerPort
	completer outbound.ChatCompletionPort
	language  string
}

func NewQuestionGenerator(logger outbound.LoggerPort, completer outbound.ChatCompletionPort, language string) inbound.QuestionGeneratorPort {
	return &questionGenerator{
		logger:    logger,
		completer: completer,
		language:  language,
	}
}

// Generate does not enforce the question count; callers must handle any
// length, including zero.
func (q *questionGenerator) Generate(ctx context.Context, request domain.PodcastRequest, label domain.EventLabel,
	sink outbound.EventSinkPort) (domain.QuestionSet, error) {
	directive := directives.Questions(q.language, request, label)

	result, err := q.completer.Complete(ctx, outbound.CompletionRequest{
		Purpose:     outbound.QuestionsPurpose,
		System:      directive.System,
		User:        directive.User,
		Temperature: outbound.Temperature(0.7),
		MaxTokens:   500,
	})
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	questions := domain.NewQuestionSet(result.Content)
	if len(questions) != directives.QuestionCount {
		q.logger.WarnWithFields("Unexpected question count", map[string]interface{}{
			"request_id": request.ID,
			"count":      len(questions),
		})
	}

	if err = sink.Emit(domain.NewPromptsEvent(questions, result.Model, directive.User)); err != nil {
		return nil, err
	}

	return questions, nil
}

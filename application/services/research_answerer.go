package services

import (
	"context"
	"fmt"

	"github.com/guillaumesimon/albert-news/application/directives"
	"github.com/guillaumesimon/albert-news/application/ports/inbound"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/channel_utils"
	"github.com/guillaumesimon/albert-news/domain"
)

type researchAnswerer struct {
	logger     outbound.LoggerPort
	researcher outbound.ChatCompletionPort
	workerPool outbound.TaskDispatcher
	language   string
}

func NewResearchAnswerer(logger outbound.LoggerPort, researcher outbound.ChatCompletionPort,
	workerPool outbound.TaskDispatcher, language string) inbound.ResearchAnswererPort {
	return &researchAnswerer{
		logger:     logger,
		researcher: researcher,
		workerPool: workerPool,
		language:   language,
	}
}

// Answer emits one response event per question as soon as its call returns.
func (r *researchAnswerer) Answer(ctx context.Context, request domain.PodcastRequest, questions domain.QuestionSet,
	sink outbound.EventSinkPort) ([]domain.AnsweredQuestion, error) {
	systemPrompt := directives.ResearchSystemPrompt(r.language)

	answers, err := channel_utils.FanOut(ctx, r.workerPool, questions,
		func(ctx context.Context, index int, question string) (domain.AnsweredQuestion, error) {
			result, err := r.researcher.Complete(ctx, outbound.CompletionRequest{
				Purpose: outbound.AnswerPurpose,
				System:  systemPrompt,
				User:    question,
			})
			if err != nil {
				return domain.AnsweredQuestion{}, fmt.Errorf("answer to question %d: %w", index+1, err)
			}

			answer := domain.AnsweredQuestion{
				Question:     question,
				Answer:       result.Content,
				Model:        result.Model,
				SystemPrompt: systemPrompt,
			}

			r.logger.DebugWithFields("Answered question", map[string]interface{}{
				"request_id": request.ID,
				"index":      index,
			})

			// No response frame once a sibling has failed.
			if ctx.Err() != nil {
				return domain.AnsweredQuestion{}, ctx.Err()
			}
			if err = sink.Emit(answer.ToEvent()); err != nil {
				return domain.AnsweredQuestion{}, err
			}
			return answer, nil
		})
	if err != nil {
		return nil, err
	}

	return answers, nil
}

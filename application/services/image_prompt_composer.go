package services

import (
	"context"
	"strings"
	"sync"

	"github.com/guillaumesimon/albert-news/application/directives"
	"github.com/guillaumesimon/albert-news/application/ports/inbound"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type imagePromptComposer struct {
	logger     outbound.LoggerPort
	completer  outbound.ChatCompletionPort
	workerPool outbound.TaskDispatcher
}

func NewImagePromptComposer(logger outbound.LoggerPort, completer outbound.ChatCompletionPort,
	workerPool outbound.TaskDispatcher) inbound.ImagePromptComposerPort {
	return &imagePromptComposer{
		logger:     logger,
		completer:  completer,
		workerPool: workerPool,
	}
}

// Compose never fails because of a prompt call: a failed or empty call is
// replaced by its placeholder.
func (c *imagePromptComposer) Compose(ctx context.Context, request domain.PodcastRequest, script string,
	sink outbound.EventSinkPort) (domain.ImagePromptSet, error) {
	var prompts domain.ImagePromptSet
	var wg sync.WaitGroup

	for i := range prompts {
		index := i
		wg.Add(1)
		err := c.workerPool.Submit(func() {
			defer wg.Done()
			prompts[index] = c.composeOne(ctx, request, script, index+1)
		})
		if err != nil {
			wg.Done()
			c.logger.ErrorWithFields(err, "Failed to submit image prompt task", map[string]interface{}{
				"request_id": request.ID,
				"ordinal":    index + 1,
			})
			prompts[index] = directives.ImagePromptPlaceholder(index + 1)
		}
	}
	wg.Wait()

	if err := sink.Emit(domain.NewImagePromptsEvent(prompts)); err != nil {
		return domain.ImagePromptSet{}, err
	}

	return prompts, nil
}

func (c *imagePromptComposer) composeOne(ctx context.Context, request domain.PodcastRequest, script string, ordinal int) (prompt string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.WarnWithFields("Image prompt call panicked", map[string]interface{}{
				"request_id": request.ID,
				"ordinal":    ordinal,
				"panic":      r,
			})
			prompt = directives.ImagePromptPlaceholder(ordinal)
		}
	}()

	directive := directives.ImagePrompt(script, ordinal)
	result, err := c.completer.Complete(ctx, outbound.CompletionRequest{
		Purpose:     outbound.ImagePromptPurpose,
		System:      directive.System,
		User:        directive.User,
		Temperature: outbound.Temperature(0.7),
		MaxTokens:   300,
	})
	if err != nil {
		c.logger.ErrorWithFields(err, "Image prompt generation failed", map[string]interface{}{
			"request_id": request.ID,
			"ordinal":    ordinal,
		})
		return directives.ImagePromptPlaceholder(ordinal)
	}

	content := strings.TrimSpace(result.Content)
	if content == "" {
		c.logger.WarnWithFields("Image prompt generation returned nothing", map[string]interface{}{
			"request_id": request.ID,
			"ordinal":    ordinal,
		})
		return directives.ImagePromptPlaceholder(ordinal)
	}
	return content
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/guillaumesimon/albert-news/application/directives"
	"github.com/guillaumesimon/albert-news/application/ports/inbound"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type scriptWriter struct {
	logger          outbound.LoggerPort
	scriptGenerator outbound.PodcastScriptGeneratorPort
	language        string
}

func NewScriptWriter(logger outbound.LoggerPort, scriptGenerator outbound.PodcastScriptGeneratorPort, language string) inbound.ScriptWriterPort {
	return &scriptWriter{
		logger:          logger,
		scriptGenerator: scriptGenerator,
		language:        language,
	}
}

func (s *scriptWriter) Write(ctx context.Context, request domain.PodcastRequest, answers []domain.AnsweredQuestion,
	sink outbound.EventSinkPort) (string, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	tokenCh, errCh := s.scriptGenerator.Generate(newCtx, outbound.GeneratePodcastScriptRequest{
		Prompt:      directives.PodcastScript(s.language, request, domain.AnswerTexts(answers)),
		Temperature: 0.7,
		MaxTokens:   1500,
	})

	var builder strings.Builder
	for tokenCh != nil || errCh != nil {
		select {
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			return "", fmt.Errorf("script generation: %w", err)
		case token, ok := <-tokenCh:
			if !ok {
				tokenCh = nil
				continue
			}
			builder.WriteString(token)
		case <-newCtx.Done():
			return "", fmt.Errorf("script generation: %w", newCtx.Err())
		}
	}

	script := strings.TrimSpace(builder.String())
	if script == "" {
		s.logger.WarnWithFields("Podcast script is empty", map[string]interface{}{
			"request_id": request.ID,
		})
	}

	s.logger.DebugWithFields("Generated podcast script", map[string]interface{}{
		"request_id": request.ID,
		"length":     len(script),
	})

	if err := sink.Emit(domain.NewPodcastScriptEvent(script)); err != nil {
		return "", err
	}

	return script, nil
}

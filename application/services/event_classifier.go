package services

import (
	"context"
	"fmt"
	"time"

	"github.com/guillaumesimon/albert-news/application/directives"
	"github.com/guillaumesimon/albert-news/application/ports/inbound"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type eventClassifier struct {
	logger      outbound.LoggerPort
	researcher  outbound.ChatCompletionPort
	categorizer outbound.ChatCompletionPort
	now         func() time.Time
}

func NewEventClassifier(logger outbound.LoggerPort, researcher outbound.ChatCompletionPort,
	categorizer outbound.ChatCompletionPort, now func() time.Time) inbound.EventClassifierPort {
	if now == nil {
		now = time.Now
	}
	return &eventClassifier{
		logger:      logger,
		researcher:  researcher,
		categorizer: categorizer,
		now:         now,
	}
}

func (e *eventClassifier) Classify(ctx context.Context, request domain.PodcastRequest, sink outbound.EventSinkPort) (domain.EventStatus, error) {
	analysis := directives.EventAnalysis(request.Topic, e.now())
	detailed, err := e.researcher.Complete(ctx, outbound.CompletionRequest{
		Purpose: outbound.EventAnalysisPurpose,
		System:  analysis.System,
		User:    analysis.User,
	})
	if err != nil {
		return domain.EventStatus{}, fmt.Errorf("event analysis: %w", err)
	}

	categorization := directives.Categorization(detailed.Content)
	category, err := e.categorizer.Complete(ctx, outbound.CompletionRequest{
		Purpose:     outbound.CategorizationPurpose,
		System:      categorization.System,
		User:        categorization.User,
		Temperature: outbound.Temperature(0),
		MaxTokens:   1,
	})
	if err != nil {
		return domain.EventStatus{}, fmt.Errorf("event categorization: %w", err)
	}

	status := domain.EventStatus{
		DetailedStatus:  detailed.Content,
		SimplifiedLabel: domain.ParseEventLabel(category.Content),
	}

	e.logger.DebugWithFields("Classified event", map[string]interface{}{
		"request_id": request.ID,
		"raw_label":  category.Content,
		"label":      status.SimplifiedLabel,
	})

	if err = sink.Emit(domain.NewEventStatusEvent(status, category.Model, directives.CategorizationInstruction)); err != nil {
		return domain.EventStatus{}, err
	}

	return status, nil
}

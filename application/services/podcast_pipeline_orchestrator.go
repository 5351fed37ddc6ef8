package services

import (
	"context"
	"fmt"
	"time"

	"github.com/guillaumesimon/albert-news/application/ports/inbound"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

type PipelineStage string

const (
	ClassifyStage     PipelineStage = "classify"
	QuestionsStage    PipelineStage = "questions"
	AnswerStage       PipelineStage = "answer"
	ScriptStage       PipelineStage = "script"
	ImagePromptsStage PipelineStage = "imagePrompts"
	RenderStage       PipelineStage = "render"
	CompleteStage     PipelineStage = "complete"
	ErrorStage        PipelineStage = "error"
)

type podcastPipelineOrchestrator struct {
	logger              outbound.LoggerPort
	eventClassifier     inbound.EventClassifierPort
	questionGenerator   inbound.QuestionGeneratorPort
	researchAnswerer    inbound.ResearchAnswererPort
	scriptWriter        inbound.ScriptWriterPort
	imagePromptComposer inbound.ImagePromptComposerPort
	imageRenderer       inbound.ImageRenderingPort
}

func NewPodcastPipelineOrchestrator(logger outbound.LoggerPort, eventClassifier inbound.EventClassifierPort,
	questionGenerator inbound.QuestionGeneratorPort, researchAnswerer inbound.ResearchAnswererPort,
	scriptWriter inbound.ScriptWriterPort, imagePromptComposer inbound.ImagePromptComposerPort,
	imageRenderer inbound.ImageRenderingPort) inbound.PodcastPipelinePort {
	return &podcastPipelineOrchestrator{
		logger:              logger,
		eventClassifier:     eventClassifier,
		questionGenerator:   questionGenerator,
		researchAnswerer:    researchAnswerer,
		scriptWriter:        scriptWriter,
		imagePromptComposer: imagePromptComposer,
		imageRenderer:       imageRenderer,
	}
}

// Run drives the stages in order. Whatever happens, the last event written to
// the sink is either complete or error, never both.
func (p *podcastPipelineOrchestrator) Run(ctx context.Context, request domain.PodcastRequest,
	sink outbound.EventSinkPort) (pkg *domain.PodcastPackage, err error) {
	start := time.Now()
	pkg = &domain.PodcastPackage{Request: request}
	stage := ClassifyStage

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s stage panicked: %v", stage, r)
		}
		fields := map[string]interface{}{
			"request_id": request.ID,
			"stage":      stage,
			"state":      CompleteStage,
			"elapsed_ms": time.Since(start).Milliseconds(),
		}
		if err != nil {
			fields["state"] = ErrorStage
			p.logger.ErrorWithFields(err, "Podcast pipeline failed", fields)
			if emitErr := sink.Emit(domain.NewErrorEvent(domain.ErrorMessage(err))); emitErr != nil {
				p.logger.ErrorWithFields(emitErr, "Failed to emit error event", fields)
			}
			return
		}
		if err = sink.Emit(domain.NewCompleteEvent()); err != nil {
			p.logger.ErrorWithFields(err, "Failed to emit complete event", fields)
			return
		}
		p.logger.InfoWithFields("Podcast pipeline completed", fields)
	}()

	p.logger.InfoWithFields("Podcast pipeline started", map[string]interface{}{
		"request_id": request.ID,
		"topic":      request.Topic,
		"country":    request.Country,
		"audience":   request.Audience,
	})

	if pkg.Status, err = p.eventClassifier.Classify(ctx, request, sink); err != nil {
		return pkg, err
	}

	stage = QuestionsStage
	if pkg.Questions, err = p.questionGenerator.Generate(ctx, request, pkg.Status.SimplifiedLabel, sink); err != nil {
		return pkg, err
	}

	stage = AnswerStage
	if pkg.Answers, err = p.researchAnswerer.Answer(ctx, request, pkg.Questions, sink); err != nil {
		return pkg, err
	}

	stage = ScriptStage
	if pkg.Script, err = p.scriptWriter.Write(ctx, request, pkg.Answers, sink); err != nil {
		return pkg, err
	}

	stage = ImagePromptsStage
	if pkg.ImagePrompts, err = p.imagePromptComposer.Compose(ctx, request, pkg.Script, sink); err != nil {
		return pkg, err
	}

	stage = RenderStage
	if pkg.Images, err = p.imageRenderer.Render(ctx, request, pkg.ImagePrompts, sink); err != nil {
		return pkg, err
	}

	return pkg, nil
}

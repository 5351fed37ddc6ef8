package mock_generator

import (
	"time"

	"github.com/guillaumesimon/albert-news/application/ports/inbound"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/application/services"
	"github.com/guillaumesimon/albert-news/infrastructure/gin_interface/controllers"
)

const MockRoute = "/generate/mock"

// NewPipeline wires the real stages to canned collaborators.
func NewPipeline(fixtures Fixtures, workerPool outbound.TaskDispatcher, language string, logger outbound.LoggerPort) inbound.PodcastPipelinePort {
	fake := &completer{fixtures: fixtures}

	return services.NewPodcastPipelineOrchestrator(logger,
		services.NewEventClassifier(logger, fake, fake, time.Now),
		services.NewQuestionGenerator(logger, fake, language),
		services.NewResearchAnswerer(logger, fake, workerPool, language),
		services.NewScriptWriter(logger, &scriptGenerator{fixtures: fixtures, workerPool: workerPool}, language),
		services.NewImagePromptComposer(logger, fake, workerPool),
		services.NewImageRenderer(logger, &imageRenderer{fixtures: fixtures}, workerPool),
	)
}

// Init builds the controller serving the offline route from the embedded
// fixtures.
func Init(workerPool outbound.TaskDispatcher, language string, keepAlive time.Duration,
	logger outbound.LoggerPort) (controllers.PodcastController, error) {
	fixtures, err := NewFixtureReader(logger, "").Read()
	if err != nil {
		return nil, err
	}

	pipeline := NewPipeline(fixtures, workerPool, language, logger)
	return controllers.NewPodcastController(logger, pipeline, keepAlive, MockRoute), nil
}

package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/guillaumesimon/albert-news/application/services"
	"github.com/guillaumesimon/albert-news/config"
	"github.com/guillaumesimon/albert-news/infrastructure/adapters"
	"github.com/guillaumesimon/albert-news/infrastructure/gin_interface"
	"github.com/guillaumesimon/albert-news/infrastructure/gin_interface/controllers"
	"github.com/guillaumesimon/albert-news/middleware"
	mockgenerator "github.com/guillaumesimon/albert-news/mock"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	level := adapters.ConfigureGlobalLogger(serverConfig.LogLevel, serverConfig.LogFormat)
	zeroLogger := adapters.NewZerologWrapperFrom(log.Logger.Level(level))

	completionConfig, err := config.GetCompletionConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get completion config")
	}

	researchConfig, err := config.GetResearchConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get research config")
	}

	replicateConfig, err := config.GetReplicateConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get replicate config")
	}

	authConfig, err := config.GetAuthConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get auth config")
	}

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	completer := adapters.NewChatCompleter(completionConfig, zeroLogger)
	researcher := adapters.NewChatCompleter(researchConfig, zeroLogger)
	scriptGenerator := adapters.NewPodcastScriptGenerator(completionConfig, workerPool, zeroLogger)
	imageRenderer := adapters.NewReplicateImageRenderer(replicateConfig, zeroLogger)

	language := serverConfig.ContentLanguage

	pipeline := services.NewPodcastPipelineOrchestrator(zeroLogger,
		services.NewEventClassifier(zeroLogger, researcher, completer, time.Now),
		services.NewQuestionGenerator(zeroLogger, completer, language),
		services.NewResearchAnswerer(zeroLogger, researcher, workerPool, language),
		services.NewScriptWriter(zeroLogger, scriptGenerator, language),
		services.NewImagePromptComposer(zeroLogger, completer, workerPool),
		services.NewImageRenderer(zeroLogger, imageRenderer, workerPool),
	)

	registrars := []gin_interface.RouteRegistrar{
		controllers.NewPodcastController(zeroLogger, pipeline, serverConfig.SseKeepAliveInterval),
	}

	if serverConfig.EnableMockRoute {
		mockController, err := mockgenerator.Init(workerPool, language, serverConfig.SseKeepAliveInterval, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create mock controller")
		}
		registrars = append(registrars, mockController)
	}

	var authHandler middleware.AuthHandler
	if authConfig.Enabled() {
		authHandler, err = middleware.NewAuthHandler(authConfig.JwksUrl)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
	}

	gin.SetMode(serverConfig.GinMode)
	router := gin_interface.NewRouter(authHandler, registrars...)

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	log.Info().
		Str("address", serverConfig.Address()).
		Str("completion_model", completionConfig.Model).
		Str("research_model", researchConfig.Model).
		Str("image_model", replicateConfig.Model).
		Bool("auth", authConfig.Enabled()).
		Msg("Starting podcast API")

	err = router.Run(serverConfig.Address())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

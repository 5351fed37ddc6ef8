package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guillaumesimon/albert-news/application/ports/inbound"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/infrastructure/adapters"
	"github.com/guillaumesimon/albert-news/infrastructure/gin_interface/dto"
)

var DefaultPodcastRoutes = []string{"/api/getInfo", "/generate"}

type PodcastController interface {
	CreatePodcast(c *gin.Context)
	RegisterRoutes(g gin.IRoutes)
}

type podcastController struct {
	logger    outbound.LoggerPort
	pipeline  inbound.PodcastPipelinePort
	keepAlive time.Duration
	routes    []string
}

func NewPodcastController(logger outbound.LoggerPort, pipeline inbound.PodcastPipelinePort,
	keepAlive time.Duration, routes ...string) PodcastController {
	if len(routes) == 0 {
		routes = DefaultPodcastRoutes
	}
	return &podcastController{
		logger:    logger,
		pipeline:  pipeline,
		keepAlive: keepAlive,
		routes:    routes,
	}
}

// CreatePodcast validates the body, then streams the pipeline events. Once the
// stream is open every outcome, failures included, is reported in-band.
func (p *podcastController) CreatePodcast(c *gin.Context) {
	var request dto.CreatePodcastRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: request.Problem(err).Error()})
		return
	}
	if err := request.Validate(); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	podcastRequest := request.ToDomain(uuid.NewString())

	sink := adapters.NewSSEEventSink(c.Writer, p.logger)
	defer sink.Close()

	sink.Open(ctx, p.keepAlive)

	pkg, err := p.pipeline.Run(ctx, podcastRequest, sink)
	if err != nil {
		return
	}

	p.logger.InfoWithFields("Podcast streamed", map[string]interface{}{
		"request_id": podcastRequest.ID,
		"questions":  len(pkg.Questions),
		"images":     len(pkg.Images),
	})
}

func (p *podcastController) RegisterRoutes(g gin.IRoutes) {
	for _, route := range p.routes {
		g.POST(route, p.CreatePodcast)
	}
}

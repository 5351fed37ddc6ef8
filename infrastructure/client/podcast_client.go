// Package client consumes the podcast event stream from the command line.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/donovanhide/eventsource"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/guillaumesimon/albert-news/config"
	"github.com/guillaumesimon/albert-news/domain"
)

// StreamError is an error frame received from the server.
type StreamError struct {
	Message string
}

func (e *StreamError) Error() string {
	return e.Message
}

type PodcastClient struct {
	client *resty.Client
}

func NewPodcastClient(cfg *config.ClientConfig) *PodcastClient {
	client := resty.New().
		SetBaseURL(cfg.ApiUrl).
		SetTimeout(cfg.Timeout).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)
	if cfg.ApiToken != "" {
		client.SetAuthToken(cfg.ApiToken)
	}
	return &PodcastClient{client: client}
}

type generateBody struct {
	Topic    string `json:"topic"`
	Country  string `json:"country"`
	Audience string `json:"audience"`
}

// Validate rejects what the server cannot work with before any request is
// sent.
func Validate(request domain.PodcastRequest) error {
	if strings.TrimSpace(request.Audience) == "" {
		return domain.ErrAudienceRequired
	}
	if strings.TrimSpace(request.Topic) == "" {
		return domain.ErrTopicRequired
	}
	return nil
}

// Generate streams the events of one run into view, calling onUpdate after
// each of them. Events received before a failure stay in the view.
func (p *PodcastClient) Generate(ctx context.Context, path string, request domain.PodcastRequest, view *PodcastView,
	onUpdate func(event domain.StreamEvent)) error {
	if err := Validate(request); err != nil {
		return err
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/event-stream").
		SetBody(generateBody{Topic: request.Topic, Country: request.Country, Audience: request.Audience}).
		SetDoNotParseResponse(true).
		Post(path)
	if err != nil {
		log.Debug().Err(err).Msg("podcast request failed")
		return errors.New(domain.UnexpectedErrorMessage)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		var problem struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(body)
		if sonic.Unmarshal(raw, &problem) == nil && problem.Error != "" {
			return errors.New(problem.Error)
		}
		return fmt.Errorf("server returned %d: %s", resp.StatusCode(), strings.TrimSpace(string(raw)))
	}

	return Consume(body, view, onUpdate)
}

// Consume reads `data:` frames until the terminal event. A stream that ends
// or breaks before it reports the generic unexpected error.
func Consume(r io.Reader, view *PodcastView, onUpdate func(event domain.StreamEvent)) error {
	decoder := eventsource.NewDecoder(r)
	for {
		ev, err := decoder.Decode()
		if err != nil {
			log.Debug().Err(err).Msg("event stream interrupted")
			return errors.New(domain.UnexpectedErrorMessage)
		}

		event, err := view.Apply(ev.Data())
		if err != nil {
			log.Debug().Err(err).Str("data", ev.Data()).Msg("skipping undecodable frame")
			continue
		}
		if onUpdate != nil {
			onUpdate(event)
		}

		switch event.Type {
		case domain.CompleteEventType:
			return nil
		case domain.ErrorEventType:
			return &StreamError{Message: view.Error}
		}
	}
}

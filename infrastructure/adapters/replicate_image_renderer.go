package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/config"
	"github.com/guillaumesimon/albert-news/domain"
)

const (
	predictionStarting   = "starting"
	predictionProcessing = "processing"
	predictionSucceeded  = "succeeded"
)

type predictionInput struct {
	Prompt            string  `json:"prompt"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	NegativePrompt    string  `json:"negative_prompt"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
}

type predictionRequest struct {
	Input predictionInput `json:"input"`
}

type prediction struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Output any    `json:"output"`
	Error  any    `json:"error"`
}

type replicateImageRenderer struct {
	logger outbound.LoggerPort
	config *config.ReplicateConfig
	client *resty.Client
}

func NewReplicateImageRenderer(cfg *config.ReplicateConfig, logger outbound.LoggerPort) outbound.ImageRendererPort {
	client := resty.New().
		SetBaseURL(cfg.ApiUrl).
		SetAuthToken(cfg.ApiToken).
		SetTimeout(cfg.Timeout).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	return &replicateImageRenderer{
		logger: logger,
		config: cfg,
		client: client,
	}
}

// Render creates a prediction with the fixed generation parameters and waits
// for its output URLs.
func (r *replicateImageRenderer) Render(ctx context.Context, prompt string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	start := time.Now()
	var p prediction
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "wait").
		SetBody(predictionRequest{Input: predictionInput{
			Prompt:            prompt,
			NumInferenceSteps: r.config.Steps,
			GuidanceScale:     r.config.GuidanceScale,
			NegativePrompt:    r.config.NegativePrompt,
			Width:             r.config.Width,
			Height:            r.config.Height,
		}}).
		SetResult(&p).
		Post(fmt.Sprintf("/models/%s/predictions", r.config.Model))
	if err != nil {
		r.logger.Error(err, "Prediction request failed")
		return nil, fmt.Errorf("create prediction: %w", err)
	}
	if resp.IsError() {
		r.logger.ErrorWithFields(nil, "Prediction request returned non-2xx", map[string]interface{}{
			"status": resp.StatusCode(),
			"body":   resp.String(),
		})
		return nil, fmt.Errorf("create prediction status %d: %s", resp.StatusCode(), resp.String())
	}

	for p.Status == predictionStarting || p.Status == predictionProcessing {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("prediction %s: %w", p.ID, ctx.Err())
		case <-time.After(r.config.PollInterval):
		}
		if p, err = r.getPrediction(ctx, p.ID); err != nil {
			return nil, err
		}
	}

	if p.Status != predictionSucceeded {
		return nil, fmt.Errorf("prediction %s %s: %w: %v", p.ID, p.Status, domain.ErrPredictionFailed, p.Error)
	}

	urls, err := outputURLs(p.Output)
	if err != nil {
		return nil, fmt.Errorf("prediction %s: %w", p.ID, err)
	}

	r.logger.DebugWithFields("Prediction succeeded", map[string]interface{}{
		"id":         p.ID,
		"images":     len(urls),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return urls, nil
}

func (r *replicateImageRenderer) getPrediction(ctx context.Context, id string) (prediction, error) {
	var p prediction
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&p).
		SetPathParam("id", id).
		Get("/predictions/{id}")
	if err != nil {
		return prediction{}, fmt.Errorf("get prediction %s: %w", id, err)
	}
	if resp.IsError() {
		return prediction{}, fmt.Errorf("get prediction %s status %d: %s", id, resp.StatusCode(), resp.String())
	}
	return p, nil
}

// outputURLs accepts only a non-empty list of strings.
func outputURLs(output any) ([]string, error) {
	items, ok := output.([]any)
	if !ok || len(items) == 0 {
		return nil, domain.ErrMalformedRenderOutput
	}
	urls := make([]string, 0, len(items))
	for _, item := range items {
		url, ok := item.(string)
		if !ok || url == "" {
			return nil, domain.ErrMalformedRenderOutput
		}
		urls = append(urls, url)
	}
	return urls, nil
}

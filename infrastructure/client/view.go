package client

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/guillaumesimon/albert-news/domain"
)

type wireEvent struct {
	Type   domain.StreamEventType `json:"type"`
	Data   json.RawMessage        `json:"data"`
	Model  string                 `json:"model"`
	Prompt string                 `json:"prompt"`
}

// PodcastView is what a client has received so far. Answers are slotted
// next to their question by text, images next to their prompt by position.
type PodcastView struct {
	Status       *domain.EventStatus
	Questions    []string
	Answers      map[string]domain.AnsweredQuestion
	Script       string
	ImagePrompts []string
	Images       []domain.RenderedImage
	Error        string
	Complete     bool
}

func NewPodcastView() *PodcastView {
	return &PodcastView{Answers: make(map[string]domain.AnsweredQuestion)}
}

// Apply decodes one frame payload and folds it into the view.
func (v *PodcastView) Apply(data string) (domain.StreamEvent, error) {
	var wire wireEvent
	if err := sonic.UnmarshalString(data, &wire); err != nil {
		return domain.StreamEvent{}, fmt.Errorf("decode frame: %w", err)
	}
	event := domain.StreamEvent{Type: wire.Type, Model: wire.Model, Prompt: wire.Prompt}

	var err error
	switch wire.Type {
	case domain.EventStatusEventType:
		var status domain.EventStatus
		err = sonic.Unmarshal(wire.Data, &status)
		v.Status, event.Data = &status, status
	case domain.PromptsEventType:
		err = sonic.Unmarshal(wire.Data, &v.Questions)
		event.Data = v.Questions
	case domain.ResponseEventType:
		var answer domain.AnsweredQuestion
		err = sonic.Unmarshal(wire.Data, &answer)
		v.Answers[answer.Question] = answer
		event.Data = answer
	case domain.PodcastScriptEventType:
		err = sonic.Unmarshal(wire.Data, &v.Script)
		event.Data = v.Script
	case domain.ImagePromptsEventType:
		err = sonic.Unmarshal(wire.Data, &v.ImagePrompts)
		v.Images = make([]domain.RenderedImage, len(v.ImagePrompts))
		for i, prompt := range v.ImagePrompts {
			v.Images[i] = domain.RenderedImage{Prompt: prompt}
		}
		event.Data = v.ImagePrompts
	case domain.ImagesEventType:
		var urls []string
		err = sonic.Unmarshal(wire.Data, &urls)
		for i, url := range urls {
			if i < len(v.Images) {
				v.Images[i].URL = url
			} else {
				v.Images = append(v.Images, domain.RenderedImage{URL: url})
			}
		}
		event.Data = urls
	case domain.ErrorEventType:
		var message string
		if len(wire.Data) > 0 {
			err = sonic.Unmarshal(wire.Data, &message)
		}
		if message == "" {
			message = domain.UnexpectedErrorMessage
		}
		v.Error = message
		event.Data = v.Error
	case domain.CompleteEventType:
		v.Complete = true
	default:
		return event, fmt.Errorf("unknown event type %q", wire.Type)
	}
	if err != nil {
		return event, fmt.Errorf("decode %s payload: %w", wire.Type, err)
	}
	return event, nil
}

// OrderedAnswers lists the answers received so far in question order.
func (v *PodcastView) OrderedAnswers() []domain.AnsweredQuestion {
	answers := make([]domain.AnsweredQuestion, 0, len(v.Answers))
	for _, question := range v.Questions {
		if answer, ok := v.Answers[question]; ok {
			answers = append(answers, answer)
		}
	}
	return answers
}

package domain

type StreamEventType string

const (
	EventStatusEventType   StreamEventType = "eventStatus"
	PromptsEventType       StreamEventType = "prompts"
	ResponseEventType      StreamEventType = "response"
	PodcastScriptEventType StreamEventType = "podcastScript"
	ImagePromptsEventType  StreamEventType = "imagePrompts"
	ImagesEventType        StreamEventType = "images"
	ErrorEventType         StreamEventType = "error"
	CompleteEventType      StreamEventType = "complete"
)

// StreamEvent is the JSON payload of one `data:` frame.
type StreamEvent struct {
	Type   StreamEventType `json:"type"`
	Data   any             `json:"data,omitempty"`
	Model  string          `json:"model,omitempty"`
	Prompt string          `json:"prompt,omitempty"`
}

func (s StreamEvent) Terminal() bool {
	return s.Type == CompleteEventType || s.Type == ErrorEventType
}

func NewEventStatusEvent(status EventStatus, model string, prompt string) StreamEvent {
	return StreamEvent{
		Type:   EventStatusEventType,
		Data:   status,
		Model:  model,
		Prompt: prompt,
	}
}

func NewPromptsEvent(questions QuestionSet, model string, prompt string) StreamEvent {
	return StreamEvent{
		Type:   PromptsEventType,
		Data:   append([]string{}, questions...),
		Model:  model,
		Prompt: prompt,
	}
}

func (a AnsweredQuestion) ToEvent() StreamEvent {
	return StreamEvent{
		Type: ResponseEventType,
		Data: a,
	}
}

func NewPodcastScriptEvent(script string) StreamEvent {
	return StreamEvent{
		Type: PodcastScriptEventType,
		Data: script,
	}
}

func NewImagePromptsEvent(prompts ImagePromptSet) StreamEvent {
	return StreamEvent{
		Type: ImagePromptsEventType,
		Data: []string{prompts[0], prompts[1]},
	}
}

// NewImagesEvent carries only the URLs, positionally aligned with the
// preceding imagePrompts event.
func NewImagesEvent(images []RenderedImage) StreamEvent {
	urls := make([]string, len(images))
	for i, image := range images {
		urls[i] = image.URL
	}
	return StreamEvent{
		Type: ImagesEventType,
		Data: urls,
	}
}

func NewErrorEvent(message string) StreamEvent {
	return StreamEvent{
		Type: ErrorEventType,
		Data: message,
	}
}

func NewCompleteEvent() StreamEvent {
	return StreamEvent{Type: CompleteEventType}
}

package domain

import "strings"

type EventLabel string

const (
	PastEventLabel   EventLabel = "past"
	FutureEventLabel EventLabel = "future"
	NoEventLabel     EventLabel = "none"
)

// ParseEventLabel maps a categorizer answer onto one of the three labels.
// Anything empty or unrecognized is NoEventLabel.
func ParseEventLabel(raw string) EventLabel {
	switch EventLabel(strings.ToLower(strings.TrimSpace(raw))) {
	case PastEventLabel:
		return PastEventLabel
	case FutureEventLabel:
		return FutureEventLabel
	default:
		return NoEventLabel
	}
}

type PodcastRequest struct {
	ID       string
	Topic    string
	Country  string
	Audience string
}

func NewPodcastRequest(id string, topic string, country string, audience string) PodcastRequest {
	return PodcastRequest{
		ID:       id,
		Topic:    topic,
		Country:  country,
		Audience: audience,
	}
}

type EventStatus struct {
	DetailedStatus  string     `json:"detailedStatus"`
	SimplifiedLabel EventLabel `json:"simplifiedLabel"`
}

type QuestionSet []string

// NewQuestionSet splits a newline-delimited completion into questions,
// keeping order and dropping blank lines and exact repeats.
func NewQuestionSet(raw string) QuestionSet {
	questions := make(QuestionSet, 0)
	seen := make(map[string]struct{})
	for _, line := range strings.Split(raw, "\n") {
		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}
		if _, ok := seen[question]; ok {
			continue
		}
		seen[question] = struct{}{}
		questions = append(questions, question)
	}
	return questions
}

type AnsweredQuestion struct {
	Question     string `json:"prompt"`
	Answer       string `json:"response"`
	Model        string `json:"model"`
	SystemPrompt string `json:"systemPrompt"`
}

type ImagePromptSet [2]string

type RenderedImage struct {
	Prompt string `json:"prompt"`
	URL    string `json:"url"`
}

func (r RenderedImage) Pending() bool {
	return r.URL == ""
}

func NewPendingImages(prompts ImagePromptSet) []RenderedImage {
	images := make([]RenderedImage, len(prompts))
	for i, prompt := range prompts {
		images[i] = RenderedImage{Prompt: prompt}
	}
	return images
}

// PodcastPackage holds everything one pipeline run produced. It lives only
// for the duration of the request.
type PodcastPackage struct {
	Request      PodcastRequest
	Status       EventStatus
	Questions    QuestionSet
	Answers      []AnsweredQuestion
	Script       string
	ImagePrompts ImagePromptSet
	Images       []RenderedImage
}

func (p PodcastPackage) AnswerTexts() []string {
	return AnswerTexts(p.Answers)
}

// AnswerTexts keeps the given order, which is question order.
func AnswerTexts(answers []AnsweredQuestion) []string {
	texts := make([]string, 0, len(answers))
	for _, answer := range answers {
		texts = append(texts, answer.Answer)
	}
	return texts
}

package dto

import (
	"strings"

	"github.com/guillaumesimon/albert-news/domain"
)

// CreatePodcastRequest accepts any country or audience string; membership in
// the known lists is only checked by clients.
type CreatePodcastRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Country  string `json:"country"`
	Audience string `json:"audience" binding:"required"`
}

func (r CreatePodcastRequest) ToDomain(id string) domain.PodcastRequest {
	country := strings.TrimSpace(r.Country)
	if country == "" {
		country = domain.DefaultCountry
	}
	return domain.NewPodcastRequest(id, strings.TrimSpace(r.Topic), country, strings.TrimSpace(r.Audience))
}

// Validate rejects values that only pass the binding check because they are
// whitespace.
func (r CreatePodcastRequest) Validate() error {
	if strings.TrimSpace(r.Audience) == "" {
		return domain.ErrAudienceRequired
	}
	if strings.TrimSpace(r.Topic) == "" {
		return domain.ErrTopicRequired
	}
	return nil
}

// Problem turns a binding failure into the message returned to the caller.
// Fields are decoded before validation runs, so missing ones can be named.
func (r CreatePodcastRequest) Problem(bindErr error) error {
	switch {
	case strings.TrimSpace(r.Audience) == "" && strings.TrimSpace(r.Topic) != "":
		return domain.ErrAudienceRequired
	case strings.TrimSpace(r.Topic) == "" && strings.TrimSpace(r.Audience) != "":
		return domain.ErrTopicRequired
	default:
		return bindErr
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

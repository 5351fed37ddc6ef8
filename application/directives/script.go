package directives

import (
	"fmt"
	"strings"

	"github.com/guillaumesimon/albert-news/domain"
)

type audienceProfile struct {
	description string
	guidance    string
}

var audienceProfiles = map[string]audienceProfile{
	domain.PrimarySchoolAudience: {
		description: "aged 6 to 11",
		guidance:    "Use simple words, short explanations and analogies taken from their everyday life.",
	},
	domain.HighSchoolAudience: {
		description: "aged 12 to 18",
		guidance:    "Include more details, interesting facts and links with their studies or current events.",
	},
	domain.TechSavvyAudience: {
		description: "passionate about technology",
		guidance:    "Use the appropriate technical terms and refer to innovation and current trends.",
	},
	domain.ElderlyAudience: {
		description: "over 65 years old",
		guidance:    "Use clear language, avoid jargon, and connect the topic with history or their life experience.",
	},
	domain.YoungAdultsAudience: {
		description: "curious young adults between 18 and 30",
		guidance:    "Adopt a dynamic tone, include interesting anecdotes and practical applications of the topic.",
	},
}

// AudienceDescription falls back to the raw audience for values outside the
// known list.
func AudienceDescription(audience string) string {
	if profile, ok := audienceProfiles[audience]; ok {
		return profile.description
	}
	return audience
}

func AudienceGuidance(audience string) string {
	if profile, ok := audienceProfiles[audience]; ok {
		return profile.guidance
	}
	return "Adapt vocabulary, framing and depth to this audience."
}

// PodcastScript builds the synthesis prompt. Answers are joined in the given
// order.
func PodcastScript(language string, request domain.PodcastRequest, answers []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are an educational podcast scriptwriter for an audience %s living in %s. ",
		AudienceDescription(request.Audience), request.Country))
	sb.WriteString(fmt.Sprintf("Use the following information to write an educational and entertaining podcast script in %s. ", language))
	sb.WriteString("The script must be engaging and adapted to the level of understanding of this specific audience.\n\n")
	sb.WriteString("Audience guidance: ")
	sb.WriteString(AudienceGuidance(request.Audience))
	sb.WriteString("\n\nInclude interactive elements or rhetorical questions to keep the listener's attention. ")
	sb.WriteString("The script should last about 5 minutes when read aloud.\n\n")
	sb.WriteString("Information to use: ")
	sb.WriteString(strings.Join(answers, " "))
	sb.WriteString("\n\nSuggested format:\n")
	sb.WriteString("1. A catchy introduction adapted to the audience\n")
	sb.WriteString("2. Presentation of the main topic\n")
	sb.WriteString("3. The key points, developed for this audience\n")
	sb.WriteString("4. Interactive elements or rhetorical questions\n")
	sb.WriteString("5. A conclusion summarizing the main points and encouraging reflection or action\n\n")
	sb.WriteString("Start directly with the script, without any additional explanation.")
	return sb.String()
}

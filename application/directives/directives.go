// Package directives builds the instructions sent to the language models.
// Branching on the event label and on the audience goes through lookup
// tables so the text can be checked without calling any model.
package directives

import (
	"fmt"
	"strings"
	"time"

	"github.com/guillaumesimon/albert-news/domain"
)

type Directive struct {
	System string
	User   string
}

const (
	EventAnalysisSystem = "You are an assistant that analyzes if a topic is related to an event and determines if it's past or upcoming."

	CategorizationSystem = "You are an assistant that categorizes event statuses into simple, single-word responses."

	// CategorizationInstruction is also reported as provenance of the eventStatus event.
	CategorizationInstruction = `Based on the following event status description, categorize it as either "past", "future", or "none". Respond with only one of these three words.`

	PastOnlyInstruction   = "Since this is a past event, focus only on what happened, the outcomes and the impact. Do not include any questions about future expectations or what is going to happen."
	FutureOnlyInstruction = "Since this is an upcoming event, focus only on the expectations, the preparations and what could happen. Do not include any questions about what has already happened."
	GeneralInstruction    = "Since this is not a specific event or its timing is uncertain, ask general questions about the topic. Questions can use the present tense."

	QuestionCount = 5
)

type labelDirective struct {
	systemSuffix string
	instruction  string
}

var labelDirectives = map[domain.EventLabel]labelDirective{
	domain.PastEventLabel: {
		systemSuffix: "The topic is a past event. Adapt the questions accordingly.",
		instruction:  PastOnlyInstruction,
	},
	domain.FutureEventLabel: {
		systemSuffix: "The topic is an upcoming event. Adapt the questions accordingly.",
		instruction:  FutureOnlyInstruction,
	},
	domain.NoEventLabel: {
		systemSuffix: "The topic is not a specific event or its timing is uncertain. Questions may use the present tense.",
		instruction:  GeneralInstruction,
	},
}

func EventAnalysis(topic string, today time.Time) Directive {
	return Directive{
		System: EventAnalysisSystem,
		User: fmt.Sprintf("Is the topic %q related to an event? If so, is it past or upcoming compared to today (%s)? Provide a brief explanation.",
			topic, today.Format("2006-01-02")),
	}
}

func Categorization(detailedStatus string) Directive {
	return Directive{
		System: CategorizationSystem,
		User:   fmt.Sprintf("%s\n\nDescription: %s", CategorizationInstruction, detailedStatus),
	}
}

func Questions(language string, request domain.PodcastRequest, label domain.EventLabel) Directive {
	branch, ok := labelDirectives[label]
	if !ok {
		branch = labelDirectives[domain.NoEventLabel]
	}

	system := fmt.Sprintf("You are an assistant that writes questions to explain a topic to a specific audience in %s. "+
		"Write %d relevant questions or prompts that will gather easy-to-understand information about a given topic. "+
		"Adapt the questions for a %s audience living in %s. %s",
		language, QuestionCount, request.Audience, request.Country, branch.systemSuffix)

	var user strings.Builder
	user.WriteString(fmt.Sprintf("Write %d questions or prompts in %s to explain %q to a %s audience living in %s. ",
		QuestionCount, language, request.Topic, request.Audience, request.Country))
	user.WriteString(branch.instruction)
	user.WriteString(fmt.Sprintf(" The questions must match the level of understanding and the interests of a %s audience. "+
		"Make sure every question is consistent with the timing of the event (past, future or present) and relevant for this audience living in %s. "+
		"Reply only with the numbered list of questions, one per line, without any other text.",
		request.Audience, request.Country))

	return Directive{System: system, User: user.String()}
}

func ResearchSystemPrompt(language string) string {
	return fmt.Sprintf("You are a helpful assistant who explains concepts to a 9-year-old child in %s. Use simple language and concrete examples.", language)
}

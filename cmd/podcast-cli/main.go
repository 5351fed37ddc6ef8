package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/guillaumesimon/albert-news/config"
	"github.com/guillaumesimon/albert-news/domain"
	"github.com/guillaumesimon/albert-news/infrastructure/adapters"
	"github.com/guillaumesimon/albert-news/infrastructure/client"
)

var (
	topicFlag    string
	countryFlag  string
	audienceFlag string
	routeFlag    string
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:           "podcast-cli",
	Short:         "Generate educational podcast packages from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Stream a podcast package for a topic",
	Long: `Generate asks the podcast API for a package on a topic and prints every
artifact as soon as it arrives: event status, questions, answers, script,
image prompts and images.

Examples:
  podcast-cli generate --topic "French Revolution" --audience "High school children"
  podcast-cli generate -t "Volcanoes" -a "Elderly" -c Japon
  podcast-cli generate -t "Volcanoes" -a "Elderly" --route /generate/mock`,
	RunE: runGenerate,
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the known countries and audiences",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Countries:")
		for _, country := range domain.Countries {
			fmt.Printf("  %s\n", country)
		}
		fmt.Println("Audiences:")
		for _, audience := range domain.Audiences {
			fmt.Printf("  %s\n", audience)
		}
	},
}

func init() {
	generateCmd.Flags().StringVarP(&topicFlag, "topic", "t", "", "Topic of the podcast")
	generateCmd.Flags().StringVarP(&countryFlag, "country", "c", domain.DefaultCountry, "Country of the audience")
	generateCmd.Flags().StringVarP(&audienceFlag, "audience", "a", "", "Target audience")
	generateCmd.Flags().StringVar(&routeFlag, "route", "/api/getInfo", "API route to call")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logs")

	rootCmd.AddCommand(generateCmd, optionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\n[error] %s\n", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	level := "warn"
	if verboseFlag {
		level = "debug"
	}
	adapters.ConfigureGlobalLogger(level, "console")

	request := domain.NewPodcastRequest("", topicFlag, countryFlag, audienceFlag)
	if err := client.Validate(request); err != nil {
		return err
	}
	if !domain.IsKnownAudience(request.Audience) {
		log.Warn().Str("audience", request.Audience).Msg("Audience is not in the known list")
	}
	if !domain.IsKnownCountry(request.Country) {
		log.Warn().Str("country", request.Country).Msg("Country is not in the known list")
	}

	clientConfig, err := config.GetClientConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view := client.NewPodcastView()
	err = client.NewPodcastClient(clientConfig).Generate(ctx, routeFlag, request, view, func(event domain.StreamEvent) {
		printEvent(view, event)
	})

	var streamErr *client.StreamError
	if errors.As(err, &streamErr) {
		log.Debug().Int("answers", len(view.Answers)).Bool("script", view.Script != "").Msg("Stream ended with an error")
	}
	return err
}

func printEvent(view *client.PodcastView, event domain.StreamEvent) {
	switch event.Type {
	case domain.EventStatusEventType:
		fmt.Printf("== Event status: %s\n%s\n\n", view.Status.SimplifiedLabel, view.Status.DetailedStatus)
	case domain.PromptsEventType:
		fmt.Println("== Questions")
		for _, question := range view.Questions {
			fmt.Printf("  %s\n", question)
		}
		fmt.Println()
	case domain.ResponseEventType:
		answer := event.Data.(domain.AnsweredQuestion)
		fmt.Printf("== %s\n%s\n\n", answer.Question, answer.Answer)
	case domain.PodcastScriptEventType:
		fmt.Printf("== Script\n%s\n\n", view.Script)
	case domain.ImagePromptsEventType:
		fmt.Println("== Image prompts")
		for i, prompt := range view.ImagePrompts {
			fmt.Printf("  %d. %s\n", i+1, prompt)
		}
		fmt.Println()
	case domain.ImagesEventType:
		fmt.Println("== Images")
		for i, image := range view.Images {
			fmt.Printf("  %d. %s\n", i+1, image.URL)
		}
	case domain.CompleteEventType:
		fmt.Println(strings.Repeat("=", 20) + " done")
	}
}

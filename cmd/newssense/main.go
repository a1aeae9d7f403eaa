// Command newssense routes natural-language news queries to one of three
// task assistants and renders the result on a console loop or a terminal
// chat widget.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"newssense/agents"
	"newssense/components"
	"newssense/internal/config"
	"newssense/internal/tui"
	"newssense/render"
	"newssense/session"
	"newssense/tools"
	"newssense/tools/customsearch"
	"newssense/tools/gnews"
	"newssense/tools/summarize"
)

func main() {
	chatMode := flag.Bool("chat", false, "run the terminal chat widget")
	demoMode := flag.Bool("demo", false, "run the canned demo queries and exit")
	offline := flag.Bool("offline", false, "classify with keywords instead of the LLM")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration", zap.Error(err))
	}

	ctx := context.Background()
	ctrl := newController(cfg, logger, *offline)
	sess := session.NewContext("", nil)

	switch {
	case *chatMode:
		if err := tui.Run(ctx, ctrl, sess, logger); err != nil {
			logger.Fatal("chat widget", zap.Error(err))
		}
	case *demoMode:
		runDemo(ctx, ctrl, sess, logger)
	default:
		consoleLoop(ctx, ctrl, sess, logger)
	}
}

// newController wires the classifier, the three tools and their assistants.
func newController(cfg *config.Config, logger *zap.Logger, offline bool) *agents.Controller {
	toolHooks := []tools.Option{
		tools.WithStartHook(func(_ context.Context, tool string, _ any) {
			logger.Debug("tool start", zap.String("tool", tool))
		}),
		tools.WithEndHook(func(_ context.Context, tool string, _ any, _ any) {
			logger.Debug("tool end", zap.String("tool", tool))
		}),
		tools.WithErrorHook(func(_ context.Context, tool string, _ any, err error) {
			logger.Warn("tool degraded", zap.String("tool", tool), zap.Error(err))
		}),
	}

	newsTool := gnews.New(
		gnews.WithAPIKey(cfg.GNewsAPIKey),
		gnews.WithToolOptions(toolHooks...),
	)
	searchTool := customsearch.New(
		customsearch.WithAPIKey(cfg.GoogleAPIKey),
		customsearch.WithSearchEngineID(cfg.SearchEngineID),
		customsearch.WithToolOptions(toolHooks...),
	)
	summarizeTool := summarize.New(
		summarize.WithCompleter(summarize.NewOpenAICompleter(newOpenAIClient(cfg), cfg.ModelName)),
		summarize.WithToolOptions(toolHooks...),
	)

	var classifier agents.Classifier
	if offline {
		classifier = agents.NewKeywordClassifier()
	} else {
		llmClassifier := agents.NewLLMClassifier(
			agents.WithClient(newInstructor(cfg)),
			agents.WithModel(cfg.ModelName),
			agents.WithTemperature(0),
			agents.WithMaxTokens(500),
			agents.WithName("NewsSense Controller"),
		)
		llmClassifier.SetResponseHook(func(resp *components.ApiResponse) {
			if resp.Usage != nil {
				logger.Debug("classifier call",
					zap.String("model", resp.Model),
					zap.Int("input_tokens", resp.Usage.InputTokens),
					zap.Int("output_tokens", resp.Usage.OutputTokens),
				)
			}
		})
		classifier = llmClassifier
	}

	return agents.NewController(
		classifier,
		agents.NewTrendingAssistant(newsTool),
		agents.NewFactCheckAssistant(searchTool),
		agents.NewSummaryAssistant(summarizeTool),
	)
}

// consoleLoop reads utterances from stdin and prints rendered results.
func consoleLoop(ctx context.Context, ctrl *agents.Controller, sess *session.Context, logger *zap.Logger) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("User: ")
		txt, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		txt = strings.TrimSpace(txt)
		if txt == "" {
			continue
		}
		if txt == "/exit" || txt == "/quit" {
			break
		}
		result, err := ctrl.Route(ctx, txt, sess)
		if err != nil {
			logger.Error("turn failed", zap.Error(err))
			fmt.Println("Agent: Sorry, something went wrong. Please try again.")
			continue
		}
		fmt.Printf("Agent:\n%s\n", render.Text(result))
	}
}

// runDemo replays the three canonical queries against the live controller.
func runDemo(ctx context.Context, ctrl *agents.Controller, sess *session.Context, logger *zap.Logger) {
	sess.SetPreferredTopics([]string{"tech", "politics"})
	queries := []string{
		"What's trending in tech today?",
		"Did Apple acquire OpenAI?",
		"Summarize this article: OpenAI expands GPT access to new platforms",
	}
	for _, query := range queries {
		fmt.Println("\n" + strings.Repeat("=", 40))
		fmt.Printf("User: %s\n", query)
		fmt.Println(strings.Repeat("=", 40))
		result, err := ctrl.Route(ctx, query, sess)
		if err != nil {
			logger.Error("turn failed", zap.String("query", query), zap.Error(err))
			continue
		}
		fmt.Printf("\nAgent Response:\n%s\n", render.Text(result))
	}
}

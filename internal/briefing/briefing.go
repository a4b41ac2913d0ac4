// Package briefing produces a short analyst-style situation summary from the
// current dashboard statistics and recent alerts.
package briefing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/cerberus-watch/cerberus/internal/models"
)

// Generator produces a threat briefing for the dashboard.
type Generator interface {
	Generate(ctx context.Context, stats models.Stats, recent []models.Notification) (string, error)
}

// OpenAIGenerator builds briefings with the OpenAI chat API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIGenerator creates a generator using the given API key and model.
func NewOpenAIGenerator(apiKey, model string, logger *slog.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

const systemPrompt = "You are a protective-intelligence analyst. Given threat " +
	"statistics and recent alerts for monitored public figures, write a concise " +
	"situation briefing in plain prose. Lead with the overall picture, then call " +
	"out the most urgent items. No markdown, no preamble."

// Generate calls the chat API with the stats and recent alerts rendered into
// the prompt.
func (g *OpenAIGenerator) Generate(ctx context.Context, stats models.Stats, recent []models.Notification) (string, error) {
	apiCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(apiCtx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(stats, recent),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("briefing generation failed: %w", err)
	}

	g.logger.Info("briefing generated",
		"duration_ms", time.Since(start).Milliseconds(),
		"total_tokens", resp.Usage.TotalTokens)

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("briefing generation returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(stats models.Stats, recent []models.Notification) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current totals: %d threats (%d fake posts, %d deepfakes, %d hacked accounts, %d news mentions).\n",
		stats.TotalThreats, stats.FakePosts, stats.Deepfakes, stats.HackedTweets, stats.NewsMentions)
	fmt.Fprintf(&b, "Risk distribution: %d high, %d medium, %d low.\n",
		stats.RiskDistribution.High, stats.RiskDistribution.Medium, stats.RiskDistribution.Low)

	if len(recent) > 0 {
		b.WriteString("Most recent alerts:\n")
		for i, n := range recent {
			if i >= 10 {
				break
			}
			target := ""
			if n.Details != nil {
				target = n.Details.TargetVIP
			}
			fmt.Fprintf(&b, "- [%s] %s (target: %s, risk: %s)\n", n.Type, n.Message, target, n.RiskLevel)
		}
	}

	return b.String()
}

// RuleBasedGenerator produces a deterministic briefing without AI calls.
// Used when no API key is configured, and in tests.
type RuleBasedGenerator struct{}

// NewRuleBasedGenerator creates the fallback generator.
func NewRuleBasedGenerator() *RuleBasedGenerator {
	return &RuleBasedGenerator{}
}

// Generate renders a fixed-form summary from the tallies.
func (g *RuleBasedGenerator) Generate(ctx context.Context, stats models.Stats, recent []models.Notification) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Monitoring %d active threats: %d fake posts, %d deepfakes, %d hacked accounts, %d news mentions. ",
		stats.TotalThreats, stats.FakePosts, stats.Deepfakes, stats.HackedTweets, stats.NewsMentions)
	fmt.Fprintf(&b, "%d are rated high risk, %d medium, %d low.",
		stats.RiskDistribution.High, stats.RiskDistribution.Medium, stats.RiskDistribution.Low)

	if len(recent) > 0 {
		top := recent[0]
		fmt.Fprintf(&b, " Latest alert: %s.", top.Message)
	}

	return b.String(), nil
}

var (
	_ Generator = (*OpenAIGenerator)(nil)
	_ Generator = (*RuleBasedGenerator)(nil)
)

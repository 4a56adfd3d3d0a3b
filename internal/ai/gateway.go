package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/safespacehq/safespace-service/internal/config"
	"github.com/safespacehq/safespace-service/internal/types"
)

// Source tags which branch produced an outcome, so the fail-open
// (no credential) versus fail-closed (call failed) split stays visible to
// callers and tests instead of hiding inside default values.
type Source int

const (
	// SourceModel marks a value produced by the external model.
	SourceModel Source = iota
	// SourceNoCredential marks the documented default served when no API key
	// is configured. No network call is made on this path.
	SourceNoCredential
	// SourceError marks the fallback served after a transport or parse
	// failure.
	SourceError
)

// ModerationOutcome carries the safety verdict. Failure is treated as unsafe
// (fail-closed); a missing credential is treated as safe (fail-open). The
// asymmetry is intentional: missing configuration is not a moderation failure.
type ModerationOutcome struct {
	Result types.ModerationResult
	Source Source
}

// TagOutcome carries up to MaxStoryTags emotion tags. Tagging fails soft:
// an error yields no tags and never blocks the surrounding workflow.
type TagOutcome struct {
	Tags   []types.EmotionTag
	Source Source
}

// CommentOutcome carries a renderable supportive message on every path.
type CommentOutcome struct {
	Text   string
	Source Source
}

// Generator is the minimal surface the gateway needs from the text model.
// Tests substitute fakes; production uses the Gemini client.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error)
}

// Gateway exposes the three stateless AI operations: moderate, tag, comment.
// A Gateway with no generator is valid and serves the no-credential defaults.
type Gateway struct {
	generator Generator
}

// NewGateway builds a Gateway backed by Gemini. An empty API key is not an
// error: the resulting Gateway serves its documented defaults without ever
// calling out.
func NewGateway(ctx context.Context, cfg config.Gemini) (*Gateway, error) {
	if cfg.APIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, AI gateway running on fallback responses")
		return &Gateway{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}

	return &Gateway{generator: &geminiGenerator{client: client, model: cfg.Model}}, nil
}

// NewGatewayWithGenerator wires a custom generator, used by tests.
func NewGatewayWithGenerator(generator Generator) *Gateway {
	return &Gateway{generator: generator}
}

// Configured reports whether the gateway has a live model behind it.
func (g *Gateway) Configured() bool {
	return g.generator != nil
}

// Moderate screens story text for harmful content before publication.
func (g *Gateway) Moderate(ctx context.Context, story string) ModerationOutcome {
	if g.generator == nil {
		return ModerationOutcome{
			Result: types.ModerationResult{IsSafe: true, Reason: ModerationSkippedReason},
			Source: SourceNoCredential,
		}
	}

	raw, err := g.generator.GenerateContent(ctx, moderationPrompt(story), moderationConfig())
	if err != nil {
		slog.Error("moderation check failed", slog.String("error", err.Error()))
		return moderationFailure()
	}

	var result types.ModerationResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &result); err != nil {
		slog.Error("moderation response unparseable", slog.String("error", err.Error()))
		return moderationFailure()
	}

	return ModerationOutcome{Result: result, Source: SourceModel}
}

func moderationFailure() ModerationOutcome {
	return ModerationOutcome{
		Result: types.ModerationResult{IsSafe: false, Reason: ModerationErrorReason},
		Source: SourceError,
	}
}

// TagEmotions asks the model for up to three dominant emotions from the fixed
// enumeration. Unknown values the model hallucinates are stripped.
func (g *Gateway) TagEmotions(ctx context.Context, story string) TagOutcome {
	if g.generator == nil {
		return TagOutcome{Tags: DefaultTags(), Source: SourceNoCredential}
	}

	raw, err := g.generator.GenerateContent(ctx, taggingPrompt(story), taggingConfig())
	if err != nil {
		slog.Error("story tagging failed", slog.String("error", err.Error()))
		return TagOutcome{Tags: []types.EmotionTag{}, Source: SourceError}
	}

	var parsed struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		slog.Error("tagging response unparseable", slog.String("error", err.Error()))
		return TagOutcome{Tags: []types.EmotionTag{}, Source: SourceError}
	}

	return TagOutcome{Tags: FilterTags(parsed.Tags), Source: SourceModel}
}

// FilterTags keeps only values from the fixed emotion enumeration, capped at
// MaxStoryTags, preserving the model's order.
func FilterTags(raw []string) []types.EmotionTag {
	tags := make([]types.EmotionTag, 0, types.MaxStoryTags)
	for _, candidate := range raw {
		tag := types.EmotionTag(candidate)
		if !tag.Valid() {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == types.MaxStoryTags {
			break
		}
	}
	return tags
}

// DefaultTags is the fixed pair served when no credential is configured.
func DefaultTags() []types.EmotionTag {
	return []types.EmotionTag{types.TagHealing, types.TagHope}
}

// SupportComment generates a short supportive, non-advisory message in the
// requested tone.
func (g *Gateway) SupportComment(ctx context.Context, story string, tone types.CommentTone) CommentOutcome {
	if g.generator == nil {
		return CommentOutcome{Text: CommentNoCredentialText, Source: SourceNoCredential}
	}

	raw, err := g.generator.GenerateContent(ctx, commentPrompt(story, tone), commentConfig())
	if err != nil {
		slog.Error("comment generation failed", slog.String("error", err.Error()))
		return CommentOutcome{Text: CommentErrorText, Source: SourceError}
	}

	return CommentOutcome{Text: strings.TrimSpace(raw), Source: SourceModel}
}

// geminiGenerator adapts the genai client to the Generator interface.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) GenerateContent(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

package ai

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/safespacehq/safespace-service/internal/types"
)

// Fixed fallback strings. The success reason for moderation comes from the
// model itself and is instructed to be ModerationSafeReason, so the error
// reason below stays distinguishable from a clean verdict.
const (
	ModerationSkippedReason = "Moderation skipped: API key not configured."
	ModerationSafeReason    = "Content is safe."
	ModerationErrorReason   = "Could not perform moderation check due to a technical error."

	CommentNoCredentialText = "This is a journey, and you are taking brave steps on its path. Remember to be kind to yourself."
	CommentErrorText        = "There was an error generating a comment, but please know that your story is valued."
)

func moderationPrompt(story string) string {
	return fmt.Sprintf(`Analyze the following user-submitted story for harmful content. Check for suicidal ideation, self-harm, graphic violence, hate speech, or severe trolling. The story should be respectful and safe for a mental health support community. Respond in JSON format with two fields: "isSafe" (boolean) and "reason" (a brief explanation if not safe, otherwise %q). Story: %q`, ModerationSafeReason, story)
}

func moderationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"isSafe": {Type: genai.TypeBoolean},
				"reason": {Type: genai.TypeString},
			},
		},
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(0))},
	}
}

func taggingPrompt(story string) string {
	labels := make([]string, len(types.EmotionTags))
	for i, tag := range types.EmotionTags {
		labels[i] = string(tag)
	}
	return fmt.Sprintf(`Analyze the following story and identify up to three dominant emotions from this list: %s. The story is about a personal mental health journey. Focus on the core feelings expressed. Story: %q`, strings.Join(labels, ", "), story)
}

func taggingConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"tags": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "An array of up to 3 emotion tags from the provided list.",
				},
			},
		},
	}
}

func toneInstruction(tone types.CommentTone) string {
	switch tone {
	case types.ToneMotivational:
		return "be uplifting and motivational, focusing on strength and resilience."
	case types.ToneReflective:
		return "be calm and reflective, offering a gentle perspective."
	default:
		return "be gentle and comforting."
	}
}

func commentPrompt(story string, tone types.CommentTone) string {
	return fmt.Sprintf(`A person shared this story: %q. Please write a short, anonymous, supportive comment for them. Your response should be 1-2 sentences long. Your tone should %s The comment must be validating and non-judgmental. Do not offer advice. Simply provide a message of support.`, story, toneInstruction(tone))
}

func commentConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(0))},
	}
}

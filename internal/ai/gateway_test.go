package ai

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/safespacehq/safespace-service/internal/types"
)

// fakeGenerator returns a canned response or error and counts calls.
type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestModerate_NoCredential(t *testing.T) {
	gateway := &Gateway{}

	outcome := gateway.Moderate(context.Background(), "any text")
	if !outcome.Result.IsSafe {
		t.Fatal("Expected missing credential to fail open")
	}
	if outcome.Source != SourceNoCredential {
		t.Fatalf("Expected SourceNoCredential, got %v", outcome.Source)
	}
	if outcome.Result.Reason != ModerationSkippedReason {
		t.Fatalf("Unexpected reason: %q", outcome.Result.Reason)
	}
}

func TestModerate_CallFailureFailsClosed(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("boom")}
	gateway := NewGatewayWithGenerator(generator)

	outcome := gateway.Moderate(context.Background(), "any text")
	if outcome.Result.IsSafe {
		t.Fatal("Expected call failure to fail closed")
	}
	if outcome.Source != SourceError {
		t.Fatalf("Expected SourceError, got %v", outcome.Source)
	}
	if outcome.Result.Reason == ModerationSafeReason {
		t.Fatal("Failure reason must be distinguishable from the success reason")
	}
	if outcome.Result.Reason != ModerationErrorReason {
		t.Fatalf("Unexpected reason: %q", outcome.Result.Reason)
	}
}

func TestModerate_UnparseableResponseFailsClosed(t *testing.T) {
	generator := &fakeGenerator{response: "not json"}
	gateway := NewGatewayWithGenerator(generator)

	outcome := gateway.Moderate(context.Background(), "any text")
	if outcome.Result.IsSafe || outcome.Source != SourceError {
		t.Fatalf("Expected fail-closed outcome, got %+v", outcome)
	}
}

func TestModerate_ParsesVerdict(t *testing.T) {
	generator := &fakeGenerator{response: `{"isSafe": false, "reason": "hate speech"}`}
	gateway := NewGatewayWithGenerator(generator)

	outcome := gateway.Moderate(context.Background(), "some story")
	if outcome.Source != SourceModel {
		t.Fatalf("Expected SourceModel, got %v", outcome.Source)
	}
	if outcome.Result.IsSafe {
		t.Fatal("Expected unsafe verdict")
	}
	if outcome.Result.Reason != "hate speech" {
		t.Fatalf("Unexpected reason: %q", outcome.Result.Reason)
	}
}

func TestTagEmotions_NoCredentialDefaultPair(t *testing.T) {
	gateway := &Gateway{}

	outcome := gateway.TagEmotions(context.Background(), "any text")
	if outcome.Source != SourceNoCredential {
		t.Fatalf("Expected SourceNoCredential, got %v", outcome.Source)
	}
	if len(outcome.Tags) != 2 || outcome.Tags[0] != types.TagHealing || outcome.Tags[1] != types.TagHope {
		t.Fatalf("Expected default pair [Healing Journey, Hope], got %v", outcome.Tags)
	}
}

func TestTagEmotions_FailsSoft(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("boom")}
	gateway := NewGatewayWithGenerator(generator)

	outcome := gateway.TagEmotions(context.Background(), "any text")
	if outcome.Source != SourceError {
		t.Fatalf("Expected SourceError, got %v", outcome.Source)
	}
	if len(outcome.Tags) != 0 {
		t.Fatalf("Expected no tags on failure, got %v", outcome.Tags)
	}
}

func TestTagEmotions_StripsHallucinatedTags(t *testing.T) {
	generator := &fakeGenerator{response: `{"tags": ["Hope", "Unicorn"]}`}
	gateway := NewGatewayWithGenerator(generator)

	outcome := gateway.TagEmotions(context.Background(), "some story")
	if outcome.Source != SourceModel {
		t.Fatalf("Expected SourceModel, got %v", outcome.Source)
	}
	if len(outcome.Tags) != 1 || outcome.Tags[0] != types.TagHope {
		t.Fatalf("Expected [Hope], got %v", outcome.Tags)
	}
}

func TestFilterTags_CapsAtThree(t *testing.T) {
	tags := FilterTags([]string{"Hope", "Courage", "Sadness", "Relief"})
	if len(tags) != types.MaxStoryTags {
		t.Fatalf("Expected %d tags, got %d", types.MaxStoryTags, len(tags))
	}
}

func TestSupportComment_NoCredential(t *testing.T) {
	gateway := &Gateway{}

	outcome := gateway.SupportComment(context.Background(), "any text", types.ToneMotivational)
	if outcome.Source != SourceNoCredential {
		t.Fatalf("Expected SourceNoCredential, got %v", outcome.Source)
	}
	if outcome.Text != CommentNoCredentialText {
		t.Fatalf("Unexpected fallback text: %q", outcome.Text)
	}
}

func TestSupportComment_ErrorFallback(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("boom")}
	gateway := NewGatewayWithGenerator(generator)

	outcome := gateway.SupportComment(context.Background(), "any text", types.ToneComforting)
	if outcome.Source != SourceError {
		t.Fatalf("Expected SourceError, got %v", outcome.Source)
	}
	if outcome.Text != CommentErrorText {
		t.Fatalf("Unexpected fallback text: %q", outcome.Text)
	}
}

func TestSupportComment_TrimsModelText(t *testing.T) {
	generator := &fakeGenerator{response: "  You are not alone in this.  \n"}
	gateway := NewGatewayWithGenerator(generator)

	outcome := gateway.SupportComment(context.Background(), "some story", types.ToneReflective)
	if outcome.Text != "You are not alone in this." {
		t.Fatalf("Expected trimmed text, got %q", outcome.Text)
	}
}

func TestNoCredentialPathsNeverCallOut(t *testing.T) {
	// A gateway without a generator would panic if any path tried to call
	// out, but count explicitly with a generator-free gateway anyway.
	gateway := &Gateway{}

	gateway.Moderate(context.Background(), "text")
	gateway.TagEmotions(context.Background(), "text")
	gateway.SupportComment(context.Background(), "text", types.ToneComforting)

	if gateway.Configured() {
		t.Fatal("Gateway without credential must not report as configured")
	}
}

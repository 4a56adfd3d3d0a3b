package submission

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/safespacehq/safespace-service/internal/ai"
	"github.com/safespacehq/safespace-service/internal/storage/memory"
	"github.com/safespacehq/safespace-service/internal/types"
)

type fakeGenerator struct {
	moderation string
	tags       string
	err        error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if strings.Contains(prompt, "harmful content") {
		return f.moderation, nil
	}
	return f.tags, nil
}

func longContent() string {
	return strings.Repeat("Every day feels a little lighter. ", 6) // 204 chars
}

func newService(store *memory.Memory, generator *fakeGenerator) *Service {
	return NewService(store, ai.NewGatewayWithGenerator(generator), 0)
}

func TestSubmit_TooShortNeverCallsOut(t *testing.T) {
	store := memory.NewMemory(nil)
	generator := &fakeGenerator{err: errors.New("must not be called")}
	svc := newService(store, generator)

	_, err := svc.Submit(context.Background(), types.StoryPostRequest{
		Topic:   types.TopicGeneral,
		Content: "too short",
	}, nil)

	if !errors.Is(err, ErrContentTooShort) {
		t.Fatalf("Expected ErrContentTooShort, got %v", err)
	}
	if store.Count() != 0 {
		t.Fatalf("Expected no story created, got %d", store.Count())
	}
}

func TestSubmit_PaddingDoesNotCount(t *testing.T) {
	store := memory.NewMemory(nil)
	svc := newService(store, &fakeGenerator{err: errors.New("must not be called")})

	content := strings.Repeat(" ", 200) + "short" + strings.Repeat(" ", 200)
	_, err := svc.Submit(context.Background(), types.StoryPostRequest{
		Topic:   types.TopicGeneral,
		Content: content,
	}, nil)

	if !errors.Is(err, ErrContentTooShort) {
		t.Fatalf("Expected ErrContentTooShort for padded content, got %v", err)
	}
}

func TestSubmit_ModerationRejectionCreatesNothing(t *testing.T) {
	store := memory.NewMemory(memory.SeedStories())
	before := store.Count()

	svc := newService(store, &fakeGenerator{
		moderation: `{"isSafe": false, "reason": "graphic violence"}`,
	})

	var states []State
	_, err := svc.Submit(context.Background(), types.StoryPostRequest{
		Topic:   types.TopicGeneral,
		Content: longContent(),
	}, func(s State) { states = append(states, s) })

	rejected, ok := IsRejection(err)
	if !ok {
		t.Fatalf("Expected RejectedError, got %v", err)
	}
	if rejected.Reason != "graphic violence" {
		t.Fatalf("Unexpected reason: %q", rejected.Reason)
	}
	if store.Count() != before {
		t.Fatalf("Expected story count unchanged, got %d", store.Count())
	}
	if states[len(states)-1] != StateRejected {
		t.Fatalf("Expected terminal state rejected, got %v", states)
	}
}

func TestSubmit_ModerationErrorRejects(t *testing.T) {
	store := memory.NewMemory(nil)
	svc := newService(store, &fakeGenerator{err: errors.New("transport down")})

	_, err := svc.Submit(context.Background(), types.StoryPostRequest{
		Topic:   types.TopicGeneral,
		Content: longContent(),
	}, nil)

	if _, ok := IsRejection(err); !ok {
		t.Fatalf("Expected fail-closed rejection, got %v", err)
	}
	if store.Count() != 0 {
		t.Fatal("Expected no story on moderation failure")
	}
}

func TestSubmit_Success(t *testing.T) {
	store := memory.NewMemory(memory.SeedStories())
	before := store.Count()
	start := time.Now()

	svc := newService(store, &fakeGenerator{
		moderation: `{"isSafe": true, "reason": "Content is safe."}`,
		tags:       `{"tags": ["Healing Journey", "Hope"]}`,
	})

	var states []State
	story, err := svc.Submit(context.Background(), types.StoryPostRequest{
		Alias:   "",
		Topic:   types.TopicHealing,
		Content: longContent(),
	}, func(s State) { states = append(states, s) })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if store.Count() != before+1 {
		t.Fatalf("Expected exactly one new story, got %d", store.Count()-before)
	}
	feed := store.List()
	if feed[0].ID != story.ID {
		t.Fatal("Expected the new story first in the feed")
	}
	if story.Alias != types.DefaultAlias {
		t.Fatalf("Expected blank alias to default to %q, got %q", types.DefaultAlias, story.Alias)
	}
	if story.Topic != types.TopicHealing {
		t.Fatalf("Unexpected topic %q", story.Topic)
	}
	if len(story.Tags) != 2 || story.Tags[0] != types.TagHealing || story.Tags[1] != types.TagHope {
		t.Fatalf("Expected tags [Healing Journey, Hope], got %v", story.Tags)
	}
	for _, kind := range types.ReactionKinds {
		if story.Reactions[kind] != 0 {
			t.Fatalf("Expected zeroed counter for %s, got %d", kind, story.Reactions[kind])
		}
	}
	if story.CreatedAt.Before(start) {
		t.Fatal("Expected creation timestamp at or after submission start")
	}
	if story.ID == "" {
		t.Fatal("Expected a fresh story id")
	}

	want := []State{StateModerating, StateTagging, StateFinalizing, StateDone}
	if len(states) != len(want) {
		t.Fatalf("Expected states %v, got %v", want, states)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("Expected states %v, got %v", want, states)
		}
	}
}

func TestSubmit_TaggingFailureStillPublishes(t *testing.T) {
	store := memory.NewMemory(nil)

	// Moderation parses, tagging returns junk the parser rejects.
	svc := newService(store, &fakeGenerator{
		moderation: `{"isSafe": true, "reason": "Content is safe."}`,
		tags:       `nonsense`,
	})

	story, err := svc.Submit(context.Background(), types.StoryPostRequest{
		Alias:   "Quiet",
		Topic:   types.TopicLoneliness,
		Content: longContent(),
	}, nil)
	if err != nil {
		t.Fatalf("Tagging failure must not block publication: %v", err)
	}
	if len(story.Tags) != 0 {
		t.Fatalf("Expected no tags, got %v", story.Tags)
	}
	if store.Count() != 1 {
		t.Fatalf("Expected story published, got %d", store.Count())
	}
}

func TestSubmit_BlankTopicDefaultsToGeneral(t *testing.T) {
	store := memory.NewMemory(nil)
	svc := newService(store, &fakeGenerator{
		moderation: `{"isSafe": true, "reason": "Content is safe."}`,
		tags:       `{"tags": []}`,
	})

	story, err := svc.Submit(context.Background(), types.StoryPostRequest{
		Content: longContent(),
	}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if story.Topic != types.TopicGeneral {
		t.Fatalf("Expected General, got %q", story.Topic)
	}
}

package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/safespacehq/safespace-service/internal/ai"
	"github.com/safespacehq/safespace-service/internal/storage"
	"github.com/safespacehq/safespace-service/internal/types"
)

// State names one step of the submit workflow.
type State string

const (
	StateEditing    State = "editing"
	StateModerating State = "moderating"
	StateTagging    State = "tagging"
	StateFinalizing State = "finalizing"
	StateDone       State = "done"
	StateRejected   State = "rejected"
	StateErrored    State = "errored"
)

// ErrContentTooShort is returned before any network call when the trimmed
// content is under the minimum length. The submission stays editable.
var ErrContentTooShort = fmt.Errorf("story must be at least %d characters long", types.MinContentLength)

// RejectedError is the terminal outcome of an unsafe moderation verdict.
// No story is created.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "this story cannot be published. Reason: " + e.Reason
}

// StepFunc observes state transitions, used by the HTTP layer for progress
// reporting. May be nil.
type StepFunc func(state State)

// Service runs the submit workflow: editing -> moderating -> tagging ->
// finalizing -> done, with rejected and errored terminal branches. Story
// creation is all-or-nothing; nothing reaches the store before finalizing
// completes.
type Service struct {
	store     storage.Storage
	gateway   *ai.Gateway
	stepDelay time.Duration
}

func NewService(store storage.Storage, gateway *ai.Gateway, stepDelay time.Duration) *Service {
	return &Service{
		store:     store,
		gateway:   gateway,
		stepDelay: stepDelay,
	}
}

// Submit validates, moderates, tags and publishes one story. On success the
// returned story is already in the store, first in the feed, with all three
// reaction counters at zero.
func (s *Service) Submit(ctx context.Context, req types.StoryPostRequest, observe StepFunc) (types.Story, error) {
	step := func(state State) {
		if observe != nil {
			observe(state)
		}
	}

	content := req.TrimmedContent()
	if len([]rune(content)) < types.MinContentLength {
		step(StateEditing)
		return types.Story{}, ErrContentTooShort
	}

	topic := req.Topic
	if topic == "" {
		topic = types.TopicGeneral
	}
	if !topic.Valid() {
		step(StateEditing)
		return types.Story{}, fmt.Errorf("unknown topic %q", topic)
	}

	step(StateModerating)
	s.pace(ctx)
	moderation := s.gateway.Moderate(ctx, content)
	if err := ctx.Err(); err != nil {
		step(StateErrored)
		return types.Story{}, err
	}
	if !moderation.Result.IsSafe {
		step(StateRejected)
		return types.Story{}, &RejectedError{Reason: moderation.Result.Reason}
	}

	step(StateTagging)
	s.pace(ctx)
	// Tagging never blocks publication: an errored outcome carries no tags
	// and that is acceptable.
	tagging := s.gateway.TagEmotions(ctx, content)
	if err := ctx.Err(); err != nil {
		step(StateErrored)
		return types.Story{}, err
	}

	step(StateFinalizing)
	s.pace(ctx)
	alias := strings.TrimSpace(req.Alias)
	if alias == "" {
		alias = types.DefaultAlias
	}

	story := types.Story{
		ID:        uuid.NewString(),
		Alias:     alias,
		Topic:     topic,
		Content:   content,
		Tags:      tagging.Tags,
		Reactions: types.NewReactionCounts(),
		CreatedAt: time.Now(),
	}
	s.store.Add(story)

	step(StateDone)
	slog.Info("story published",
		slog.String("story_id", story.ID),
		slog.String("topic", string(story.Topic)),
		slog.Int("tags", len(story.Tags)))

	return story, nil
}

// IsRejection reports whether err is a moderation rejection and returns the
// surfaced reason.
func IsRejection(err error) (*RejectedError, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected, true
	}
	return nil, false
}

func (s *Service) pace(ctx context.Context) {
	if s.stepDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.stepDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

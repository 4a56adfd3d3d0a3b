package events

import (
	"github.com/safespacehq/safespace-service/internal/types"
)

// Publisher interface for publishing events
type Publisher interface {
	PublishStoryCreated(story types.Story) error
	PublishStoryReacted(storyID string, kind types.ReactionKind, count int) error
	PublishCommentGenerated(storyID string, tone types.CommentTone) error
}

// Broadcaster is the surface the publisher needs from the WebSocket hub.
type Broadcaster interface {
	Broadcast(event *types.Event)
}

// EventPublisher implements the Publisher interface
type EventPublisher struct {
	hub Broadcaster
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(hub Broadcaster) *EventPublisher {
	return &EventPublisher{
		hub: hub,
	}
}

// PublishStoryCreated announces a new story to everyone watching the feed
func (p *EventPublisher) PublishStoryCreated(story types.Story) error {
	eventData := &types.StoryCreatedEvent{
		StoryID: story.ID,
		Topic:   story.Topic,
		Alias:   story.Alias,
	}

	p.hub.Broadcast(types.NewEvent(types.EventStoryCreated, eventData))
	return nil
}

// PublishStoryReacted announces an incremented reaction counter
func (p *EventPublisher) PublishStoryReacted(storyID string, kind types.ReactionKind, count int) error {
	eventData := &types.StoryReactedEvent{
		StoryID: storyID,
		Kind:    kind,
		Count:   count,
	}

	p.hub.Broadcast(types.NewEvent(types.EventStoryReacted, eventData))
	return nil
}

// PublishCommentGenerated announces that a supportive comment was produced
func (p *EventPublisher) PublishCommentGenerated(storyID string, tone types.CommentTone) error {
	eventData := &types.CommentGeneratedEvent{
		StoryID: storyID,
		Tone:    tone,
	}

	p.hub.Broadcast(types.NewEvent(types.EventCommentGenerated, eventData))
	return nil
}

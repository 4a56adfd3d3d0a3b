package types

import "time"

// EventType represents the type of real-time event
type EventType string

const (
	EventStoryCreated     EventType = "story.created"
	EventStoryReacted     EventType = "story.reacted"
	EventCommentGenerated EventType = "comment.generated"
)

// Event represents a real-time event that can be sent over WebSocket
type Event struct {
	Type      EventType   `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// StoryCreatedEvent announces a freshly published story to the feed
type StoryCreatedEvent struct {
	StoryID string `json:"story_id"`
	Topic   Topic  `json:"topic"`
	Alias   string `json:"alias"`
}

// StoryReactedEvent announces a reaction counter increment
type StoryReactedEvent struct {
	StoryID string       `json:"story_id"`
	Kind    ReactionKind `json:"kind"`
	Count   int          `json:"count"`
}

// CommentGeneratedEvent announces that a supportive comment was produced
type CommentGeneratedEvent struct {
	StoryID string      `json:"story_id"`
	Tone    CommentTone `json:"tone"`
}

// NewEvent creates a new event with the current timestamp
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

package storage

import "github.com/safespacehq/safespace-service/internal/types"

// Storage is the full mutation and read surface of the story store. Stories
// are never updated or deleted; the only write operations are Add and a
// single-counter reaction increment.
type Storage interface {
	// List returns all stories newest-first by creation time, ties kept in
	// insertion order.
	List() []types.Story

	// Get returns the story with the given id.
	Get(storyID string) (types.Story, bool)

	// Add prepends a fully formed story. Validation happens upstream in the
	// submission workflow; the store trusts its input.
	Add(story types.Story)

	// IncrementReaction bumps exactly one counter by 1. An unknown id is a
	// no-op and reports false; it never errors.
	IncrementReaction(storyID string, kind types.ReactionKind) bool
}

// FilterByTopic returns the subset of stories matching topic, preserving
// order. The TopicAll sentinel returns the input unchanged.
func FilterByTopic(stories []types.Story, topic types.Topic) []types.Story {
	if topic == types.TopicAll {
		return stories
	}
	filtered := make([]types.Story, 0, len(stories))
	for _, story := range stories {
		if story.Topic == topic {
			filtered = append(filtered, story)
		}
	}
	return filtered
}

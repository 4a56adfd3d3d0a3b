package memory

import (
	"sort"
	"sync"

	"github.com/safespacehq/safespace-service/internal/types"
)

// Memory is the in-process story store. The whole collection lives for the
// lifetime of the running service and is lost on restart, which is the
// intended scope of this system.
type Memory struct {
	mu      sync.RWMutex
	stories []types.Story
}

// NewMemory creates a store seeded with the given bootstrap stories,
// ordered newest-first.
func NewMemory(seed []types.Story) *Memory {
	stories := make([]types.Story, len(seed))
	for i, story := range seed {
		stories[i] = story.Clone()
	}
	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].CreatedAt.After(stories[j].CreatedAt)
	})
	return &Memory{stories: stories}
}

func (m *Memory) List() []types.Story {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Story, len(m.stories))
	for i, story := range m.stories {
		out[i] = story.Clone()
	}
	return out
}

func (m *Memory) Get(storyID string) (types.Story, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, story := range m.stories {
		if story.ID == storyID {
			return story.Clone(), true
		}
	}
	return types.Story{}, false
}

func (m *Memory) Add(story types.Story) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stories = append([]types.Story{story.Clone()}, m.stories...)
}

func (m *Memory) IncrementReaction(storyID string, kind types.ReactionKind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.stories {
		if m.stories[i].ID == storyID {
			m.stories[i].Reactions[kind]++
			return true
		}
	}
	return false
}

// Count returns the number of stored stories.
func (m *Memory) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.stories)
}

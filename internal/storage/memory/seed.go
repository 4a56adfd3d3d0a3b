package memory

import (
	"time"

	"github.com/safespacehq/safespace-service/internal/types"
)

// SeedStories returns the fixed bootstrap stories every fresh process starts
// with, so the feed is never empty on first load.
func SeedStories() []types.Story {
	now := time.Now()
	return []types.Story{
		{
			ID:      "1",
			Alias:   "Wanderer",
			Topic:   types.TopicAnxiety,
			Content: "The weight of my classes is crushing me. Every exam feels like a verdict on my future, and I can't seem to catch my breath. It's a constant battle between wanting to succeed and feeling paralyzed by the fear of failure. Sometimes, I just stare at my books, and the words blur into an incomprehensible mess. It's isolating because everyone else seems to be handling it so well. I just want to feel normal again, to enjoy learning without this suffocating pressure.",
			Tags:    []types.EmotionTag{types.TagAnxiety, types.TagStress, types.TagLoneliness},
			Reactions: map[types.ReactionKind]int{
				types.ReactionRelate:    12,
				types.ReactionLove:      25,
				types.ReactionBeenThere: 18,
			},
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:      "2",
			Alias:   "Stargazer",
			Topic:   types.TopicHealing,
			Content: "After the breakup, I felt like a city in ruins. But slowly, piece by piece, I started rebuilding. I started painting again, something I hadn't done in years. I went for long walks just to watch the sunset. It wasn't a magical, overnight fix. It was slow, painful, and often lonely. But today, for the first time, I looked in the mirror and recognized the person staring back. I saw a survivor, not a victim. There's a quiet strength in healing, a gentle hope that whispers, 'you're going to be okay.'",
			Tags:    []types.EmotionTag{types.TagHealing, types.TagHope, types.TagRelief},
			Reactions: map[types.ReactionKind]int{
				types.ReactionRelate:    30,
				types.ReactionLove:      54,
				types.ReactionBeenThere: 22,
			},
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}

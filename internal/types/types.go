package types

import (
	"strings"
	"time"
)

// Topic is the author-chosen category of a story.
type Topic string

const (
	TopicAnxiety          Topic = "Anxiety"
	TopicAcademicStress   Topic = "Academic Stress"
	TopicBreakups         Topic = "Breakups"
	TopicBullying         Topic = "Bullying"
	TopicGenderIdentity   Topic = "Gender Identity"
	TopicParentalPressure Topic = "Parental Pressure"
	TopicHealing          Topic = "Healing Journey"
	TopicLoneliness       Topic = "Loneliness"
	TopicGeneral          Topic = "General"

	// TopicAll is a filter sentinel, never stored on a story.
	TopicAll Topic = "All"
)

// Topics lists every storable topic, in display order.
var Topics = []Topic{
	TopicAnxiety,
	TopicAcademicStress,
	TopicBreakups,
	TopicBullying,
	TopicGenderIdentity,
	TopicParentalPressure,
	TopicHealing,
	TopicLoneliness,
	TopicGeneral,
}

func (t Topic) Valid() bool {
	for _, known := range Topics {
		if t == known {
			return true
		}
	}
	return false
}

// EmotionTag is an AI-assigned descriptor of the feelings expressed in a story.
// Authors never pick tags themselves.
type EmotionTag string

const (
	TagAnxiety    EmotionTag = "Anxiety"
	TagLoneliness EmotionTag = "Loneliness"
	TagHope       EmotionTag = "Hope"
	TagHeartbreak EmotionTag = "Heartbreak"
	TagStress     EmotionTag = "School Stress"
	TagHealing    EmotionTag = "Healing Journey"
	TagCourage    EmotionTag = "Courage"
	TagSadness    EmotionTag = "Sadness"
	TagRelief     EmotionTag = "Relief"
)

var EmotionTags = []EmotionTag{
	TagAnxiety,
	TagLoneliness,
	TagHope,
	TagHeartbreak,
	TagStress,
	TagHealing,
	TagCourage,
	TagSadness,
	TagRelief,
}

func (e EmotionTag) Valid() bool {
	for _, known := range EmotionTags {
		if e == known {
			return true
		}
	}
	return false
}

// MaxStoryTags caps how many emotion tags a story may carry.
const MaxStoryTags = 3

// ReactionKind is a lightweight anonymous show-of-support counter.
type ReactionKind string

const (
	ReactionRelate    ReactionKind = "I relate"
	ReactionLove      ReactionKind = "Sending love"
	ReactionBeenThere ReactionKind = "Been there too"
)

var ReactionKinds = []ReactionKind{ReactionRelate, ReactionLove, ReactionBeenThere}

func (r ReactionKind) Valid() bool {
	for _, known := range ReactionKinds {
		if r == known {
			return true
		}
	}
	return false
}

// NewReactionCounts returns a reaction map with every kind present and zeroed.
func NewReactionCounts() map[ReactionKind]int {
	counts := make(map[ReactionKind]int, len(ReactionKinds))
	for _, kind := range ReactionKinds {
		counts[kind] = 0
	}
	return counts
}

// CommentTone is the style directive for AI-generated supportive comments.
type CommentTone string

const (
	ToneComforting   CommentTone = "Comforting"
	ToneMotivational CommentTone = "Motivational"
	ToneReflective   CommentTone = "Reflective"
)

var CommentTones = []CommentTone{ToneComforting, ToneMotivational, ToneReflective}

func (c CommentTone) Valid() bool {
	for _, known := range CommentTones {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultAlias is used when a submission leaves the alias blank.
const DefaultAlias = "Anonymous"

// MinContentLength is the minimum trimmed story length accepted at submission.
const MinContentLength = 150

// Story is one anonymous first-person narrative with its metadata.
// Stories are created once and never edited or deleted; only reaction
// counters change afterwards.
type Story struct {
	ID        string               `json:"id"`
	Alias     string               `json:"alias"`
	Topic     Topic                `json:"topic"`
	Content   string               `json:"content"`
	Tags      []EmotionTag         `json:"tags"`
	Reactions map[ReactionKind]int `json:"reactions"`
	CreatedAt time.Time            `json:"created_at"`
}

// Clone returns a copy whose tags and reaction counts are independent of the
// original, so callers can never mutate stored state through a returned story.
func (s Story) Clone() Story {
	out := s
	out.Tags = append([]EmotionTag(nil), s.Tags...)
	out.Reactions = make(map[ReactionKind]int, len(s.Reactions))
	for kind, count := range s.Reactions {
		out.Reactions[kind] = count
	}
	return out
}

// ModerationResult is the transient verdict of the safety screening gate.
type ModerationResult struct {
	IsSafe bool   `json:"isSafe"`
	Reason string `json:"reason"`
}

type StoryPostRequest struct {
	Alias   string `json:"alias"`
	Topic   Topic  `validate:"required" json:"topic"`
	Content string `validate:"required" json:"content"`
}

// TrimmedContent returns the content as it would be stored.
func (r StoryPostRequest) TrimmedContent() string {
	return strings.TrimSpace(r.Content)
}

type ReactionPostRequest struct {
	Kind ReactionKind `validate:"required" json:"kind"`
}

type CommentPostRequest struct {
	Tone CommentTone `validate:"required" json:"tone"`
}

type NarrationPostRequest struct {
	Action string `validate:"required,oneof=start stop" json:"action"`
}

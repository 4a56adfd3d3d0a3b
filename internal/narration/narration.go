package narration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/safespacehq/safespace-service/internal/types"
)

// Voice identifies one synthesizer voice by name and BCP 47 language tag.
type Voice struct {
	Name string
	Lang string
}

// Utterance is one narration request handed to the engine.
type Utterance struct {
	Text  string
	Voice Voice
}

// Engine is the external speech facility. Speak must be asynchronous and
// report completion or failure through exactly one of the callbacks; Stop
// halts the current utterance without firing onDone.
type Engine interface {
	Voices() []Voice
	Speak(u Utterance, onDone func(), onError func(error))
	Stop()
}

// ErrNoVoices is returned when the engine offers nothing to speak with.
var ErrNoVoices = errors.New("no voices available")

// PreferredLang is the regional variant tried first when picking a voice.
const PreferredLang = "en-IN"

// PickVoice walks an ordered preference chain: exact preferred tag, then any
// voice of the same language, then the first available voice.
func PickVoice(voices []Voice, preferred string) (Voice, error) {
	if len(voices) == 0 {
		return Voice{}, ErrNoVoices
	}

	lang := preferred[:strings.IndexByte(preferred+"-", '-')]
	predicates := []func(Voice) bool{
		func(v Voice) bool { return v.Lang == preferred },
		func(v Voice) bool { return strings.HasPrefix(v.Lang, lang+"-") || v.Lang == lang },
		func(Voice) bool { return true },
	}

	for _, match := range predicates {
		for _, voice := range voices {
			if match(voice) {
				return voice, nil
			}
		}
	}
	return Voice{}, ErrNoVoices
}

// Narrator reads stories aloud through an injected engine. One utterance at a
// time: starting a new one stops whatever is playing.
type Narrator struct {
	engine Engine

	mu       sync.Mutex
	speaking bool
}

func NewNarrator(engine Engine) *Narrator {
	return &Narrator{engine: engine}
}

// Speaking reports whether an utterance is currently playing.
func (n *Narrator) Speaking() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.speaking
}

// SpeakStory narrates topic, alias and content of a story.
func (n *Narrator) SpeakStory(story types.Story) error {
	text := fmt.Sprintf("%s. A story by %s. %s", story.Topic, story.Alias, story.Content)
	return n.Speak(text)
}

// Speak picks a voice and starts playback, stopping any current utterance
// first. The speaking flag resets when the engine signals completion or
// error.
func (n *Narrator) Speak(text string) error {
	voice, err := PickVoice(n.engine.Voices(), PreferredLang)
	if err != nil {
		return err
	}

	n.mu.Lock()
	if n.speaking {
		n.engine.Stop()
	}
	n.speaking = true
	n.mu.Unlock()

	n.engine.Speak(Utterance{Text: text, Voice: voice},
		func() { n.reset() },
		func(err error) {
			slog.Error("narration failed", slog.String("error", err.Error()))
			n.reset()
		})

	return nil
}

// Stop halts playback, if any.
func (n *Narrator) Stop() {
	n.mu.Lock()
	speaking := n.speaking
	n.speaking = false
	n.mu.Unlock()

	if speaking {
		n.engine.Stop()
	}
}

func (n *Narrator) reset() {
	n.mu.Lock()
	n.speaking = false
	n.mu.Unlock()
}

// LogEngine is the default engine when no synthesizer is attached to the
// process: it logs what would be spoken and completes immediately.
type LogEngine struct{}

func (LogEngine) Voices() []Voice {
	return []Voice{{Name: "log", Lang: "en-US"}}
}

func (LogEngine) Speak(u Utterance, onDone func(), onError func(error)) {
	slog.Info("narration",
		slog.String("voice", u.Voice.Name),
		slog.Int("chars", len(u.Text)))
	go onDone()
}

func (LogEngine) Stop() {}

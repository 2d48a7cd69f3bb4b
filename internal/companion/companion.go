// Package companion holds the non-game parts of the mood companion: emotion
// labels, the emotion to music genre table, mood tips and a scripted chatbot.
//
// Detecting the emotion and playing music are left to the caller; this
// package only answers questions about a label it is given.
package companion

import (
	"math/rand"
	"strings"
)

// Emotion labels understood by the companion.
const (
	Happy    = "happy"
	Sad      = "sad"
	Neutral  = "neutral"
	Angry    = "angry"
	Surprise = "surprise"
	Fear     = "fear"
	Disgust  = "disgust"
)

var emotions = []string{Happy, Sad, Neutral, Angry, Surprise, Fear, Disgust}

var genres = map[string]string{
	Happy:    "pop",
	Sad:      "acoustic",
	Neutral:  "classical",
	Angry:    "rock",
	Surprise: "electronic",
	Fear:     "ambient",
	Disgust:  "alternative",
}

var tips = map[string][]string{
	Happy: {
		"Happiness is contagious. Spread it around!",
		"Enjoy the little things in life.",
		"Keep smiling!",
	},
	Sad: {
		"It's okay to feel sad sometimes. Take time to heal.",
		"Reach out to someone you trust.",
		"Self-care is important.",
	},
	Neutral: {
		"Every moment is a fresh beginning.",
		"Neutral days are perfect for self-reflection.",
		"Stay grounded.",
	},
	Angry: {
		"Breathe deeply. Let go of what you can't control.",
		"Take a break and clear your mind.",
		"Express your feelings constructively.",
	},
	Surprise: {
		"Unexpected moments can lead to beautiful memories.",
		"Embrace the surprises in life.",
		"Adaptability is strength.",
	},
	Fear: {
		"You're stronger than you think.",
		"Small steps still move you forward.",
		"Talk to someone you trust.",
	},
	Disgust: {
		"Shift focus to something uplifting.",
		"A short walk can reset your mood.",
		"Jot down what's bothering you, then release it.",
	},
}

// Emotions returns the known emotion labels.
func Emotions() []string {
	out := make([]string, len(emotions))
	copy(out, emotions)
	return out
}

// Normalize lower-cases and trims an emotion label.
func Normalize(emotion string) string {
	return strings.ToLower(strings.TrimSpace(emotion))
}

// Genre returns the music genre recommended for an emotion.
func Genre(emotion string) (string, bool) {
	g, ok := genres[Normalize(emotion)]
	return g, ok
}

// Tips returns every tip for an emotion.
func Tips(emotion string) []string {
	list := tips[Normalize(emotion)]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Tip returns a random tip for an emotion.
func Tip(emotion string, rng *rand.Rand) (string, bool) {
	list := Tips(emotion)
	if len(list) == 0 {
		return "", false
	}
	return list[rng.Intn(len(list))], true
}

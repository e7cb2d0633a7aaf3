package letters

// Mood classifies the emotional tag attached to a letter.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodSad        Mood = "sad"
	MoodCalm       Mood = "calm"
	MoodReflective Mood = "reflective"
	MoodExcited    Mood = "excited"
	MoodGrateful   Mood = "grateful"
	MoodHopeful    Mood = "hopeful"
)

// CatalogEntry is one selectable mood: the stored value plus its
// presentation (emoji and label).
type CatalogEntry struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Value Mood   `json:"value"`
}

var moodCatalog = []CatalogEntry{
	{Emoji: "😊", Label: "Happy", Value: MoodHappy},
	{Emoji: "😢", Label: "Sad", Value: MoodSad},
	{Emoji: "😌", Label: "Calm", Value: MoodCalm},
	{Emoji: "🤔", Label: "Reflective", Value: MoodReflective},
	{Emoji: "🤩", Label: "Excited", Value: MoodExcited},
	{Emoji: "🙏", Label: "Grateful", Value: MoodGrateful},
	{Emoji: "✨", Label: "Hopeful", Value: MoodHopeful},
}

// Catalog returns the fixed, read-only mood catalog. The returned slice is
// a copy; mutating it does not affect the catalog.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(moodCatalog))
	copy(out, moodCatalog)
	return out
}

// ValidMood reports whether m is one of the catalog values.
func ValidMood(m Mood) bool {
	for _, e := range moodCatalog {
		if e.Value == m {
			return true
		}
	}
	return false
}

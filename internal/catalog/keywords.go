package catalog

import "strings"

// keywordMappings drives the free-text classifier. Matching is plain
// substring containment on the lower-cased input, so multi-word phrases work
// and "anxiety" matches "anxious" entries without any stemming. Some keywords
// deliberately appear under more than one mood ("direction", "unsure"); the
// classifier then reports both moods.
var keywordMappings = []struct {
	Mood     MoodID
	Keywords []string
}{
	{"anxious", []string{"anxious", "anxiety", "worried", "worry", "nervous", "stress", "stressed", "panic", "uneasy"}},
	{"sad", []string{"sad", "depressed", "down", "unhappy", "crying", "tears", "grief", "mourning", "heartbroken", "sorrow"}},
	{"angry", []string{"angry", "mad", "furious", "frustrated", "annoyed", "irritated", "rage", "upset"}},
	{"lonely", []string{"lonely", "alone", "isolated", "abandoned", "forgotten", "no one", "nobody"}},
	{"fearful", []string{"afraid", "fear", "scared", "terrified", "frightened", "dread", "terror"}},
	{"grateful", []string{"grateful", "thankful", "blessed", "appreciate", "gratitude"}},
	{"hopeful", []string{"hopeful", "hope", "optimistic", "looking forward", "excited"}},
	{"tired", []string{"tired", "exhausted", "weary", "drained", "burnt out", "burnout", "fatigued", "sleepy"}},
	{"sick", []string{"sick", "ill", "unwell", "disease", "health", "healing"}},
	{"restless", []string{"restless", "cant sleep", "can't sleep", "insomnia", "agitated"}},
	{"weak", []string{"weak", "powerless", "helpless", "feeble", "frail"}},
	{"in-pain", []string{"pain", "hurting", "suffering", "ache", "hurt"}},
	{"confused", []string{"confused", "lost", "uncertain", "unsure", "don't know", "dont know", "direction"}},
	{"overwhelmed", []string{"overwhelmed", "too much", "cant handle", "can't handle", "drowning", "swamped"}},
	{"doubtful", []string{"doubt", "doubtful", "questioning", "unsure", "faith", "believe"}},
	{"unfocused", []string{"unfocused", "distracted", "cant focus", "can't focus", "scattered", "mind wandering"}},
	{"discouraged", []string{"discouraged", "giving up", "hopeless", "defeated", "failed", "failure"}},
	{"seeking-wisdom", []string{"wisdom", "guidance", "direction", "decision", "advice", "what should i do"}},
}

// Classify maps free-form text to the set of moods whose keywords occur in
// it. It is pure, never errors, and returns an empty slice when nothing
// matches (including for empty input). The result is deduplicated and ordered
// by the keyword table, but callers should treat it as a set.
func Classify(text string) []MoodID {
	lower := strings.ToLower(text)

	var found []MoodID
	for _, entry := range keywordMappings {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, entry.Mood)
				break
			}
		}
	}
	return found
}

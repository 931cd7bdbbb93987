// Package catalog holds the static mood and verse data the app ships with,
// plus the keyword classifier and verse selector that run over it. Everything
// here is read-only after process start.
package catalog

import "errors"

var ErrUnknownMood = errors.New("unknown mood")

type Category string

const (
	CategoryEmotional Category = "emotional"
	CategoryPhysical  Category = "physical"
	CategoryMental    Category = "mental"
)

// ParseCategory validates a category string from the request path/query.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryEmotional, CategoryPhysical, CategoryMental:
		return Category(s), nil
	}
	return "", errors.New("unknown category")
}

type MoodID string

type Mood struct {
	ID       MoodID   `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

type Verse struct {
	Reference string   `json:"reference"`
	Text      string   `json:"text"`
	MoodIDs   []MoodID `json:"mood_ids"`
}

// Moods lists every mood in catalog order.
func Moods() []Mood {
	out := make([]Mood, len(moods))
	copy(out, moods)
	return out
}

// MoodByID looks a mood up by its slug.
func MoodByID(id MoodID) (Mood, error) {
	for _, m := range moods {
		if m.ID == id {
			return m, nil
		}
	}
	return Mood{}, ErrUnknownMood
}

// MoodsByCategory filters the mood list by category, preserving catalog order.
func MoodsByCategory(category Category) []Mood {
	var out []Mood
	for _, m := range moods {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// VersesForMood returns every verse tagged with the given mood, in catalog
// order. Used for sequential "next verse" paging, so no shuffling here.
func VersesForMood(id MoodID) []Verse {
	var out []Verse
	for _, v := range verses {
		if v.taggedWith(id) {
			out = append(out, v)
		}
	}
	return out
}

func (v Verse) taggedWith(id MoodID) bool {
	for _, m := range v.MoodIDs {
		if m == id {
			return true
		}
	}
	return false
}

var moods = []Mood{
	// Emotional
	{ID: "anxious", Label: "Anxious", Category: CategoryEmotional},
	{ID: "sad", Label: "Sad", Category: CategoryEmotional},
	{ID: "angry", Label: "Angry", Category: CategoryEmotional},
	{ID: "lonely", Label: "Lonely", Category: CategoryEmotional},
	{ID: "fearful", Label: "Fearful", Category: CategoryEmotional},
	{ID: "grateful", Label: "Grateful", Category: CategoryEmotional},
	{ID: "hopeful", Label: "Hopeful", Category: CategoryEmotional},

	// Physical
	{ID: "tired", Label: "Tired", Category: CategoryPhysical},
	{ID: "sick", Label: "Sick", Category: CategoryPhysical},
	{ID: "restless", Label: "Restless", Category: CategoryPhysical},
	{ID: "weak", Label: "Weak", Category: CategoryPhysical},
	{ID: "in-pain", Label: "In Pain", Category: CategoryPhysical},

	// Mental
	{ID: "confused", Label: "Confused", Category: CategoryMental},
	{ID: "overwhelmed", Label: "Overwhelmed", Category: CategoryMental},
	{ID: "doubtful", Label: "Doubtful", Category: CategoryMental},
	{ID: "unfocused", Label: "Unfocused", Category: CategoryMental},
	{ID: "discouraged", Label: "Discouraged", Category: CategoryMental},
	{ID: "seeking-wisdom", Label: "Seeking Wisdom", Category: CategoryMental},
}

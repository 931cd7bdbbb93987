package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// For a non-empty mood set, the selection is bounded by 3 and every returned
// verse intersects the requested set.
func TestSelectVersesBoundedAndIntersecting(t *testing.T) {
	moodSet := []MoodID{"anxious", "tired"}

	for i := 0; i < 50; i++ {
		got := SelectVerses(moodSet)
		require.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), 3)

		for _, v := range got {
			intersects := false
			for _, tag := range v.MoodIDs {
				if tag == "anxious" || tag == "tired" {
					intersects = true
				}
			}
			assert.True(t, intersects, "verse %s does not match mood set", v.Reference)
		}
	}
}

func TestSelectVersesSingleMood(t *testing.T) {
	eligible := map[string]bool{}
	for _, v := range VersesForMood("anxious") {
		eligible[v.Reference] = true
	}
	require.True(t, eligible["Philippians 4:6-7 (NLT)"])
	require.True(t, eligible["1 Peter 5:7 (NLT)"])
	require.True(t, eligible["Matthew 6:34 (NLT)"])

	for i := 0; i < 50; i++ {
		for _, v := range SelectVerses([]MoodID{"anxious"}) {
			assert.True(t, eligible[v.Reference])
		}
	}
}

// With no moods classified, the selection comes only from the 3-entry
// default list and carries at most 2 verses.
func TestSelectVersesEmptySetUsesDefaults(t *testing.T) {
	defaults := map[string]bool{}
	for _, v := range DefaultVerses() {
		defaults[v.Reference] = true
	}
	require.Len(t, defaults, 3)

	for i := 0; i < 50; i++ {
		got := SelectVerses(nil)
		require.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), 2)
		for _, v := range got {
			assert.True(t, defaults[v.Reference], "unexpected default verse %s", v.Reference)
		}
	}
}

func TestSelectVersesNoDuplicates(t *testing.T) {
	for i := 0; i < 50; i++ {
		got := SelectVerses([]MoodID{"fearful", "weak", "discouraged"})
		seen := map[string]bool{}
		for _, v := range got {
			assert.False(t, seen[v.Reference], "duplicate verse %s", v.Reference)
			seen[v.Reference] = true
		}
	}
}

func TestSelectVersesDoesNotMutateCatalog(t *testing.T) {
	before := VersesForMood("anxious")
	for i := 0; i < 20; i++ {
		SelectVerses([]MoodID{"anxious"})
	}
	assert.Equal(t, before, VersesForMood("anxious"))
}

// End-to-end scenario from the product: free text -> moods -> verses.
func TestClassifyThenSelect(t *testing.T) {
	moods := Classify("I'm feeling anxious about tomorrow")
	require.True(t, contains(moods, "anxious"))

	got := SelectVerses(moods)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 3)

	moods = Classify("asdkfjasldkfj")
	require.Empty(t, moods)
	got = SelectVerses(moods)
	assert.GreaterOrEqual(t, len(got), 1)
	assert.LessOrEqual(t, len(got), 2)
}

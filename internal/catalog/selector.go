package catalog

import "math/rand"

const (
	maxMatchedVerses = 3
	maxDefaultVerses = 2
)

// SelectVerses returns a bounded random sample of verses for the given mood
// set. With at least one mood, every verse whose tags intersect the set is
// eligible and at most 3 are returned in shuffled order. With no moods at
// all (nothing classified), at most 2 verses come from the default
// encouragement list instead. Repeated calls are expected to differ.
func SelectVerses(moodIDs []MoodID) []Verse {
	if len(moodIDs) == 0 {
		return sample(DefaultVerses(), maxDefaultVerses)
	}

	set := make(map[MoodID]struct{}, len(moodIDs))
	for _, id := range moodIDs {
		set[id] = struct{}{}
	}

	var matched []Verse
	for _, v := range verses {
		for _, tag := range v.MoodIDs {
			if _, ok := set[tag]; ok {
				matched = append(matched, v)
				break
			}
		}
	}
	return sample(matched, maxMatchedVerses)
}

// sample shuffles in place (Fisher-Yates via rand.Shuffle) and truncates.
func sample(vs []Verse, n int) []Verse {
	rand.Shuffle(len(vs), func(i, j int) {
		vs[i], vs[j] = vs[j], vs[i]
	})
	if len(vs) > n {
		vs = vs[:n]
	}
	return vs
}

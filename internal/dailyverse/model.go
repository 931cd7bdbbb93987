package dailyverse

// DailyVerse is the payload the client renders on the home screen.
// Field names follow the wire contract of the original function.
type DailyVerse struct {
	Verse      string `json:"verse"`
	Reference  string `json:"reference"`
	Reflection string `json:"reflection"`
}

// FallbackVerse is served whenever the gateway fails or returns something
// unparseable. The home screen must always have a verse.
var FallbackVerse = DailyVerse{
	Verse:      "The Lord is my shepherd; I shall not want. He makes me lie down in green pastures. He leads me beside still waters. He restores my soul.",
	Reference:  "Psalm 23:1-3",
	Reflection: "May you find peace and restoration in God's loving care today.",
}

type DailyVerseRequest struct {
	UserFeelings []string `json:"userFeelings"`
	Date         string   `json:"date"`
}

type AddFeelingRequest struct {
	Feeling string `json:"feeling"`
}

package catalog

// Verse texts are NLT unless the reference says otherwise. A verse may carry
// several mood tags; every tag must name a mood defined in catalog.go.
var verses = []Verse{
	// Anxious
	{
		Reference: "Philippians 4:6-7 (NLT)",
		Text:      "Don't worry about anything; instead, pray about everything. Tell God what you need, and thank him for all he has done. Then you will experience God's peace, which exceeds anything we can understand. His peace will guard your hearts and minds as you live in Christ Jesus.",
		MoodIDs:   []MoodID{"anxious", "overwhelmed"},
	},
	{
		Reference: "1 Peter 5:7 (NLT)",
		Text:      "Give all your worries and cares to God, for he cares about you.",
		MoodIDs:   []MoodID{"anxious", "fearful"},
	},
	{
		Reference: "Matthew 6:34 (NLT)",
		Text:      "So don't worry about tomorrow, for tomorrow will bring its own worries. Today's trouble is enough for today.",
		MoodIDs:   []MoodID{"anxious", "overwhelmed"},
	},

	// Sad
	{
		Reference: "Psalm 34:18 (NLT)",
		Text:      "The Lord is close to the brokenhearted; he rescues those whose spirits are crushed.",
		MoodIDs:   []MoodID{"sad", "lonely"},
	},
	{
		Reference: "Revelation 21:4 (NLT)",
		Text:      "He will wipe every tear from their eyes, and there will be no more death or sorrow or crying or pain. All these things are gone forever.",
		MoodIDs:   []MoodID{"sad", "in-pain"},
	},
	{
		Reference: "Psalm 30:5 (NLT)",
		Text:      "Weeping may last through the night, but joy comes with the morning.",
		MoodIDs:   []MoodID{"sad", "hopeful"},
	},

	// Angry
	{
		Reference: "James 1:19-20 (NLT)",
		Text:      "Understand this, my dear brothers and sisters: You must all be quick to listen, slow to speak, and slow to get angry. Human anger does not produce the righteousness God desires.",
		MoodIDs:   []MoodID{"angry"},
	},
	{
		Reference: "Ephesians 4:26-27 (NLT)",
		Text:      "And don't sin by letting anger control you. Don't let the sun go down while you are still angry, for anger gives a foothold to the devil.",
		MoodIDs:   []MoodID{"angry"},
	},

	// Lonely
	{
		Reference: "Deuteronomy 31:6 (NLT)",
		Text:      "So be strong and courageous! Do not be afraid and do not panic before them. For the Lord your God will personally go ahead of you. He will neither fail you nor abandon you.",
		MoodIDs:   []MoodID{"lonely", "fearful"},
	},
	{
		Reference: "Psalm 23:4 (NLT)",
		Text:      "Even when I walk through the darkest valley, I will not be afraid, for you are close beside me. Your rod and your staff protect and comfort me.",
		MoodIDs:   []MoodID{"lonely", "fearful"},
	},

	// Fearful
	{
		Reference: "Isaiah 41:10 (NLT)",
		Text:      "Don't be afraid, for I am with you. Don't be discouraged, for I am your God. I will strengthen you and help you. I will hold you up with my victorious right hand.",
		MoodIDs:   []MoodID{"fearful", "weak"},
	},
	{
		Reference: "2 Timothy 1:7 (NLT)",
		Text:      "For God has not given us a spirit of fear and timidity, but of power, love, and self-discipline.",
		MoodIDs:   []MoodID{"fearful", "weak"},
	},

	// Grateful
	{
		Reference: "1 Thessalonians 5:18 (NLT)",
		Text:      "Be thankful in all circumstances, for this is God's will for you who belong to Christ Jesus.",
		MoodIDs:   []MoodID{"grateful", "hopeful"},
	},
	{
		Reference: "Psalm 107:1 (NLT)",
		Text:      "Give thanks to the Lord, for he is good! His faithful love endures forever.",
		MoodIDs:   []MoodID{"grateful"},
	},

	// Hopeful
	{
		Reference: "Jeremiah 29:11 (NLT)",
		Text:      "\"For I know the plans I have for you,\" says the Lord. \"They are plans for good and not for disaster, to give you a future and a hope.\"",
		MoodIDs:   []MoodID{"hopeful", "discouraged"},
	},
	{
		Reference: "Romans 15:13 (NLT)",
		Text:      "I pray that God, the source of hope, will fill you completely with joy and peace because you trust in him. Then you will overflow with confident hope through the power of the Holy Spirit.",
		MoodIDs:   []MoodID{"hopeful"},
	},

	// Tired
	{
		Reference: "Matthew 11:28-30 (NLT)",
		Text:      "Then Jesus said, \"Come to me, all of you who are weary and carry heavy burdens, and I will give you rest. Take my yoke upon you. Let me teach you, because I am humble and gentle at heart, and you will find rest for your souls.\"",
		MoodIDs:   []MoodID{"tired", "overwhelmed"},
	},
	{
		Reference: "Isaiah 40:31 (NLT)",
		Text:      "But those who trust in the Lord will find new strength. They will soar high on wings like eagles. They will run and not grow weary. They will walk and not faint.",
		MoodIDs:   []MoodID{"tired", "weak"},
	},

	// Sick
	{
		Reference: "James 5:15 (NLT)",
		Text:      "Such a prayer offered in faith will heal the sick, and the Lord will make you well. And if you have committed any sins, you will be forgiven.",
		MoodIDs:   []MoodID{"sick", "in-pain"},
	},
	{
		Reference: "Psalm 103:2-3 (NLT)",
		Text:      "Let all that I am praise the Lord; may I never forget the good things he does for me. He forgives all my sins and heals all my diseases.",
		MoodIDs:   []MoodID{"sick"},
	},

	// Restless
	{
		Reference: "Psalm 46:10 (NLT)",
		Text:      "\"Be still, and know that I am God! I will be honored by every nation. I will be honored throughout the world.\"",
		MoodIDs:   []MoodID{"restless", "anxious"},
	},

	// Weak
	{
		Reference: "2 Corinthians 12:9 (NLT)",
		Text:      "Each time he said, \"My grace is all you need. My power works best in weakness.\" So now I am glad to boast about my weaknesses, so that the power of Christ can work through me.",
		MoodIDs:   []MoodID{"weak", "discouraged"},
	},

	// In Pain
	{
		Reference: "Psalm 147:3 (NLT)",
		Text:      "He heals the brokenhearted and bandages their wounds.",
		MoodIDs:   []MoodID{"in-pain", "sad"},
	},

	// Confused
	{
		Reference: "Proverbs 3:5-6 (NLT)",
		Text:      "Trust in the Lord with all your heart; do not depend on your own understanding. Seek his will in all you do, and he will show you which path to take.",
		MoodIDs:   []MoodID{"confused", "doubtful"},
	},
	{
		Reference: "James 1:5 (NLT)",
		Text:      "If you need wisdom, ask our generous God, and he will give it to you. He will not rebuke you for asking.",
		MoodIDs:   []MoodID{"confused", "seeking-wisdom"},
	},

	// Overwhelmed
	{
		Reference: "Psalm 61:2 (NLT)",
		Text:      "From the ends of the earth, I cry to you for help when my heart is overwhelmed. Lead me to the towering rock of safety.",
		MoodIDs:   []MoodID{"overwhelmed"},
	},

	// Doubtful
	{
		Reference: "Mark 9:24 (NLT)",
		Text:      "The father instantly cried out, \"I do believe, but help me overcome my unbelief!\"",
		MoodIDs:   []MoodID{"doubtful"},
	},
	{
		Reference: "Hebrews 11:1 (NLT)",
		Text:      "Faith shows the reality of what we hope for; it is the evidence of things we cannot see.",
		MoodIDs:   []MoodID{"doubtful", "hopeful"},
	},

	// Unfocused
	{
		Reference: "Colossians 3:2 (NLT)",
		Text:      "Think about the things of heaven, not the things of earth.",
		MoodIDs:   []MoodID{"unfocused"},
	},
	{
		Reference: "Philippians 4:8 (NLT)",
		Text:      "And now, dear brothers and sisters, one final thing. Fix your thoughts on what is true, and honorable, and right, and pure, and lovely, and admirable. Think about things that are excellent and worthy of praise.",
		MoodIDs:   []MoodID{"unfocused", "anxious"},
	},

	// Discouraged
	{
		Reference: "Joshua 1:9 (NLT)",
		Text:      "This is my command—be strong and courageous! Do not be afraid or discouraged. For the Lord your God is with you wherever you go.",
		MoodIDs:   []MoodID{"discouraged", "fearful"},
	},
	{
		Reference: "Galatians 6:9 (NLT)",
		Text:      "So let's not get tired of doing what is good. At just the right time we will reap a harvest of blessing if we don't give up.",
		MoodIDs:   []MoodID{"discouraged", "tired"},
	},

	// Seeking Wisdom
	{
		Reference: "Proverbs 2:6 (NLT)",
		Text:      "For the Lord grants wisdom! From his mouth come knowledge and understanding.",
		MoodIDs:   []MoodID{"seeking-wisdom"},
	},
	{
		Reference: "Psalm 119:105 (NLT)",
		Text:      "Your word is a lamp to guide my feet and a light for my path.",
		MoodIDs:   []MoodID{"seeking-wisdom", "confused"},
	},
}

// defaultVerses are served when free text matches no keyword at all.
var defaultVerses = []Verse{
	{
		Reference: "Romans 8:28",
		Text:      "And we know that in all things God works for the good of those who love him, who have been called according to his purpose.",
	},
	{
		Reference: "Psalm 46:1",
		Text:      "God is our refuge and strength, an ever-present help in trouble.",
	},
	{
		Reference: "Isaiah 40:31",
		Text:      "But those who hope in the Lord will renew their strength. They will soar on wings like eagles; they will run and not grow weary, they will walk and not be faint.",
	},
}

// DefaultVerses returns the fallback encouragement list.
func DefaultVerses() []Verse {
	out := make([]Verse, len(defaultVerses))
	copy(out, defaultVerses)
	return out
}

// Package lexicon holds the marker word and phrase tables the extractor
// matches against. Tables are plain data, constructed once and treated as
// read-only; the extractor takes a Lexicon at construction time so tests
// can substitute alternates without process-wide side effects.
package lexicon

import "fmt"

// Lexicon groups the marker tables by category. Entries are lower-case.
// Single-word entries match on word boundaries; entries containing a space
// match as literal substrings. A surface form may appear in more than one
// category and counts once per category.
type Lexicon struct {
	Hedges           []string
	CertaintyMarkers []string
	UrgencyWords     []string
	Politeness       []string
	FirstPerson      []string
	Fillers          []string
	NegativeEmotion  []string
	Absolutist       []string

	// ImperativeStarters is consulted against the first word of each
	// sentence, not run through the phrase matcher.
	ImperativeStarters []string
}

// Default returns the calibrated tables. Membership is a tuning artifact
// validated against labeled data; do not extend casually.
func Default() Lexicon {
	return Lexicon{
		Hedges: []string{
			"maybe", "perhaps", "possibly", "probably", "might", "could",
			"sort of", "kind of", "i think", "i guess", "i suppose",
			"seems", "appears", "likely", "unlikely", "somewhat",
			"fairly", "rather", "quite", "a bit", "a little",
			"in my opinion", "i believe", "i feel", "not sure",
		},
		CertaintyMarkers: []string{
			"definitely", "certainly", "absolutely", "clearly", "obviously",
			"undoubtedly", "surely", "of course", "without doubt",
			"no question", "for sure", "guaranteed", "always", "never",
			"must", "will", "know for a fact",
		},
		UrgencyWords: []string{
			"urgent", "asap", "immediately", "now", "hurry",
			"emergency", "critical", "deadline", "rush", "quick",
			"fast", "right away", "time-sensitive", "pressing",
		},
		Politeness: []string{
			"please", "thank you", "thanks", "appreciate",
			"sorry", "excuse me", "pardon", "would you mind",
		},
		FirstPerson: []string{"i", "me", "my", "mine", "myself", "we", "us", "our", "ours"},
		Fillers: []string{
			"um", "uh", "like", "you know", "basically",
			"actually", "literally", "honestly", "well",
		},
		NegativeEmotion: []string{
			// Anxiety markers
			"worried", "worry", "worries", "anxious", "anxiety", "nervous",
			"afraid", "fear", "scared", "panic", "stressed", "stress",
			"tense", "uneasy", "dread", "dreading",
			// General negative affect
			"upset", "frustrated", "annoyed", "angry", "mad",
			"sad", "depressed", "hopeless", "miserable",
			"terrible", "awful", "horrible", "worst",
			// Distress markers
			"struggling", "suffering", "overwhelmed", "exhausted",
			"desperate", "helpless", "stuck", "lost",
		},
		Absolutist: []string{
			"always", "never", "nothing", "everything", "completely",
			"totally", "absolutely", "entirely", "impossible", "definitely",
		},
		ImperativeStarters: []string{
			"do", "don't", "please", "let", "make", "take", "give",
			"get", "go", "come", "tell", "help", "stop", "start",
			"try", "send", "call", "check", "look", "see", "read",
		},
	}
}

// Validate checks that no category is empty and no entry is blank.
func (l Lexicon) Validate() error {
	categories := map[string][]string{
		"hedges":              l.Hedges,
		"certainty_markers":   l.CertaintyMarkers,
		"urgency_words":       l.UrgencyWords,
		"politeness":          l.Politeness,
		"first_person":        l.FirstPerson,
		"fillers":             l.Fillers,
		"negative_emotion":    l.NegativeEmotion,
		"absolutist":          l.Absolutist,
		"imperative_starters": l.ImperativeStarters,
	}
	for name, entries := range categories {
		if len(entries) == 0 {
			return fmt.Errorf("lexicon category %s is empty", name)
		}
		for _, e := range entries {
			if e == "" {
				return fmt.Errorf("lexicon category %s contains a blank entry", name)
			}
		}
	}
	return nil
}

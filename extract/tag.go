package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// RuleTagger is a deterministic part-of-speech tagger producing Penn
// Treebank tags from a closed-class lexicon and suffix patterns. It trades
// accuracy for reproducibility: the same sentence always gets the same
// tags, with no model files involved.
type RuleTagger struct {
	lexicon map[string]string
}

// NewRuleTagger returns a tagger with the built-in English lexicon.
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{lexicon: closedClass}
}

// Tag assigns a part-of-speech tag to each word of a sentence.
func (t *RuleTagger) Tag(words []string) []TaggedWord {
	tagged := make([]TaggedWord, 0, len(words))
	for i, word := range words {
		tagged = append(tagged, TaggedWord{
			Text: word,
			Tag:  t.tagWord(word, i == 0),
		})
	}
	return tagged
}

func (t *RuleTagger) tagWord(word string, sentenceInitial bool) string {
	if tag, ok := punctTag(word); ok {
		return tag
	}

	lower := strings.ToLower(word)
	if tag, ok := t.lexicon[lower]; ok {
		return tag
	}

	if numberRE.MatchString(word) {
		return "CD"
	}

	// A capitalized word mid-sentence is treated as a proper noun. At the
	// start of a sentence capitalization carries no signal, so the word
	// falls through to the suffix rules.
	if !sentenceInitial && isCapitalized(word) {
		return "NNP"
	}

	switch {
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return "VBG"
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return "VBD"
	case strings.HasSuffix(lower, "ly") && len(lower) > 3:
		return "RB"
	case hasAnySuffix(lower, adjSuffixes):
		return "JJ"
	case hasAnySuffix(lower, nounSuffixes):
		return "NN"
	case strings.HasSuffix(lower, "s") && len(lower) > 3 &&
		!strings.HasSuffix(lower, "ss") && !strings.HasSuffix(lower, "us") &&
		!strings.HasSuffix(lower, "is"):
		return "NNS"
	}
	return "NN"
}

func punctTag(word string) (string, bool) {
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return "", false
		}
	}
	switch word {
	case ".", "!", "?":
		return ".", true
	case ",":
		return ",", true
	case ":", ";", "...":
		return ":", true
	case "(", "[", "{":
		return "(", true
	case ")", "]", "}":
		return ")", true
	case `"`, "``", "''", "'":
		return "''", true
	case "$":
		return "$", true
	case "#":
		return "#", true
	}
	return "SYM", true
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

var numberRE = regexp.MustCompile(`^-?[0-9][0-9,]*(\.[0-9]+)?$`)

var adjSuffixes = []string{"able", "ible", "ous", "ful", "ive", "ic", "ish", "less"}
var nounSuffixes = []string{"tion", "sion", "ment", "ness", "ity", "ship", "ism", "ance"}

var closedClass = map[string]string{
	// Determiners and conjunctions.
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT", "each": "DT", "every": "DT", "no": "DT",
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC",

	// Prepositions.
	"in": "IN", "on": "IN", "at": "IN", "of": "IN", "with": "IN",
	"by": "IN", "for": "IN", "from": "IN", "as": "IN", "about": "IN",
	"into": "IN", "over": "IN", "under": "IN", "after": "IN",
	"before": "IN", "between": "IN", "through": "IN", "during": "IN",
	"against": "IN", "if": "IN", "because": "IN", "while": "IN",
	"than": "IN",

	"to": "TO",

	// Pronouns.
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "her": "PRP",
	"us": "PRP", "them": "PRP",
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "its": "PRP$",
	"our": "PRP$", "their": "PRP$",

	// Auxiliaries and modals.
	"is": "VBZ", "are": "VBP", "was": "VBD", "were": "VBD", "am": "VBP",
	"be": "VB", "been": "VBN", "being": "VBG",
	"has": "VBZ", "have": "VBP", "had": "VBD", "having": "VBG",
	"do": "VBP", "does": "VBZ", "did": "VBD",
	"can": "MD", "could": "MD", "will": "MD", "would": "MD",
	"shall": "MD", "should": "MD", "may": "MD", "might": "MD", "must": "MD",

	// Adverbs and particles.
	"not": "RB", "n't": "RB", "very": "RB", "never": "RB", "also": "RB",
	"too": "RB", "just": "RB", "so": "RB", "then": "RB", "now": "RB",
	"here": "RB", "there": "EX",

	// Wh-words.
	"which": "WDT", "what": "WP", "who": "WP", "whom": "WP",
	"whose": "WP$", "when": "WRB", "where": "WRB", "why": "WRB",
	"how": "WRB",

	// Contraction pieces produced by the tokenizer.
	"'s": "POS", "'ll": "MD", "'re": "VBP", "'m": "VBP",
}

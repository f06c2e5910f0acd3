package extract

// A TaggedWord is a surface word paired with its part-of-speech tag.
type TaggedWord struct {
	Text string // The word as it appears in the text.
	Tag  string // The word's part-of-speech tag.
}

// WordTokenizer splits a piece of text into words.
type WordTokenizer interface {
	Tokenize(text string) []string
}

// SentenceSegmenter splits a piece of text into sentences. When realign is
// true, boundary punctuation such as closing quotes is folded back onto the
// sentence it closes.
type SentenceSegmenter interface {
	Segment(text string, realign bool) []string
}

// Tagger assigns a part-of-speech tag to each word of a sentence.
type Tagger interface {
	Tag(words []string) []TaggedWord
}

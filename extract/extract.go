// Package extract turns text files and strings into words, sentences,
// tagged sentences and frequency distributions.
//
// Tokenization, segmentation and tagging are performed by pluggable
// resources obtained through a Registry; the package-level functions use
// the process-wide DefaultRegistry.
package extract

import (
	"iter"
	"strings"
)

// Words returns the word tokens of text.
func Words(text string) ([]string, error) {
	return DefaultRegistry.Words(text)
}

// Words returns the word tokens of text using the registry's tokenizer.
func (r *Registry) Words(text string) ([]string, error) {
	tok, err := r.WordTokenizer()
	if err != nil {
		return nil, err
	}
	return tok.Tokenize(text), nil
}

// Sentences returns the sentences of text. See SentenceSegmenter for the
// meaning of realign.
func Sentences(text string, realign bool) ([]string, error) {
	return DefaultRegistry.Sentences(text, realign)
}

// Sentences returns the sentences of text using the registry's segmenter.
func (r *Registry) Sentences(text string, realign bool) ([]string, error) {
	seg, err := r.SentenceSegmenter()
	if err != nil {
		return nil, err
	}
	return seg.Segment(text, realign), nil
}

// TagSentence tokenizes and tags a single sentence.
func TagSentence(sentence string) ([]TaggedWord, error) {
	return DefaultRegistry.TagSentence(sentence)
}

// TagSentence tokenizes and tags a single sentence.
func (r *Registry) TagSentence(sentence string) ([]TaggedWord, error) {
	tok, err := r.WordTokenizer()
	if err != nil {
		return nil, err
	}
	tagger, err := r.Tagger()
	if err != nil {
		return nil, err
	}
	return tagger.Tag(tok.Tokenize(sentence)), nil
}

// TagSentenceString tokenizes and tags a sentence and renders it as
// "word/tag" pairs joined by spaces.
func TagSentenceString(sentence string) (string, error) {
	tagged, err := TagSentence(sentence)
	if err != nil {
		return "", err
	}
	return TaggedString(tagged), nil
}

// TaggedSentences segments text into sentences and tags each one.
func TaggedSentences(text string, realign bool) ([][]TaggedWord, error) {
	return DefaultRegistry.TaggedSentences(text, realign)
}

// TaggedSentences segments text into sentences and tags each one.
func (r *Registry) TaggedSentences(text string, realign bool) ([][]TaggedWord, error) {
	var out [][]TaggedWord
	seq, err := r.EachTaggedSentence(text, realign)
	if err != nil {
		return nil, err
	}
	for tagged := range seq {
		out = append(out, tagged)
	}
	return out, nil
}

// EachTaggedSentence returns a lazily-produced sequence of tagged
// sentences. The sequence is single use: sentences already consumed are
// not produced again by a second range.
func EachTaggedSentence(text string, realign bool) (iter.Seq[[]TaggedWord], error) {
	return DefaultRegistry.EachTaggedSentence(text, realign)
}

// EachTaggedSentence returns a lazily-produced, single-use sequence of
// tagged sentences.
func (r *Registry) EachTaggedSentence(text string, realign bool) (iter.Seq[[]TaggedWord], error) {
	sents, err := r.Sentences(text, realign)
	if err != nil {
		return nil, err
	}
	tok, err := r.WordTokenizer()
	if err != nil {
		return nil, err
	}
	tagger, err := r.Tagger()
	if err != nil {
		return nil, err
	}

	next := 0
	return func(yield func([]TaggedWord) bool) {
		for next < len(sents) {
			sent := sents[next]
			next++
			if !yield(tagger.Tag(tok.Tokenize(sent))) {
				return
			}
		}
	}, nil
}

// TaggedStrings segments and tags text, rendering each sentence as
// "word/tag" pairs joined by spaces.
func TaggedStrings(text string, realign bool) ([]string, error) {
	tagged, err := TaggedSentences(text, realign)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(tagged))
	for _, sent := range tagged {
		out = append(out, TaggedString(sent))
	}
	return out, nil
}

// TaggedString renders a tagged sentence as "word/tag" pairs joined by
// spaces.
func TaggedString(tagged []TaggedWord) string {
	parts := make([]string, 0, len(tagged))
	for _, tw := range tagged {
		parts = append(parts, tw.Text+"/"+tw.Tag)
	}
	return strings.Join(parts, " ")
}

// WordsWithTags returns the set of distinct words in a tagged sentence
// whose tag is one of tags.
func WordsWithTags(tagged []TaggedWord, tags []string) map[string]struct{} {
	want := tagSet(tags)
	out := make(map[string]struct{})
	for _, tw := range tagged {
		if _, ok := want[tw.Tag]; ok {
			out[tw.Text] = struct{}{}
		}
	}
	return out
}

// TagFreq counts occurrences of every word carrying one of the given tags
// anywhere in text. Counts for the same word under different tags are
// merged; see TagCondFreq to keep them apart.
func TagFreq(text string, tags []string) (FreqDist, error) {
	return DefaultRegistry.TagFreq(text, tags)
}

// TagFreq counts occurrences of every word carrying one of the given tags.
func (r *Registry) TagFreq(text string, tags []string) (FreqDist, error) {
	want := tagSet(tags)
	fd := make(FreqDist)
	seq, err := r.EachTaggedSentence(text, true)
	if err != nil {
		return nil, err
	}
	for sent := range seq {
		for _, tw := range sent {
			if _, ok := want[tw.Tag]; ok {
				fd.Inc(tw.Text)
			}
		}
	}
	return fd, nil
}

// TagCondFreq is like TagFreq but keeps a separate distribution per tag.
func TagCondFreq(text string, tags []string) (map[string]FreqDist, error) {
	return DefaultRegistry.TagCondFreq(text, tags)
}

// TagCondFreq is like TagFreq but keeps a separate distribution per tag.
func (r *Registry) TagCondFreq(text string, tags []string) (map[string]FreqDist, error) {
	want := tagSet(tags)
	out := make(map[string]FreqDist)
	seq, err := r.EachTaggedSentence(text, true)
	if err != nil {
		return nil, err
	}
	for sent := range seq {
		for _, tw := range sent {
			if _, ok := want[tw.Tag]; !ok {
				continue
			}
			fd, ok := out[tw.Tag]
			if !ok {
				fd = make(FreqDist)
				out[tw.Tag] = fd
			}
			fd.Inc(tw.Text)
		}
	}
	return out, nil
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

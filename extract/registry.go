package extract

import (
	"fmt"

	"github.com/tsawler/textkit/memo"
)

// Resource names understood by a Registry.
const (
	ResourceTokenizer         = "TOKENIZER"
	ResourceSentenceTokenizer = "SENTENCE_TOKENIZER"
	ResourceTagger            = "TAGGER"
	ResourceJapaneseTokenizer = "JA_TOKENIZER"
)

// A Registry hands out the tokenization, segmentation and tagging resources
// used by the extraction functions, constructing each at most once. The
// cache is supplied by the caller, so tests can use a private registry
// while the package-level functions share DefaultRegistry.
type Registry struct {
	cache *memo.Cache
}

// NewRegistry returns a registry backed by the given cache.
func NewRegistry(cache *memo.Cache) *Registry {
	return &Registry{cache: cache}
}

// DefaultRegistry is the process-wide registry used by the package-level
// extraction functions.
var DefaultRegistry = NewRegistry(memo.NewCache())

// WordTokenizer returns the shared word tokenizer.
func (r *Registry) WordTokenizer() (WordTokenizer, error) {
	v, err := r.cache.Do(ResourceTokenizer, func() (any, error) {
		return NewIterTokenizer(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", ResourceTokenizer, err)
	}
	return v.(WordTokenizer), nil
}

// SentenceSegmenter returns the shared sentence segmenter.
func (r *Registry) SentenceSegmenter() (SentenceSegmenter, error) {
	v, err := r.cache.Do(ResourceSentenceTokenizer, func() (any, error) {
		return NewPunktSegmenter()
	})
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", ResourceSentenceTokenizer, err)
	}
	return v.(SentenceSegmenter), nil
}

// Tagger returns the shared part-of-speech tagger.
func (r *Registry) Tagger() (Tagger, error) {
	v, err := r.cache.Do(ResourceTagger, func() (any, error) {
		return NewRuleTagger(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", ResourceTagger, err)
	}
	return v.(Tagger), nil
}

// JapaneseTokenizer returns the shared morphological tokenizer for
// Japanese text. Construction loads the IPA dictionary, so the first call
// is expensive.
func (r *Registry) JapaneseTokenizer() (WordTokenizer, error) {
	v, err := r.cache.Do(ResourceJapaneseTokenizer, func() (any, error) {
		return NewKagomeTokenizer()
	})
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", ResourceJapaneseTokenizer, err)
	}
	return v.(WordTokenizer), nil
}

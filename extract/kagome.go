package extract

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// KagomeTokenizer segments Japanese text into words using the kagome
// morphological analyzer and the IPA dictionary. Japanese has no word
// delimiters, so the iterative English tokenizer does not apply.
type KagomeTokenizer struct {
	t *tokenizer.Tokenizer
}

// NewKagomeTokenizer builds a tokenizer over the embedded IPA dictionary.
func NewKagomeTokenizer() (*KagomeTokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeTokenizer{t: t}, nil
}

// Tokenize returns the surface forms of the morphemes in text.
func (k *KagomeTokenizer) Tokenize(text string) []string {
	var words []string
	for _, tok := range k.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(tok.Surface) == "" {
			continue
		}
		words = append(words, tok.Surface)
	}
	return words
}

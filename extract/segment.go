package extract

import (
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// PunktSegmenter segments text into sentences using the Punkt algorithm
// with the English training data.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter builds a segmenter from the embedded English data.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &PunktSegmenter{tokenizer: tok}, nil
}

// Segment splits text into sentences. When realign is true, a sentence
// consisting only of closing punctuation is folded back onto the sentence
// it closes, and leading closers are moved to the previous sentence.
func (p *PunktSegmenter) Segment(text string, realign bool) []string {
	raw := p.tokenizer.Tokenize(text)

	var sents []string
	for _, s := range raw {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		sents = append(sents, trimmed)
	}

	if realign {
		sents = realignBoundaries(sents)
	}
	return sents
}

const closers = `"')]}` + "”’"

// realignBoundaries moves closing quotes and brackets stranded at the start
// of a sentence onto the end of the previous one.
func realignBoundaries(sents []string) []string {
	var out []string
	for _, s := range sents {
		trimmed := strings.TrimLeft(s, closers)
		moved := s[:len(s)-len(trimmed)]
		if moved != "" && len(out) > 0 {
			out[len(out)-1] += moved
			s = strings.TrimSpace(trimmed)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

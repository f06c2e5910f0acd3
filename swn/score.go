package swn

import "errors"

// A Score is an aggregate sentiment tally over a set of words.
type Score struct {
	Positive float64
	Negative float64
	Matched  int
}

// Net returns the positive score minus the negative score.
func (s Score) Net() float64 {
	return s.Positive - s.Negative
}

// ScoreWords tallies sentiment over words using each word's most frequent
// sense. Words with no synsets are skipped and do not count toward
// Matched; any other lookup failure aborts the tally.
func (lx *Lexicon) ScoreWords(words []string) (Score, error) {
	var s Score
	for _, w := range words {
		e, err := lx.MostFrequentSynset(w, "")
		if err != nil {
			if errors.Is(err, ErrNoSynsets) {
				continue
			}
			return Score{}, err
		}
		s.Positive += e.Positive
		s.Negative += e.Negative
		s.Matched++
	}
	return s, nil
}

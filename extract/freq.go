package extract

import (
	"strings"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/textkit/sortutil"
)

// A FreqDist maps items to occurrence counts.
type FreqDist map[string]int

// Inc adds one occurrence of item.
func (fd FreqDist) Inc(item string) {
	fd[item]++
}

// N returns the total number of observed occurrences.
func (fd FreqDist) N() int {
	total := 0
	for _, n := range fd {
		total += n
	}
	return total
}

// MostCommon returns up to n entries ordered by descending count, ties
// broken by descending key. Pass n <= 0 for all entries.
func (fd FreqDist) MostCommon(n int) []sortutil.Entry {
	entries := sortutil.MapByValue(fd, true)
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// WithoutStopwords returns a copy of the distribution with stop words of
// the given ISO 639-1 language code removed.
func (fd FreqDist) WithoutStopwords(langCode string) FreqDist {
	out := make(FreqDist, len(fd))
	for item, n := range fd {
		// CleanString returns an empty string for pure stop words.
		cleaned := strings.TrimSpace(stopwords.CleanString(item, langCode, false))
		if cleaned == "" {
			continue
		}
		out[item] = n
	}
	return out
}

// Entropy returns the Shannon entropy, in nats, of the normalized
// distribution. An empty distribution has zero entropy.
func (fd FreqDist) Entropy() float64 {
	total := float64(fd.N())
	if total == 0 {
		return 0
	}
	probs := make([]float64, 0, len(fd))
	for _, n := range fd {
		probs = append(probs, float64(n)/total)
	}
	return stat.Entropy(probs)
}

// Mean returns the mean occurrence count across items.
func (fd FreqDist) Mean() float64 {
	if len(fd) == 0 {
		return 0
	}
	counts := make([]float64, 0, len(fd))
	for _, n := range fd {
		counts = append(counts, float64(n))
	}
	return stat.Mean(counts, nil)
}

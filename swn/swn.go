// Package swn reads a SentiWordNet lexicon file and resolves sentiment
// scores for words through a WordNet-style synset lookup.
package swn

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/textkit/internal/logging"
	"github.com/tsawler/textkit/memo"
	"github.com/tsawler/textkit/wordnet"
)

// ErrNoSynsets is returned when a word has no candidate synsets.
var ErrNoSynsets = errors.New("no synsets for word")

// A Key uniquely identifies a synset within the lexicon.
type Key struct {
	POS    string
	Offset int
}

// An Entry holds the sentiment scores of one synset. Entries are immutable
// once the lexicon is loaded.
type Entry struct {
	POS       string
	Offset    int
	Positive  float64
	Negative  float64
	Objective float64
}

// Key returns the entry's lookup key.
func (e Entry) Key() Key {
	return Key{POS: e.POS, Offset: e.Offset}
}

// Scores returns the positive, negative and objective scores. They sum to
// one.
func (e Entry) Scores() (positive, negative, objective float64) {
	return e.Positive, e.Negative, e.Objective
}

func (e Entry) String() string {
	return fmt.Sprintf("<%s, %d, %g %g %g>",
		e.POS, e.Offset, e.Positive, e.Negative, e.Objective)
}

// Synsetter answers synset lookups by word. *wordnet.Index implements it.
type Synsetter interface {
	Synsets(word, pos string) []wordnet.Sense
}

// A Lexicon is an in-memory SentiWordNet index keyed by (POS, offset),
// built once at load time and read-only afterwards.
type Lexicon struct {
	entries map[Key]Entry
	syn     Synsetter
}

// Load scans a SentiWordNet file once, line by line. Lines starting with
// '#' are comments. Every data line must have six tab-separated fields:
// POS, synset offset, positive score, negative score, synset terms and
// gloss; the last two are discarded because the Synsetter is the source of
// truth for terms. Any malformed line aborts the load with its line number
// and content. A later line with a duplicate key overwrites the earlier
// entry.
func Load(path string, syn Synsetter) (*Lexicon, error) {
	defer memo.Track(time.Now(), "swn.Load")

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lx := &Lexicon{
		entries: make(map[Key]Entry),
		syn:     syn,
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	duplicates := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d %q: %w", lineNo, line, err)
		}
		if _, seen := lx.entries[entry.Key()]; seen {
			duplicates++
		}
		lx.entries[entry.Key()] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if duplicates > 0 {
		logging.WithComponent("swn").Debug("duplicate lexicon keys overwritten",
			"path", path, "count", duplicates)
	}
	return lx, nil
}

// parseLine decodes one data line. The objective score is not stored in
// the file; it is derived so that the three scores sum to one.
func parseLine(line string) (Entry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 6 {
		return Entry{}, fmt.Errorf("%d fields, want 6", len(fields))
	}

	pos := strings.TrimSpace(fields[0])
	if pos == "" {
		return Entry{}, errors.New("empty POS tag")
	}

	offset, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Entry{}, fmt.Errorf("synset offset: %w", err)
	}
	positive, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return Entry{}, fmt.Errorf("positive score: %w", err)
	}
	negative, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return Entry{}, fmt.Errorf("negative score: %w", err)
	}

	return Entry{
		POS:       pos,
		Offset:    offset,
		Positive:  positive,
		Negative:  negative,
		Objective: 1.0 - positive - negative,
	}, nil
}

// Entry returns the lexicon entry for a key.
func (lx *Lexicon) Entry(k Key) (Entry, bool) {
	e, ok := lx.entries[k]
	return e, ok
}

// Len returns the number of entries in the lexicon.
func (lx *Lexicon) Len() int {
	return len(lx.entries)
}

// PossibleSynsets returns the lexicon entries for every candidate synset
// of the given word, most frequent first. The pos filter may be empty. A
// candidate synset with no lexicon entry is a hard error: it means the
// lexicon file and the dictionary disagree.
func (lx *Lexicon) PossibleSynsets(word, pos string) ([]Entry, error) {
	candidates := lx.syn.Synsets(word, pos)
	entries := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		e, ok := lx.entries[Key{POS: c.POS, Offset: c.Offset}]
		if !ok {
			return nil, fmt.Errorf("word %q: no lexicon entry for synset %s %d",
				word, c.POS, c.Offset)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// MostFrequentSynset returns the entry for the word's most frequent sense,
// relying on the dictionary's frequency-ranked candidate ordering. It
// returns ErrNoSynsets when the word has no candidates for the given pos
// filter.
func (lx *Lexicon) MostFrequentSynset(word, pos string) (Entry, error) {
	candidates := lx.syn.Synsets(word, pos)
	if len(candidates) == 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrNoSynsets, word)
	}
	first := candidates[0]
	e, ok := lx.entries[Key{POS: first.POS, Offset: first.Offset}]
	if !ok {
		return Entry{}, fmt.Errorf("word %q: no lexicon entry for synset %s %d",
			word, first.POS, first.Offset)
	}
	return e, nil
}

// Package wordnet reads the index files of a WordNet dictionary and
// answers synset lookups by word.
//
// Only the index.* files are consulted: they carry, for every lemma, the
// offsets of its synsets ordered by sense frequency, which is all the
// toolkit needs to resolve sentiment entries. Glosses and synset terms stay
// with the full WordNet distribution.
package wordnet

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// A Sense identifies one synset: a part-of-speech letter and the synset's
// offset within that part of speech.
type Sense struct {
	POS    string
	Offset int
}

// partOfSpeechFiles maps POS letters to their index file, in lookup order.
var partOfSpeechFiles = []struct {
	pos  string
	file string
}{
	{"n", "index.noun"},
	{"v", "index.verb"},
	{"a", "index.adj"},
	{"r", "index.adv"},
}

// An Index is an in-memory view of a dictionary's index files, built once
// and read-only afterwards.
type Index struct {
	// senses maps a normalized lemma to its candidate synsets, grouped by
	// part of speech in file order.
	senses map[string]map[string][]Sense
}

// Load reads the index files under dir (the WordNet dict directory).
// Index files absent from dir are skipped; at least one must be present.
func Load(dir string) (*Index, error) {
	idx := &Index{senses: make(map[string]map[string][]Sense)}

	loaded := 0
	for _, pf := range partOfSpeechFiles {
		path := filepath.Join(dir, pf.file)
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		err = idx.parse(f, pf.pos, pf.file)
		f.Close()
		if err != nil {
			return nil, err
		}
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("no index files found in %s", dir)
	}
	return idx, nil
}

func (idx *Index) parse(f *os.File, pos, name string) error {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		// The license header lines start with whitespace.
		if line == "" || line[0] == ' ' {
			continue
		}

		lemma, senses, err := parseIndexLine(line, pos)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", name, lineNo, err)
		}
		byPOS, ok := idx.senses[lemma]
		if !ok {
			byPOS = make(map[string][]Sense)
			idx.senses[lemma] = byPOS
		}
		byPOS[pos] = senses
	}
	return scanner.Err()
}

// parseIndexLine decodes one data line of an index file:
//
//	lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt offset...
//
// The trailing synset_cnt offsets are ordered by sense frequency.
func parseIndexLine(line, pos string) (string, []Sense, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return "", nil, fmt.Errorf("short line %q", line)
	}

	lemma := fields[0]
	count, err := strconv.Atoi(fields[2])
	if err != nil || count <= 0 {
		return "", nil, fmt.Errorf("bad synset count in %q", line)
	}
	ptrCount, err := strconv.Atoi(fields[3])
	if err != nil || ptrCount < 0 {
		return "", nil, fmt.Errorf("bad pointer count in %q", line)
	}
	// lemma pos synset_cnt p_cnt + pointers + sense_cnt tagsense_cnt + offsets.
	if want := 6 + ptrCount + count; len(fields) != want {
		return "", nil, fmt.Errorf("%d fields, want %d in %q",
			len(fields), want, line)
	}

	offsetFields := fields[len(fields)-count:]
	senses := make([]Sense, 0, count)
	for _, of := range offsetFields {
		offset, err := strconv.Atoi(of)
		if err != nil {
			return "", nil, fmt.Errorf("bad offset %q in %q", of, line)
		}
		senses = append(senses, Sense{POS: pos, Offset: offset})
	}
	return lemma, senses, nil
}

// Synsets returns the candidate synsets for word, most frequent first. An
// empty pos searches every part of speech in n, v, a, r order; otherwise
// only the given POS letter is consulted. An unknown word yields an empty
// slice.
func (idx *Index) Synsets(word, pos string) []Sense {
	byPOS, ok := idx.senses[normalize(word)]
	if !ok {
		return nil
	}

	if pos != "" {
		return append([]Sense(nil), byPOS[pos]...)
	}

	var out []Sense
	for _, pf := range partOfSpeechFiles {
		out = append(out, byPOS[pf.pos]...)
	}
	return out
}

// Lemmas returns the number of distinct lemmas in the index.
func (idx *Index) Lemmas() int {
	return len(idx.senses)
}

// normalize lowercases a word and joins multi-word collocations with
// underscores, matching the index file conventions.
func normalize(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
}

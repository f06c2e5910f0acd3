package wordnet

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const indexNoun = `  1 This header line is skipped.
dog n 2 1 @ 2 1 02084071 10133978
cat n 1 1 @ 1 1 02121620
ice_cream n 1 1 @ 1 1 07615774
`

const indexAdj = `able a 1 1 = 1 1 00001740
good a 2 1 = 2 2 01123148 01983162
`

func writeDict(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadAndSynsets(t *testing.T) {
	dir := writeDict(t, map[string]string{
		"index.noun": indexNoun,
		"index.adj":  indexAdj,
	})

	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if idx.Lemmas() != 5 {
		t.Errorf("Lemmas = %d, want 5", idx.Lemmas())
	}

	dog := idx.Synsets("dog", "n")
	want := []Sense{{"n", 2084071}, {"n", 10133978}}
	if !reflect.DeepEqual(dog, want) {
		t.Errorf("Synsets(dog, n) = %v, want %v", dog, want)
	}

	// Frequency order: the first offset is the most frequent sense.
	if dog[0].Offset != 2084071 {
		t.Errorf("most frequent dog sense = %d", dog[0].Offset)
	}

	if got := idx.Synsets("dog", "a"); len(got) != 0 {
		t.Errorf("Synsets(dog, a) = %v, want none", got)
	}
	if got := idx.Synsets("unicorn", ""); len(got) != 0 {
		t.Errorf("Synsets(unicorn) = %v, want none", got)
	}
}

func TestSynsetsAllPOS(t *testing.T) {
	dir := writeDict(t, map[string]string{
		"index.noun": "light n 1 1 @ 1 1 11473954\n",
		"index.adj":  "light a 1 1 = 1 1 00978700\n",
	})

	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	all := idx.Synsets("light", "")
	if len(all) != 2 {
		t.Fatalf("Synsets(light) = %v", all)
	}
	// Nouns come before adjectives in the combined ordering.
	if all[0].POS != "n" || all[1].POS != "a" {
		t.Errorf("POS order = %s, %s", all[0].POS, all[1].POS)
	}
}

func TestSynsetsNormalizesWord(t *testing.T) {
	dir := writeDict(t, map[string]string{"index.noun": indexNoun})
	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := idx.Synsets("Ice Cream", "n"); len(got) != 1 {
		t.Errorf("Synsets(Ice Cream) = %v", got)
	}
	if got := idx.Synsets("DOG", ""); len(got) != 2 {
		t.Errorf("Synsets(DOG) = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for empty dict directory")
	}

	dir := writeDict(t, map[string]string{
		"index.noun": "dog n zero 1 @ 1 1 02084071\n",
	})
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed synset count")
	}

	dir = writeDict(t, map[string]string{
		"index.noun": "dog n 3 1 @ 1 1 02084071\n",
	})
	if _, err := Load(dir); err == nil {
		t.Error("expected error when offsets are missing")
	}
}

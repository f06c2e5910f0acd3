package extract

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLines(t *testing.T) {
	path := writeFile(t, "lines.txt", "  first  \nsecond\n\n third\n")

	stripped, err := Lines(path, true)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	want := []string{"first", "second", "", "third"}
	if !reflect.DeepEqual(stripped, want) {
		t.Errorf("Lines stripped = %q, want %q", stripped, want)
	}

	raw, err := Lines(path, false)
	if err != nil {
		t.Fatalf("Lines raw: %v", err)
	}
	if raw[0] != "  first  " {
		t.Errorf("raw first line = %q", raw[0])
	}
}

func TestLinesMissingFile(t *testing.T) {
	_, err := Lines(filepath.Join(t.TempDir(), "missing.txt"), true)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestText(t *testing.T) {
	path := writeFile(t, "text.txt", "  hello \nworld  \n")
	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "hello\nworld" {
		t.Errorf("Text = %q", got)
	}
}

func TestSplitText(t *testing.T) {
	path := writeFile(t, "split.txt", "alpha==beta==gamma")
	parts, err := SplitText(path, "==+", -1)
	if err != nil {
		t.Fatalf("SplitText: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("SplitText = %v, want %v", parts, want)
	}

	limited, err := SplitText(path, "==+", 2)
	if err != nil {
		t.Fatalf("SplitText limited: %v", err)
	}
	if len(limited) != 2 || limited[1] != "beta==gamma" {
		t.Errorf("SplitText limited = %v", limited)
	}

	if _, err := SplitText(path, "([", -1); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestTextLines(t *testing.T) {
	s := "one\n\n  \ntwo"
	if got := TextLines(s, true); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("TextLines ignoreBlank = %v", got)
	}
	if got := TextLines(s, false); len(got) != 4 {
		t.Errorf("TextLines keep blanks = %v", got)
	}
}

func TestFromHTML(t *testing.T) {
	html := `<!DOCTYPE html>
<html><head><title>Trees</title></head><body>
<article>
<h1>On Trees</h1>
<p>Trees are long-lived woody plants that dominate forest ecosystems across
the planet. Their canopies regulate temperature and humidity, and their root
systems bind soil against erosion over many decades of growth.</p>
<p>Beyond their ecological role, trees have shaped human settlement patterns
for millennia, providing fuel, shelter and food to every civilization that
grew up among them.</p>
</article>
</body></html>`
	path := writeFile(t, "article.html", html)

	text, err := FromHTML(path, "https://example.com/trees")
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if !strings.Contains(text, "woody plants") {
		t.Errorf("extracted text missing content: %q", text)
	}
}

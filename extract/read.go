package extract

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

// Lines returns the lines of a text file. Leading and trailing whitespace
// is stripped from each line when strip is true.
func Lines(path string, strip bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strip {
			line = strings.TrimSpace(line)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Text returns the content of a text file as a single string, with each
// line stripped of surrounding whitespace and joined by newlines.
func Text(path string) (string, error) {
	lines, err := Lines(path, true)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// SplitText splits the content of a text file around matches of a regular
// expression pattern. The count n bounds the number of pieces as in
// regexp.Split; pass -1 for all pieces.
func SplitText(path, pattern string, n int) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("split pattern: %w", err)
	}
	text, err := Text(path)
	if err != nil {
		return nil, err
	}
	return re.Split(text, n), nil
}

// TextLines splits a string into lines, omitting blank lines by default.
func TextLines(s string, ignoreBlank bool) []string {
	lines := strings.Split(s, "\n")
	if !ignoreBlank {
		return lines
	}
	return OmitBlank(lines)
}

// OmitBlank filters out purely-whitespace strings.
func OmitBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// FromHTML extracts the readable article text from an HTML document. The
// pageURL resolves relative references and may be empty.
func FromHTML(path, pageURL string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var u *url.URL
	if pageURL != "" {
		u, err = url.Parse(pageURL)
		if err != nil {
			return "", fmt.Errorf("page url: %w", err)
		}
	}

	article, err := readability.FromReader(f, u)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	return article.TextContent, nil
}

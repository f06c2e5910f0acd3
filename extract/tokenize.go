package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IterTokenizer splits text into word tokens by iteratively peeling
// punctuation prefixes and suffixes and splitting contractions.
type IterTokenizer struct {
	specialRE    *regexp.Regexp
	sanitizer    *strings.Replacer
	contractions []string
	splitCases   []string
	suffixes     []string
	prefixes     []string
	emoticons    map[string]struct{}
}

type TokenizerOpt func(*IterTokenizer)

// UsingContractions overrides the contraction suffixes split off words.
func UsingContractions(x []string) TokenizerOpt {
	return func(t *IterTokenizer) { t.contractions = x }
}

// UsingSuffixes overrides the punctuation peeled off token ends.
func UsingSuffixes(x []string) TokenizerOpt {
	return func(t *IterTokenizer) { t.suffixes = x }
}

// UsingPrefixes overrides the punctuation peeled off token starts.
func UsingPrefixes(x []string) TokenizerOpt {
	return func(t *IterTokenizer) { t.prefixes = x }
}

// UsingSpecialRE overrides the pattern for tokens kept whole, such as
// abbreviations.
func UsingSpecialRE(x *regexp.Regexp) TokenizerOpt {
	return func(t *IterTokenizer) { t.specialRE = x }
}

// NewIterTokenizer returns a tokenizer with sensible English defaults.
func NewIterTokenizer(opts ...TokenizerOpt) *IterTokenizer {
	tok := &IterTokenizer{
		contractions: contractions,
		emoticons:    emoticons,
		prefixes:     prefixes,
		sanitizer:    sanitizer,
		specialRE:    abbrevRE,
		suffixes:     suffixes,
	}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	tok.splitCases = append(tok.splitCases, tok.contractions...)
	return tok
}

func (t *IterTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || t.specialRE.MatchString(token)
}

func (t *IterTokenizer) doSplit(token string) []string {
	var tokens, suffs []string

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// An emoticon or abbreviation is kept whole.
			tokens = appendToken(tokens, token)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// Remove prefixes -- e.g., $100 -> [$, 100].
			tokens = appendToken(tokens, string(token[0]))
			token = token[1:]
		} else if idx, match := hasAnyIndex(lower, t.splitCases); idx > -1 {
			// Handle "they'll", "don't", amount($).
			//
			// they'll -> [they, 'll].
			// don't -> [do, n't].
			if idx == 0 {
				// The remainder starts with the split case, as with
				// "n't" after "do" was peeled off.
				idx = len(match)
			}
			tokens = appendToken(tokens, token[:idx])
			token = token[idx:]
		} else if hasAnySuffix(token, t.suffixes) {
			// Remove suffixes -- e.g., Well) -> [Well, )].
			suffs = append([]string{string(token[len(token)-1])}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = appendToken(tokens, token)
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits text into a slice of words.
func (t *IterTokenizer) Tokenize(text string) []string {
	var tokens []string

	clean, white := t.sanitizer.Replace(text), false
	length := len(clean)

	start, index := 0, 0
	cache := map[string][]string{}
	for index <= length {
		uc, size := utf8.DecodeRuneInString(clean[index:])
		if size == 0 {
			break
		} else if index == 0 {
			white = unicode.IsSpace(uc)
		}
		if unicode.IsSpace(uc) != white {
			if start < index {
				span := clean[start:index]
				if toks, found := cache[span]; found {
					tokens = append(tokens, toks...)
				} else {
					toks := t.doSplit(span)
					cache[span] = toks
					tokens = append(tokens, toks...)
				}
			}
			if uc == ' ' {
				start = index + 1
			} else {
				start = index
			}
			white = !white
		}
		index += size
	}

	if start < index {
		tokens = append(tokens, t.doSplit(clean[start:index])...)
	}

	return tokens
}

func appendToken(toks []string, s string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func hasAnyIndex(s string, cases []string) (int, string) {
	for _, c := range cases {
		if idx := strings.Index(s, c); idx > -1 {
			return idx, c
		}
	}
	return -1, ""
}

var abbrevRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var contractions = []string{"'ll", "'s", "'re", "'m", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}
var emoticons = map[string]struct{}{
	":(":   {},
	":)":   {},
	":-(":  {},
	":-)":  {},
	":-/":  {},
	":-|":  {},
	":D":   {},
	":P":   {},
	":p":   {},
	";)":   {},
	"<3":   {},
	"=(":   {},
	"=)":   {},
	"O_o":  {},
	"o_O":  {},
	"xD":   {},
	"^_^":  {},
	"-__-": {},
}

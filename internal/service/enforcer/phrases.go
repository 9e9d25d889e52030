package enforcer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
)

// maxStripRounds bounds the fixed-point loop of phrase removal.
const maxStripRounds = 4

var (
	connectWord = regexp.MustCompile(`(?i)connect`)
	apostrophes = strings.NewReplacer("’", "'", "‘", "'")
)

// phraseSet removes a list of phrases as whole words, ignoring case.
type phraseSet struct {
	phrases  []string
	patterns []*regexp.Regexp
	matcher  *ahocorasick.Matcher
}

func newPhraseSet(phrases []string) *phraseSet {
	s := &phraseSet{}
	var keys []string
	for _, p := range phrases {
		re := phrasePattern(p)
		if re == nil {
			continue
		}
		s.phrases = append(s.phrases, strings.TrimSpace(p))
		s.patterns = append(s.patterns, re)
		keys = append(keys, strings.ToLower(strings.Join(strings.Fields(apostrophes.Replace(p)), " ")))
	}
	if len(keys) > 0 {
		s.matcher = ahocorasick.NewStringMatcher(keys)
	}
	return s
}

// candidates returns the indexes of phrases that occur as plain substrings.
// Only those need the word-boundary regex.
func (s *phraseSet) candidates(text string) []int {
	if s.matcher == nil || text == "" {
		return nil
	}
	hits := s.matcher.Match([]byte(strings.ToLower(collapse(text))))
	seen := make(map[int]bool, len(hits))
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		if h < 0 || h >= len(s.patterns) || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}

func (s *phraseSet) strip(text string) string {
	for round := 0; round < maxStripRounds; round++ {
		idx := s.candidates(text)
		if len(idx) == 0 {
			return text
		}
		before := text
		for _, i := range idx {
			text = s.patterns[i].ReplaceAllString(text, "")
		}
		if text == before {
			return text
		}
	}
	return text
}

func (s *phraseSet) find(text string) []string {
	var found []string
	for _, i := range s.candidates(text) {
		if s.patterns[i].MatchString(text) {
			found = append(found, s.phrases[i])
		}
	}
	return found
}

// phrasePattern matches phrase case-insensitively with any whitespace between its
// words. Word boundaries are only asserted on ASCII word characters, since that is
// all RE2's \b understands.
func phrasePattern(phrase string) *regexp.Regexp {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return nil
	}
	for i, w := range words {
		words[i] = regexp.QuoteMeta(apostrophes.Replace(w))
	}
	expr := strings.Join(words, `\s+`)

	first, _ := utf8.DecodeRuneInString(words[0])
	last, _ := utf8.DecodeLastRuneInString(words[len(words)-1])
	if isWordRune(first) {
		expr = `\b` + expr
	}
	if isWordRune(last) {
		expr += `\b`
	}
	return regexp.MustCompile(`(?i)` + expr)
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// redact removes every whole-word occurrence of value.
func redact(text, value string) string {
	re := phrasePattern(value)
	if re == nil {
		return text
	}
	for round := 0; round < maxStripRounds; round++ {
		next := re.ReplaceAllString(text, "")
		if next == text {
			break
		}
		text = next
	}
	return text
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// signaturePattern matches a trailing sign-off: optional closing words followed by
// one of the sender names, through end of text.
func signaturePattern(closingWords, senderNames []string) *regexp.Regexp {
	var names []string
	for _, n := range senderNames {
		if words := strings.Fields(n); len(words) > 0 {
			for i, w := range words {
				words[i] = regexp.QuoteMeta(w)
			}
			names = append(names, strings.Join(words, `\s+`))
		}
	}
	if len(names) == 0 {
		return nil
	}

	var closers []string
	for _, w := range closingWords {
		if w = strings.TrimSpace(w); w != "" {
			closers = append(closers, regexp.QuoteMeta(w))
		}
	}

	expr := `(?i)(?:^|\s+)(?:[-–—]+\s*)?`
	if len(closers) > 0 {
		expr += `(?:(?:` + strings.Join(closers, "|") + `)\b[\s,]*)*`
	}
	expr += `(?:` + strings.Join(names, "|") + `)[\s.!]*$`
	return regexp.MustCompile(expr)
}

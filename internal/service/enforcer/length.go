package enforcer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const ellipsis = "..."

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateAtPeriod shortens s to at most limit runes. It cuts after the last
// sentence-ending period that fits; without one it hard-cuts at limit-3 runes and
// appends an ellipsis.
func truncateAtPeriod(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if cut := lastPeriod(r, limit); cut >= 0 {
		return string(r[:cut+1])
	}
	return string(r[:max(limit-len(ellipsis), 0)]) + ellipsis
}

// lastPeriod returns the index of the last '.' within the first limit runes that
// ends a sentence, or -1.
func lastPeriod(r []rune, limit int) int {
	for i := min(limit, len(r)) - 1; i >= 0; i-- {
		if r[i] == '.' && endsSentence(r, i) {
			return i
		}
	}
	return -1
}

func endsSentence(r []rune, i int) bool {
	return i+1 == len(r) || unicode.IsSpace(r[i+1])
}

// splitBefore returns the text before pos with trailing whitespace removed, and the
// separator to put back between it and what follows.
func splitBefore(msg string, pos int) (head, sep string) {
	head = strings.TrimRightFunc(msg[:pos], unicode.IsSpace)
	if strings.Contains(msg[len(head):pos], "\n") {
		return head, "\n\n"
	}
	return head, " "
}

// closingFrom turns a matched connect phrase into a standalone closing sentence.
func closingFrom(phrase string) string {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return phrase
	}
	r, size := utf8.DecodeRuneInString(phrase)
	return string(unicode.ToUpper(r)) + phrase[size:] + "."
}

func joinNonEmpty(head, sep, tail string) string {
	head = strings.TrimSpace(head)
	if head == "" {
		return tail
	}
	return head + sep + tail
}

// Package enforcer turns a raw LLM draft into a message that satisfies the
// configured rules: banned vocabulary removed, company and designation redacted,
// no signature, a call to action present and a length inside [MinLength, MaxLength].
//
// Enforce is total. It never fails and always returns a string, including for an
// empty draft. The length floor is best effort: a single filler sentence is
// inserted at most once, so a draft can end up short when no filler fits.
package enforcer

import (
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/sandevgo/reachout/internal/config"
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

type randomPicker struct{}

func (randomPicker) IntN(n int) int {
	return rand.IntN(n)
}

// Stage is the output of one pass, as returned by Trace.
type Stage struct {
	Name   string
	Output string
}

type pass struct {
	name  string
	apply func(msg string, f fields) string
}

type fields struct {
	company     string
	designation string
}

type Enforcer struct {
	rules     *config.Rules
	picker    Picker
	banned    *phraseSet
	connect   []*regexp.Regexp
	signature *regexp.Regexp
	passes    []pass
}

// New builds an Enforcer. A nil picker selects fillers at random.
func New(rules *config.Rules, picker Picker) *Enforcer {
	if picker == nil {
		picker = randomPicker{}
	}
	e := &Enforcer{
		rules:     rules,
		picker:    picker,
		banned:    newPhraseSet(rules.BannedPhrases),
		signature: signaturePattern(rules.ClosingWords, rules.SenderNames),
	}
	for _, p := range rules.ConnectPhrases {
		if words := strings.Fields(apostrophes.Replace(p)); len(words) > 0 {
			for i, w := range words {
				words[i] = regexp.QuoteMeta(w)
			}
			e.connect = append(e.connect, regexp.MustCompile(`(?i)`+strings.Join(words, `\s+`)))
		}
	}

	e.passes = []pass{
		{"strip_phrases", func(msg string, _ fields) string { return e.banned.strip(msg) }},
		{"redact_fields", func(msg string, f fields) string { return e.redactFields(msg, f) }},
		{"normalize_whitespace", func(msg string, _ fields) string { return collapse(msg) }},
		{"strip_signature", func(msg string, _ fields) string { return e.stripSignature(msg) }},
		{"call_to_action", func(msg string, _ fields) string { return e.ensureCallToAction(msg) }},
		{"upper_bound", func(msg string, _ fields) string { return e.capLength(msg) }},
		{"lower_bound", func(msg string, _ fields) string { return e.padLength(msg) }},
	}
	return e
}

// Enforce rewrites draft into a compliant message. Empty company or designation
// values are ignored.
func (e *Enforcer) Enforce(draft, company, designation string) string {
	msg := apostrophes.Replace(draft)
	f := fields{company: strings.TrimSpace(company), designation: strings.TrimSpace(designation)}
	for _, p := range e.passes {
		msg = p.apply(msg, f)
	}
	return msg
}

// Trace runs the same pipeline as Enforce and records every intermediate result.
func (e *Enforcer) Trace(draft, company, designation string) []Stage {
	msg := apostrophes.Replace(draft)
	f := fields{company: strings.TrimSpace(company), designation: strings.TrimSpace(designation)}
	stages := make([]Stage, 0, len(e.passes))
	for _, p := range e.passes {
		msg = p.apply(msg, f)
		stages = append(stages, Stage{Name: p.name, Output: msg})
	}
	return stages
}

// Audit lists the banned phrases present in text as whole words.
func (e *Enforcer) Audit(text string) []string {
	return e.banned.find(apostrophes.Replace(text))
}

// HasCallToAction reports whether text contains one of the connect phrases.
func (e *Enforcer) HasCallToAction(text string) bool {
	_, _, ok := e.findConnect(apostrophes.Replace(text))
	return ok
}

// redactFields removes company and designation, then strips banned phrases the
// removal may have joined back together, until nothing changes.
func (e *Enforcer) redactFields(msg string, f fields) string {
	for round := 0; round < maxStripRounds; round++ {
		next := e.banned.strip(redact(redact(msg, f.company), f.designation))
		if next == msg {
			break
		}
		msg = next
	}
	return msg
}

func (e *Enforcer) stripSignature(msg string) string {
	if e.signature == nil {
		return msg
	}
	return strings.TrimSpace(e.signature.ReplaceAllString(msg, ""))
}

func (e *Enforcer) ensureCallToAction(msg string) string {
	if _, _, ok := e.findConnect(msg); ok {
		return msg
	}

	closing := e.rules.CanonicalClosing
	if loc := connectWord.FindStringIndex(msg); loc != nil {
		return joinNonEmpty(msg[:loc[0]], " ", closing)
	}

	return joinNonEmpty(msg, "\n\n", closing)
}

func (e *Enforcer) capLength(msg string) string {
	max := e.rules.MaxLength
	if runeLen(msg) <= max {
		return msg
	}

	start, end, ok := e.findConnect(msg)
	if !ok {
		return truncateAtPeriod(msg, max)
	}

	head, sep := splitBefore(msg, start)
	if runeLen(head) > e.rules.MaxMainLength {
		head = truncateAtPeriod(head, e.rules.MaxMainLength)
	}
	return joinNonEmpty(head, sep, closingFrom(msg[start:end]))
}

func (e *Enforcer) padLength(msg string) string {
	min, max := e.rules.MinLength, e.rules.MaxLength
	if runeLen(msg) >= min || len(e.rules.Fillers) == 0 {
		return msg
	}

	var inWindow []string
	best, bestLen := msg, runeLen(msg)
	for _, filler := range e.rules.Fillers {
		c := e.insertFiller(msg, filler)
		n := runeLen(c)
		if n >= min && n <= max {
			inWindow = append(inWindow, c)
		}
		if n <= max && n > bestLen {
			best, bestLen = c, n
		}
	}

	if len(inWindow) > 0 {
		return inWindow[e.picker.IntN(len(inWindow))]
	}
	return best
}

func (e *Enforcer) insertFiller(msg, filler string) string {
	start, _, ok := e.findConnect(msg)
	if !ok {
		return joinNonEmpty(msg, " ", filler)
	}
	head, sep := splitBefore(msg, start)
	if head == "" {
		return filler + " " + msg[start:]
	}
	return head + " " + filler + sep + msg[start:]
}

// findConnect locates the connect phrase occurrence that starts last.
func (e *Enforcer) findConnect(msg string) (start, end int, ok bool) {
	start = -1
	for _, re := range e.connect {
		locs := re.FindAllStringIndex(msg, -1)
		if len(locs) == 0 {
			continue
		}
		if loc := locs[len(locs)-1]; loc[0] > start {
			start, end = loc[0], loc[1]
		}
	}
	return start, end, start >= 0
}

package enforcer

import (
	"strings"
	"testing"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPicker int

func (p fixedPicker) IntN(n int) int {
	return min(int(p), n-1)
}

func testRules(t *testing.T) *config.Rules {
	t.Helper()
	r, err := config.DefaultRules()
	require.NoError(t, err)
	return r
}

func stage(t *testing.T, stages []Stage, name string) string {
	t.Helper()
	for _, s := range stages {
		if s.Name == name {
			return s.Output
		}
	}
	t.Fatalf("no stage %q", name)
	return ""
}

func TestEnforce_WorkedExample(t *testing.T) {
	rules := testRules(t)
	rules.SenderNames = []string{"Sender"}
	e := New(rules, fixedPicker(0))

	draft := "Hi Sam, I was exploring your recent Impressive post on AI. Regards, Sender"
	stages := e.Trace(draft, "", "")

	assert.Equal(t, "Hi Sam, I was your recent post on AI.", stage(t, stages, "strip_signature"))
	assert.Equal(t, "Hi Sam, I was your recent post on AI.\n\nWould love to connect.", stage(t, stages, "call_to_action"))

	got := e.Enforce(draft, "", "")
	n := runeLen(got)
	assert.GreaterOrEqual(t, n, 200)
	assert.LessOrEqual(t, n, 270)
	assert.True(t, strings.HasPrefix(got, "Hi Sam, I was your recent post on AI. "))
	assert.True(t, strings.HasSuffix(got, "\n\nWould love to connect."))
	// the first filler that lands in the window is the 163 rune one
	assert.Contains(t, got, rules.Fillers[4])
}

func TestEnforce_Properties(t *testing.T) {
	rules := testRules(t)
	e := New(rules, nil)

	drafts := []string{
		"",
		"Hi",
		"Hi Dana, saw your talk on observability at Acme. Inspiring and Remarkable work. Best regards, [Your Name]",
		"Hi Lee, I was interested in your note about hiring. It Stood out to me. Cheers, Your Name",
		"Hi Ana, your post about platform teams was great. Hope to reconnect soon, Thanks [Name]",
		strings.Repeat("We shipped a new build today. ", 12) + "Let's connect and exchange ideas.",
		strings.Repeat("abcd ", 80),
		strings.Repeat("Long sentence without any terminator ", 10),
		"Hi Kim,\n\n\tLoved   your   thread.\nI’d love to connect.",
		"No easy No small feat feat, Fascinating stuff. Would love to connect",
		"Your talk Stood Acme out to me. Would love to connect.",
		"No easy Staff Engineer feat at all. Let's connect.",
	}

	for _, d := range drafts {
		got := e.Enforce(d, "Acme", "Staff Engineer")

		assert.LessOrEqual(t, runeLen(got), rules.MaxLength, "draft %q", d)
		assert.True(t, e.HasCallToAction(got), "no call to action in %q", got)
		assert.Empty(t, e.Audit(got), "banned phrase left in %q", got)
		assert.NotContains(t, got, "Acme")
		assert.NotContains(t, got, "Staff Engineer")
		assert.NotContains(t, got, "[Your Name]")
		assert.NotContains(t, got, "’")
	}
}

func TestEnforce_EmptyDraft(t *testing.T) {
	rules := testRules(t)
	e := New(rules, fixedPicker(0))

	stages := e.Trace("", "", "")
	assert.Equal(t, rules.CanonicalClosing, stage(t, stages, "call_to_action"))

	got := e.Enforce("", "", "")
	assert.Equal(t, rules.Fillers[5]+" "+rules.CanonicalClosing, got)
	assert.GreaterOrEqual(t, runeLen(got), rules.MinLength)
}

func TestEnforce_StripPhrasesFixedPoint(t *testing.T) {
	e := New(testRules(t), nil)

	stages := e.Trace("No easy No small feat feat. Let's connect", "", "")
	assert.Equal(t, ". Let's connect", stage(t, stages, "normalize_whitespace"))
}

func TestEnforce_RedactionJoiningBannedPhrase(t *testing.T) {
	e := New(testRules(t), nil)

	tests := []struct {
		name        string
		draft       string
		company     string
		designation string
		want        string
	}{
		{
			name:    "company inside phrase",
			draft:   "Your talk Stood Acme out to me. Would love to connect.",
			company: "Acme",
			want:    "Your talk to me. Would love to connect.",
		},
		{
			name:        "designation inside phrase",
			draft:       "No easy Staff Engineer feat at all. Let's connect.",
			designation: "Staff Engineer",
			want:        "at all. Let's connect.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stage(t, e.Trace(tt.draft, tt.company, tt.designation), "normalize_whitespace")
			assert.Equal(t, tt.want, got)
			assert.Empty(t, e.Audit(got))
			assert.Empty(t, e.Audit(e.Enforce(tt.draft, tt.company, tt.designation)))
		})
	}
}

func TestEnforce_CurlyApostropheBannedPhrase(t *testing.T) {
	rules := testRules(t)
	rules.BannedPhrases = append(rules.BannedPhrases, "can’t wait")
	e := New(rules, nil)

	draft := "I can't wait to read more. I CAN’T WAIT. Let's connect."
	stages := e.Trace(draft, "", "")
	assert.Equal(t, "I to read more. I . Let's connect.", stage(t, stages, "normalize_whitespace"))
	assert.Equal(t, []string{"can’t wait"}, e.Audit(draft))
	assert.Empty(t, e.Audit(e.Enforce(draft, "", "")))
}

func TestEnforce_PreservesCase(t *testing.T) {
	e := New(testRules(t), nil)
	stages := e.Trace("Your LEARNING notes on Rust were sharp. Let's connect!", "", "")
	assert.Equal(t, "Your notes on Rust were sharp. Let's connect!", stage(t, stages, "normalize_whitespace"))
}

func TestEnforce_Redaction(t *testing.T) {
	e := New(testRules(t), nil)

	tests := []struct {
		name        string
		draft       string
		company     string
		designation string
		want        string
	}{
		{
			name:        "company and designation",
			draft:       "Loved your post at Acme about the Staff Engineer path. Would love to connect.",
			company:     "Acme",
			designation: "Staff Engineer",
			want:        "Loved your post at about the path. Would love to connect.",
		},
		{
			name:    "whole word only",
			draft:   "Acmeville and ACME both came up. Would love to connect.",
			company: "Acme",
			want:    "Acmeville and both came up. Would love to connect.",
		},
		{
			name:  "empty fields",
			draft: "Nothing to redact here. Would love to connect.",
			want:  "Nothing to redact here. Would love to connect.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := e.Trace(tt.draft, tt.company, tt.designation)
			assert.Equal(t, tt.want, stage(t, stages, "normalize_whitespace"))
		})
	}
}

func TestEnforce_Signature(t *testing.T) {
	e := New(testRules(t), nil)

	tests := []struct {
		name  string
		draft string
		want  string
	}{
		{"closing and placeholder", "Great thread. Would love to connect. Best, [Your Name]", "Great thread. Would love to connect."},
		{"two closing words", "Great thread. Would love to connect. Best regards, Your Name", "Great thread. Would love to connect."},
		{"bare placeholder", "Great thread. Would love to connect. [Name]", "Great thread. Would love to connect."},
		{"dash", "Great thread. Would love to connect. - [Your Name]", "Great thread. Would love to connect."},
		{"closing word without name stays", "Great thread. Would love to connect. Thanks", "Great thread. Would love to connect. Thanks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stage(t, e.Trace(tt.draft, "", ""), "strip_signature"))
		})
	}
}

func TestEnforce_CallToAction(t *testing.T) {
	e := New(testRules(t), nil)

	tests := []struct {
		name  string
		draft string
		want  string
	}{
		{
			name:  "phrase present",
			draft: "Sharp take on caching. Let's connect!",
			want:  "Sharp take on caching. Let's connect!",
		},
		{
			name:  "curly apostrophe phrase",
			draft: "Sharp take on caching. I’d love to connect.",
			want:  "Sharp take on caching. I'd love to connect.",
		},
		{
			name:  "connect inside a word",
			draft: "Great talk on scaling. Hope to reconnect soon",
			want:  "Great talk on scaling. Hope to re Would love to connect.",
		},
		{
			name:  "text before connect is kept",
			draft: "Loved your keynote. The part on connected fleets was sharp",
			want:  "Loved your keynote. The part on Would love to connect.",
		},
		{
			name:  "connect without sentence end",
			draft: "Would be great to connect sometime",
			want:  "Would be great to Would love to connect.",
		},
		{
			name:  "no phrase",
			draft: "Sharp take on caching.",
			want:  "Sharp take on caching.\n\nWould love to connect.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stage(t, e.Trace(tt.draft, "", ""), "call_to_action"))
		})
	}
}

func TestEnforce_UpperBound(t *testing.T) {
	e := New(testRules(t), nil)

	t.Run("truncates main content at a period", func(t *testing.T) {
		draft := strings.Repeat("We shipped a new build today. ", 10) + "Let's connect and exchange ideas."
		got := stage(t, e.Trace(draft, "", ""), "upper_bound")

		want := strings.TrimSpace(strings.Repeat("We shipped a new build today. ", 8)) + " Let's connect."
		assert.Equal(t, want, got)
	})

	t.Run("hard cut with ellipsis", func(t *testing.T) {
		draft := strings.Repeat("abcd ", 60) + "would love to connect"
		got := stage(t, e.Trace(draft, "", ""), "upper_bound")

		assert.True(t, strings.HasSuffix(got, " abcd ab... Would love to connect."), got)
		assert.Equal(t, 240, runeLen(strings.TrimSuffix(got, " Would love to connect.")))
	})

	t.Run("uses last phrase occurrence", func(t *testing.T) {
		draft := "Let's connect. " + strings.Repeat("More words here. ", 16) + "I'd love to connect and chat about it."
		got := stage(t, e.Trace(draft, "", ""), "upper_bound")

		assert.True(t, strings.HasPrefix(got, "Let's connect. More words here."))
		assert.True(t, strings.HasSuffix(got, "here. I'd love to connect."), got)
		assert.LessOrEqual(t, runeLen(got), 270)
	})

	t.Run("short message untouched", func(t *testing.T) {
		draft := "Short note. Let's connect."
		assert.Equal(t, draft, stage(t, e.Trace(draft, "", ""), "upper_bound"))
	})
}

func TestEnforce_LowerBound(t *testing.T) {
	t.Run("no filler fits the window", func(t *testing.T) {
		rules := testRules(t)
		rules.Fillers = []string{"Short."}
		e := New(rules, nil)

		got := e.Enforce("Nice post. Let's connect.", "", "")
		assert.Equal(t, "Nice post. Short. Let's connect.", got)
	})

	t.Run("every filler overflows", func(t *testing.T) {
		rules := testRules(t)
		rules.Fillers = []string{strings.Repeat("x", 250)}
		e := New(rules, nil)

		draft := "Nice post on distributed tracing and the way teams adopt it. Let's connect."
		assert.Equal(t, draft, e.Enforce(draft, "", ""))
	})

	t.Run("long enough is untouched", func(t *testing.T) {
		e := New(testRules(t), nil)
		draft := strings.Repeat("Good one. ", 20) + "Let's connect."
		assert.Equal(t, draft, e.Enforce(draft, "", ""))
	})

	t.Run("picker selects among fitting fillers", func(t *testing.T) {
		rules := testRules(t)
		first := New(rules, fixedPicker(0)).Enforce("", "", "")
		last := New(rules, fixedPicker(99)).Enforce("", "", "")

		assert.Equal(t, rules.Fillers[5]+" "+rules.CanonicalClosing, first)
		assert.Equal(t, rules.Fillers[7]+" "+rules.CanonicalClosing, last)
	})
}

func TestEnforce_TraceMatchesEnforce(t *testing.T) {
	e := New(testRules(t), fixedPicker(1))
	draft := "Hi Jo, Fascinating write-up on queues at Acme. Kind regards, [Your Name]"

	stages := e.Trace(draft, "Acme", "")
	require.Len(t, stages, 7)
	assert.Equal(t, e.Enforce(draft, "Acme", ""), stages[len(stages)-1].Output)
}

func TestAudit(t *testing.T) {
	e := New(testRules(t), nil)

	assert.ElementsMatch(t, []string{"Impressive", "Inspiring"}, e.Audit("An impressive and INSPIRING talk"))
	assert.Empty(t, e.Audit("Unimpressive, but fine"))
	assert.Empty(t, e.Audit(""))
}

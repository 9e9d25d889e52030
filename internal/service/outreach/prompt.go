package outreach

import (
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/core"
)

const (
	tokenEncoding = "cl100k_base"
	// used when the encoding cannot be loaded
	runesPerToken = 4
)

// Tokenizer is the subset of *tiktoken.Tiktoken used to budget the prompt.
type Tokenizer interface {
	Encode(text string, allowedSpecial, disallowedSpecial []string) []int
	Decode(tokens []int) string
}

var (
	tk     Tokenizer
	tkOnce sync.Once
)

// defaultTokenizer returns nil when the encoding is unavailable, for example
// offline on a first run.
func defaultTokenizer() Tokenizer {
	tkOnce.Do(func() {
		enc, err := tiktoken.GetEncoding(tokenEncoding)
		if err == nil {
			tk = enc
		}
	})
	return tk
}

type promptData struct {
	Name        string
	Company     string
	Designation string
	MaxLength   int
	Banned      []string
	Examples    []string
	HasContent  bool
	Title       string
	Snippet     string
}

// PromptBuilder renders the generation prompt for one person and, when there is
// one, the selected content item.
type PromptBuilder struct {
	tmpl          *template.Template
	rules         *config.Rules
	snippetTokens int
	tokenizer     Tokenizer
}

// NewPromptBuilder parses text as the prompt template. Snippets are cut to
// snippetTokens tokens; zero disables the cut. A nil tokenizer loads the
// default encoding lazily.
func NewPromptBuilder(text string, rules *config.Rules, snippetTokens int, tokenizer Tokenizer) (*PromptBuilder, error) {
	tmpl, err := template.New("prompt").Funcs(template.FuncMap{"join": strings.Join}).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing prompt template: %w", err)
	}
	return &PromptBuilder{
		tmpl:          tmpl,
		rules:         rules,
		snippetTokens: snippetTokens,
		tokenizer:     tokenizer,
	}, nil
}

func (b *PromptBuilder) Build(p core.Person, item *core.SourceItem) ([]core.Message, error) {
	data := promptData{
		Name:        p.Name,
		Company:     p.Company,
		Designation: p.Designation,
		MaxLength:   b.rules.MaxLength,
		Banned:      b.rules.BannedPhrases,
		Examples:    b.rules.Examples,
	}
	if item != nil {
		data.HasContent = true
		data.Title = item.Title
		data.Snippet = b.trim(item.Snippet)
	}

	var sb strings.Builder
	if err := b.tmpl.Execute(&sb, data); err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}
	return []core.Message{{Role: core.RoleUser, Content: sb.String()}}, nil
}

func (b *PromptBuilder) trim(snippet string) string {
	snippet = strings.TrimSpace(snippet)
	if b.snippetTokens <= 0 || snippet == "" {
		return snippet
	}

	tok := b.tokenizer
	if tok == nil {
		tok = defaultTokenizer()
	}
	if tok == nil {
		r := []rune(snippet)
		if n := b.snippetTokens * runesPerToken; len(r) > n {
			return strings.TrimSpace(string(r[:n])) + "..."
		}
		return snippet
	}

	ids := tok.Encode(snippet, nil, nil)
	if len(ids) <= b.snippetTokens {
		return snippet
	}
	return strings.TrimSpace(tok.Decode(ids[:b.snippetTokens])) + "..."
}

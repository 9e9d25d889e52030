package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	fs "github.com/sandevgo/reachout/configs"
	"gopkg.in/yaml.v3"
)

const defaultRulesFile = "rules.yaml"

// Rules drives the message post-processor and the prompt few-shot examples.
type Rules struct {
	MinLength     int `yaml:"min_length"`
	MaxLength     int `yaml:"max_length"`
	MaxMainLength int `yaml:"max_main_length"`

	BannedPhrases    []string `yaml:"banned_phrases"`
	ConnectPhrases   []string `yaml:"connect_phrases"`
	CanonicalClosing string   `yaml:"canonical_closing"`
	ClosingWords     []string `yaml:"closing_words"`
	SenderNames      []string `yaml:"sender_names"`
	Fillers          []string `yaml:"fillers"`
	Examples         []string `yaml:"examples"`
}

// DefaultRules returns the embedded rules.
func DefaultRules() (*Rules, error) {
	data, err := fs.FS.ReadFile(defaultRulesFile)
	if err != nil {
		return nil, fmt.Errorf("reading embedded rules: %w", err)
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing embedded rules: %w", err)
	}
	return &r, nil
}

// LoadRules reads the embedded defaults and applies the keys present in path.
// A missing file is not an error.
func LoadRules(path string) (*Rules, error) {
	r, err := DefaultRules()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading rules: %w", err)
		default:
			if err := yaml.Unmarshal(data, r); err != nil {
				return nil, fmt.Errorf("parsing rules %s: %w", path, err)
			}
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rules) Validate() error {
	if r.MinLength <= 0 || r.MaxLength <= r.MinLength {
		return fmt.Errorf("rules: invalid length window [%d, %d]", r.MinLength, r.MaxLength)
	}
	if r.MaxMainLength <= 3 || r.MaxMainLength >= r.MaxLength {
		return fmt.Errorf("rules: max_main_length %d must be below max_length %d", r.MaxMainLength, r.MaxLength)
	}
	if len(r.ConnectPhrases) == 0 {
		return errors.New("rules: at least one connect phrase is required")
	}
	if strings.TrimSpace(r.CanonicalClosing) == "" {
		return errors.New("rules: canonical_closing is required")
	}
	if !r.HasConnectPhrase(r.CanonicalClosing) {
		return fmt.Errorf("rules: canonical_closing %q must contain a connect phrase", r.CanonicalClosing)
	}
	for _, p := range r.ConnectPhrases {
		// main content, a blank line and the phrase as a sentence must fit
		if r.MaxMainLength+len([]rune(p))+3 > r.MaxLength {
			return fmt.Errorf("rules: connect phrase %q is too long for max_length %d", p, r.MaxLength)
		}
	}

	for _, p := range r.BannedPhrases {
		if strings.Contains(strings.ToLower(p), "connect") {
			return fmt.Errorf("rules: banned phrase %q would remove the call to action", p)
		}
	}
	for _, f := range r.Fillers {
		lf := strings.ToLower(f)
		for _, p := range r.BannedPhrases {
			if p != "" && strings.Contains(lf, strings.ToLower(p)) {
				return fmt.Errorf("rules: filler %q contains banned phrase %q", f, p)
			}
		}
		if len([]rune(f)) >= r.MaxLength {
			return fmt.Errorf("rules: filler %q is longer than max_length", f)
		}
	}
	return nil
}

// HasConnectPhrase reports whether s contains any connect phrase, ignoring case.
func (r *Rules) HasConnectPhrase(s string) bool {
	ls := strings.ToLower(s)
	for _, p := range r.ConnectPhrases {
		if p != "" && strings.Contains(ls, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

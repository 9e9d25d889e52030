package config

import (
	"errors"
	"fmt"
	"os"

	fs "github.com/sandevgo/reachout/configs"
)

const defaultPromptFile = "prompt.tmpl"

// LoadPromptTemplate returns the template stored at path, or the embedded one
// when path is empty or missing.
func LoadPromptTemplate(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			return string(data), nil
		case !errors.Is(err, os.ErrNotExist):
			return "", fmt.Errorf("reading prompt template: %w", err)
		}
	}

	data, err := fs.FS.ReadFile(defaultPromptFile)
	if err != nil {
		return "", fmt.Errorf("reading embedded prompt template: %w", err)
	}
	return string(data), nil
}

package configs

import "embed"

//go:embed rules.yaml prompt.tmpl
var FS embed.FS

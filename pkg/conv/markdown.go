// Package conv renders the Markdown replies of the command router for the
// Telegram and terminal front ends.
package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

const extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock

// tgPolicy keeps the tags Telegram accepts in HTML mode
// (https://core.telegram.org/bots/api#html-style). Source URLs come from news
// APIs, so links are limited to web schemes.
var tgPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").OnElements("code")
	p.AllowURLSchemes("http", "https")
	p.RequireParseableURLs(true)
	return p
}()

func render(md string, flags html.Flags) []byte {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: flags})
	return markdown.Render(p.Parse([]byte(md)), renderer)
}

// MarkdownToTelegramHTML renders md and drops every tag Telegram would reject.
// Blank input gives "".
func MarkdownToTelegramHTML(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out := tgPolicy.SanitizeBytes(render(md, html.CommonFlags|html.HrefTargetBlank))
	return strings.TrimSpace(string(out))
}

// MarkdownToText renders md for a plain terminal. On conversion failure md is
// returned as is.
func MarkdownToText(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	text, err := html2text.FromString(string(render(md, html.CommonFlags)), html2text.Options{OmitLinks: true})
	if err != nil {
		return md
	}
	return strings.TrimSpace(text)
}

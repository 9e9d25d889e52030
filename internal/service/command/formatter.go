package command

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/reachout/internal/core"
)

const snippetPreview = 200

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("⚙️️ **%s**\n\n", title)
}

func (f *ResponseFormatter) Success(message string) string {
	return fmt.Sprintf("✅ **%s**\n", message)
}

func (f *ResponseFormatter) Error(err error) string {
	return fmt.Sprintf("❌ **Command Error**\n\n**Issue**: %s\n", err.Error())
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("**%s**  ›  `%s`\n", label, value)
}

func (f *ResponseFormatter) Usage(command string) string {
	return fmt.Sprintf("**Usage**:\n```%s```\n", command)
}

func (f *ResponseFormatter) Examples(examples []string) string {
	var sb strings.Builder
	sb.WriteString("**Examples**:\n")
	for _, ex := range examples {
		sb.WriteString(fmt.Sprintf("`%s`\n", ex))
	}
	return sb.String()
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Tip(text string) string {
	return fmt.Sprintf("**Tip**: %s\n", text)
}

func (f *ResponseFormatter) Section(emoji, title, content string) string {
	return fmt.Sprintf("%s **%s**\n%s\n", emoji, title, content)
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}

// Message renders a generated message followed by its length.
func (f *ResponseFormatter) Message(msg core.GeneratedMessage) string {
	return f.Combine(
		f.Section("✉️", fmt.Sprintf("Message #%d", msg.Index+1), "```\n"+msg.Text+"\n```"),
		f.Label("Characters", fmt.Sprint(utf8.RuneCountInString(msg.Text))),
	)
}

func (f *ResponseFormatter) Source(title, snippet, url, label string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(fmt.Sprintf("**%s**\n", title))
	}
	if snippet != "" {
		sb.WriteString(preview(snippet) + "\n")
	}
	if url != "" {
		sb.WriteString(url + "\n")
	}
	if label != "" {
		sb.WriteString(fmt.Sprintf("_%s_\n", label))
	}
	if sb.Len() == 0 {
		sb.WriteString("No source content, the message is general.\n")
	}
	return f.Section("📰", "Source", sb.String())
}

// Items lists the items of a result set.
func (f *ResponseFormatter) Items(rs *core.ResultSet) string {
	lines := make([]string, 0, rs.Len())
	for i, it := range rs.Items {
		line := fmt.Sprintf("%d. %s", i+1, it.Title)
		if it.SourceLabel != "" {
			line += fmt.Sprintf(" (%s)", it.SourceLabel)
		}
		if it.URL != "" {
			line += "\n  " + it.URL
		}
		lines = append(lines, line)
	}
	return f.List(lines)
}

func (f *ResponseFormatter) Notices(notices []string) string {
	if len(notices) == 0 {
		return ""
	}
	return f.Section("⚠️", "Provider errors", f.List(notices))
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= snippetPreview {
		return s
	}
	return strings.TrimSpace(string(r[:snippetPreview])) + "..."
}

package mail

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(value string) string {
	return htmlEscaper.Replace(value)
}

// RenderNewsSummary substitutes the digest template placeholders. Both values
// are untrusted (the summary comes back from a language model) and are
// escaped before substitution; newlines become <br/> so plain-text fallbacks
// still read as paragraphs.
func RenderNewsSummary(date, newsContent string) string {
	safeDate := escapeHTML(date)
	safeContent := strings.ReplaceAll(escapeHTML(newsContent), "\n", "<br/>")

	html := strings.Replace(newsSummaryTemplate, "{{date}}", safeDate, 1)
	return strings.Replace(html, "{{newsContent}}", safeContent, 1)
}

// RenderWelcome substitutes the welcome template placeholders, escaping the
// user-supplied name and the generated intro.
func RenderWelcome(name, intro string) string {
	html := strings.Replace(welcomeTemplate, "{{name}}", escapeHTML(name), 1)
	return strings.Replace(html, "{{intro}}", escapeHTML(intro), 1)
}

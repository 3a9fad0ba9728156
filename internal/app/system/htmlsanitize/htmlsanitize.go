// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize strips dangerous markup from user-generated
// content (comments, place descriptions) before storage or display.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy is built once; bluemonday policies are safe for concurrent use.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// Text formatting beyond the UGC baseline.
	p.AllowElements("u", "s", "sub", "sup", "mark")

	// Rich descriptions use simple table layout and styling.
	p.AllowAttrs("class", "style").OnElements("table", "thead", "tbody", "tr", "td", "th")

	return p
}

// Sanitize returns the input with all disallowed tags and attributes
// removed. Safe formatting (paragraphs, lists, tables, links, images)
// passes through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no HTML tags. A lone < or >
// (e.g. "5 < 10") still counts as plain text.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// PlainTextToHTML escapes s and converts newlines to <br>, wrapping the
// result in a paragraph.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders either plain text or submitted HTML safely:
// plain text is escaped and paragraph-wrapped, HTML is sanitized.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}

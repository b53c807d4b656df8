package stachehtml

import "strings"

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// EscapeString replaces &, <, > and " with their HTML entities.  Every other
// character, including the single quote, is passed through.
func EscapeString(s string) string {
	return htmlEscaper.Replace(s)
}

// indentLines prefixes every line of text with indent.  A trailing line break
// does not begin a new line.
func indentLines(text, indent string) string {
	if text == "" || indent == "" {
		return text
	}
	var b strings.Builder
	var lineStart = true
	for i := 0; i < len(text); i++ {
		if lineStart {
			b.WriteString(indent)
			lineStart = false
		}
		b.WriteByte(text[i])
		if text[i] == '\n' {
			lineStart = true
		}
	}
	return b.String()
}

package dom

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\t", "&#9;",
	)
)

// EscapeText escapes character data for element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes character data for a double-quoted attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// CheckChars rejects character data that cannot legally appear in an XML
// document regardless of escaping: control characters other than tab,
// newline and carriage return, and invalid UTF-8.
func CheckChars(s string) error {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return fmt.Errorf("invalid UTF-8 at byte %d", i)
			}
		}
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if r < 0x20 || (r >= 0xD800 && r <= 0xDFFF) || r == 0xFFFE || r == 0xFFFF {
			return fmt.Errorf("character %U not allowed in XML", r)
		}
	}
	return nil
}

// CheckCDATA rejects CDATA content containing the section terminator.
func CheckCDATA(s string) error {
	if strings.Contains(s, "]]>") {
		return fmt.Errorf("CDATA content contains %q", "]]>")
	}
	return CheckChars(s)
}

// CheckComment rejects comment text containing a double hyphen or ending
// with a hyphen, both of which are invalid in XML comments.
func CheckComment(s string) error {
	if strings.Contains(s, "--") {
		return fmt.Errorf("comment contains %q", "--")
	}
	if strings.HasSuffix(s, "-") {
		return fmt.Errorf("comment ends with %q", "-")
	}
	return CheckChars(s)
}

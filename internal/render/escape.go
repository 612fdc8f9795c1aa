// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "strings"

// inlineEscaper backslash-escapes the Markdown characters that would corrupt
// document structure when they occur inside user-derived names and labels:
// heading markers, emphasis markers, link brackets, backticks, and the pipe
// used by tables.
var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"|", `\|`,
)

// escape sanitizes user content for use in headings, labels, and link text.
// Newlines collapse to spaces so a multi-line name cannot break out of its
// line-scoped context.
func escape(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return inlineEscaper.Replace(s)
}

// fence wraps content in a backtick fence sized one longer than the longest
// backtick run inside it, so embedded code fences cannot terminate the block.
func fence(content string) string {
	longest, run := 0, 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	n := longest + 1
	if n < 3 {
		n = 3
	}
	marker := strings.Repeat("`", n)
	return marker + "\n" + content + "\n" + marker
}

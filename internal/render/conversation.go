// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/claude-archive/pkg/types"
)

// conversationPage renders one transcript document. Messages appear in
// source order; each body sits inside a fenced literal block so formatting
// in the original text is not reinterpreted as Markdown.
func conversationPage(c types.Conversation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escape(c.Name))
	b.WriteString("## Conversation Details\n\n")

	if c.Summary != "" {
		fmt.Fprintf(&b, "**Summary:** %s\n\n", escape(c.Summary))
	}
	if c.CreatedAt != "" {
		fmt.Fprintf(&b, "**Created:** %s\n", formatDate(c.CreatedAt))
	}
	if c.UpdatedAt != "" {
		fmt.Fprintf(&b, "**Last Updated:** %s\n", formatDate(c.UpdatedAt))
	}
	fmt.Fprintf(&b, "**Conversation ID:** `%s`\n", c.ID)
	if c.AccountID != "" {
		fmt.Fprintf(&b, "**Account ID:** `%s`\n", c.AccountID)
	}

	b.WriteString("\n---\n\n")

	if len(c.Messages) == 0 {
		b.WriteString("*No messages in this conversation.*\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Messages (%d)\n\n", len(c.Messages))

	for i, msg := range c.Messages {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, senderLabel(msg.Sender))
		if msg.CreatedAt != "" {
			fmt.Fprintf(&b, "*%s*\n", formatDate(msg.CreatedAt))
		}
		b.WriteString("\n")

		if msg.Text == "" {
			b.WriteString("*[No content]*\n")
		} else {
			b.WriteString(fence(msg.Text))
			b.WriteString("\n")
		}

		if i < len(c.Messages)-1 {
			b.WriteString("\n---\n\n")
		}
	}

	return b.String()
}

func senderLabel(s types.Sender) string {
	switch s {
	case types.SenderHuman:
		return "Human"
	case types.SenderAssistant:
		return "Assistant"
	case "":
		return "Unknown"
	}
	label := string(s)
	r, size := utf8.DecodeRuneInString(label)
	return escape(string(unicode.ToUpper(r)) + label[size:])
}

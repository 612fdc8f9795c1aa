// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/claude-archive/pkg/types"
)

// projectPage renders the overview document for one project. Absent optional
// fields omit their line entirely rather than rendering a placeholder.
// docFiles carries the pre-assigned filename for each attached document.
func projectPage(p types.Project, docFiles []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escape(p.Name))
	b.WriteString("## Project Information\n\n")

	if p.Description != "" {
		fmt.Fprintf(&b, "**Description:** %s\n", escape(p.Description))
	}
	if p.CreatedAt != "" {
		fmt.Fprintf(&b, "**Created:** %s\n", formatDate(p.CreatedAt))
	}
	if p.UpdatedAt != "" {
		fmt.Fprintf(&b, "**Last Updated:** %s\n", formatDate(p.UpdatedAt))
	}
	fmt.Fprintf(&b, "**Private:** %s\n", yesNo(p.IsPrivate))
	fmt.Fprintf(&b, "**Starter Project:** %s\n", yesNo(p.IsStarter))
	if p.CreatorName != "" {
		fmt.Fprintf(&b, "**Creator:** %s\n", escape(p.CreatorName))
	}
	if p.CreatorID != "" {
		fmt.Fprintf(&b, "**Creator ID:** `%s`\n", p.CreatorID)
	}
	fmt.Fprintf(&b, "**Project ID:** `%s`\n\n", p.ID)

	if p.PromptTemplate != "" {
		b.WriteString("## Prompt Template\n\n")
		for _, line := range strings.Split(p.PromptTemplate, "\n") {
			fmt.Fprintf(&b, "> %s\n", line)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Documents\n\n")
	if len(p.Docs) == 0 {
		b.WriteString("No documents in this project.\n")
		return b.String()
	}

	for j, d := range p.Docs {
		fmt.Fprintf(&b, "- [%s](%s/%s)", escape(d.Name), docsDir, docFiles[j])
		if d.CreatedAt != "" {
			fmt.Fprintf(&b, " - Created %s", formatDate(d.CreatedAt))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// documentPage renders one attached document. The body is the source text
// verbatim: project documents are authored content, not transcript data, so
// their own Markdown is left intact.
func documentPage(d types.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escape(d.Name))
	if d.CreatedAt != "" {
		fmt.Fprintf(&b, "**Created:** %s\n", formatDate(d.CreatedAt))
	}
	fmt.Fprintf(&b, "**Document ID:** `%s`\n\n", d.ID)
	b.WriteString("---\n\n")

	if d.Content == "" {
		b.WriteString("*No content available*\n")
	} else {
		b.WriteString(d.Content)
		if !strings.HasSuffix(d.Content, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

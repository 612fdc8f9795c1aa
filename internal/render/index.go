// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/claude-archive/pkg/types"
)

// projectsIndex renders metadata/projects_index.md: every project, newest
// first, with a short summary and a relative link to its overview page.
func projectsIndex(m *types.ExportModel, lay *layout) string {
	var b strings.Builder

	b.WriteString("# Projects Index\n\n")
	fmt.Fprintf(&b, "Total projects: **%d**\n\n", len(m.Projects))

	if len(m.Projects) == 0 {
		b.WriteString("No projects found.\n")
		return b.String()
	}

	b.WriteString("## All Projects\n\n")

	order := byNewest(len(m.Projects), func(i int) string { return m.Projects[i].CreatedAt })
	for _, i := range order {
		p := m.Projects[i]
		fmt.Fprintf(&b, "### [%s](../%s/%s/%s)\n", escape(p.Name), projectsDir, lay.projDirs[i], projectInfoFile)
		if p.Description != "" {
			fmt.Fprintf(&b, "*%s*\n", escape(p.Description))
		}
		b.WriteString("\n")
		if p.CreatedAt != "" {
			fmt.Fprintf(&b, "- **Created:** %s\n", formatDate(p.CreatedAt))
		}
		fmt.Fprintf(&b, "- **Documents:** %d\n", len(p.Docs))
		fmt.Fprintf(&b, "- **Private:** %s\n\n", yesNo(p.IsPrivate))
	}

	return b.String()
}

// conversationsIndex renders metadata/conversations_index.md: every
// conversation, most recently updated first, with message count, excerpt,
// and a relative link to its transcript.
func conversationsIndex(m *types.ExportModel, lay *layout) string {
	var b strings.Builder

	b.WriteString("# Conversations Index\n\n")
	fmt.Fprintf(&b, "Total conversations: **%d**\n", len(m.Conversations))
	fmt.Fprintf(&b, "Total messages: **%d**\n\n", m.Stats.Messages)

	if len(m.Conversations) == 0 {
		b.WriteString("No conversations found.\n")
		return b.String()
	}

	b.WriteString("## All Conversations\n\n")

	order := byNewest(len(m.Conversations), func(i int) string { return m.Conversations[i].UpdatedAt })
	for _, i := range order {
		c := m.Conversations[i]
		fmt.Fprintf(&b, "- [%s](../%s/%s)\n", escape(c.Name), conversationsDir, lay.convFiles[i])
		fmt.Fprintf(&b, "  *%s*", escape(conversationSummary(c)))
		if c.UpdatedAt != "" {
			fmt.Fprintf(&b, " - Updated %s", formatDate(c.UpdatedAt))
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

// userInfo renders metadata/user_info.md. Absent identity fields are
// omitted, never rendered with placeholder values.
func userInfo(m *types.ExportModel) string {
	var b strings.Builder

	b.WriteString("# User Information\n\n")

	if len(m.Users) == 0 {
		b.WriteString("No user information available.\n")
		return b.String()
	}

	for _, u := range m.Users {
		if u.Name != "" {
			fmt.Fprintf(&b, "**Name:** %s\n", escape(u.Name))
		}
		if u.Email != "" {
			fmt.Fprintf(&b, "**Email:** %s\n", escape(u.Email))
		}
		fmt.Fprintf(&b, "**User ID:** `%s`\n", u.ID)
		if u.Phone != "" {
			fmt.Fprintf(&b, "**Verified Phone:** %s\n", escape(u.Phone))
		}
		b.WriteString("\n")
	}

	return b.String()
}

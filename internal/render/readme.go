// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"path"
	"strings"

	"github.com/pdiddy/claude-archive/pkg/types"
)

// archiveTree is the structure block shown on the root summary.
const archiveTree = "```\n" +
	"claude_export/\n" +
	"├── README.md (this file)\n" +
	"├── projects/\n" +
	"│   └── [project_name]/\n" +
	"│       ├── project_info.md\n" +
	"│       └── docs/\n" +
	"│           └── [document_files]\n" +
	"├── conversations/\n" +
	"│   └── [conversation_files]\n" +
	"└── metadata/\n" +
	"    ├── projects_index.md\n" +
	"    ├── conversations_index.md\n" +
	"    └── user_info.md\n" +
	"```\n"

// readme renders the root summary document: user identity, aggregate
// statistics, the archive layout, every project, the most recent
// conversations, and navigation links into the indexes. Contains nothing
// clock-derived, so reruns reproduce it byte for byte.
func readme(m *types.ExportModel, lay *layout, recentLimit int) string {
	var b strings.Builder

	b.WriteString("# Claude Export - Complete Archive\n\n")

	if len(m.Users) > 0 {
		u := m.Users[0]
		b.WriteString("## User Information\n\n")
		if u.Name != "" {
			fmt.Fprintf(&b, "**Name:** %s\n", escape(u.Name))
		}
		if u.Email != "" {
			fmt.Fprintf(&b, "**Email:** %s\n", escape(u.Email))
		}
		fmt.Fprintf(&b, "**User ID:** `%s`\n\n", u.ID)
	}

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "- **Total Projects:** %d\n", m.Stats.Projects)
	fmt.Fprintf(&b, "- **Total Conversations:** %d\n", m.Stats.Conversations)
	fmt.Fprintf(&b, "- **Total Messages:** %d\n\n", m.Stats.Messages)

	if m.Stats.FirstDate != "" {
		fmt.Fprintf(&b, "**Date Range:** %s to %s\n\n",
			formatDate(m.Stats.FirstDate), formatDate(m.Stats.LastDate))
	}

	b.WriteString("## Archive Structure\n\n")
	b.WriteString(archiveTree)
	b.WriteString("\n")

	b.WriteString("## Projects\n\n")
	if len(m.Projects) == 0 {
		b.WriteString("No projects found.\n\n")
	} else {
		order := byNewest(len(m.Projects), func(i int) string { return m.Projects[i].CreatedAt })
		for _, i := range order {
			p := m.Projects[i]
			fmt.Fprintf(&b, "### [%s](%s)\n", escape(p.Name),
				path.Join(projectsDir, lay.projDirs[i], projectInfoFile))
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
	}

	b.WriteString("## Recent Conversations\n\n")
	order := byNewest(len(m.Conversations), func(i int) string { return m.Conversations[i].UpdatedAt })
	if len(order) > recentLimit {
		order = order[:recentLimit]
	}
	for _, i := range order {
		c := m.Conversations[i]
		fmt.Fprintf(&b, "- [%s](%s)\n", escape(c.Name), path.Join(conversationsDir, lay.convFiles[i]))
		fmt.Fprintf(&b, "  *%s*", escape(conversationSummary(c)))
		if c.UpdatedAt != "" {
			fmt.Fprintf(&b, " - %s", formatDate(c.UpdatedAt))
		}
		b.WriteString("\n\n")
	}

	b.WriteString("## Navigation\n\n")
	fmt.Fprintf(&b, "- [All Projects](%s)\n", path.Join(metadataDir, projectIndexFile))
	fmt.Fprintf(&b, "- [All Conversations](%s)\n", path.Join(metadataDir, convIndexFile))
	fmt.Fprintf(&b, "- [User Information](%s)\n", path.Join(metadataDir, userInfoFile))

	return b.String()
}

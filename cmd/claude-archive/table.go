// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdiddy/claude-archive/pkg/types"
)

// statsTable renders the model counts as a console table.
func statsTable(s types.Stats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Collection", "Count"})
	tw.AppendRows([]table.Row{
		{"Conversations", strconv.Itoa(s.Conversations)},
		{"Messages", strconv.Itoa(s.Messages)},
		{"Projects", strconv.Itoa(s.Projects)},
		{"Project documents", strconv.Itoa(s.Documents)},
		{"Users", strconv.Itoa(s.Users)},
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/claude-archive/pkg/types"
)

func sampleModel() *types.ExportModel {
	m := &types.ExportModel{
		Conversations: []types.Conversation{
			{
				ID:        "c1",
				Name:      "Test",
				CreatedAt: "2025-03-01T10:00:00Z",
				UpdatedAt: "2025-03-02T11:30:00Z",
				Messages: []types.Message{
					{Sender: types.SenderHuman, Text: "Hi", CreatedAt: "2025-03-01T10:00:00Z"},
					{Sender: types.SenderAssistant, Text: "Hello"},
				},
			},
			{ID: "c2", Name: "Empty one"},
		},
		Projects: []types.Project{
			{
				ID:        "p1",
				Name:      "Research",
				CreatedAt: "2024-11-20T08:00:00Z",
				Docs: []types.Document{
					{ID: "d1", Name: "outline.md", Content: "# Outline\n\nBody."},
				},
			},
			{ID: "p2", Name: "Empty Project"},
		},
		Users: []types.User{{ID: "u1", Name: "Ada", Email: "ada@example.com"}},
	}
	m.Stats = types.Stats{
		Conversations: 2, Projects: 2, Users: 1, Messages: 2, Documents: 1,
		FirstDate: "2024-11-20T08:00:00Z", LastDate: "2025-03-02T11:30:00Z",
	}
	return m
}

func findDoc(t *testing.T, docs []types.RenderedDoc, relPath string) string {
	t.Helper()
	for _, d := range docs {
		if d.RelPath == relPath {
			return d.Content
		}
	}
	t.Fatalf("no rendered document at %s; have %v", relPath, paths(docs))
	return ""
}

func paths(docs []types.RenderedDoc) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.RelPath
	}
	return out
}

func TestArchiveLayout(t *testing.T) {
	docs := Archive(sampleModel(), types.ExportConfig{})

	want := []string{
		"README.md",
		"conversations/Test.md",
		"conversations/Empty_one.md",
		"projects/Research/project_info.md",
		"projects/Research/docs/outline.md.md",
		"projects/Empty_Project/project_info.md",
		"metadata/projects_index.md",
		"metadata/conversations_index.md",
		"metadata/user_info.md",
	}
	assert.ElementsMatch(t, want, paths(docs))
}

func TestArchiveDeterministic(t *testing.T) {
	a := Archive(sampleModel(), types.ExportConfig{})
	b := Archive(sampleModel(), types.ExportConfig{})
	assert.Equal(t, a, b)
}

func TestConversationPage(t *testing.T) {
	docs := Archive(sampleModel(), types.ExportConfig{})
	page := findDoc(t, docs, "conversations/Test.md")

	assert.True(t, strings.HasPrefix(page, "# Test\n"))
	assert.Contains(t, page, "**Conversation ID:** `c1`")
	assert.Contains(t, page, "## Messages (2)")
	assert.Contains(t, page, "### 1. Human")
	assert.Contains(t, page, "### 2. Assistant")
	assert.Contains(t, page, "Hi")
	assert.Contains(t, page, "Hello")

	human := strings.Index(page, "### 1. Human")
	assistant := strings.Index(page, "### 2. Assistant")
	assert.Less(t, human, assistant, "messages must keep source order")
}

func TestConversationPageMessageOrder(t *testing.T) {
	c := types.Conversation{ID: "c", Name: "Ordered"}
	for _, text := range []string{"alpha", "bravo", "charlie", "delta"} {
		c.Messages = append(c.Messages, types.Message{Sender: types.SenderHuman, Text: text})
	}

	page := conversationPage(c)
	assert.Equal(t, 4, strings.Count(page, "### "), "one block per message")

	last := -1
	for _, text := range []string{"alpha", "bravo", "charlie", "delta"} {
		pos := strings.Index(page, text)
		require.Greater(t, pos, last, "%s out of order", text)
		last = pos
	}
}

func TestEmptyConversationStillRenders(t *testing.T) {
	docs := Archive(sampleModel(), types.ExportConfig{})
	page := findDoc(t, docs, "conversations/Empty_one.md")

	assert.Contains(t, page, "*No messages in this conversation.*")
}

func TestConversationPageEscapesName(t *testing.T) {
	page := conversationPage(types.Conversation{ID: "c", Name: "# Sneaky *title*"})
	assert.True(t, strings.HasPrefix(page, `# \# Sneaky \*title\*`))
}

func TestMessageContentFenced(t *testing.T) {
	page := conversationPage(types.Conversation{
		ID:   "c",
		Name: "Code",
		Messages: []types.Message{
			{Sender: types.SenderHuman, Text: "## not a heading\n```go\nfmt.Println()\n```"},
		},
	})

	// The body sits inside a longer fence, so its own markers stay literal.
	assert.Contains(t, page, "````\n## not a heading\n```go\nfmt.Println()\n```\n````")
}

func TestMissingTimestampsOmitted(t *testing.T) {
	page := conversationPage(types.Conversation{
		ID:       "c",
		Name:     "Bare",
		Messages: []types.Message{{Sender: types.SenderHuman, Text: "Hi"}},
	})

	assert.NotContains(t, page, "**Created:**")
	assert.NotContains(t, page, "Unknown date")
}

func TestProjectPage(t *testing.T) {
	docs := Archive(sampleModel(), types.ExportConfig{})
	page := findDoc(t, docs, "projects/Research/project_info.md")

	assert.Contains(t, page, "# Research")
	assert.Contains(t, page, "**Project ID:** `p1`")
	assert.Contains(t, page, "- [outline.md](docs/outline.md.md)")
	assert.NotContains(t, page, "**Description:**", "absent description omits the line")
}

func TestEmptyProjectHasNoDocsPages(t *testing.T) {
	docs := Archive(sampleModel(), types.ExportConfig{})
	page := findDoc(t, docs, "projects/Empty_Project/project_info.md")

	assert.Contains(t, page, "No documents in this project.")
	for _, p := range paths(docs) {
		assert.NotContains(t, p, "Empty_Project/docs/")
	}

	index := findDoc(t, docs, "metadata/projects_index.md")
	assert.Contains(t, index, "- **Documents:** 0")
}

func TestDocumentPageVerbatimContent(t *testing.T) {
	page := documentPage(types.Document{ID: "d", Name: "notes", Content: "# Heading\n\ntext"})
	assert.Contains(t, page, "# Heading\n\ntext")
}

func TestIndexes(t *testing.T) {
	docs := Archive(sampleModel(), types.ExportConfig{})

	convIndex := findDoc(t, docs, "metadata/conversations_index.md")
	assert.Contains(t, convIndex, "Total conversations: **2**")
	assert.Contains(t, convIndex, "Total messages: **2**")
	assert.Contains(t, convIndex, "[Test](../conversations/Test.md)")
	assert.Contains(t, convIndex, "2 messages - Hi")

	projIndex := findDoc(t, docs, "metadata/projects_index.md")
	assert.Contains(t, projIndex, "Total projects: **2**")
	assert.Contains(t, projIndex, "[Research](../projects/Research/project_info.md)")
}

func TestReadme(t *testing.T) {
	docs := Archive(sampleModel(), types.ExportConfig{})
	page := findDoc(t, docs, "README.md")

	assert.Contains(t, page, "- **Total Conversations:** 2")
	assert.Contains(t, page, "- **Total Messages:** 2")
	assert.Contains(t, page, "- **Total Projects:** 2")
	assert.Contains(t, page, "**Date Range:** November 20, 2024 at 8:00 AM to March 2, 2025 at 11:30 AM")
	assert.Contains(t, page, "[All Projects](metadata/projects_index.md)")
	assert.Contains(t, page, "[Test](conversations/Test.md)")
	assert.Contains(t, page, "**Name:** Ada")
}

func TestReadmeRecentLimit(t *testing.T) {
	m := &types.ExportModel{}
	for i := 0; i < 15; i++ {
		m.Conversations = append(m.Conversations, types.Conversation{
			ID:   safeFilename(strings.Repeat("c", i+1)),
			Name: strings.Repeat("c", i+1),
		})
	}
	m.Stats = types.Stats{Conversations: 15}

	page := findDoc(t, Archive(m, types.ExportConfig{}), "README.md")
	recent := page[strings.Index(page, "## Recent Conversations"):strings.Index(page, "## Navigation")]
	assert.Equal(t, 10, strings.Count(recent, "- ["), "default recent limit is 10")
}

func TestFilenameCollisionsResolved(t *testing.T) {
	m := &types.ExportModel{
		Conversations: []types.Conversation{
			{ID: "c1", Name: "Chat"},
			{ID: "c2", Name: "Chat"},
		},
	}
	m.Stats = types.Stats{Conversations: 2}

	docs := Archive(m, types.ExportConfig{})
	got := paths(docs)
	assert.Contains(t, got, "conversations/Chat.md")
	assert.Contains(t, got, "conversations/Chat_1.md")
}

func TestFilenameSuffixCollisionsResolved(t *testing.T) {
	// A conversation literally named "Chat_2" alongside two named "Chat":
	// the second "Chat" must not land on the verbatim Chat_2 path, and
	// every conversation must get its own page.
	m := &types.ExportModel{
		Conversations: []types.Conversation{
			{ID: "c1", Name: "Chat_2"},
			{ID: "c2", Name: "Chat"},
			{ID: "c3", Name: "Chat"},
		},
	}
	m.Stats = types.Stats{Conversations: 3}

	docs := Archive(m, types.ExportConfig{})

	counts := make(map[string]int)
	for _, p := range paths(docs) {
		counts[p]++
	}
	for p, n := range counts {
		assert.Equal(t, 1, n, "duplicate output path %q", p)
	}

	got := paths(docs)
	assert.Contains(t, got, "conversations/Chat_2.md")
	assert.Contains(t, got, "conversations/Chat.md")
	assert.Contains(t, got, "conversations/Chat_3.md")
}

func TestUnparseableTimestampEscaped(t *testing.T) {
	page := conversationPage(types.Conversation{
		ID:        "c",
		Name:      "Odd clock",
		CreatedAt: "2025-03-*corrupt*",
	})

	assert.Contains(t, page, `**Created:** 2025-03-\*corrupt\*`)
	assert.NotContains(t, page, "*corrupt*")
}

func TestSenderLabelMultibyte(t *testing.T) {
	page := conversationPage(types.Conversation{
		ID:   "c",
		Name: "Système",
		Messages: []types.Message{
			{Sender: "état", Text: "bonjour"},
		},
	})

	assert.Contains(t, page, "### 1. État")
	assert.True(t, utf8.ValidString(page))
}

func TestConversationSummary(t *testing.T) {
	tests := []struct {
		name string
		conv types.Conversation
		want string
	}{
		{
			"no messages",
			types.Conversation{},
			"No messages",
		},
		{
			"first human message excerpt",
			types.Conversation{Messages: []types.Message{
				{Sender: types.SenderAssistant, Text: "ignored"},
				{Sender: types.SenderHuman, Text: "How do I sort a slice?"},
			}},
			"2 messages - How do I sort a slice?",
		},
		{
			"code stripped from excerpt",
			types.Conversation{Messages: []types.Message{
				{Sender: types.SenderHuman, Text: "Fix this:\n```go\npanic()\n```\nplease"},
			}},
			"1 message - Fix this: [code block] please",
		},
		{
			"no human message",
			types.Conversation{Messages: []types.Message{
				{Sender: types.SenderAssistant, Text: "monologue"},
			}},
			"1 message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conversationSummary(tt.conv))
		})
	}

	t.Run("long excerpt truncated", func(t *testing.T) {
		c := types.Conversation{Messages: []types.Message{
			{Sender: types.SenderHuman, Text: strings.Repeat("x", 200)},
		}}
		got := conversationSummary(c)
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, len(got), len("1 message - ")+summaryExcerptLen+3)
	})

	t.Run("truncation keeps rune boundaries", func(t *testing.T) {
		c := types.Conversation{Messages: []types.Message{
			{Sender: types.SenderHuman, Text: strings.Repeat("é", 200)},
		}}
		got := conversationSummary(c)
		assert.True(t, utf8.ValidString(got), "truncation must not split a rune: %q", got)
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.Equal(t, len("1 message - ")+summaryExcerptLen+3, utf8.RuneCountInString(got))
	})
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render converts the canonical export model into a cross-linked set
// of Markdown documents. Rendering is a pure function of the model: no
// clocks, no filesystem, no ordering that depends on map iteration, so the
// same model always yields byte-identical documents.
package render

import (
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/claude-archive/pkg/types"
)

const (
	conversationsDir = "conversations"
	projectsDir      = "projects"
	docsDir          = "docs"
	metadataDir      = "metadata"

	projectInfoFile  = "project_info.md"
	projectIndexFile = "projects_index.md"
	convIndexFile    = "conversations_index.md"
	userInfoFile     = "user_info.md"
)

// Archive renders every document in the output tree: the root summary,
// one transcript per conversation, one page per project plus one per project
// document, and the metadata indexes.
func Archive(m *types.ExportModel, cfg types.ExportConfig) []types.RenderedDoc {
	cfg = cfg.Defaults()
	lay := newLayout(m)

	docs := make([]types.RenderedDoc, 0, 4+len(m.Conversations)+len(m.Projects)+m.Stats.Documents)
	docs = append(docs, types.RenderedDoc{
		RelPath: "README.md",
		Content: readme(m, lay, cfg.RecentLimit),
	})

	for i, c := range m.Conversations {
		docs = append(docs, types.RenderedDoc{
			RelPath: path.Join(conversationsDir, lay.convFiles[i]),
			Content: conversationPage(c),
		})
	}

	for i, p := range m.Projects {
		docs = append(docs, types.RenderedDoc{
			RelPath: path.Join(projectsDir, lay.projDirs[i], projectInfoFile),
			Content: projectPage(p, lay.docFiles[i]),
		})
		for j, d := range p.Docs {
			docs = append(docs, types.RenderedDoc{
				RelPath: path.Join(projectsDir, lay.projDirs[i], docsDir, lay.docFiles[i][j]),
				Content: documentPage(d),
			})
		}
	}

	docs = append(docs,
		types.RenderedDoc{
			RelPath: path.Join(metadataDir, projectIndexFile),
			Content: projectsIndex(m, lay),
		},
		types.RenderedDoc{
			RelPath: path.Join(metadataDir, convIndexFile),
			Content: conversationsIndex(m, lay),
		},
		types.RenderedDoc{
			RelPath: path.Join(metadataDir, userInfoFile),
			Content: userInfo(m),
		},
	)
	return docs
}

// layout fixes the filename of every entity up front so detail pages and the
// indexes that link to them agree on paths.
type layout struct {
	convFiles []string   // filename under conversations/, by conversation position
	projDirs  []string   // directory under projects/, by project position
	docFiles  [][]string // filename under projects/<dir>/docs/, by project and doc position
}

func newLayout(m *types.ExportModel) *layout {
	lay := &layout{
		convFiles: make([]string, len(m.Conversations)),
		projDirs:  make([]string, len(m.Projects)),
		docFiles:  make([][]string, len(m.Projects)),
	}

	convs := newNameTable()
	for i, c := range m.Conversations {
		lay.convFiles[i] = convs.claim(c.Name, i) + ".md"
	}

	projs := newNameTable()
	for i, p := range m.Projects {
		lay.projDirs[i] = projs.claim(p.Name, i)

		docNames := newNameTable()
		lay.docFiles[i] = make([]string, len(p.Docs))
		for j, d := range p.Docs {
			lay.docFiles[i][j] = docNames.claim(d.Name, j) + ".md"
		}
	}
	return lay
}

// byNewest returns entity positions ordered newest-first by the given raw
// timestamp, with unparseable timestamps last and source order breaking ties.
func byNewest(n int, timestamp func(i int) string) []int {
	order := make([]int, n)
	parsed := make([]time.Time, n)
	valid := make([]bool, n)
	for i := range order {
		order[i] = i
		parsed[i], valid[i] = types.ParseTimestamp(timestamp(i))
	}

	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		switch {
		case valid[i] && valid[j]:
			return parsed[i].After(parsed[j])
		case valid[i]:
			return true
		default:
			return false
		}
	})
	return order
}

var (
	codeBlocks = regexp.MustCompile("(?s)```.*?```")
	inlineCode = regexp.MustCompile("`[^`]*`")
)

const summaryExcerptLen = 80

// conversationSummary derives the short description used by the indexes and
// the root summary: message count plus a cleaned excerpt of the first human
// message.
func conversationSummary(c types.Conversation) string {
	if len(c.Messages) == 0 {
		return "No messages"
	}

	var excerpt string
	for _, msg := range c.Messages {
		if msg.Sender == types.SenderHuman && msg.Text != "" {
			excerpt = msg.Text
			break
		}
	}
	if excerpt == "" {
		return pluralize(len(c.Messages), "message")
	}

	excerpt = codeBlocks.ReplaceAllString(excerpt, "[code block]")
	excerpt = inlineCode.ReplaceAllString(excerpt, "[code]")
	excerpt = strings.Join(strings.Fields(excerpt), " ")
	if utf8.RuneCountInString(excerpt) > summaryExcerptLen {
		runes := []rune(excerpt)
		excerpt = strings.TrimRight(string(runes[:summaryExcerptLen]), " ") + "..."
	}
	return pluralize(len(c.Messages), "message") + " - " + excerpt
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package searchindex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/claude-archive/pkg/types"
)

func testModel() *types.ExportModel {
	return &types.ExportModel{
		Conversations: []types.Conversation{
			{
				ID:   "c1",
				Name: "Gophers",
				Messages: []types.Message{
					{Sender: types.SenderHuman, Text: "how do goroutines work"},
					{Sender: types.SenderAssistant, Text: "a goroutine is a lightweight thread"},
				},
			},
		},
		Projects: []types.Project{
			{
				ID:   "p1",
				Name: "Research",
				Docs: []types.Document{
					{Name: "outline.md", Content: "distributed consensus notes"},
				},
			},
		},
	}
}

func TestBuildAndSearch(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	require.NoError(t, Build(ctx, root, testModel()))

	_, err := os.Stat(filepath.Join(root, "metadata", "search.db"))
	require.NoError(t, err)

	hits, err := SearchMessages(ctx, root, "goroutine", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "c1", hits[0].ConversationID)
	assert.Equal(t, "Gophers", hits[0].ConversationName)
	assert.Equal(t, "assistant", hits[0].Sender)

	none, err := SearchMessages(ctx, root, "unrelated", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBuildReplacesStaleIndex(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	require.NoError(t, Build(ctx, root, testModel()))

	// Rebuild with a different model; old rows must be gone.
	fresh := &types.ExportModel{
		Conversations: []types.Conversation{
			{ID: "c2", Name: "New", Messages: []types.Message{
				{Sender: types.SenderHuman, Text: "only this remains"},
			}},
		},
	}
	require.NoError(t, Build(ctx, root, fresh))

	hits, err := SearchMessages(ctx, root, "goroutines", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = SearchMessages(ctx, root, "remains", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestBuildEmptyModel(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Build(context.Background(), root, &types.ExportModel{}))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize walks loosely typed export records into the canonical
// model. Every field access is tolerant: a record missing expected sub-fields
// degrades to documented defaults rather than failing the collection.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/claude-archive/internal/load"
	"github.com/pdiddy/claude-archive/pkg/types"
)

const (
	defaultConversationName = "Untitled"
	defaultProjectName      = "Untitled Project"
	defaultDocumentName     = "Untitled Document"
)

// Model builds the canonical export model from the raw per-role record
// collections and computes aggregate statistics. The model is immutable
// afterwards.
func Model(conversations, projects, users []load.Record) *types.ExportModel {
	m := &types.ExportModel{
		Conversations: Conversations(conversations),
		Projects:      Projects(projects),
		Users:         Users(users),
	}
	m.Stats = computeStats(m)
	return m
}

// Conversations maps raw conversation records into canonical form,
// preserving record order and the message order within each record.
func Conversations(records []load.Record) []types.Conversation {
	out := make([]types.Conversation, 0, len(records))
	for i, rec := range records {
		conv := types.Conversation{
			ID:        str(rec, "uuid"),
			Name:      strOr(rec, "name", defaultConversationName),
			Summary:   str(rec, "summary"),
			CreatedAt: str(rec, "created_at"),
			UpdatedAt: str(rec, "updated_at"),
		}
		if conv.ID == "" {
			conv.ID = syntheticID("conversation", i)
		}
		if account := subMap(rec, "account"); account != nil {
			conv.AccountID = str(account, "uuid")
		}
		for _, raw := range list(rec, "chat_messages") {
			msg, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			conv.Messages = append(conv.Messages, types.Message{
				Sender:    types.Sender(strings.ToLower(strOr(msg, "sender", "unknown"))),
				Text:      messageText(msg),
				CreatedAt: str(msg, "created_at"),
			})
		}
		out = append(out, conv)
	}
	return out
}

// Projects maps raw project records into canonical form, preserving the
// source order of nested documents.
func Projects(records []load.Record) []types.Project {
	out := make([]types.Project, 0, len(records))
	for i, rec := range records {
		proj := types.Project{
			ID:             str(rec, "uuid"),
			Name:           strOr(rec, "name", defaultProjectName),
			Description:    str(rec, "description"),
			CreatedAt:      str(rec, "created_at"),
			UpdatedAt:      str(rec, "updated_at"),
			IsPrivate:      boolean(rec, "is_private"),
			IsStarter:      boolean(rec, "is_starter_project"),
			PromptTemplate: str(rec, "prompt_template"),
		}
		if proj.ID == "" {
			proj.ID = syntheticID("project", i)
		}
		if creator := subMap(rec, "creator"); creator != nil {
			proj.CreatorName = str(creator, "full_name")
			proj.CreatorID = str(creator, "uuid")
		}
		for j, raw := range list(rec, "docs") {
			doc, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			d := types.Document{
				ID:        str(doc, "uuid"),
				Name:      strOr(doc, "filename", defaultDocumentName),
				Content:   str(doc, "content"),
				CreatedAt: str(doc, "created_at"),
			}
			if d.ID == "" {
				d.ID = syntheticID(fmt.Sprintf("project:%d:doc", i), j)
			}
			proj.Docs = append(proj.Docs, d)
		}
		out = append(out, proj)
	}
	return out
}

// Users maps raw user records into canonical form. Every field is optional;
// a missing identifier is synthesized so downstream filenames stay stable.
func Users(records []load.Record) []types.User {
	out := make([]types.User, 0, len(records))
	for i, rec := range records {
		u := types.User{
			ID:    str(rec, "uuid"),
			Name:  str(rec, "full_name"),
			Email: str(rec, "email_address"),
			Phone: str(rec, "verified_phone_number"),
		}
		if u.ID == "" {
			u.ID = syntheticID("user", i)
		}
		out = append(out, u)
	}
	return out
}

// messageText flattens a message body. The export carries either a plain
// content string or a list of typed parts; text parts are joined with
// newlines and everything else is skipped.
func messageText(msg map[string]any) string {
	switch content := msg["content"].(type) {
	case string:
		return strings.TrimSpace(content)
	case []any:
		var parts []string
		for _, raw := range content {
			item, ok := raw.(map[string]any)
			if !ok || str(item, "type") != "text" {
				continue
			}
			if text := str(item, "text"); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.TrimSpace(strings.Join(parts, "\n"))
	}
	// Older exports carry the body directly under "text".
	return strings.TrimSpace(str(msg, "text"))
}

// syntheticID derives a stable identifier from the record's role and
// position, so reruns over the same input produce identical filenames.
func syntheticID(kind string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "claude-archive:%s:%d", kind, index)).String()
}

func computeStats(m *types.ExportModel) types.Stats {
	s := types.Stats{
		Conversations: len(m.Conversations),
		Projects:      len(m.Projects),
		Users:         len(m.Users),
	}

	var first, last string
	var firstT, lastT time.Time
	observe := func(raw string) {
		t, ok := types.ParseTimestamp(raw)
		if !ok {
			return
		}
		if first == "" || t.Before(firstT) {
			first, firstT = raw, t
		}
		if last == "" || t.After(lastT) {
			last, lastT = raw, t
		}
	}

	for _, c := range m.Conversations {
		s.Messages += len(c.Messages)
		observe(c.CreatedAt)
		observe(c.UpdatedAt)
	}
	for _, p := range m.Projects {
		s.Documents += len(p.Docs)
		observe(p.CreatedAt)
		observe(p.UpdatedAt)
	}

	s.FirstDate = first
	s.LastDate = last
	return s
}

// str returns the string value at key, or "" when absent or not a string.
func str(rec map[string]any, key string) string {
	v, _ := rec[key].(string)
	return v
}

// strOr returns the string value at key, or fallback when absent or empty.
func strOr(rec map[string]any, key, fallback string) string {
	if v := str(rec, key); v != "" {
		return v
	}
	return fallback
}

func boolean(rec map[string]any, key string) bool {
	v, _ := rec[key].(bool)
	return v
}

func list(rec map[string]any, key string) []any {
	v, _ := rec[key].([]any)
	return v
}

func subMap(rec map[string]any, key string) map[string]any {
	v, _ := rec[key].(map[string]any)
	return v
}

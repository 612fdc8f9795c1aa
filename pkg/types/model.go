// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the canonical export model shared across pipeline stages.
package types

// Role is the semantic category assigned to an input file by filename analysis.
type Role string

const (
	RoleConversations Role = "conversations"
	RoleProjects      Role = "projects"
	RoleUsers         Role = "users"
	RoleUnknown       Role = "unknown"
)

// Sender identifies who produced a message. Senders other than human and
// assistant are preserved verbatim and rendered under their own label.
type Sender string

const (
	SenderHuman     Sender = "human"
	SenderAssistant Sender = "assistant"
)

// Message is a single entry in a conversation transcript. Order within the
// parent conversation is insertion order from the source and is never
// re-sorted.
type Message struct {
	// Sender is the lowercased sender role from the source record.
	Sender Sender

	// Text is the message body. Content arrays from the source are
	// flattened into a single text block.
	Text string

	// CreatedAt is the raw source timestamp, or empty when the source
	// record carries none.
	CreatedAt string
}

// Conversation is one chat thread from the export. The export format carries
// no conversation-to-project link, so conversations stand alone.
type Conversation struct {
	// ID is the source UUID, or a synthesized stable identifier when the
	// record has none.
	ID string

	// Name is the conversation title ("Untitled" when absent).
	Name string

	// Summary is an exporter-provided abstract, often empty.
	Summary string

	// AccountID is the owning account UUID when present.
	AccountID string

	CreatedAt string
	UpdatedAt string

	// Messages in source order. An empty conversation is valid.
	Messages []Message
}

// Document is a file attached to a project. Owned exclusively by its parent.
type Document struct {
	ID        string
	Name      string
	Content   string
	CreatedAt string
}

// Project is one project from the export, with its attached documents in
// source order.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   string
	UpdatedAt   string

	// CreatorName and CreatorID describe the project creator when the
	// source record carries one.
	CreatorName string
	CreatorID   string

	IsPrivate bool
	IsStarter bool

	// PromptTemplate is the project's custom instructions, when set.
	PromptTemplate string

	Docs []Document
}

// User is one account identity from the export. Everything except the
// identifier is optional; the identifier is synthesized when absent.
type User struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Stats holds aggregate figures computed once after normalization.
type Stats struct {
	Conversations int
	Projects      int
	Users         int
	Messages      int
	Documents     int

	// FirstDate and LastDate bound the export's timestamp range in raw
	// source form. Records without a parseable timestamp are excluded;
	// both are empty when no record carries one.
	FirstDate string
	LastDate  string
}

// ExportModel is the aggregate root built once per run from the loaded
// collections and discarded after rendering. It is never mutated after
// ComputeStats.
type ExportModel struct {
	Conversations []Conversation
	Projects      []Project
	Users         []User

	Stats Stats
}

// RenderedDoc pairs a rendered document body with its path relative to the
// archive root.
type RenderedDoc struct {
	RelPath string
	Content string
}

package app

import (
	"github.com/Elun4705/Interactive/internal/conversation"
	"github.com/Elun4705/Interactive/internal/upload"
)

// ConversationsLoadedMsg carries the conversation list for the sidebar
type ConversationsLoadedMsg struct {
	Conversations []conversation.Conversation
	Err           error
}

// MessagesLoadedMsg carries the history of one conversation
type MessagesLoadedMsg struct {
	ConversationID string
	Messages       []conversation.Message
	Err            error
}

// ReplyMsg is sent when a send round trip finishes
type ReplyMsg struct {
	ConversationID string // Conversation the exchange landed in
	Err            error
}

// FileReadMsg is sent when one selected or dropped file has been read
type FileReadMsg struct {
	Path string
	File upload.File
	Err  error
}

// ClipboardImageMsg is sent after checking the clipboard for an image
type ClipboardImageMsg struct {
	File *upload.File // nil when the clipboard holds no image
	Err  error
}

// RecordingDoneMsg carries the recorded clip as a data URL
type RecordingDoneMsg struct {
	Audio string
	Err   error
}

// ImportDoneMsg is sent when a conversation import finishes
type ImportDoneMsg struct {
	Result conversation.Result
	Err    error
}

// ResetDoneMsg is sent after the conversation reset
type ResetDoneMsg struct {
	Err error
}

// DeleteDoneMsg is sent after a conversation was deleted
type DeleteDoneMsg struct {
	ConversationID string
	Err            error
}

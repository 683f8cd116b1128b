package repoargs

import (
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
)

type CreateMessage struct {
	ConversationID   int64
	SenderID         int64
	Content          string
	OriginalLanguage domain.Language
}

type AddAttachment struct {
	MessageID   int64
	ObjectKey   string
	FileName    string
	ContentType string
}

// ConversationSummary строка списка диалогов пользователя.
type ConversationSummary struct {
	domain.Conversation
	LastMessageAt *time.Time
	UnreadCount   int64
}

// MessageView сообщение с переводом на запрошенный язык, если перевод есть.
type MessageView struct {
	domain.Message
	Translation *string
	Attachments []domain.MessageAttachment
}

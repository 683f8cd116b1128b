package pgrepo

import (
	"context"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const conversationSelect = `SELECT c.id, c.created_at, c.updated_at, c.order_id,
	ARRAY(SELECT cp.user_id FROM conversation_participants cp WHERE cp.conversation_id = c.id ORDER BY cp.user_id)
	FROM conversations c`

const messageColumns = `m.id, m.conversation_id, m.sender_id, m.content, m.created_at, m.is_read, m.original_language`

type MessagingRepository struct {
	conn uow.DBTX
}

func NewMessagingRepository(conn uow.DBTX) *MessagingRepository {
	return &MessagingRepository{conn: conn}
}

// CreateConversation создает диалог с участниками. Должен выполняться в транзакции.
func (m *MessagingRepository) CreateConversation(
	ctx context.Context,
	orderID *int64,
	participantIDs []int64,
) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := m.conn.QueryRow(ctx, `INSERT INTO conversations (order_id) VALUES ($1)
		RETURNING id, created_at, updated_at, order_id`, orderID,
	).Scan(&conv.ID, &conv.CreatedAt, &conv.UpdatedAt, &conv.OrderID)
	if err != nil {
		return nil, convertErr(err, "creating conversation")
	}

	if _, err = m.conn.Exec(ctx, `INSERT INTO conversation_participants (conversation_id, user_id)
		SELECT $1, unnest($2::bigint[]) ON CONFLICT DO NOTHING`, conv.ID, participantIDs); err != nil {
		return nil, convertErr(err, "adding participants to conversation %d", conv.ID)
	}
	conv.ParticipantIDs = participantIDs
	return &conv, nil
}

func (m *MessagingRepository) FindConversationByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	conv, err := scanConversation(m.conn.QueryRow(ctx, conversationSelect+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding conversation %d", id)
	}
	return conv, nil
}

// FindDirectConversation ищет диалог без привязки к заказу ровно между двумя пользователями.
func (m *MessagingRepository) FindDirectConversation(ctx context.Context, userA, userB int64) (*domain.Conversation, error) {
	row := m.conn.QueryRow(ctx, conversationSelect+` WHERE c.order_id IS NULL
		AND EXISTS (SELECT 1 FROM conversation_participants WHERE conversation_id = c.id AND user_id = $1)
		AND EXISTS (SELECT 1 FROM conversation_participants WHERE conversation_id = c.id AND user_id = $2)
		AND (SELECT count(*) FROM conversation_participants WHERE conversation_id = c.id) = 2
		ORDER BY c.id LIMIT 1`, userA, userB)
	conv, err := scanConversation(row)
	if err != nil {
		return nil, convertErr(err, "finding conversation between %d and %d", userA, userB)
	}
	return conv, nil
}

// LockDirectConversation блокирует до конца транзакции создание диалога между двумя пользователями.
// Порядок пользователей не важен.
func (m *MessagingRepository) LockDirectConversation(ctx context.Context, userA, userB int64) error {
	_, err := m.conn.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended(
		'conversation:' || least($1::bigint, $2::bigint) || ':' || greatest($1::bigint, $2::bigint), 0))`,
		userA, userB)
	if err != nil {
		return convertErr(err, "locking conversation between %d and %d", userA, userB)
	}
	return nil
}

func (m *MessagingRepository) FindOrderConversation(ctx context.Context, orderID int64) (*domain.Conversation, error) {
	row := m.conn.QueryRow(ctx, conversationSelect+` WHERE c.order_id = $1 ORDER BY c.id LIMIT 1`, orderID)
	conv, err := scanConversation(row)
	if err != nil {
		return nil, convertErr(err, "finding conversation of order %d", orderID)
	}
	return conv, nil
}

// ListConversations диалоги пользователя с временем последнего сообщения и числом непрочитанных
// чужих сообщений. Сначала диалоги с самой свежей активностью.
func (m *MessagingRepository) ListConversations(
	ctx context.Context,
	userID int64,
) ([]repoargs.ConversationSummary, error) {
	rows, err := m.conn.Query(ctx, `SELECT c.id, c.created_at, c.updated_at, c.order_id,
			ARRAY(SELECT p.user_id FROM conversation_participants p WHERE p.conversation_id = c.id ORDER BY p.user_id),
			(SELECT max(msg.created_at) FROM messages msg WHERE msg.conversation_id = c.id),
			(SELECT count(*) FROM messages msg
				WHERE msg.conversation_id = c.id AND NOT msg.is_read AND msg.sender_id <> $1)
		FROM conversations c
		JOIN conversation_participants cp ON cp.conversation_id = c.id AND cp.user_id = $1
		ORDER BY c.updated_at DESC, c.id DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "listing conversations of user %d", userID)
	}
	list, err := collect(rows, func(row scanner) (*repoargs.ConversationSummary, error) {
		var s repoargs.ConversationSummary
		if scanErr := row.Scan(
			&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.OrderID, &s.ParticipantIDs, &s.LastMessageAt, &s.UnreadCount,
		); scanErr != nil {
			return nil, scanErr //nolint:wrapcheck
		}
		return &s, nil
	})
	if err != nil {
		return nil, convertErr(err, "listing conversations of user %d", userID)
	}
	return list, nil
}

// MarkRead отмечает прочитанными сообщения диалога, отправленные не readerID.
func (m *MessagingRepository) MarkRead(ctx context.Context, conversationID, readerID int64) error {
	_, err := m.conn.Exec(ctx, `UPDATE messages SET is_read = true
		WHERE conversation_id = $1 AND sender_id <> $2 AND NOT is_read`, conversationID, readerID)
	return convertErr(err, "marking conversation %d read", conversationID)
}

// Messages сообщения диалога от старых к новым, с переводом на lang и вложениями.
func (m *MessagingRepository) Messages(
	ctx context.Context,
	conversationID int64,
	lang domain.Language,
) ([]repoargs.MessageView, error) {
	rows, err := m.conn.Query(ctx, `SELECT `+messageColumns+`, t.translated_content
		FROM messages m
		LEFT JOIN message_translations t ON t.message_id = m.id AND t.language = $2
		WHERE m.conversation_id = $1 ORDER BY m.created_at, m.id`, conversationID, lang)
	if err != nil {
		return nil, convertErr(err, "messages of conversation %d", conversationID)
	}
	views, err := collect(rows, func(row scanner) (*repoargs.MessageView, error) {
		var v repoargs.MessageView
		if scanErr := row.Scan(
			&v.ID, &v.ConversationID, &v.SenderID, &v.Content, &v.CreatedAt, &v.IsRead, &v.OriginalLanguage,
			&v.Translation,
		); scanErr != nil {
			return nil, scanErr //nolint:wrapcheck
		}
		return &v, nil
	})
	if err != nil {
		return nil, convertErr(err, "messages of conversation %d", conversationID)
	}

	attachments, err := m.attachmentsByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].Attachments = attachments[views[i].ID]
	}
	return views, nil
}

func (m *MessagingRepository) attachmentsByConversation(
	ctx context.Context,
	conversationID int64,
) (map[int64][]domain.MessageAttachment, error) {
	rows, err := m.conn.Query(ctx, `SELECT a.id, a.message_id, a.object_key, a.file_name, a.content_type
		FROM message_attachments a JOIN messages m ON m.id = a.message_id
		WHERE m.conversation_id = $1 ORDER BY a.id`, conversationID)
	if err != nil {
		return nil, convertErr(err, "attachments of conversation %d", conversationID)
	}
	list, err := collect(rows, scanAttachment)
	if err != nil {
		return nil, convertErr(err, "attachments of conversation %d", conversationID)
	}
	var res = make(map[int64][]domain.MessageAttachment, len(list))
	for _, a := range list {
		res[a.MessageID] = append(res[a.MessageID], a)
	}
	return res, nil
}

// CreateMessage сохраняет сообщение и обновляет время активности диалога.
func (m *MessagingRepository) CreateMessage(ctx context.Context, args repoargs.CreateMessage) (*domain.Message, error) {
	row := m.conn.QueryRow(ctx, `INSERT INTO messages AS m (conversation_id, sender_id, content, original_language)
		VALUES ($1, $2, $3, $4) RETURNING `+messageColumns,
		args.ConversationID, args.SenderID, args.Content, args.OriginalLanguage)
	msg, err := scanMessage(row)
	if err != nil {
		return nil, convertErr(err, "creating message in conversation %d", args.ConversationID)
	}
	if _, err = m.conn.Exec(ctx, `UPDATE conversations SET updated_at = now() WHERE id = $1`,
		args.ConversationID); err != nil {
		return nil, convertErr(err, "touching conversation %d", args.ConversationID)
	}
	return msg, nil
}

func (m *MessagingRepository) FindMessageByID(ctx context.Context, id int64) (*domain.Message, error) {
	row := m.conn.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages m WHERE m.id = $1`, id)
	msg, err := scanMessage(row)
	if err != nil {
		return nil, convertErr(err, "finding message %d", id)
	}
	return msg, nil
}

func (m *MessagingRepository) AddAttachment(
	ctx context.Context,
	args repoargs.AddAttachment,
) (*domain.MessageAttachment, error) {
	row := m.conn.QueryRow(ctx, `INSERT INTO message_attachments (message_id, object_key, file_name, content_type)
		VALUES ($1, $2, $3, $4) RETURNING id, message_id, object_key, file_name, content_type`,
		args.MessageID, args.ObjectKey, args.FileName, args.ContentType)
	a, err := scanAttachment(row)
	if err != nil {
		return nil, convertErr(err, "adding attachment to message %d", args.MessageID)
	}
	return a, nil
}

// UpsertTranslation сохраняет перевод сообщения. Существующий перевод на тот же язык перезаписывается.
func (m *MessagingRepository) UpsertTranslation(
	ctx context.Context,
	t domain.MessageTranslation,
) (*domain.MessageTranslation, error) {
	var res domain.MessageTranslation
	err := m.conn.QueryRow(ctx, `INSERT INTO message_translations (message_id, language, translated_content)
		VALUES ($1, $2, $3)
		ON CONFLICT (message_id, language) DO UPDATE SET translated_content = EXCLUDED.translated_content
		RETURNING message_id, language, translated_content`, t.MessageID, t.Language, t.TranslatedContent,
	).Scan(&res.MessageID, &res.Language, &res.TranslatedContent)
	if err != nil {
		return nil, convertErr(err, "saving translation of message %d", t.MessageID)
	}
	return &res, nil
}

func scanConversation(row pgx.Row) (*domain.Conversation, error) {
	var c domain.Conversation
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.OrderID, &c.ParticipantIDs); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &c, nil
}

func scanMessage(row scanner) (*domain.Message, error) {
	var msg domain.Message
	if err := row.Scan(
		&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.Content, &msg.CreatedAt, &msg.IsRead, &msg.OriginalLanguage,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &msg, nil
}

func scanAttachment(row scanner) (*domain.MessageAttachment, error) {
	var a domain.MessageAttachment
	if err := row.Scan(&a.ID, &a.MessageID, &a.ObjectKey, &a.FileName, &a.ContentType); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}

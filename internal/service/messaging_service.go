package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
)

const attachmentsPrefix = "message_attachments"

type MessagingService struct {
	uow       uow.UOW
	repo      MessagingRepository
	userRepo  UserRepository
	orderRepo OrderRepository
	storage   ObjectStorage
}

func NewMessagingService(u uow.UOW, storage ObjectStorage) (*MessagingService, error) {
	repo, err := repoFromUOW[MessagingRepository](u, repoargs.MessagingRepoName)
	if err != nil {
		return nil, err
	}
	userRepo, err := repoFromUOW[UserRepository](u, repoargs.UserRepoName)
	if err != nil {
		return nil, err
	}
	orderRepo, err := repoFromUOW[OrderRepository](u, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	return &MessagingService{
		uow:       u,
		repo:      repo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		storage:   storage,
	}, nil
}

// Conversations диалоги пользователя, последние по активности первыми.
func (m *MessagingService) Conversations(ctx context.Context, userID int64) ([]repoargs.ConversationSummary, error) {
	list, err := m.repo.ListConversations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	return list, nil
}

// StartWithUser возвращает существующий диалог двух пользователей или создает новый.
func (m *MessagingService) StartWithUser(ctx context.Context, actor Actor, otherID int64) (*domain.Conversation, error) {
	if otherID == actor.UserID {
		return nil, fmt.Errorf("starting conversation: %w",
			domain.NewValidationError("user_id", "cannot start conversation with yourself"))
	}
	if _, err := m.userRepo.FindUserByID(ctx, otherID); err != nil {
		return nil, fmt.Errorf("starting conversation: %w", err)
	}

	var conv *domain.Conversation
	txErr := m.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[MessagingRepository](tx, repoargs.MessagingRepoName)
		if err != nil {
			return err
		}
		// параллельные запросы той же пары ждут здесь и затем находят созданный диалог
		if err = repo.LockDirectConversation(ctx, actor.UserID, otherID); err != nil {
			return err //nolint:wrapcheck
		}
		conv, err = findOrCreate(
			func() (*domain.Conversation, error) { return repo.FindDirectConversation(ctx, actor.UserID, otherID) },
			func() (*domain.Conversation, error) {
				return repo.CreateConversation(ctx, nil, []int64{actor.UserID, otherID})
			},
		)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("starting conversation: %w", txErr)
	}
	return conv, nil
}

// findOrCreate возвращает найденный объект, при domain.ErrRecordNotFound создает новый.
func findOrCreate[T any](find, create func() (*T, error)) (*T, error) {
	found, err := find()
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}
	return create()
}

// StartAboutOrder диалог покупателя и продавца по заказу. Для одного заказа диалог один.
func (m *MessagingService) StartAboutOrder(ctx context.Context, actor Actor, orderID int64) (*domain.Conversation, error) {
	order, err := m.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("starting order conversation: %w", err)
	}
	if order.BuyerID != actor.UserID && order.SellerID != actor.UserID {
		return nil, fmt.Errorf("starting order conversation: %w", domain.ErrForbidden)
	}

	var conv *domain.Conversation
	txErr := m.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, repoErr := repoFromTX[MessagingRepository](tx, repoargs.MessagingRepoName)
		if repoErr != nil {
			return repoErr
		}
		conv, repoErr = findOrCreate(
			func() (*domain.Conversation, error) { return repo.FindOrderConversation(ctx, orderID) },
			func() (*domain.Conversation, error) {
				return repo.CreateConversation(ctx, &orderID, []int64{order.BuyerID, order.SellerID})
			},
		)
		return repoErr
	})
	if errors.Is(txErr, domain.ErrDuplicateKey) {
		// диалог по заказу успел создать параллельный запрос
		conv, txErr = m.repo.FindOrderConversation(ctx, orderID)
	}
	if txErr != nil {
		return nil, fmt.Errorf("starting order conversation: %w", txErr)
	}
	return conv, nil
}

// MessageItem сообщение с переводом и ссылками на вложения.
type MessageItem struct {
	repoargs.MessageView
	AttachmentURLs []string
}

type ConversationView struct {
	Conversation *domain.Conversation
	Messages     []MessageItem
}

// Open открывает диалог: отмечает чужие сообщения прочитанными и возвращает сообщения от старых к новым
// с переводом на язык lang, если он есть.
func (m *MessagingService) Open(
	ctx context.Context,
	actor Actor,
	conversationID int64,
	lang domain.Language,
) (*ConversationView, error) {
	conv, err := m.participantConversation(ctx, actor, conversationID)
	if err != nil {
		return nil, fmt.Errorf("opening conversation: %w", err)
	}
	if err = m.repo.MarkRead(ctx, conversationID, actor.UserID); err != nil {
		return nil, fmt.Errorf("opening conversation: %w", err)
	}
	views, err := m.repo.Messages(ctx, conversationID, lang)
	if err != nil {
		return nil, fmt.Errorf("opening conversation: %w", err)
	}

	items := make([]MessageItem, len(views))
	for i, v := range views {
		items[i] = MessageItem{MessageView: v}
		for _, a := range v.Attachments {
			url, urlErr := m.storage.PresignGet(ctx, a.ObjectKey)
			if urlErr != nil {
				return nil, fmt.Errorf("opening conversation: %w", urlErr)
			}
			items[i].AttachmentURLs = append(items[i].AttachmentURLs, url)
		}
	}
	return &ConversationView{Conversation: conv, Messages: items}, nil
}

type SendMessageArgs struct {
	ConversationID int64
	Content        string
	Language       string
	Attachments    []FileUpload
}

type SentMessage struct {
	Message     *domain.Message
	Attachments []domain.MessageAttachment
}

// Send отправляет сообщение. Сообщение должно содержать текст или хотя бы одно вложение.
// Вложения загружаются в хранилище до начала транзакции.
func (m *MessagingService) Send(ctx context.Context, actor Actor, args SendMessageArgs) (*SentMessage, error) {
	content := strings.TrimSpace(args.Content)
	if content == "" && len(args.Attachments) == 0 {
		return nil, fmt.Errorf("sending message: %w", domain.NewValidationError("content", "empty message"))
	}
	lang, err := domain.ParseLanguageOrDefault(args.Language)
	if err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}
	if _, err = m.participantConversation(ctx, actor, args.ConversationID); err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}

	uploaded := make([]repoargs.AddAttachment, 0, len(args.Attachments))
	for _, file := range args.Attachments {
		key, uploadErr := uploadFile(ctx, m.storage, attachmentsPrefix, file)
		if uploadErr != nil {
			return nil, fmt.Errorf("sending message: %w", uploadErr)
		}
		uploaded = append(uploaded, repoargs.AddAttachment{
			ObjectKey:   key,
			FileName:    file.Name,
			ContentType: file.ContentType,
		})
	}

	var sent = new(SentMessage)
	txErr := m.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, txErr := repoFromTX[MessagingRepository](tx, repoargs.MessagingRepoName)
		if txErr != nil {
			return txErr
		}
		sent.Message, txErr = repo.CreateMessage(ctx, repoargs.CreateMessage{
			ConversationID:   args.ConversationID,
			SenderID:         actor.UserID,
			Content:          content,
			OriginalLanguage: lang,
		})
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}
		for _, a := range uploaded {
			a.MessageID = sent.Message.ID
			attachment, addErr := repo.AddAttachment(ctx, a)
			if addErr != nil {
				return addErr //nolint:wrapcheck
			}
			sent.Attachments = append(sent.Attachments, *attachment)
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("sending message: %w", txErr)
	}
	return sent, nil
}

// Translate сохраняет перевод сообщения на язык lang. Переводить может любой участник диалога.
func (m *MessagingService) Translate(
	ctx context.Context,
	actor Actor,
	messageID int64,
	language, content string,
) (*domain.MessageTranslation, error) {
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return nil, fmt.Errorf("translating message: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("translating message: %w", domain.NewValidationError("content", "required"))
	}
	msg, err := m.repo.FindMessageByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("translating message: %w", err)
	}
	if _, err = m.participantConversation(ctx, actor, msg.ConversationID); err != nil {
		return nil, fmt.Errorf("translating message: %w", err)
	}

	t, err := m.repo.UpsertTranslation(ctx, domain.MessageTranslation{
		MessageID:         messageID,
		Language:          lang,
		TranslatedContent: content,
	})
	if err != nil {
		return nil, fmt.Errorf("translating message: %w", err)
	}
	return t, nil
}

func (m *MessagingService) participantConversation(
	ctx context.Context,
	actor Actor,
	conversationID int64,
) (*domain.Conversation, error) {
	conv, err := m.repo.FindConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !slices.Contains(conv.ParticipantIDs, actor.UserID) {
		return nil, domain.ErrForbidden
	}
	return conv, nil
}

package api

import (
	"context"
	"io"
	"net/http"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/gin-gonic/gin"
)

// maxAttachments сколько файлов можно приложить к одному сообщению.
const maxAttachments = 5

type MessagingHandler struct {
	msgSvs MessagingServicer
}

func NewMessagingHandler(msgSvs MessagingServicer) *MessagingHandler {
	return &MessagingHandler{msgSvs: msgSvs}
}

// Index GET RouteGroup + ConversationsRoute.
func (h *MessagingHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.msgSvs.Conversations(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	var response = make([]ConversationResponse, len(list))
	for i := range list {
		response[i] = newConversationSummaryResponse(&list[i])
	}
	c.JSON(http.StatusOK, response)
}

// StartConversationParams ровно одно из полей: диалог с пользователем или по заказу.
type StartConversationParams struct {
	UserID  *int64 `binding:"omitempty,min=1" json:"user_id"`
	OrderID *int64 `binding:"omitempty,min=1" json:"order_id"`
}

// Start POST RouteGroup + ConversationsRoute. Существующий диалог переиспользуется.
func (h *MessagingHandler) Start(c *gin.Context) {
	var params StartConversationParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if (params.UserID == nil) == (params.OrderID == nil) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "exactly one of user_id or order_id is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var (
		conv *domain.Conversation
		err  error
	)
	if params.OrderID != nil {
		conv, err = h.msgSvs.StartAboutOrder(ctx, getActor(c), *params.OrderID)
	} else {
		conv, err = h.msgSvs.StartWithUser(ctx, getActor(c), *params.UserID)
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newConversationResponse(conv))
}

type OpenConversationQuery struct {
	Lang string `binding:"omitempty,lang" form:"lang"`
}

type ConversationDetailResponse struct {
	ConversationResponse
	Messages []MessageResponse `json:"messages"`
}

// Show GET RouteGroup + ConversationRoute. Переводы отдаются на язык из параметра lang.
func (h *MessagingHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var q OpenConversationQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	lang, _ := domain.ParseLanguageOrDefault(q.Lang)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.msgSvs.Open(ctx, getActor(c), id, lang)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	messages := make([]MessageResponse, len(view.Messages))
	for i, m := range view.Messages {
		messages[i] = newMessageResponse(&m.Message, m.Attachments, m.AttachmentURLs)
		messages[i].Translation = m.Translation
	}
	c.JSON(http.StatusOK, ConversationDetailResponse{
		ConversationResponse: newConversationResponse(view.Conversation),
		Messages:             messages,
	})
}

type SendMessageParams struct {
	Content  string `binding:"max_bytes=10000" form:"content"`
	Language string `binding:"omitempty,lang"  form:"language"`
}

// Send POST RouteGroup + MessagesRoute. multipart форма: content, language и файлы attachments.
func (h *MessagingHandler) Send(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params SendMessageParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	args := service.SendMessageArgs{ConversationID: id, Content: params.Content, Language: params.Language}
	if form, formErr := c.MultipartForm(); formErr == nil && form != nil {
		files := form.File["attachments"]
		if len(files) > maxAttachments {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "too many attachments"})
			return
		}
		for _, fh := range files {
			upload, closer, err := openUpload(fh)
			if err != nil {
				_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePrivate)
				return
			}
			defer func(cl io.Closer) { _ = cl.Close() }(closer)
			args.Attachments = append(args.Attachments, upload)
		}
	}

	ctx, cancel := context.WithTimeout(c, UploadServiceTimeout)
	defer cancel()

	sent, err := h.msgSvs.Send(ctx, getActor(c), args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMessageResponse(sent.Message, sent.Attachments, nil))
}

type TranslationParams struct {
	Language string `binding:"required,lang"            json:"language"`
	Content  string `binding:"required,max_bytes=10000" json:"content"`
}

// Translate POST RouteGroup + TranslationsRoute. Сохраняет перевод сообщения.
func (h *MessagingHandler) Translate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params TranslationParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := h.msgSvs.Translate(ctx, getActor(c), id, params.Language, params.Content)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message_id":         t.MessageID,
		"language":           t.Language,
		"translated_content": t.TranslatedContent,
	})
}

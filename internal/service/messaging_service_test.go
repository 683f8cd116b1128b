package service

import (
	"bytes"
	"testing"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	serviceSuite
	messagingService *MessagingService
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	messagingService, servErr := NewMessagingService(s.mockUOW, s.mockStorage)
	s.Require().NoError(servErr)
	s.messagingService = messagingService
}

func (s *MessagingServiceTestSuite) TestStartWithUser() {
	existing := domain.Conversation{ID: 5, ParticipantIDs: []int64{1, 2}}

	s.Run("reuses existing conversation", func() {
		s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(&domain.User{ID: 2}, nil)
		gomock.InOrder(
			s.mockMessaging.EXPECT().LockDirectConversation(gomock.Any(), int64(1), int64(2)).Return(nil),
			s.mockMessaging.EXPECT().FindDirectConversation(gomock.Any(), int64(1), int64(2)).Return(&existing, nil),
		)
		s.mockMessaging.EXPECT().CreateConversation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		conv, err := s.messagingService.StartWithUser(s.T().Context(), Actor{UserID: 1}, 2)
		s.Require().NoError(err)
		s.Equal(int64(5), conv.ID)
	})

	s.Run("creates new conversation", func() {
		s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(&domain.User{ID: 3}, nil)
		gomock.InOrder(
			s.mockMessaging.EXPECT().LockDirectConversation(gomock.Any(), int64(1), int64(3)).Return(nil),
			s.mockMessaging.EXPECT().FindDirectConversation(gomock.Any(), int64(1), int64(3)).
				Return(nil, domain.ErrRecordNotFound),
			s.mockMessaging.EXPECT().CreateConversation(gomock.Any(), nil, []int64{1, 3}).
				Return(&domain.Conversation{ID: 6, ParticipantIDs: []int64{1, 3}}, nil),
		)

		conv, err := s.messagingService.StartWithUser(s.T().Context(), Actor{UserID: 1}, 3)
		s.Require().NoError(err)
		s.Equal(int64(6), conv.ID)
	})

	s.Run("lock failure", func() {
		s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(&domain.User{ID: 4}, nil)
		s.mockMessaging.EXPECT().LockDirectConversation(gomock.Any(), int64(1), int64(4)).Return(domain.ErrUnknown)
		s.mockMessaging.EXPECT().FindDirectConversation(gomock.Any(), int64(1), int64(4)).Times(0)

		_, err := s.messagingService.StartWithUser(s.T().Context(), Actor{UserID: 1}, 4)
		s.Require().ErrorIs(err, domain.ErrUnknown)
	})

	s.Run("with yourself", func() {
		_, err := s.messagingService.StartWithUser(s.T().Context(), Actor{UserID: 1}, 1)
		var ve *domain.ValidationError
		s.Require().ErrorAs(err, &ve)
	})
}

func (s *MessagingServiceTestSuite) TestStartAboutOrder() {
	order := domain.Order{ID: 100, BuyerID: 1, SellerID: 2}
	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(&order, nil).Times(2)
	s.mockMessaging.EXPECT().FindOrderConversation(gomock.Any(), order.ID).Return(nil, domain.ErrRecordNotFound)
	s.mockMessaging.EXPECT().CreateConversation(gomock.Any(), &order.ID, []int64{1, 2}).
		Return(&domain.Conversation{ID: 9, OrderID: &order.ID}, nil)

	conv, err := s.messagingService.StartAboutOrder(s.T().Context(), Actor{UserID: 2}, order.ID)
	s.Require().NoError(err)
	s.Equal(int64(9), conv.ID)

	_, err = s.messagingService.StartAboutOrder(s.T().Context(), Actor{UserID: 3}, order.ID)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

// Если диалог по заказу создан параллельным запросом, возвращается он.
func (s *MessagingServiceTestSuite) TestStartAboutOrderConcurrentCreate() {
	order := domain.Order{ID: 100, BuyerID: 1, SellerID: 2}
	existing := domain.Conversation{ID: 11, OrderID: &order.ID, ParticipantIDs: []int64{1, 2}}
	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(&order, nil)
	gomock.InOrder(
		s.mockMessaging.EXPECT().FindOrderConversation(gomock.Any(), order.ID).Return(nil, domain.ErrRecordNotFound),
		s.mockMessaging.EXPECT().CreateConversation(gomock.Any(), &order.ID, []int64{1, 2}).
			Return(nil, domain.ErrDuplicateKey),
		s.mockMessaging.EXPECT().FindOrderConversation(gomock.Any(), order.ID).Return(&existing, nil),
	)

	conv, err := s.messagingService.StartAboutOrder(s.T().Context(), Actor{UserID: 1}, order.ID)
	s.Require().NoError(err)
	s.Equal(int64(11), conv.ID)
}

func (s *MessagingServiceTestSuite) TestOpen() {
	conv := domain.Conversation{ID: 5, ParticipantIDs: []int64{1, 2}}
	translation := "Sannu"
	s.mockMessaging.EXPECT().FindConversationByID(gomock.Any(), conv.ID).Return(&conv, nil).Times(2)
	s.mockMessaging.EXPECT().MarkRead(gomock.Any(), conv.ID, int64(1)).Return(nil)
	s.mockMessaging.EXPECT().Messages(gomock.Any(), conv.ID, domain.LanguageHausa).Return([]repoargs.MessageView{
		{Message: domain.Message{ID: 1, Content: "Hello"}, Translation: &translation},
		{
			Message:     domain.Message{ID: 2, Content: "photo"},
			Attachments: []domain.MessageAttachment{{ID: 1, ObjectKey: "message_attachments/a.png"}},
		},
	}, nil)
	s.mockStorage.EXPECT().PresignGet(gomock.Any(), "message_attachments/a.png").Return("https://s3/a.png", nil)

	view, err := s.messagingService.Open(s.T().Context(), Actor{UserID: 1}, conv.ID, domain.LanguageHausa)
	s.Require().NoError(err)
	s.Require().Len(view.Messages, 2)
	s.Equal("Sannu", *view.Messages[0].Translation)
	s.Equal([]string{"https://s3/a.png"}, view.Messages[1].AttachmentURLs)

	_, err = s.messagingService.Open(s.T().Context(), Actor{UserID: 3}, conv.ID, domain.LanguageEnglish)
	s.Require().ErrorIs(err, domain.ErrForbidden)
}

func (s *MessagingServiceTestSuite) TestSend() {
	conv := domain.Conversation{ID: 5, ParticipantIDs: []int64{1, 2}}
	s.mockMessaging.EXPECT().FindConversationByID(gomock.Any(), conv.ID).Return(&conv, nil).AnyTimes()

	s.Run("with attachment", func() {
		s.mockStorage.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", gomock.Any(), int64(3)).Return(nil)
		s.mockMessaging.EXPECT().CreateMessage(gomock.Any(), repoargs.CreateMessage{
			ConversationID:   conv.ID,
			SenderID:         1,
			Content:          "see photo",
			OriginalLanguage: domain.LanguageYoruba,
		}).Return(&domain.Message{ID: 11, ConversationID: conv.ID}, nil)
		s.mockMessaging.EXPECT().AddAttachment(gomock.Any(), gomock.Any()).
			Return(&domain.MessageAttachment{ID: 1, MessageID: 11, FileName: "photo.png"}, nil)

		sent, err := s.messagingService.Send(s.T().Context(), Actor{UserID: 1}, SendMessageArgs{
			ConversationID: conv.ID,
			Content:        " see photo ",
			Language:       "yo",
			Attachments: []FileUpload{{
				Name:        "photo.png",
				ContentType: "image/png",
				Size:        3,
				Body:        bytes.NewReader([]byte{1, 2, 3}),
			}},
		})
		s.Require().NoError(err)
		s.Equal(int64(11), sent.Message.ID)
		s.Len(sent.Attachments, 1)
	})

	s.Run("empty message", func() {
		_, err := s.messagingService.Send(s.T().Context(), Actor{UserID: 1}, SendMessageArgs{ConversationID: conv.ID})
		var ve *domain.ValidationError
		s.Require().ErrorAs(err, &ve)
	})

	s.Run("not a participant", func() {
		_, err := s.messagingService.Send(s.T().Context(), Actor{UserID: 3},
			SendMessageArgs{ConversationID: conv.ID, Content: "hi"})
		s.Require().ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("unsupported language", func() {
		_, err := s.messagingService.Send(s.T().Context(), Actor{UserID: 1},
			SendMessageArgs{ConversationID: conv.ID, Content: "hi", Language: "xx"})
		s.Require().ErrorIs(err, domain.ErrInvalidLanguage)
	})
}

func (s *MessagingServiceTestSuite) TestTranslate() {
	s.mockMessaging.EXPECT().FindMessageByID(gomock.Any(), int64(11)).
		Return(&domain.Message{ID: 11, ConversationID: 5}, nil)
	s.mockMessaging.EXPECT().FindConversationByID(gomock.Any(), int64(5)).
		Return(&domain.Conversation{ID: 5, ParticipantIDs: []int64{1, 2}}, nil)
	s.mockMessaging.EXPECT().UpsertTranslation(gomock.Any(), domain.MessageTranslation{
		MessageID:         11,
		Language:          domain.LanguageIgbo,
		TranslatedContent: "Ndewo",
	}).Return(&domain.MessageTranslation{MessageID: 11, Language: domain.LanguageIgbo}, nil)

	t, err := s.messagingService.Translate(s.T().Context(), Actor{UserID: 2}, 11, "ig", "Ndewo")
	s.Require().NoError(err)
	s.Equal(domain.LanguageIgbo, t.Language)
}

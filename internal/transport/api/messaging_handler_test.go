package api

import (
	"io"
	"net/http"
	"testing"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/fsdevblog/village-connect/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type MessagingHandlerTestSuite struct {
	handlerSuite
	userID    int64
	userToken string
}

func TestMessagingHandlerSuite(t *testing.T) {
	suite.Run(t, new(MessagingHandlerTestSuite))
}

func (s *MessagingHandlerTestSuite) SetupTest() {
	s.handlerSuite.SetupTest()
	s.userID = 1
	s.userToken = s.token(s.userID, domain.UserTypeDiaspora)
}

func (s *MessagingHandlerTestSuite) TestStart() {
	orderID := int64(100)
	s.mockMessagingService.EXPECT().
		StartWithUser(gomock.Any(), actorIs(s.userID, domain.UserTypeDiaspora), int64(2)).
		Return(&domain.Conversation{ID: 7, ParticipantIDs: []int64{1, 2}}, nil).Times(1)
	s.mockMessagingService.EXPECT().
		StartAboutOrder(gomock.Any(), actorIs(s.userID, domain.UserTypeDiaspora), orderID).
		Return(&domain.Conversation{ID: 8, OrderID: &orderID, ParticipantIDs: []int64{1, 5}}, nil).Times(1)

	cases := []struct {
		name       string
		payload    map[string]any
		wantStatus int
		wantID     int64
	}{
		{name: "with user", payload: map[string]any{"user_id": 2}, wantStatus: http.StatusOK, wantID: 7},
		{name: "about order", payload: map[string]any{"order_id": orderID}, wantStatus: http.StatusOK, wantID: 8},
		{
			name:       "both targets",
			payload:    map[string]any{"user_id": 2, "order_id": orderID},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{name: "no target", payload: map[string]any{}, wantStatus: http.StatusUnprocessableEntity},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, ConversationsRoute, t.payload, s.userToken)
			s.checkStatus(t.wantStatus, status, body)
			if t.wantID != 0 {
				var res ConversationResponse
				s.decode(body, &res)
				s.Equal(t.wantID, res.ID)
			}
		})
	}
}

func (s *MessagingHandlerTestSuite) TestShow() {
	translation := "Ndewo"
	s.mockMessagingService.EXPECT().
		Open(gomock.Any(), actorIs(s.userID, domain.UserTypeDiaspora), int64(7), domain.LanguageIgbo).
		Return(&service.ConversationView{
			Conversation: &domain.Conversation{ID: 7, ParticipantIDs: []int64{1, 2}},
			Messages: []service.MessageItem{{
				MessageView: repoargs.MessageView{
					Message:     domain.Message{ID: 1, ConversationID: 7, SenderID: 2, Content: "Hello"},
					Translation: &translation,
					Attachments: []domain.MessageAttachment{{ID: 3, FileName: "photo.jpg", ContentType: "image/jpeg"}},
				},
				AttachmentURLs: []string{"https://storage.local/photo.jpg"},
			}},
		}, nil).Times(1)

	status, body := s.do(http.MethodGet, "/conversations/7?lang=ig", nil, s.userToken)
	s.checkStatus(http.StatusOK, status, body)
	var res ConversationDetailResponse
	s.decode(body, &res)
	s.Require().Len(res.Messages, 1)
	s.Require().NotNil(res.Messages[0].Translation)
	s.Equal("Ndewo", *res.Messages[0].Translation)
	s.Require().Len(res.Messages[0].Attachments, 1)
	s.Equal("https://storage.local/photo.jpg", res.Messages[0].Attachments[0].URL)

	status, body = s.do(http.MethodGet, "/conversations/7?lang=xx", nil, s.userToken)
	s.checkStatus(http.StatusUnprocessableEntity, status, body)
}

func (s *MessagingHandlerTestSuite) TestSendWithAttachment() {
	s.mockMessagingService.EXPECT().
		Send(gomock.Any(), actorIs(s.userID, domain.UserTypeDiaspora), gomock.Any()).
		DoAndReturn(func(_ any, _ service.Actor, args service.SendMessageArgs) (*service.SentMessage, error) {
			s.Equal(int64(7), args.ConversationID)
			s.Equal("See the photo", args.Content)
			s.Equal("ha", args.Language)
			s.Require().Len(args.Attachments, 1)
			content, err := io.ReadAll(args.Attachments[0].Body)
			s.Require().NoError(err)
			s.Equal("jpeg-bytes", string(content))
			return &service.SentMessage{
				Message:     &domain.Message{ID: 11, ConversationID: 7, SenderID: s.userID, Content: args.Content},
				Attachments: []domain.MessageAttachment{{ID: 1, MessageID: 11, FileName: "photo.jpg"}},
			}, nil
		}).Times(1)

	body, contentType, err := testutils.MultipartBody(
		map[string]string{"content": "See the photo", "language": "ha"},
		testutils.FormFile{Field: "attachments", Name: "photo.jpg", ContentType: "image/jpeg", Content: []byte("jpeg-bytes")},
	)
	s.Require().NoError(err)

	status, resBody := s.do(http.MethodPost, "/conversations/7/messages", body, s.userToken,
		testutils.WithHeader("Content-Type", contentType))
	s.checkStatus(http.StatusCreated, status, resBody)
	var res MessageResponse
	s.decode(resBody, &res)
	s.Equal(int64(11), res.ID)
	s.Len(res.Attachments, 1)
}

func (s *MessagingHandlerTestSuite) TestTranslate() {
	s.mockMessagingService.EXPECT().
		Translate(gomock.Any(), actorIs(s.userID, domain.UserTypeDiaspora), int64(11), "yo", "E kaaro").
		Return(&domain.MessageTranslation{MessageID: 11, Language: domain.LanguageYoruba, TranslatedContent: "E kaaro"}, nil).
		Times(1)

	cases := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{name: "all ok", payload: map[string]any{"language": "yo", "content": "E kaaro"}, wantStatus: http.StatusOK},
		{
			name:       "unsupported language",
			payload:    map[string]any{"language": "de", "content": "Guten Morgen"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "content over bytes",
			payload:    map[string]any{"language": "yo", "content": testutils.GenerateOverBytesUnderRunes(2501)},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, "/messages/11/translations", t.payload, s.userToken)
			s.checkStatus(t.wantStatus, status, body)
		})
	}
}

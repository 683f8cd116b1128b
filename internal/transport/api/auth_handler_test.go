package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/fsdevblog/village-connect/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	handlerSuite
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	user := &domain.User{
		ID:                1,
		CreatedAt:         time.Now(),
		Username:          "amaka",
		UserType:          domain.UserTypeShopOwner,
		PreferredLanguage: domain.LanguageIgbo,
	}
	s.mockUserService.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{
			Username:          "amaka",
			Password:          "password1",
			UserType:          domain.UserTypeShopOwner,
			PreferredLanguage: "ig-NG",
		}).
		Return(user, "jwt-token", nil).Times(1)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Eq(service.RegisterUserArgs{Username: "taken", Password: "password1"})).
		Return(nil, "", fmt.Errorf("registering user: %w", domain.ErrDuplicateKey)).Times(1)

	cases := []struct {
		name       string
		payload    map[string]any
		token      string
		wantStatus int
	}{
		{
			name: "all ok",
			payload: map[string]any{
				"username": "amaka", "password": "password1", "user_type": "shop_owner", "preferred_language": "ig-NG",
			},
			wantStatus: http.StatusCreated,
		}, {
			name:       "duplicate",
			payload:    map[string]any{"username": "taken", "password": "password1"},
			wantStatus: http.StatusConflict,
		}, {
			name:       "admin is not self registrable",
			payload:    map[string]any{"username": "boss", "password": "password1", "user_type": "admin"},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "unsupported language",
			payload:    map[string]any{"username": "boss", "password": "password1", "preferred_language": "de"},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "short password",
			payload:    map[string]any{"username": "boss", "password": "123"},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "password longer than 72 bytes",
			payload:    map[string]any{"username": "boss", "password": strings.Repeat("a", 73)},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "already authorized",
			payload:    map[string]any{"username": "amaka", "password": "password1"},
			token:      s.token(1, domain.UserTypeRegular),
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, RegisterRoute, t.payload, t.token)
			s.checkStatus(t.wantStatus, status, body)
			if t.wantStatus == http.StatusCreated {
				var res struct {
					User  UserResponse `json:"user"`
					Token string       `json:"token"`
				}
				s.decode(body, &res)
				s.Equal("jwt-token", res.Token)
				s.Equal(domain.UserTypeShopOwner, res.User.UserType)
				s.Equal(domain.LanguageIgbo, res.User.PreferredLanguage)
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	user := &domain.User{ID: 1, Username: "amaka", UserType: domain.UserTypeRegular}
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "amaka", Password: "right"}).
		Return(user, "jwt-token", nil).Times(1)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "amaka", Password: "wrong"}).
		Return(nil, "", fmt.Errorf("login: %w", domain.ErrPasswordMissMatch)).Times(1)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "ghost", Password: "right"}).
		Return(nil, "", fmt.Errorf("login: %w", domain.ErrRecordNotFound)).Times(1)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "blocked", Password: "right"}).
		Return(nil, "", fmt.Errorf("login: %w", domain.ErrUserBlocked)).Times(1)

	cases := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{name: "all ok", payload: map[string]any{"username": "amaka", "password": "right"}, wantStatus: http.StatusOK},
		{
			name:       "wrong password",
			payload:    map[string]any{"username": "amaka", "password": "wrong"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user",
			payload:    map[string]any{"username": "ghost", "password": "right"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "blocked",
			payload:    map[string]any{"username": "blocked", "password": "right"},
			wantStatus: http.StatusForbidden,
		},
		{name: "bad request", payload: map[string]any{"username": "amaka"}, wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, LoginRoute, t.payload, "")
			s.checkStatus(t.wantStatus, status, body)
		})
	}
}

func (s *AuthHandlerTestSuite) TestProfileUpdate() {
	const userID int64 = 7
	token := s.token(userID, domain.UserTypeRegular)
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	s.mockUserService.EXPECT().
		UpdateProfile(gomock.Any(), service.UpdateProfileArgs{
			UserID:            userID,
			State:             "Enugu",
			LGA:               "Nsukka",
			DateOfBirth:       &dob,
			PreferredLanguage: "yo",
		}).
		Return(&service.ProfileView{
			User:    &domain.User{ID: userID, PreferredLanguage: domain.LanguageYoruba},
			Profile: &domain.Profile{UserID: userID, State: "Enugu", LGA: "Nsukka", DateOfBirth: &dob},
		}, nil).Times(1)

	cases := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{
			name: "all ok",
			payload: map[string]any{
				"state": "Enugu", "lga": "Nsukka", "date_of_birth": "1990-05-17", "preferred_language": "yo",
			},
			wantStatus: http.StatusOK,
		}, {
			name:       "bad date",
			payload:    map[string]any{"date_of_birth": "17.05.1990"},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "bio over bytes",
			payload:    map[string]any{"bio": testutils.GenerateOverBytesUnderRunes(501)},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPut, ProfileRoute, t.payload, token)
			s.checkStatus(t.wantStatus, status, body)
		})
	}
}

func (s *AuthHandlerTestSuite) TestBusinessVerification() {
	const userID int64 = 9
	token := s.token(userID, domain.UserTypeShopOwner)

	s.mockUserService.EXPECT().
		SubmitBusinessVerification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.SubmitVerificationArgs) (*domain.BusinessVerification, error) {
			s.Equal(userID, args.UserID)
			s.Equal("RC123", args.RCNumber)
			s.Require().NotNil(args.Certificate)
			s.Equal("cert.pdf", args.Certificate.Name)
			s.Equal("application/pdf", args.Certificate.ContentType)
			s.EqualValues(4, args.Certificate.Size)
			key := "verifications/9/cert.pdf"
			return &domain.BusinessVerification{
				UserID:         userID,
				RCNumber:       args.RCNumber,
				CertificateKey: &key,
				Status:         domain.VerificationStatusPending,
			}, nil
		}).Times(1)

	body, contentType, err := testutils.MultipartBody(
		map[string]string{"rc_number": "RC123"},
		testutils.FormFile{Field: "certificate", Name: "cert.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
	)
	s.Require().NoError(err)

	status, resBody := s.do(http.MethodPost, BusinessVerificationRoute, body, token,
		testutils.WithHeader("Content-Type", contentType))
	s.checkStatus(http.StatusAccepted, status, resBody)

	var res VerificationResponse
	s.decode(resBody, &res)
	s.True(res.HasCertificate)
	s.Equal(domain.VerificationStatusPending, res.Status)
}

func (s *AuthHandlerTestSuite) TestDashboardRequiresAuth() {
	status, body := s.do(http.MethodGet, DashboardRoute, nil, "")
	s.checkStatus(http.StatusUnauthorized, status, body)
}

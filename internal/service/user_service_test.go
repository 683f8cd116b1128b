package service

import (
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/service/tokens"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	serviceSuite
	jwtSecret   []byte
	userService *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.jwtSecret = []byte("secret")

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret, s.mockPsswd, s.mockStorage)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestRegister() {
	args := RegisterUserArgs{
		Username:          gofakeit.Username(),
		Password:          gofakeit.Password(true, true, true, false, false, 12),
		Email:             gofakeit.Email(),
		UserType:          domain.UserTypeShopOwner,
		PreferredLanguage: "ha-NG",
	}
	created := domain.User{
		ID:                1,
		Username:          args.Username,
		Email:             args.Email,
		UserType:          domain.UserTypeShopOwner,
		PreferredLanguage: domain.LanguageHausa,
	}

	s.mockPsswd.EXPECT().HashPassword(args.Password).Return("hash", nil)
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), repoargs.CreateUser{
			Username:          args.Username,
			Password:          "hash",
			Email:             args.Email,
			UserType:          domain.UserTypeShopOwner,
			PreferredLanguage: domain.LanguageHausa,
		}).
		Return(&created, nil)
	s.mockUserRepo.EXPECT().CreateProfile(gomock.Any(), created.ID).Return(&domain.Profile{UserID: 1}, nil)
	s.mockWalletRepo.EXPECT().CreateWallet(gomock.Any(), created.ID).Return(&domain.Wallet{ID: 5, UserID: 1}, nil)

	user, token, err := s.userService.Register(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(&created, user)

	var claims tokens.UserClaims
	parsed, parseErr := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	})
	s.Require().NoError(parseErr)
	s.True(parsed.Valid)
	s.Equal(created.ID, claims.ID)
	s.Equal(domain.UserTypeShopOwner, claims.Role)
}

func (s *UserServiceTestSuite) TestRegisterValidation() {
	cases := []struct {
		name      string
		args      RegisterUserArgs
		wantField string
		wantErr   error
	}{
		{
			name:      "admin is not self registrable",
			args:      RegisterUserArgs{Username: "root", Password: "long enough", UserType: domain.UserTypeAdmin},
			wantField: "user_type",
		},
		{
			name:      "short password",
			args:      RegisterUserArgs{Username: "bob", Password: "short"},
			wantField: "password",
		},
		{
			name:      "password longer than bcrypt accepts",
			args:      RegisterUserArgs{Username: "bob", Password: strings.Repeat("я", 37)},
			wantField: "password",
		},
		{
			name:    "unsupported language",
			args:    RegisterUserArgs{Username: "bob", Password: "long enough", PreferredLanguage: "de"},
			wantErr: domain.ErrInvalidLanguage,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, _, err := s.userService.Register(s.T().Context(), t.args)
			s.Require().Error(err)
			if t.wantErr != nil {
				s.ErrorIs(err, t.wantErr)
				return
			}
			var ve *domain.ValidationError
			s.Require().ErrorAs(err, &ve)
			s.Equal(t.wantField, ve.Field)
		})
	}
}

func (s *UserServiceTestSuite) TestLogin() {
	savedUser := domain.User{
		ID:                1,
		Username:          "amina",
		EncryptedPassword: "hash ok",
		UserType:          domain.UserTypeRegular,
	}
	blockedUser := domain.User{ID: 2, Username: "blocked", EncryptedPassword: "hash ok"}
	expiredUser := domain.User{ID: 3, Username: "expired", EncryptedPassword: "hash ok"}

	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "amina").Return(&savedUser, nil).Times(2)
	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "blocked").Return(&blockedUser, nil)
	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "expired").Return(&expiredUser, nil)
	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "missing").Return(nil, domain.ErrRecordNotFound)

	s.mockPsswd.EXPECT().ComparePassword("right", "hash ok").Return(true).Times(3)
	s.mockPsswd.EXPECT().ComparePassword("wrong", "hash ok").Return(false)

	s.mockModeration.EXPECT().FindBlock(gomock.Any(), savedUser.ID).Return(nil, domain.ErrRecordNotFound)
	s.mockModeration.EXPECT().FindBlock(gomock.Any(), blockedUser.ID).
		Return(&domain.BlockedUser{UserID: 2, IsPermanent: true, Reason: "spam"}, nil)
	s.mockModeration.EXPECT().FindBlock(gomock.Any(), expiredUser.ID).
		Return(&domain.BlockedUser{UserID: 3, UnblockDate: ptr(time.Now().Add(-time.Hour))}, nil)

	cases := []struct {
		name     string
		args     LoginUserArgs
		wantErr  error
		wantUser int64
	}{
		{name: "ok", args: LoginUserArgs{Username: "amina", Password: "right"}, wantUser: 1},
		{name: "wrong password", args: LoginUserArgs{Username: "amina", Password: "wrong"},
			wantErr: domain.ErrPasswordMissMatch},
		{name: "unknown user", args: LoginUserArgs{Username: "missing", Password: "right"},
			wantErr: domain.ErrRecordNotFound},
		{name: "blocked", args: LoginUserArgs{Username: "blocked", Password: "right"},
			wantErr: domain.ErrUserBlocked},
		{name: "block expired", args: LoginUserArgs{Username: "expired", Password: "right"}, wantUser: 3},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, token, err := s.userService.Login(s.T().Context(), t.args)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(t.wantUser, user.ID)
			s.NotEmpty(token)
		})
	}
}

func (s *UserServiceTestSuite) TestDashboardShopOwner() {
	user := domain.User{ID: 1, UserType: domain.UserTypeShopOwner}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil)
	s.mockUserRepo.EXPECT().GetProfile(gomock.Any(), user.ID).Return(&domain.Profile{UserID: 1}, nil)
	s.mockWalletRepo.EXPECT().FindByUserID(gomock.Any(), user.ID).Return(&domain.Wallet{ID: 9, UserID: 1}, nil)
	s.mockOrderRepo.EXPECT().GetByBuyerID(gomock.Any(), user.ID, dashboardOrdersLimit).
		Return([]domain.Order{{ID: 1}}, nil)
	s.mockCatalog.EXPECT().ProductsBySeller(gomock.Any(), user.ID, dashboardProductsLimit).
		Return([]domain.Product{{ID: 3}, {ID: 4}}, nil)

	dashboard, err := s.userService.Dashboard(s.T().Context(), user.ID)
	s.Require().NoError(err)
	s.Len(dashboard.Orders, 1)
	s.Len(dashboard.Products, 2)
	s.Equal(int64(9), dashboard.Wallet.ID)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/service/tokens"
	"github.com/fsdevblog/village-connect/pkg/uow"
)

const (
	JWTTokenExpire = 1 * time.Hour

	dashboardOrdersLimit   uint = 5
	dashboardProductsLimit uint = 5

	minPasswordLength = 8
	maxPasswordBytes  = 72
)

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	walletRepo     WalletRepository
	orderRepo      OrderRepository
	catalogRepo    CatalogRepository
	moderationRepo ModerationRepository
	hasher         PasswordHasher
	storage        ObjectStorage
	jwtTokenSecret []byte
}

func NewUserService(
	u uow.UOW,
	jwtTokenSecret []byte,
	hasher PasswordHasher,
	storage ObjectStorage,
) (*UserService, error) {
	userRepo, err := repoFromUOW[UserRepository](u, repoargs.UserRepoName)
	if err != nil {
		return nil, err
	}
	walletRepo, err := repoFromUOW[WalletRepository](u, repoargs.WalletRepoName)
	if err != nil {
		return nil, err
	}
	orderRepo, err := repoFromUOW[OrderRepository](u, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	catalogRepo, err := repoFromUOW[CatalogRepository](u, repoargs.CatalogRepoName)
	if err != nil {
		return nil, err
	}
	moderationRepo, err := repoFromUOW[ModerationRepository](u, repoargs.ModerationRepoName)
	if err != nil {
		return nil, err
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		walletRepo:     walletRepo,
		orderRepo:      orderRepo,
		catalogRepo:    catalogRepo,
		moderationRepo: moderationRepo,
		hasher:         hasher,
		storage:        storage,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Username          string
	Password          string
	Email             string
	PhoneNumber       *string
	UserType          domain.UserType
	PreferredLanguage string
}

// Register создает юзера вместе с профилем и кошельком в одной транзакции. После успешного создания
// генерирует jwt token. Возвращает 3 значения: созданный юзер, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	userType := args.UserType
	if userType == "" {
		userType = domain.UserTypeRegular
	}
	if !userType.IsSelfRegistrable() {
		return nil, "", fmt.Errorf("registering user: %w",
			domain.NewValidationError("user_type", "cannot register as "+string(userType)))
	}
	lang, langErr := domain.ParseLanguageOrDefault(args.PreferredLanguage)
	if langErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", langErr)
	}
	if len(args.Password) < minPasswordLength {
		return nil, "", fmt.Errorf("registering user: %w",
			domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength)))
	}
	if len(args.Password) > maxPasswordBytes {
		return nil, "", fmt.Errorf("registering user: %w",
			domain.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes)))
	}

	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", hashErr)
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := repoFromTX[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err
		}
		walletRepo, err := repoFromTX[WalletRepository](tx, repoargs.WalletRepoName)
		if err != nil {
			return err
		}

		user, err = userRepo.CreateUser(c, repoargs.CreateUser{
			Username:          strings.TrimSpace(args.Username),
			Password:          password,
			Email:             strings.TrimSpace(args.Email),
			PhoneNumber:       args.PhoneNumber,
			UserType:          userType,
			PreferredLanguage: lang,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = userRepo.CreateProfile(c, user.ID); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = walletRepo.CreateWallet(c, user.ID); err != nil {
			return err //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.UserType, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", tokenErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login проверяет пароль и выдает jwt token. Заблокированный пользователь получает domain.ErrUserBlocked,
// пока блокировка действует.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, args.Username)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if !s.hasher.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", fmt.Errorf("login: %w", domain.ErrPasswordMissMatch)
	}

	block, blockErr := s.moderationRepo.FindBlock(ctx, user.ID)
	if blockErr != nil && !errors.Is(blockErr, domain.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("login: %w", blockErr)
	}
	if block != nil && block.IsActiveAt(time.Now()) {
		return nil, "", fmt.Errorf("login: %w", domain.ErrUserBlocked)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.UserType, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %w", tokenErr)
	}
	return user, token, nil
}

// ProfileView профиль вместе с пользователем и ссылкой на фотографию.
type ProfileView struct {
	User       *domain.User
	Profile    *domain.Profile
	PictureURL string
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*ProfileView, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return s.profileView(ctx, user, profile)
}

type UpdateProfileArgs struct {
	UserID            int64
	State             string
	LGA               string
	Community         string
	Bio               string
	DateOfBirth       *time.Time
	PreferredLanguage string
}

func (s *UserService) UpdateProfile(ctx context.Context, args UpdateProfileArgs) (*ProfileView, error) {
	lang, langErr := domain.ParseLanguageOrDefault(args.PreferredLanguage)
	if langErr != nil {
		return nil, fmt.Errorf("updating profile: %w", langErr)
	}
	if args.DateOfBirth != nil && args.DateOfBirth.After(time.Now()) {
		return nil, fmt.Errorf("updating profile: %w",
			domain.NewValidationError("date_of_birth", "must be in the past"))
	}

	var (
		user    *domain.User
		profile *domain.Profile
	)
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := repoFromTX[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err
		}
		profile, err = userRepo.UpdateProfile(c, repoargs.UpdateProfile{
			UserID:            args.UserID,
			State:             strings.TrimSpace(args.State),
			LGA:               strings.TrimSpace(args.LGA),
			Community:         strings.TrimSpace(args.Community),
			Bio:               args.Bio,
			DateOfBirth:       args.DateOfBirth,
			PreferredLanguage: lang,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		user, err = userRepo.FindUserByID(c, args.UserID)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating profile: %w", txErr)
	}
	return s.profileView(ctx, user, profile)
}

// UploadProfilePicture загружает фотографию профиля в хранилище и сохраняет ключ объекта.
func (s *UserService) UploadProfilePicture(ctx context.Context, userID int64, file FileUpload) (*ProfileView, error) {
	key, err := uploadFile(ctx, s.storage, fmt.Sprintf("profiles/%d", userID), file)
	if err != nil {
		return nil, fmt.Errorf("uploading profile picture: %w", err)
	}
	profile, err := s.userRepo.SetProfilePicture(ctx, userID, key)
	if err != nil {
		return nil, fmt.Errorf("uploading profile picture: %w", err)
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("uploading profile picture: %w", err)
	}
	return s.profileView(ctx, user, profile)
}

type SubmitVerificationArgs struct {
	UserID      int64
	RCNumber    string
	TIN         string
	Certificate *FileUpload
}

// SubmitBusinessVerification подает (или переподает) заявку на верификацию бизнеса.
func (s *UserService) SubmitBusinessVerification(
	ctx context.Context,
	args SubmitVerificationArgs,
) (*domain.BusinessVerification, error) {
	if strings.TrimSpace(args.RCNumber) == "" && strings.TrimSpace(args.TIN) == "" && args.Certificate == nil {
		return nil, fmt.Errorf("submitting business verification: %w",
			domain.NewValidationError("business_verification", "certificate, rc_number or tin required"))
	}

	var certKey *string
	if args.Certificate != nil {
		key, err := uploadFile(ctx, s.storage, fmt.Sprintf("certificates/%d", args.UserID), *args.Certificate)
		if err != nil {
			return nil, fmt.Errorf("submitting business verification: %w", err)
		}
		certKey = &key
	}

	bv, err := s.userRepo.UpsertBusinessVerification(ctx, repoargs.UpsertBusinessVerification{
		UserID:         args.UserID,
		CertificateKey: certKey,
		RCNumber:       strings.TrimSpace(args.RCNumber),
		TIN:            strings.TrimSpace(args.TIN),
	})
	if err != nil {
		return nil, fmt.Errorf("submitting business verification: %w", err)
	}
	return bv, nil
}

type Dashboard struct {
	Profile  *ProfileView
	Wallet   *domain.Wallet
	Orders   []domain.Order
	Products []domain.Product
}

// Dashboard сводка пользователя: профиль, кошелек, последние заказы, а для владельцев магазинов
// еще и последние товары.
func (s *UserService) Dashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	orders, err := s.orderRepo.GetByBuyerID(ctx, userID, dashboardOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	var products = make([]domain.Product, 0)
	if profile.User.UserType == domain.UserTypeShopOwner {
		products, err = s.catalogRepo.ProductsBySeller(ctx, userID, dashboardProductsLimit)
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
	}
	return &Dashboard{
		Profile:  profile,
		Wallet:   wallet,
		Orders:   orders,
		Products: products,
	}, nil
}

func (s *UserService) profileView(ctx context.Context, user *domain.User, profile *domain.Profile) (*ProfileView, error) {
	view := &ProfileView{User: user, Profile: profile}
	if profile.PictureKey != nil {
		url, err := s.storage.PresignGet(ctx, *profile.PictureKey)
		if err != nil {
			return nil, fmt.Errorf("presigning profile picture: %w", err)
		}
		view.PictureURL = url
	}
	return view, nil
}

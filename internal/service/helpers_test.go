package service

import (
	"context"

	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/service/mocks"
	"github.com/fsdevblog/village-connect/pkg/uow"
	uowmocks "github.com/fsdevblog/village-connect/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

// serviceSuite общая подготовка моков для тестов сервисов.
type serviceSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockUserRepo   *mocks.MockUserRepository
	mockCatalog    *mocks.MockCatalogRepository
	mockOrderRepo  *mocks.MockOrderRepository
	mockWalletRepo *mocks.MockWalletRepository
	mockDelivery   *mocks.MockDeliveryRepository
	mockShopRepo   *mocks.MockPickupShopRepository
	mockMessaging  *mocks.MockMessagingRepository
	mockModeration *mocks.MockModerationRepository
	mockOTP        *mocks.MockOTPStore
	mockCache      *mocks.MockCache
	mockStorage    *mocks.MockObjectStorage
	mockPsswd      *mocks.MockPasswordHasher
	logger         *logrus.Logger
}

func (s *serviceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockCatalog = mocks.NewMockCatalogRepository(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(s.mockCtrl)
	s.mockDelivery = mocks.NewMockDeliveryRepository(s.mockCtrl)
	s.mockShopRepo = mocks.NewMockPickupShopRepository(s.mockCtrl)
	s.mockMessaging = mocks.NewMockMessagingRepository(s.mockCtrl)
	s.mockModeration = mocks.NewMockModerationRepository(s.mockCtrl)
	s.mockOTP = mocks.NewMockOTPStore(s.mockCtrl)
	s.mockCache = mocks.NewMockCache(s.mockCtrl)
	s.mockStorage = mocks.NewMockObjectStorage(s.mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(s.mockCtrl)
	s.logger, _ = test.NewNullLogger()

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:       s.mockUserRepo,
		repoargs.CatalogRepoName:    s.mockCatalog,
		repoargs.OrderRepoName:      s.mockOrderRepo,
		repoargs.WalletRepoName:     s.mockWalletRepo,
		repoargs.DeliveryRepoName:   s.mockDelivery,
		repoargs.PickupShopRepoName: s.mockShopRepo,
		repoargs.MessagingRepoName:  s.mockMessaging,
		repoargs.ModerationRepoName: s.mockModeration,
	}
	// Репозитории достаются и при инициализации сервисов, и внутри транзакций.
	for name, repo := range repos {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
}

func (s *serviceSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func ptr[T any](v T) *T {
	return &v
}

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/logger"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/fsdevblog/village-connect/internal/service/tokens"
	"github.com/fsdevblog/village-connect/internal/transport/api/mocks"
	"github.com/fsdevblog/village-connect/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// handlerSuite общая основа тестов обработчиков: роутер со всеми сервисами на моках.
type handlerSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret []byte

	mockUserService       *mocks.MockUserServicer
	mockCatalogService    *mocks.MockCatalogServicer
	mockOrderService      *mocks.MockOrderServicer
	mockWalletService     *mocks.MockWalletServicer
	mockDeliveryService   *mocks.MockDeliveryServicer
	mockPickupShopService *mocks.MockPickupShopServicer
	mockMessagingService  *mocks.MockMessagingServicer
	mockModerationService *mocks.MockModerationServicer
}

func (s *handlerSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.mockCatalogService = mocks.NewMockCatalogServicer(mockCtrl)
	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.mockWalletService = mocks.NewMockWalletServicer(mockCtrl)
	s.mockDeliveryService = mocks.NewMockDeliveryServicer(mockCtrl)
	s.mockPickupShopService = mocks.NewMockPickupShopServicer(mockCtrl)
	s.mockMessagingService = mocks.NewMockMessagingServicer(mockCtrl)
	s.mockModerationService = mocks.NewMockModerationServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, err := New(s.routerArgs())
	s.Require().NoError(err)
	s.router = router
}

func (s *handlerSuite) routerArgs() RouterArgs {
	return RouterArgs{
		Logger:            logger.New(io.Discard),
		UserService:       s.mockUserService,
		CatalogService:    s.mockCatalogService,
		OrderService:      s.mockOrderService,
		WalletService:     s.mockWalletService,
		DeliveryService:   s.mockDeliveryService,
		PickupShopService: s.mockPickupShopService,
		MessagingService:  s.mockMessagingService,
		ModerationService: s.mockModerationService,
		JWTSecretKey:      s.jwtSecret,
	}
}

func (s *handlerSuite) token(userID int64, role domain.UserType) string {
	token, err := tokens.GenerateUserJWT(userID, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// do выполняет запрос. payload сериализуется в JSON, если это не io.Reader.
func (s *handlerSuite) do(
	method, url string,
	payload any,
	token string,
	opts ...func(*testutils.RequestOptions),
) (int, []byte) {
	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case io.Reader:
		body = p
	default:
		raw, err := json.Marshal(p)
		s.Require().NoError(err)
		body = bytes.NewReader(raw)
		opts = append(opts, testutils.WithHeader("Content-Type", "application/json"))
	}
	opts = append(opts, testutils.WithBearer(token))

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
		Body:   body,
	}, opts...)
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()
	resBody, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	return res.StatusCode, resBody
}

func (s *handlerSuite) decode(body []byte, v any) {
	s.Require().NoError(json.Unmarshal(body, v), string(body))
}

// actorMatcher сравнивает service.Actor по пользователю и роли, IP не проверяется.
type actorMatcher struct {
	userID int64
	role   domain.UserType
}

func actorIs(userID int64, role domain.UserType) gomock.Matcher {
	return actorMatcher{userID: userID, role: role}
}

func (m actorMatcher) Matches(x any) bool {
	a, ok := x.(service.Actor)
	return ok && a.UserID == m.userID && a.Role == m.role && a.IP != ""
}

func (m actorMatcher) String() string {
	return fmt.Sprintf("actor %d with role %s", m.userID, m.role)
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func (s *handlerSuite) checkStatus(want, got int, body []byte) {
	s.Equal(want, got, string(body))
	if want >= http.StatusBadRequest && want != http.StatusNoContent && len(body) > 0 {
		var res struct {
			Error string `json:"error"`
		}
		s.decode(body, &res)
		s.NotEmpty(res.Error)
	}
}

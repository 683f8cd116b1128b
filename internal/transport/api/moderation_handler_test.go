package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/fsdevblog/village-connect/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ModerationHandlerTestSuite struct {
	handlerSuite
}

func TestModerationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ModerationHandlerTestSuite))
}

func (s *ModerationHandlerTestSuite) TestAdminRoutesRequireAdmin() {
	// сервисы не должны вызываться.
	s.mockModerationService.EXPECT().AdminLogs(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockModerationService.EXPECT().BlockUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockCatalogService.EXPECT().CreateCategory(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name       string
		method     string
		url        string
		token      string
		wantStatus int
	}{
		{
			name:       "logs by regular user",
			method:     http.MethodGet,
			url:        AdminGroup + AdminLogsRoute,
			token:      s.token(1, domain.UserTypeRegular),
			wantStatus: http.StatusForbidden,
		}, {
			name:       "block by shop owner",
			method:     http.MethodPost,
			url:        "/admin/users/2/block",
			token:      s.token(1, domain.UserTypeShopOwner),
			wantStatus: http.StatusForbidden,
		}, {
			name:       "category without token",
			method:     http.MethodPost,
			url:        AdminGroup + AdminCategoriesRoute,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(t.method, t.url, map[string]any{"reason": "spam", "name": "x"}, t.token)
			s.checkStatus(t.wantStatus, status, body)
		})
	}
}

func (s *ModerationHandlerTestSuite) TestBlockAndUnblock() {
	const adminID int64 = 99
	token := s.token(adminID, domain.UserTypeAdmin)
	until := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	s.mockModerationService.EXPECT().
		BlockUser(gomock.Any(), actorIs(adminID, domain.UserTypeAdmin), gomock.Any()).
		DoAndReturn(func(_ any, _ service.Actor, args service.BlockUserArgs) (*domain.BlockedUser, error) {
			s.Equal(int64(2), args.UserID)
			s.Equal("scam", args.Reason)
			s.False(args.IsPermanent)
			s.Require().NotNil(args.UnblockDate)
			s.True(until.Equal(*args.UnblockDate))
			return &domain.BlockedUser{UserID: 2, Reason: args.Reason, UnblockDate: args.UnblockDate}, nil
		}).Times(1)
	s.mockModerationService.EXPECT().
		UnblockUser(gomock.Any(), actorIs(adminID, domain.UserTypeAdmin), int64(2)).
		Return(nil).Times(1)
	s.mockModerationService.EXPECT().
		UnblockUser(gomock.Any(), actorIs(adminID, domain.UserTypeAdmin), int64(3)).
		Return(fmt.Errorf("unblocking user: %w", domain.ErrRecordNotFound)).Times(1)

	status, body := s.do(http.MethodPost, "/admin/users/2/block",
		map[string]any{"reason": "scam", "unblock_date": until.Format(time.RFC3339)}, token)
	s.checkStatus(http.StatusOK, status, body)

	status, body = s.do(http.MethodPost, "/admin/users/2/block", map[string]any{"is_permanent": true}, token)
	s.checkStatus(http.StatusUnprocessableEntity, status, body)

	status, body = s.do(http.MethodDelete, "/admin/users/2/block", nil, token)
	s.checkStatus(http.StatusNoContent, status, body)

	status, body = s.do(http.MethodDelete, "/admin/users/3/block", nil, token)
	s.checkStatus(http.StatusNotFound, status, body)
}

// IP в журнале действий администратора берется из X-Forwarded-For только от доверенного прокси.
func (s *ModerationHandlerTestSuite) TestAdminActorIP() {
	const adminID int64 = 99
	token := s.token(adminID, domain.UserTypeAdmin)
	forwarded := testutils.WithHeader("X-Forwarded-For", "203.0.113.9")

	var ips []string
	s.mockModerationService.EXPECT().
		VerifyUser(gomock.Any(), actorIs(adminID, domain.UserTypeAdmin), int64(2)).
		DoAndReturn(func(_ any, actor service.Actor, _ int64) (*domain.User, error) {
			ips = append(ips, actor.IP)
			return &domain.User{ID: 2, IsVerified: true}, nil
		}).Times(2)

	status, body := s.do(http.MethodPost, "/admin/users/2/verify", nil, token, forwarded)
	s.checkStatus(http.StatusOK, status, body)

	args := s.routerArgs()
	args.TrustedProxies = []string{"192.0.2.0/24"}
	trusted, err := New(args)
	s.Require().NoError(err)
	s.router = trusted

	status, body = s.do(http.MethodPost, "/admin/users/2/verify", nil, token, forwarded)
	s.checkStatus(http.StatusOK, status, body)

	// httptest.NewRequest ставит RemoteAddr 192.0.2.1:1234
	s.Equal([]string{"192.0.2.1", "203.0.113.9"}, ips)
}

func (s *ModerationHandlerTestSuite) TestReports() {
	const userID int64 = 1
	const adminID int64 = 99
	productID := int64(10)

	s.mockModerationService.EXPECT().
		CreateReport(gomock.Any(), actorIs(userID, domain.UserTypeRegular), service.CreateReportArgs{
			Type:              domain.ReportTypeProduct,
			Description:       "fake goods",
			ReportedProductID: &productID,
		}).
		Return(&domain.Report{ID: 1, Type: domain.ReportTypeProduct, Status: domain.ReportStatusPending}, nil).Times(1)
	s.mockModerationService.EXPECT().
		Reports(gomock.Any(), actorIs(adminID, domain.UserTypeAdmin), domain.ReportStatusPending,
			repoargs.Page{Limit: 10, Offset: 20}).
		Return([]domain.Report{{ID: 1, Status: domain.ReportStatusPending}}, nil).Times(1)
	s.mockModerationService.EXPECT().
		UpdateReportStatus(gomock.Any(), actorIs(adminID, domain.UserTypeAdmin), int64(1),
			domain.ReportStatusResolved, "removed listing").
		Return(&domain.Report{ID: 1, Status: domain.ReportStatusResolved}, nil).Times(1)

	status, body := s.do(http.MethodPost, ReportsRoute,
		map[string]any{"type": "product", "description": "fake goods", "reported_product_id": productID},
		s.token(userID, domain.UserTypeRegular))
	s.checkStatus(http.StatusCreated, status, body)

	status, body = s.do(http.MethodPost, ReportsRoute,
		map[string]any{"type": "spam", "description": "?"}, s.token(userID, domain.UserTypeRegular))
	s.checkStatus(http.StatusUnprocessableEntity, status, body)

	adminToken := s.token(adminID, domain.UserTypeAdmin)
	status, body = s.do(http.MethodGet, "/admin/reports?status=pending&limit=10&offset=20", nil, adminToken)
	s.checkStatus(http.StatusOK, status, body)
	var list []ReportResponse
	s.decode(body, &list)
	s.Len(list, 1)

	status, body = s.do(http.MethodPost, "/admin/reports/1/status",
		map[string]any{"status": "resolved", "notes": "removed listing"}, adminToken)
	s.checkStatus(http.StatusOK, status, body)

	status, body = s.do(http.MethodPost, "/admin/reports/1/status", map[string]any{"status": "pending"}, adminToken)
	s.checkStatus(http.StatusUnprocessableEntity, status, body)
}

func (s *ModerationHandlerTestSuite) TestReviewVerificationAndAssign() {
	const adminID int64 = 99
	token := s.token(adminID, domain.UserTypeAdmin)

	s.mockModerationService.EXPECT().
		ReviewBusinessVerification(gomock.Any(), actorIs(adminID, domain.UserTypeAdmin), int64(9), false, "blurry").
		Return(&domain.BusinessVerification{UserID: 9, Status: domain.VerificationStatusRejected}, nil).Times(1)
	s.mockModerationService.EXPECT().
		AssignCourier(gomock.Any(), actorIs(adminID, domain.UserTypeAdmin), int64(4), int64(3)).
		Return(nil, fmt.Errorf("assigning courier: %w", domain.NewValidationError("courier_id", "not a courier"))).
		Times(1)

	status, body := s.do(http.MethodPost, "/admin/business-verifications/9",
		map[string]any{"approved": false, "notes": "blurry"}, token)
	s.checkStatus(http.StatusOK, status, body)

	// approved обязателен, false не должен считаться пропуском.
	status, body = s.do(http.MethodPost, "/admin/business-verifications/9", map[string]any{"notes": "?"}, token)
	s.checkStatus(http.StatusUnprocessableEntity, status, body)

	status, body = s.do(http.MethodPost, "/admin/deliveries/4/assign", map[string]any{"courier_id": 3}, token)
	s.checkStatus(http.StatusUnprocessableEntity, status, body)
	var res struct {
		Field string `json:"field"`
	}
	s.decode(body, &res)
	s.Equal("courier_id", res.Field)
}
